package service

import (
	"hitedu_backend/internal/model"
	"hitedu_backend/internal/repository"
)

type UserService struct {
	UserRepo *repository.UserRepository
}

func NewUserService(userRepo *repository.UserRepository) *UserService {
	return &UserService{UserRepo: userRepo}
}

func (s *UserService) UpdateAvatar(userID, avatar string) (*model.User, error) {
	user, err := s.UserRepo.UpdateAvatar(userID, avatar)
	if err != nil {
		return nil, err
	}
	safe := user.WithoutPassword()
	return &safe, nil
}
