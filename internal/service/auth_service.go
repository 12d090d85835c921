package service

import (
	"hitedu_backend/internal/model"
	"hitedu_backend/internal/repository"
	"hitedu_backend/internal/util"
)

// AuthService 登录与注册。密码明文存储、明文比对，是既有前端
// 契约的一部分；会话由客户端自行持有，服务端不签发令牌。
type AuthService struct {
	UserRepo *repository.UserRepository
}

func NewAuthService(userRepo *repository.UserRepository) *AuthService {
	return &AuthService{UserRepo: userRepo}
}

func (s *AuthService) Login(username, password string, role model.Role) (*model.User, error) {
	user, err := s.UserRepo.FindByCredentials(username, password, role)
	if err != nil {
		return nil, err
	}
	safe := user.WithoutPassword()
	return &safe, nil
}

func (s *AuthService) Register(username, password, email string, role model.Role) (*model.User, error) {
	exists, err := s.UserRepo.ExistsByUsernameRole(username, role)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, util.ErrUserExists
	}

	user := &model.User{
		ID:       util.NewID(),
		Username: username,
		Password: password,
		Email:    email,
		Role:     role,
		Avatar:   model.AvatarURL(username, role),
	}
	if err := s.UserRepo.Create(user); err != nil {
		return nil, err
	}

	safe := user.WithoutPassword()
	return &safe, nil
}
