package repository

import (
	"hitedu_backend/internal/model"
	"hitedu_backend/internal/util"
)

type UserRepository struct {
	DB *FileDB
}

func NewUserRepository(db *FileDB) *UserRepository {
	return &UserRepository{DB: db}
}

// FindByCredentials 用户名、密码、角色三者同时匹配才算命中
func (r *UserRepository) FindByCredentials(username, password string, role model.Role) (*model.User, error) {
	var found *model.User
	err := r.DB.View(func(d *Data) error {
		for i := range d.Users {
			u := &d.Users[i]
			if u.Username == username && u.Password == password && u.Role == role {
				copied := *u
				found = &copied
				return nil
			}
		}
		return util.ErrInvalidCredentials
	})
	return found, err
}

// ExistsByUsernameRole (username, role) 是唯一性约束的作用域
func (r *UserRepository) ExistsByUsernameRole(username string, role model.Role) (bool, error) {
	exists := false
	err := r.DB.View(func(d *Data) error {
		for i := range d.Users {
			if d.Users[i].Username == username && d.Users[i].Role == role {
				exists = true
				return nil
			}
		}
		return nil
	})
	return exists, err
}

func (r *UserRepository) Create(user *model.User) error {
	return r.DB.Update(func(d *Data) error {
		d.Users = append(d.Users, *user)
		return nil
	})
}

// UpdateAvatar 更新头像并返回更新后的用户
func (r *UserRepository) UpdateAvatar(userID, avatar string) (*model.User, error) {
	var updated *model.User
	err := r.DB.Update(func(d *Data) error {
		for i := range d.Users {
			if d.Users[i].ID == userID {
				d.Users[i].Avatar = avatar
				copied := d.Users[i]
				updated = &copied
				return nil
			}
		}
		return util.ErrUserNotFound
	})
	return updated, err
}
