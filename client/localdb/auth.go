package localdb

import (
	"context"
	"errors"
	"fmt"

	"hitedu_backend/internal/mockdata"
	"hitedu_backend/internal/model"
	"hitedu_backend/internal/util"
)

var (
	ErrBadCredentials = errors.New("用户名或密码错误")
	ErrDuplicateUser  = errors.New("该角色下的用户名已存在")
)

// RoleMismatchError 用户名和密码正确，但该账号注册的是另一个角色。
// 单独成类型是为了给出比“用户名或密码错误”更明确的提示。
type RoleMismatchError struct {
	Requested model.Role
}

func (e *RoleMismatchError) Error() string {
	return fmt.Sprintf("该账号不能以%s身份登录", e.Requested.Label())
}

// ensureUsers 懒初始化账号集合。只在键完全不存在时写入种子，
// 重复调用不会产生第二份。
func (s *Store) ensureUsers() ([]model.User, error) {
	users, ok, err := read[[]model.User](s, KeyUsers)
	if err != nil {
		return nil, err
	}
	if !ok {
		users = mockdata.DefaultUsers()
		if err := write(s, KeyUsers, users); err != nil {
			return nil, err
		}
	}
	return users, nil
}

// Login 用户名、密码、角色同时匹配。用户名密码正确但角色不符时
// 返回 RoleMismatchError。成功后更新会话槽。
func (s *Store) Login(ctx context.Context, username, password string, role model.Role) (*model.User, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.ensureUsers()
	if err != nil {
		return nil, err
	}

	for i := range users {
		u := &users[i]
		if u.Username == username && u.Password == password && u.Role == role {
			safe := u.WithoutPassword()
			if err := s.session.Set(&safe); err != nil {
				return nil, err
			}
			return &safe, nil
		}
	}

	for i := range users {
		u := &users[i]
		if u.Username == username && u.Password == password && u.Role != role {
			return nil, &RoleMismatchError{Requested: role}
		}
	}

	return nil, ErrBadCredentials
}

// Register 唯一性约束作用于 (username, role)：同一用户名可以分别
// 注册为学生和教师。成功后更新会话槽。
func (s *Store) Register(ctx context.Context, username, password, email string, role model.Role) (*model.User, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, err := s.ensureUsers()
	if err != nil {
		return nil, err
	}

	for i := range users {
		if users[i].Username == username && users[i].Role == role {
			return nil, ErrDuplicateUser
		}
	}

	user := model.User{
		ID:       util.NewID(),
		Username: username,
		Password: password,
		Email:    email,
		Role:     role,
		Avatar:   model.AvatarURL(username, role),
	}
	users = append(users, user)
	if err := write(s, KeyUsers, users); err != nil {
		return nil, err
	}

	safe := user.WithoutPassword()
	if err := s.session.Set(&safe); err != nil {
		return nil, err
	}
	return &safe, nil
}

// Logout 清空会话槽
func (s *Store) Logout(ctx context.Context) error {
	if err := s.delay(ctx); err != nil {
		return err
	}
	return s.session.Clear()
}

// UpdateUserAvatar 更新账号头像；若该用户正是当前会话，会话记录
// 一并更新。
func (s *Store) UpdateUserAvatar(ctx context.Context, userID, avatar string) (*model.User, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	users, ok, err := read[[]model.User](s, KeyUsers)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, util.ErrUserNotFound
	}

	for i := range users {
		if users[i].ID != userID {
			continue
		}
		users[i].Avatar = avatar
		if err := write(s, KeyUsers, users); err != nil {
			return nil, err
		}

		safe := users[i].WithoutPassword()

		current, err := s.session.Current()
		if err != nil {
			return nil, err
		}
		if current != nil && current.ID == userID {
			if err := s.session.Set(&safe); err != nil {
				return nil, err
			}
		}
		return &safe, nil
	}

	return nil, util.ErrUserNotFound
}
