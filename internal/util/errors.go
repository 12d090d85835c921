package util

import "errors"

var (
	ErrInvalidCredentials = errors.New("用户名、密码或角色错误")
	ErrUserExists         = errors.New("用户已存在")
	ErrUserNotFound       = errors.New("User not found")
)
