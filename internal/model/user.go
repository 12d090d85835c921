package model

type Role string

const (
	RoleStudent Role = "student"
	RoleTeacher Role = "teacher"
)

func (r Role) Valid() bool {
	return r == RoleStudent || r == RoleTeacher
}

// Label 角色的中文名称，用于面向用户的提示语
func (r Role) Label() string {
	if r == RoleTeacher {
		return "教师"
	}
	return "学生"
}

// User 账号记录。密码以明文持久化（与原始服务端契约保持一致），
// 任何对外响应都必须先经过 WithoutPassword。
type User struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Password string `json:"password,omitempty"`
	Email    string `json:"email"`
	Role     Role   `json:"role"`
	Avatar   string `json:"avatar,omitempty"`
}

// WithoutPassword 返回去除密码字段的副本
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}

// AvatarURL 按原始实现的配色规则生成默认头像地址
func AvatarURL(username string, role Role) string {
	background := "0ea5e9"
	if role == RoleTeacher {
		background = "7c3aed"
	}
	return "https://ui-avatars.com/api/?name=" + username + "&background=" + background + "&color=fff"
}
