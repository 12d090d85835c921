package util

import "github.com/google/uuid"

// NewID 生成实体主键。原始实现用 Math.random 的 base36 片段，
// 这里改用 UUID，调用方只依赖其唯一性。
func NewID() string {
	return uuid.New().String()
}
