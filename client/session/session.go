// Package session 持有当前登录用户：单一持久化槽位，JSON 序列化。
// 进程启动时读取以恢复上次会话，登录/注册时写入，登出时清空，
// 没有过期机制。
package session

import (
	"encoding/json"
	"fmt"

	"hitedu_backend/internal/model"
	"hitedu_backend/pkg/kvstore"
)

// Key 会话在本地存储中的键，与原始前端的 localStorage 键一致
const Key = "hitedu_session"

type Store struct {
	kv *kvstore.Store
}

func NewStore(kv *kvstore.Store) *Store {
	return &Store{kv: kv}
}

// Current 返回当前会话用户；没有会话时返回 (nil, nil)
func (s *Store) Current() (*model.User, error) {
	raw, ok, err := s.kv.Get(Key)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}

	var user model.User
	if err := json.Unmarshal(raw, &user); err != nil {
		return nil, fmt.Errorf("session: parse stored session: %w", err)
	}
	return &user, nil
}

// Set 写入会话。密码永远不落入会话槽。
func (s *Store) Set(user *model.User) error {
	raw, err := json.Marshal(user.WithoutPassword())
	if err != nil {
		return fmt.Errorf("session: marshal: %w", err)
	}
	return s.kv.Set(Key, raw)
}

func (s *Store) Clear() error {
	return s.kv.Delete(Key)
}
