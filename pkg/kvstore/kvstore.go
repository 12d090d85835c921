// Package kvstore 是一个极简的本地键值存储：每个键对应数据目录下的
// 一个 JSON 文件。它是浏览器 localStorage 的进程内等价物，供客户端
// 的本地回退存储和会话槽使用。
package kvstore

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
)

type Store struct {
	fs  afero.Fs
	dir string
	mu  sync.Mutex
}

// New 创建基于 fs 的存储。生产环境传 afero.NewOsFs()，
// 测试传 afero.NewMemMapFs()。
func New(fs afero.Fs, dir string) *Store {
	return &Store{fs: fs, dir: dir}
}

func (s *Store) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

// Get 返回键对应的原始字节。键不存在时 ok 为 false，不是错误。
func (s *Store) Get(key string) (data []byte, ok bool, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err = afero.ReadFile(s.fs, s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("kvstore: read %s: %w", key, err)
	}
	return data, true, nil
}

func (s *Store) Set(key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.fs.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("kvstore: mkdir %s: %w", s.dir, err)
	}
	if err := afero.WriteFile(s.fs, s.path(key), data, 0644); err != nil {
		return fmt.Errorf("kvstore: write %s: %w", key, err)
	}
	return nil
}

func (s *Store) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.fs.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("kvstore: delete %s: %w", key, err)
	}
	return nil
}
