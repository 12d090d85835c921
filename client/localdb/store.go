// Package localdb 是本地回退存储：当后端不可达时，客户端把同样的
// 业务操作落在本机的键值文件上。对外契约与远端完全一致（同样的
// 方法签名、同样的返回形状），并通过固定延迟模拟网络节奏。
// 这里永远不会产生传输类错误——没有网络参与，任何失败都是业务
// 规则冲突或程序缺陷。
package localdb

import (
	"context"
	"encoding/json"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"hitedu_backend/client/session"
	"hitedu_backend/pkg/kvstore"
)

// 本地存储键，与原始前端的 localStorage 键保持一致
const (
	KeyUsers       = "hitedu_users"
	KeyVideos      = "hitedu_videos"
	KeyMistakes    = "hitedu_mistakes"
	KeySchedule    = "hitedu_schedule"
	KeyProgress    = "hitedu_progress"
	KeyQuizResults = "hitedu_quiz_results"
	KeyReports     = "hitedu_reports"
)

type Store struct {
	kv      *kvstore.Store
	session *session.Store
	latency time.Duration

	// mu 串行化读-改-写序列；单用户场景下避免并发丢更新
	mu  sync.Mutex
	rng *rand.Rand
}

func New(kv *kvstore.Store, sess *session.Store, latency time.Duration) *Store {
	return &Store{
		kv:      kv,
		session: sess,
		latency: latency,
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// delay 模拟网络延迟。ctx 取消时提前返回对应错误。
func (s *Store) delay(ctx context.Context) error {
	if s.latency <= 0 {
		return nil
	}
	timer := time.NewTimer(s.latency)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// read 反序列化键值。键不存在时 ok 为 false。
func read[T any](s *Store, key string) (value T, ok bool, err error) {
	raw, ok, err := s.kv.Get(key)
	if err != nil || !ok {
		return value, ok, err
	}
	if err := json.Unmarshal(raw, &value); err != nil {
		return value, false, fmt.Errorf("localdb: parse %s: %w", key, err)
	}
	return value, true, nil
}

func write(s *Store, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("localdb: marshal %s: %w", key, err)
	}
	return s.kv.Set(key, raw)
}
