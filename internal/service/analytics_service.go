package service

import (
	"math/rand"
	"sync"
	"time"

	"hitedu_backend/internal/mockdata"
	"hitedu_backend/internal/model"
)

// AnalyticsService 学习统计。真实的聚合计算尚未接入，
// 目前每次读取返回一份随机生成的模拟数据。
type AnalyticsService struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewAnalyticsService() *AnalyticsService {
	return &AnalyticsService{
		rng: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (s *AnalyticsService) Stats(userID string) model.LearningStats {
	s.mu.Lock()
	defer s.mu.Unlock()
	return mockdata.RandomStats(s.rng)
}
