package localdb

import (
	"context"
	"time"

	"hitedu_backend/internal/mockdata"
	"hitedu_backend/internal/model"
	"hitedu_backend/internal/util"
)

// SaveMistake 插入用户错题列表头部（最新在前）
func (s *Store) SaveMistake(ctx context.Context, userID string, mistake model.MistakeRecord) error {
	if err := s.delay(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, _, err := read[map[string][]model.MistakeRecord](s, KeyMistakes)
	if err != nil {
		return err
	}
	if all == nil {
		all = map[string][]model.MistakeRecord{}
	}

	mistake.ID = util.NewID()
	mistake.Timestamp = time.Now().UnixMilli()
	all[userID] = append([]model.MistakeRecord{mistake}, all[userID]...)

	return write(s, KeyMistakes, all)
}

func (s *Store) Mistakes(ctx context.Context, userID string) ([]model.MistakeRecord, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, _, err := read[map[string][]model.MistakeRecord](s, KeyMistakes)
	if err != nil {
		return nil, err
	}
	return all[userID], nil
}

// SaveSchedule 整表替换该用户的课表
func (s *Store) SaveSchedule(ctx context.Context, userID string, items []model.ScheduleItem) error {
	if err := s.delay(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, _, err := read[map[string][]model.ScheduleItem](s, KeySchedule)
	if err != nil {
		return err
	}
	if all == nil {
		all = map[string][]model.ScheduleItem{}
	}
	all[userID] = items

	return write(s, KeySchedule, all)
}

func (s *Store) Schedule(ctx context.Context, userID string) ([]model.ScheduleItem, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, _, err := read[map[string][]model.ScheduleItem](s, KeySchedule)
	if err != nil {
		return nil, err
	}
	return all[userID], nil
}

func (s *Store) SaveQuizResult(ctx context.Context, userID string, result model.QuizResult) error {
	if err := s.delay(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, _, err := read[map[string][]model.QuizResult](s, KeyQuizResults)
	if err != nil {
		return err
	}
	if all == nil {
		all = map[string][]model.QuizResult{}
	}

	result.ID = util.NewID()
	result.Timestamp = time.Now().UnixMilli()
	all[userID] = append([]model.QuizResult{result}, all[userID]...)

	return write(s, KeyQuizResults, all)
}

func (s *Store) SaveReport(ctx context.Context, userID string, report model.SavedReport) error {
	if err := s.delay(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, _, err := read[map[string][]model.SavedReport](s, KeyReports)
	if err != nil {
		return err
	}
	if all == nil {
		all = map[string][]model.SavedReport{}
	}

	report.ID = util.NewID()
	report.Timestamp = time.Now().UnixMilli()
	all[userID] = append([]model.SavedReport{report}, all[userID]...)

	return write(s, KeyReports, all)
}

func (s *Store) Reports(ctx context.Context, userID string) ([]model.SavedReport, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	all, _, err := read[map[string][]model.SavedReport](s, KeyReports)
	if err != nil {
		return nil, err
	}
	return all[userID], nil
}

// UserStats 与服务端一样返回随机生成的模拟统计
func (s *Store) UserStats(ctx context.Context, userID string) (model.LearningStats, error) {
	if err := s.delay(ctx); err != nil {
		return model.LearningStats{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return mockdata.RandomStats(s.rng), nil
}
