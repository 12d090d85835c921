package service

import (
	"time"

	"hitedu_backend/internal/model"
	"hitedu_backend/internal/repository"
	"hitedu_backend/internal/util"
)

type LearningService struct {
	LearningRepo *repository.LearningRepository
}

func NewLearningService(learningRepo *repository.LearningRepository) *LearningService {
	return &LearningService{LearningRepo: learningRepo}
}

func (s *LearningService) SaveProgress(userID, videoID string, timestamp float64) error {
	return s.LearningRepo.SaveProgress(userID, model.VideoProgress{
		VideoID:     videoID,
		Timestamp:   timestamp,
		Completed:   false,
		LastUpdated: time.Now().UnixMilli(),
	})
}

// Progress 未观看过的视频返回 0，不报错
func (s *LearningService) Progress(userID, videoID string) (float64, error) {
	progress, ok, err := s.LearningRepo.GetProgress(userID, videoID)
	if err != nil || !ok {
		return 0, err
	}
	return progress.Timestamp, nil
}

func (s *LearningService) SaveMistake(userID string, mistake model.MistakeRecord) (*model.MistakeRecord, error) {
	mistake.ID = util.NewID()
	mistake.Timestamp = time.Now().UnixMilli()

	if err := s.LearningRepo.PrependMistake(userID, mistake); err != nil {
		return nil, err
	}
	return &mistake, nil
}

func (s *LearningService) Mistakes(userID string) ([]model.MistakeRecord, error) {
	return s.LearningRepo.Mistakes(userID)
}

func (s *LearningService) SaveSchedule(userID string, items []model.ScheduleItem) error {
	return s.LearningRepo.SaveSchedule(userID, items)
}

func (s *LearningService) Schedule(userID string) ([]model.ScheduleItem, error) {
	return s.LearningRepo.Schedule(userID)
}

func (s *LearningService) SaveQuizResult(userID string, result model.QuizResult) (*model.QuizResult, error) {
	result.ID = util.NewID()
	result.Timestamp = time.Now().UnixMilli()

	if err := s.LearningRepo.PrependQuizResult(userID, result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (s *LearningService) SaveReport(userID string, report model.SavedReport) (*model.SavedReport, error) {
	report.ID = util.NewID()
	report.Timestamp = time.Now().UnixMilli()

	if err := s.LearningRepo.PrependReport(userID, report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (s *LearningService) Reports(userID string) ([]model.SavedReport, error) {
	return s.LearningRepo.Reports(userID)
}
