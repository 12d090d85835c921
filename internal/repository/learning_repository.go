package repository

import "hitedu_backend/internal/model"

// LearningRepository 学习数据：观看进度、错题、课表、测验成绩、报告
type LearningRepository struct {
	DB *FileDB
}

func NewLearningRepository(db *FileDB) *LearningRepository {
	return &LearningRepository{DB: db}
}

// SaveProgress 按 (userId, videoId) 覆盖写入
func (r *LearningRepository) SaveProgress(userID string, progress model.VideoProgress) error {
	return r.DB.Update(func(d *Data) error {
		d.Progress[model.ProgressKey(userID, progress.VideoID)] = progress
		return nil
	})
}

// GetProgress 没有记录不是错误，ok 为 false
func (r *LearningRepository) GetProgress(userID, videoID string) (model.VideoProgress, bool, error) {
	var progress model.VideoProgress
	var ok bool
	err := r.DB.View(func(d *Data) error {
		progress, ok = d.Progress[model.ProgressKey(userID, videoID)]
		return nil
	})
	return progress, ok, err
}

// PrependMistake 错题列表最新在前
func (r *LearningRepository) PrependMistake(userID string, mistake model.MistakeRecord) error {
	return r.DB.Update(func(d *Data) error {
		d.Mistakes[userID] = append([]model.MistakeRecord{mistake}, d.Mistakes[userID]...)
		return nil
	})
}

func (r *LearningRepository) Mistakes(userID string) ([]model.MistakeRecord, error) {
	var mistakes []model.MistakeRecord
	err := r.DB.View(func(d *Data) error {
		mistakes = append([]model.MistakeRecord(nil), d.Mistakes[userID]...)
		return nil
	})
	return mistakes, err
}

// SaveSchedule 整表替换，不做合并
func (r *LearningRepository) SaveSchedule(userID string, items []model.ScheduleItem) error {
	return r.DB.Update(func(d *Data) error {
		d.Schedules[userID] = append([]model.ScheduleItem(nil), items...)
		return nil
	})
}

func (r *LearningRepository) Schedule(userID string) ([]model.ScheduleItem, error) {
	var items []model.ScheduleItem
	err := r.DB.View(func(d *Data) error {
		items = append([]model.ScheduleItem(nil), d.Schedules[userID]...)
		return nil
	})
	return items, err
}

func (r *LearningRepository) PrependQuizResult(userID string, result model.QuizResult) error {
	return r.DB.Update(func(d *Data) error {
		d.QuizResults[userID] = append([]model.QuizResult{result}, d.QuizResults[userID]...)
		return nil
	})
}

func (r *LearningRepository) PrependReport(userID string, report model.SavedReport) error {
	return r.DB.Update(func(d *Data) error {
		d.Reports[userID] = append([]model.SavedReport{report}, d.Reports[userID]...)
		return nil
	})
}

func (r *LearningRepository) Reports(userID string) ([]model.SavedReport, error) {
	var reports []model.SavedReport
	err := r.DB.View(func(d *Data) error {
		reports = append([]model.SavedReport(nil), d.Reports[userID]...)
		return nil
	})
	return reports, err
}
