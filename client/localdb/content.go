package localdb

import (
	"context"
	"time"

	"hitedu_backend/internal/mockdata"
	"hitedu_backend/internal/model"
	"hitedu_backend/internal/util"
)

// ensureVideos 懒初始化视频集合，种子为固定的演示课程
func (s *Store) ensureVideos() ([]model.Video, error) {
	videos, ok, err := read[[]model.Video](s, KeyVideos)
	if err != nil {
		return nil, err
	}
	if !ok {
		videos = mockdata.DefaultVideos()
		if err := write(s, KeyVideos, videos); err != nil {
			return nil, err
		}
	}
	return videos, nil
}

func (s *Store) Videos(ctx context.Context) ([]model.Video, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ensureVideos()
}

// AddVideo 生成 ID 与上传时间后插入列表头部
func (s *Store) AddVideo(ctx context.Context, video model.Video) (*model.Video, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	videos, err := s.ensureVideos()
	if err != nil {
		return nil, err
	}

	video.ID = util.NewID()
	video.UploadDate = time.Now().UnixMilli()

	videos = append([]model.Video{video}, videos...)
	if err := write(s, KeyVideos, videos); err != nil {
		return nil, err
	}
	return &video, nil
}

// SaveVideoProgress 按 userId_videoId 复合键整条覆盖
func (s *Store) SaveVideoProgress(ctx context.Context, userID, videoID string, timestamp float64) error {
	if err := s.delay(ctx); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	progress, _, err := read[map[string]model.VideoProgress](s, KeyProgress)
	if err != nil {
		return err
	}
	if progress == nil {
		progress = map[string]model.VideoProgress{}
	}

	progress[model.ProgressKey(userID, videoID)] = model.VideoProgress{
		VideoID:     videoID,
		Timestamp:   timestamp,
		Completed:   false,
		LastUpdated: time.Now().UnixMilli(),
	}
	return write(s, KeyProgress, progress)
}

// VideoProgress 没有记录返回 0
func (s *Store) VideoProgress(ctx context.Context, userID, videoID string) (float64, error) {
	if err := s.delay(ctx); err != nil {
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	progress, ok, err := read[map[string]model.VideoProgress](s, KeyProgress)
	if err != nil || !ok {
		return 0, err
	}
	return progress[model.ProgressKey(userID, videoID)].Timestamp, nil
}
