package service

import (
	"time"

	"hitedu_backend/internal/model"
	"hitedu_backend/internal/repository"
	"hitedu_backend/internal/util"
)

type ContentService struct {
	VideoRepo *repository.VideoRepository
}

func NewContentService(videoRepo *repository.VideoRepository) *ContentService {
	return &ContentService{VideoRepo: videoRepo}
}

func (s *ContentService) Videos() ([]model.Video, error) {
	return s.VideoRepo.List()
}

// AddVideo 补齐服务端生成的字段后入库。ID 和上传时间由服务端决定，
// 调用方提交的值会被忽略。
func (s *ContentService) AddVideo(video model.Video) (*model.Video, error) {
	video.ID = util.NewID()
	video.UploadDate = time.Now().UnixMilli()

	if err := s.VideoRepo.Prepend(&video); err != nil {
		return nil, err
	}
	return &video, nil
}
