package repository

import "hitedu_backend/internal/model"

type VideoRepository struct {
	DB *FileDB
}

func NewVideoRepository(db *FileDB) *VideoRepository {
	return &VideoRepository{DB: db}
}

func (r *VideoRepository) List() ([]model.Video, error) {
	var videos []model.Video
	err := r.DB.View(func(d *Data) error {
		videos = append([]model.Video(nil), d.Videos...)
		return nil
	})
	return videos, err
}

// Prepend 新视频排在列表最前
func (r *VideoRepository) Prepend(video *model.Video) error {
	return r.DB.Update(func(d *Data) error {
		d.Videos = append([]model.Video{*video}, d.Videos...)
		return nil
	})
}
