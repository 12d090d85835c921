package controller

import (
	"github.com/gin-gonic/gin"

	"hitedu_backend/internal/model"
	"hitedu_backend/internal/service"
	"hitedu_backend/internal/util"
)

type ContentController struct {
	ContentService *service.ContentService
}

func NewContentController(contentService *service.ContentService) *ContentController {
	return &ContentController{ContentService: contentService}
}

// GetVideos godoc
// @Summary 视频列表
// @Tags 内容
// @Produce  json
// @Success 200 {array} model.Video
// @Router /videos [get]
func (c *ContentController) GetVideos(ctx *gin.Context) {
	videos, err := c.ContentService.Videos()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.JSON(ctx, videos)
}

// swagger:model AddVideoRequest
type AddVideoRequest struct {
	Title       string               `json:"title" binding:"required"`
	Description string               `json:"description"`
	Thumbnail   string               `json:"thumbnail"`
	URL         string               `json:"url" binding:"required"`
	Duration    string               `json:"duration"`
	DurationSec int                  `json:"durationSec"`
	Category    string               `json:"category"`
	UploaderID  string               `json:"uploaderId"`
	Chapters    []model.VideoChapter `json:"chapters"`
	Quizzes     []model.VideoQuiz    `json:"quizzes"`
}

// AddVideo godoc
// @Summary 新增视频
// @Description ID 和上传时间由服务端生成
// @Tags 内容
// @Accept  json
// @Produce  json
// @Param   body body AddVideoRequest true "视频信息"
// @Success 200 {object} model.Video
// @Router /videos [post]
func (c *ContentController) AddVideo(ctx *gin.Context) {
	var req AddVideoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	video, err := c.ContentService.AddVideo(model.Video{
		Title:       req.Title,
		Description: req.Description,
		Thumbnail:   req.Thumbnail,
		URL:         req.URL,
		Duration:    req.Duration,
		DurationSec: req.DurationSec,
		Category:    req.Category,
		UploaderID:  req.UploaderID,
		Chapters:    req.Chapters,
		Quizzes:     req.Quizzes,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.JSON(ctx, video)
}
