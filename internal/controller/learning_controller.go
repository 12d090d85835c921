package controller

import (
	"github.com/gin-gonic/gin"

	"hitedu_backend/internal/model"
	"hitedu_backend/internal/service"
	"hitedu_backend/internal/util"
)

type LearningController struct {
	LearningService *service.LearningService
}

func NewLearningController(learningService *service.LearningService) *LearningController {
	return &LearningController{LearningService: learningService}
}

type SaveProgressRequest struct {
	VideoID   string  `json:"videoId" binding:"required"`
	Timestamp float64 `json:"timestamp"`
}

// SaveProgress godoc
// @Summary 保存观看进度
// @Description 同一 (用户, 视频) 的进度整条覆盖
// @Tags 学习
// @Accept  json
// @Produce  json
// @Param   id path string true "用户ID"
// @Param   body body SaveProgressRequest true "进度"
// @Success 200 {object} object "{success:true}"
// @Router /users/{id}/progress [post]
func (c *LearningController) SaveProgress(ctx *gin.Context) {
	var req SaveProgressRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.LearningService.SaveProgress(ctx.Param("id"), req.VideoID, req.Timestamp); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx)
}

// GetProgress godoc
// @Summary 读取观看进度
// @Description 从未观看过的视频返回 timestamp 0
// @Tags 学习
// @Produce  json
// @Param   id path string true "用户ID"
// @Param   vid path string true "视频ID"
// @Success 200 {object} object "{timestamp:number}"
// @Router /users/{id}/progress/{vid} [get]
func (c *LearningController) GetProgress(ctx *gin.Context) {
	timestamp, err := c.LearningService.Progress(ctx.Param("id"), ctx.Param("vid"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.JSON(ctx, gin.H{"timestamp": timestamp})
}

type SaveMistakeRequest struct {
	Question    model.QuizQuestion `json:"question" binding:"required"`
	WrongAnswer any                `json:"wrongAnswer"`
	Topic       string             `json:"topic"`
}

// SaveMistake godoc
// @Summary 保存错题
// @Tags 学习
// @Accept  json
// @Produce  json
// @Param   id path string true "用户ID"
// @Param   body body SaveMistakeRequest true "错题"
// @Success 200 {object} model.MistakeRecord "入库后的错题记录"
// @Router /users/{id}/mistakes [post]
func (c *LearningController) SaveMistake(ctx *gin.Context) {
	var req SaveMistakeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	mistake, err := c.LearningService.SaveMistake(ctx.Param("id"), model.MistakeRecord{
		Question:    req.Question,
		WrongAnswer: req.WrongAnswer,
		Topic:       req.Topic,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.JSON(ctx, mistake)
}

// GetMistakes godoc
// @Summary 错题列表（最新在前）
// @Tags 学习
// @Produce  json
// @Param   id path string true "用户ID"
// @Success 200 {array} model.MistakeRecord
// @Router /users/{id}/mistakes [get]
func (c *LearningController) GetMistakes(ctx *gin.Context) {
	mistakes, err := c.LearningService.Mistakes(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if mistakes == nil {
		mistakes = []model.MistakeRecord{}
	}
	util.JSON(ctx, mistakes)
}

// SaveSchedule godoc
// @Summary 保存课表
// @Description 请求体是完整课表数组，整表替换
// @Tags 学习
// @Accept  json
// @Produce  json
// @Param   id path string true "用户ID"
// @Param   body body []model.ScheduleItem true "课表"
// @Success 200 {object} object "{success:true}"
// @Router /users/{id}/schedule [post]
func (c *LearningController) SaveSchedule(ctx *gin.Context) {
	var items []model.ScheduleItem
	if err := ctx.ShouldBindJSON(&items); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.LearningService.SaveSchedule(ctx.Param("id"), items); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx)
}

// GetSchedule godoc
// @Summary 读取课表
// @Tags 学习
// @Produce  json
// @Param   id path string true "用户ID"
// @Success 200 {array} model.ScheduleItem
// @Router /users/{id}/schedule [get]
func (c *LearningController) GetSchedule(ctx *gin.Context) {
	items, err := c.LearningService.Schedule(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if items == nil {
		items = []model.ScheduleItem{}
	}
	util.JSON(ctx, items)
}

type SaveQuizResultRequest struct {
	Topic          string `json:"topic"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"totalQuestions"`
}

// SaveQuizResult 保存 AI 测验成绩
func (c *LearningController) SaveQuizResult(ctx *gin.Context) {
	var req SaveQuizResultRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.LearningService.SaveQuizResult(ctx.Param("id"), model.QuizResult{
		Topic:          req.Topic,
		Score:          req.Score,
		TotalQuestions: req.TotalQuestions,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.JSON(ctx, result)
}

type SaveReportRequest struct {
	Title    string                `json:"title"`
	Content  string                `json:"content"`
	Analysis *model.ReportAnalysis `json:"analysis"`
}

// SaveReport 保存实验报告存档
func (c *LearningController) SaveReport(ctx *gin.Context) {
	var req SaveReportRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	report, err := c.LearningService.SaveReport(ctx.Param("id"), model.SavedReport{
		Title:    req.Title,
		Content:  req.Content,
		Analysis: req.Analysis,
	})
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.JSON(ctx, report)
}

// GetReports 报告列表（最新在前）
func (c *LearningController) GetReports(ctx *gin.Context) {
	reports, err := c.LearningService.Reports(ctx.Param("id"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if reports == nil {
		reports = []model.SavedReport{}
	}
	util.JSON(ctx, reports)
}
