package controller

import (
	"github.com/gin-gonic/gin"

	"hitedu_backend/internal/service"
	"hitedu_backend/internal/util"
)

type AnalyticsController struct {
	AnalyticsService *service.AnalyticsService
}

func NewAnalyticsController(analyticsService *service.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{AnalyticsService: analyticsService}
}

// GetStats godoc
// @Summary 学习统计
// @Description 模拟聚合，每次请求重新生成
// @Tags 统计
// @Produce  json
// @Param   id path string true "用户ID"
// @Success 200 {object} model.LearningStats
// @Router /users/{id}/stats [get]
func (c *AnalyticsController) GetStats(ctx *gin.Context) {
	util.JSON(ctx, c.AnalyticsService.Stats(ctx.Param("id")))
}
