package app

import (
	"github.com/gin-gonic/gin"

	"hitedu_backend/pkg/monitoring"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		// 认证
		api.POST("/auth/login", c.auth.Login)
		api.POST("/auth/register", c.auth.Register)

		// 用户
		api.POST("/users/:id/avatar", c.user.UpdateAvatar)
		api.GET("/users/:id/stats", c.analytics.GetStats)

		// 视频
		api.GET("/videos", c.content.GetVideos)
		api.POST("/videos", c.content.AddVideo)

		// 学习数据
		api.POST("/users/:id/progress", c.learning.SaveProgress)
		api.GET("/users/:id/progress/:vid", c.learning.GetProgress)
		api.POST("/users/:id/mistakes", c.learning.SaveMistake)
		api.GET("/users/:id/mistakes", c.learning.GetMistakes)
		api.POST("/users/:id/schedule", c.learning.SaveSchedule)
		api.GET("/users/:id/schedule", c.learning.GetSchedule)
		api.POST("/users/:id/quiz-results", c.learning.SaveQuizResult)
		api.POST("/users/:id/reports", c.learning.SaveReport)
		api.GET("/users/:id/reports", c.learning.GetReports)
	}
}
