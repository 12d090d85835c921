package util

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"hitedu_backend/pkg/logger"
)

// 响应不走统一信封：成功直接返回实体 JSON，失败返回 {"error": msg}。
// 客户端的降级判定依赖这个形状，不能改。

// ErrorBody 失败响应体
type ErrorBody struct {
	Error string `json:"error"`
}

func JSON(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

func Error(c *gin.Context, code int, message string) {
	c.JSON(code, ErrorBody{Error: message})
}

func BadRequest(c *gin.Context, message string) {
	Error(c, http.StatusBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	Error(c, http.StatusUnauthorized, message)
}

func NotFound(c *gin.Context, message string) {
	Error(c, http.StatusNotFound, message)
}

func InternalServerError(c *gin.Context) {
	Error(c, http.StatusInternalServerError, "Internal server error")
}

func LogInternalError(c *gin.Context, err error) {
	logger.Log.Error("Internal server error",
		zap.String("path", c.FullPath()),
		zap.Error(err),
	)
	InternalServerError(c)
}

// Success 写操作的确认响应 {"success": true}
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
