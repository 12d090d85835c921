package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hitedu_backend/internal/model"
	"hitedu_backend/internal/service"
	"hitedu_backend/internal/util"
)

type AuthController struct {
	AuthService *service.AuthService
}

func NewAuthController(authService *service.AuthService) *AuthController {
	return &AuthController{AuthService: authService}
}

// swagger:model LoginRequest
type LoginRequest struct {
	Username string     `json:"username" binding:"required"`
	Password string     `json:"password" binding:"required"`
	Role     model.Role `json:"role" binding:"required,oneof=student teacher"`
}

// Login godoc
// @Summary 用户登录
// @Description 用户名、密码、角色三者同时校验，返回不含密码的用户信息
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body LoginRequest true "登录凭据"
// @Success 200 {object} model.User "成功"
// @Failure 400 {object} util.ErrorBody "请求参数错误"
// @Failure 401 {object} util.ErrorBody "用户名、密码或角色错误"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Login(req.Username, req.Password, req.Role)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Unauthorized(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.JSON(ctx, user)
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Username string     `json:"username" binding:"required"`
	Password string     `json:"password" binding:"required"`
	Email    string     `json:"email" binding:"required,email"`
	Role     model.Role `json:"role" binding:"required,oneof=student teacher"`
}

// Register godoc
// @Summary 注册新用户
// @Description 用户名在同一角色下唯一，不同角色可以重复注册
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body RegisterRequest true "注册信息"
// @Success 200 {object} model.User "成功"
// @Failure 400 {object} util.ErrorBody "用户已存在"
// @Router /auth/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Register(req.Username, req.Password, req.Email, req.Role)
	if err != nil {
		if errors.Is(err, util.ErrUserExists) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.JSON(ctx, user)
}
