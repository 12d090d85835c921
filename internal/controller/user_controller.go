package controller

import (
	"errors"

	"github.com/gin-gonic/gin"

	"hitedu_backend/internal/service"
	"hitedu_backend/internal/util"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

type UpdateAvatarRequest struct {
	Avatar string `json:"avatar" binding:"required"`
}

// UpdateAvatar godoc
// @Summary 更新用户头像
// @Tags 用户
// @Accept  json
// @Produce  json
// @Param   id path string true "用户ID"
// @Param   body body UpdateAvatarRequest true "头像地址或 data-URI"
// @Success 200 {object} model.User "更新后的用户"
// @Failure 404 {object} util.ErrorBody "用户不存在"
// @Router /users/{id}/avatar [post]
func (c *UserController) UpdateAvatar(ctx *gin.Context) {
	var req UpdateAvatarRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateAvatar(ctx.Param("id"), req.Avatar)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.JSON(ctx, user)
}
