package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wrstudios/estate_go_server/internal/api/middleware"
	"github.com/wrstudios/estate_go_server/internal/model/dto"
	"github.com/wrstudios/estate_go_server/internal/pkg/response"
	"github.com/wrstudios/estate_go_server/internal/service"
)

type UserHandler struct {
	userService *service.UserService
}

func NewUserHandler(userService *service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// Get 查询用户信息，本人或管理员可见
// GET /api/users/:id
func (h *UserHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "用户 ID 不合法")
		return
	}

	callerID, _ := middleware.GetUserID(c)
	if callerID != id && !middleware.IsAdmin(c) {
		response.PermissionError(c, "")
		return
	}

	info, err := h.userService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, err)
		return
	}

	response.Success(c, info)
}

// List 用户列表，仅管理员
// GET /api/users
func (h *UserHandler) List(c *gin.Context) {
	items, err := h.userService.List()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.Success(c, items)
}

// Update 更新用户资料，仅本人可操作
// PUT /api/users/:id
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "用户 ID 不合法")
		return
	}

	callerID, _ := middleware.GetUserID(c)
	if callerID != id {
		response.PermissionError(c, "只能修改自己的资料")
		return
	}

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "请求参数不合法")
		return
	}

	info, err := h.userService.UpdateProfile(id, &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, err)
		return
	}

	response.Success(c, info)
}

// Delete 删除用户，仅管理员
// DELETE /api/users/:id
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "用户 ID 不合法")
		return
	}

	if err := h.userService.Delete(id); err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, err)
		return
	}

	response.SuccessWithMessage(c, "用户已删除", nil)
}
