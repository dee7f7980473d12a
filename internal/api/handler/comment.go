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

type CommentHandler struct {
	commentService *service.CommentService
}

func NewCommentHandler(commentService *service.CommentService) *CommentHandler {
	return &CommentHandler{commentService: commentService}
}

// Create 发表评论或回复
// POST /api/posts/:id/comments
func (h *CommentHandler) Create(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "房源 ID 不合法")
		return
	}

	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "请求参数不合法")
		return
	}

	item, err := h.commentService.Create(userID, postID, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			response.NotFoundError(c, err.Error())
		case errors.Is(err, service.ErrParentNotFound):
			response.NotFoundError(c, err.Error())
		case errors.Is(err, service.ErrParentNotInPost):
			response.ParamError(c, err.Error())
		default:
			response.ServerError(c, err)
		}
		return
	}

	response.Created(c, item)
}

// List 房源评论列表，公开接口
// GET /api/posts/:id/comments
func (h *CommentHandler) List(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "房源 ID 不合法")
		return
	}

	items, err := h.commentService.ListByPostID(postID)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, err)
		return
	}

	response.Success(c, items)
}

// Delete 删除评论，仅本人或管理员
// DELETE /api/comments/:id
func (h *CommentHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "评论 ID 不合法")
		return
	}

	userID, _ := middleware.GetUserID(c)

	if err := h.commentService.Delete(userID, middleware.IsAdmin(c), id); err != nil {
		switch {
		case errors.Is(err, service.ErrCommentNotFound):
			response.NotFoundError(c, err.Error())
		case errors.Is(err, service.ErrCommentPermission):
			response.PermissionError(c, err.Error())
		default:
			response.ServerError(c, err)
		}
		return
	}

	response.SuccessWithMessage(c, "评论已删除", nil)
}
