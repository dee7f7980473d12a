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

type PostHandler struct {
	postService *service.PostService
}

func NewPostHandler(postService *service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// Create 发布房源，受会员配额约束
// POST /api/posts
func (h *PostHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "请求参数不合法")
		return
	}

	post, err := h.postService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		var limitErr *service.PostLimitReachedError
		switch {
		case errors.Is(err, service.ErrMembershipRequired):
			response.PermissionError(c, err.Error())
		case errors.As(err, &limitErr):
			response.PermissionError(c, limitErr.Error())
		default:
			response.ServerError(c, err)
		}
		return
	}

	response.Created(c, dto.CreatePostResponse{ID: post.ID})
}

// List 房源列表，公开接口
// GET /api/posts
func (h *PostHandler) List(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	items, total, err := h.postService.List(page, pageSize)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.SuccessPage(c, total, page, pageSize, items)
}

// Get 房源详情，公开接口
// GET /api/posts/:id
func (h *PostHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "房源 ID 不合法")
		return
	}

	post, err := h.postService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, err)
		return
	}

	response.Success(c, post)
}

// Delete 删除房源，仅本人或管理员
// DELETE /api/posts/:id
func (h *PostHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "房源 ID 不合法")
		return
	}

	userID, _ := middleware.GetUserID(c)

	if err := h.postService.Delete(userID, middleware.IsAdmin(c), id); err != nil {
		switch {
		case errors.Is(err, service.ErrPostNotFound):
			response.NotFoundError(c, err.Error())
		case errors.Is(err, service.ErrPostPermission):
			response.PermissionError(c, err.Error())
		default:
			response.ServerError(c, err)
		}
		return
	}

	response.SuccessWithMessage(c, "房源已删除", nil)
}

// ListImages 房源图片列表，公开接口
// GET /api/posts/:id/images
func (h *PostHandler) ListImages(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "房源 ID 不合法")
		return
	}

	urls, err := h.postService.ListImages(id)
	if err != nil {
		if errors.Is(err, service.ErrPostNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, err)
		return
	}

	response.Success(c, urls)
}
