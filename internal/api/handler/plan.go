package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wrstudios/estate_go_server/internal/model/dto"
	"github.com/wrstudios/estate_go_server/internal/pkg/response"
	"github.com/wrstudios/estate_go_server/internal/service"
)

type PlanHandler struct {
	planService *service.PlanService
}

func NewPlanHandler(planService *service.PlanService) *PlanHandler {
	return &PlanHandler{planService: planService}
}

// List 套餐列表，公开接口
// GET /api/plans
func (h *PlanHandler) List(c *gin.Context) {
	plans, err := h.planService.List()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.Success(c, plans)
}

// Get 套餐详情，公开接口
// GET /api/plans/:id
func (h *PlanHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "套餐 ID 不合法")
		return
	}

	plan, err := h.planService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrPlanNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, err)
		return
	}

	response.Success(c, plan)
}

// Create 创建套餐，仅管理员
// POST /api/plans
func (h *PlanHandler) Create(c *gin.Context) {
	var req dto.CreatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "请求参数不合法")
		return
	}

	plan, err := h.planService.Create(&req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlanNameExists):
			response.ConflictError(c, err.Error())
		default:
			response.ServerError(c, err)
		}
		return
	}

	response.Created(c, plan)
}

// Update 更新套餐，仅管理员
// PUT /api/plans/:id
func (h *PlanHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "套餐 ID 不合法")
		return
	}

	var req dto.UpdatePlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "请求参数不合法")
		return
	}

	plan, err := h.planService.Update(id, &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrPlanNotFound):
			response.NotFoundError(c, err.Error())
		case errors.Is(err, service.ErrPlanInUse):
			response.ConflictError(c, err.Error())
		default:
			response.ServerError(c, err)
		}
		return
	}

	response.Success(c, plan)
}

// Delete 删除套餐，仅管理员
// DELETE /api/plans/:id
func (h *PlanHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "套餐 ID 不合法")
		return
	}

	if err := h.planService.Delete(id); err != nil {
		switch {
		case errors.Is(err, service.ErrPlanNotFound):
			response.NotFoundError(c, err.Error())
		case errors.Is(err, service.ErrPlanInUse):
			response.ConflictError(c, err.Error())
		default:
			response.ServerError(c, err)
		}
		return
	}

	response.SuccessWithMessage(c, "套餐已删除", nil)
}
