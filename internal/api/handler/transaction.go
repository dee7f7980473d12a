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

type TransactionHandler struct {
	transactionService *service.TransactionService
}

func NewTransactionHandler(transactionService *service.TransactionService) *TransactionHandler {
	return &TransactionHandler{transactionService: transactionService}
}

// Create 提交套餐购买流水
// POST /api/transactions
func (h *TransactionHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.AuthError(c, "")
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "请求参数不合法")
		return
	}

	txn, err := h.transactionService.Create(userID, &req)
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.Created(c, dto.CreateTransactionResponse{ID: txn.ID})
}

// List 流水列表，仅管理员
// GET /api/transactions
func (h *TransactionHandler) List(c *gin.Context) {
	txns, err := h.transactionService.List()
	if err != nil {
		response.ServerError(c, err)
		return
	}
	response.Success(c, txns)
}

// Get 查询单条流水，本人或管理员可见
// GET /api/transactions/:id
func (h *TransactionHandler) Get(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "流水 ID 不合法")
		return
	}

	txn, err := h.transactionService.Get(id)
	if err != nil {
		if errors.Is(err, service.ErrTransactionNotFound) {
			response.NotFoundError(c, err.Error())
			return
		}
		response.ServerError(c, err)
		return
	}

	callerID, _ := middleware.GetUserID(c)
	if txn.UserID != callerID && !middleware.IsAdmin(c) {
		response.PermissionError(c, "")
		return
	}

	response.Success(c, txn)
}

// UpdateStatus 审批流水，仅管理员。approved 会同步授予会员
// PUT /api/transactions/:id/status
func (h *TransactionHandler) UpdateStatus(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.ParamError(c, "流水 ID 不合法")
		return
	}

	var req dto.UpdateTransactionStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ParamError(c, "状态只能为 approved 或 rejected")
		return
	}

	if err := h.transactionService.SetStatus(id, req.Status); err != nil {
		switch {
		case errors.Is(err, service.ErrTransactionNotFound):
			response.NotFoundError(c, err.Error())
		case errors.Is(err, service.ErrTransactionFinalized):
			response.ConflictError(c, err.Error())
		case errors.Is(err, service.ErrInvalidTargetStatus):
			response.ParamError(c, err.Error())
		case errors.Is(err, service.ErrGrantPlanNotFound):
			response.ConflictError(c, err.Error())
		default:
			response.ServerError(c, err)
		}
		return
	}

	response.SuccessWithMessage(c, "审批完成", nil)
}
