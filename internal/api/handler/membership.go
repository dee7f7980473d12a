package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wrstudios/estate_go_server/internal/api/middleware"
	"github.com/wrstudios/estate_go_server/internal/pkg/response"
	"github.com/wrstudios/estate_go_server/internal/service"
)

type MembershipHandler struct {
	quotaService *service.QuotaService
}

func NewMembershipHandler(quotaService *service.QuotaService) *MembershipHandler {
	return &MembershipHandler{quotaService: quotaService}
}

// Status 查询用户当前的会员与配额状态，本人或管理员可见
// GET /api/users/:id/membership
func (h *MembershipHandler) Status(c *gin.Context) {
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

	status, err := h.quotaService.Evaluate(id, time.Now())
	if err != nil {
		response.ServerError(c, err)
		return
	}

	response.Success(c, status)
}
