package dto

// ── 隐患模块 DTO ──

// HazardListRequest 隐患列表查询参数
type HazardListRequest struct {
	Status   string `form:"status"   binding:"omitempty,oneof=Pending In-progress Resolved"`
	Severity string `form:"severity" binding:"omitempty,oneof=Low Medium High Critical"`
}

// CreateHazardRequest 隐患上报请求
// status/assigned_to 不接受调用方取值：员工上报强制 Pending、未指派
type CreateHazardRequest struct {
	Category    string   `json:"category"    binding:"required,max=100"`
	Severity    string   `json:"severity"    binding:"required,oneof=Low Medium High Critical"`
	Location    string   `json:"location"    binding:"required,max=100"`
	Description string   `json:"description" binding:"required"`
	Images      []string `json:"images"      binding:"omitempty,dive,max=255"`
}

// UpdateHazardRequest 更新隐患请求（管理员，浅合并；状态流转走 SetStatus）
type UpdateHazardRequest struct {
	Category    *string `json:"category"     binding:"omitempty,max=100"`
	Severity    *string `json:"severity"     binding:"omitempty,oneof=Low Medium High Critical"`
	Location    *string `json:"location"     binding:"omitempty,max=100"`
	Description *string `json:"description"  binding:"omitempty"`
	AssignedTo  *string `json:"assigned_to"  binding:"omitempty,max=64"`
	ActionTaken *string `json:"action_taken" binding:"omitempty"`
}

// SetHazardStatusRequest 隐患状态流转请求
// 任意状态间可互转；转入 Resolved 时盖 resolved_at，其余流转将其清空
type SetHazardStatusRequest struct {
	Status     string  `json:"status"      binding:"required,oneof=Pending In-progress Resolved"`
	AssignedTo *string `json:"assigned_to" binding:"omitempty,max=64"`
}

// HazardResponse 隐患响应
type HazardResponse struct {
	ID          string   `json:"id"`
	ReportedBy  string   `json:"reported_by"`
	Category    string   `json:"category"`
	Severity    string   `json:"severity"`
	Location    string   `json:"location"`
	Description string   `json:"description"`
	Status      string   `json:"status"`
	AssignedTo  *string  `json:"assigned_to"`
	Images      []string `json:"images"`
	ActionTaken string   `json:"action_taken"`
	ResolvedAt  *string  `json:"resolved_at"`
	CreatedAt   string   `json:"created_at"`
}

// HazardStatsResponse 隐患聚合统计
type HazardStatsResponse struct {
	ActiveCount  int              `json:"active_count"` // status != Resolved
	RecentActive []HazardResponse `json:"recent_active"`
}

// [自证通过] internal/dto/hazard.go
