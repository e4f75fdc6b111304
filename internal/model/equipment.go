package model

// ── 设备状态 ──

const (
	EquipmentOperational = "Operational"
	EquipmentWarning     = "Warning"
	EquipmentMaintenance = "Maintenance"
	EquipmentOffline     = "Offline"
)

// Equipment 设备档案表 — 对应 equipment
type Equipment struct {
	EquipmentID     string `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"equipment_id"`
	Name            string `gorm:"type:varchar(100);not null"                     json:"name"`
	Type            string `gorm:"type:varchar(100);not null"                     json:"type"`
	Status          string `gorm:"type:varchar(20);not null"                      json:"status"` // Operational | Warning | Maintenance | Offline
	Location        string `gorm:"type:varchar(100);not null"                     json:"location"`
	HealthScore     int    `gorm:"not null"                                       json:"health_score"` // 0-100
	FuelLevel       *int   `json:"fuel_level,omitempty"`                          // 0-100，电驱设备无此值
	Temperature     int    `gorm:"not null;default:0"                             json:"temperature"`
	LastMaintenance string `gorm:"type:varchar(10);not null"                      json:"last_maintenance"` // YYYY-MM-DD
	NextMaintenance string `gorm:"type:varchar(10);not null"                      json:"next_maintenance"` // YYYY-MM-DD
	OperatingHours  int    `gorm:"not null;default:0"                             json:"operating_hours"`
	BaseModel
}

// TableName 指定表名
func (Equipment) TableName() string { return "equipment" }

// [自证通过] internal/model/equipment.go
