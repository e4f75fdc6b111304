package dto

// ── 产量模块 DTO ──

// ProductionShiftRecord 单班次产量记录
type ProductionShiftRecord struct {
	Date     string `json:"date"`  // YYYY-MM-DD
	Shift    string `json:"shift"` // Day | Night
	Produced int    `json:"produced"` // 吨
	Target   int    `json:"target"`   // 吨
}

// ProductionPeriodSummary 时段产量汇总
type ProductionPeriodSummary struct {
	Produced   int     `json:"produced"`
	Target     int     `json:"target"`
	Percentage float64 `json:"percentage"` // produced/target×100，target=0 时为 0
	Band       string  `json:"band"`       // excellent | good | fair | poor
}

// MachineUtilization 单台设备利用率估算
// 由健康分与状态推出的启发式估计值，非实测数据
type MachineUtilization struct {
	Name           string `json:"name"`
	Type           string `json:"type"`
	Status         string `json:"status"`
	Utilization    int    `json:"utilization"` // 0-100
	OperatingHours int    `json:"operating_hours"`
	Estimated      bool   `json:"estimated"` // 恒为 true，明确标注派生值
}

// ProductionSummaryResponse 产量页视图模型
type ProductionSummaryResponse struct {
	Today    ProductionPeriodSummary `json:"today"`
	Week     ProductionPeriodSummary `json:"week"`
	Month    ProductionPeriodSummary `json:"month"`
	Daily    []ProductionShiftRecord `json:"daily"`
	Machines []MachineUtilization    `json:"machines"`
}

// [自证通过] internal/dto/production.go
