package service

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"coalsight/backend/internal/model"
)

func setupTestEquipmentService() (EquipmentService, *mockEquipmentRepo) {
	repo, _, _, _, _, equipmentRepo, _ := testRepos()
	svc := NewEquipmentService(repo, zap.NewNop())
	return svc, equipmentRepo
}

// ── 色带纯函数测试 ──

func TestHealthBand(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, BandGood},
		{80, BandGood},
		{79, BandWarning},
		{60, BandWarning},
		{59, BandCritical},
		{0, BandCritical},
	}
	for _, tt := range tests {
		if got := HealthBand(tt.score); got != tt.want {
			t.Errorf("HealthBand(%d) = %s，期望 %s", tt.score, got, tt.want)
		}
	}
}

func TestTemperatureBand(t *testing.T) {
	tests := []struct {
		temperature int
		want        string
	}{
		{60, BandGood},
		{74, BandGood},
		{75, BandWarning},
		{84, BandWarning},
		{85, BandCritical},
		{110, BandCritical},
	}
	for _, tt := range tests {
		if got := TemperatureBand(tt.temperature); got != tt.want {
			t.Errorf("TemperatureBand(%d) = %s，期望 %s", tt.temperature, got, tt.want)
		}
	}
}

func TestMaintenanceUrgency(t *testing.T) {
	tests := []struct {
		days int
		want string
	}{
		{-5, UrgencyOverdue},
		{0, UrgencyOverdue},
		{1, UrgencyUrgent},
		{3, UrgencyUrgent},
		{4, UrgencyWarning},
		{7, UrgencyWarning},
		{8, UrgencyNormal},
		{30, UrgencyNormal},
	}
	for _, tt := range tests {
		if got := MaintenanceUrgency(tt.days); got != tt.want {
			t.Errorf("MaintenanceUrgency(%d) = %s，期望 %s", tt.days, got, tt.want)
		}
	}
}

func TestUtilizationEstimate(t *testing.T) {
	tests := []struct {
		name string
		eq   model.Equipment
		want int
	}{
		{"正常运行取健康分", model.Equipment{Status: model.EquipmentOperational, HealthScore: 92}, 92},
		{"Warning 打七折", model.Equipment{Status: model.EquipmentWarning, HealthScore: 67}, 47},
		{"Maintenance 归零", model.Equipment{Status: model.EquipmentMaintenance, HealthScore: 88}, 0},
		{"Offline 不打折", model.Equipment{Status: model.EquipmentOffline, HealthScore: 50}, 50},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UtilizationEstimate(&tt.eq); got != tt.want {
				t.Errorf("期望 %d，实际=%d", tt.want, got)
			}
		})
	}
}

// ── 聚合测试 ──

func TestEquipmentStats_AverageHealth(t *testing.T) {
	svc, equipmentRepo := setupTestEquipmentService()
	equipmentRepo.items = append(equipmentRepo.items,
		&model.Equipment{EquipmentID: "eq-1", Name: "采煤机", Type: "Shearer", Status: model.EquipmentOperational, HealthScore: 100, NextMaintenance: "2099-01-01", LastMaintenance: "2026-01-01"},
		&model.Equipment{EquipmentID: "eq-2", Name: "卡车", Type: "Haul Truck", Status: model.EquipmentWarning, HealthScore: 50, NextMaintenance: "2099-01-01", LastMaintenance: "2026-01-01"},
	)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats 应成功: %v", err)
	}
	if stats.Total != 2 {
		t.Errorf("期望 Total=2，实际=%d", stats.Total)
	}
	if stats.AverageHealth != 75 {
		t.Errorf("期望 AverageHealth=75，实际=%v", stats.AverageHealth)
	}
	if stats.NoData {
		t.Error("有设备时 no_data 应为 false")
	}
	if len(stats.Items) != 2 {
		t.Fatalf("期望逐台条目 2 条，实际=%d", len(stats.Items))
	}
	if stats.Items[0].HealthBand != BandGood {
		t.Errorf("eq-1 健康色带应为 good，实际=%s", stats.Items[0].HealthBand)
	}
	if stats.Items[1].HealthBand != BandCritical {
		t.Errorf("eq-2 健康色带应为 critical，实际=%s", stats.Items[1].HealthBand)
	}
}

func TestEquipmentStats_EmptyFleet(t *testing.T) {
	svc, _ := setupTestEquipmentService()

	// 空集合不是错误：均值 0 并显式报 no_data
	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("空集合 Stats 不应报错: %v", err)
	}
	if stats.Total != 0 {
		t.Errorf("期望 Total=0，实际=%d", stats.Total)
	}
	if stats.AverageHealth != 0 {
		t.Errorf("期望 AverageHealth=0，实际=%v", stats.AverageHealth)
	}
	if !stats.NoData {
		t.Error("空集合应报 no_data=true")
	}
}

func TestEquipmentStats_MaintenanceOverdue(t *testing.T) {
	svc, equipmentRepo := setupTestEquipmentService()
	equipmentRepo.items = append(equipmentRepo.items, &model.Equipment{
		EquipmentID: "eq-1", Name: "装载机", Type: "Loader",
		Status: model.EquipmentMaintenance, HealthScore: 43,
		LastMaintenance: "2026-01-01", NextMaintenance: "2000-01-01",
	})

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats 应成功: %v", err)
	}
	if stats.Items[0].MaintenanceUrgency != UrgencyOverdue {
		t.Errorf("保养早已过期，期望 overdue，实际=%s", stats.Items[0].MaintenanceUrgency)
	}
	if stats.Items[0].MaintenanceDueDays >= 0 {
		t.Errorf("过期设备 due_days 应为负，实际=%d", stats.Items[0].MaintenanceDueDays)
	}
}
