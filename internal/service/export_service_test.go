package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap"

	"coalsight/backend/internal/model"
)

// ── 测试辅助 ──

func setupTestExportService() (ExportService, *mockAttendanceRepo, *mockEmployeeRepo, *mockEquipmentRepo) {
	repo, _, employeeRepo, attendanceRepo, _, equipmentRepo, _ := testRepos()
	svc := NewExportService(repo, zap.NewNop())
	return svc, attendanceRepo, employeeRepo, equipmentRepo
}

// ── AttendanceSheet 测试 ──

func TestExportService_AttendanceSheet_Success(t *testing.T) {
	svc, attendanceRepo, employeeRepo, _ := setupTestExportService()

	employeeRepo.employees = append(employeeRepo.employees,
		&model.Employee{EmployeeID: "emp-1", Name: "张伟", Department: "采掘一队"},
	)
	checkIn := "08:02:11"
	loc := "主井口"
	attendanceRepo.records = append(attendanceRepo.records,
		&model.Attendance{
			AttendanceID: "att-1",
			EmployeeID:   "emp-1",
			Date:         "2026-03-15",
			CheckIn:      &checkIn,
			Status:       model.AttendancePresent,
			Location:     &loc,
		},
	)

	buf, filename, err := svc.AttendanceSheet(context.Background(), "2026-03-15")
	if err != nil {
		t.Fatalf("AttendanceSheet 应成功: %v", err)
	}
	if buf == nil || buf.Len() == 0 {
		t.Error("导出的 Excel buffer 不应为空")
	}
	if filename != "attendance_2026-03-15.xlsx" {
		t.Errorf("文件名错误: %s", filename)
	}
	// Excel .xlsx 文件以 PK (0x504B) 开头
	if buf.Len() > 2 {
		header := buf.Bytes()[:2]
		if header[0] != 0x50 || header[1] != 0x4B {
			t.Error("输出内容不是有效的 xlsx 文件格式（应以 PK 开头）")
		}
	}
}

func TestExportService_AttendanceSheet_DefaultsToToday(t *testing.T) {
	svc, _, _, _ := setupTestExportService()

	today := time.Now().Format("2006-01-02")
	buf, filename, err := svc.AttendanceSheet(context.Background(), "")
	if err != nil {
		t.Fatalf("无记录日期的导出也应成功: %v", err)
	}
	if buf == nil || buf.Len() == 0 {
		t.Error("空表头导出也应产出有效文件")
	}
	if filename != "attendance_"+today+".xlsx" {
		t.Errorf("空日期应回落当天，实际文件名=%s", filename)
	}
}

// ── MaintenanceCalendar 测试 ──

func TestExportService_MaintenanceCalendar_Success(t *testing.T) {
	svc, _, _, equipmentRepo := setupTestExportService()

	equipmentRepo.items = append(equipmentRepo.items,
		&model.Equipment{
			EquipmentID:     "eq-1",
			Name:            "采煤机 MG-300",
			Type:            "Shearer",
			Status:          model.EquipmentOperational,
			Location:        "3号工作面",
			HealthScore:     92,
			NextMaintenance: "2026-09-10",
		},
		&model.Equipment{
			EquipmentID:     "eq-2",
			Name:            "主通风机",
			Type:            "Fan",
			Status:          model.EquipmentWarning,
			Location:        "通风井",
			HealthScore:     67,
			NextMaintenance: "2026-09-03",
		},
	)

	data, err := svc.MaintenanceCalendar(context.Background())
	if err != nil {
		t.Fatalf("MaintenanceCalendar 应成功: %v", err)
	}
	out := string(data)
	if !strings.Contains(out, "BEGIN:VCALENDAR") || !strings.Contains(out, "END:VCALENDAR") {
		t.Error("输出应为完整 iCalendar 文档")
	}
	if strings.Count(out, "BEGIN:VEVENT") != 2 {
		t.Errorf("期望 2 个 VEVENT，实际=%d", strings.Count(out, "BEGIN:VEVENT"))
	}
	if !strings.Contains(out, "maintenance-eq-1@coalsight") {
		t.Error("事件 UID 应包含设备 ID")
	}
}

func TestExportService_MaintenanceCalendar_SkipsBadDates(t *testing.T) {
	svc, _, _, equipmentRepo := setupTestExportService()

	equipmentRepo.items = append(equipmentRepo.items,
		&model.Equipment{EquipmentID: "eq-1", Name: "装载机", NextMaintenance: "2026-09-10"},
		&model.Equipment{EquipmentID: "eq-2", Name: "运输车", NextMaintenance: "unknown"},
	)

	data, err := svc.MaintenanceCalendar(context.Background())
	if err != nil {
		t.Fatalf("日期缺损不应导致整体失败: %v", err)
	}
	out := string(data)
	if strings.Count(out, "BEGIN:VEVENT") != 1 {
		t.Errorf("无法解析日期的设备应被跳过，期望 1 个 VEVENT，实际=%d", strings.Count(out, "BEGIN:VEVENT"))
	}
}
