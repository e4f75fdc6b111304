//go:build integration

package repository_test

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"coalsight/backend/internal/model"
	"coalsight/backend/internal/repository"
)

// ═══════════════════════════════════════════════════════════
// Test Setup
// ═══════════════════════════════════════════════════════════

var testDB *gorm.DB

func TestMain(m *testing.M) {
	dsn := os.Getenv("TEST_DATABASE_DSN")
	if dsn == "" {
		dsn = "host=localhost port=5433 user=coalsight password=coalsight_password dbname=coalsight_test sslmode=disable TimeZone=Asia/Shanghai"
	}

	var err error
	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "无法连接测试数据库: %v\n", err)
		os.Exit(1)
	}

	// 自动迁移测试表结构
	err = testDB.AutoMigrate(
		&model.User{},
		&model.Employee{},
		&model.Attendance{},
		&model.Hazard{},
		&model.Equipment{},
		&model.Notification{},
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "AutoMigrate 失败: %v\n", err)
		os.Exit(1)
	}

	code := m.Run()
	os.Exit(code)
}

// setupTestEmployee 创建基础员工数据并返回清理函数
func setupTestEmployee(t *testing.T) (emp *model.Employee, cleanup func()) {
	t.Helper()
	ctx := context.Background()

	emp = &model.Employee{
		Name:       fmt.Sprintf("测试员工-%d", time.Now().UnixNano()),
		Department: "采掘一队",
		Shift:      "Day",
		Role:       "Machine Operator",
		Contact:    "13800000000",
	}
	if err := testDB.WithContext(ctx).Create(emp).Error; err != nil {
		t.Fatalf("创建员工失败: %v", err)
	}

	cleanup = func() {
		testDB.Unscoped().Where("employee_id = ?", emp.EmployeeID).Delete(&model.Employee{})
	}
	return
}

// ═══════════════════════════════════════════════════════════
// Test: User Repository
// ═══════════════════════════════════════════════════════════

func TestUserRepo_GetByUsername(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	username := fmt.Sprintf("it-user-%d", time.Now().UnixNano())
	user := &model.User{
		Username:     username,
		PasswordHash: "$2a$04$notarealhashnotarealhashnotareal",
		Role:         model.RoleEmployee,
		Name:         "集成测试用户",
	}
	if err := repo.User.Create(ctx, user); err != nil {
		t.Fatalf("创建用户失败: %v", err)
	}
	defer testDB.Unscoped().Where("user_id = ?", user.UserID).Delete(&model.User{})

	found, err := repo.User.GetByUsername(ctx, username)
	if err != nil {
		t.Fatalf("按用户名查询失败: %v", err)
	}
	if found.UserID != user.UserID {
		t.Errorf("ID 不匹配: expected %s, got %s", user.UserID, found.UserID)
	}

	_, err = repo.User.GetByUsername(ctx, "no-such-user")
	if err != gorm.ErrRecordNotFound {
		t.Errorf("期望 ErrRecordNotFound，实际: %v", err)
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Attendance Repository
// ═══════════════════════════════════════════════════════════

func TestAttendanceRepo_ListRecentByEmployee(t *testing.T) {
	emp, cleanup := setupTestEmployee(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	dates := []string{"2026-03-10", "2026-03-12", "2026-03-11"}
	for _, d := range dates {
		rec := &model.Attendance{
			EmployeeID: emp.EmployeeID,
			Date:       d,
			Status:     model.AttendancePresent,
		}
		if err := repo.Attendance.Create(ctx, rec); err != nil {
			t.Fatalf("创建考勤记录失败: %v", err)
		}
		defer testDB.Unscoped().Where("attendance_id = ?", rec.AttendanceID).Delete(&model.Attendance{})
	}

	got, err := repo.Attendance.ListRecentByEmployee(ctx, emp.EmployeeID, 2)
	if err != nil {
		t.Fatalf("ListRecentByEmployee 失败: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("期望 2 条记录，实际=%d", len(got))
	}
	if got[0].Date != "2026-03-12" || got[1].Date != "2026-03-11" {
		t.Errorf("应按日期倒序截断: %s, %s", got[0].Date, got[1].Date)
	}
}

func TestAttendanceRepo_ListByDateFilter(t *testing.T) {
	emp, cleanup := setupTestEmployee(t)
	defer cleanup()

	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	date := fmt.Sprintf("2026-04-%02d", time.Now().UnixNano()%28+1)
	rec := &model.Attendance{
		EmployeeID: emp.EmployeeID,
		Date:       date,
		Status:     model.AttendanceLate,
	}
	if err := repo.Attendance.Create(ctx, rec); err != nil {
		t.Fatalf("创建考勤记录失败: %v", err)
	}
	defer testDB.Unscoped().Where("attendance_id = ?", rec.AttendanceID).Delete(&model.Attendance{})

	got, err := repo.Attendance.List(ctx, repository.AttendanceFilter{
		Date:       date,
		EmployeeID: emp.EmployeeID,
	})
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	if len(got) != 1 || got[0].AttendanceID != rec.AttendanceID {
		t.Errorf("等值过滤结果错误: %+v", got)
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Hazard Repository
// ═══════════════════════════════════════════════════════════

func TestHazardRepo_ActiveQueries(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	marker := fmt.Sprintf("it-%d", time.Now().UnixNano())
	statuses := []string{model.HazardPending, model.HazardInProgress, model.HazardResolved}
	for _, st := range statuses {
		h := &model.Hazard{
			ReportedBy:  "user-1",
			Category:    marker,
			Severity:    "High",
			Location:    "3号工作面",
			Description: "集成测试数据",
			Status:      st,
		}
		if err := repo.Hazard.Create(ctx, h); err != nil {
			t.Fatalf("创建隐患失败: %v", err)
		}
		defer testDB.Unscoped().Where("hazard_id = ?", h.HazardID).Delete(&model.Hazard{})
	}

	active, err := repo.Hazard.ListActive(ctx, 0)
	if err != nil {
		t.Fatalf("ListActive 失败: %v", err)
	}
	for _, h := range active {
		if h.Status == model.HazardResolved {
			t.Errorf("ListActive 不应包含已解决隐患: %s", h.HazardID)
		}
	}

	filtered, err := repo.Hazard.List(ctx, repository.HazardFilter{Status: model.HazardResolved})
	if err != nil {
		t.Fatalf("List 失败: %v", err)
	}
	for _, h := range filtered {
		if h.Status != model.HazardResolved {
			t.Errorf("状态过滤失效: %s", h.Status)
		}
	}
}

// ═══════════════════════════════════════════════════════════
// Test: Notification Repository
// ═══════════════════════════════════════════════════════════

func TestNotificationRepo_UnreadForRole(t *testing.T) {
	repo := repository.NewRepository(testDB)
	ctx := context.Background()

	marker := fmt.Sprintf("it-%d", time.Now().UnixNano())
	targets := []string{model.TargetAll, model.TargetEmployee, model.TargetAdmin}
	for _, target := range targets {
		n := &model.Notification{
			Type:       model.NotificationInfo,
			Priority:   model.PriorityLow,
			Title:      marker,
			Message:    "集成测试通知",
			TargetRole: target,
		}
		if err := repo.Notification.Create(ctx, n); err != nil {
			t.Fatalf("创建通知失败: %v", err)
		}
		defer testDB.Unscoped().Where("notification_id = ?", n.NotificationID).Delete(&model.Notification{})
	}

	unread, err := repo.Notification.ListUnreadForRole(ctx, model.TargetEmployee, 50)
	if err != nil {
		t.Fatalf("ListUnreadForRole 失败: %v", err)
	}
	for _, n := range unread {
		if n.TargetRole == model.TargetAdmin {
			t.Errorf("employee 角色不应看到 admin 通知: %s", n.NotificationID)
		}
		if n.IsRead {
			t.Errorf("未读查询不应返回已读通知: %s", n.NotificationID)
		}
	}
}
