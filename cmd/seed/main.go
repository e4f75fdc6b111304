package main

import (
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"coalsight/backend/config"
	"coalsight/backend/internal/model"
	"coalsight/backend/pkg/database"
	applogger "coalsight/backend/pkg/logger"
)

// 演示数据种子脚本。重复执行安全：users 表非空时直接退出。
func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "加载配置失败: %v\n", err)
		os.Exit(1)
	}

	logger, err := applogger.NewLogger(&cfg.Log)
	if err != nil {
		fmt.Fprintf(os.Stderr, "初始化日志失败: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewDB(&cfg.Database, logger)
	if err != nil {
		logger.Fatal("数据库连接失败", zap.Error(err))
	}

	sqlDB, err := db.DB()
	if err != nil {
		logger.Fatal("获取底层 sql.DB 失败", zap.Error(err))
	}
	defer sqlDB.Close()

	if err := database.RunMigrations(sqlDB, logger); err != nil {
		logger.Fatal("数据库迁移失败", zap.Error(err))
	}

	var userCount int64
	if err := db.Model(&model.User{}).Count(&userCount).Error; err != nil {
		logger.Fatal("检查已有数据失败", zap.Error(err))
	}
	if userCount > 0 {
		logger.Info("已存在用户数据，跳过种子写入", zap.Int64("users", userCount))
		return
	}

	if err := db.Transaction(func(tx *gorm.DB) error {
		return seed(tx)
	}); err != nil {
		logger.Fatal("种子写入失败", zap.Error(err))
	}

	logger.Info("演示数据写入完成")
}

func seed(tx *gorm.DB) error {
	// ── 登录账号 ──
	adminHash, err := bcrypt.GenerateFromPassword([]byte("admin123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	workerHash, err := bcrypt.GenerateFromPassword([]byte("worker123"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	users := []model.User{
		{Username: "admin", PasswordHash: string(adminHash), Role: model.RoleAdmin, Name: "矿区管理员"},
		{Username: "worker1", PasswordHash: string(workerHash), Role: model.RoleEmployee, Name: "王强"},
	}
	if err := tx.Create(&users).Error; err != nil {
		return err
	}

	// ── 员工档案 ──
	employees := []model.Employee{
		{Name: "王强", Department: "采掘一队", Shift: "Day", Role: "Machine Operator", ExperienceYears: 8, Contact: "13800000001", EmergencyContact: "13900000001"},
		{Name: "李建国", Department: "采掘一队", Shift: "Night", Role: "Blasting Technician", ExperienceYears: 12, Contact: "13800000002", EmergencyContact: "13900000002"},
		{Name: "张明", Department: "运输队", Shift: "Day", Role: "Truck Driver", ExperienceYears: 5, Contact: "13800000003", EmergencyContact: "13900000003"},
		{Name: "刘洋", Department: "通风安全科", Shift: "Day", Role: "Safety Inspector", ExperienceYears: 10, Contact: "13800000004", EmergencyContact: "13900000004"},
		{Name: "陈晨", Department: "机电科", Shift: "Night", Role: "Maintenance Engineer", ExperienceYears: 6, Contact: "13800000005", EmergencyContact: "13900000005"},
	}
	if err := tx.Create(&employees).Error; err != nil {
		return err
	}

	// ── 当日考勤 ──
	today := time.Now().Format("2006-01-02")
	checkIn1, checkIn2, checkIn3 := "07:55:00", "08:20:00", "08:02:00"
	loc := "南门闸机"
	attendance := []model.Attendance{
		{EmployeeID: employees[0].EmployeeID, Date: today, CheckIn: &checkIn1, Status: model.AttendancePresent, Location: &loc},
		{EmployeeID: employees[1].EmployeeID, Date: today, CheckIn: &checkIn2, Status: model.AttendanceLate, Location: &loc},
		{EmployeeID: employees[2].EmployeeID, Date: today, CheckIn: &checkIn3, Status: model.AttendancePresent, Location: &loc},
		{EmployeeID: employees[3].EmployeeID, Date: today, Status: model.AttendanceAbsent},
	}
	if err := tx.Create(&attendance).Error; err != nil {
		return err
	}

	// ── 安全隐患 ──
	assigned := employees[4].EmployeeID
	resolvedAt := time.Now().Add(-36 * time.Hour)
	hazards := []model.Hazard{
		{
			ReportedBy: users[1].UserID, Category: "瓦斯", Severity: model.SeverityCritical,
			Location: "3 号工作面", Description: "回风巷瓦斯浓度逼近报警阈值",
			Status: model.HazardPending, Images: model.StringArray{"gas-reading.jpg"},
		},
		{
			ReportedBy: users[1].UserID, Category: "顶板", Severity: model.SeverityHigh,
			Location: "2 号巷道", Description: "局部顶板出现裂隙，需要加固支护",
			Status: model.HazardInProgress, AssignedTo: &assigned, ActionTaken: "已安排锚杆补强",
		},
		{
			ReportedBy: users[1].UserID, Category: "机电", Severity: model.SeverityMedium,
			Location: "主斜井", Description: "皮带机托辊异响",
			Status: model.HazardResolved, AssignedTo: &assigned,
			ActionTaken: "更换托辊并复检", ResolvedAt: &resolvedAt,
		},
	}
	if err := tx.Create(&hazards).Error; err != nil {
		return err
	}

	// ── 设备 ──
	fuel68, fuel35 := 68, 35
	now := time.Now()
	equipment := []model.Equipment{
		{
			Name: "采煤机 MG-500", Type: "Shearer", Status: model.EquipmentOperational,
			Location: "3 号工作面", HealthScore: 92, Temperature: 61,
			LastMaintenance: now.AddDate(0, 0, -20).Format("2006-01-02"),
			NextMaintenance: now.AddDate(0, 0, 12).Format("2006-01-02"),
			OperatingHours:  4210,
		},
		{
			Name: "矿用卡车 MT-86", Type: "Haul Truck", Status: model.EquipmentWarning,
			Location: "露天排土场", HealthScore: 67, FuelLevel: &fuel68, Temperature: 78,
			LastMaintenance: now.AddDate(0, 0, -40).Format("2006-01-02"),
			NextMaintenance: now.AddDate(0, 0, 2).Format("2006-01-02"),
			OperatingHours:  8830,
		},
		{
			Name: "主通风机 FBC-12", Type: "Ventilation Fan", Status: model.EquipmentOperational,
			Location: "回风井口", HealthScore: 88, Temperature: 55,
			LastMaintenance: now.AddDate(0, 0, -15).Format("2006-01-02"),
			NextMaintenance: now.AddDate(0, 0, 25).Format("2006-01-02"),
			OperatingHours:  19600,
		},
		{
			Name: "装载机 ZL-50", Type: "Loader", Status: model.EquipmentMaintenance,
			Location: "机修车间", HealthScore: 43, FuelLevel: &fuel35, Temperature: 88,
			LastMaintenance: now.AddDate(0, 0, -90).Format("2006-01-02"),
			NextMaintenance: now.AddDate(0, 0, -3).Format("2006-01-02"),
			OperatingHours:  12040,
		},
	}
	if err := tx.Create(&equipment).Error; err != nil {
		return err
	}

	// ── 通知 ──
	notifications := []model.Notification{
		{Type: model.NotificationSafety, Priority: model.PriorityHigh, Title: "瓦斯浓度预警", Message: "3 号工作面回风巷瓦斯浓度偏高，请按规程处置", TargetRole: model.TargetAll},
		{Type: model.NotificationMaintenance, Priority: model.PriorityMedium, Title: "矿用卡车 MT-86 保养临近", Message: "距下次计划保养不足 3 天，请安排进场", TargetRole: model.TargetAdmin},
		{Type: model.NotificationInfo, Priority: model.PriorityLow, Title: "班前会调整", Message: "明日早班班前会提前至 7:30", TargetRole: model.TargetEmployee},
		{Type: model.NotificationSuccess, Priority: model.PriorityLow, Title: "月度安全目标达成", Message: "本月无重大安全事故，感谢全员配合", TargetRole: model.TargetAll, IsRead: true},
	}
	return tx.Create(&notifications).Error
}
