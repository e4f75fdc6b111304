package service

import (
	"context"
	"fmt"
	"sort"

	"gorm.io/gorm"

	"coalsight/backend/internal/model"
	"coalsight/backend/internal/repository"
)

// Mock 仓储统一用切片承载，保留插入顺序（通知/隐患的列表语义依赖顺序）。

// ── Mock UserRepository ──

type mockUserRepo struct {
	users []*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if user.UserID == "" {
		user.UserID = fmt.Sprintf("user-%d", len(m.users)+1)
	}
	m.users = append(m.users, user)
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id string) (*model.User, error) {
	for _, u := range m.users {
		if u.UserID == id {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) List(_ context.Context) ([]model.User, error) {
	result := make([]model.User, 0, len(m.users))
	for _, u := range m.users {
		result = append(result, *u)
	}
	return result, nil
}

func (m *mockUserRepo) Update(_ context.Context, user *model.User) error {
	for i, u := range m.users {
		if u.UserID == user.UserID {
			m.users[i] = user
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockUserRepo) Delete(_ context.Context, id string) error {
	for i, u := range m.users {
		if u.UserID == id {
			m.users = append(m.users[:i], m.users[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Mock EmployeeRepository ──

type mockEmployeeRepo struct {
	employees []*model.Employee
}

func newMockEmployeeRepo() *mockEmployeeRepo {
	return &mockEmployeeRepo{}
}

func (m *mockEmployeeRepo) Create(_ context.Context, employee *model.Employee) error {
	if employee.EmployeeID == "" {
		employee.EmployeeID = fmt.Sprintf("emp-%d", len(m.employees)+1)
	}
	m.employees = append(m.employees, employee)
	return nil
}

func (m *mockEmployeeRepo) GetByID(_ context.Context, id string) (*model.Employee, error) {
	for _, e := range m.employees {
		if e.EmployeeID == id {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) List(_ context.Context, filter repository.EmployeeFilter) ([]model.Employee, error) {
	var result []model.Employee
	for _, e := range m.employees {
		if filter.Department != "" && e.Department != filter.Department {
			continue
		}
		if filter.Shift != "" && e.Shift != filter.Shift {
			continue
		}
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockEmployeeRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.employees)), nil
}

func (m *mockEmployeeRepo) Update(_ context.Context, employee *model.Employee) error {
	for i, e := range m.employees {
		if e.EmployeeID == employee.EmployeeID {
			m.employees[i] = employee
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockEmployeeRepo) Delete(_ context.Context, id string) error {
	for i, e := range m.employees {
		if e.EmployeeID == id {
			m.employees = append(m.employees[:i], m.employees[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Mock AttendanceRepository ──

type mockAttendanceRepo struct {
	records []*model.Attendance
}

func newMockAttendanceRepo() *mockAttendanceRepo {
	return &mockAttendanceRepo{}
}

func (m *mockAttendanceRepo) Create(_ context.Context, record *model.Attendance) error {
	if record.AttendanceID == "" {
		record.AttendanceID = fmt.Sprintf("att-%d", len(m.records)+1)
	}
	m.records = append(m.records, record)
	return nil
}

func (m *mockAttendanceRepo) GetByID(_ context.Context, id string) (*model.Attendance, error) {
	for _, r := range m.records {
		if r.AttendanceID == id {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) List(_ context.Context, filter repository.AttendanceFilter) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, r := range m.records {
		if filter.Date != "" && r.Date != filter.Date {
			continue
		}
		if filter.EmployeeID != "" && r.EmployeeID != filter.EmployeeID {
			continue
		}
		result = append(result, *r)
	}
	return result, nil
}

func (m *mockAttendanceRepo) ListRecentByEmployee(_ context.Context, employeeID string, limit int) ([]model.Attendance, error) {
	var result []model.Attendance
	for _, r := range m.records {
		if r.EmployeeID == employeeID {
			result = append(result, *r)
		}
	}
	sort.Slice(result, func(i, j int) bool { return result[i].Date > result[j].Date })
	if limit > 0 && len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}

func (m *mockAttendanceRepo) Update(_ context.Context, record *model.Attendance) error {
	for i, r := range m.records {
		if r.AttendanceID == record.AttendanceID {
			m.records[i] = record
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockAttendanceRepo) Delete(_ context.Context, id string) error {
	for i, r := range m.records {
		if r.AttendanceID == id {
			m.records = append(m.records[:i], m.records[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Mock HazardRepository ──

type mockHazardRepo struct {
	hazards []*model.Hazard
}

func newMockHazardRepo() *mockHazardRepo {
	return &mockHazardRepo{}
}

func (m *mockHazardRepo) Create(_ context.Context, hazard *model.Hazard) error {
	if hazard.HazardID == "" {
		hazard.HazardID = fmt.Sprintf("haz-%d", len(m.hazards)+1)
	}
	m.hazards = append(m.hazards, hazard)
	return nil
}

func (m *mockHazardRepo) GetByID(_ context.Context, id string) (*model.Hazard, error) {
	for _, h := range m.hazards {
		if h.HazardID == id {
			return h, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHazardRepo) List(_ context.Context, filter repository.HazardFilter) ([]model.Hazard, error) {
	var result []model.Hazard
	for _, h := range m.hazards {
		if filter.Status != "" && h.Status != filter.Status {
			continue
		}
		if filter.Severity != "" && h.Severity != filter.Severity {
			continue
		}
		result = append(result, *h)
	}
	return result, nil
}

func (m *mockHazardRepo) ListActive(_ context.Context, limit int) ([]model.Hazard, error) {
	var result []model.Hazard
	for _, h := range m.hazards {
		if h.Status == model.HazardResolved {
			continue
		}
		result = append(result, *h)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

func (m *mockHazardRepo) CountActive(_ context.Context) (int64, error) {
	var count int64
	for _, h := range m.hazards {
		if h.Status != model.HazardResolved {
			count++
		}
	}
	return count, nil
}

func (m *mockHazardRepo) Update(_ context.Context, hazard *model.Hazard) error {
	for i, h := range m.hazards {
		if h.HazardID == hazard.HazardID {
			m.hazards[i] = hazard
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockHazardRepo) Delete(_ context.Context, id string) error {
	for i, h := range m.hazards {
		if h.HazardID == id {
			m.hazards = append(m.hazards[:i], m.hazards[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Mock EquipmentRepository ──

type mockEquipmentRepo struct {
	items []*model.Equipment
}

func newMockEquipmentRepo() *mockEquipmentRepo {
	return &mockEquipmentRepo{}
}

func (m *mockEquipmentRepo) Create(_ context.Context, equipment *model.Equipment) error {
	if equipment.EquipmentID == "" {
		equipment.EquipmentID = fmt.Sprintf("eq-%d", len(m.items)+1)
	}
	m.items = append(m.items, equipment)
	return nil
}

func (m *mockEquipmentRepo) GetByID(_ context.Context, id string) (*model.Equipment, error) {
	for _, e := range m.items {
		if e.EquipmentID == id {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockEquipmentRepo) List(_ context.Context, filter repository.EquipmentFilter) ([]model.Equipment, error) {
	var result []model.Equipment
	for _, e := range m.items {
		if filter.Status != "" && e.Status != filter.Status {
			continue
		}
		if filter.Type != "" && e.Type != filter.Type {
			continue
		}
		result = append(result, *e)
	}
	return result, nil
}

func (m *mockEquipmentRepo) Update(_ context.Context, equipment *model.Equipment) error {
	for i, e := range m.items {
		if e.EquipmentID == equipment.EquipmentID {
			m.items[i] = equipment
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockEquipmentRepo) Delete(_ context.Context, id string) error {
	for i, e := range m.items {
		if e.EquipmentID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── Mock NotificationRepository ──

type mockNotificationRepo struct {
	notifications []*model.Notification
}

func newMockNotificationRepo() *mockNotificationRepo {
	return &mockNotificationRepo{}
}

func (m *mockNotificationRepo) Create(_ context.Context, notification *model.Notification) error {
	if notification.NotificationID == "" {
		notification.NotificationID = fmt.Sprintf("notif-%d", len(m.notifications)+1)
	}
	m.notifications = append(m.notifications, notification)
	return nil
}

func (m *mockNotificationRepo) GetByID(_ context.Context, id string) (*model.Notification, error) {
	for _, n := range m.notifications {
		if n.NotificationID == id {
			return n, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockNotificationRepo) List(_ context.Context, filter repository.NotificationFilter) ([]model.Notification, error) {
	var result []model.Notification
	for _, n := range m.notifications {
		if filter.TargetRole != "" && n.TargetRole != filter.TargetRole {
			continue
		}
		if filter.IsRead != nil && n.IsRead != *filter.IsRead {
			continue
		}
		result = append(result, *n)
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (m *mockNotificationRepo) ListUnreadForRole(_ context.Context, role string, limit int) ([]model.Notification, error) {
	var result []model.Notification
	for _, n := range m.notifications {
		if n.IsRead {
			continue
		}
		if n.TargetRole != role && n.TargetRole != model.TargetAll {
			continue
		}
		result = append(result, *n)
		if limit > 0 && len(result) == limit {
			break
		}
	}
	return result, nil
}

func (m *mockNotificationRepo) Update(_ context.Context, notification *model.Notification) error {
	for i, n := range m.notifications {
		if n.NotificationID == notification.NotificationID {
			m.notifications[i] = notification
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *mockNotificationRepo) Delete(_ context.Context, id string) error {
	for i, n := range m.notifications {
		if n.NotificationID == id {
			m.notifications = append(m.notifications[:i], m.notifications[i+1:]...)
			return nil
		}
	}
	return nil
}

// ── 测试辅助 ──

// testRepos 返回全量 mock 仓储聚合与各具体 mock（便于直接预置数据）
func testRepos() (*repository.Repository, *mockUserRepo, *mockEmployeeRepo, *mockAttendanceRepo, *mockHazardRepo, *mockEquipmentRepo, *mockNotificationRepo) {
	userRepo := newMockUserRepo()
	employeeRepo := newMockEmployeeRepo()
	attendanceRepo := newMockAttendanceRepo()
	hazardRepo := newMockHazardRepo()
	equipmentRepo := newMockEquipmentRepo()
	notificationRepo := newMockNotificationRepo()

	repo := &repository.Repository{
		User:         userRepo,
		Employee:     employeeRepo,
		Attendance:   attendanceRepo,
		Hazard:       hazardRepo,
		Equipment:    equipmentRepo,
		Notification: notificationRepo,
	}
	return repo, userRepo, employeeRepo, attendanceRepo, hazardRepo, equipmentRepo, notificationRepo
}
