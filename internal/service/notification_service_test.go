package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"go.uber.org/zap"

	"coalsight/backend/internal/dto"
	"coalsight/backend/internal/model"
)

func setupTestNotificationService() (NotificationService, *mockNotificationRepo) {
	repo, _, _, _, _, _, notificationRepo := testRepos()
	svc := NewNotificationService(repo, zap.NewNop())
	return svc, notificationRepo
}

func addTestNotification(notificationRepo *mockNotificationRepo, id, targetRole string, isRead bool, createdAt time.Time) {
	notification := &model.Notification{
		NotificationID: id,
		Type:           model.NotificationInfo,
		Priority:       model.PriorityMedium,
		Title:          "测试通知 " + id,
		Message:        "内容",
		TargetRole:     targetRole,
		IsRead:         isRead,
	}
	notification.CreatedAt = createdAt
	notificationRepo.notifications = append(notificationRepo.notifications, notification)
}

// ── 相对时间纯函数测试 ──

func TestRelativeAge(t *testing.T) {
	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		createdAt time.Time
		want      string
	}{
		{"刚刚", now.Add(-45 * time.Second), "Just now"},
		{"五分钟前", now.Add(-5 * time.Minute), "5m ago"},
		{"五十九分钟前", now.Add(-59 * time.Minute), "59m ago"},
		{"三小时前", now.Add(-3 * time.Hour), "3h ago"},
		{"二十五小时前", now.Add(-25 * time.Hour), "1d ago"},
		{"六天前", now.Add(-6 * 24 * time.Hour), "6d ago"},
		{"超过一周落绝对日期", now.Add(-10 * 24 * time.Hour), "Aug 18, 2026"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RelativeAge(tt.createdAt, now); got != tt.want {
				t.Errorf("RelativeAge = %q，期望 %q", got, tt.want)
			}
		})
	}
}

// ── 未读通知测试 ──

func TestUnreadFor_RoleVisibilityAndCap(t *testing.T) {
	svc, notificationRepo := setupTestNotificationService()
	base := time.Now().Add(-time.Hour)

	// 7 条 employee 可见的未读 + 干扰项（admin 定向、已读）
	for i := 1; i <= 4; i++ {
		addTestNotification(notificationRepo, fmt.Sprintf("n-emp-%d", i), model.TargetEmployee, false, base.Add(time.Duration(i)*time.Minute))
	}
	for i := 1; i <= 3; i++ {
		addTestNotification(notificationRepo, fmt.Sprintf("n-all-%d", i), model.TargetAll, false, base.Add(time.Duration(10+i)*time.Minute))
	}
	addTestNotification(notificationRepo, "n-admin", model.TargetAdmin, false, base)
	addTestNotification(notificationRepo, "n-read", model.TargetEmployee, true, base)

	result, err := svc.UnreadFor(context.Background(), model.RoleEmployee)
	if err != nil {
		t.Fatalf("UnreadFor 应成功: %v", err)
	}

	// 铃铛下拉最多 5 条
	if len(result) != 5 {
		t.Fatalf("期望截断为 5 条，实际=%d", len(result))
	}
	for _, n := range result {
		if n.IsRead {
			t.Errorf("未读列表不应包含已读通知: %s", n.ID)
		}
		if n.TargetRole == model.TargetAdmin {
			t.Errorf("employee 不应看到 admin 定向通知: %s", n.ID)
		}
	}
}

func TestUnreadFor_IncludesAllTarget(t *testing.T) {
	svc, notificationRepo := setupTestNotificationService()
	addTestNotification(notificationRepo, "n-all", model.TargetAll, false, time.Now())

	result, err := svc.UnreadFor(context.Background(), model.RoleAdmin)
	if err != nil {
		t.Fatalf("UnreadFor 应成功: %v", err)
	}
	if len(result) != 1 || result[0].ID != "n-all" {
		t.Errorf("target=all 的通知应对所有角色可见，实际数量=%d", len(result))
	}
}

// ── 已读测试 ──

func TestMarkRead_FlipsAndIdempotent(t *testing.T) {
	svc, notificationRepo := setupTestNotificationService()
	addTestNotification(notificationRepo, "n-1", model.TargetAll, false, time.Now())

	result, err := svc.MarkRead(context.Background(), "n-1")
	if err != nil {
		t.Fatalf("MarkRead 应成功: %v", err)
	}
	if !result.IsRead {
		t.Error("MarkRead 后 is_read 应为 true")
	}

	// 重复标记幂等
	result, err = svc.MarkRead(context.Background(), "n-1")
	if err != nil {
		t.Fatalf("重复 MarkRead 应成功: %v", err)
	}
	if !result.IsRead {
		t.Error("重复 MarkRead 后 is_read 仍应为 true")
	}
}

// ── 列表排序测试 ──

func TestNotificationList_NewestFirst(t *testing.T) {
	svc, notificationRepo := setupTestNotificationService()
	base := time.Now().Add(-time.Hour)
	addTestNotification(notificationRepo, "n-old", model.TargetAll, false, base)
	addTestNotification(notificationRepo, "n-new", model.TargetAll, false, base.Add(30*time.Minute))
	addTestNotification(notificationRepo, "n-mid", model.TargetAll, false, base.Add(10*time.Minute))

	result, err := svc.List(context.Background(), &dto.NotificationListRequest{})
	if err != nil {
		t.Fatalf("List 应成功: %v", err)
	}
	if len(result) != 3 {
		t.Fatalf("期望 3 条，实际=%d", len(result))
	}
	if result[0].ID != "n-new" || result[1].ID != "n-mid" || result[2].ID != "n-old" {
		t.Errorf("应按发布时间倒序: %s, %s, %s", result[0].ID, result[1].ID, result[2].ID)
	}
}

// ── 创建测试 ──

func TestCreateNotification_AlwaysUnread(t *testing.T) {
	svc, _ := setupTestNotificationService()

	result, err := svc.Create(context.Background(), &dto.CreateNotificationRequest{
		Type:       model.NotificationSafety,
		Priority:   model.PriorityHigh,
		Title:      "瓦斯浓度预警",
		Message:    "请按规程处置",
		TargetRole: model.TargetAll,
	})
	if err != nil {
		t.Fatalf("Create 应成功: %v", err)
	}
	if result.IsRead {
		t.Error("新建通知必须是未读")
	}
}
