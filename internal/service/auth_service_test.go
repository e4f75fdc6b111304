package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"coalsight/backend/config"
	"coalsight/backend/internal/dto"
	"coalsight/backend/internal/model"
	"coalsight/backend/pkg/jwt"
)

// ── 测试辅助 ──

func setupTestAuthService() (AuthService, *mockUserRepo) {
	cfg := &config.Config{
		Auth: config.AuthConfig{
			JWTSecret:       "test-secret-key-for-unit-testing-2026",
			AccessTokenTTL:  15 * time.Minute,
			RefreshTokenTTL: 7 * 24 * time.Hour,
		},
	}

	repo, userRepo, _, _, _, _, _ := testRepos()
	jwtMgr := jwt.NewManager(&cfg.Auth)
	svc := NewAuthService(cfg, repo, jwtMgr, nil, zap.NewNop())
	return svc, userRepo
}

func createTestUser(userRepo *mockUserRepo, username, password, role string) *model.User {
	hash, _ := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	user := &model.User{
		UserID:       "user-" + username,
		Username:     username,
		PasswordHash: string(hash),
		Role:         role,
		Name:         "测试用户",
	}
	userRepo.users = append(userRepo.users, user)
	return user
}

// ── 登录测试 ──

func TestLogin_Success(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	createTestUser(userRepo, "admin", "password123", model.RoleAdmin)

	result, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "password123",
	})

	if err != nil {
		t.Fatalf("Login 应成功，但返回错误: %v", err)
	}
	if result.AccessToken == "" {
		t.Error("AccessToken 不应为空")
	}
	if result.RefreshToken == "" {
		t.Error("RefreshToken 不应为空")
	}
	if result.User.Username != "admin" {
		t.Errorf("期望 Username=admin，实际=%s", result.User.Username)
	}
	if result.User.Role != model.RoleAdmin {
		t.Errorf("期望 Role=admin，实际=%s", result.User.Role)
	}
	if result.ExpiresIn != 900 {
		t.Errorf("期望 ExpiresIn=900，实际=%d", result.ExpiresIn)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	createTestUser(userRepo, "admin", "password123", model.RoleAdmin)

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "admin",
		Password: "wrong_password",
	})

	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

func TestLogin_UserNotFound(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "nonexistent",
		Password: "password123",
	})

	// 用户不存在与密码错误必须返回同一个错误，避免探测账户
	if !errors.Is(err, ErrInvalidCredentials) {
		t.Errorf("期望 ErrInvalidCredentials，实际: %v", err)
	}
}

// ── RefreshToken 测试 ──

func TestRefreshToken_Success(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	createTestUser(userRepo, "worker1", "password123", model.RoleEmployee)

	loginResult, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "worker1",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 失败: %v", err)
	}

	result, err := svc.RefreshToken(context.Background(), loginResult.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken 应成功: %v", err)
	}

	if result.AccessToken == "" {
		t.Error("新 AccessToken 不应为空")
	}
	if result.User.Username != "worker1" {
		t.Errorf("期望 Username=worker1，实际=%s", result.User.Username)
	}
}

func TestRefreshToken_InvalidToken(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.RefreshToken(context.Background(), "invalid.token.string")
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}

func TestRefreshToken_AccessTokenNotAllowed(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	createTestUser(userRepo, "worker1", "password123", model.RoleEmployee)

	loginResult, _ := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "worker1",
		Password: "password123",
	})

	// access token 不能用于刷新
	_, err := svc.RefreshToken(context.Background(), loginResult.AccessToken)
	if !errors.Is(err, ErrTokenInvalid) {
		t.Errorf("期望 ErrTokenInvalid，实际: %v", err)
	}
}

func TestRefreshToken_RoleChangeTakesEffect(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	user := createTestUser(userRepo, "worker1", "password123", model.RoleEmployee)

	loginResult, err := svc.Login(context.Background(), &dto.LoginRequest{
		Username: "worker1",
		Password: "password123",
	})
	if err != nil {
		t.Fatalf("Login 失败: %v", err)
	}

	// 管理员调整角色后，刷新出的 Token 应携带新角色
	user.Role = model.RoleAdmin

	result, err := svc.RefreshToken(context.Background(), loginResult.RefreshToken)
	if err != nil {
		t.Fatalf("RefreshToken 应成功: %v", err)
	}
	if result.User.Role != model.RoleAdmin {
		t.Errorf("期望刷新后 Role=admin，实际=%s", result.User.Role)
	}
}

// ── Logout 测试 ──

func TestLogout_WithoutRedis(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	createTestUser(userRepo, "admin", "password123", model.RoleAdmin)

	// rdb 为 nil 时登出降级为 no-op，不应报错
	err := svc.Logout(context.Background(), "some-jti", time.Now().Add(time.Hour))
	if err != nil {
		t.Errorf("Redis 缺席时 Logout 应降级成功: %v", err)
	}
}

// ── GetCurrentUser 测试 ──

func TestGetCurrentUser_Success(t *testing.T) {
	svc, userRepo := setupTestAuthService()
	createTestUser(userRepo, "admin", "password123", model.RoleAdmin)

	result, err := svc.GetCurrentUser(context.Background(), "user-admin")
	if err != nil {
		t.Fatalf("GetCurrentUser 应成功: %v", err)
	}
	if result.Username != "admin" {
		t.Errorf("期望 Username=admin，实际=%s", result.Username)
	}
}

func TestGetCurrentUser_NotFound(t *testing.T) {
	svc, _ := setupTestAuthService()

	_, err := svc.GetCurrentUser(context.Background(), "nonexistent")
	if !errors.Is(err, ErrUserNotFound) {
		t.Errorf("期望 ErrUserNotFound，实际: %v", err)
	}
}
