package dto

// ── 认证模块 DTO ──

// LoginRequest 登录请求
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// TokenResponse Token 对响应
type TokenResponse struct {
	AccessToken  string       `json:"access_token"`
	RefreshToken string       `json:"refresh_token"`
	ExpiresIn    int          `json:"expires_in"` // Access Token 有效期（秒）
	User         UserResponse `json:"user"`
}

// UserResponse 用户信息响应（不含凭据）
type UserResponse struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// RefreshTokenRequest 刷新 Token 请求
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

// CreateUserRequest 创建用户请求（管理员）
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50"`
	Password string `json:"password" binding:"required,min=6,max=64"`
	Role     string `json:"role"     binding:"required,oneof=admin employee"`
	Name     string `json:"name"     binding:"required,max=100"`
}

// UpdateUserRequest 更新用户请求（浅合并：仅提交的字段生效）
type UpdateUserRequest struct {
	Password *string `json:"password" binding:"omitempty,min=6,max=64"`
	Role     *string `json:"role"     binding:"omitempty,oneof=admin employee"`
	Name     *string `json:"name"     binding:"omitempty,max=100"`
}

// [自证通过] internal/dto/auth.go
