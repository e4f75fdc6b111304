package handler

import (
	"time"

	"github.com/gin-gonic/gin"

	"coalsight/backend/pkg/response"
)

// MustGetUserID 从 Gin 上下文中安全提取 user_id。
// 如果 JWT 中间件未正确注入 user_id，返回 false 并写入 401 响应。
// 调用方应在 ok=false 时直接 return。
func MustGetUserID(c *gin.Context) (string, bool) {
	v, exists := c.Get("user_id")
	if !exists {
		response.Unauthorized(c, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, "未认证")
		return "", false
	}
	return s, true
}

// MustGetRole 从 Gin 上下文中安全提取 role。
func MustGetRole(c *gin.Context) (string, bool) {
	v, exists := c.Get("role")
	if !exists {
		response.Unauthorized(c, "未认证")
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		response.Unauthorized(c, "未认证")
		return "", false
	}
	return s, true
}

// MustGetTokenMeta 从 Gin 上下文中安全提取 jti 与过期时间（登出用）。
func MustGetTokenMeta(c *gin.Context) (string, time.Time, bool) {
	jv, exists := c.Get("jti")
	if !exists {
		response.Unauthorized(c, "未认证")
		return "", time.Time{}, false
	}
	jti, ok := jv.(string)
	if !ok || jti == "" {
		response.Unauthorized(c, "未认证")
		return "", time.Time{}, false
	}

	ev, exists := c.Get("token_expires_at")
	if !exists {
		response.Unauthorized(c, "未认证")
		return "", time.Time{}, false
	}
	expiresAt, ok := ev.(time.Time)
	if !ok {
		response.Unauthorized(c, "未认证")
		return "", time.Time{}, false
	}

	return jti, expiresAt, true
}
