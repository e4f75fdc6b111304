package router

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"coalsight/backend/config"
	"coalsight/backend/internal/api/handler"
	"coalsight/backend/internal/api/middleware"
	"coalsight/backend/internal/model"
	"coalsight/backend/pkg/jwt"
	"coalsight/backend/pkg/redis"
)

// 登录接口限速：每 IP 每分钟 10 次
const (
	loginRateLimit  = 10
	loginRateWindow = time.Minute
)

// maxBodyBytes 全局请求体上限（隐患上报可携带 Base64 图片）
const maxBodyBytes = 4 << 20

// Setup 初始化并返回 Gin 路由引擎
func Setup(cfg *config.Config, h *handler.Handler, jwtMgr *jwt.Manager, rdb *redis.Client, logger *zap.Logger) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// ── 全局中间件 ──
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(middleware.SecurityHeaders())
	r.Use(middleware.CORS(cfg.Server.CORS.AllowOrigins))
	r.Use(middleware.BodyLimit(maxBodyBytes))

	// ── 健康检查 ──
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "OK",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	adminOnly := middleware.RoleAuth(model.RoleAdmin)

	// ── API v1 ──
	v1 := r.Group("/api/v1")
	{
		// 认证模块（无需认证）
		auth := v1.Group("/auth")
		{
			auth.POST("/login", middleware.RateLimit(rdb, loginRateLimit, loginRateWindow), h.Auth.Login)
			auth.POST("/refresh", h.Auth.RefreshToken)
		}

		// 需要认证的路由
		authorized := v1.Group("")
		authorized.Use(middleware.JWTAuth(jwtMgr, rdb))
		{
			// 认证模块（需要认证）
			authorized.POST("/auth/logout", h.Auth.Logout)
			authorized.GET("/auth/me", h.Auth.Me)

			// 账号模块（仅管理员）
			users := authorized.Group("/users", adminOnly)
			{
				users.GET("", h.User.List)
				users.GET("/:id", h.User.Get)
				users.POST("", h.User.Create)
				users.PUT("/:id", h.User.Update)
				users.DELETE("/:id", h.User.Delete)
			}

			// 员工档案模块
			employees := authorized.Group("/employees")
			{
				employees.GET("", h.Employee.List)
				employees.GET("/:id", h.Employee.Get)
				employees.POST("", adminOnly, h.Employee.Create)
				employees.PUT("/:id", adminOnly, h.Employee.Update)
				employees.DELETE("/:id", adminOnly, h.Employee.Delete)
			}

			// 考勤模块
			attendance := authorized.Group("/attendance")
			{
				attendance.POST("/check-in", h.Attendance.CheckIn)
				attendance.GET("/stats/today", adminOnly, h.Attendance.TodayStats)
				attendance.GET("/employee/:employeeId/today", h.Attendance.EmployeeToday)
				attendance.GET("/employee/:employeeId/recent", h.Attendance.RecentLog)
				attendance.GET("", adminOnly, h.Attendance.List)
				attendance.GET("/:id", h.Attendance.Get)
				attendance.POST("", adminOnly, h.Attendance.Create)
				attendance.PUT("/:id", adminOnly, h.Attendance.Update)
				attendance.DELETE("/:id", adminOnly, h.Attendance.Delete)
			}

			// 隐患模块（上报对全员开放，处置仅管理员）
			hazards := authorized.Group("/hazards")
			{
				hazards.POST("", h.Hazard.Submit)
				hazards.GET("", h.Hazard.List)
				hazards.GET("/stats", adminOnly, h.Hazard.Stats)
				hazards.GET("/:id", h.Hazard.Get)
				hazards.PUT("/:id", adminOnly, h.Hazard.Update)
				hazards.PATCH("/:id/status", adminOnly, h.Hazard.SetStatus)
				hazards.DELETE("/:id", adminOnly, h.Hazard.Delete)
			}

			// 设备模块
			equipment := authorized.Group("/equipment")
			{
				equipment.GET("", h.Equipment.List)
				equipment.GET("/stats", h.Equipment.Stats)
				equipment.GET("/:id", h.Equipment.Get)
				equipment.POST("", adminOnly, h.Equipment.Create)
				equipment.PUT("/:id", adminOnly, h.Equipment.Update)
				equipment.DELETE("/:id", adminOnly, h.Equipment.Delete)
			}

			// 通知模块
			notifications := authorized.Group("/notifications")
			{
				notifications.GET("", h.Notification.List)
				notifications.GET("/unread", h.Notification.Unread)
				notifications.GET("/:id", h.Notification.Get)
				notifications.PATCH("/:id/read", h.Notification.MarkRead)
				notifications.POST("", adminOnly, h.Notification.Create)
				notifications.PUT("/:id", adminOnly, h.Notification.Update)
				notifications.DELETE("/:id", adminOnly, h.Notification.Delete)
			}

			// 产量模块（仅管理员）
			authorized.GET("/production/summary", adminOnly, h.Production.Summary)

			// 驾驶舱模块（仅管理员）
			authorized.GET("/dashboard/summary", adminOnly, h.Dashboard.Summary)

			// 导出模块（仅管理员）
			export := authorized.Group("/export", adminOnly)
			{
				export.GET("/attendance", h.Export.AttendanceSheet)
				export.GET("/maintenance.ics", h.Export.MaintenanceCalendar)
			}
		}
	}

	return r
}
