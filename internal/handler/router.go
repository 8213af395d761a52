package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/edudesk/tms-api/internal/middleware"
	"github.com/edudesk/tms-api/pkg/config"
)

// RouterDeps bundles the handlers mounted on the API router. Nil optional
// handlers (exports, metrics) leave their routes unregistered.
type RouterDeps struct {
	Teachers  *TeacherHandler
	Courses   *CourseHandler
	Students  *StudentHandler
	Meetings  *MeetingHandler
	Leaves    *LeaveHandler
	Analytics *AnalyticsHandler
	Exports   *ExportHandler
	Metrics   *MetricsHandler
}

// RegisterRoutes mounts all API routes under the configured prefix. The
// identity gate protects everything under the prefix; health, readiness and
// metrics stay public.
func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps RouterDeps) {
	if deps.Metrics != nil {
		r.GET("/health", deps.Metrics.Health)
		r.GET("/ready", deps.Metrics.Health)
		r.GET("/metrics", deps.Metrics.Prometheus)
	}

	api := r.Group(cfg.APIPrefix)
	api.Use(middleware.Identity(cfg.Identity))

	teachers := api.Group("/teachers")
	{
		teachers.GET("", deps.Teachers.List)
		teachers.POST("", deps.Teachers.Create)
		teachers.GET("/:id", deps.Teachers.Get)
		teachers.PUT("/:id", deps.Teachers.Update)
		teachers.DELETE("/:id", deps.Teachers.Delete)
	}

	courses := api.Group("/courses")
	{
		courses.GET("", deps.Courses.List)
		courses.POST("", deps.Courses.Create)
		courses.GET("/:id", deps.Courses.Get)
		courses.PUT("/:id", deps.Courses.Update)
		courses.DELETE("/:id", deps.Courses.Delete)
	}

	students := api.Group("/students")
	{
		students.GET("", deps.Students.List)
		students.POST("", deps.Students.Create)
		students.GET("/:id", deps.Students.Get)
		students.PUT("/:id", deps.Students.Update)
		students.DELETE("/:id", deps.Students.Delete)
	}

	meetings := api.Group("/meetings")
	{
		meetings.GET("", deps.Meetings.List)
		meetings.POST("", deps.Meetings.Create)
		meetings.GET("/:id", deps.Meetings.Get)
		meetings.PUT("/:id", deps.Meetings.Update)
		meetings.DELETE("/:id", deps.Meetings.Delete)
		meetings.POST("/:id/complete", deps.Meetings.Complete)
		meetings.POST("/:id/cancel", deps.Meetings.Cancel)
		meetings.POST("/:id/reschedule", deps.Meetings.Reschedule)
	}

	leaves := api.Group("/leaves")
	{
		leaves.GET("", deps.Leaves.List)
		leaves.POST("", deps.Leaves.Create)
		leaves.GET("/:id", deps.Leaves.Get)
		leaves.PUT("/:id", deps.Leaves.Update)
		leaves.DELETE("/:id", deps.Leaves.Delete)
		leaves.POST("/:id/approve", deps.Leaves.Approve)
		leaves.POST("/:id/reject", deps.Leaves.Reject)
		leaves.POST("/:id/cancel", deps.Leaves.Cancel)
	}

	analytics := api.Group("/analytics")
	{
		analytics.GET("", deps.Analytics.Report)
		analytics.GET("/teachers", deps.Analytics.Teachers)
		analytics.GET("/subjects", deps.Analytics.Subjects)
		analytics.POST("/refresh", deps.Analytics.Refresh)
	}

	if deps.Exports != nil {
		exports := api.Group("/exports")
		{
			exports.POST("", deps.Exports.Create)
			exports.GET("/download/:token", deps.Exports.Download)
			exports.GET("/:id", deps.Exports.Status)
		}
	}
}
