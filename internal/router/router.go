package router

import (
	"github.com/cloudwego/hertz/pkg/app/server"

	"DakaCamp/config"
	"DakaCamp/internal/handler"
	"DakaCamp/internal/middleware"
)

func Register(h *server.Hertz) {

	h.Use(middleware.RecoverMiddleware())
	h.Use(middleware.RequestIDMiddleware())
	h.Use(middleware.CORSMiddleware())
	if config.Cfg.TracingEnabled {
		h.Use(middleware.OpenTelemetryMiddleware())
	}

	v1 := h.Group("/v1")
	v1.Use(middleware.GeneralRateLimitMiddleware())

	// 公告路由：读公开，写需要鉴权
	announcements := v1.Group("/announcements")
	{
		announcements.GET("", handler.ListAnnouncements)
		announcements.GET("/:id", handler.GetAnnouncement)

		authed := announcements.Group("", middleware.AuthMiddleware())
		{
			authed.POST("", handler.CreateAnnouncement)
			authed.PUT("/:id", handler.UpdateAnnouncement)
			authed.DELETE("/:id", handler.DeleteAnnouncement)
		}
	}

	// 打卡路由
	clockIns := v1.Group("/clock-ins")
	clockIns.Use(middleware.AuthMiddleware())
	{
		clockIns.POST("", middleware.ClockInRateLimitMiddleware(), handler.CreateClockIn)
		clockIns.PUT("/:id", handler.UpdateClockIn)
		clockIns.GET("/feed", handler.GetFeed)
		clockIns.GET("/mine", handler.GetMyClockIns)
	}

	// 统计路由
	stats := v1.Group("/stats")
	stats.Use(middleware.AuthMiddleware())
	{
		stats.GET("", handler.GetStats)
		stats.GET("/users", handler.GetStatsUsers)
		stats.GET("/export", middleware.StatsExportRateLimitMiddleware(), handler.ExportStats)
	}
}
