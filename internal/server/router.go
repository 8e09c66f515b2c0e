package server

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// SetupRoutes configures middleware and all dashboard routes.
func SetupRoutes(e *echo.Echo, h *Handler) {
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Skipper: func(c echo.Context) bool {
			// Polling endpoints would flood the log
			path := c.Request().URL.Path
			return path == "/health" || path == "/api/market" || path == "/api/sessions"
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(middleware.RequestID())

	e.GET("/health", func(c echo.Context) error {
		return SuccessResponse(c, map[string]interface{}{
			"status":  "healthy",
			"service": "forex-dashboard",
		})
	})

	api := e.Group("/api")
	{
		api.GET("/news", h.GetNews)
		api.GET("/signals", h.GetSignals)
		api.GET("/sessions", h.GetSessions)
		api.GET("/stance", h.GetStance)
		api.GET("/calendar", h.GetCalendar)
		api.GET("/market", h.GetMarket)

		api.GET("/settings", h.GetSettings)
		api.PUT("/settings", h.PutSettings)
	}

	analysis := api.Group("/analysis")
	{
		analysis.POST("/fundamental", h.PostFundamental)
		analysis.POST("/sentiment", h.PostSentiment)
		analysis.POST("/signals", h.PostSignals)
		analysis.POST("/insights", h.PostInsights)
		analysis.POST("/brief", h.PostBrief)
	}
}
