package router

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"notedesk/internal/interfaces/api/handler"
	"notedesk/internal/pkg/logger"
)

// Config holds the dependencies for the router.
type Config struct {
	NoteHandler         *handler.NoteHandler
	ReminderHandler     *handler.ReminderHandler
	NotificationHandler *handler.NotificationHandler
	Logger              logger.Logger
}

// NewRouter creates and configures a new Echo router.
func NewRouter(cfg *Config) *echo.Echo {
	e := echo.New()

	// Middleware
	e.Use(middleware.RequestID())
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogURI:       true,
		LogStatus:    true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			cfg.Logger.Info(fmt.Sprintf("REQUEST: method=%s, uri=%s, status=%d, latency=%s, req_id=%s",
				v.Method, v.URI, v.Status, v.Latency, v.RequestID,
			))
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
		MaxAge:       300,
	}))

	// Health check
	e.GET("/", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	api := e.Group("/api")

	notes := api.Group("/notes")
	notes.POST("", cfg.NoteHandler.Create)
	notes.GET("", cfg.NoteHandler.List)
	notes.GET("/:id", cfg.NoteHandler.Get)
	notes.PUT("/:id", cfg.NoteHandler.Update)
	notes.DELETE("/:id", cfg.NoteHandler.Delete)

	reminders := api.Group("/reminders")
	reminders.POST("", cfg.ReminderHandler.Create)
	reminders.GET("", cfg.ReminderHandler.List)
	reminders.GET("/count", cfg.ReminderHandler.Count)
	reminders.POST("/:id/dismiss", cfg.ReminderHandler.Dismiss)
	reminders.DELETE("/:id", cfg.ReminderHandler.Remove)

	notifications := api.Group("/notifications")
	notifications.GET("", cfg.NotificationHandler.List)
	notifications.GET("/unread-count", cfg.NotificationHandler.UnreadCount)
	notifications.POST("/read-all", cfg.NotificationHandler.MarkAllRead)
	notifications.POST("/test", cfg.NotificationHandler.SendTest)
	notifications.POST("/:id/read", cfg.NotificationHandler.MarkRead)
	notifications.DELETE("/:id", cfg.NotificationHandler.Delete)

	cfg.Logger.Info("Router initialized with routes.")
	return e
}
