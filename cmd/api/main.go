package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jonboulle/clockwork"
	"gorm.io/gorm"

	appService "notedesk/internal/application/service"
	"notedesk/internal/application/store"
	"notedesk/internal/infrastructure/database/sqlite"
	"notedesk/internal/infrastructure/notify"
	"notedesk/internal/infrastructure/scheduler"
	"notedesk/internal/interfaces/api/handler"
	"notedesk/internal/interfaces/api/router"
	"notedesk/internal/pkg/config"
	appLogger "notedesk/internal/pkg/logger"

	_ "github.com/joho/godotenv/autoload" // Automatically load .env file
)

func gracefulShutdown(apiServer *http.Server, schedulerSvc appService.SchedulerService, db *gorm.DB, done chan bool) {
	// Create context that listens for the interrupt signal from the OS.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-ctx.Done()

	log.Println("Shutting down gracefully, press Ctrl+C again to force")

	// Stop the tick first so no reminder fires mid-shutdown.
	log.Println("Stopping scheduler...")
	schedulerSvc.Stop()
	log.Println("Scheduler stopped.")

	log.Println("Closing database connection...")
	if err := sqlite.CloseDB(db); err != nil {
		log.Printf("Error closing database: %v", err)
	} else {
		log.Println("Database connection closed.")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shutdown with error: %v", err)
	}

	log.Println("Server exiting")
	done <- true
}

func main() {
	// --- Configuration ---
	cfgPath := os.Getenv("NOTEDESK_CONFIG")
	if cfgPath == "" {
		cfgPath = "config.yaml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLog := appLogger.New(cfg.Log.Level)
	appLog.Info("Logger initialized.")

	// --- Infrastructure ---
	db, err := sqlite.NewDB(cfg.Database.Path)
	if err != nil {
		appLog.Error("Failed to open database", err)
		os.Exit(1)
	}
	reminderPersist := sqlite.NewReminderPersistence(db)
	notificationPersist := sqlite.NewNotificationPersistence(db)
	noteRepo := sqlite.NewNoteRepository(db)
	appLog.Info("Database and persistence initialized.")

	clock := clockwork.NewRealClock()
	deliverer := notify.NewDesktop(appLog)
	cronScheduler := scheduler.NewScheduler(appLog)

	// --- Stores ---
	reminderStore := store.NewReminderStore(reminderPersist, clock, appLog)
	notificationStore := store.NewNotificationStore(notificationPersist, clock, appLog)
	if err := reminderStore.Load(context.Background()); err != nil {
		appLog.Error("Failed to load reminders", err)
		os.Exit(1)
	}
	if err := notificationStore.Load(context.Background()); err != nil {
		appLog.Error("Failed to load notifications", err)
		os.Exit(1)
	}
	appLog.Info("Stores loaded.")

	// --- Application Services ---
	noteSvc := appService.NewNoteService(noteRepo, reminderStore, appLog)
	reminderSvc := appService.NewReminderService(reminderStore, noteRepo, clock, appLog)
	notificationSvc := appService.NewNotificationService(notificationStore, deliverer, cfg.Notifications.Silent, appLog)
	schedulerSvc := appService.NewSchedulerService(
		cronScheduler, reminderStore, notificationStore, deliverer, clock, cfg.Notifications.Silent, appLog,
	)
	appLog.Info("Application services initialized.")

	if err := schedulerSvc.Start(); err != nil {
		appLog.Error("Failed to start the reminder tick", err)
		os.Exit(1)
	}

	// --- API Handlers & Router ---
	routerCfg := &router.Config{
		NoteHandler:         handler.NewNoteHandler(noteSvc, appLog),
		ReminderHandler:     handler.NewReminderHandler(reminderSvc, appLog),
		NotificationHandler: handler.NewNotificationHandler(notificationSvc, appLog),
		Logger:              appLog,
	}
	echoRouter := router.NewRouter(routerCfg)

	// --- HTTP Server ---
	apiServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:      echoRouter,
		IdleTimeout:  time.Minute,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	done := make(chan bool, 1)
	go gracefulShutdown(apiServer, schedulerSvc, db, done)

	appLog.Info(fmt.Sprintf("Server starting on port %d", cfg.Server.Port))
	err = apiServer.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		appLog.Error("HTTP server ListenAndServe error", err)
		panic(fmt.Sprintf("http server error: %s", err))
	}

	<-done
	appLog.Info("Graceful shutdown complete.")
}
