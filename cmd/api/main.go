package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/joshua-takyi/stretch/internal/clock"
	"github.com/joshua-takyi/stretch/internal/config"
	"github.com/joshua-takyi/stretch/internal/connect"
	"github.com/joshua-takyi/stretch/internal/container"
	"github.com/joshua-takyi/stretch/internal/helpers"
	"github.com/joshua-takyi/stretch/internal/models"
	"github.com/joshua-takyi/stretch/internal/routes"
)

func main() {
	// Load environment variables
	_ = godotenv.Load(".env.local")

	cfg, err := config.LoadConfig()
	if err != nil {
		slog.Error("Failed to load configuration", helpers.ErrAttr(err))
		os.Exit(1)
	}

	logger := setupLogger(cfg)
	logger.Info("Starting Stretch Yoga server", "environment", cfg.Environment)

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	db, err := connect.SQLiteConnect(cfg.DatabasePath)
	if err != nil {
		logger.Error("Failed to open database", "path", cfg.DatabasePath, helpers.ErrAttr(err))
		os.Exit(1)
	}
	logger.Info("Database connected", "path", cfg.DatabasePath)

	schemaCtx, cancelSchema := context.WithTimeout(context.Background(), 5*time.Second)
	err = models.NewSQLiteRepo(db).InitSchema(schemaCtx)
	cancelSchema()
	if err != nil {
		logger.Error("Failed to initialize schema", helpers.ErrAttr(err))
		os.Exit(1)
	}
	logger.Info("Schema ready, default site settings ensured")

	appContainer := container.NewContainer(logger, db, clock.NewSystem(), cfg.AllowedOrigins)
	router := routes.SetupRoutes(appContainer)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("Server failed to start", helpers.ErrAttr(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", helpers.ErrAttr(err))
	}

	// Close the store last so in-flight requests can finish
	if err := connect.SQLiteDisconnect(db); err != nil {
		logger.Error("Error closing database", helpers.ErrAttr(err))
	}

	logger.Info("Server exited")
}

func setupLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler

	if cfg.IsProduction() {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: cfg.Level(),
		})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: cfg.Level(),
		})
	}

	return slog.New(handler)
}
