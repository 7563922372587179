package container

import (
	"database/sql"
	"log/slog"

	"github.com/joshua-takyi/stretch/internal/clock"
	"github.com/joshua-takyi/stretch/internal/models"
	"github.com/joshua-takyi/stretch/internal/services"
)

// Container holds all application dependencies
type Container struct {
	Logger         *slog.Logger
	DB             *sql.DB
	AllowedOrigins []string

	Repo            *models.SQLiteRepo
	EventService    *services.EventService
	SettingsService *services.SettingsService
}

// NewContainer creates a new dependency injection container
func NewContainer(
	logger *slog.Logger,
	db *sql.DB,
	clk clock.Clock,
	allowedOrigins []string,
) *Container {
	repo := models.NewSQLiteRepo(db)

	return &Container{
		Logger:          logger,
		DB:              db,
		AllowedOrigins:  allowedOrigins,
		Repo:            repo,
		EventService:    services.NewEventService(repo, clk),
		SettingsService: services.NewSettingsService(repo),
	}
}
