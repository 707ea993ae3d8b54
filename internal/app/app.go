package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/config"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/db"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/repository"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/service"
)

type App struct {
	Cfg            *config.Config
	DB             *sqlx.DB
	AuthService    *service.AuthService
	UserService    *service.UserService
	CatalogService *service.CatalogService
	GoalService    *service.GoalService
	SessionService *service.SessionService
	FeedService    *service.FeedService
}

func New(cfg *config.Config) (*App, error) {
	// Initialize database
	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %v", err)
	}

	// Run database migrations
	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		return nil, fmt.Errorf("failed to run migrations: %v", err)
	}

	// Repositories
	userRepository := repository.NewUserRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	levelRepository := repository.NewLevelRepository(database)
	medalRepository := repository.NewMedalRepository(database)
	sessionRepository := repository.NewSessionRepository(database)
	userGoalRepository := repository.NewUserGoalRepository(database)

	// Services
	authService := service.NewAuthService(userRepository, cfg.JWTSecret, cfg.JWTExpiry)
	userService := service.NewUserService(userRepository, sessionRepository, userGoalRepository)
	catalogService := service.NewCatalogService(goalRepository, levelRepository, medalRepository)
	goalService := service.NewGoalService(goalRepository, userGoalRepository, sessionRepository)
	sessionService := service.NewSessionService(sessionRepository, userRepository, userGoalRepository, goalRepository, userService)
	feedService := service.NewFeedService(catalogService, userGoalRepository)

	return &App{
		Cfg:            cfg,
		DB:             database,
		AuthService:    authService,
		UserService:    userService,
		CatalogService: catalogService,
		GoalService:    goalService,
		SessionService: sessionService,
		FeedService:    feedService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
