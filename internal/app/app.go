package app

import (
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/studysync/studysync/internal/config"
	"github.com/studysync/studysync/internal/db"
	"github.com/studysync/studysync/internal/repository"
	"github.com/studysync/studysync/internal/service"
)

type App struct {
	Cfg                *config.Config
	DB                 *sqlx.DB
	AuthService        *service.AuthService
	UserService        *service.UserService
	CourseService      *service.CourseService
	GoalService        *service.GoalService
	TaskService        *service.TaskService
	ProgressLogService *service.ProgressLogService
	DashboardService   *service.DashboardService
	EmailService       *service.EmailService
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
	courseRepository := repository.NewCourseRepository(database)
	goalRepository := repository.NewGoalRepository(database)
	taskRepository := repository.NewTaskRepository(database)
	progressLogRepository := repository.NewProgressLogRepository(database)

	// Services
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	authService := service.NewAuthService(
		userRepository,
		emailService,
		cfg.JWTSecret,
		cfg.IsProduction(),
		cfg.JWTExpiry,
	)
	userService := service.NewUserService(userRepository)
	courseService := service.NewCourseService(courseRepository)
	goalService := service.NewGoalService(goalRepository, courseRepository)
	taskService := service.NewTaskService(taskRepository, goalRepository)
	progressLogService := service.NewProgressLogService(progressLogRepository, taskRepository)
	dashboardService := service.NewDashboardService(courseRepository)

	return &App{
		Cfg:                cfg,
		DB:                 database,
		AuthService:        authService,
		UserService:        userService,
		CourseService:      courseService,
		GoalService:        goalService,
		TaskService:        taskService,
		ProgressLogService: progressLogService,
		DashboardService:   dashboardService,
		EmailService:       emailService,
	}, nil
}

func (a *App) Close() error {
	if a.DB != nil {
		return a.DB.Close()
	}
	return nil
}
