package routes

import (
	"net/http"

	"github.com/studysync/studysync/internal/app"
	"github.com/studysync/studysync/internal/handler"
	"github.com/studysync/studysync/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	auth := handler.NewAuthHandler(app.AuthService)
	dashboard := handler.NewDashboardHandler(app.DashboardService)
	course := handler.NewCourseHandler(app.CourseService)
	goal := handler.NewGoalHandler(app.GoalService)
	task := handler.NewTaskHandler(app.TaskService)
	progressLog := handler.NewProgressLogHandler(app.ProgressLogService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	// Auth (rate limited)
	rateLimiter := middleware.RateLimitAuth()

	mux.HandleFunc("POST /auth/register", rateLimiter(auth.Register))
	mux.HandleFunc("POST /auth/login", rateLimiter(auth.Login))
	mux.HandleFunc("POST /auth/logout", auth.Logout)

	// ============================================================================
	// PROTECTED ROUTES (/api/*)
	// ============================================================================

	// Dashboard
	mux.HandleFunc("GET /api/dashboard", middleware.RequireAuth(dashboard.Overview))

	// Courses
	mux.HandleFunc("GET /api/courses", middleware.RequireAuth(course.List))
	mux.HandleFunc("POST /api/courses", middleware.RequireAuth(course.Create))
	mux.HandleFunc("GET /api/courses/{id}", middleware.RequireAuth(course.Show))
	mux.HandleFunc("PUT /api/courses/{id}", middleware.RequireAuth(course.Update))
	mux.HandleFunc("DELETE /api/courses/{id}", middleware.RequireAuth(course.Delete))
	mux.HandleFunc("POST /api/courses/{id}/complete", middleware.RequireAuth(course.Complete))

	// Goals
	mux.HandleFunc("POST /api/goals", middleware.RequireAuth(goal.Create))
	mux.HandleFunc("GET /api/goals/{id}", middleware.RequireAuth(goal.Show))
	mux.HandleFunc("PATCH /api/goals/{id}", middleware.RequireAuth(goal.Toggle))
	mux.HandleFunc("DELETE /api/goals/{id}", middleware.RequireAuth(goal.Delete))

	// Tasks
	mux.HandleFunc("POST /api/tasks", middleware.RequireAuth(task.Create))
	mux.HandleFunc("PATCH /api/tasks/{id}", middleware.RequireAuth(task.Toggle))
	mux.HandleFunc("DELETE /api/tasks/{id}", middleware.RequireAuth(task.Delete))

	// Progress logs
	mux.HandleFunc("GET /api/logs", middleware.RequireAuth(progressLog.List))
	mux.HandleFunc("POST /api/logs", middleware.RequireAuth(progressLog.Create))

	// Global middleware - executed in order (top to bottom)
	return middleware.Chain(
		mux,
		middleware.Config(app.Cfg), // Config must be first (needed downstream for env checks)
		middleware.SecurityHeaders,
		middleware.RequestLogging,
		middleware.CSRFProtection,
		middleware.AuthMiddleware(app.AuthService, app.UserService),
	)
}
