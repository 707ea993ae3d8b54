package routes

import (
	"net/http"
	"time"

	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/app"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/handler"
	"github.com/IgnacioFarfan/generarecoapp-sub000/internal/middleware"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.DB)
	auth := handler.NewAuthHandler(app.AuthService, app.UserService)
	user := handler.NewUserHandler(app.UserService)
	catalog := handler.NewCatalogHandler(app.CatalogService)
	goal := handler.NewGoalHandler(app.GoalService)
	session := handler.NewSessionHandler(app.SessionService)
	feed := handler.NewFeedHandler(app.FeedService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /health", health.Health)

	// Identity bootstrap (rate limited; credential flows live elsewhere)
	authLimiter := middleware.RateLimit(10, 15*time.Minute)
	mux.HandleFunc("POST /api/users", authLimiter(auth.Register))
	mux.HandleFunc("POST /api/auth/token", authLimiter(auth.Token))

	// ============================================================================
	// PROTECTED ROUTES (/api/*)
	// ============================================================================

	// Profile & progression state
	mux.HandleFunc("GET /api/users/me", middleware.RequireAuth(user.Me))
	mux.HandleFunc("GET /api/users/me/medal", middleware.RequireAuth(user.Medal))
	mux.HandleFunc("PUT /api/users/me/medal", middleware.RequireAuth(user.UpdateMedal))
	mux.HandleFunc("GET /api/users/me/stats", middleware.RequireAuth(user.Stats))

	// Feed
	mux.HandleFunc("GET /api/feed", middleware.RequireAuth(feed.Feed))

	// Goal attempts
	mux.HandleFunc("POST /api/goals/{goalID}/start", middleware.RequireAuth(goal.Start))
	mux.HandleFunc("GET /api/goals/{goalID}/active", middleware.RequireAuth(goal.Active))
	mux.HandleFunc("GET /api/user-goals/{id}/stats", middleware.RequireAuth(goal.Stats))
	mux.HandleFunc("PATCH /api/user-goals/{id}/finish", middleware.RequireAuth(goal.Finish))
	mux.HandleFunc("DELETE /api/user-goals/{id}", middleware.RequireAuth(goal.Abandon))

	// Sessions
	sessionLimiter := middleware.RateLimit(120, time.Minute)
	mux.HandleFunc("POST /api/sessions", sessionLimiter(middleware.RequireAuth(session.Save)))
	mux.HandleFunc("GET /api/sessions", middleware.RequireAuth(session.List))

	// Catalog administration
	mux.HandleFunc("GET /api/catalog/goals", middleware.RequireAuth(catalog.Goals))
	mux.HandleFunc("POST /api/catalog/goals", middleware.RequireAuth(catalog.CreateGoal))
	mux.HandleFunc("POST /api/catalog/levels", middleware.RequireAuth(catalog.CreateLevel))
	mux.HandleFunc("POST /api/catalog/medals", middleware.RequireAuth(catalog.CreateMedal))

	// Global middleware - executed in order (top to bottom)
	handler := middleware.Chain(
		mux,
		middleware.RequestLogging,
		middleware.AuthMiddleware(app.AuthService),
	)

	return handler
}
