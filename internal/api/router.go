package api

import (
	"net/http"

	"github.com/bounty-bunny/DataSage/internal/api/handler"
	custommiddleware "github.com/bounty-bunny/DataSage/internal/api/middleware"
	"github.com/bounty-bunny/DataSage/internal/config"
	"github.com/bounty-bunny/DataSage/internal/repository/sqlite"
	"github.com/bounty-bunny/DataSage/internal/security"
	"github.com/bounty-bunny/DataSage/internal/service"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// NewRouter creates and configures the HTTP router
func NewRouter(cfg *config.Config, db *sqlite.DB) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(custommiddleware.Logger)
	r.Use(middleware.Recoverer)

	// CORS
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Security components
	jwtManager := security.NewJWTManager(
		cfg.Auth.JWTSecret,
		cfg.Auth.AccessTokenTTL,
		cfg.Auth.RefreshTokenTTL,
	)

	// Repositories
	userRepo := sqlite.NewUserRepository(db)
	workspaceRepo := sqlite.NewWorkspaceRepository(db)
	dashboardRepo := sqlite.NewDashboardRepository(db)
	shareRepo := sqlite.NewShareRepository(db)
	revisionRepo := sqlite.NewRevisionRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager)
	workspaceService := service.NewWorkspaceService(workspaceRepo)
	accessService := service.NewAccessService(dashboardRepo, workspaceRepo, shareRepo)
	dashboardService := service.NewDashboardService(dashboardRepo, accessService)
	revisionService := service.NewRevisionService(revisionRepo, dashboardRepo, accessService)

	// Handlers
	authHandler := handler.NewAuthHandler(authService)
	workspaceHandler := handler.NewWorkspaceHandler(workspaceService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService, accessService, revisionService)

	authMiddleware := custommiddleware.NewAuthMiddleware(jwtManager)

	r.Route("/api/v1", func(r chi.Router) {
		// Health check
		r.Get("/health", handler.HealthCheck)
		r.Get("/ready", handler.ReadyCheck(db))

		// Auth routes (public)
		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Route("/workspaces", func(r chi.Router) {
				r.Get("/", workspaceHandler.List)
				r.Post("/", workspaceHandler.Create)
				r.Post("/{workspaceID}/members", workspaceHandler.AddMember)
			})

			r.Route("/dashboards", func(r chi.Router) {
				r.Get("/", dashboardHandler.List)
				r.Post("/", dashboardHandler.Create)

				r.Route("/{dashboardID}", func(r chi.Router) {
					r.Get("/", dashboardHandler.Get)
					r.Put("/", dashboardHandler.Update)
					r.Delete("/", dashboardHandler.Delete)

					r.Get("/shares", dashboardHandler.Shares)
					r.Put("/shares/{userID}", dashboardHandler.Grant)
					r.Delete("/shares/{userID}", dashboardHandler.Revoke)

					r.Get("/revisions", dashboardHandler.History)
					r.Post("/revisions/{version}/restore", dashboardHandler.Restore)
				})
			})
		})
	})

	return r
}
