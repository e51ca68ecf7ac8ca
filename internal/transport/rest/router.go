package rest

import (
	"database/sql"
	"log/slog"

	"github.com/go-chi/chi"

	"github.com/frahmantamala/user-management/internal/site"
	"github.com/frahmantamala/user-management/internal/transport/middleware"
	"github.com/frahmantamala/user-management/internal/user"
)

// RegisterAllRoutes mounts the API surface. Login and health are public;
// everything else sits behind the bearer-token middleware.
func RegisterAllRoutes(
	router *chi.Mux,
	db *sql.DB,
	userHandler *user.Handler,
	siteHandler *site.Handler,
	allowedOrigins string,
	logger *slog.Logger,
) {
	healthHandler := NewHealthHandler(db)

	router.Use(middleware.CORS(allowedOrigins))
	router.Use(middleware.RequestID)
	router.Use(middleware.LoggingMiddleware(logger))
	router.Use(middleware.RecoveryMiddleware(logger))

	router.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.healthCheckHandler)
		r.Get("/ping", healthHandler.pingHandler)

		r.Post("/auth/login", userHandler.Login)

		r.Group(func(pr chi.Router) {
			pr.Use(userHandler.AuthMiddleware)

			pr.Route("/users", func(ur chi.Router) {
				ur.Get("/", userHandler.FindAll)
				ur.Post("/", userHandler.Create)
				ur.Delete("/", userHandler.DeleteAll)
				ur.Get("/me", userHandler.GetCurrentUser)
				ur.Get("/{id}", userHandler.FindByID)
				ur.Patch("/{id}", userHandler.Update)
				ur.Delete("/{id}", userHandler.Delete)
				ur.Patch("/{id}/lock", userHandler.LockAndUnlock)
			})

			pr.Route("/sites", func(sr chi.Router) {
				sr.Get("/", siteHandler.FindAll)
				sr.Post("/", siteHandler.Create)
				sr.Get("/{id}", siteHandler.FindByID)
			})
		})
	})
}
