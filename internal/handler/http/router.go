package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/commercekit/backoffice/internal/auth"
	"github.com/commercekit/backoffice/internal/domain"
	"github.com/commercekit/backoffice/internal/service"
	"github.com/commercekit/backoffice/pkg/health"
	"github.com/commercekit/backoffice/pkg/middleware"
)

// Deps bundles everything the router needs.
type Deps struct {
	Inventory  *service.InventoryService
	Products   *service.ProductService
	Categories *service.CategoryService
	Users      *service.UserService

	JWT    *auth.JWTManager
	Health *health.Handler
	Logger *slog.Logger

	CORS           middleware.CORSConfig
	TracingEnabled bool
}

// NewRouter creates a chi router with all back-office routes registered.
func NewRouter(deps Deps) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.CORS(deps.CORS))
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogging(deps.Logger))
	if deps.TracingEnabled {
		r.Use(middleware.Tracing("backoffice"))
	}
	r.Use(middleware.PrometheusMetrics())

	r.Get("/health/live", deps.Health.LivenessHandler())
	r.Get("/health/ready", deps.Health.ReadinessHandler())
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	authMiddleware := middleware.Auth(tokenValidator(deps.JWT))
	requireWriter := middleware.RequireRole(domain.RoleAdmin, domain.RoleManager)
	requireAdmin := middleware.RequireRole(domain.RoleAdmin)

	userHandler := NewUserHandler(deps.Users, deps.Logger)
	inventoryHandler := NewInventoryHandler(deps.Inventory, deps.Logger)
	productHandler := NewProductHandler(deps.Products, deps.Logger)
	categoryHandler := NewCategoryHandler(deps.Categories, deps.Logger)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(ContentTypeJSON)
		r.Use(middleware.RequestLogger(deps.Logger))

		r.Route("/auth", func(r chi.Router) {
			r.Post("/register", userHandler.Register)
			r.Post("/login", userHandler.Login)
			r.Post("/refresh", userHandler.Refresh)
		})

		// Everything below requires a valid access token.
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", userHandler.Me)

				r.Group(func(r chi.Router) {
					r.Use(requireAdmin)
					r.Get("/", userHandler.List)
					r.Get("/{id}", userHandler.Get)
					r.Patch("/{id}", userHandler.Update)
					r.Delete("/{id}", userHandler.Deactivate)
				})
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", categoryHandler.List)
				r.Get("/slug/{slug}", categoryHandler.GetBySlug)
				r.Get("/{id}", categoryHandler.Get)

				r.With(requireWriter).Post("/", categoryHandler.Create)
				r.With(requireWriter).Patch("/{id}", categoryHandler.Update)
				r.With(requireAdmin).Delete("/{id}", categoryHandler.Delete)
			})

			r.Route("/products", func(r chi.Router) {
				r.Get("/", productHandler.List)
				r.Get("/slug/{slug}", productHandler.GetBySlug)
				r.Get("/{id}", productHandler.Get)

				r.With(requireWriter).Post("/", productHandler.Create)
				r.With(requireWriter).Patch("/{id}", productHandler.Update)
				r.With(requireAdmin).Delete("/{id}", productHandler.Delete)
			})

			r.Route("/inventory", func(r chi.Router) {
				r.Get("/", inventoryHandler.List)
				r.Get("/{id}", inventoryHandler.Get)
				r.Get("/product/{productId}/stock", inventoryHandler.GetProductStock)

				r.With(requireWriter).Post("/", inventoryHandler.Create)
				r.With(requireWriter).Patch("/{id}", inventoryHandler.Update)
				r.With(requireAdmin).Delete("/{id}", inventoryHandler.Delete)
			})
		})
	})

	return r
}

// tokenValidator adapts the JWT manager to the auth middleware contract.
func tokenValidator(jwtManager *auth.JWTManager) middleware.TokenValidator {
	return func(token string) (*middleware.Claims, error) {
		claims, err := jwtManager.ValidateAccessToken(token)
		if err != nil {
			return nil, err
		}
		return &middleware.Claims{
			UserID: claims.UserID,
			Email:  claims.Email,
			Role:   claims.Role,
		}, nil
	}
}
