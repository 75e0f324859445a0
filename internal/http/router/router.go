package router

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/furnishhq/quotation-api/internal/auth"
	"github.com/furnishhq/quotation-api/internal/config"
	"github.com/furnishhq/quotation-api/internal/database"
	"github.com/furnishhq/quotation-api/internal/http/handler"
	"github.com/furnishhq/quotation-api/internal/http/middleware"

	_ "github.com/furnishhq/quotation-api/docs" // generated swagger docs
)

type Router struct {
	cfg            *config.Config
	logger         *zap.Logger
	db             *gorm.DB
	authMiddleware *auth.Middleware
	rateLimiter    *middleware.RateLimiter

	authHandler          *handler.AuthHandler
	customerHandler      *handler.CustomerHandler
	salesPersonHandler   *handler.SalesPersonHandler
	tailorHandler        *handler.TailorHandler
	configurationHandler *handler.ConfigurationHandler
	projectHandler       *handler.ProjectHandler
	roomHandler          *handler.RoomHandler
	windowHandler        *handler.WindowHandler
}

func NewRouter(
	cfg *config.Config,
	logger *zap.Logger,
	db *gorm.DB,
	authMiddleware *auth.Middleware,
	rateLimiter *middleware.RateLimiter,
	authHandler *handler.AuthHandler,
	customerHandler *handler.CustomerHandler,
	salesPersonHandler *handler.SalesPersonHandler,
	tailorHandler *handler.TailorHandler,
	configurationHandler *handler.ConfigurationHandler,
	projectHandler *handler.ProjectHandler,
	roomHandler *handler.RoomHandler,
	windowHandler *handler.WindowHandler,
) *Router {
	return &Router{
		cfg:                  cfg,
		logger:               logger,
		db:                   db,
		authMiddleware:       authMiddleware,
		rateLimiter:          rateLimiter,
		authHandler:          authHandler,
		customerHandler:      customerHandler,
		salesPersonHandler:   salesPersonHandler,
		tailorHandler:        tailorHandler,
		configurationHandler: configurationHandler,
		projectHandler:       projectHandler,
		roomHandler:          roomHandler,
		windowHandler:        windowHandler,
	}
}

func (rt *Router) Setup() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(rt.logger))
	r.Use(middleware.Logging(rt.logger))
	r.Use(middleware.SecurityHeaders(&rt.cfg.Security))
	r.Use(middleware.CORS(&rt.cfg.CORS, rt.cfg.App.Environment, rt.logger))
	r.Use(rt.rateLimiter.LimitByIP)

	// Liveness probe
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("OK"))
	})

	// Readiness probe
	r.Get("/health/ready", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if err := database.Ping(r.Context(), rt.db); err != nil {
			rt.logger.Error("database health check failed", zap.Error(err))
			w.WriteHeader(http.StatusServiceUnavailable)
			_ = json.NewEncoder(w).Encode(map[string]interface{}{
				"status": "unhealthy",
				"checks": map[string]string{"database": "unhealthy"},
			})
			return
		}
		w.WriteHeader(http.StatusOK)
		_ = json.NewEncoder(w).Encode(map[string]interface{}{
			"status": "healthy",
			"checks": map[string]string{"database": "healthy"},
		})
	})

	if rt.cfg.Server.EnableSwagger {
		r.Get("/swagger/*", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	r.Route("/api/v1", func(r chi.Router) {
		// Public auth endpoints
		r.Post("/auth/signup", rt.authHandler.Signup)
		r.Post("/auth/login", rt.authHandler.Login)

		// Everything else requires a valid token
		r.Group(func(r chi.Router) {
			r.Use(rt.authMiddleware.Authenticate)
			r.Use(rt.rateLimiter.Limit)

			r.Get("/auth/me", rt.authHandler.Me)

			r.Route("/configuration", func(r chi.Router) {
				r.Get("/", rt.configurationHandler.Get)
				r.Put("/", rt.configurationHandler.Update)
				r.Post("/logo", rt.configurationHandler.UploadLogo)
			})

			r.Route("/customers", func(r chi.Router) {
				r.Get("/", rt.customerHandler.List)
				r.Post("/", rt.customerHandler.Create)
				r.Get("/{id}", rt.customerHandler.GetByID)
				r.Put("/{id}", rt.customerHandler.Update)
				r.Delete("/{id}", rt.customerHandler.Delete)
			})

			r.Route("/sales-persons", func(r chi.Router) {
				r.Get("/", rt.salesPersonHandler.List)
				r.Post("/", rt.salesPersonHandler.Create)
				r.Get("/{id}", rt.salesPersonHandler.GetByID)
				r.Put("/{id}", rt.salesPersonHandler.Update)
				r.Delete("/{id}", rt.salesPersonHandler.Delete)
			})

			r.Route("/tailors", func(r chi.Router) {
				r.Get("/", rt.tailorHandler.List)
				r.Post("/", rt.tailorHandler.Create)
				r.Get("/{id}", rt.tailorHandler.GetByID)
				r.Put("/{id}", rt.tailorHandler.Update)
				r.Delete("/{id}", rt.tailorHandler.Delete)
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", rt.projectHandler.List)
				r.Post("/", rt.projectHandler.Create)
				r.Get("/status-counts", rt.projectHandler.StatusCounts)
				r.Get("/{id}", rt.projectHandler.GetByID)
				r.Put("/{id}", rt.projectHandler.Update)
				r.Delete("/{id}", rt.projectHandler.Delete)
				r.Get("/{id}/rooms", rt.roomHandler.ListByProject)
				r.Get("/{id}/quotation", rt.projectHandler.Quotation)
				r.Get("/{id}/whatsapp", rt.projectHandler.WhatsApp)
				r.Get("/{id}/pdf", rt.projectHandler.PDF)
			})

			r.Route("/rooms", func(r chi.Router) {
				r.Post("/", rt.roomHandler.Create)
				r.Get("/{id}", rt.roomHandler.GetByID)
				r.Get("/{id}/windows", rt.windowHandler.ListByRoom)
			})

			r.Route("/windows", func(r chi.Router) {
				r.Post("/", rt.windowHandler.Create)
				r.Get("/{id}", rt.windowHandler.GetByID)
			})
		})
	})

	return r
}
