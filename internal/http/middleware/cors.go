package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
	"go.uber.org/zap"

	"github.com/furnishhq/quotation-api/internal/config"
)

// CORS builds the CORS handler from configuration. A "*" entry in the
// allowed origins switches to reflect-any-origin mode, which is only
// appropriate for development; production deployments should list the
// frontend origin explicitly.
func CORS(cfg *config.CORSConfig, environment string, logger *zap.Logger) func(http.Handler) http.Handler {
	options := cors.Options{
		AllowedMethods:   cfg.AllowedMethods,
		AllowedHeaders:   cfg.AllowedHeaders,
		ExposedHeaders:   cfg.ExposedHeaders,
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}

	allowAll := func(r *http.Request, origin string) bool {
		return origin != ""
	}

	switch {
	case containsWildcard(cfg.AllowedOrigins):
		if environment != "development" && environment != "local" {
			logger.Warn("CORS wildcard origin outside development",
				zap.String("environment", environment))
		}
		options.AllowOriginFunc = allowAll

	case len(cfg.AllowedOrigins) > 0:
		options.AllowedOrigins = cfg.AllowedOrigins
		logger.Info("CORS configured with explicit origins",
			zap.Strings("origins", cfg.AllowedOrigins))

	case environment == "development" || environment == "local" || environment == "":
		options.AllowOriginFunc = allowAll
		logger.Info("CORS allowing all origins in development mode")

	default:
		// Empty AllowedOrigins defaults to "*" inside the library, so an
		// explicit deny func is required to reject everything.
		options.AllowOriginFunc = func(r *http.Request, origin string) bool {
			return false
		}
		logger.Warn("CORS has no allowed origins, cross-origin requests will be denied",
			zap.String("environment", environment))
	}

	return cors.Handler(options)
}

func containsWildcard(origins []string) bool {
	for _, origin := range origins {
		if origin == "*" {
			return true
		}
	}
	return false
}
