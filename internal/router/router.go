package router

import (
	"github.com/evyataryagoni/devtools/internal/handler"
	"github.com/evyataryagoni/devtools/internal/logger"
	"github.com/evyataryagoni/devtools/internal/metrics"
	custommiddleware "github.com/evyataryagoni/devtools/internal/middleware"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// SetupRouter creates the route table of the fake weather API
//
//	OPTIONS /*       -> Preflight
//	GET     /weather -> GetWeather
//	GET     /*       -> NotFound
//	anything else    -> MethodNotAllowed
//
// Parameters:
//   - weatherHandler: the weather handler
//   - m: metrics collector (optional, can be nil)
//   - log: structured logger
//
// Returns:
//   - chi.Router: configured router ready to use
func SetupRouter(weatherHandler *handler.WeatherHandler, m *metrics.Metrics, log *logger.Logger) chi.Router {
	r := chi.NewRouter()

	// Order matters: request ID first so the logger can pick it up,
	// CORS headers before anything that may write a response
	r.Use(middleware.RequestID)
	r.Use(custommiddleware.CORSHeadersMiddleware)
	r.Use(custommiddleware.LoggingMiddleware(log))
	r.Use(middleware.Recoverer)
	if m != nil {
		r.Use(custommiddleware.MetricsMiddleware(m))
	}

	r.Options("/*", weatherHandler.Preflight)
	r.Get("/weather", weatherHandler.GetWeather)

	// Without an explicit GET catch-all chi would answer GET /foo with 405,
	// because "/*" already exists for OPTIONS
	r.Get("/*", weatherHandler.NotFound)

	r.NotFound(weatherHandler.NotFound)
	r.MethodNotAllowed(weatherHandler.MethodNotAllowed)

	return r
}
