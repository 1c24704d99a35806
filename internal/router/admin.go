package router

import (
	"net/http"

	_ "github.com/evyataryagoni/devtools/docs" // Swagger docs
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// SetupAdminRouter creates the router of the admin listener
// It is kept off the fake API port, where every GET except /weather must answer 404
//
// Routes:
//   - GET /health: liveness probe
//   - GET /metrics: Prometheus metrics from gatherer (nil means the default registry)
//   - GET /swagger/*: Swagger UI for the fake weather API
func SetupAdminRouter(gatherer prometheus.Gatherer) chi.Router {
	if gatherer == nil {
		gatherer = prometheus.DefaultGatherer
	}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/", redirectToSwagger)
	r.Get("/health", healthCheckHandler)
	r.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))

	// Access at: http://localhost:9091/swagger/index.html
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	return r
}

// redirectToSwagger sends the admin root to the Swagger UI
func redirectToSwagger(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/swagger/index.html", http.StatusFound)
}

// healthCheckHandler is a simple health check endpoint
// Returns 200 OK if the service is running
func healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("OK"))
}
