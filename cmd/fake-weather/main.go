package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/evyataryagoni/devtools/internal/config"
	"github.com/evyataryagoni/devtools/internal/handler"
	"github.com/evyataryagoni/devtools/internal/logger"
	"github.com/evyataryagoni/devtools/internal/metrics"
	"github.com/evyataryagoni/devtools/internal/router"
	"github.com/evyataryagoni/devtools/internal/service"
	"github.com/evyataryagoni/devtools/internal/store"
)

// shutdownTimeout bounds the drain of in-flight requests on SIGINT/SIGTERM
const shutdownTimeout = 5 * time.Second

// @title           Fake Weather API
// @version         1.0
// @description     Local stand-in weather API for testing custom API tools

// @contact.name   Evyatar Yagoni
// @contact.email  evyatar@example.com

// @license.name  MIT
// @license.url   http://opensource.org/licenses/MIT

// @host      localhost:5001
// @BasePath  /
func main() {
	appConfig := config.Load()

	appLogger := setupLogger(appConfig)
	if err := appConfig.ValidateServer(); err != nil {
		appLogger.Fatal().Err(err).Msg("Invalid configuration")
	}

	metricsCollector := metrics.New(nil)

	// Build application layers
	weatherService := service.NewWeatherService(store.NewCannedStore(appConfig.WeatherCondition), metricsCollector, appLogger)
	defer weatherService.Close()

	weatherHandler := handler.NewWeatherHandler(weatherService, metricsCollector)
	appRouter := router.SetupRouter(weatherHandler, metricsCollector, appLogger)

	servers := []*http.Server{newServer(appConfig.Port, appRouter)}
	if appConfig.AdminPort != "" {
		servers = append(servers, newServer(appConfig.AdminPort, router.SetupAdminRouter(nil)))
	}

	run(servers, appConfig, appLogger)
}

// setupLogger initializes the structured logger
func setupLogger(appConfig *config.Config) *logger.Logger {
	appLogger := logger.New(logger.Config{
		Level:      appConfig.LogLevel,
		Pretty:     appConfig.LogPretty,
		OutputFile: appConfig.LogFile,
	})

	appLogger.Info().Msg("Starting fake weather API...")
	if !appConfig.EnvFileLoaded {
		appLogger.Debug().Msg("No .env file found, using environment variables or defaults")
	}
	appLogger.Info().
		Str("port", appConfig.Port).
		Str("admin_port", appConfig.AdminPort).
		Str("condition", appConfig.WeatherCondition).
		Msg("Configuration loaded")

	return appLogger
}

// newServer binds a handler to all interfaces on port
func newServer(port string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              ":" + port,
		Handler:           h,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// run starts every server and blocks until a signal arrives or one of them fails
func run(servers []*http.Server, appConfig *config.Config, log *logger.Logger) {
	log.Info().
		Str("api_endpoint", "http://localhost:"+appConfig.Port+"/weather?city=Paris").
		Msg("Server is running")
	if appConfig.AdminPort != "" {
		log.Info().
			Str("health_check", "http://localhost:"+appConfig.AdminPort+"/health").
			Str("metrics", "http://localhost:"+appConfig.AdminPort+"/metrics").
			Str("swagger", "http://localhost:"+appConfig.AdminPort+"/swagger/index.html").
			Msg("Admin endpoints")
	}

	errCh := make(chan error, len(servers))
	for _, srv := range servers {
		go func(srv *http.Server) {
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- err
			}
		}(srv)
	}

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		log.Fatal().Err(err).Msg("Server failed")
	case sig := <-stop:
		log.Info().Str("signal", sig.String()).Msg("Shutting down")
	}

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	for _, srv := range servers {
		if err := srv.Shutdown(ctx); err != nil {
			log.Error().Err(err).Str("addr", srv.Addr).Msg("Graceful shutdown error")
		}
	}
}
