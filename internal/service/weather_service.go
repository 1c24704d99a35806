package service

import (
	"fmt"

	"github.com/evyataryagoni/devtools/internal/logger"
	"github.com/evyataryagoni/devtools/internal/metrics"
	"github.com/evyataryagoni/devtools/internal/models"
	"github.com/evyataryagoni/devtools/internal/store"
)

// WeatherService handles the logic behind the fake weather endpoint
// It sits between the handler and the store
//
// Responsibilities:
//   - Apply the default city
//   - Call the store
//   - Log and count lookups
type WeatherService struct {
	store   store.Store      // Source of weather reports
	metrics *metrics.Metrics // Metrics collector (optional)
	logger  *logger.Logger   // Structured logger
}

// NewWeatherService creates a new weather service
//
// Parameters:
//   - store: any implementation of the Store interface
//   - m: metrics collector (optional, can be nil)
//   - log: logger (optional, can be nil)
//
// Returns:
//   - *WeatherService: pointer to the created service
func NewWeatherService(store store.Store, m *metrics.Metrics, log *logger.Logger) *WeatherService {
	if log == nil {
		log = logger.NewDefault()
	}
	return &WeatherService{
		store:   store,
		metrics: m,
		logger:  log.WithComponent("WeatherService"),
	}
}

// Forecast returns the weather report for the query
//
// A query without a city (Defaulted) is answered for models.DefaultCity.
// A present but empty city is answered as-is.
func (s *WeatherService) Forecast(q models.WeatherQuery) (*models.WeatherResponse, error) {
	city := q.City
	source := "query"
	if q.Defaulted {
		city = models.DefaultCity
		source = "default"
	}

	report, err := s.store.FindByCity(city)
	if err != nil {
		s.logger.Error().Err(err).Str("city", city).Msg("Store error during weather lookup")
		if s.metrics != nil {
			s.metrics.WeatherErrorsTotal.Inc()
		}
		return nil, fmt.Errorf("weather lookup failed: %w", err)
	}

	s.logger.Debug().
		Str("city", city).
		Str("source", source).
		Str("weather", report.Weather).
		Msg("Weather lookup successful")
	if s.metrics != nil {
		s.metrics.WeatherLookupsTotal.WithLabelValues(source).Inc()
	}

	return report, nil
}

// Close cleans up resources
// This will close the underlying store
func (s *WeatherService) Close() error {
	return s.store.Close()
}
