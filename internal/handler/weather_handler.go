package handler

import (
	"encoding/json"
	"net/http"

	"github.com/evyataryagoni/devtools/internal/metrics"
	"github.com/evyataryagoni/devtools/internal/models"
	"github.com/evyataryagoni/devtools/internal/service"
)

// Fixed error messages of the fake weather API
const (
	msgNotFound         = "not found"
	msgMethodNotAllowed = "method not allowed"
	msgInternal         = "internal server error"
)

// WeatherHandler handles HTTP requests for the fake weather API
// This is the handler layer - it deals with HTTP concerns only
//
// Responsibilities:
//   - Parse HTTP requests (query parameters)
//   - Call service methods
//   - Format HTTP responses (JSON)
//   - Set appropriate status codes
type WeatherHandler struct {
	service *service.WeatherService
	metrics *metrics.Metrics
}

// NewWeatherHandler creates a new weather handler with the given service
// m may be nil
func NewWeatherHandler(service *service.WeatherService, m *metrics.Metrics) *WeatherHandler {
	return &WeatherHandler{
		service: service,
		metrics: m,
	}
}

// GetWeather handles GET /weather?city=<city>
// @Summary      Get canned weather for a city
// @Description  Returns "kinda cloudy in <city>". Without a city parameter the city is "your city".
// @Tags         Weather
// @Produce      json
// @Param        city  query     string  false  "City name (used verbatim, first occurrence wins)"  example(Paris)
// @Success      200   {object}  models.WeatherResponse
// @Failure      500   {object}  models.ErrorResponse  "Internal server error"
// @Router       /weather [get]
func (h *WeatherHandler) GetWeather(w http.ResponseWriter, r *http.Request) {
	query := models.WeatherQuery{
		Path:      r.URL.Path,
		City:      models.DefaultCity,
		Defaulted: true,
	}

	// "?city=" is a present, empty city
	if city, ok := firstQueryValue(r.URL.RawQuery, "city"); ok {
		query.City = city
		query.Defaulted = false
	}

	report, err := h.service.Forecast(query)
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, msgInternal)
		return
	}

	h.respondJSON(w, http.StatusOK, report)
}

// Preflight handles OPTIONS on any path
// @Summary      CORS preflight
// @Description  Acknowledges cross-origin preflight requests for any path
// @Tags         CORS
// @Produce      json
// @Success      200  {object}  models.PreflightResponse
// @Router       /{path} [options]
func (h *WeatherHandler) Preflight(w http.ResponseWriter, r *http.Request) {
	if h.metrics != nil {
		h.metrics.PreflightsTotal.Inc()
	}
	h.respondJSON(w, http.StatusOK, models.PreflightResponse{OK: true})
}

// NotFound is the default handler for every unmatched path
func (h *WeatherHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	if h.metrics != nil {
		h.metrics.NotFoundTotal.Inc()
	}
	h.respondError(w, http.StatusNotFound, msgNotFound)
}

// MethodNotAllowed answers methods other than GET and OPTIONS
func (h *WeatherHandler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	h.respondError(w, http.StatusMethodNotAllowed, msgMethodNotAllowed)
}

// respondJSON writes a JSON response with the given status code
func (h *WeatherHandler) respondJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	// Headers are already sent, an encode failure can't change the status
	_ = enc.Encode(data)
}

// respondError writes an error response with consistent formatting
func (h *WeatherHandler) respondError(w http.ResponseWriter, statusCode int, message string) {
	h.respondJSON(w, statusCode, models.ErrorResponse{Error: message})
}
