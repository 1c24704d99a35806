package models

// DefaultCity is substituted when a weather request carries no city parameter
const DefaultCity = "your city"

// WeatherQuery is the parsed form of an inbound weather request
// It lives for a single request and is never stored
type WeatherQuery struct {
	Path      string // Request path, e.g. "/weather"
	City      string // City name taken verbatim from the query string
	Defaulted bool   // True when the request had no city parameter
}

// WeatherResponse is the canned weather report returned to callers
// JSON tags tell Go how to convert this struct to/from JSON
type WeatherResponse struct {
	Weather string `json:"weather" example:"kinda cloudy in Paris"` // Human-readable forecast
}

// ErrorResponse is the standard error response format
// This is what we return when something goes wrong
type ErrorResponse struct {
	Error string `json:"error" example:"not found"` // Error message
}

// PreflightResponse acknowledges a CORS preflight request
type PreflightResponse struct {
	OK bool `json:"ok" example:"true"`
}

// ChatMessage is a single role/content pair of a chat-completion conversation
type ChatMessage struct {
	Role    string `json:"role" validate:"required,oneof=system user assistant"`
	Content string `json:"content" validate:"required"`
}

// ChatRequest is the body sent to the chat-completions endpoint
type ChatRequest struct {
	Model    string        `json:"model" validate:"required"`
	Messages []ChatMessage `json:"messages" validate:"required,min=1,dive"`
}
