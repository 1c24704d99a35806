package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
)

// Environment variable read by the key checker
const APIKeyEnv = "OPENAI_API_KEY"

// Defaults for the key checker request
const (
	DefaultAPIURL       = "https://api.openai.com/v1/chat/completions"
	DefaultModel        = "gpt-5-nano"
	DefaultProbeTimeout = 30 // seconds
)

// Config holds configuration for both tools
// Each command only reads the fields it needs
type Config struct {
	// Fake weather server
	Port             string `validate:"required,numeric"`
	AdminPort        string `validate:"omitempty,numeric"` // empty disables /health, /metrics and Swagger
	WeatherCondition string `validate:"required"`

	// Logging
	LogLevel  string `validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogPretty bool
	LogFile   string

	// Key checker
	APIKey              string // may be empty, the checker reports it
	APIURL              string `validate:"required,url"`
	Model               string `validate:"required"`
	ProbeTimeoutSeconds int    `validate:"gt=0"`

	// EnvFileLoaded reports whether a .env file was found
	EnvFileLoaded bool
}

// Load reads configuration from a .env file (if any) and environment variables
// with sensible defaults
func Load() *Config {
	return LoadFrom()
}

// LoadFrom is Load with explicit .env file paths
// No paths means ".env" in the working directory
// Variables already set in the environment win over .env values
func LoadFrom(envFiles ...string) *Config {
	err := godotenv.Load(envFiles...)

	return &Config{
		Port:             getEnv("PORT", "5001"),
		AdminPort:        os.Getenv("ADMIN_PORT"),
		WeatherCondition: getEnv("WEATHER_CONDITION", "kinda cloudy"),

		LogLevel:  strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogPretty: getEnvAsBool("LOG_PRETTY", true),
		LogFile:   getEnv("LOG_FILE", ""),

		APIKey:              os.Getenv(APIKeyEnv),
		APIURL:              getEnv("OPENAI_API_URL", DefaultAPIURL),
		Model:               getEnv("OPENAI_MODEL", DefaultModel),
		ProbeTimeoutSeconds: getEnvAsInt("PROBE_TIMEOUT_SECONDS", DefaultProbeTimeout),

		EnvFileLoaded: err == nil,
	}
}

// Fields checked by each command
var (
	serverFields = []string{"Port", "AdminPort", "WeatherCondition", "LogLevel"}
	probeFields  = []string{"APIURL", "Model", "ProbeTimeoutSeconds", "LogLevel"}
)

// Validate checks every field with struct tags
// Returns a single error listing every invalid field
func (c *Config) Validate() error {
	return formatValidation(validator.New().Struct(c))
}

// ValidateServer checks only the fields the fake weather server reads
func (c *Config) ValidateServer() error {
	return formatValidation(validator.New().StructPartial(c, serverFields...))
}

// ValidateProbe checks only the fields the key checker reads
// Server settings such as PORT never block the checker
func (c *Config) ValidateProbe() error {
	return formatValidation(validator.New().StructPartial(c, probeFields...))
}

func formatValidation(err error) error {
	if err == nil {
		return nil
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	fields := make([]string, 0, len(validationErrors))
	for _, fe := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", fe.Field(), fe.Tag()))
	}
	return fmt.Errorf("invalid configuration: %s", strings.Join(fields, ", "))
}

// ProbeTimeout returns the key checker timeout as a duration
func (c *Config) ProbeTimeout() time.Duration {
	return time.Duration(c.ProbeTimeoutSeconds) * time.Second
}

// getEnv reads an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

// getEnvAsInt reads an environment variable as an integer
// Returns default if not set or invalid
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}

// getEnvAsBool reads an environment variable as a boolean
// Accepts anything strconv.ParseBool does; returns default if not set or invalid
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}

	return value
}
