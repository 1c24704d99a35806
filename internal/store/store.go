package store

import "github.com/evyataryagoni/devtools/internal/models"

// Store defines the interface for weather lookups
// Allows the canned implementation to be swapped for a mock in tests
type Store interface {
	// FindByCity returns the weather report for a city
	FindByCity(city string) (*models.WeatherResponse, error)

	// Close cleans up resources held by the store
	Close() error
}
