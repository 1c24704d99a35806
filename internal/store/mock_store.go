package store

import (
	"github.com/evyataryagoni/devtools/internal/models"
)

// MockStore is a test double for the Store interface
// It allows tests to control behavior and verify interactions
type MockStore struct {
	// Data holds the mock data (city -> report mapping)
	Data map[string]*models.WeatherResponse

	// Track method calls for verification in tests
	FindByCityCalls []string
	CloseCalled     bool

	// Control behavior for error scenarios
	FindByCityError error
	CloseError      error
}

// NewMockStore creates a mock store with sample test data
func NewMockStore() *MockStore {
	return &MockStore{
		Data: map[string]*models.WeatherResponse{
			"Paris":  {Weather: "kinda cloudy in Paris"},
			"London": {Weather: "kinda cloudy in London"},
		},
		FindByCityCalls: []string{},
	}
}

// FindByCity implements the Store interface
// Tracks calls and returns configured data or errors
func (m *MockStore) FindByCity(city string) (*models.WeatherResponse, error) {
	m.FindByCityCalls = append(m.FindByCityCalls, city)

	if m.FindByCityError != nil {
		return nil, m.FindByCityError
	}

	if report, exists := m.Data[city]; exists {
		return report, nil
	}

	// Unknown cities still get an answer, like the canned store
	return &models.WeatherResponse{Weather: DefaultCondition + " in " + city}, nil
}

// Close implements the Store interface
// Tracks that close was called and returns configured error if any
func (m *MockStore) Close() error {
	m.CloseCalled = true
	return m.CloseError
}
