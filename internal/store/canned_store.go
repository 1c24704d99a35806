package store

import (
	"fmt"

	"github.com/evyataryagoni/devtools/internal/models"
)

// DefaultCondition is the sky condition reported for every city
const DefaultCondition = "kinda cloudy"

// CannedStore implements Store by answering every city with the same condition
// There is no data source behind it: the answer is built from the city name alone
type CannedStore struct {
	condition string
}

// NewCannedStore creates a canned store
//
// Parameters:
//   - condition: the sky condition to report (empty means DefaultCondition)
//
// Returns:
//   - *CannedStore: pointer to the created store
func NewCannedStore(condition string) *CannedStore {
	if condition == "" {
		condition = DefaultCondition
	}
	return &CannedStore{condition: condition}
}

// FindByCity implements the Store interface
// The city is used verbatim: no trimming, no escaping (JSON encoding happens in the handler)
func (s *CannedStore) FindByCity(city string) (*models.WeatherResponse, error) {
	return &models.WeatherResponse{
		Weather: fmt.Sprintf("%s in %s", s.condition, city),
	}, nil
}

// Close implements the Store interface
// Nothing to release for the canned store
func (s *CannedStore) Close() error {
	return nil
}
