package openweather

import (
	"fmt"

	"github.com/pkg/errors"
)

// ErrMissingTemperature is returned when the provider response parses as
// JSON but carries no temperature field.
var ErrMissingTemperature = errors.New("no temperature in response")

// ProviderError is returned when the provider answers with a non-200 status.
// Code and Message carry the provider's own error body when it could be
// parsed.
type ProviderError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("openweathermap API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("openweathermap API error (status %d)", e.StatusCode)
}
