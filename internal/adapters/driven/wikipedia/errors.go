package wikipedia

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/custodia-labs/wik/internal/core/domain"
)

// APIError represents a failed MediaWiki request.
// It matches domain.ErrTransport, and domain.ErrNotFound for a 404.
type APIError struct {
	StatusCode int
	Message    string
	URL        string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("wikipedia: API error %d: %s (URL: %s)", e.StatusCode, e.Message, e.URL)
}

// Unwrap returns the domain errors the API error matches.
func (e *APIError) Unwrap() []error {
	if e.StatusCode == http.StatusNotFound {
		return []error{domain.ErrTransport, domain.ErrNotFound}
	}
	return []error{domain.ErrTransport}
}

// IsNotFound checks if the error indicates a missing page.
func IsNotFound(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusNotFound
	}
	return errors.Is(err, domain.ErrNotFound)
}

// IsRateLimited checks if the server asked us to slow down.
func IsRateLimited(err error) bool {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode == http.StatusTooManyRequests
	}
	return false
}

// IsTransport checks if the error came from the network layer or a
// non-success response.
func IsTransport(err error) bool {
	return errors.Is(err, domain.ErrTransport)
}
