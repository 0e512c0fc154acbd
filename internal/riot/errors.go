package riot

import (
	"errors"
	"fmt"
)

// APIError is the uniform failure shape for every upstream call. All fallback
// and degradation policy above the client classifies on StatusCode, never on
// message text.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("riot api: %d: %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("riot api: %d", e.StatusCode)
}

func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 404
}

func IsForbidden(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 403
}

func IsRateLimited(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == 429
}

// StatusOf returns the upstream status code carried by err, or 0 when err is
// not an APIError (network failure, decode failure).
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}
