package platform

import (
	"errors"
	"fmt"
)

// ErrDecode marks a 2xx upstream response whose body could not be parsed as
// JSON. Callers can distinguish it from a backend-reported failure.
var ErrDecode = errors.New("malformed upstream response")

// APIError is a non-success response from the platform API. Message carries
// the backend-provided message when the body had one, otherwise the
// per-operation fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// IsUnauthorized reports whether err is an upstream 401, meaning the bearer
// token was missing, expired or revoked.
func IsUnauthorized(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 401
}

func decodeErr(err error) error {
	return fmt.Errorf("%w: %v", ErrDecode, err)
}
