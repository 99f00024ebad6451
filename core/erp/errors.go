package erp

import (
	"errors"
	"fmt"
)

// AuthError signals that the ERP rejected our credentials or that a renewed
// token was rejected again. It always aborts the current run.
type AuthError struct {
	// Status is the HTTP status returned by the ERP.
	Status int
	// Message describes which step failed.
	Message string
}

func (e *AuthError) Error() string {
	return fmt.Sprintf("erp authentication failed (%d): %s", e.Status, e.Message)
}

// APIError is a non-auth upstream failure, carrying whatever status and body
// detail the transport provided.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("erp api error %d: %s", e.Status, e.Body)
}

// IsAuthError reports whether err is an authentication failure.
func IsAuthError(err error) bool {
	var ae *AuthError
	return errors.As(err, &ae)
}

func isAuthStatus(status int) bool {
	return status == 401 || status == 403
}
