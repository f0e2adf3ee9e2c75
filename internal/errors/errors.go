package errors

import (
	"errors"
	"fmt"
)

// Common error types for the auth bridge
var (
	// Configuration errors
	ErrNotConfigured = errors.New("provider credentials not configured")

	// Authorization errors
	ErrInvalidCode    = errors.New("invalid authorization code")
	ErrExchangeFailed = errors.New("token exchange failed")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
