package auth

import (
	"errors"
	"strings"
)

// ErrMismatchedHashAndPassword is returned when a password does not match
// its stored hash
var ErrMismatchedHashAndPassword = errors.New("mismatched hash and password")

// ErrNoEmptyString is the error for empty password input to the hasher
var ErrNoEmptyString = errors.New("password must not be empty")

// ErrMissingSigningKey aborts startup when SESSION_SECRET is not configured
var ErrMissingSigningKey = errors.New("SESSION_SECRET must be set")

// ErrUnableToDecodeSession unable to verify or decode the session token
var ErrUnableToDecodeSession = errors.New("unable to decode session")

// IsUniqueViolation will check for store-level unique constraint errors.
// A registration race loses the insert and lands here; callers treat it the
// same as the "user already exists" validation failure.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
