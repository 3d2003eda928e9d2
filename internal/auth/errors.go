package auth

import "errors"

// Custom auth service errors
var (
	// ErrNoSession indicates a missing, malformed, or expired session token
	ErrNoSession = errors.New("no active session")

	// ErrInvalidCredentials indicates the email/password pair did not match
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken indicates an account already exists for the email
	ErrEmailTaken = errors.New("email already registered")

	// ErrWeakPassword indicates the password is below the minimum length
	ErrWeakPassword = errors.New("password too short")

	// ErrBadAdminSecret indicates the admin gate rejected the entered password
	ErrBadAdminSecret = errors.New("invalid admin password")
)

// IsNoSession checks if the error is a missing session error
func IsNoSession(err error) bool {
	return errors.Is(err, ErrNoSession)
}

// IsInvalidCredentials checks if the error is a credential mismatch error
func IsInvalidCredentials(err error) bool {
	return errors.Is(err, ErrInvalidCredentials)
}

// IsEmailTaken checks if the error is a duplicate email error
func IsEmailTaken(err error) bool {
	return errors.Is(err, ErrEmailTaken)
}
