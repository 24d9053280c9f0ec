// Package identity manages user accounts for saving and retrieving projections.
package identity

import (
	"context"
	"errors"
	"strings"
	"time"
)

var (
	// ErrMissingCredentials is returned when email or password is blank.
	ErrMissingCredentials = errors.New("please fill in both fields")
	// ErrEmailExists is returned when signing up with an email that is already registered.
	ErrEmailExists = errors.New("email already registered")
	// ErrUserNotFound is returned when no user has the given email or ID.
	ErrUserNotFound = errors.New("user not found")
	// ErrInvalidCredentials is returned when a login password does not match.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInvalidEmail is returned at signup for an address without an "@".
	ErrInvalidEmail = errors.New("email address is not valid")
	// ErrWeakPassword is returned at signup for a password shorter than MinPasswordLength.
	ErrWeakPassword = errors.New("password must be at least 6 characters")
)

// MinPasswordLength is the shortest password CreateUser accepts.
const MinPasswordLength = 6

// User is a registered account. The password hash never leaves the store.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// Provider is the identity backend used by the CLI and API server.
type Provider interface {
	CreateUser(ctx context.Context, email, password string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	GetUserByID(ctx context.Context, id string) (User, error)
	Authenticate(ctx context.Context, email, password string) (User, error)
}

// NormalizeEmail trims and lower-cases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func checkCredentials(email, password string) error {
	if email == "" || password == "" {
		return ErrMissingCredentials
	}
	if !strings.Contains(email, "@") {
		return ErrInvalidEmail
	}
	if len(password) < MinPasswordLength {
		return ErrWeakPassword
	}
	return nil
}
