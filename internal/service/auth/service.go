// Package auth holds the framework-agnostic authentication logic: credential
// checks delegated to a provider and the identity resolved for a login.
package auth

import (
	"context"
	"errors"
	"fmt"
)

// ErrInvalidCredentials is returned for any failed login. Callers must not
// reveal which part of the credentials was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Credentials represents authentication credentials.
type Credentials struct {
	Username string
	Password string
}

// CredentialRequirements defines password policy requirements.
type CredentialRequirements struct {
	MinPasswordLength int
	WeakPasswords     []string
}

// Identity is the account a successful login resolves to.
type Identity struct {
	Email string
	Name  string
	Role  string
}

// AuthProvider defines the interface for authentication providers.
type AuthProvider interface {
	// ValidateCredentials validates user credentials.
	ValidateCredentials(ctx context.Context, creds Credentials) error

	// IdentifyUser returns the identity registered for email.
	IdentifyUser(ctx context.Context, email string) (Identity, error)

	// GetRequirements returns the credential requirements for this provider.
	GetRequirements() CredentialRequirements

	// Name returns the name of this provider.
	Name() string
}

// AuthService handles authentication business logic.
type AuthService struct {
	provider AuthProvider
}

// NewAuthService creates a new authentication service.
func NewAuthService(provider AuthProvider) *AuthService {
	return &AuthService{provider: provider}
}

// ValidateCredentials validates user credentials via the configured provider.
func (s *AuthService) ValidateCredentials(ctx context.Context, creds Credentials) error {
	return s.provider.ValidateCredentials(ctx, creds)
}

// Authenticate checks creds and resolves the identity behind them.
// Every failure is reported as ErrInvalidCredentials wrapping the cause.
func (s *AuthService) Authenticate(ctx context.Context, creds Credentials) (Identity, error) {
	if err := s.provider.ValidateCredentials(ctx, creds); err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	id, err := s.provider.IdentifyUser(ctx, creds.Username)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidCredentials, err)
	}
	return id, nil
}

// GetProvider returns the current authentication provider.
func (s *AuthService) GetProvider() AuthProvider {
	return s.provider
}
