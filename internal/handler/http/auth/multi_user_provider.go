package auth

import (
	"context"
	"crypto/subtle"
	"fmt"
	"strings"

	authservice "stock-admin/internal/service/auth"
)

// MultiUserAuthProvider authenticates against a fixed list of accounts.
type MultiUserAuthProvider struct {
	accounts          []Account
	minPasswordLength int
	weakPasswords     []string
}

// NewMultiUserAuthProvider creates a provider over accounts.
func NewMultiUserAuthProvider(accounts []Account, minPasswordLength int, weakPasswords []string) *MultiUserAuthProvider {
	return &MultiUserAuthProvider{
		accounts:          accounts,
		minPasswordLength: minPasswordLength,
		weakPasswords:     weakPasswords,
	}
}

// ValidateCredentials checks creds against every account. All accounts are
// compared so that the response time does not depend on which one matches.
func (p *MultiUserAuthProvider) ValidateCredentials(_ context.Context, creds authservice.Credentials) error {
	if creds.Username == "" || creds.Password == "" {
		return fmt.Errorf("credentials must not be empty")
	}
	if len(creds.Password) < p.minPasswordLength {
		return fmt.Errorf("password must be at least %d characters", p.minPasswordLength)
	}
	lower := strings.ToLower(creds.Password)
	for _, weak := range p.weakPasswords {
		if lower == weak {
			return fmt.Errorf("weak password detected")
		}
	}

	matched := 0
	for _, a := range p.accounts {
		userMatch := subtle.ConstantTimeCompare([]byte(creds.Username), []byte(a.Email))
		passMatch := subtle.ConstantTimeCompare([]byte(creds.Password), []byte(a.Password))
		matched |= userMatch & passMatch
	}
	if matched != 1 {
		return fmt.Errorf("invalid credentials")
	}
	return nil
}

// IdentifyUser returns the identity of the account registered for email.
func (p *MultiUserAuthProvider) IdentifyUser(_ context.Context, email string) (authservice.Identity, error) {
	if email == "" {
		return authservice.Identity{}, fmt.Errorf("email must not be empty")
	}
	for _, a := range p.accounts {
		if subtle.ConstantTimeCompare([]byte(email), []byte(a.Email)) == 1 {
			return authservice.Identity{Email: a.Email, Name: a.Name, Role: a.Role}, nil
		}
	}
	return authservice.Identity{}, fmt.Errorf("user not found")
}

// GetRequirements returns the password requirements.
func (p *MultiUserAuthProvider) GetRequirements() authservice.CredentialRequirements {
	return authservice.CredentialRequirements{
		MinPasswordLength: p.minPasswordLength,
		WeakPasswords:     p.weakPasswords,
	}
}

// Name returns the provider name.
func (p *MultiUserAuthProvider) Name() string {
	return "multi-user"
}
