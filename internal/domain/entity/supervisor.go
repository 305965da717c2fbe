package entity

import (
	"net/mail"
	"strings"
	"time"
)

// Supervisor is a person stock movements can be assigned to.
type Supervisor struct {
	ID        int64
	Name      string
	Email     *string
	Phone     *string
	IsActive  bool
	CreatedBy string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Validate checks the supervisor fields before persistence.
func (s *Supervisor) Validate() error {
	if strings.TrimSpace(s.Name) == "" {
		return &ValidationError{Field: "name", Message: "is required"}
	}
	if s.Email != nil {
		if err := ValidateEmail(*s.Email); err != nil {
			return err
		}
	}
	return nil
}

// ValidateEmail checks that addr is a bare e-mail address.
func ValidateEmail(addr string) error {
	parsed, err := mail.ParseAddress(addr)
	if err != nil || parsed.Address != addr {
		return &ValidationError{Field: "email", Message: "invalid email address"}
	}
	return nil
}
