package auth

import (
	"os"
	"strings"

	"stock-admin/internal/domain/entity"
)

// Account is a login configured through the environment.
type Account struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// accountEnv names the environment variables of one account slot.
type accountEnv struct {
	role                     string
	userKey, passKey, nameKey string
}

var accountSlots = []accountEnv{
	{entity.RoleSuperAdmin, "SUPER_ADMIN_USER", "SUPER_ADMIN_PASSWORD", "SUPER_ADMIN_NAME"},
	{entity.RoleAdmin, "ADMIN_USER", "ADMIN_USER_PASSWORD", "ADMIN_NAME"},
	{entity.RoleViewer, "DEMO_USER", "DEMO_USER_PASSWORD", "DEMO_NAME"},
}

// AccountsFromEnv returns the accounts whose user variable is set.
// Call the Validate* functions first so that misconfigured optional
// accounts are already removed from the environment.
func AccountsFromEnv() []Account {
	var out []Account
	for _, slot := range accountSlots {
		user := strings.TrimSpace(os.Getenv(slot.userKey))
		if user == "" {
			continue
		}
		out = append(out, Account{
			Email:    user,
			Password: os.Getenv(slot.passKey),
			Name:     strings.TrimSpace(os.Getenv(slot.nameKey)),
			Role:     slot.role,
		})
	}
	return out
}
