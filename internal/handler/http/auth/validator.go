package auth

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// weakPasswordList contains common weak passwords that must be rejected.
var weakPasswordList = []string{
	"admin",
	"password",
	"123456",
	"secret",
	"admin123",
	"password123",
	"123456789",
	"12345678",
	"qwerty",
	"abc123",
	"letmein",
	"welcome",
	"monkey",
	"1234567890",
	"password1",
	"admin1",
	"test",
	"test123",
	"default",
	"root",
	"motdepasse",
	"azerty",
	"soleil",
}

// MinPasswordLength is the minimum password length for every account.
const MinPasswordLength = 12

// WeakPasswords returns a copy of the weak password list.
func WeakPasswords() []string {
	return append([]string(nil), weakPasswordList...)
}

// ValidateJWTSecret checks JWT_SECRET at startup and returns it.
func ValidateJWTSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if len(secret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters")
	}
	return []byte(secret), nil
}

// ValidateSuperAdminCredentials checks the mandatory super administrator
// account at startup. The server must not start when it fails.
func ValidateSuperAdminCredentials() error {
	user := os.Getenv("SUPER_ADMIN_USER")
	pass := os.Getenv("SUPER_ADMIN_PASSWORD")

	if user == "" {
		return fmt.Errorf("super admin credentials validation failed: SUPER_ADMIN_USER must not be empty")
	}
	if pass == "" {
		return fmt.Errorf("super admin credentials validation failed: SUPER_ADMIN_PASSWORD must not be empty")
	}
	if reason := passwordWeakness(pass); reason != "" {
		return fmt.Errorf("super admin credentials validation failed: SUPER_ADMIN_PASSWORD %s", reason)
	}
	return nil
}

// ValidateOptionalAccounts checks the admin and viewer accounts. A
// misconfigured optional account is disabled by unsetting its variables;
// startup never fails because of one.
func ValidateOptionalAccounts(logger *slog.Logger) {
	superUser := os.Getenv("SUPER_ADMIN_USER")
	seen := map[string]bool{superUser: true}

	for _, slot := range accountSlots[1:] {
		user := os.Getenv(slot.userKey)
		if user == "" {
			logger.Info("account not configured", slog.String("role", slot.role))
			continue
		}

		reason := ""
		switch pass := os.Getenv(slot.passKey); {
		case pass == "":
			reason = slot.passKey + " is empty"
		case seen[user]:
			reason = slot.userKey + " duplicates another account"
		default:
			if weak := passwordWeakness(pass); weak != "" {
				reason = slot.passKey + " " + weak
			}
		}

		if reason != "" {
			logger.Warn("disabling account", slog.String("role", slot.role), slog.String("reason", reason))
			_ = os.Unsetenv(slot.userKey)
			_ = os.Unsetenv(slot.passKey)
			continue
		}

		seen[user] = true
		logger.Info("account configured", slog.String("role", slot.role), slog.String("user", user))
	}
}

// passwordWeakness describes why pass is unacceptable, or returns "".
func passwordWeakness(pass string) string {
	if len(pass) < MinPasswordLength {
		return fmt.Sprintf("must be at least %d characters", MinPasswordLength)
	}
	if isSimpleNumericPattern(pass) {
		return "must not be a simple numeric pattern"
	}
	if isKeyboardPattern(pass) {
		return "must not be a keyboard pattern"
	}

	lower := strings.ToLower(pass)
	for _, weak := range weakPasswordList {
		if lower == weak {
			return "must not be a weak password"
		}
		// "admin1234567890" のような派生パターン
		if strings.HasPrefix(lower, weak) && len(pass) < MinPasswordLength+5 {
			return "must not be based on common weak passwords"
		}
	}
	return ""
}

// isSimpleNumericPattern catches repeated characters and digit runs such as
// "111111111111" or "123456789012".
func isSimpleNumericPattern(pass string) bool {
	if isRepeatedChar(pass) {
		return true
	}

	for _, ch := range pass {
		if ch < '0' || ch > '9' {
			return false
		}
	}

	isAscending, isDescending := true, true
	for i := 1; i < len(pass); i++ {
		diff := int(pass[i]) - int(pass[i-1])
		// 9→0 の折り返しも連番とみなす
		if diff != 1 && diff != -9 {
			isAscending = false
		}
		if diff != -1 && diff != 9 {
			isDescending = false
		}
	}
	return isAscending || isDescending
}

func isRepeatedChar(pass string) bool {
	if pass == "" {
		return false
	}
	return strings.Count(pass, pass[:1]) == len(pass)
}

var keyboardPatterns = []string{
	"qwertyuiop",
	"asdfghjkl",
	"zxcvbnm",
	"azertyuiop",
	"qwerty",
	"azerty",
	"asdfgh",
	"zxcvb",
}

func isKeyboardPattern(pass string) bool {
	lower := strings.ToLower(pass)
	for _, pattern := range keyboardPatterns {
		if strings.Contains(lower, pattern) || strings.Contains(lower, reverse(pattern)) {
			return true
		}
	}
	return false
}

func reverse(s string) string {
	runes := []rune(s)
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}
