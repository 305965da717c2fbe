package auth

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"stock-admin/internal/handler/http/respond"
	"stock-admin/internal/observability/logging"
	authservice "stock-admin/internal/service/auth"
)

// DefaultTokenTTL is how long issued tokens stay valid.
const DefaultTokenTTL = time.Hour

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type tokenResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"`
	Role      string `json:"role"`
	Name      string `json:"name,omitempty"`
}

// TokenHandler authenticates a login and issues an HS256 token carrying the
// subject, display name and role of the account.
func TokenHandler(authService *authservice.AuthService, secret []byte, ttl time.Duration) http.HandlerFunc {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		logger := logging.FromContext(r.Context())

		fail := func(role, reason string, code int, msg string) {
			logger.Warn("authentication failed",
				slog.String("reason", reason),
				slog.Int64("duration_ms", time.Since(start).Milliseconds()))
			recordTokenRequest(role, resultRejected, time.Since(start))
			respond.JSON(w, code, respond.ErrorBody{Error: msg})
		}

		var req loginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			fail("", "invalid_request", http.StatusBadRequest, "invalid request")
			return
		}

		id, err := authService.Authenticate(r.Context(), authservice.Credentials{
			Username: req.Email,
			Password: req.Password,
		})
		if err != nil {
			fail("", "invalid_credentials", http.StatusUnauthorized, "unauthorized")
			return
		}

		now := time.Now()
		expiresAt := now.Add(ttl)
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
			Name: id.Name,
			Role: id.Role,
			RegisteredClaims: jwt.RegisteredClaims{
				Subject:   id.Email,
				IssuedAt:  jwt.NewNumericDate(now),
				ExpiresAt: jwt.NewNumericDate(expiresAt),
			},
		})

		signed, err := token.SignedString(secret)
		if err != nil {
			logger.Error("token generation failed", slog.Any("error", err))
			recordTokenRequest(id.Role, resultError, time.Since(start))
			respond.JSON(w, http.StatusInternalServerError, respond.ErrorBody{Error: "token generation failed"})
			return
		}

		logger.Info("authentication successful",
			slog.String("user_email", id.Email),
			slog.String("role", id.Role),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		recordTokenRequest(id.Role, resultIssued, time.Since(start))

		respond.JSON(w, http.StatusOK, tokenResponse{
			Token:     signed,
			ExpiresAt: expiresAt.Unix(),
			Role:      id.Role,
			Name:      id.Name,
		})
	}
}
