// Package auth implements JWT issuance and verification for the admin API
// together with the role permission table and the env-configured accounts.
package auth

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"stock-admin/internal/domain/entity"
	"stock-admin/internal/handler/http/respond"
)

type ctxKey string

const ctxActor ctxKey = "actor"

// WithActor returns a context carrying actor.
func WithActor(ctx context.Context, actor entity.Actor) context.Context {
	return context.WithValue(ctx, ctxActor, actor)
}

// ActorFromContext returns the authenticated actor stored by Authz.
func ActorFromContext(ctx context.Context) (entity.Actor, bool) {
	a, ok := ctx.Value(ctxActor).(entity.Actor)
	return a, ok
}

// Claims is the JWT payload issued by TokenHandler.
type Claims struct {
	Name string `json:"name,omitempty"`
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// Authz returns middleware that requires a valid bearer token on every
// non-public endpoint and checks the role permission table. The resolved
// actor is stored in the request context.
func Authz(secret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if IsPublicEndpoint(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			start := time.Now()
			actor, err := validateJWT(r.Header.Get("Authorization"), secret)
			if err != nil {
				respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
				return
			}

			allowed := checkRolePermission(actor.Role, r.Method, r.URL.Path)
			recordAuthzCheck(actor.Role, r.Method, time.Since(start), allowed)
			if !allowed {
				respond.SafeError(w, http.StatusForbidden, errors.New("forbidden"))
				return
			}

			next.ServeHTTP(w, r.WithContext(WithActor(r.Context(), actor)))
		})
	}
}

func validateJWT(authz string, secret []byte) (entity.Actor, error) {
	tokenString, ok := strings.CutPrefix(authz, "Bearer ")
	if !ok || tokenString == "" {
		return entity.Actor{}, errors.New("missing bearer token")
	}

	var claims Claims
	tok, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil || !tok.Valid {
		return entity.Actor{}, errors.New("invalid token")
	}
	if claims.Subject == "" {
		return entity.Actor{}, errors.New("invalid sub claim")
	}
	if claims.Role == "" {
		return entity.Actor{}, errors.New("invalid role claim")
	}

	return entity.Actor{ID: claims.Subject, Name: claims.Name, Role: claims.Role}, nil
}
