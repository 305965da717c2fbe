package auth

import "strings"

// PublicEndpoints defines endpoints that don't require authentication.
//   - /health, /ready, /live: orchestration probes
//   - /metrics: Prometheus scraping
//   - /auth/token: token issuance (can't require a token to get a token)
var PublicEndpoints = []string{
	"/health",
	"/ready",
	"/live",
	"/metrics",
	"/auth/token",
}

// IsPublicEndpoint reports whether path is one of PublicEndpoints.
// Only exact matches, a trailing slash or a query string are accepted, so
// /health does not cover /health/detail or /healthcheck.
func IsPublicEndpoint(path string) bool {
	for _, endpoint := range PublicEndpoints {
		if strings.HasSuffix(endpoint, "/") {
			if strings.HasPrefix(path, endpoint) {
				return true
			}
			continue
		}
		if path == endpoint || path == endpoint+"/" || strings.HasPrefix(path, endpoint+"?") {
			return true
		}
	}
	return false
}
