package middleware

import (
	"fmt"
	"net/url"
	"strings"

	"stock-admin/pkg/config"
)

var validCORSMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "DELETE": true, "PATCH": true, "OPTIONS": true,
}

// LoadCORSConfig reads the CORS policy from the environment.
//
//	CORS_ALLOWED_ORIGINS  comma-separated origins; empty disables CORS (nil config)
//	CORS_ALLOWED_METHODS  default GET,POST,PUT,DELETE,OPTIONS
//	CORS_ALLOWED_HEADERS  default Content-Type,Authorization,X-Request-ID
//	CORS_MAX_AGE          default 86400
func LoadCORSConfig() (*CORSConfig, error) {
	origins := config.GetEnvStringList("CORS_ALLOWED_ORIGINS", nil)
	if len(origins) == 0 {
		return nil, nil
	}
	for _, o := range origins {
		if err := validateOrigin(o); err != nil {
			return nil, err
		}
	}

	methods := config.GetEnvStringList("CORS_ALLOWED_METHODS",
		[]string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	for i, m := range methods {
		m = strings.ToUpper(m)
		if !validCORSMethods[m] {
			return nil, fmt.Errorf("invalid HTTP method %q in CORS_ALLOWED_METHODS", m)
		}
		methods[i] = m
	}

	maxAge := config.GetEnvInt("CORS_MAX_AGE", 86400)
	if maxAge < 0 {
		return nil, fmt.Errorf("CORS_MAX_AGE must be non-negative, got %d", maxAge)
	}

	return &CORSConfig{
		AllowedOrigins: origins,
		AllowedMethods: methods,
		AllowedHeaders: config.GetEnvStringList("CORS_ALLOWED_HEADERS",
			[]string{"Content-Type", "Authorization", "X-Request-ID"}),
		MaxAge: maxAge,
	}, nil
}

// validateOrigin accepts scheme://host[:port] only.
func validateOrigin(origin string) error {
	u, err := url.Parse(origin)
	if err != nil {
		return fmt.Errorf("invalid origin URL %q: %w", origin, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("origin must use http or https scheme: %s", origin)
	}
	if u.Host == "" {
		return fmt.Errorf("origin must include a host: %s", origin)
	}
	if u.Path != "" || u.RawQuery != "" || u.Fragment != "" {
		return fmt.Errorf("origin must not include path, query or fragment: %s", origin)
	}
	return nil
}
