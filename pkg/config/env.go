// Package config reads process configuration from environment variables
// and an optional .env file.
//
// Unset variables yield the default. Malformed values also yield the
// default and log a warning naming the variable, so a typo never stops
// the service but is visible in the logs.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

// lookup returns the trimmed value of key and whether it is non-empty.
func lookup(key string) (string, bool) {
	v := strings.TrimSpace(os.Getenv(key))
	return v, v != ""
}

func parseOr[T any](key string, def T, parse func(string) (T, error)) T {
	raw, ok := lookup(key)
	if !ok {
		return def
	}
	v, err := parse(raw)
	if err != nil {
		slog.Warn("invalid environment value, using default",
			slog.String("key", key),
			slog.String("value", raw),
			slog.String("default", fmt.Sprint(def)),
			slog.String("error", err.Error()))
		return def
	}
	return v
}

// GetEnvString returns the value of key, or def when unset.
//
//	apiURL := GetEnvString("API_URL", "http://localhost:8080")
func GetEnvString(key, def string) string {
	if v, ok := lookup(key); ok {
		return v
	}
	return def
}

// GetEnvInt parses key as a base-10 integer.
func GetEnvInt(key string, def int) int {
	return parseOr(key, def, strconv.Atoi)
}

// GetEnvBool accepts the forms understood by strconv.ParseBool.
func GetEnvBool(key string, def bool) bool {
	return parseOr(key, def, strconv.ParseBool)
}

// GetEnvDuration parses key with time.ParseDuration ("30s", "1h30m").
func GetEnvDuration(key string, def time.Duration) time.Duration {
	return parseOr(key, def, time.ParseDuration)
}

// GetEnvStringList splits a comma-separated value, trimming each item and
// dropping empty ones. A value with no items yields def.
//
//	// CORS_ALLOWED_ORIGINS="https://admin.example.com, http://localhost:3000"
//	origins := GetEnvStringList("CORS_ALLOWED_ORIGINS", nil)
func GetEnvStringList(key string, def []string) []string {
	raw, ok := lookup(key)
	if !ok {
		return def
	}

	var out []string
	for _, part := range strings.Split(raw, ",") {
		if item := strings.TrimSpace(part); item != "" {
			out = append(out, item)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}
