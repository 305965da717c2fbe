package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// DefaultDotEnvPath is read when ENV_PATH is not set.
const DefaultDotEnvPath = ".env"

// LoadDotEnv loads variables from the file named by ENV_PATH, or from
// defaultPath. Variables already present in the environment win.
//
// A missing file is not an error: containers get their configuration from
// the real environment. Only an unreadable or malformed file is reported.
func LoadDotEnv(defaultPath string) error {
	path := GetEnvString("ENV_PATH", defaultPath)

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			slog.Debug("no .env file, using process environment", slog.String("path", path))
			return nil
		}
		return err
	}

	slog.Info("environment loaded from file", slog.String("path", path))
	return nil
}

// MustLoadDotEnv is LoadDotEnv for main packages.
func MustLoadDotEnv(defaultPath string) {
	if err := LoadDotEnv(defaultPath); err != nil {
		slog.Error("failed to load .env file", slog.Any("error", err))
		os.Exit(1)
	}
}
