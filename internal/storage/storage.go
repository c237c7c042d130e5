package storage

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/julianstephens/habitgrid/internal/constants"
	"github.com/julianstephens/habitgrid/internal/keyring"
	"github.com/julianstephens/habitgrid/internal/storage/postgres"
	"github.com/julianstephens/habitgrid/internal/storage/sqlite"
)

// Resolve turns the configured target into the value handed to New.
// HABITGRID_DB_CONNECTION wins over configPath, and the value "keyring"
// is replaced with the connection string stored in the OS keyring.
func Resolve(configPath string) (string, error) {
	target := configPath
	if env := strings.TrimSpace(os.Getenv(constants.EnvDBConnection)); env != "" {
		target = env
	}

	if target == constants.KeyringConfigValue {
		connStr, err := keyring.GetConnectionString()
		if err != nil {
			return "", fmt.Errorf("failed to read connection string from keyring: %w", err)
		}
		return connStr, nil
	}

	return target, nil
}

// New returns the backend named by target: PostgreSQL for connection strings,
// SQLite for everything else.
func New(target string) (Provider, error) {
	if strings.TrimSpace(target) == "" {
		return nil, fmt.Errorf("no storage target configured")
	}

	if postgres.IsConnString(target) {
		return postgres.New(target), nil
	}

	path, err := ExpandPath(target)
	if err != nil {
		return nil, err
	}
	return sqlite.NewStore(path), nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to resolve home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}
