package storage

import (
	"fmt"

	"github.com/rainman226/asa-bot-f1-service/internal"
	"github.com/rainman226/asa-bot-f1-service/internal/config"
)

// NewTimezoneRepository selects the backend configured by
// STORAGE_BACKEND. Config validation has already constrained the value.
func NewTimezoneRepository(cfg *config.Config, logger internal.Logger) (TimezoneRepository, error) {
	switch cfg.StorageBackend {
	case "sqlite":
		return NewSQLiteStorage(cfg.SQLitePath, logger)
	case "postgres":
		return NewPostgresStorage(cfg.PostgresDSN, logger)
	case "memory":
		return NewMemoryStorage(), nil
	default:
		return nil, fmt.Errorf("unsupported storage backend %q", cfg.StorageBackend)
	}
}
