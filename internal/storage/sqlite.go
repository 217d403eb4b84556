package storage

import (
	"context"
	"database/sql"
	"errors"

	"github.com/rainman226/asa-bot-f1-service/internal"

	_ "modernc.org/sqlite"
)

type SQLiteStorage struct {
	db     *sql.DB
	logger internal.Logger
}

// NewSQLiteStorage opens (or creates) the database file and ensures the
// server_timezones table exists.
func NewSQLiteStorage(path string, logger internal.Logger) (*SQLiteStorage, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		logger.Errorf("failed to open sqlite database %s: %v", path, err)
		return nil, err
	}
	if _, err := db.Exec(`PRAGMA journal_mode=WAL;`); err != nil {
		return nil, err
	}
	if err := migrate(db); err != nil {
		logger.Errorf("failed to migrate sqlite database %s: %v", path, err)
		return nil, err
	}
	return &SQLiteStorage{db: db, logger: logger}, nil
}

func migrate(db *sql.DB) error {
	_, err := db.Exec(`CREATE TABLE IF NOT EXISTS server_timezones (
		server_id TEXT PRIMARY KEY,
		timezone TEXT NOT NULL
	);`)
	return err
}

func (s *SQLiteStorage) GetTimezone(ctx context.Context, serverID string) (string, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT timezone FROM server_timezones WHERE server_id = ?`, serverID)
	var tz string
	if err := row.Scan(&tz); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return "UTC", nil
		}
		s.logger.Errorf("failed to read timezone for %s: %v", serverID, err)
		return "", err
	}
	return tz, nil
}

func (s *SQLiteStorage) SetTimezone(ctx context.Context, serverID, timezone string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO server_timezones (server_id, timezone) VALUES (?, ?)
		 ON CONFLICT(server_id) DO UPDATE SET timezone = excluded.timezone`,
		serverID, timezone)
	if err != nil {
		s.logger.Errorf("failed to upsert timezone for %s: %v", serverID, err)
		return err
	}
	return nil
}

func (s *SQLiteStorage) Close() error {
	return s.db.Close()
}

var _ TimezoneRepository = (*SQLiteStorage)(nil)
