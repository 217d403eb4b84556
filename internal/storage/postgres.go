package storage

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rainman226/asa-bot-f1-service/internal"
)

type PostgresStorage struct {
	pool   *pgxpool.Pool
	logger internal.Logger
}

func NewPostgresStorage(dsn string, logger internal.Logger) (*PostgresStorage, error) {
	ctx := context.Background()
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		logger.Errorf("failed to connect to postgres: %v", err)
		return nil, err
	}
	_, err = pool.Exec(ctx, `CREATE TABLE IF NOT EXISTS server_timezones (
		server_id TEXT PRIMARY KEY,
		timezone TEXT NOT NULL
	)`)
	if err != nil {
		logger.Errorf("failed to create server_timezones table: %v", err)
		return nil, err
	}
	return &PostgresStorage{pool: pool, logger: logger}, nil
}

func (p *PostgresStorage) GetTimezone(ctx context.Context, serverID string) (string, error) {
	row := p.pool.QueryRow(ctx,
		`SELECT timezone FROM server_timezones WHERE server_id = $1`, serverID)
	var tz string
	if err := row.Scan(&tz); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "UTC", nil
		}
		p.logger.Errorf("failed to read timezone for %s: %v", serverID, err)
		return "", err
	}
	return tz, nil
}

func (p *PostgresStorage) SetTimezone(ctx context.Context, serverID, timezone string) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO server_timezones (server_id, timezone) VALUES ($1, $2)
		 ON CONFLICT (server_id) DO UPDATE SET timezone = EXCLUDED.timezone`,
		serverID, timezone)
	if err != nil {
		p.logger.Errorf("failed to upsert timezone for %s: %v", serverID, err)
		return err
	}
	return nil
}

func (p *PostgresStorage) Close() {
	p.pool.Close()
}

var _ TimezoneRepository = (*PostgresStorage)(nil)
