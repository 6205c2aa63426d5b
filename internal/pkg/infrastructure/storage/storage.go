package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type Config struct {
	host     string
	user     string
	password string
	port     string
	dbname   string
	sslmode  string
}

func (c Config) ConnStr() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s", c.user, c.password, c.host, c.port, c.dbname, c.sslmode)
}

func NewConfig(host, user, password, port, dbname, sslmode string) Config {
	return Config{
		host:     host,
		user:     user,
		password: password,
		port:     port,
		dbname:   dbname,
		sslmode:  sslmode,
	}
}

func NewPool(ctx context.Context, config Config) (*pgxpool.Pool, error) {
	p, err := pgxpool.New(ctx, config.ConnStr())
	if err != nil {
		return nil, err
	}

	err = p.Ping(ctx)
	if err != nil {
		return nil, err
	}

	return p, nil
}

var (
	ErrNoRows           = errors.New("no rows in result set")
	ErrTooManyRows      = errors.New("too many rows in result set")
	ErrQueryRow         = errors.New("could not execute query")
	ErrStoreFailed      = errors.New("could not store data")
	ErrNoID             = errors.New("data contains no id")
	ErrMissingWorkspace = errors.New("missing workspace information")
	ErrAlreadyExists    = errors.New("already exists")
	ErrDeleted          = errors.New("deleted")
)

type Storage struct {
	pool *pgxpool.Pool
}

func NewWithPool(pool *pgxpool.Pool) *Storage {
	return &Storage{pool: pool}
}

func New(ctx context.Context, config Config) (*Storage, error) {
	pool, err := NewPool(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Storage{pool: pool}, nil
}

func (s *Storage) Initialize(ctx context.Context) error {
	return s.createTables(ctx)
}

func (s *Storage) createTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS alerts (
			alert_id			VARCHAR(255),
			alert_type			VARCHAR(100) NOT NULL,
			severity			VARCHAR(50)  NOT NULL,
			status				VARCHAR(50)  NOT NULL DEFAULT 'active',
			title				TEXT NOT NULL,
			message				TEXT NULL,
			source				JSONB NOT NULL DEFAULT '{}',
			metadata			JSONB NULL,
			suggested_actions	JSONB NULL,
			workspace			VARCHAR(255) NOT NULL,
			created_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			acknowledged_on		timestamp with time zone NULL,
			resolved_on			timestamp with time zone NULL,
			snoozed_until		timestamp with time zone NULL,
			deleted				BOOLEAN DEFAULT FALSE,
			deleted_on			timestamp with time zone NULL,
			CONSTRAINT pkey_alerts_unique PRIMARY KEY (alert_id, deleted)
		);

		CREATE TABLE IF NOT EXISTS explorations (
			exploration_id	VARCHAR(255),
			user_id			VARCHAR(255) NOT NULL,
			project_id		VARCHAR(255) NULL,
			name			TEXT NOT NULL,
			description		TEXT NULL,
			tags			JSONB NULL,
			is_public		BOOLEAN NOT NULL DEFAULT FALSE,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			accessed_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			deleted			BOOLEAN DEFAULT FALSE,
			deleted_on		timestamp with time zone NULL,
			CONSTRAINT pkey_explorations_unique PRIMARY KEY (exploration_id, deleted)
		);

		CREATE TABLE IF NOT EXISTS exploration_cells (
			cell_id				VARCHAR(255),
			exploration_id		VARCHAR(255) NOT NULL,
			cell_type			VARCHAR(50) NOT NULL,
			order_index			INT NOT NULL DEFAULT 0,
			content				JSONB NOT NULL DEFAULT '{}',
			output				JSONB NULL,
			is_collapsed		BOOLEAN NOT NULL DEFAULT FALSE,
			executed_on			timestamp with time zone NULL,
			execution_time_ms	BIGINT NULL,
			created_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_exploration_cells PRIMARY KEY (cell_id)
		);

		CREATE TABLE IF NOT EXISTS exploration_shares (
			share_id		VARCHAR(255),
			exploration_id	VARCHAR(255) NOT NULL,
			shared_by		VARCHAR(255) NOT NULL,
			shared_with		VARCHAR(255) NULL,
			shared_email	VARCHAR(255) NULL,
			permission		VARCHAR(50) NOT NULL DEFAULT 'view',
			share_token		VARCHAR(255) NULL,
			expires_on		timestamp with time zone NULL,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_exploration_shares PRIMARY KEY (share_id)
		);

		CREATE INDEX IF NOT EXISTS alerts_workspace_deleted_idx ON alerts (workspace) WHERE NOT deleted;
		CREATE INDEX IF NOT EXISTS alerts_status_idx ON alerts (status) WHERE NOT deleted;
		CREATE INDEX IF NOT EXISTS alerts_created_on_idx ON alerts (created_on DESC) WHERE NOT deleted;
		CREATE INDEX IF NOT EXISTS alerts_source_table_idx ON alerts ((source ->> 'tableId')) WHERE NOT deleted;
		CREATE INDEX IF NOT EXISTS explorations_user_deleted_idx ON explorations (user_id) WHERE NOT deleted;
		CREATE INDEX IF NOT EXISTS exploration_cells_exploration_idx ON exploration_cells (exploration_id, order_index);
		CREATE INDEX IF NOT EXISTS exploration_shares_exploration_idx ON exploration_shares (exploration_id);
		CREATE INDEX IF NOT EXISTS exploration_shares_token_idx ON exploration_shares (share_token);
	`)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) Close() {
	s.pool.Close()
}
