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
	ErrNoRows       = errors.New("no rows in result set")
	ErrQueryRow     = errors.New("could not execute query")
	ErrStoreFailed  = errors.New("could not store data")
	ErrAlreadyExist = errors.New("already exists")
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
	return s.CreateTables(ctx)
}

func (s *Storage) Pool() *pgxpool.Pool {
	return s.pool
}

func (s *Storage) CreateTables(ctx context.Context) error {
	_, err := s.pool.Exec(ctx, `
		CREATE TABLE IF NOT EXISTS users (
			user_id		TEXT NOT NULL,
			email		TEXT NOT NULL,
			created_on	timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_users PRIMARY KEY (user_id)
		);

		CREATE UNIQUE INDEX IF NOT EXISTS idx_users_email ON users (lower(email));

		CREATE TABLE IF NOT EXISTS edge_nodes (
			edge_node_id		TEXT NOT NULL,
			name				TEXT NOT NULL,
			token				TEXT NOT NULL,
			update_rate_seconds	INTEGER NOT NULL DEFAULT 5,
			created_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			modified_on			timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_edge_nodes PRIMARY KEY (edge_node_id),
			CONSTRAINT uniq_edge_nodes_token UNIQUE (token)
		);

		CREATE TABLE IF NOT EXISTS node_settings (
			singleton		BOOLEAN NOT NULL DEFAULT TRUE,
			role			TEXT NOT NULL DEFAULT 'Hub',
			hub_url			TEXT NULL,
			hub_token		TEXT NULL,
			data_sync_seconds	INTEGER NOT NULL DEFAULT 5,
			modified_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_node_settings PRIMARY KEY (singleton),
			CONSTRAINT chk_node_settings_singleton CHECK (singleton)
		);

		CREATE TABLE IF NOT EXISTS device_templates (
			template_id		TEXT NOT NULL,
			owner_id		TEXT NOT NULL,
			name			TEXT NOT NULL,
			device_type		INTEGER NOT NULL DEFAULT 0,
			is_global		BOOLEAN NOT NULL DEFAULT FALSE,
			enable_map		BOOLEAN NOT NULL DEFAULT FALSE,
			enable_grid		BOOLEAN NOT NULL DEFAULT FALSE,
			grid_row_span	INTEGER NULL,
			grid_col_span	INTEGER NULL,
			synced_from_hub	BOOLEAN NOT NULL DEFAULT FALSE,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_device_templates PRIMARY KEY (template_id)
		);

		CREATE TABLE IF NOT EXISTS sensors (
			sensor_id		TEXT NOT NULL,
			template_id		TEXT NOT NULL REFERENCES device_templates (template_id) ON DELETE CASCADE,
			tag				TEXT NOT NULL,
			name			TEXT NOT NULL,
			unit			TEXT NULL,
			accuracy_decimals	INTEGER NULL,
			sensor_order	INTEGER NOT NULL DEFAULT 0,
			sensor_group	TEXT NULL,
			updated_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_sensors PRIMARY KEY (sensor_id)
		);

		CREATE TABLE IF NOT EXISTS commands (
			command_id		TEXT NOT NULL,
			template_id		TEXT NOT NULL REFERENCES device_templates (template_id) ON DELETE CASCADE,
			display_name	TEXT NOT NULL,
			name			TEXT NOT NULL,
			params			JSONB NOT NULL DEFAULT '[]',
			updated_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_commands PRIMARY KEY (command_id)
		);

		CREATE TABLE IF NOT EXISTS recipes (
			recipe_id		TEXT NOT NULL,
			template_id		TEXT NOT NULL REFERENCES device_templates (template_id) ON DELETE CASCADE,
			name			TEXT NOT NULL,
			updated_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_recipes PRIMARY KEY (recipe_id)
		);

		CREATE TABLE IF NOT EXISTS recipe_steps (
			step_id			TEXT NOT NULL,
			recipe_id		TEXT NOT NULL REFERENCES recipes (recipe_id) ON DELETE CASCADE,
			command_id		TEXT NULL,
			subrecipe_id	TEXT NULL,
			cycles			INTEGER NOT NULL DEFAULT 1,
			step_order		INTEGER NOT NULL DEFAULT 0,
			updated_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_recipe_steps PRIMARY KEY (step_id)
		);

		CREATE TABLE IF NOT EXISTS controls (
			control_id		TEXT NOT NULL,
			template_id		TEXT NOT NULL REFERENCES device_templates (template_id) ON DELETE CASCADE,
			name			TEXT NOT NULL,
			color			TEXT NOT NULL DEFAULT '',
			control_type	INTEGER NOT NULL DEFAULT 0,
			recipe_id		TEXT NULL,
			recipe_on_id	TEXT NULL,
			recipe_off_id	TEXT NULL,
			sensor_id		TEXT NULL,
			cycles			INTEGER NOT NULL DEFAULT 1,
			is_infinite		BOOLEAN NOT NULL DEFAULT FALSE,
			control_order	INTEGER NOT NULL DEFAULT 0,
			updated_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_controls PRIMARY KEY (control_id)
		);

		CREATE TABLE IF NOT EXISTS firmwares (
			firmware_id		TEXT NOT NULL,
			template_id		TEXT NOT NULL REFERENCES device_templates (template_id) ON DELETE CASCADE,
			version_number	TEXT NOT NULL,
			is_active		BOOLEAN NOT NULL DEFAULT FALSE,
			original_file_name	TEXT NOT NULL,
			stored_file_name	TEXT NOT NULL,
			updated_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_firmwares PRIMARY KEY (firmware_id)
		);

		CREATE TABLE IF NOT EXISTS devices (
			device_id		TEXT NOT NULL,
			owner_id		TEXT NOT NULL,
			template_id		TEXT NULL,
			name			TEXT NOT NULL,
			mac				TEXT NULL,
			access_token	TEXT NOT NULL,
			protocol		INTEGER NOT NULL DEFAULT 0,
			retention_days	INTEGER NULL,
			sample_rate_seconds	DOUBLE PRECISION NULL,
			firmware_version	TEXT NULL,
			synced_from_hub		BOOLEAN NOT NULL DEFAULT FALSE,
			synced_from_edge	BOOLEAN NOT NULL DEFAULT FALSE,
			synced_from_edge_node_id	TEXT NULL,
			created_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			updated_on		timestamp with time zone NOT NULL DEFAULT CURRENT_TIMESTAMP,
			CONSTRAINT pkey_devices PRIMARY KEY (device_id)
		);
	`)
	if err != nil {
		return err
	}

	return nil
}

func (s *Storage) Close() {
	s.pool.Close()
}

// TableSignature is a cheap per table fingerprint used to build the
// catalog hash announced to edges.
type TableSignature struct {
	TableName    string
	Count        int64
	MaxUpdatedAt int64
}

var catalogTables = []string{
	"device_templates",
	"sensors",
	"commands",
	"recipes",
	"recipe_steps",
	"controls",
	"firmwares",
	"devices",
}

func (s *Storage) CatalogSignatures(ctx context.Context) ([]TableSignature, error) {
	signatures := make([]TableSignature, 0, len(catalogTables))

	for _, table := range catalogTables {
		var count int64
		var maxUpdated *int64

		query := fmt.Sprintf(`SELECT count(*), max(extract(epoch from updated_on)::bigint) FROM %s`, table)
		err := s.pool.QueryRow(ctx, query).Scan(&count, &maxUpdated)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrQueryRow, err.Error())
		}

		sig := TableSignature{TableName: table, Count: count}
		if maxUpdated != nil {
			sig.MaxUpdatedAt = *maxUpdated
		}

		signatures = append(signatures, sig)
	}

	return signatures, nil
}
