package config

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteProvider implements Provider for SQLite database configuration
type SQLiteProvider struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteProvider creates a new SQLite configuration provider
func NewSQLiteProvider(dbPath string) (*SQLiteProvider, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	return &SQLiteProvider{
		db:     db,
		dbPath: dbPath,
	}, nil
}

// LoadConfig loads the complete configuration from the single-row config
// table.
func (s *SQLiteProvider) LoadConfig() (*Config, error) {
	query := `
		SELECT listen_addr, port, tls_cert_path, tls_key_path,
		       catalog_source, catalog_path,
		       pressure, sat_search_min, sat_search_max, specific_heat,
		       generator_seed
		FROM config
		WHERE name = 'default'
	`

	var cfg Config
	var listenAddr, tlsCert, tlsKey, catalogSource, catalogPath sql.NullString
	var port, seed sql.NullInt64
	var pressure, satMin, satMax, specificHeat sql.NullFloat64

	err := s.db.QueryRow(query).Scan(
		&listenAddr, &port, &tlsCert, &tlsKey,
		&catalogSource, &catalogPath,
		&pressure, &satMin, &satMax, &specificHeat,
		&seed,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to load config row: %w", err)
	}

	if listenAddr.Valid {
		cfg.HTTP.ListenAddr = listenAddr.String
	}
	if port.Valid {
		cfg.HTTP.Port = int(port.Int64)
	}
	if tlsCert.Valid {
		cfg.HTTP.TLSCertPath = tlsCert.String
	}
	if tlsKey.Valid {
		cfg.HTTP.TLSKeyPath = tlsKey.String
	}
	if catalogSource.Valid {
		cfg.Catalog.Source = catalogSource.String
	}
	if catalogPath.Valid {
		cfg.Catalog.Path = catalogPath.String
	}
	if pressure.Valid {
		cfg.Psychrometrics.Pressure = pressure.Float64
	}
	if satMin.Valid {
		cfg.Psychrometrics.SatSearchMin = satMin.Float64
	}
	if satMax.Valid {
		cfg.Psychrometrics.SatSearchMax = satMax.Float64
	}
	if specificHeat.Valid {
		cfg.Psychrometrics.SpecificHeat = specificHeat.Float64
	}
	if seed.Valid {
		cfg.Generator.Seed = seed.Int64
	}

	return &cfg, nil
}

// IsReadOnly reports whether the backend is read-only; the SQLite backend
// is writable in principle but this provider only reads.
func (s *SQLiteProvider) IsReadOnly() bool {
	return false
}

// Close closes the database handle.
func (s *SQLiteProvider) Close() error {
	return s.db.Close()
}
