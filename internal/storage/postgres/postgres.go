package postgres

import (
	"database/sql"
	"fmt"

	"eventra/internal/config"

	_ "github.com/lib/pq"
)

type Storage struct {
	DB *sql.DB
}

func InitDB(dbCfg *config.Database) (*Storage, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		dbCfg.Host,
		dbCfg.Port,
		dbCfg.User,
		dbCfg.Password,
		dbCfg.DBName,
		dbCfg.SSLMode,
	)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	if err = db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to the database: %w", err)
	}

	s := &Storage{DB: db}

	if err = s.bootstrap(); err != nil {
		return nil, fmt.Errorf("failed to bootstrap schema: %w", err)
	}

	return s, nil
}

func (s *Storage) bootstrap() error {
	schema := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id SERIAL PRIMARY KEY,
			username VARCHAR(150) UNIQUE NOT NULL,
			email VARCHAR(255) UNIQUE NOT NULL,
			first_name VARCHAR(100) NOT NULL,
			last_name VARCHAR(100) NOT NULL,
			phone_number VARCHAR(20),
			password_hash VARCHAR(255) NOT NULL,
			token_version INTEGER NOT NULL DEFAULT 0
		)`,
		`CREATE TABLE IF NOT EXISTS events (
			id SERIAL PRIMARY KEY,
			name VARCHAR(200) NOT NULL,
			description TEXT,
			start_time TIMESTAMPTZ NOT NULL,
			end_time TIMESTAMPTZ NOT NULL,
			location VARCHAR(255) NOT NULL,
			max_attendees INTEGER NOT NULL,
			status VARCHAR(20) NOT NULL DEFAULT 'scheduled',
			CONSTRAINT events_end_after_start CHECK (end_time > start_time),
			CONSTRAINT events_details_unique UNIQUE (name, location, start_time, end_time)
		)`,
		`CREATE TABLE IF NOT EXISTS attendees (
			id SERIAL PRIMARY KEY,
			user_id INTEGER NOT NULL REFERENCES users (id) ON DELETE CASCADE,
			event_id INTEGER NOT NULL REFERENCES events (id) ON DELETE CASCADE,
			check_in_status BOOLEAN NOT NULL DEFAULT false,
			CONSTRAINT attendees_user_event_unique UNIQUE (user_id, event_id)
		)`,
		`CREATE INDEX IF NOT EXISTS idx_events_end_time ON events (end_time)`,
		`CREATE INDEX IF NOT EXISTS idx_attendees_event ON attendees (event_id)`,
	}

	for _, stmt := range schema {
		if _, err := s.DB.Exec(stmt); err != nil {
			return fmt.Errorf("failed to apply schema statement: %w", err)
		}
	}

	return nil
}

func (s *Storage) Close() error {
	return s.DB.Close()
}
