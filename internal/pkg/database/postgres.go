package database

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

// PostgresConfig holds the connection parameters for the booking store.
type PostgresConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string

	// RequireTLS switches the DSN to sslmode=require. Production managed
	// databases reject plain connections; local ones have no certificates.
	RequireTLS bool
}

// NewPostgres opens a PostgreSQL connection pool. The startup ping is a
// liveness check only: if the store is briefly unreachable the server still
// starts and serves errors instead of crash-looping.
func NewPostgres(cfg PostgresConfig) (*sqlx.DB, error) {
	sslmode := "disable"
	if cfg.RequireTLS {
		sslmode = "require"
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, sslmode)

	db, err := sqlx.Open("postgres", dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		log.Warn().Err(err).Msg("PostgreSQL not reachable at startup, continuing anyway")
		return db, nil
	}

	log.Info().Msg("Connected to PostgreSQL")
	return db, nil
}

// ClosePostgres closes the database connection pool.
func ClosePostgres(db *sqlx.DB) {
	if db != nil {
		if err := db.Close(); err != nil {
			log.Error().Err(err).Msg("Error closing PostgreSQL connection")
		} else {
			log.Info().Msg("PostgreSQL connection closed")
		}
	}
}
