package database

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"laundry-service/pkg/utils"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// InitDB opens a database/sql handle backed by the pgx driver. Idle
// connections are not retained, so every connection acquired by the
// Executor is closed when released.
func InitDB(config utils.DatabaseConfig) (*sql.DB, error) {
	db, err := sql.Open("pgx", config.DSN())
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	db.SetMaxIdleConns(0)
	db.SetConnMaxLifetime(0)

	// Test connection
	pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database failed: %w", err)
	}

	return db, nil
}
