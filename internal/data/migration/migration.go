package migration

import (
	"context"
	_ "embed"
	"fmt"
	"strings"

	"laundry-service/pkg/database"

	"go.uber.org/zap"
)

//go:embed schema.sql
var schema string

// Statements splits the embedded schema into individual statements.
func Statements() []string {
	var stmts []string
	for _, part := range strings.Split(schema, ";") {
		if stmt := strings.TrimSpace(part); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}
	return stmts
}

// Apply runs every schema statement. All statements are idempotent.
func Apply(ctx context.Context, db database.Executor, log *zap.Logger) error {
	for i, stmt := range Statements() {
		if err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("apply schema statement %d: %w", i+1, err)
		}
	}
	log.Info("Schema applied", zap.Int("statements", len(Statements())))
	return nil
}
