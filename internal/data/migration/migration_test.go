package migration

import (
	"context"
	"errors"
	"strings"
	"testing"

	"laundry-service/pkg/database"
	"laundry-service/pkg/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestStatements(t *testing.T) {
	stmts := Statements()

	require.NotEmpty(t, stmts)
	joined := strings.Join(stmts, "\n")
	for _, table := range []string{"users", "laundry_items", "orders", "order_items"} {
		assert.Contains(t, joined, "CREATE TABLE IF NOT EXISTS "+table)
	}
}

func TestApply(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	for range Statements() {
		mock.ExpectExec(".+").WillReturnResult(sqlmock.NewResult(0, 0))
	}

	exec := database.NewExecutor(db, zap.NewNop())
	require.NoError(t, Apply(context.Background(), exec, zap.NewNop()))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestApply_StopsOnFailure(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").WillReturnError(errors.New("permission denied"))

	exec := database.NewExecutor(db, zap.NewNop())
	err = Apply(context.Background(), exec, zap.NewNop())

	assert.ErrorIs(t, err, utils.ErrStorage)
}
