package database

import (
	"context"
	"errors"
	"testing"

	"laundry-service/pkg/utils"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newMockExecutor(t *testing.T) (Executor, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewExecutor(db, zap.NewNop()), mock
}

func TestExecutor_FetchAll(t *testing.T) {
	ctx := context.Background()

	t.Run("RowsInOrder", func(t *testing.T) {
		exec, mock := newMockExecutor(t)
		mock.ExpectQuery("SELECT name FROM laundry_items").
			WillReturnRows(sqlmock.NewRows([]string{"name"}).AddRow("Pants").AddRow("Shirt"))

		var names []string
		err := exec.FetchAll(ctx, func(row Scanner) error {
			var name string
			if err := row.Scan(&name); err != nil {
				return err
			}
			names = append(names, name)
			return nil
		}, "SELECT name FROM laundry_items ORDER BY name")

		require.NoError(t, err)
		assert.Equal(t, []string{"Pants", "Shirt"}, names)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("EmptyIsNotAnError", func(t *testing.T) {
		exec, mock := newMockExecutor(t)
		mock.ExpectQuery("SELECT name FROM laundry_items").
			WillReturnRows(sqlmock.NewRows([]string{"name"}))

		calls := 0
		err := exec.FetchAll(ctx, func(row Scanner) error {
			calls++
			return nil
		}, "SELECT name FROM laundry_items")

		require.NoError(t, err)
		assert.Zero(t, calls)
	})

	t.Run("QueryError", func(t *testing.T) {
		exec, mock := newMockExecutor(t)
		mock.ExpectQuery("SELECT name FROM laundry_items").
			WillReturnError(errors.New("relation does not exist"))

		err := exec.FetchAll(ctx, func(row Scanner) error { return nil }, "SELECT name FROM laundry_items")

		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrStorage)
	})
}

func TestExecutor_FetchOne(t *testing.T) {
	ctx := context.Background()

	t.Run("Found", func(t *testing.T) {
		exec, mock := newMockExecutor(t)
		mock.ExpectQuery(`SELECT user_id FROM users WHERE email = \$1`).
			WithArgs("a@x.io").
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(int64(7)))

		var id int64
		err := exec.FetchOne(ctx, []any{&id}, "SELECT user_id FROM users WHERE email = $1", "a@x.io")

		require.NoError(t, err)
		assert.Equal(t, int64(7), id)
	})

	t.Run("NoRowIsDistinctFromFailure", func(t *testing.T) {
		exec, mock := newMockExecutor(t)
		mock.ExpectQuery(`SELECT user_id FROM users`).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

		var id int64
		err := exec.FetchOne(ctx, []any{&id}, "SELECT user_id FROM users WHERE email = $1", "none@x.io")

		assert.ErrorIs(t, err, ErrNoRow)
		assert.NotErrorIs(t, err, utils.ErrStorage)
	})
}

func TestExecutor_Commit(t *testing.T) {
	ctx := context.Background()

	t.Run("ReturnsInsertedID", func(t *testing.T) {
		exec, mock := newMockExecutor(t)
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO orders").
			WillReturnRows(sqlmock.NewRows([]string{"order_id"}).AddRow(int64(42)))
		mock.ExpectCommit()

		res, err := exec.Commit(ctx, "INSERT INTO orders (user_id) VALUES ($1) RETURNING order_id", int64(1))

		require.NoError(t, err)
		assert.Equal(t, int64(42), res.InsertedID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("ReturnsRowsAffected", func(t *testing.T) {
		exec, mock := newMockExecutor(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE orders").
			WillReturnResult(sqlmock.NewResult(0, 1))
		mock.ExpectCommit()

		res, err := exec.Commit(ctx, "UPDATE orders SET order_status = $1 WHERE order_id = $2", "Ready", int64(3))

		require.NoError(t, err)
		assert.Equal(t, int64(1), res.RowsAffected)
		assert.Zero(t, res.InsertedID)
	})

	t.Run("ZeroAffectedIsSuccess", func(t *testing.T) {
		exec, mock := newMockExecutor(t)
		mock.ExpectBegin()
		mock.ExpectExec("UPDATE orders").
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectCommit()

		res, err := exec.Commit(ctx, "UPDATE orders SET order_status = $1 WHERE order_id = $2", "Ready", int64(999))

		require.NoError(t, err)
		assert.Zero(t, res.RowsAffected)
	})

	t.Run("RollsBackOnFailure", func(t *testing.T) {
		exec, mock := newMockExecutor(t)
		mock.ExpectBegin()
		mock.ExpectQuery("INSERT INTO order_items").
			WillReturnError(errors.New("foreign key violation"))
		mock.ExpectRollback()

		_, err := exec.Commit(ctx, "INSERT INTO order_items (order_id) VALUES ($1) RETURNING order_item_id", int64(1))

		require.Error(t, err)
		assert.ErrorIs(t, err, utils.ErrStorage)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestExecutor_Exec(t *testing.T) {
	exec, mock := newMockExecutor(t)
	mock.ExpectExec("CREATE TABLE IF NOT EXISTS users").
		WillReturnError(errors.New("permission denied"))

	err := exec.Exec(context.Background(), "CREATE TABLE IF NOT EXISTS users (user_id BIGSERIAL)")

	require.Error(t, err)
	assert.ErrorIs(t, err, utils.ErrStorage)
}
