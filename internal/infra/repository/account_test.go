//go:build unit

package repository

import (
	"context"
	"errors"
	"testing"

	"points-rewards/internal/usecase/shared"
	"points-rewards/tests/common/builder"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const debitSQL = `UPDATE users SET points = points - \$1, updated_at = now\(\) WHERE user_id = \$2 AND points >= \$3 RETURNING points`

func TestAccountRepository_Debit(t *testing.T) {
	t.Run("applied", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectQuery(debitSQL).
			WithArgs(int64(350), int64(42), int64(350)).
			WillReturnRows(mockPool.NewRows([]string{"points"}).AddRow(int64(150)))

		balance, applied, err := NewAccountRepository(mockPool).Debit(context.Background(), 42, 350)

		require.NoError(t, err)
		assert.True(t, applied)
		assert.Equal(t, int64(150), balance)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("balance too low leaves the row untouched", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectQuery(debitSQL).
			WithArgs(int64(350), int64(42), int64(350)).
			WillReturnRows(mockPool.NewRows([]string{"points"}))

		balance, applied, err := NewAccountRepository(mockPool).Debit(context.Background(), 42, 350)

		require.NoError(t, err)
		assert.False(t, applied)
		assert.Zero(t, balance)
		assert.NoError(t, mockPool.ExpectationsWereMet())
	})

	t.Run("driver failure", func(t *testing.T) {
		mockPool, err := pgxmock.NewPool()
		require.NoError(t, err)
		defer mockPool.Close()

		mockPool.ExpectQuery(debitSQL).
			WithArgs(int64(350), int64(42), int64(350)).
			WillReturnError(errors.New("connection reset"))

		_, applied, err := NewAccountRepository(mockPool).Debit(context.Background(), 42, 350)

		require.Error(t, err)
		assert.False(t, applied)
	})
}

func TestAccountRepository_Credit(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectQuery(`UPDATE users SET points = points \+ \$1, updated_at = now\(\) WHERE user_id = \$2 RETURNING points`).
		WithArgs(int64(350), int64(42)).
		WillReturnRows(mockPool.NewRows([]string{"points"}).AddRow(int64(500)))

	balance, err := NewAccountRepository(mockPool).Credit(context.Background(), 42, 350)

	require.NoError(t, err)
	assert.Equal(t, int64(500), balance)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestAccountRepository_CreateDuplicate(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	acc := builder.NewAccountBuilder().BuildStored()
	mockPool.ExpectExec("INSERT INTO users").
		WithArgs(insertArgs(len(accountColumns))...).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err = NewAccountRepository(mockPool).Create(context.Background(), acc)

	require.ErrorIs(t, err, shared.ErrDuplicate)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestAccountRepository_FindByUserID_NotFound(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	mockPool.ExpectQuery(`SELECT (.+) FROM users WHERE user_id = \$1`).
		WithArgs(int64(7)).
		WillReturnRows(mockPool.NewRows(accountColumns))

	_, err = NewAccountRepository(mockPool).FindByUserID(context.Background(), 7)

	require.ErrorIs(t, err, shared.ErrNotFound)
}

func TestAccountRepository_UpdateMissing(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	acc := builder.NewAccountBuilder().BuildStored()
	mockPool.ExpectExec(`UPDATE users SET (.+) WHERE id = \$7`).
		WithArgs(
			acc.Email().Value(),
			acc.FirstName().Value(),
			acc.LastName().Value(),
			acc.Role().String(),
			acc.Status().String(),
			pgxmock.AnyArg(),
			acc.ID().String(),
		).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = NewAccountRepository(mockPool).Update(context.Background(), acc)

	require.ErrorIs(t, err, shared.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}
