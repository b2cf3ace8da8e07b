//go:build unit

package repository

import (
	"context"
	"testing"
	"time"

	"points-rewards/internal/domain/redemption"
	"points-rewards/internal/usecase/shared"
	"points-rewards/tests/common/builder"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedemptionRepository_FindByIDForUpdate(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	id := uuid.New()
	benefitID := uuid.New()
	at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	mockPool.ExpectQuery(`SELECT (.+) FROM redemptions WHERE id = \$1 FOR UPDATE`).
		WithArgs(id.String()).
		WillReturnRows(mockPool.NewRows(redemptionColumns).
			AddRow(id, int64(42), benefitID, int64(350), at, at.Add(24*time.Hour), "ACTIVO", "", "Tarde", at, at))

	r, err := NewRedemptionRepository(mockPool).FindByIDForUpdate(context.Background(), id)

	require.NoError(t, err)
	assert.Equal(t, redemption.StatusActive, r.Status())
	assert.Equal(t, benefitID, r.BenefitID())
	assert.Equal(t, "Tarde", r.Journey().Value())
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestRedemptionRepository_CreateMissingBenefit(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	r := builder.NewRedemptionBuilder().BuildStored()
	mockPool.ExpectExec("INSERT INTO redemptions").
		WithArgs(insertArgs(len(redemptionColumns))...).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "redemptions_benefit_id_fkey"})

	err = NewRedemptionRepository(mockPool).Create(context.Background(), r)

	require.ErrorIs(t, err, shared.ErrReferenceMissing)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestRedemptionRepository_UpdateStatus(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	r := builder.NewRedemptionBuilder().BuildStored()
	now := time.Date(2025, 3, 2, 9, 0, 0, 0, time.UTC)
	_, err = r.Transition(redemption.StatusCanceled, redemption.Notes{}, now)
	require.NoError(t, err)

	mockPool.ExpectExec(`UPDATE redemptions SET status = \$1, notes = \$2, updated_at = \$3 WHERE id = \$4`).
		WithArgs("CANCELADO", "", now, r.ID().String()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	require.NoError(t, NewRedemptionRepository(mockPool).UpdateStatus(context.Background(), r))
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

func TestRedemptionRepository_UpdateStatusMissing(t *testing.T) {
	mockPool, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mockPool.Close()

	r := builder.NewRedemptionBuilder().BuildStored()
	mockPool.ExpectExec("UPDATE redemptions SET").
		WithArgs(pgxmock.AnyArg(), pgxmock.AnyArg(), pgxmock.AnyArg(), r.ID().String()).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = NewRedemptionRepository(mockPool).UpdateStatus(context.Background(), r)

	require.ErrorIs(t, err, shared.ErrNotFound)
	assert.NoError(t, mockPool.ExpectationsWereMet())
}

// insertArgs matches every bound value of an INSERT whose exact values are
// not under test.
func insertArgs(n int) []any {
	args := make([]any, n)
	for i := range args {
		args[i] = pgxmock.AnyArg()
	}
	return args
}
