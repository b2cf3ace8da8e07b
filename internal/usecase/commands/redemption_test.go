//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"points-rewards/internal/domain/redemption"
	"points-rewards/internal/pkg/clock"
	"points-rewards/internal/pkg/errs"
	"points-rewards/internal/usecase/commands"
	"points-rewards/internal/usecase/shared"
	"points-rewards/tests/common/builder"
	commandsmock "points-rewards/tests/mock/commands"
	sharedmock "points-rewards/tests/mock/shared"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var fixedNow = time.Date(2025, 3, 1, 15, 0, 0, 0, time.UTC)

type fixture struct {
	uow         *sharedmock.MockUnitOfWork
	tx          *sharedmock.MockTx
	accounts    *sharedmock.MockAccountRepository
	benefits    *sharedmock.MockBenefitRepository
	redemptions *sharedmock.MockRedemptionRepository
	leaveDays   *commandsmock.MockLeaveDaysProvider
	email       *commandsmock.MockEmailGateway
	audit       *commandsmock.MockAuditGateway
	images      *commandsmock.MockImageStore
	metrics     *commandsmock.MockRedemptionMetrics
	clock       clock.Clock
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		uow:         sharedmock.NewMockUnitOfWork(ctrl),
		tx:          sharedmock.NewMockTx(ctrl),
		accounts:    sharedmock.NewMockAccountRepository(ctrl),
		benefits:    sharedmock.NewMockBenefitRepository(ctrl),
		redemptions: sharedmock.NewMockRedemptionRepository(ctrl),
		leaveDays:   commandsmock.NewMockLeaveDaysProvider(ctrl),
		email:       commandsmock.NewMockEmailGateway(ctrl),
		audit:       commandsmock.NewMockAuditGateway(ctrl),
		images:      commandsmock.NewMockImageStore(ctrl),
		metrics:     commandsmock.NewMockRedemptionMetrics(ctrl),
		clock:       clock.NewMockClock(fixedNow),
	}
	f.uow.EXPECT().Within(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, shared.Tx) error) error {
			return fn(ctx, f.tx)
		}).AnyTimes()
	f.tx.EXPECT().Accounts().Return(f.accounts).AnyTimes()
	f.tx.EXPECT().Benefits().Return(f.benefits).AnyTimes()
	f.tx.EXPECT().Redemptions().Return(f.redemptions).AnyTimes()
	return f
}

func (f *fixture) redemptionUseCase() commands.RedemptionCommands {
	return commands.NewRedemptionUseCase(f.uow, f.leaveDays, f.email, f.audit, f.metrics, f.clock,
		commands.RedemptionConfig{MaxLeaveDays: 30})
}

func requireAppError(t *testing.T, err error, kind errs.Kind) *errs.AppError {
	t.Helper()
	require.Error(t, err)
	appErr, ok := errs.AsApp(err)
	require.True(t, ok, "expected AppError, got %v", err)
	assert.Equal(t, kind, appErr.Kind)
	return appErr
}

func createInput(userID int64, benefitID uuid.UUID, points int64) commands.CreateRedemptionInput {
	return commands.CreateRedemptionInput{
		UserID:     userID,
		BenefitID:  benefitID,
		Points:     points,
		RedeemedAt: fixedNow,
		UseAt:      fixedNow.Add(48 * time.Hour),
	}
}

func TestRedemptionCreate_Success(t *testing.T) {
	f := newFixture(t)
	acc := builder.NewAccountBuilder().WithPoints(500).BuildStored()
	ben := builder.NewBenefitBuilder().WithCost(350).BuildStored()

	f.accounts.EXPECT().FindByUserID(gomock.Any(), acc.UserID()).Return(acc, nil)
	f.benefits.EXPECT().FindByID(gomock.Any(), ben.ID()).Return(ben, nil)
	f.leaveDays.EXPECT().AccumulatedLeaveDays(gomock.Any(), acc.UserID()).Return(15, nil)
	f.accounts.EXPECT().Debit(gomock.Any(), acc.UserID(), int64(350)).Return(int64(150), true, nil)
	f.redemptions.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r *redemption.Redemption) error {
			assert.Equal(t, redemption.StatusActive, r.Status())
			assert.Equal(t, int64(350), r.Points())
			return nil
		})
	f.metrics.EXPECT().RedemptionCreated(ben.ID(), int64(350))
	f.email.EXPECT().SendRedemptionConfirmation(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, msg commands.RedemptionEmail) error {
			assert.Equal(t, acc.Email().Value(), msg.To)
			assert.Equal(t, int64(150), msg.RemainingPoints)
			return nil
		})

	view, err := f.redemptionUseCase().Create(context.Background(), createInput(acc.UserID(), ben.ID(), 350))

	require.NoError(t, err)
	assert.Equal(t, "ACTIVO", view.Status)
	assert.Equal(t, int64(150), view.RemainingPoints)
	assert.Equal(t, ben.Name().Value(), view.BenefitName)
}

func TestRedemptionCreate_EmailFailureDoesNotFail(t *testing.T) {
	f := newFixture(t)
	acc := builder.NewAccountBuilder().BuildStored()
	ben := builder.NewBenefitBuilder().BuildStored()

	f.accounts.EXPECT().FindByUserID(gomock.Any(), gomock.Any()).Return(acc, nil)
	f.benefits.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(ben, nil)
	f.leaveDays.EXPECT().AccumulatedLeaveDays(gomock.Any(), gomock.Any()).Return(15, nil)
	f.accounts.EXPECT().Debit(gomock.Any(), gomock.Any(), gomock.Any()).Return(int64(150), true, nil)
	f.redemptions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
	f.metrics.EXPECT().RedemptionCreated(gomock.Any(), gomock.Any())
	f.email.EXPECT().SendRedemptionConfirmation(gomock.Any(), gomock.Any()).Return(errors.New("smtp down"))

	view, err := f.redemptionUseCase().Create(context.Background(), createInput(acc.UserID(), ben.ID(), 350))

	require.NoError(t, err)
	assert.NotNil(t, view)
}

func TestRedemptionCreate_Validation(t *testing.T) {
	t.Run("account missing is not found", func(t *testing.T) {
		f := newFixture(t)
		f.accounts.EXPECT().FindByUserID(gomock.Any(), int64(7)).Return(nil, shared.ErrNotFound)

		_, err := f.redemptionUseCase().Create(context.Background(), createInput(7, uuid.New(), 10))

		requireAppError(t, err, errs.KindNotFound)
	})

	t.Run("inactive account is rejected before the benefit lookup", func(t *testing.T) {
		f := newFixture(t)
		acc := builder.NewAccountBuilder().AsInactive().BuildStored()
		f.accounts.EXPECT().FindByUserID(gomock.Any(), acc.UserID()).Return(acc, nil)

		_, err := f.redemptionUseCase().Create(context.Background(), createInput(acc.UserID(), uuid.New(), 10))

		appErr := requireAppError(t, err, errs.KindValidation)
		assert.Equal(t, "inactive account cannot redeem", appErr.Message)
	})

	t.Run("benefit missing is not found", func(t *testing.T) {
		f := newFixture(t)
		acc := builder.NewAccountBuilder().BuildStored()
		f.accounts.EXPECT().FindByUserID(gomock.Any(), gomock.Any()).Return(acc, nil)
		f.benefits.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(nil, shared.ErrNotFound)

		_, err := f.redemptionUseCase().Create(context.Background(), createInput(acc.UserID(), uuid.New(), 10))

		requireAppError(t, err, errs.KindNotFound)
	})

	tests := []struct {
		name    string
		account *builder.AccountBuilder
		benefit *builder.BenefitBuilder
		points  int64
		useAt   time.Time
		message string
		details map[string]any
	}{
		{
			name:    "inactive benefit",
			account: builder.NewAccountBuilder(),
			benefit: builder.NewBenefitBuilder().AsInactive(),
			points:  100,
			message: "inactive benefit cannot be redeemed",
		},
		{
			name:    "journey required",
			account: builder.NewAccountBuilder(),
			benefit: builder.NewBenefitBuilder().RequiringJourney(),
			points:  100,
			message: "journey is required for this benefit",
		},
		{
			name:    "insufficient points reports both values",
			account: builder.NewAccountBuilder().WithPoints(150),
			benefit: builder.NewBenefitBuilder().WithCost(350),
			points:  350,
			message: "insufficient points",
			details: map[string]any{"available": int64(150), "required": int64(350)},
		},
		{
			name:    "points above cost reports both values",
			account: builder.NewAccountBuilder().WithPoints(1000),
			benefit: builder.NewBenefitBuilder().WithCost(350),
			points:  400,
			message: "points exceed the benefit cost",
			details: map[string]any{"points": int64(400), "cost": int64(350)},
		},
		{
			name:    "use date equal to redemption date",
			account: builder.NewAccountBuilder(),
			benefit: builder.NewBenefitBuilder(),
			points:  100,
			useAt:   fixedNow,
			message: "use date must be after the redemption date",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			acc := tt.account.BuildStored()
			ben := tt.benefit.BuildStored()
			f.accounts.EXPECT().FindByUserID(gomock.Any(), gomock.Any()).Return(acc, nil)
			f.benefits.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(ben, nil)

			in := createInput(acc.UserID(), ben.ID(), tt.points)
			if !tt.useAt.IsZero() {
				in.UseAt = tt.useAt
			}
			_, err := f.redemptionUseCase().Create(context.Background(), in)

			appErr := requireAppError(t, err, errs.KindValidation)
			assert.Equal(t, tt.message, appErr.Message)
			for k, v := range tt.details {
				assert.Equal(t, v, appErr.Details[k], k)
			}
		})
	}

	t.Run("use date in another zone is compared in UTC", func(t *testing.T) {
		f := newFixture(t)
		acc := builder.NewAccountBuilder().BuildStored()
		ben := builder.NewBenefitBuilder().BuildStored()
		f.accounts.EXPECT().FindByUserID(gomock.Any(), gomock.Any()).Return(acc, nil)
		f.benefits.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(ben, nil)

		santiago := time.FixedZone("CLT", -3*60*60)
		in := createInput(acc.UserID(), ben.ID(), 100)
		// Same instant as RedeemedAt, expressed in a different zone.
		in.UseAt = fixedNow.In(santiago)

		_, err := f.redemptionUseCase().Create(context.Background(), in)

		requireAppError(t, err, errs.KindValidation)
	})
}

func TestRedemptionCreate_LeaveDays(t *testing.T) {
	setup := func(t *testing.T) (*fixture, commands.CreateRedemptionInput) {
		f := newFixture(t)
		acc := builder.NewAccountBuilder().BuildStored()
		ben := builder.NewBenefitBuilder().BuildStored()
		f.accounts.EXPECT().FindByUserID(gomock.Any(), gomock.Any()).Return(acc, nil)
		f.benefits.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(ben, nil)
		return f, createInput(acc.UserID(), ben.ID(), 100)
	}

	t.Run("above threshold is a validation failure", func(t *testing.T) {
		f, in := setup(t)
		f.leaveDays.EXPECT().AccumulatedLeaveDays(gomock.Any(), in.UserID).Return(31, nil)

		_, err := f.redemptionUseCase().Create(context.Background(), in)

		appErr := requireAppError(t, err, errs.KindValidation)
		assert.Equal(t, 31, appErr.Details["accumulated"])
		assert.Equal(t, 30, appErr.Details["max"])
	})

	t.Run("at threshold passes", func(t *testing.T) {
		f, in := setup(t)
		f.leaveDays.EXPECT().AccumulatedLeaveDays(gomock.Any(), in.UserID).Return(30, nil)
		f.accounts.EXPECT().Debit(gomock.Any(), in.UserID, in.Points).Return(int64(400), true, nil)
		f.redemptions.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil)
		f.metrics.EXPECT().RedemptionCreated(gomock.Any(), gomock.Any())
		f.email.EXPECT().SendRedemptionConfirmation(gomock.Any(), gomock.Any()).Return(nil)

		_, err := f.redemptionUseCase().Create(context.Background(), in)

		require.NoError(t, err)
	})

	t.Run("provider failure never passes the gate", func(t *testing.T) {
		f, in := setup(t)
		f.leaveDays.EXPECT().AccumulatedLeaveDays(gomock.Any(), in.UserID).Return(0, errors.New("timeout"))

		_, err := f.redemptionUseCase().Create(context.Background(), in)

		requireAppError(t, err, errs.KindInfrastructure)
	})
}

func TestRedemptionCreate_ConcurrentDebitLost(t *testing.T) {
	f := newFixture(t)
	acc := builder.NewAccountBuilder().WithPoints(500).BuildStored()
	ben := builder.NewBenefitBuilder().WithCost(350).BuildStored()

	f.accounts.EXPECT().FindByUserID(gomock.Any(), gomock.Any()).Return(acc, nil)
	f.benefits.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(ben, nil)
	f.leaveDays.EXPECT().AccumulatedLeaveDays(gomock.Any(), gomock.Any()).Return(15, nil)
	f.accounts.EXPECT().Debit(gomock.Any(), acc.UserID(), int64(350)).Return(int64(0), false, nil)
	f.accounts.EXPECT().Balance(gomock.Any(), acc.UserID()).Return(int64(150), nil)

	_, err := f.redemptionUseCase().Create(context.Background(), createInput(acc.UserID(), ben.ID(), 350))

	appErr := requireAppError(t, err, errs.KindValidation)
	assert.Equal(t, "insufficient points", appErr.Message)
	assert.Equal(t, int64(150), appErr.Details["available"])
}

func TestRedemptionUpdateStatus(t *testing.T) {
	actor := shared.Principal{ID: uuid.New(), Role: "admin"}

	t.Run("cancelling an active redemption refunds the points", func(t *testing.T) {
		f := newFixture(t)
		rd := builder.NewRedemptionBuilder().WithPoints(100).BuildStored()
		ben := builder.NewBenefitBuilder().BuildStored()

		f.redemptions.EXPECT().FindByIDForUpdate(gomock.Any(), rd.ID()).Return(rd, nil)
		f.accounts.EXPECT().Credit(gomock.Any(), rd.UserID(), int64(100)).Return(int64(150), nil)
		f.redemptions.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(nil)
		f.benefits.EXPECT().FindByID(gomock.Any(), rd.BenefitID()).Return(ben, nil)
		f.metrics.EXPECT().StatusChanged("ACTIVO", "CANCELADO")
		f.metrics.EXPECT().PointsRefunded(int64(100))
		f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		view, err := f.redemptionUseCase().UpdateStatus(context.Background(), actor, rd.ID(),
			commands.UpdateRedemptionStatusInput{Status: "cancelled", Notes: "user request"})

		require.NoError(t, err)
		assert.Equal(t, "CANCELADO", view.Status)
		assert.Equal(t, int64(150), view.RemainingPoints)
		assert.Equal(t, "user request", view.Notes)
	})

	t.Run("cancelling twice never credits twice", func(t *testing.T) {
		f := newFixture(t)
		rd := builder.NewRedemptionBuilder().WithStatus("CANCELADO").BuildStored()
		ben := builder.NewBenefitBuilder().BuildStored()

		f.redemptions.EXPECT().FindByIDForUpdate(gomock.Any(), rd.ID()).Return(rd, nil)
		f.accounts.EXPECT().Balance(gomock.Any(), rd.UserID()).Return(int64(150), nil)
		f.redemptions.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(nil)
		f.benefits.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(ben, nil)
		f.metrics.EXPECT().StatusChanged("CANCELADO", "CANCELADO")
		f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(nil)

		view, err := f.redemptionUseCase().UpdateStatus(context.Background(), actor, rd.ID(),
			commands.UpdateRedemptionStatusInput{Status: "CANCELADO"})

		require.NoError(t, err)
		assert.Equal(t, int64(150), view.RemainingPoints)
	})

	t.Run("used to cancelled keeps the balance", func(t *testing.T) {
		f := newFixture(t)
		rd := builder.NewRedemptionBuilder().WithStatus("USADO").BuildStored()
		ben := builder.NewBenefitBuilder().BuildStored()

		f.redemptions.EXPECT().FindByIDForUpdate(gomock.Any(), rd.ID()).Return(rd, nil)
		f.accounts.EXPECT().Balance(gomock.Any(), rd.UserID()).Return(int64(50), nil)
		f.redemptions.EXPECT().UpdateStatus(gomock.Any(), gomock.Any()).Return(nil)
		f.benefits.EXPECT().FindByID(gomock.Any(), gomock.Any()).Return(ben, nil)
		f.metrics.EXPECT().StatusChanged("USADO", "CANCELADO")
		f.audit.EXPECT().Record(gomock.Any(), gomock.Any()).Return(errors.New("audit down"))

		view, err := f.redemptionUseCase().UpdateStatus(context.Background(), actor, rd.ID(),
			commands.UpdateRedemptionStatusInput{Status: "CANCELADO"})

		require.NoError(t, err)
		assert.Equal(t, int64(50), view.RemainingPoints)
	})

	t.Run("invalid status lists the valid values", func(t *testing.T) {
		f := newFixture(t)
		rd := builder.NewRedemptionBuilder().BuildStored()
		f.redemptions.EXPECT().FindByIDForUpdate(gomock.Any(), rd.ID()).Return(rd, nil)

		_, err := f.redemptionUseCase().UpdateStatus(context.Background(), actor, rd.ID(),
			commands.UpdateRedemptionStatusInput{Status: "PENDIENTE"})

		appErr := requireAppError(t, err, errs.KindValidation)
		assert.Equal(t, []string{"ACTIVO", "USADO", "CANCELADO", "VENCIDO"}, appErr.Details["valid_values"])
		assert.Equal(t, redemption.StatusActive, rd.Status())
	})

	t.Run("missing redemption wins over an invalid status", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.redemptions.EXPECT().FindByIDForUpdate(gomock.Any(), id).Return(nil, shared.ErrNotFound)

		_, err := f.redemptionUseCase().UpdateStatus(context.Background(), actor, id,
			commands.UpdateRedemptionStatusInput{Status: "PENDIENTE"})

		requireAppError(t, err, errs.KindNotFound)
	})

	t.Run("missing redemption is not found", func(t *testing.T) {
		f := newFixture(t)
		id := uuid.New()
		f.redemptions.EXPECT().FindByIDForUpdate(gomock.Any(), id).Return(nil, shared.ErrNotFound)

		_, err := f.redemptionUseCase().UpdateStatus(context.Background(), actor, id,
			commands.UpdateRedemptionStatusInput{Status: "USADO"})

		requireAppError(t, err, errs.KindNotFound)
	})
}
