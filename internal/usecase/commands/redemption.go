package commands

import (
	"context"
	"errors"
	"time"

	"points-rewards/internal/domain/account"
	"points-rewards/internal/domain/benefit"
	"points-rewards/internal/domain/redemption"
	"points-rewards/internal/pkg/clock"
	"points-rewards/internal/pkg/errs"
	"points-rewards/internal/usecase/queries"
	"points-rewards/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRedemptionInput struct {
	UserID     int64
	BenefitID  uuid.UUID
	Points     int64
	RedeemedAt time.Time
	UseAt      time.Time
	Notes      string
	Journey    string
}

type UpdateRedemptionStatusInput struct {
	Status string
	Notes  string
}

type RedemptionCommands interface {
	Create(ctx context.Context, in CreateRedemptionInput) (*queries.RedemptionView, error)
	UpdateStatus(ctx context.Context, actor shared.Principal, id uuid.UUID, in UpdateRedemptionStatusInput) (*queries.RedemptionView, error)
}

type RedemptionConfig struct {
	MaxLeaveDays int
}

type redemptionUseCaseImpl struct {
	uow       shared.UnitOfWork
	leaveDays LeaveDaysProvider
	metrics   RedemptionMetrics
	effects   sideEffects
	clock     clock.Clock
	cfg       RedemptionConfig
}

func NewRedemptionUseCase(
	uow shared.UnitOfWork,
	leaveDays LeaveDaysProvider,
	email EmailGateway,
	audit AuditGateway,
	metrics RedemptionMetrics,
	clk clock.Clock,
	cfg RedemptionConfig,
) RedemptionCommands {
	if cfg.MaxLeaveDays <= 0 {
		cfg.MaxLeaveDays = redemption.DefaultMaxLeaveDays
	}
	return &redemptionUseCaseImpl{
		uow:       uow,
		leaveDays: leaveDays,
		metrics:   metrics,
		effects:   sideEffects{email: email, audit: audit},
		clock:     clk,
		cfg:       cfg,
	}
}

func (uc *redemptionUseCaseImpl) Create(ctx context.Context, in CreateRedemptionInput) (*queries.RedemptionView, error) {
	notes, err := redemption.NewNotes(in.Notes)
	if err != nil {
		return nil, errs.Validation(err, "notes too long", nil)
	}
	journey, err := redemption.NewJourney(in.Journey)
	if err != nil {
		return nil, errs.Validation(err, "invalid journey", nil)
	}

	var (
		view *queries.RedemptionView
		acc  *account.Account
	)
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		acc, derr = tx.Accounts().FindByUserID(ctx, in.UserID)
		if derr != nil {
			return lookupError(derr, "account", in.UserID)
		}
		if !acc.IsActive() {
			return errs.Validation(redemption.ErrAccountInactive, "inactive account cannot redeem",
				map[string]any{"user_id": in.UserID})
		}

		ben, derr := tx.Benefits().FindByID(ctx, in.BenefitID)
		if derr != nil {
			return lookupError(derr, "benefit", in.BenefitID)
		}

		rd, derr := redemption.NewRedemption(
			accountSpec(acc), benefitSpec(ben),
			in.Points, in.RedeemedAt, in.UseAt, journey, notes, uc.clock.Now(),
		)
		if derr != nil {
			return ruleError(derr, in, acc, ben)
		}

		if derr = uc.checkLeaveDays(ctx, in.UserID); derr != nil {
			return derr
		}

		balance, applied, derr := tx.Accounts().Debit(ctx, acc.UserID(), rd.Points())
		if derr != nil {
			return errs.Infrastructure(derr, "failed to debit points")
		}
		if !applied {
			// Balance moved under us since the read above.
			available, berr := tx.Accounts().Balance(ctx, acc.UserID())
			if berr != nil {
				return errs.Infrastructure(berr, "failed to read balance")
			}
			return insufficientPoints(available, rd.Points())
		}

		if derr = tx.Redemptions().Create(ctx, rd); derr != nil {
			if errors.Is(derr, shared.ErrReferenceMissing) {
				return errs.Validation(derr, "account or benefit no longer exists", nil)
			}
			return errs.Infrastructure(derr, "failed to create redemption")
		}

		view = redemptionView(rd, ben.Name().Value(), balance)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.RedemptionCreated(view.BenefitID, view.Points)
	}
	if uc.effects.email != nil {
		uc.effects.send(ctx, "redemption confirmation email", func(ctx context.Context) error {
			return uc.effects.email.SendRedemptionConfirmation(ctx, RedemptionEmail{
				To:              acc.Email().Value(),
				FullName:        acc.FullName(),
				BenefitName:     view.BenefitName,
				Points:          view.Points,
				UseAt:           view.UseAt,
				RemainingPoints: view.RemainingPoints,
			})
		})
	}
	return view, nil
}

// UpdateStatus resolves the redemption before judging the requested status,
// so an unknown id reports not found whatever the payload.
func (uc *redemptionUseCaseImpl) UpdateStatus(ctx context.Context, actor shared.Principal, id uuid.UUID, in UpdateRedemptionStatusInput) (*queries.RedemptionView, error) {
	var (
		view     *queries.RedemptionView
		from, to redemption.Status
		refund   int64
	)
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rd, derr := tx.Redemptions().FindByIDForUpdate(ctx, id)
		if derr != nil {
			return lookupError(derr, "redemption", id)
		}

		to, derr = redemption.ParseStatus(in.Status)
		if derr != nil {
			return invalidStatus(derr)
		}
		notes, derr := redemption.NewNotes(in.Notes)
		if derr != nil {
			return errs.Validation(derr, "notes too long", nil)
		}

		from = rd.Status()
		refund, derr = rd.Transition(to, notes, uc.clock.Now())
		if derr != nil {
			return invalidStatus(derr)
		}

		var balance int64
		if refund > 0 {
			balance, derr = tx.Accounts().Credit(ctx, rd.UserID(), refund)
		} else {
			balance, derr = tx.Accounts().Balance(ctx, rd.UserID())
		}
		if derr != nil {
			return errs.Infrastructure(derr, "failed to update balance")
		}

		if derr = tx.Redemptions().UpdateStatus(ctx, rd); derr != nil {
			return errs.Infrastructure(derr, "failed to update redemption")
		}

		ben, derr := tx.Benefits().FindByID(ctx, rd.BenefitID())
		if derr != nil {
			return errs.Infrastructure(derr, "failed to load benefit")
		}
		view = redemptionView(rd, ben.Name().Value(), balance)
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.metrics != nil {
		uc.metrics.StatusChanged(from.String(), to.String())
		if refund > 0 {
			uc.metrics.PointsRefunded(refund)
		}
	}
	uc.effects.record(ctx, actor, "redemption.status_changed", "redemption", id.String(), map[string]any{
		"from":     from.String(),
		"to":       to.String(),
		"refunded": refund,
	}, uc.clock.Now())
	return view, nil
}

func (uc *redemptionUseCaseImpl) checkLeaveDays(ctx context.Context, userID int64) error {
	days, err := uc.leaveDays.AccumulatedLeaveDays(ctx, userID)
	if err != nil {
		return errs.Infrastructure(err, "failed to check accumulated leave days")
	}
	if err := redemption.CheckLeaveDays(days, uc.cfg.MaxLeaveDays); err != nil {
		return errs.Validation(err, "accumulated leave days exceed the allowed maximum", map[string]any{
			"accumulated": days,
			"max":         uc.cfg.MaxLeaveDays,
		})
	}
	return nil
}

func accountSpec(a *account.Account) redemption.AccountSpec {
	return redemption.AccountSpec{UserID: a.UserID(), Active: a.IsActive(), Points: a.Points()}
}

func benefitSpec(b *benefit.Benefit) redemption.BenefitSpec {
	return redemption.BenefitSpec{
		ID:              b.ID(),
		Active:          b.IsActive(),
		Cost:            b.Cost().Value(),
		RequiresJourney: b.RequiresJourney(),
	}
}

func ruleError(err error, in CreateRedemptionInput, acc *account.Account, ben *benefit.Benefit) error {
	switch {
	case errors.Is(err, redemption.ErrInvalidPoints):
		return errs.Validation(err, "points must be greater than zero", map[string]any{"points": in.Points})
	case errors.Is(err, redemption.ErrAccountInactive):
		return errs.Validation(err, "inactive account cannot redeem", map[string]any{"user_id": in.UserID})
	case errors.Is(err, redemption.ErrBenefitInactive):
		return errs.Validation(err, "inactive benefit cannot be redeemed", map[string]any{"beneficio_id": ben.ID()})
	case errors.Is(err, redemption.ErrJourneyRequired):
		return errs.Validation(err, "journey is required for this benefit", map[string]any{"beneficio_id": ben.ID()})
	case errors.Is(err, redemption.ErrInsufficientPoints):
		return insufficientPoints(acc.Points(), in.Points)
	case errors.Is(err, redemption.ErrPointsExceedCost):
		return errs.Validation(err, "points exceed the benefit cost", map[string]any{
			"points": in.Points,
			"cost":   ben.Cost().Value(),
		})
	case errors.Is(err, redemption.ErrUseDateNotAfterStart):
		return errs.Validation(err, "use date must be after the redemption date", map[string]any{
			"fecha_canje": redemption.NormalizeTime(in.RedeemedAt),
			"fecha_uso":   redemption.NormalizeTime(in.UseAt),
		})
	default:
		return errs.Validation(err, "invalid redemption", nil)
	}
}

func insufficientPoints(available, required int64) error {
	return errs.Validation(redemption.ErrInsufficientPoints, "insufficient points", map[string]any{
		"available": available,
		"required":  required,
	})
}

func invalidStatus(err error) error {
	valid := make([]string, 0, 4)
	for _, s := range redemption.ValidStatuses() {
		valid = append(valid, s.String())
	}
	return errs.Validation(err, "invalid redemption status", map[string]any{"valid_values": valid})
}

// lookupError turns a repository miss into NotFound and anything else
// into an infrastructure failure.
func lookupError(err error, resource string, id any) error {
	if errors.Is(err, shared.ErrNotFound) {
		return errs.NotFound(err, resource, id)
	}
	return errs.Infrastructure(err, "failed to load "+resource)
}
