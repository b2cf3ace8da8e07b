package shared

import (
	"context"

	"points-rewards/internal/domain/account"
	"points-rewards/internal/domain/benefit"
	"points-rewards/internal/domain/redemption"

	"github.com/google/uuid"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic.
	// fn may run more than once; keep side effects outside of it.
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

// Tx exposes repositories bound to a single database transaction.
type Tx interface {
	Accounts() AccountRepository
	Benefits() BenefitRepository
	Redemptions() RedemptionRepository
}

type AccountRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error)
	FindByUserID(ctx context.Context, userID int64) (*account.Account, error)
	Create(ctx context.Context, acc *account.Account) error
	// Update persists profile, role and status. The balance is only changed
	// through Debit and Credit.
	Update(ctx context.Context, acc *account.Account) error
	// Debit subtracts amount only when the balance covers it. applied is
	// false when it did not, and nothing was written.
	Debit(ctx context.Context, userID, amount int64) (balance int64, applied bool, err error)
	Credit(ctx context.Context, userID, amount int64) (balance int64, err error)
	Balance(ctx context.Context, userID int64) (int64, error)
}

type BenefitRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*benefit.Benefit, error)
	Create(ctx context.Context, b *benefit.Benefit) error
	Update(ctx context.Context, b *benefit.Benefit) error
}

type RedemptionRepository interface {
	Create(ctx context.Context, r *redemption.Redemption) error
	// FindByIDForUpdate locks the row until the transaction ends.
	FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*redemption.Redemption, error)
	UpdateStatus(ctx context.Context, r *redemption.Redemption) error
}
