package repository

import (
	"context"
	"errors"

	"points-rewards/internal/domain/account"
	"points-rewards/internal/infra"
	"points-rewards/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type AccountRepository struct {
	db db.DBTX
}

func NewAccountRepository(dbtx db.DBTX) *AccountRepository {
	return &AccountRepository{db: dbtx}
}

func (r *AccountRepository) FindByID(ctx context.Context, id uuid.UUID) (*account.Account, error) {
	return r.findOne(ctx, sq.Eq{"id": id}, "failed to find account by id")
}

func (r *AccountRepository) FindByUserID(ctx context.Context, userID int64) (*account.Account, error) {
	return r.findOne(ctx, sq.Eq{"user_id": userID}, "failed to find account by user_id")
}

func (r *AccountRepository) findOne(ctx context.Context, where sq.Eq, msg string) (*account.Account, error) {
	query, args, err := db.SQL.Select(accountColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build account query", err)
	}
	var row accountRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		return nil, infra.WrapRepoErr(msg, err)
	}
	return row.toDomain()
}

func (r *AccountRepository) Create(ctx context.Context, acc *account.Account) error {
	query, args, err := db.SQL.Insert("users").
		Columns(accountColumns...).
		Values(
			acc.ID(),
			acc.UserID(),
			acc.Email().Value(),
			acc.FirstName().Value(),
			acc.LastName().Value(),
			acc.Points(),
			acc.Role().String(),
			acc.Status().String(),
			acc.LastLogin(),
			acc.CreatedAt(),
			acc.UpdatedAt(),
		).ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build account insert", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to create account", err)
	}
	return nil
}

func (r *AccountRepository) Update(ctx context.Context, acc *account.Account) error {
	query, args, err := db.SQL.Update("users").
		Set("email", acc.Email().Value()).
		Set("first_name", acc.FirstName().Value()).
		Set("last_name", acc.LastName().Value()).
		Set("role", acc.Role().String()).
		Set("status", acc.Status().String()).
		Set("updated_at", acc.UpdatedAt()).
		Where(sq.Eq{"id": acc.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build account update", err)
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update account", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("account to update not found")
	}
	return nil
}

// Debit checks and writes in one statement, so concurrent debits
// can never overdraw the account.
func (r *AccountRepository) Debit(ctx context.Context, userID, amount int64) (int64, bool, error) {
	query, args, err := db.SQL.Update("users").
		Set("points", sq.Expr("points - ?", amount)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID}).
		Where(sq.GtOrEq{"points": amount}).
		Suffix("RETURNING points").
		ToSql()
	if err != nil {
		return 0, false, infra.WrapRepoErr("failed to build debit", err)
	}
	var balance int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&balance); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, false, nil
		}
		return 0, false, infra.WrapRepoErr("failed to debit points", err)
	}
	return balance, true, nil
}

func (r *AccountRepository) Credit(ctx context.Context, userID, amount int64) (int64, error) {
	query, args, err := db.SQL.Update("users").
		Set("points", sq.Expr("points + ?", amount)).
		Set("updated_at", sq.Expr("now()")).
		Where(sq.Eq{"user_id": userID}).
		Suffix("RETURNING points").
		ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build credit", err)
	}
	var balance int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&balance); err != nil {
		return 0, infra.WrapRepoErr("failed to credit points", err)
	}
	return balance, nil
}

func (r *AccountRepository) Balance(ctx context.Context, userID int64) (int64, error) {
	query, args, err := db.SQL.Select("points").From("users").Where(sq.Eq{"user_id": userID}).ToSql()
	if err != nil {
		return 0, infra.WrapRepoErr("failed to build balance query", err)
	}
	var balance int64
	if err := r.db.QueryRow(ctx, query, args...).Scan(&balance); err != nil {
		return 0, infra.WrapRepoErr("failed to read balance", err)
	}
	return balance, nil
}
