package repository

import (
	"context"

	"points-rewards/internal/domain/redemption"
	"points-rewards/internal/infra"
	"points-rewards/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

type RedemptionRepository struct {
	db db.DBTX
}

func NewRedemptionRepository(dbtx db.DBTX) *RedemptionRepository {
	return &RedemptionRepository{db: dbtx}
}

func (r *RedemptionRepository) Create(ctx context.Context, rd *redemption.Redemption) error {
	query, args, err := db.SQL.Insert("redemptions").
		Columns(redemptionColumns...).
		Values(
			rd.ID(),
			rd.UserID(),
			rd.BenefitID(),
			rd.Points(),
			rd.RedeemedAt(),
			rd.UseAt(),
			rd.Status().String(),
			rd.Notes().Value(),
			rd.Journey().Value(),
			rd.CreatedAt(),
			rd.UpdatedAt(),
		).ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build redemption insert", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to create redemption", err)
	}
	return nil
}

func (r *RedemptionRepository) FindByIDForUpdate(ctx context.Context, id uuid.UUID) (*redemption.Redemption, error) {
	query, args, err := db.SQL.Select(redemptionColumns...).
		From("redemptions").
		Where(sq.Eq{"id": id}).
		Suffix("FOR UPDATE").
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build redemption query", err)
	}
	var row redemptionRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to lock redemption", err)
	}
	return row.toDomain()
}

func (r *RedemptionRepository) UpdateStatus(ctx context.Context, rd *redemption.Redemption) error {
	query, args, err := db.SQL.Update("redemptions").
		Set("status", rd.Status().String()).
		Set("notes", rd.Notes().Value()).
		Set("updated_at", rd.UpdatedAt()).
		Where(sq.Eq{"id": rd.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build redemption update", err)
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update redemption status", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("redemption to update not found")
	}
	return nil
}
