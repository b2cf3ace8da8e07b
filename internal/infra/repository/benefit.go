package repository

import (
	"context"

	"points-rewards/internal/domain/benefit"
	"points-rewards/internal/infra"
	"points-rewards/internal/infra/db"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

type BenefitRepository struct {
	db db.DBTX
}

func NewBenefitRepository(dbtx db.DBTX) *BenefitRepository {
	return &BenefitRepository{db: dbtx}
}

func (r *BenefitRepository) FindByID(ctx context.Context, id uuid.UUID) (*benefit.Benefit, error) {
	query, args, err := db.SQL.Select(benefitColumns...).From("benefits").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build benefit query", err)
	}
	var row benefitRow
	if err := pgxscan.Get(ctx, r.db, &row, query, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to find benefit by id", err)
	}
	return row.toDomain()
}

// Create relies on the lower(name) unique index for name conflicts.
func (r *BenefitRepository) Create(ctx context.Context, b *benefit.Benefit) error {
	query, args, err := db.SQL.Insert("benefits").
		Columns(benefitColumns...).
		Values(
			b.ID(),
			b.Name().Value(),
			b.Detail(),
			b.Cost().Value(),
			b.Image().Value(),
			b.RequiresJourney(),
			string(b.Status()),
			b.CreatedAt(),
			b.UpdatedAt(),
		).ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build benefit insert", err)
	}
	if _, err := r.db.Exec(ctx, query, args...); err != nil {
		return infra.WrapRepoErr("failed to create benefit", err)
	}
	return nil
}

func (r *BenefitRepository) Update(ctx context.Context, b *benefit.Benefit) error {
	query, args, err := db.SQL.Update("benefits").
		Set("name", b.Name().Value()).
		Set("detail", b.Detail()).
		Set("cost", b.Cost().Value()).
		Set("image_url", b.Image().Value()).
		Set("requires_journey", b.RequiresJourney()).
		Set("status", string(b.Status())).
		Set("updated_at", b.UpdatedAt()).
		Where(sq.Eq{"id": b.ID()}).
		ToSql()
	if err != nil {
		return infra.WrapRepoErr("failed to build benefit update", err)
	}
	tag, err := r.db.Exec(ctx, query, args...)
	if err != nil {
		return infra.WrapRepoErr("failed to update benefit", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.NotFoundErr("benefit to update not found")
	}
	return nil
}
