package readstore

import (
	"context"

	"points-rewards/internal/infra"
	"points-rewards/internal/infra/db"
	"points-rewards/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

// remaining_points is the account's balance at read time.
var redemptionViewColumns = []string{
	"r.id",
	"r.user_id",
	"r.benefit_id",
	"b.name AS benefit_name",
	"r.points",
	"r.redeemed_at",
	"r.use_at",
	"r.status",
	"r.notes",
	"r.journey",
	"u.points AS remaining_points",
	"r.created_at",
	"r.updated_at",
}

type RedemptionReadStore struct {
	db db.DBTX
}

func NewRedemptionReadStore(dbtx db.DBTX) *RedemptionReadStore {
	return &RedemptionReadStore{db: dbtx}
}

func (s *RedemptionReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.RedemptionView, error) {
	query, args, err := s.joined(redemptionViewColumns...).
		Where(sq.Eq{"r.id": id}).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build redemption view query", err)
	}
	var view queries.RedemptionView
	if err := pgxscan.Get(ctx, s.db, &view, query, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to find redemption view", err)
	}
	return &view, nil
}

func (s *RedemptionReadStore) List(ctx context.Context, filter queries.RedemptionFilter, page queries.Pagination) ([]queries.RedemptionView, int64, error) {
	total, err := count(ctx, s.db, applyRedemptionFilter(s.joined("count(*)"), filter), "failed to count redemptions")
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []queries.RedemptionView{}, 0, nil
	}

	query, args, err := applyRedemptionFilter(s.joined(redemptionViewColumns...), filter).
		OrderBy("r.redeemed_at DESC", "r.id").
		Limit(page.Limit()).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build redemption list query", err)
	}
	var items []queries.RedemptionView
	if err := pgxscan.Select(ctx, s.db, &items, query, args...); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list redemptions", err)
	}
	return items, total, nil
}

func (s *RedemptionReadStore) joined(columns ...string) sq.SelectBuilder {
	return db.SQL.Select(columns...).
		From("redemptions r").
		Join("users u ON u.user_id = r.user_id").
		Join("benefits b ON b.id = r.benefit_id")
}

func applyRedemptionFilter(qb sq.SelectBuilder, f queries.RedemptionFilter) sq.SelectBuilder {
	if f.UserID != nil {
		qb = qb.Where(sq.Eq{"r.user_id": *f.UserID})
	}
	if f.BenefitID != nil {
		qb = qb.Where(sq.Eq{"r.benefit_id": *f.BenefitID})
	}
	if f.Status != "" {
		qb = qb.Where(sq.Eq{"r.status": f.Status})
	}
	return qb
}
