package readstore

import (
	"context"

	"points-rewards/internal/domain/benefit"
	"points-rewards/internal/infra"
	"points-rewards/internal/infra/db"
	"points-rewards/internal/usecase/queries"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/google/uuid"
)

var benefitViewColumns = []string{
	"id", "name", "detail", "cost", "image_url", "requires_journey",
	"status", "created_at", "updated_at",
}

type BenefitReadStore struct {
	db db.DBTX
}

func NewBenefitReadStore(dbtx db.DBTX) *BenefitReadStore {
	return &BenefitReadStore{db: dbtx}
}

func (s *BenefitReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.BenefitView, error) {
	query, args, err := db.SQL.Select(benefitViewColumns...).From("benefits").Where(sq.Eq{"id": id}).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build benefit view query", err)
	}
	var view queries.BenefitView
	if err := pgxscan.Get(ctx, s.db, &view, query, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to find benefit view", err)
	}
	return &view, nil
}

func (s *BenefitReadStore) List(ctx context.Context, filter queries.BenefitFilter, page queries.Pagination) ([]queries.BenefitView, int64, error) {
	total, err := count(ctx, s.db, applyBenefitFilter(db.SQL.Select("count(*)").From("benefits"), filter), "failed to count benefits")
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []queries.BenefitView{}, 0, nil
	}

	query, args, err := applyBenefitFilter(db.SQL.Select(benefitViewColumns...).From("benefits"), filter).
		OrderBy("name").
		Limit(page.Limit()).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build benefit list query", err)
	}
	var items []queries.BenefitView
	if err := pgxscan.Select(ctx, s.db, &items, query, args...); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list benefits", err)
	}
	return items, total, nil
}

func (s *BenefitReadStore) Search(ctx context.Context, term string, limit uint64) ([]queries.BenefitView, error) {
	pattern := contains(term)
	query, args, err := db.SQL.Select(benefitViewColumns...).
		From("benefits").
		Where(sq.Or{
			sq.ILike{"name": pattern},
			sq.ILike{"detail": pattern},
		}).
		OrderBy("name").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build benefit search query", err)
	}
	var items []queries.BenefitView
	if err := pgxscan.Select(ctx, s.db, &items, query, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to search benefits", err)
	}
	return items, nil
}

func (s *BenefitReadStore) Summary(ctx context.Context) (*queries.BenefitSummary, error) {
	query, args, err := db.SQL.Select(
		"count(*) AS total",
		"count(*) FILTER (WHERE status = '"+string(benefit.StatusActive)+"') AS active",
		"COALESCE(sum(cost), 0) AS total_cost",
	).From("benefits").ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build benefit summary query", err)
	}
	var summary queries.BenefitSummary
	if err := pgxscan.Get(ctx, s.db, &summary, query, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to summarize benefits", err)
	}
	return &summary, nil
}

func applyBenefitFilter(qb sq.SelectBuilder, f queries.BenefitFilter) sq.SelectBuilder {
	if f.Name != "" {
		qb = qb.Where(sq.ILike{"name": contains(f.Name)})
	}
	if f.ActiveOnly {
		qb = qb.Where(sq.Eq{"status": string(benefit.StatusActive)})
	}
	return qb
}
