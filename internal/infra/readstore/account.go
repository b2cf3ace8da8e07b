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

var accountViewColumns = []string{
	"id", "user_id", "email", "first_name", "last_name", "points",
	"role", "status", "last_login", "created_at", "updated_at",
}

type AccountReadStore struct {
	db db.DBTX
}

func NewAccountReadStore(dbtx db.DBTX) *AccountReadStore {
	return &AccountReadStore{db: dbtx}
}

func (s *AccountReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.AccountView, error) {
	return s.findOne(ctx, sq.Eq{"id": id})
}

func (s *AccountReadStore) FindByUserID(ctx context.Context, userID int64) (*queries.AccountView, error) {
	return s.findOne(ctx, sq.Eq{"user_id": userID})
}

func (s *AccountReadStore) findOne(ctx context.Context, where sq.Eq) (*queries.AccountView, error) {
	query, args, err := db.SQL.Select(accountViewColumns...).From("users").Where(where).ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build account view query", err)
	}
	var view queries.AccountView
	if err := pgxscan.Get(ctx, s.db, &view, query, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to find account view", err)
	}
	return &view, nil
}

func (s *AccountReadStore) List(ctx context.Context, filter queries.AccountFilter, page queries.Pagination) ([]queries.AccountView, int64, error) {
	total, err := count(ctx, s.db, applyAccountFilter(db.SQL.Select("count(*)").From("users"), filter), "failed to count accounts")
	if err != nil {
		return nil, 0, err
	}
	if total == 0 {
		return []queries.AccountView{}, 0, nil
	}

	query, args, err := applyAccountFilter(db.SQL.Select(accountViewColumns...).From("users"), filter).
		OrderBy("created_at DESC", "id").
		Limit(page.Limit()).
		Offset(page.Offset()).
		ToSql()
	if err != nil {
		return nil, 0, infra.WrapRepoErr("failed to build account list query", err)
	}
	var items []queries.AccountView
	if err := pgxscan.Select(ctx, s.db, &items, query, args...); err != nil {
		return nil, 0, infra.WrapRepoErr("failed to list accounts", err)
	}
	return items, total, nil
}

func (s *AccountReadStore) Search(ctx context.Context, term string, limit uint64) ([]queries.AccountView, error) {
	pattern := contains(term)
	query, args, err := db.SQL.Select(accountViewColumns...).
		From("users").
		Where(sq.Or{
			sq.ILike{"email": pattern},
			sq.ILike{"first_name": pattern},
			sq.ILike{"last_name": pattern},
		}).
		OrderBy("last_name", "first_name").
		Limit(limit).
		ToSql()
	if err != nil {
		return nil, infra.WrapRepoErr("failed to build account search query", err)
	}
	var items []queries.AccountView
	if err := pgxscan.Select(ctx, s.db, &items, query, args...); err != nil {
		return nil, infra.WrapRepoErr("failed to search accounts", err)
	}
	return items, nil
}

func applyAccountFilter(qb sq.SelectBuilder, f queries.AccountFilter) sq.SelectBuilder {
	if f.Email != "" {
		qb = qb.Where(sq.ILike{"email": contains(f.Email)})
	}
	if f.Status != "" {
		qb = qb.Where(sq.Eq{"status": f.Status})
	}
	return qb
}
