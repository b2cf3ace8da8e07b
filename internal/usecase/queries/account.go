package queries

import (
	"context"
	"errors"
	"strings"

	"points-rewards/internal/domain/account"
	"points-rewards/internal/pkg/errs"
	"points-rewards/internal/usecase/shared"

	"github.com/google/uuid"
)

type AccountQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*AccountView, error)
	GetByUserID(ctx context.Context, userID int64) (*AccountView, error)
	List(ctx context.Context, filter AccountFilter, page Pagination) (*PageResult[AccountView], error)
	Search(ctx context.Context, term string) ([]AccountView, error)
}

type AccountReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*AccountView, error)
	FindByUserID(ctx context.Context, userID int64) (*AccountView, error)
	List(ctx context.Context, filter AccountFilter, page Pagination) ([]AccountView, int64, error)
	Search(ctx context.Context, term string, limit uint64) ([]AccountView, error)
}

type accountQueriesImpl struct {
	readStore AccountReadStore
}

func NewAccountQueries(readStore AccountReadStore) AccountQueries {
	return &accountQueriesImpl{readStore: readStore}
}

func (q *accountQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*AccountView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		return nil, accountLookupError(err, id)
	}
	return view, nil
}

func (q *accountQueriesImpl) GetByUserID(ctx context.Context, userID int64) (*AccountView, error) {
	view, err := q.readStore.FindByUserID(ctx, userID)
	if err != nil {
		return nil, accountLookupError(err, userID)
	}
	return view, nil
}

func (q *accountQueriesImpl) List(ctx context.Context, filter AccountFilter, page Pagination) (*PageResult[AccountView], error) {
	if filter.Status != "" {
		st, err := account.NewStatus(filter.Status)
		if err != nil {
			return nil, errs.Validation(err, "invalid account status", map[string]any{"status": filter.Status})
		}
		filter.Status = st.String()
	}
	filter.Email = strings.TrimSpace(filter.Email)

	items, total, err := q.readStore.List(ctx, filter, page)
	if err != nil {
		return nil, errs.Infrastructure(err, "failed to list accounts")
	}
	return NewPageResult(items, total, page), nil
}

func (q *accountQueriesImpl) Search(ctx context.Context, term string) ([]AccountView, error) {
	term, err := searchTerm(term)
	if err != nil {
		return nil, err
	}
	items, err := q.readStore.Search(ctx, term, MaxSearchResult)
	if err != nil {
		return nil, errs.Infrastructure(err, "failed to search accounts")
	}
	if items == nil {
		items = []AccountView{}
	}
	return items, nil
}

func accountLookupError(err error, id any) error {
	if errors.Is(err, shared.ErrNotFound) {
		return errs.NotFound(err, "account", id)
	}
	return errs.Infrastructure(err, "failed to load account")
}

func searchTerm(term string) (string, error) {
	term = strings.TrimSpace(term)
	if len([]rune(term)) < MinSearchLength {
		return "", errs.Validation(nil, "search term too short", map[string]any{"min_length": MinSearchLength})
	}
	return term, nil
}
