package queries

import (
	"context"
	"errors"
	"strings"

	"points-rewards/internal/pkg/errs"
	"points-rewards/internal/usecase/shared"

	"github.com/google/uuid"
)

type BenefitQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*BenefitView, error)
	List(ctx context.Context, filter BenefitFilter, page Pagination) (*PageResult[BenefitView], error)
	Search(ctx context.Context, term string) ([]BenefitView, error)
	Summary(ctx context.Context) (*BenefitSummary, error)
}

type BenefitReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*BenefitView, error)
	List(ctx context.Context, filter BenefitFilter, page Pagination) ([]BenefitView, int64, error)
	Search(ctx context.Context, term string, limit uint64) ([]BenefitView, error)
	Summary(ctx context.Context) (*BenefitSummary, error)
}

type benefitQueriesImpl struct {
	readStore BenefitReadStore
}

func NewBenefitQueries(readStore BenefitReadStore) BenefitQueries {
	return &benefitQueriesImpl{readStore: readStore}
}

func (q *benefitQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*BenefitView, error) {
	view, err := q.readStore.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, errs.NotFound(err, "benefit", id)
		}
		return nil, errs.Infrastructure(err, "failed to load benefit")
	}
	return view, nil
}

func (q *benefitQueriesImpl) List(ctx context.Context, filter BenefitFilter, page Pagination) (*PageResult[BenefitView], error) {
	filter.Name = strings.TrimSpace(filter.Name)
	items, total, err := q.readStore.List(ctx, filter, page)
	if err != nil {
		return nil, errs.Infrastructure(err, "failed to list benefits")
	}
	return NewPageResult(items, total, page), nil
}

func (q *benefitQueriesImpl) Search(ctx context.Context, term string) ([]BenefitView, error) {
	term, err := searchTerm(term)
	if err != nil {
		return nil, err
	}
	items, err := q.readStore.Search(ctx, term, MaxSearchResult)
	if err != nil {
		return nil, errs.Infrastructure(err, "failed to search benefits")
	}
	if items == nil {
		items = []BenefitView{}
	}
	return items, nil
}

func (q *benefitQueriesImpl) Summary(ctx context.Context) (*BenefitSummary, error) {
	summary, err := q.readStore.Summary(ctx)
	if err != nil {
		return nil, errs.Infrastructure(err, "failed to summarize benefits")
	}
	return summary, nil
}
