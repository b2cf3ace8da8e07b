package queries

import (
	"context"
	"errors"

	"points-rewards/internal/domain/redemption"
	"points-rewards/internal/pkg/errs"
	"points-rewards/internal/usecase/shared"

	"github.com/google/uuid"
)

type RedemptionQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*RedemptionView, error)
	ListByUser(ctx context.Context, userID int64, status string, page Pagination) (*PageResult[RedemptionView], error)
	List(ctx context.Context, filter RedemptionFilter, page Pagination) (*PageResult[RedemptionView], error)
}

type RedemptionReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*RedemptionView, error)
	List(ctx context.Context, filter RedemptionFilter, page Pagination) ([]RedemptionView, int64, error)
}

type redemptionQueriesImpl struct {
	redemptions RedemptionReadStore
}

func NewRedemptionQueries(redemptions RedemptionReadStore) RedemptionQueries {
	return &redemptionQueriesImpl{redemptions: redemptions}
}

func (q *redemptionQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*RedemptionView, error) {
	view, err := q.redemptions.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return nil, errs.NotFound(err, "redemption", id)
		}
		return nil, errs.Infrastructure(err, "failed to load redemption")
	}
	return view, nil
}

// ListByUser yields an empty page for a user_id with no account.
func (q *redemptionQueriesImpl) ListByUser(ctx context.Context, userID int64, status string, page Pagination) (*PageResult[RedemptionView], error) {
	return q.List(ctx, RedemptionFilter{UserID: &userID, Status: status}, page)
}

func (q *redemptionQueriesImpl) List(ctx context.Context, filter RedemptionFilter, page Pagination) (*PageResult[RedemptionView], error) {
	if filter.Status != "" {
		st, err := redemption.ParseStatus(filter.Status)
		if err != nil {
			return nil, invalidStatusError(err)
		}
		filter.Status = st.String()
	}

	items, total, err := q.redemptions.List(ctx, filter, page)
	if err != nil {
		return nil, errs.Infrastructure(err, "failed to list redemptions")
	}
	return NewPageResult(items, total, page), nil
}

func invalidStatusError(err error) error {
	valid := make([]string, 0, len(redemption.ValidStatuses()))
	for _, s := range redemption.ValidStatuses() {
		valid = append(valid, s.String())
	}
	return errs.Validation(err, "invalid redemption status", map[string]any{"valid_values": valid})
}
