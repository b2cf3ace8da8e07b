package usecase

import (
	"context"

	"points-rewards/internal/domain/account"
	"points-rewards/internal/pkg/errs"
	"points-rewards/internal/usecase/queries"
	"points-rewards/internal/usecase/shared"
)

// CurrentUser is the caller's identity plus the stored account when one exists.
// Identity provider users may not be registered yet, in which case Account is nil.
type CurrentUser struct {
	Principal   shared.Principal
	Permissions []account.Permission
	Account     *queries.AccountView
}

type AuthUseCase interface {
	GetCurrentUser(ctx context.Context, principal shared.Principal) (*CurrentUser, error)
}

type authUseCaseImpl struct {
	accounts queries.AccountQueries
}

func NewAuthUseCase(accounts queries.AccountQueries) AuthUseCase {
	return &authUseCaseImpl{accounts: accounts}
}

func (a *authUseCaseImpl) GetCurrentUser(ctx context.Context, principal shared.Principal) (*CurrentUser, error) {
	current := &CurrentUser{
		Principal:   principal,
		Permissions: principal.Role.Permissions(),
	}
	if principal.UserID <= 0 {
		return current, nil
	}

	view, err := a.accounts.GetByUserID(ctx, principal.UserID)
	if err != nil {
		if errs.IsKind(err, errs.KindNotFound) {
			return current, nil
		}
		return nil, err
	}
	if view.Status != string(account.StatusActive) {
		return nil, errs.Unauthenticated(account.ErrAccountInactive, "account is inactive")
	}
	current.Account = view
	return current, nil
}
