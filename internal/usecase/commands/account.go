package commands

import (
	"context"
	"errors"
	"strings"

	"points-rewards/internal/domain/account"
	"points-rewards/internal/pkg/clock"
	"points-rewards/internal/pkg/errs"
	"points-rewards/internal/pkg/patch"
	"points-rewards/internal/usecase/queries"
	"points-rewards/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateAccountInput struct {
	UserID    int64
	Email     string
	FirstName string
	LastName  string
	Role      string
	Points    int64
}

// UpdateAccountInput fields left nil keep their current value.
type UpdateAccountInput struct {
	Email     *string
	FirstName *string
	LastName  *string
}

type AccountCommands interface {
	Create(ctx context.Context, actor shared.Principal, in CreateAccountInput) (*queries.AccountView, error)
	Update(ctx context.Context, actor shared.Principal, id uuid.UUID, in UpdateAccountInput) (*queries.AccountView, error)
	Deactivate(ctx context.Context, actor shared.Principal, id uuid.UUID) (*queries.AccountView, error)
	Activate(ctx context.Context, actor shared.Principal, id uuid.UUID) (*queries.AccountView, error)
	AssignRole(ctx context.Context, actor shared.Principal, id uuid.UUID, role string) (*queries.AccountView, error)
	GrantPoints(ctx context.Context, actor shared.Principal, id uuid.UUID, amount int64) (*queries.AccountView, error)
	DeductPoints(ctx context.Context, actor shared.Principal, id uuid.UUID, amount int64) (*queries.AccountView, error)
}

type accountUseCaseImpl struct {
	uow     shared.UnitOfWork
	effects sideEffects
	clock   clock.Clock
}

func NewAccountUseCase(uow shared.UnitOfWork, email EmailGateway, audit AuditGateway, clk clock.Clock) AccountCommands {
	return &accountUseCaseImpl{
		uow:     uow,
		effects: sideEffects{email: email, audit: audit},
		clock:   clk,
	}
}

func (uc *accountUseCaseImpl) Create(ctx context.Context, actor shared.Principal, in CreateAccountInput) (*queries.AccountView, error) {
	email, err := account.NewEmail(in.Email)
	if err != nil {
		return nil, errs.Validation(err, "invalid email", map[string]any{"email": in.Email})
	}
	first, last, err := names(in.FirstName, in.LastName)
	if err != nil {
		return nil, err
	}
	roleName := in.Role
	if strings.TrimSpace(roleName) == "" {
		roleName = string(account.RoleUser)
	}
	role, err := account.NewRole(roleName)
	if err != nil {
		return nil, errs.Validation(err, "invalid role", map[string]any{"role": in.Role})
	}
	acc, err := account.NewAccount(in.UserID, email, first, last, role, in.Points, uc.clock.Now())
	if err != nil {
		return nil, errs.Validation(err, "invalid account", nil)
	}

	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if derr := tx.Accounts().Create(ctx, acc); derr != nil {
			if errors.Is(derr, shared.ErrDuplicate) {
				return errs.Conflict(derr, "account already exists", map[string]any{
					"email":   email.Value(),
					"user_id": in.UserID,
				})
			}
			return errs.Infrastructure(derr, "failed to create account")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.effects.email != nil {
		uc.effects.send(ctx, "welcome email", func(ctx context.Context) error {
			return uc.effects.email.SendWelcome(ctx, AccountEmail{To: email.Value(), FullName: acc.FullName()})
		})
	}
	uc.effects.record(ctx, actor, "account.created", "account", acc.ID().String(),
		map[string]any{"user_id": acc.UserID(), "role": role.String()}, uc.clock.Now())
	return accountView(acc), nil
}

func (uc *accountUseCaseImpl) Update(ctx context.Context, actor shared.Principal, id uuid.UUID, in UpdateAccountInput) (*queries.AccountView, error) {
	if actor.ID != id && !actor.IsAdmin() {
		return nil, errs.Forbidden(nil, "cannot update another account", map[string]any{"id": id})
	}

	acc, err := uc.mutate(ctx, id, func(acc *account.Account) error {
		email := acc.Email()
		if in.Email != nil {
			e, verr := account.NewEmail(*in.Email)
			if verr != nil {
				return errs.Validation(verr, "invalid email", map[string]any{"email": *in.Email})
			}
			email = e
		}
		fn, ln, verr := names(
			patch.Coalesce(in.FirstName, acc.FirstName().Value()),
			patch.Coalesce(in.LastName, acc.LastName().Value()),
		)
		if verr != nil {
			return verr
		}
		acc.UpdateProfile(email, fn, ln, uc.clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.effects.record(ctx, actor, "account.updated", "account", id.String(), nil, uc.clock.Now())
	return accountView(acc), nil
}

func (uc *accountUseCaseImpl) Deactivate(ctx context.Context, actor shared.Principal, id uuid.UUID) (*queries.AccountView, error) {
	acc, err := uc.mutate(ctx, id, func(acc *account.Account) error {
		acc.Deactivate(uc.clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}

	if uc.effects.email != nil {
		uc.effects.send(ctx, "deactivation email", func(ctx context.Context) error {
			return uc.effects.email.SendDeactivation(ctx, AccountEmail{To: acc.Email().Value(), FullName: acc.FullName()})
		})
	}
	uc.effects.record(ctx, actor, "account.deactivated", "account", id.String(), nil, uc.clock.Now())
	return accountView(acc), nil
}

func (uc *accountUseCaseImpl) Activate(ctx context.Context, actor shared.Principal, id uuid.UUID) (*queries.AccountView, error) {
	acc, err := uc.mutate(ctx, id, func(acc *account.Account) error {
		acc.Activate(uc.clock.Now())
		return nil
	})
	if err != nil {
		return nil, err
	}
	uc.effects.record(ctx, actor, "account.activated", "account", id.String(), nil, uc.clock.Now())
	return accountView(acc), nil
}

func (uc *accountUseCaseImpl) AssignRole(ctx context.Context, actor shared.Principal, id uuid.UUID, roleName string) (*queries.AccountView, error) {
	role, err := account.NewRole(roleName)
	if err != nil {
		return nil, errs.Validation(err, "invalid role", map[string]any{"role": roleName})
	}

	var previous account.Role
	acc, err := uc.mutate(ctx, id, func(acc *account.Account) error {
		previous = acc.Role()
		return acc.AssignRole(role, uc.clock.Now())
	})
	if err != nil {
		return nil, err
	}

	uc.effects.record(ctx, actor, "account.role_changed", "account", id.String(),
		map[string]any{"from": previous.String(), "to": role.String()}, uc.clock.Now())
	return accountView(acc), nil
}

func (uc *accountUseCaseImpl) GrantPoints(ctx context.Context, actor shared.Principal, id uuid.UUID, amount int64) (*queries.AccountView, error) {
	return uc.adjustPoints(ctx, actor, id, amount, true)
}

func (uc *accountUseCaseImpl) DeductPoints(ctx context.Context, actor shared.Principal, id uuid.UUID, amount int64) (*queries.AccountView, error) {
	return uc.adjustPoints(ctx, actor, id, amount, false)
}

func (uc *accountUseCaseImpl) adjustPoints(ctx context.Context, actor shared.Principal, id uuid.UUID, amount int64, grant bool) (*queries.AccountView, error) {
	if amount <= 0 {
		return nil, errs.Validation(account.ErrInvalidPoints, "points must be greater than zero", map[string]any{"points": amount})
	}

	var view *queries.AccountView
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		acc, derr := tx.Accounts().FindByID(ctx, id)
		if derr != nil {
			return lookupError(derr, "account", id)
		}

		var balance int64
		if grant {
			balance, derr = tx.Accounts().Credit(ctx, acc.UserID(), amount)
			if derr != nil {
				return errs.Infrastructure(derr, "failed to credit points")
			}
		} else {
			var applied bool
			balance, applied, derr = tx.Accounts().Debit(ctx, acc.UserID(), amount)
			if derr != nil {
				return errs.Infrastructure(derr, "failed to debit points")
			}
			if !applied {
				return insufficientPoints(acc.Points(), amount)
			}
		}

		view = accountView(acc)
		view.Points = balance
		return nil
	})
	if err != nil {
		return nil, err
	}

	action := "account.points_granted"
	if !grant {
		action = "account.points_deducted"
	}
	uc.effects.record(ctx, actor, action, "account", id.String(),
		map[string]any{"points": amount, "balance": view.Points}, uc.clock.Now())
	return view, nil
}

// mutate loads the account, applies fn and persists the result in one transaction.
func (uc *accountUseCaseImpl) mutate(ctx context.Context, id uuid.UUID, fn func(acc *account.Account) error) (*account.Account, error) {
	var acc *account.Account
	err := uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		var derr error
		acc, derr = tx.Accounts().FindByID(ctx, id)
		if derr != nil {
			return lookupError(derr, "account", id)
		}
		if derr = fn(acc); derr != nil {
			if _, ok := errs.AsApp(derr); ok {
				return derr
			}
			return errs.Validation(derr, "invalid account change", nil)
		}
		if derr = tx.Accounts().Update(ctx, acc); derr != nil {
			if errors.Is(derr, shared.ErrDuplicate) {
				return errs.Conflict(derr, "email already in use", map[string]any{"email": acc.Email().Value()})
			}
			return errs.Infrastructure(derr, "failed to update account")
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

func names(first, last string) (account.Name, account.Name, error) {
	fn, err := account.NewName(first)
	if err != nil {
		return account.Name{}, account.Name{}, errs.Validation(err, "invalid first name", nil)
	}
	ln, err := account.NewName(last)
	if err != nil {
		return account.Name{}, account.Name{}, errs.Validation(err, "invalid last name", nil)
	}
	return fn, ln, nil
}
