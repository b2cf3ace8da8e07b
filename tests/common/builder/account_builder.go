//go:build unit || e2e

package builder

import (
	"time"

	"points-rewards/internal/domain/account"
	"points-rewards/internal/usecase/queries"

	"github.com/google/uuid"
)

type AccountBuilder struct {
	ID        uuid.UUID
	UserID    int64
	Email     string
	FirstName string
	LastName  string
	Role      string
	Points    int64
	Active    bool
	Now       time.Time
}

func NewAccountBuilder() *AccountBuilder {
	return &AccountBuilder{
		ID:        uuid.New(),
		UserID:    42,
		Email:     "ana.rojas@example.com",
		FirstName: "Ana",
		LastName:  "Rojas",
		Role:      "user",
		Points:    500,
		Active:    true,
		Now:       time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (b *AccountBuilder) With(mutate func(*AccountBuilder)) *AccountBuilder {
	mutate(b)
	return b
}

// BuildDomain goes through NewAccount, so every field is validated.
func (b *AccountBuilder) BuildDomain() (*account.Account, error) {
	email, err := account.NewEmail(b.Email)
	if err != nil {
		return nil, err
	}
	first, err := account.NewName(b.FirstName)
	if err != nil {
		return nil, err
	}
	last, err := account.NewName(b.LastName)
	if err != nil {
		return nil, err
	}
	role, err := account.NewRole(b.Role)
	if err != nil {
		return nil, err
	}
	acc, err := account.NewAccount(b.UserID, email, first, last, role, b.Points, b.Now)
	if err != nil {
		return nil, err
	}
	if !b.Active {
		acc.Deactivate(b.Now)
	}
	return acc, nil
}

// BuildStored returns an account as a repository would load it, keeping ID.
func (b *AccountBuilder) BuildStored() *account.Account {
	email, _ := account.NewEmail(b.Email)
	first, _ := account.NewName(b.FirstName)
	last, _ := account.NewName(b.LastName)
	status := account.StatusActive
	if !b.Active {
		status = account.StatusInactive
	}
	return account.ReconstructAccount(b.ID, b.UserID, email, first, last, b.Points,
		account.Role(b.Role), status, nil, b.Now, b.Now)
}

func (b *AccountBuilder) BuildView() *queries.AccountView {
	status := string(account.StatusActive)
	if !b.Active {
		status = string(account.StatusInactive)
	}
	return &queries.AccountView{
		ID:        b.ID,
		UserID:    b.UserID,
		Email:     b.Email,
		FirstName: b.FirstName,
		LastName:  b.LastName,
		Points:    b.Points,
		Role:      b.Role,
		Status:    status,
		CreatedAt: b.Now,
		UpdatedAt: b.Now,
	}
}

func (b *AccountBuilder) WithUserID(id int64) *AccountBuilder {
	b.UserID = id
	return b
}

func (b *AccountBuilder) WithEmail(email string) *AccountBuilder {
	b.Email = email
	return b
}

func (b *AccountBuilder) WithRole(role string) *AccountBuilder {
	b.Role = role
	return b
}

func (b *AccountBuilder) WithPoints(points int64) *AccountBuilder {
	b.Points = points
	return b
}

func (b *AccountBuilder) WithFirstName(name string) *AccountBuilder {
	b.FirstName = name
	return b
}

func (b *AccountBuilder) AsInactive() *AccountBuilder {
	b.Active = false
	return b
}
