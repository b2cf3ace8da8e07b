package account

import (
	"time"

	"github.com/google/uuid"
)

// Account is a program participant. UserID is the HR system reference that
// redemptions point to; ID is internal.
type Account struct {
	id        uuid.UUID
	userID    int64
	email     Email
	firstName Name
	lastName  Name
	points    int64
	role      Role
	status    Status
	lastLogin *time.Time
	createdAt time.Time
	updatedAt time.Time
}

func NewAccount(userID int64, email Email, firstName, lastName Name, role Role, initialPoints int64, now time.Time) (*Account, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if initialPoints < 0 {
		return nil, ErrInvalidPoints
	}
	return &Account{
		id:        uuid.New(),
		userID:    userID,
		email:     email,
		firstName: firstName,
		lastName:  lastName,
		points:    initialPoints,
		role:      role,
		status:    StatusActive,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructAccount(
	id uuid.UUID,
	userID int64,
	email Email,
	firstName, lastName Name,
	points int64,
	role Role,
	status Status,
	lastLogin *time.Time,
	createdAt, updatedAt time.Time,
) *Account {
	return &Account{
		id:        id,
		userID:    userID,
		email:     email,
		firstName: firstName,
		lastName:  lastName,
		points:    points,
		role:      role,
		status:    status,
		lastLogin: lastLogin,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

func (a *Account) IsActive() bool {
	return a.status == StatusActive
}

func (a *Account) Deactivate(now time.Time) {
	a.status = StatusInactive
	a.updatedAt = now
}

func (a *Account) Activate(now time.Time) {
	a.status = StatusActive
	a.updatedAt = now
}

func (a *Account) AssignRole(role Role, now time.Time) error {
	if !role.IsValid() {
		return ErrInvalidRole
	}
	a.role = role
	a.updatedAt = now
	return nil
}

func (a *Account) UpdateProfile(email Email, firstName, lastName Name, now time.Time) {
	a.email = email
	a.firstName = firstName
	a.lastName = lastName
	a.updatedAt = now
}

func (a *Account) Credit(amount int64, now time.Time) error {
	if amount <= 0 {
		return ErrInvalidPoints
	}
	a.points += amount
	a.updatedAt = now
	return nil
}

// Debit never lets the balance go negative.
func (a *Account) Debit(amount int64, now time.Time) error {
	if amount <= 0 {
		return ErrInvalidPoints
	}
	if a.points < amount {
		return ErrInsufficientFunds
	}
	a.points -= amount
	a.updatedAt = now
	return nil
}

func (a *Account) ID() uuid.UUID         { return a.id }
func (a *Account) UserID() int64         { return a.userID }
func (a *Account) Email() Email          { return a.email }
func (a *Account) FirstName() Name       { return a.firstName }
func (a *Account) LastName() Name        { return a.lastName }
func (a *Account) Points() int64         { return a.points }
func (a *Account) Role() Role            { return a.role }
func (a *Account) Status() Status        { return a.status }
func (a *Account) LastLogin() *time.Time { return a.lastLogin }
func (a *Account) CreatedAt() time.Time  { return a.createdAt }
func (a *Account) UpdatedAt() time.Time  { return a.updatedAt }

func (a *Account) FullName() string {
	return a.firstName.Value() + " " + a.lastName.Value()
}
