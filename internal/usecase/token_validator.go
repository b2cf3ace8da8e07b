package usecase

import (
	"context"

	"points-rewards/internal/domain/account"
	"points-rewards/internal/pkg/errs"
	"points-rewards/internal/pkg/jwt"
	"points-rewards/internal/usecase/shared"

	"github.com/google/uuid"
)

// TokenValidator provides token validation for middleware
type TokenValidator interface {
	ValidateToken(ctx context.Context, tokenString string) (shared.Principal, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(ctx context.Context, tokenString string) (shared.Principal, error) {
	claims, err := t.jwtService.ValidateToken(ctx, tokenString)
	if err != nil {
		if errs.Is(err, jwt.ErrExpiredToken) {
			return shared.Principal{}, errs.Unauthenticated(err, "token expired")
		}
		return shared.Principal{}, errs.Unauthenticated(err, "invalid token")
	}
	if claims.Email == "" || claims.Subject == "" {
		return shared.Principal{}, errs.Unauthenticated(jwt.ErrInvalidToken, "token is missing the user identity")
	}

	// Identity provider subjects are not always UUIDs; those callers get uuid.Nil
	// and can only act through user_id.
	id, _ := uuid.Parse(claims.Subject)

	return shared.Principal{
		ID:     id,
		UserID: claims.UserID,
		Email:  claims.Email,
		Role:   primaryRole(claims),
	}, nil
}

// primaryRole takes the explicit role, else the first known entry of roles,
// else the default user role.
func primaryRole(claims *jwt.Claims) account.Role {
	if role, err := account.NewRole(claims.Role); err == nil {
		return role
	}
	for _, r := range claims.Roles {
		if role, err := account.NewRole(r); err == nil {
			return role
		}
	}
	return account.RoleUser
}

// DevPrincipal is the fixed identity the development bypass authenticates as.
func DevPrincipal() shared.Principal {
	return shared.Principal{
		ID:     uuid.MustParse("12345678-1234-5678-9012-123456789012"),
		UserID: 999999,
		Email:  "dev@flesan.com",
		Role:   account.RoleAdmin,
	}
}
