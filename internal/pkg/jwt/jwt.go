package jwt

import (
	"context"
	"errors"
	"time"

	"points-rewards/internal/domain/account"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrExpiredToken = errors.New("token expired")
)

// Claims carries the account identity. Subject holds the account id;
// UserID is the HR reference redemptions point to. Identity provider
// tokens send Roles instead of Role.
type Claims struct {
	UserID int64    `json:"user_id,omitempty"`
	Email  string   `json:"email"`
	Role   string   `json:"role,omitempty"`
	Roles  []string `json:"roles,omitempty"`
	jwt.RegisteredClaims
}

// KeySource resolves public keys for asymmetric tokens by key id.
type KeySource interface {
	Key(ctx context.Context, kid string) (any, error)
}

type Service struct {
	secretKey     []byte
	tokenDuration time.Duration
	issuer        string
	keys          KeySource
}

type Option func(*Service)

func WithIssuer(issuer string) Option {
	return func(s *Service) { s.issuer = issuer }
}

// WithKeySource enables RS256/ES256 tokens signed by an external identity provider.
func WithKeySource(keys KeySource) Option {
	return func(s *Service) { s.keys = keys }
}

func NewService(secretKey string, tokenDuration time.Duration, opts ...Option) *Service {
	s := &Service{
		secretKey:     []byte(secretKey),
		tokenDuration: tokenDuration,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Service) GenerateToken(accountID uuid.UUID, userID int64, email string, role account.Role) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		Email:  email,
		Role:   role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   accountID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.tokenDuration)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secretKey)
}

func (s *Service) ValidateToken(ctx context.Context, tokenString string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithExpirationRequired()}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (any, error) {
		switch token.Method.(type) {
		case *jwt.SigningMethodHMAC:
			return s.secretKey, nil
		case *jwt.SigningMethodRSA, *jwt.SigningMethodECDSA:
			if s.keys == nil {
				return nil, ErrInvalidToken
			}
			kid, _ := token.Header["kid"].(string)
			return s.keys.Key(ctx, kid)
		default:
			return nil, ErrInvalidToken
		}
	}, opts...)

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrExpiredToken
		}
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
