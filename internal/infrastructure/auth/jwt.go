package auth

import (
	"errors"
	"fmt"
	"meshguard_api/internal/domain/entities"
	"meshguard_api/internal/usecase/interfaces"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jonboulle/clockwork"
)

const (
	DefaultTokenTTL = 7 * 24 * time.Hour
	issuer          = "meshguard_api"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrEmptySecret  = errors.New("jwt secret is empty")
)

// Claims is the session token payload.
type Claims struct {
	UserID string `json:"userId"`
	Email  string `json:"email"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs HS256 session tokens. Tokens are not tracked server side.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	clock  clockwork.Clock
}

var _ interfaces.ITokenIssuer = (*TokenIssuer)(nil)

func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	return NewTokenIssuerWithClock(secret, ttl, clockwork.NewRealClock())
}

func NewTokenIssuerWithClock(secret string, ttl time.Duration, clock clockwork.Clock) (*TokenIssuer, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, ErrEmptySecret
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenIssuer{secret: []byte(secret), ttl: ttl, clock: clock}, nil
}

func (t *TokenIssuer) Issue(actor entities.Actor) (string, error) {
	now := t.clock.Now()
	claims := Claims{
		UserID: actor.UserID,
		Email:  actor.Email,
		Role:   string(actor.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   actor.UserID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(t.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
}

func (t *TokenIssuer) Parse(raw string) (entities.Actor, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return entities.Actor{}, ErrInvalidToken
	}

	token, err := jwt.ParseWithClaims(raw, &Claims{}, func(tok *jwt.Token) (interface{}, error) {
		return t.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuer),
		jwt.WithTimeFunc(t.clock.Now),
	)
	if err != nil {
		return entities.Actor{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid || claims.UserID == "" {
		return entities.Actor{}, ErrInvalidToken
	}
	return entities.Actor{UserID: claims.UserID, Email: claims.Email, Role: entities.Role(claims.Role)}, nil
}
