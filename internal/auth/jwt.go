package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/sitetrack-backend/internal/domain"
)

// clockSkew tolerated between the identity service and this backend.
const clockSkew = 30 * time.Second

// JWTManager validates HS256 access tokens issued by the identity service
// and resolves them into a domain.Actor. It also mints tokens for tooling
// and tests.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	parser    *jwt.Parser
}

// NewJWTManager creates a JWTManager. Config validation guarantees the
// secret is at least 32 characters.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithLeeway(clockSkew),
		),
	}
}

// actorClaims carries the actor's display name and role next to the
// registered claims; the subject is the actor id.
type actorClaims struct {
	jwt.RegisteredClaims
	Name string `json:"name,omitempty"`
	Role string `json:"role,omitempty"`
}

func (m *JWTManager) GenerateAccessToken(actor domain.Actor) (string, error) {
	now := time.Now()
	claims := actorClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   actor.ID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Name: actor.Name,
		Role: string(actor.Role),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken resolves a bearer token into an actor. Every failure
// wraps domain.ErrUnauthorized. An unknown role claim degrades to the
// plain user role.
func (m *JWTManager) ValidateAccessToken(tokenString string) (domain.Actor, error) {
	if tokenString == "" {
		return domain.Actor{}, fmt.Errorf("%w: token is empty", domain.ErrUnauthorized)
	}

	var claims actorClaims
	if _, err := m.parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (any, error) {
		return m.secret, nil
	}); err != nil {
		if errors.Is(err, jwt.ErrTokenInvalidIssuer) {
			return domain.Actor{}, fmt.Errorf("%w: invalid issuer: %w", domain.ErrUnauthorized, err)
		}
		return domain.Actor{}, fmt.Errorf("%w: parse token: %w", domain.ErrUnauthorized, err)
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: invalid subject: %w", domain.ErrUnauthorized, err)
	}
	if id == uuid.Nil {
		return domain.Actor{}, fmt.Errorf("%w: nil subject", domain.ErrUnauthorized)
	}

	role := domain.UserRole(claims.Role)
	if !role.IsValid() {
		role = domain.UserRoleUser
	}

	return domain.Actor{ID: id, Name: claims.Name, Role: role}, nil
}
