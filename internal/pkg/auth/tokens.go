package auth

import (
	"time"

	"milkround/internal/core/domain/model/account"
	"milkround/internal/core/domain/model/kernel"
	"milkround/internal/pkg/errs"

	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims holds the typed JWT payload for an authenticated account.
type AccessClaims struct {
	AccountID string `json:"account_id"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and parses HS256 access tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenIssuer creates an issuer with the given signing secret and token
// lifetime.
func NewTokenIssuer(secret string, ttl time.Duration) TokenIssuer {
	return TokenIssuer{secret: []byte(secret), ttl: ttl}
}

// Issue creates a signed access token for the account.
func (i TokenIssuer) Issue(accountID kernel.UUID, name string, role account.Role) (string, error) {
	now := time.Now()
	claims := AccessClaims{
		AccountID: accountID.String(),
		Name:      name,
		Role:      role.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse validates a token string and returns its claims.
func (i TokenIssuer) Parse(tokenString string) (*AccessClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AccessClaims{},
		func(_ *jwt.Token) (any, error) {
			return i.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return nil, errs.NewNotAuthorizedErrorWithCause("parse access token", err)
	}

	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return nil, errs.NewNotAuthorizedError("parse access token")
	}

	return claims, nil
}

// ParsedAccountID returns the subject account identifier from the claims.
func (c *AccessClaims) ParsedAccountID() (kernel.UUID, error) {
	return kernel.UUIDFromString(c.AccountID)
}

// ParsedRole returns the account role from the claims.
func (c *AccessClaims) ParsedRole() (account.Role, error) {
	return account.RoleFromString(c.Role)
}
