package service

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims defines the custom claims for account access tokens.
type Claims struct {
	AccountID uuid.UUID `json:"-"`
	Type      string    `json:"type"`
	jwt.RegisteredClaims
}

// TokenService validates the account access tokens presented on the query routes.
// Issuance lives with the identity provider; IssueAccessToken exists for tooling and tests.
type TokenService interface {
	// IssueAccessToken creates a signed access token for accountID.
	IssueAccessToken(accountID uuid.UUID) (string, error)

	// ValidateAccessToken checks the signature, expiry and type of a token.
	ValidateAccessToken(tokenString string) (*Claims, error)
}
