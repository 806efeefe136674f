package auth

import (
	"time"

	"spoolmeter/config"
	"spoolmeter/internal/domain/service"

	"github.com/coder/quartz"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	accessTokenType = "access"
	accessTokenTTL  = 15 * time.Minute
)

// ErrInvalidTokenType is returned when a token of another type is presented as an access token.
var ErrInvalidTokenType = errors.New("token is not an access token")

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	accessSecret []byte        // Secret key for signing access tokens.
	accessTTL    time.Duration // Time-to-live for access tokens.
	clock        quartz.Clock
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config, clock quartz.Clock) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt access secret must be provided")
	}

	return &jwtService{
		accessSecret: []byte(cfg.SecretKey.Access),
		accessTTL:    accessTokenTTL,
		clock:        clock,
	}, nil
}

// IssueAccessToken creates a signed HS256 access token for accountID.
func (s *jwtService) IssueAccessToken(accountID uuid.UUID) (string, error) {
	now := s.clock.Now()
	claims := service.Claims{
		Type: accessTokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   accountID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.accessSecret)
	if err != nil {
		return "", errors.Wrap(err, "sign access token")
	}

	return signed, nil
}

// ValidateAccessToken checks signature, expiry and type, and resolves the account ID.
func (s *jwtService) ValidateAccessToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return s.accessSecret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return s.clock.Now() }),
	)
	if err != nil {
		return nil, errors.Wrap(err, "parse access token")
	}

	if claims.Type != accessTokenType {
		return nil, ErrInvalidTokenType
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return nil, errors.Wrap(err, "parse token subject")
	}
	claims.AccountID = accountID

	return claims, nil
}
