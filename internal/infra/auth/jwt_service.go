// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"shopbot/config"
	"shopbot/internal/domain/service"
	"shopbot/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const tokenIssuer = "shopbot"

// ErrAdminNotConfigured is returned when the admin section is missing.
var ErrAdminNotConfigured = errors.New("admin api is not configured")

// jwtService signs operator API tokens with HS256.
type jwtService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.Admin == nil {
		return nil, ErrAdminNotConfigured
	}
	if cfg.Admin.JWTSecret == "" {
		return nil, errors.New("admin jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.Admin.JWTSecret),
		ttl:    cfg.Admin.TokenTTL,
		now:    time.Now,
	}, nil
}

func (s *jwtService) GenerateToken(subject string, roles []string) (string, time.Time, error) {
	issuedAt := s.now()
	expiresAt := issuedAt.Add(s.ttl)

	claims := &service.Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    tokenIssuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, errors.Wrap(err, "failed to sign token")
	}

	return token, expiresAt, nil
}

func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}
	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}

	return claims, nil
}
