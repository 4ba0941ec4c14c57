package usecase

import (
	"wedding-rsvp/internal/pkg/jwt"
)

// TokenValidator provides admin token validation for middleware
type TokenValidator interface {
	ValidateToken(tokenString string) (subject string, err error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{
		jwtService: jwtService,
	}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (string, error) {
	if t.jwtService == nil {
		return "", jwt.ErrInvalidToken
	}

	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	if claims.Subject != jwt.AdminSubject {
		return "", jwt.ErrInvalidToken
	}

	return claims.Subject, nil
}
