package usecase

import (
	"daycare-waitlist/internal/domain/account"
	"daycare-waitlist/internal/pkg/jwt"

	"github.com/google/uuid"
)

// TokenValidator resolves an access token to the account it was issued for.
type TokenValidator interface {
	ValidateToken(tokenString string) (uuid.UUID, account.Kind, error)
}

type tokenValidatorImpl struct {
	jwtService *jwt.Service
}

func NewTokenValidator(jwtService *jwt.Service) TokenValidator {
	return &tokenValidatorImpl{jwtService: jwtService}
}

func (t *tokenValidatorImpl) ValidateToken(tokenString string) (uuid.UUID, account.Kind, error) {
	claims, err := t.jwtService.ValidateToken(tokenString)
	if err != nil {
		return uuid.Nil, "", err
	}
	kind, err := account.NewKind(claims.Kind)
	if err != nil {
		return uuid.Nil, "", err
	}
	return claims.AccountID, kind, nil
}
