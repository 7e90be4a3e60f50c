package identity

import (
	"clubhub/internal/platform/middleware"
)

// TokenServiceAdapter exposes TokenService through the middleware's
// TokenValidator interface.
type TokenServiceAdapter struct {
	service *TokenService
}

func NewTokenServiceAdapter(service *TokenService) *TokenServiceAdapter {
	return &TokenServiceAdapter{service: service}
}

func (a *TokenServiceAdapter) ValidateToken(tokenString string) (*middleware.TokenClaims, error) {
	claims, err := a.service.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}
	return &middleware.TokenClaims{
		UserID:        claims.UserID,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
	}, nil
}
