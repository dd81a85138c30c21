package security

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"samedayramps-backend/internal/domain"
)

type TokenType string

const (
	TokenTypeQuoteAccept TokenType = "quote_accept"
)

// AcceptanceClaims are carried by the token embedded in a quote's acceptance
// link. The subject is the quote ID.
type AcceptanceClaims struct {
	Type TokenType `json:"type"`
	jwt.RegisteredClaims
}

type TokenManager interface {
	GenerateAcceptanceToken(quoteID string) (string, error)
	ValidateAcceptanceToken(tokenString string) (string, error)
}

type tokenManager struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenManager(secret string, expiryDays int) TokenManager {
	return &tokenManager{
		secret: []byte(secret),
		ttl:    time.Duration(expiryDays) * 24 * time.Hour,
	}
}

func (m *tokenManager) GenerateAcceptanceToken(quoteID string) (string, error) {
	claims := AcceptanceClaims{
		Type: TokenTypeQuoteAccept,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   quoteID,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			Issuer:    "samedayramps",
			Audience:  jwt.ClaimStrings{"quote-acceptance"},
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// ValidateAcceptanceToken returns the quote ID the token was issued for. Any
// failure, expiry included, reports domain.ErrInvalidToken so callers do not
// leak which check failed.
func (m *tokenManager) ValidateAcceptanceToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &AcceptanceClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil {
		return "", domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(*AcceptanceClaims)
	if !ok || !token.Valid || claims.Type != TokenTypeQuoteAccept || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
