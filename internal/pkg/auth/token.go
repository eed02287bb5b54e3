package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
	"logistics/internal/entities"
)

var (
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

type Clock func() time.Time

// Tokens выпускает и проверяет HS256 токены сессии.
type Tokens struct {
	secret []byte
	ttl    time.Duration
	now    Clock
}

func NewTokens(secret string, ttl time.Duration) *Tokens {
	return NewTokensWithClock(secret, ttl, time.Now)
}

func NewTokensWithClock(secret string, ttl time.Duration, now Clock) *Tokens {
	return &Tokens{
		secret: []byte(secret),
		ttl:    ttl,
		now:    now,
	}
}

func (t *Tokens) Issue(account entities.Account) (string, time.Time, error) {
	expiresAt := t.now().Add(t.ttl)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   account.ID,
		"email": account.Email,
		"role":  account.Role.String(),
		"exp":   expiresAt.Unix(),
	})

	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse проверяет подпись и срок, exp сверяется с собственными часами.
func (t *Tokens) Parse(raw string) (*entities.Actor, error) {
	parser := jwt.Parser{SkipClaimsValidation: true}

	token, err := parser.Parse(raw, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return t.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, ErrInvalidToken
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return nil, ErrInvalidToken
	}
	if t.now().Unix() > int64(exp) {
		return nil, ErrTokenExpired
	}

	sub, _ := claims["sub"].(string)
	email, _ := claims["email"].(string)
	role, _ := claims["role"].(string)
	if sub == "" || !entities.AccountRole(role).IsValid() {
		return nil, ErrInvalidToken
	}

	return &entities.Actor{
		AccountID: sub,
		Email:     email,
		Role:      entities.AccountRole(role),
	}, nil
}
