// Package session проверяет сессионную куку, выданную системой входа хоста.
// Сам вход (логин, пароли) сюда не входит: пакет только читает подписанный токен.
package session

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bagdasarian/project-roster/internal/domain"
)

var ErrInvalidToken = errors.New("invalid session token")

type Claims struct {
	Admin bool `json:"admin"`
	jwt.RegisteredClaims
}

type Verifier struct {
	secret     []byte
	cookieName string
}

func NewVerifier(secret, cookieName string) *Verifier {
	return &Verifier{secret: []byte(secret), cookieName: cookieName}
}

func (v *Verifier) CookieName() string {
	return v.cookieName
}

// Issue подписывает токен для пользователя. Используется в тестах и локальных утилитах.
func (v *Verifier) Issue(userID string, admin bool, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		Admin: admin,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(v.secret)
}

func (v *Verifier) Verify(tokenString string) (domain.AdminStatus, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return v.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return domain.Anonymous, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid || claims.Subject == "" {
		return domain.Anonymous, ErrInvalidToken
	}

	return domain.AdminStatus{IsAdmin: claims.Admin, UserID: claims.Subject}, nil
}

// FromRequest читает посетителя из куки. Отсутствие куки - анонимный посетитель, не ошибка.
func (v *Verifier) FromRequest(r *http.Request) (domain.AdminStatus, error) {
	cookie, err := r.Cookie(v.cookieName)
	if err != nil || cookie.Value == "" {
		return domain.Anonymous, nil
	}

	return v.Verify(cookie.Value)
}
