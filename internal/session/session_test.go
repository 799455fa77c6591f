package session

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/project-roster/internal/domain"
)

func TestVerifier(t *testing.T) {
	v := NewVerifier("secret", "session")

	t.Run("выпущенный токен проходит проверку", func(t *testing.T) {
		token, err := v.Issue("u1", true, time.Hour)
		require.NoError(t, err)

		status, err := v.Verify(token)

		require.NoError(t, err)
		assert.Equal(t, domain.AdminStatus{IsAdmin: true, UserID: "u1"}, status)
	})

	t.Run("чужой ключ", func(t *testing.T) {
		token, err := NewVerifier("other", "session").Issue("u1", true, time.Hour)
		require.NoError(t, err)

		status, err := v.Verify(token)

		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidToken))
		assert.Equal(t, domain.Anonymous, status)
	})

	t.Run("просроченный токен", func(t *testing.T) {
		token, err := v.Issue("u1", false, -time.Minute)
		require.NoError(t, err)

		_, err = v.Verify(token)

		assert.True(t, errors.Is(err, ErrInvalidToken))
	})

	t.Run("токен без пользователя", func(t *testing.T) {
		token, err := v.Issue("", false, time.Hour)
		require.NoError(t, err)

		_, err = v.Verify(token)

		assert.True(t, errors.Is(err, ErrInvalidToken))
	})
}

func TestVerifier_FromRequest(t *testing.T) {
	v := NewVerifier("secret", "session")

	t.Run("без куки посетитель анонимный", func(t *testing.T) {
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		status, err := v.FromRequest(r)

		require.NoError(t, err)
		assert.False(t, status.Authenticated())
	})

	t.Run("кука с токеном", func(t *testing.T) {
		token, err := v.Issue("u2", false, time.Hour)
		require.NoError(t, err)

		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.AddCookie(&http.Cookie{Name: "session", Value: token})

		status, err := v.FromRequest(r)

		require.NoError(t, err)
		assert.Equal(t, "u2", status.UserID)
		assert.False(t, status.IsAdmin)
	})
}
