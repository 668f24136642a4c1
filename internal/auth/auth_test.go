package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignAndParse(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)
	tok, exp, err := iss.Sign(Player{ID: "p1", Name: "ada"})
	require.NoError(t, err)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	p, err := iss.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, &Player{ID: "p1", Name: "ada"}, p)
}

func TestSignRequiresID(t *testing.T) {
	_, _, err := NewIssuer("secret", time.Hour).Sign(Player{})
	assert.Error(t, err)
}

func TestParseRejects(t *testing.T) {
	iss := NewIssuer("secret", time.Hour)

	t.Run("wrong secret", func(t *testing.T) {
		tok, _, err := NewIssuer("other", time.Hour).Sign(Player{ID: "p1"})
		require.NoError(t, err)
		_, err = iss.Parse(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("expired", func(t *testing.T) {
		tok, _, err := NewIssuer("secret", -time.Hour).Sign(Player{ID: "p1"})
		require.NoError(t, err)
		_, err = iss.Parse(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
		assert.ErrorIs(t, err, jwt.ErrTokenExpired)
	})

	t.Run("none algorithm", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodNone, jwt.RegisteredClaims{Subject: "p1"}).
			SignedString(jwt.UnsafeAllowNoneSignatureType)
		require.NoError(t, err)
		_, err = iss.Parse(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("missing subject", func(t *testing.T) {
		tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{}).SignedString([]byte("secret"))
		require.NoError(t, err)
		_, err = iss.Parse(tok)
		assert.ErrorIs(t, err, ErrInvalidToken)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := iss.Parse("not-a-token")
		assert.ErrorIs(t, err, ErrInvalidToken)
	})
}

func TestTokenFromRequest(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Empty(t, TokenFromRequest(r, "tok"))

	r.AddCookie(&http.Cookie{Name: "tok", Value: "from-cookie"})
	assert.Equal(t, "from-cookie", TokenFromRequest(r, "tok"))

	r.Header.Set("Authorization", "Bearer  from-header ")
	assert.Equal(t, "from-header", TokenFromRequest(r, "tok"))

	r.Header.Set("Authorization", "Basic abc")
	assert.Equal(t, "from-cookie", TokenFromRequest(r, "tok"))
}

func TestAdminKey(t *testing.T) {
	var zero AdminKey
	assert.False(t, zero.Enabled())
	assert.False(t, zero.Verify("anything"))

	h, err := HashKey("s3cret-key")
	require.NoError(t, err)
	k := NewAdminKey(h)
	assert.True(t, k.Enabled())
	assert.True(t, k.Verify("s3cret-key"))
	assert.False(t, k.Verify("wrong"))
	assert.False(t, k.Verify(""))
}
