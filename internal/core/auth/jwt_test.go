package auth

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestJWTer() *JWTer {
	return &JWTer{Secret: []byte("test-secret"), Issuer: "license-api", TTL: time.Hour}
}

func TestIssueParseRoundTrip(t *testing.T) {
	j := newTestJWTer()

	tok, err := j.Issue("42", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := j.Parse(tok)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.UID)
	assert.Equal(t, "admin", claims.Role)
	assert.Equal(t, "license-api", claims.Issuer)
}

func TestParseWrongSecret(t *testing.T) {
	j := newTestJWTer()
	tok, err := j.Issue("42", "user")
	require.NoError(t, err)

	other := &JWTer{Secret: []byte("another-secret"), Issuer: "license-api", TTL: time.Hour}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParseWrongIssuer(t *testing.T) {
	j := newTestJWTer()
	tok, err := j.Issue("42", "user")
	require.NoError(t, err)

	other := &JWTer{Secret: j.Secret, Issuer: "someone-else", TTL: time.Hour}
	_, err = other.Parse(tok)
	assert.Error(t, err)
}

func TestParseExpired(t *testing.T) {
	// 过期超过 60s leeway 才算失效
	j := &JWTer{Secret: []byte("test-secret"), Issuer: "license-api", TTL: -2 * time.Minute}
	tok, err := j.Issue("42", "user")
	require.NoError(t, err)

	_, err = j.Parse(tok)
	assert.Error(t, err)
}

func TestParseGarbage(t *testing.T) {
	j := newTestJWTer()
	_, err := j.Parse("not.a.token")
	assert.Error(t, err)
}
