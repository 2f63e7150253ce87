package utils

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckBcrypt(t *testing.T) {
	digest := HashPassword("Pandabear55")
	require.NotEmpty(t, digest)
	assert.True(t, CheckPassword("Pandabear55", digest))
	assert.False(t, CheckPassword("Pandabear56", digest))
	assert.False(t, CheckPassword("", digest))
}

func TestHashIsSalted(t *testing.T) {
	a := HashPassword("Pandabear55")
	b := HashPassword("Pandabear55")
	assert.NotEqual(t, a, b)
	assert.True(t, CheckPassword("Pandabear55", a))
	assert.True(t, CheckPassword("Pandabear55", b))
}

func legacyDigest(pw, salt string) string {
	mac := hmac.New(sha512.New, []byte(salt))
	mac.Write([]byte(pw))
	return "sha512$" + salt + "$" + hex.EncodeToString(mac.Sum(nil))
}

func TestCheckLegacySHA512(t *testing.T) {
	digest := legacyDigest("Pandabear55", "Zx9qLm2A")
	assert.True(t, CheckPassword("Pandabear55", digest))
	assert.False(t, CheckPassword("Pandabear56", digest))
}

func TestCheckMalformedDigests(t *testing.T) {
	assert.False(t, CheckPassword("whatever", ""))
	assert.False(t, CheckPassword("whatever", "md5$salt$abc"))
	assert.False(t, CheckPassword("whatever", "sha512$missinghash"))
	assert.False(t, CheckPassword("whatever", "sha512$salt$not-hex"))
	assert.False(t, CheckPassword("whatever", "plaintext"))
}
