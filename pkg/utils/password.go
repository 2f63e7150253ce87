package utils

import (
	"crypto/hmac"
	"crypto/sha512"
	"encoding/hex"
	"strings"

	"golang.org/x/crypto/bcrypt"
)

// 新密码一律 bcrypt；校验按摘要自带的算法标签分发，
// 旧系统迁移过来的 sha512$salt$hex 摘要仍可验证（只验不再生成）。

func HashPassword(pw string) string {
	b, _ := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	return string(b)
}

func CheckPassword(pw, digest string) bool {
	switch {
	case strings.HasPrefix(digest, "$2"):
		return bcrypt.CompareHashAndPassword([]byte(digest), []byte(pw)) == nil
	case strings.HasPrefix(digest, "sha512$"):
		return checkLegacySHA512(pw, digest)
	}
	return false
}

// checkLegacySHA512 旧格式：sha512$salt$hex，hex = HMAC-SHA512(key=salt, msg=pw)
func checkLegacySHA512(pw, digest string) bool {
	parts := strings.SplitN(digest, "$", 3)
	if len(parts) != 3 {
		return false
	}
	want, err := hex.DecodeString(parts[2])
	if err != nil {
		return false
	}
	mac := hmac.New(sha512.New, []byte(parts[1]))
	mac.Write([]byte(pw))
	return hmac.Equal(mac.Sum(nil), want)
}
