package validate

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPassword(t *testing.T) {
	tests := []struct {
		name     string
		p1, p2   string
		first    string
		last     string
		wantErr  error
	}{
		{"valid", "Pandabear55", "Pandabear55", "Jane", "Doe", nil},
		{"too short", "abc123", "abc123", "Jane", "Doe", ErrPasswordTooShort},
		{"six chars", "Pandab", "Pandab", "Jane", "Doe", ErrPasswordTooShort},
		{"literal password lower", "password", "password", "Jane", "Doe", ErrPasswordLiteral},
		{"literal password mixed case", "PaSsWoRd", "PaSsWoRd", "Jane", "Doe", ErrPasswordLiteral},
		{"mismatch", "Pandabear55", "Pandabear56", "Jane", "Doe", ErrPasswordMismatch},
		{"equals first name", "Janejane", "Janejane", "Janejane", "Doe", ErrPasswordIsName},
		{"equals last name folded", "sherlock", "sherlock", "Holly", "Sherlock", ErrPasswordIsName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Password(tt.p1, tt.p2, tt.first, tt.last)
			assert.Equal(t, tt.wantErr, err)
		})
	}
}

// 长度检查永远先于其他检查：短密码即便同时触发其它规则也只报长度
func TestPasswordShortCircuitOrder(t *testing.T) {
	// 短 + 不一致 → 只报长度
	assert.Equal(t, ErrPasswordTooShort, Password("abc", "xyz", "Jane", "Doe"))
	// "password" 同时不一致 → 报字面量（字面量在前）
	assert.Equal(t, ErrPasswordLiteral, Password("password", "other123", "Jane", "Doe"))
	// 不一致 + 等于名字 → 报不一致
	assert.Equal(t, ErrPasswordMismatch, Password("Janejane", "notsame1", "Janejane", "Doe"))
}

func TestPasswordLengthAlwaysWins(t *testing.T) {
	for _, pw := range []string{"", "a", "abcdef", "pass"} {
		require.Equal(t, ErrPasswordTooShort, Password(pw, pw, "Jane", "Doe"), "pw=%q", pw)
	}
}

func TestEmail(t *testing.T) {
	assert.NoError(t, Email("a@bc"))
	assert.NoError(t, Email("jane.doe@outlook.com"))
	assert.Equal(t, ErrEmailTooShort, Email("c@"))
	assert.Equal(t, ErrEmailTooShort, Email(""))
	assert.Equal(t, ErrEmailTooShort, Email("a@b"))
}

func TestPersonName(t *testing.T) {
	long := strings.Repeat("a", 51)
	tests := []struct {
		name        string
		first, last string
		wantErr     error
	}{
		{"valid", "John", "Power", nil},
		{"empty first", "", "Power", ErrFirstNameLength},
		{"long first", long, "Power", ErrFirstNameLength},
		{"empty last", "John", "", ErrLastNameLength},
		{"long last", "John", long, ErrLastNameLength},
		{"digits in first", "J0hn", "Power", ErrNameNotAlpha},
		{"space in last", "John", "de Vere", ErrNameNotAlpha},
		{"first length beats alpha check", long + "1", "Power", ErrFirstNameLength},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantErr, PersonName(tt.first, tt.last))
		})
	}
}

func TestEntry(t *testing.T) {
	assert.NoError(t, Entry("MATLAB"))
	assert.NoError(t, Entry("R2020b"))
	assert.NoError(t, Entry("x"))
	assert.NoError(t, Entry(strings.Repeat("a", 50)))
	assert.Equal(t, ErrEntryLength, Entry(""))
	assert.Equal(t, ErrEntryLength, Entry(strings.Repeat("a", 51)))
}

func TestPhoneNumber(t *testing.T) {
	assert.NoError(t, PhoneNumber("09876827994"))
	// 长度先查：6 位带字母也只报长度
	assert.Equal(t, ErrPhoneLength, PhoneNumber("098768"))
	assert.Equal(t, ErrPhoneLength, PhoneNumber(""))
	assert.Equal(t, ErrPhoneLength, PhoneNumber("098768279941"))
	assert.Equal(t, ErrPhoneNotNumeric, PhoneNumber("0987682799a"))
	assert.Equal(t, ErrPhoneNotNumeric, PhoneNumber("09876-27994"))
}

func TestPhoneExt(t *testing.T) {
	assert.NoError(t, PhoneExt("1234"))
	assert.Equal(t, ErrPhoneExtLength, PhoneExt("123"))
	assert.Equal(t, ErrPhoneExtLength, PhoneExt("12345"))
	assert.Equal(t, ErrPhoneExtLength, PhoneExt(""))
	assert.Equal(t, ErrPhoneExtNotNumeric, PhoneExt("12a4"))
}

// 文案必须与界面上展示的一字不差
func TestMessages(t *testing.T) {
	assert.EqualError(t, ErrPasswordTooShort, "Password must be at least 7 characters.")
	assert.EqualError(t, ErrEmailTooShort, "Email must be greater than 3 characters.")
	assert.EqualError(t, ErrEntryLength, "Entries must be greater than 1 character and less than 50.")
	assert.EqualError(t, ErrPhoneLength, "Phone number must be 11 digits.")
	assert.EqualError(t, ErrPhoneExtLength, "Phone extension must be 4 digits.")
	assert.EqualError(t, ErrNameNotAlpha, "Names must only contain letters.")
}
