// Package validate 是纯函数规则集：只看输入，不查库。
// 规则按固定顺序短路，第一条不过的检查决定返回的提示文案。
// 唯一性（邮箱/名称已存在）属于持久层职责，不在这里。
package validate

import (
	"errors"
	"strings"
	"unicode"
)

var (
	ErrPasswordTooShort   = errors.New("Password must be at least 7 characters.")
	ErrPasswordLiteral    = errors.New(`Password cannot be "password".`)
	ErrPasswordMismatch   = errors.New("Passwords don't match.")
	ErrPasswordIsName     = errors.New("Password cannot be your first or last name.")
	ErrEmailTooShort      = errors.New("Email must be greater than 3 characters.")
	ErrFirstNameLength    = errors.New("First name must be less than 50 characters and greater than 0")
	ErrLastNameLength     = errors.New("Last name must be less than 50 characters and greater than 0.")
	ErrNameNotAlpha       = errors.New("Names must only contain letters.")
	ErrEntryLength        = errors.New("Entries must be greater than 1 character and less than 50.")
	ErrPhoneLength        = errors.New("Phone number must be 11 digits.")
	ErrPhoneNotNumeric    = errors.New("Phone number must only contain numbers.")
	ErrPhoneExtLength     = errors.New("Phone extension must be 4 digits.")
	ErrPhoneExtNotNumeric = errors.New("Phone extension must only contain numbers.")
)

// Password 顺序：长度 → 字面 "password" → 两次输入一致 → 不得等于姓名
func Password(password, confirm, firstName, lastName string) error {
	switch {
	case len(password) < 7:
		return ErrPasswordTooShort
	case strings.EqualFold(password, "password"):
		return ErrPasswordLiteral
	case password != confirm:
		return ErrPasswordMismatch
	case strings.EqualFold(password, firstName) || strings.EqualFold(password, lastName):
		return ErrPasswordIsName
	}
	return nil
}

func Email(email string) error {
	if len(email) < 4 {
		return ErrEmailTooShort
	}
	return nil
}

// PersonName 顺序：名长度 → 姓长度 → 均为字母
func PersonName(firstName, lastName string) error {
	switch {
	case len(firstName) < 1 || len(firstName) > 50:
		return ErrFirstNameLength
	case len(lastName) < 1 || len(lastName) > 50:
		return ErrLastNameLength
	case !isAlpha(firstName) || !isAlpha(lastName):
		return ErrNameNotAlpha
	}
	return nil
}

// Entry 通用条目（软件名/版本/厂商名），1~50 字符
func Entry(entry string) error {
	if len(entry) < 1 || len(entry) > 50 {
		return ErrEntryLength
	}
	return nil
}

// PhoneNumber 先查长度再查字符
func PhoneNumber(phone string) error {
	switch {
	case len(phone) != 11:
		return ErrPhoneLength
	case !isNumeric(phone):
		return ErrPhoneNotNumeric
	}
	return nil
}

func PhoneExt(ext string) error {
	switch {
	case len(ext) != 4:
		return ErrPhoneExtLength
	case !isNumeric(ext):
		return ErrPhoneExtNotNumeric
	}
	return nil
}

func isAlpha(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

func isNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
