package validators

import (
	"strings"
	"unicode/utf8"
)

const (
	passwordMinLength = 7
	passwordMaxLength = 200
)

const (
	passwordSpecials = `!@#$%&*-+()<>|\=`
	upperAlphabet    = "ABCDEFGHIKLMNOPQRSTUVWXYZÇ"
	lowerAlphabet    = "abcdefghiklmnopqrstuvwxyzç"
)

var (
	ErrPasswordTooShort = &Violation{
		Field:   "password",
		Code:    "password_too_short",
		Message: "Sua senha deve conter no mínimo 7 caracteres.",
	}
	ErrPasswordTooLong = &Violation{
		Field:   "password",
		Code:    "password_too_long",
		Message: "Sua senha deve conter no máximo 200 caracteres.",
	}
	ErrPasswordWeak = &Violation{
		Field:   "password",
		Code:    "password_weak",
		Message: "Sua senha deve conter caracteres especiais, maiúsculas e minúsculas.",
	}
)

// ValidatePassword aplica as regras de senha na ordem; a primeira falha vence.
func ValidatePassword(password string) error {
	n := utf8.RuneCountInString(password)
	if n < passwordMinLength {
		return ErrPasswordTooShort
	}
	if n > passwordMaxLength {
		return ErrPasswordTooLong
	}

	if !strings.ContainsAny(password, passwordSpecials) ||
		!strings.ContainsAny(password, upperAlphabet) ||
		!strings.ContainsAny(password, lowerAlphabet) {
		return ErrPasswordWeak
	}

	return nil
}
