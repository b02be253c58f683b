package validators

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

const (
	emailForbiddenChars = `&='-+,<>~!$%^*}{?¨|/\][;`
	emailMinLocalLength = 3
	emailMaxLength      = 64
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z-.]{3,}$`)

var (
	ErrEmailForbiddenChar = &Violation{
		Field:   "email",
		Code:    "email_forbidden_char",
		Message: "Caractere não permitido na composição do e-mail.",
	}
	ErrEmailConsecutiveDots = &Violation{
		Field:   "email",
		Code:    "email_consecutive_dots",
		Message: "Um e-mail não pode ter dois pontos consecutivos.",
	}
	ErrEmailSpace = &Violation{
		Field:   "email",
		Code:    "email_space",
		Message: "Espaços não são permitidos na composição do e-mail.",
	}
	ErrEmailMissingAt = &Violation{
		Field:   "email",
		Code:    "email_missing_at",
		Message: "@ é obrigatório no e-mail.",
	}
	ErrEmailLocalTooShort = &Violation{
		Field:   "email",
		Code:    "email_local_too_short",
		Message: "O e-mail deve ter no mínimo 3 caracteres antes do @.",
	}
	ErrEmailTooLong = &Violation{
		Field:   "email",
		Code:    "email_too_long",
		Message: "O e-mail deve ter no máximo 64 caracteres.",
	}
	ErrEmailDomainWithoutDot = &Violation{
		Field:   "email",
		Code:    "email_domain_without_dot",
		Message: "Domínio inválido: ele deve conter pelo menos 1 ponto.",
	}
	ErrEmailInvalidPattern = &Violation{
		Field:   "email",
		Code:    "email_invalid_pattern",
		Message: "Padrão de e-mail incorreto.",
	}
)

// ValidateEmail verifica a sintaxe do e-mail sem nenhuma consulta de rede.
func ValidateEmail(email string) error {
	switch {
	case strings.ContainsAny(email, emailForbiddenChars):
		return ErrEmailForbiddenChar
	case strings.Contains(email, ".."):
		return ErrEmailConsecutiveDots
	case strings.Contains(email, " "):
		return ErrEmailSpace
	}

	local, domain, found := strings.Cut(email, "@")
	if !found {
		return ErrEmailMissingAt
	}
	if utf8.RuneCountInString(local) < emailMinLocalLength {
		return ErrEmailLocalTooShort
	}
	if utf8.RuneCountInString(email) > emailMaxLength {
		return ErrEmailTooLong
	}
	if !strings.Contains(domain, ".") {
		return ErrEmailDomainWithoutDot
	}
	if !emailPattern.MatchString(email) {
		return ErrEmailInvalidPattern
	}

	return nil
}
