package validators

// Violation descreve a primeira regra que um valor de entrada quebrou.
type Violation struct {
	Field   string
	Code    string
	Message string
}

func (v *Violation) Error() string {
	return v.Code
}

// ValidateCredentials roda o validador de e-mail e depois o de senha,
// devolvendo a primeira violação encontrada.
func ValidateCredentials(email, password string) error {
	if err := ValidateEmail(email); err != nil {
		return err
	}
	return ValidatePassword(password)
}
