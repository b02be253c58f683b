package user

import (
	"strings"

	"github.com/BruksfildServices01/vet-scheduler/internal/httperr"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
	"github.com/BruksfildServices01/vet-scheduler/internal/validators"
)

// Input é usado tanto na criação quanto na atualização (sem PATCH).
type Input struct {
	Name     string
	Email    string
	Password string
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return httperr.ErrValidation("name_required", "O nome é obrigatório.")
	}
	if err := validators.ValidateCredentials(in.Email, in.Password); err != nil {
		return usecase.Validation(err)
	}
	return nil
}
