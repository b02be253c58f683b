package vet

import (
	"strings"

	"github.com/BruksfildServices01/vet-scheduler/internal/httperr"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
	"github.com/BruksfildServices01/vet-scheduler/internal/validators"
)

type Input struct {
	Name      string
	Specialty string
	Email     string
	Password  string
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return httperr.ErrValidation("name_required", "O nome é obrigatório.")
	}
	if strings.TrimSpace(in.Specialty) == "" {
		return httperr.ErrValidation("specialty_required", "A especialidade é obrigatória.")
	}
	if err := validators.ValidateCredentials(in.Email, in.Password); err != nil {
		return usecase.Validation(err)
	}
	return nil
}
