package pet

import (
	"strings"

	"github.com/BruksfildServices01/vet-scheduler/internal/httperr"
)

type Input struct {
	Name    string
	Species string
	// nil quando o campo não veio na requisição
	Age     *int
	OwnerID uint
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Name) == "" {
		return httperr.ErrValidation("pet_name_required", "O nome do pet é obrigatório.")
	}
	if strings.TrimSpace(in.Species) == "" {
		return httperr.ErrValidation("pet_species_required", "A espécie do pet é obrigatória.")
	}
	if in.Age == nil {
		return httperr.ErrValidation("pet_age_required", "A idade do pet é obrigatória.")
	}
	if *in.Age < 0 {
		return httperr.ErrValidation("pet_age_negative", "A idade do pet não pode ser negativa.")
	}
	return nil
}

func ownerNotFound() error {
	return httperr.ErrNotFound("owner_not_found", "Dono não encontrado.")
}
