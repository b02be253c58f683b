package pet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/vet-scheduler/internal/audit"
	"github.com/BruksfildServices01/vet-scheduler/internal/domain"
	domainPet "github.com/BruksfildServices01/vet-scheduler/internal/domain/pet"
	domainUser "github.com/BruksfildServices01/vet-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
)

type CreatePet struct {
	repo  domainPet.Repository
	users domainUser.Repository
	audit *audit.Recorder
}

func NewCreatePet(
	repo domainPet.Repository,
	users domainUser.Repository,
	audit *audit.Recorder,
) *CreatePet {
	return &CreatePet{
		repo:  repo,
		users: users,
		audit: audit,
	}
}

func (uc *CreatePet) Execute(ctx context.Context, in Input) (*models.Pet, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	if _, err := uc.users.FindByID(ctx, in.OwnerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ownerNotFound()
		}
		return nil, fmt.Errorf("find owner: %w", err)
	}

	p := &models.Pet{
		Name:    strings.TrimSpace(in.Name),
		Species: strings.TrimSpace(in.Species),
		Age:     *in.Age,
		OwnerID: in.OwnerID,
	}

	if err := uc.repo.Create(ctx, p); err != nil {
		// dono removido entre a checagem e o insert
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ownerNotFound()
		}
		return nil, fmt.Errorf("create pet: %w", err)
	}

	uc.audit.Record(ctx, audit.Event{
		Action:   "pet_created",
		Entity:   "pet",
		EntityID: &p.ID,
		Metadata: map[string]any{"owner_id": p.OwnerID},
	})

	return p, nil
}
