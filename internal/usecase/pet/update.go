package pet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/vet-scheduler/internal/audit"
	"github.com/BruksfildServices01/vet-scheduler/internal/cache"
	"github.com/BruksfildServices01/vet-scheduler/internal/domain"
	domainPet "github.com/BruksfildServices01/vet-scheduler/internal/domain/pet"
	domainUser "github.com/BruksfildServices01/vet-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
)

type UpdatePet struct {
	repo  domainPet.Repository
	users domainUser.Repository
	cache cache.Cache
	audit *audit.Recorder
}

func NewUpdatePet(
	repo domainPet.Repository,
	users domainUser.Repository,
	c cache.Cache,
	audit *audit.Recorder,
) *UpdatePet {
	return &UpdatePet{
		repo:  repo,
		users: users,
		cache: c,
		audit: audit,
	}
}

func (uc *UpdatePet) Execute(ctx context.Context, id uint, in Input) (*models.Pet, error) {
	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, usecase.NotFound(err, "pet_not_found", "Pet não encontrado.")
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	if _, err := uc.users.FindByID(ctx, in.OwnerID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ownerNotFound()
		}
		return nil, fmt.Errorf("find owner: %w", err)
	}

	p.Name = strings.TrimSpace(in.Name)
	p.Species = strings.TrimSpace(in.Species)
	p.Age = *in.Age
	p.OwnerID = in.OwnerID

	if err := uc.repo.Update(ctx, p); err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			return nil, fmt.Errorf("update pet: %w", err)
		}
		// o tutor pode ter sido removido depois da checagem acima (FK 23503)
		if _, ferr := uc.repo.FindByID(ctx, id); ferr == nil {
			return nil, ownerNotFound()
		}
		return nil, usecase.NotFound(err, "pet_not_found", "Pet não encontrado.")
	}

	usecase.CacheDelete(ctx, uc.cache, cache.PetKey(id))

	uc.audit.Record(ctx, audit.Event{
		Action:   "pet_updated",
		Entity:   "pet",
		EntityID: &p.ID,
	})

	return p, nil
}
