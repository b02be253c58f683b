package pet

import (
	"context"

	"github.com/BruksfildServices01/vet-scheduler/internal/audit"
	"github.com/BruksfildServices01/vet-scheduler/internal/cache"
	domainPet "github.com/BruksfildServices01/vet-scheduler/internal/domain/pet"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
)

type DeletePet struct {
	repo  domainPet.Repository
	cache cache.Cache
	audit *audit.Recorder
}

func NewDeletePet(
	repo domainPet.Repository,
	c cache.Cache,
	audit *audit.Recorder,
) *DeletePet {
	return &DeletePet{
		repo:  repo,
		cache: c,
		audit: audit,
	}
}

func (uc *DeletePet) Execute(ctx context.Context, id uint) error {
	cascade, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return usecase.NotFound(err, "pet_not_found", "Pet não encontrado.")
	}

	usecase.CacheEvict(ctx, uc.cache, cache.PetKey(id))

	uc.audit.Record(ctx, audit.Event{
		Action:   "pet_deleted",
		Entity:   "pet",
		EntityID: &id,
		Metadata: map[string]any{
			"appointment_ids": cascade.AppointmentIDs,
		},
	})

	return nil
}
