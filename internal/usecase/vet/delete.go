package vet

import (
	"context"

	"github.com/BruksfildServices01/vet-scheduler/internal/audit"
	"github.com/BruksfildServices01/vet-scheduler/internal/cache"
	domainVet "github.com/BruksfildServices01/vet-scheduler/internal/domain/vet"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
)

type DeleteVet struct {
	repo  domainVet.Repository
	cache cache.Cache
	audit *audit.Recorder
}

func NewDeleteVet(
	repo domainVet.Repository,
	c cache.Cache,
	audit *audit.Recorder,
) *DeleteVet {
	return &DeleteVet{
		repo:  repo,
		cache: c,
		audit: audit,
	}
}

func (uc *DeleteVet) Execute(ctx context.Context, id uint) error {
	cascade, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return usecase.NotFound(err, "vet_not_found", "Veterinário não encontrado.")
	}

	usecase.CacheEvict(ctx, uc.cache, cache.VetKey(id))

	uc.audit.Record(ctx, audit.Event{
		Action:   "vet_deleted",
		Entity:   "vet",
		EntityID: &id,
		Metadata: map[string]any{
			"appointment_ids": cascade.AppointmentIDs,
		},
	})

	return nil
}
