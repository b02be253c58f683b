package pet

import (
	"context"

	"github.com/BruksfildServices01/vet-scheduler/internal/cache"
	domainPet "github.com/BruksfildServices01/vet-scheduler/internal/domain/pet"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
)

type GetPet struct {
	repo  domainPet.Repository
	cache cache.Cache
}

func NewGetPet(repo domainPet.Repository, c cache.Cache) *GetPet {
	return &GetPet{repo: repo, cache: c}
}

func (uc *GetPet) Execute(ctx context.Context, id uint) (*models.Pet, error) {
	key := cache.PetKey(id)

	var cached models.Pet
	if usecase.CacheGet(ctx, uc.cache, key, &cached) {
		return &cached, nil
	}

	p, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, usecase.NotFound(err, "pet_not_found", "Pet não encontrado.")
	}

	usecase.CacheSet(ctx, uc.cache, key, p)
	return p, nil
}
