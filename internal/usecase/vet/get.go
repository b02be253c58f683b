package vet

import (
	"context"

	"github.com/BruksfildServices01/vet-scheduler/internal/cache"
	domainVet "github.com/BruksfildServices01/vet-scheduler/internal/domain/vet"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
)

type GetVet struct {
	repo  domainVet.Repository
	cache cache.Cache
}

func NewGetVet(repo domainVet.Repository, c cache.Cache) *GetVet {
	return &GetVet{repo: repo, cache: c}
}

func (uc *GetVet) Execute(ctx context.Context, id uint) (*models.Veterinarian, error) {
	key := cache.VetKey(id)

	var cached models.Veterinarian
	if usecase.CacheGet(ctx, uc.cache, key, &cached) {
		return &cached, nil
	}

	v, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, usecase.NotFound(err, "vet_not_found", "Veterinário não encontrado.")
	}

	usecase.CacheSet(ctx, uc.cache, key, v)
	return v, nil
}
