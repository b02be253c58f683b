package vet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/vet-scheduler/internal/audit"
	"github.com/BruksfildServices01/vet-scheduler/internal/cache"
	"github.com/BruksfildServices01/vet-scheduler/internal/domain"
	domainVet "github.com/BruksfildServices01/vet-scheduler/internal/domain/vet"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
	"github.com/BruksfildServices01/vet-scheduler/internal/security"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
)

type UpdateVet struct {
	repo   domainVet.Repository
	hasher security.Hasher
	cache  cache.Cache
	audit  *audit.Recorder
}

func NewUpdateVet(
	repo domainVet.Repository,
	hasher security.Hasher,
	c cache.Cache,
	audit *audit.Recorder,
) *UpdateVet {
	return &UpdateVet{
		repo:   repo,
		hasher: hasher,
		cache:  c,
		audit:  audit,
	}
}

func (uc *UpdateVet) Execute(ctx context.Context, id uint, in Input) (*models.Veterinarian, error) {
	v, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, usecase.NotFound(err, "vet_not_found", "Veterinário não encontrado.")
	}

	if err := in.validate(); err != nil {
		return nil, err
	}

	taken, err := uc.repo.EmailTaken(ctx, in.Email, id)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, usecase.EmailTaken()
	}

	hash, err := uc.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	v.Name = strings.TrimSpace(in.Name)
	v.Specialty = strings.TrimSpace(in.Specialty)
	v.Email = in.Email
	v.PasswordHash = hash

	if err := uc.repo.Update(ctx, v); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, usecase.EmailTaken()
		}
		return nil, usecase.NotFound(err, "vet_not_found", "Veterinário não encontrado.")
	}

	usecase.CacheDelete(ctx, uc.cache, cache.VetKey(id))

	uc.audit.Record(ctx, audit.Event{
		Action:   "vet_updated",
		Entity:   "vet",
		EntityID: &v.ID,
	})

	return v, nil
}
