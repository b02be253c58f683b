package vet

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/vet-scheduler/internal/audit"
	"github.com/BruksfildServices01/vet-scheduler/internal/domain"
	domainVet "github.com/BruksfildServices01/vet-scheduler/internal/domain/vet"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
	"github.com/BruksfildServices01/vet-scheduler/internal/security"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
)

type CreateVet struct {
	repo   domainVet.Repository
	hasher security.Hasher
	audit  *audit.Recorder
}

func NewCreateVet(
	repo domainVet.Repository,
	hasher security.Hasher,
	audit *audit.Recorder,
) *CreateVet {
	return &CreateVet{
		repo:   repo,
		hasher: hasher,
		audit:  audit,
	}
}

func (uc *CreateVet) Execute(ctx context.Context, in Input) (*models.Veterinarian, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	taken, err := uc.repo.EmailTaken(ctx, in.Email, 0)
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

	v := &models.Veterinarian{
		Name:         strings.TrimSpace(in.Name),
		Specialty:    strings.TrimSpace(in.Specialty),
		Email:        in.Email,
		PasswordHash: hash,
	}

	if err := uc.repo.Create(ctx, v); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, usecase.EmailTaken()
		}
		return nil, fmt.Errorf("create vet: %w", err)
	}

	uc.audit.Record(ctx, audit.Event{
		Action:   "vet_created",
		Entity:   "vet",
		EntityID: &v.ID,
	})

	return v, nil
}
