package vet

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/vet-scheduler/internal/auth"
	"github.com/BruksfildServices01/vet-scheduler/internal/domain"
	domainVet "github.com/BruksfildServices01/vet-scheduler/internal/domain/vet"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
	"github.com/BruksfildServices01/vet-scheduler/internal/security"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
)

type LoginVet struct {
	repo   domainVet.Repository
	hasher security.Hasher
	issuer *auth.Issuer
}

func NewLoginVet(
	repo domainVet.Repository,
	hasher security.Hasher,
	issuer *auth.Issuer,
) *LoginVet {
	return &LoginVet{
		repo:   repo,
		hasher: hasher,
		issuer: issuer,
	}
}

func (uc *LoginVet) Execute(ctx context.Context, email, password string) (string, *models.Veterinarian, error) {
	v, err := uc.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil, usecase.InvalidCredentials()
	}
	if err != nil {
		return "", nil, fmt.Errorf("find vet: %w", err)
	}

	if !uc.hasher.Verify(v.PasswordHash, password) {
		return "", nil, usecase.InvalidCredentials()
	}

	token, err := uc.issuer.Issue(v.ID, auth.RoleVet)
	if err != nil {
		return "", nil, err
	}

	return token, v, nil
}
