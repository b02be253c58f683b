package pet

import (
	"context"
	"fmt"

	domainPet "github.com/BruksfildServices01/vet-scheduler/internal/domain/pet"
	domainUser "github.com/BruksfildServices01/vet-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
)

type ListPets struct {
	repo  domainPet.Repository
	users domainUser.Repository
}

func NewListPets(repo domainPet.Repository, users domainUser.Repository) *ListPets {
	return &ListPets{repo: repo, users: users}
}

func (uc *ListPets) Execute(ctx context.Context, f domainPet.ListFilter) ([]models.Pet, error) {
	pets, err := uc.repo.List(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("list pets: %w", err)
	}
	return pets, nil
}

// ByOwner lista os pets de um usuário; 404 quando o usuário não existe.
func (uc *ListPets) ByOwner(ctx context.Context, ownerID uint) ([]models.Pet, error) {
	if _, err := uc.users.FindByID(ctx, ownerID); err != nil {
		return nil, usecase.NotFound(err, "user_not_found", "Usuário não encontrado.")
	}
	return uc.Execute(ctx, domainPet.ListFilter{OwnerID: &ownerID})
}
