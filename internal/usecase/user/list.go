package user

import (
	"context"
	"fmt"

	domainUser "github.com/BruksfildServices01/vet-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
)

type ListUsers struct {
	repo domainUser.Repository
}

func NewListUsers(repo domainUser.Repository) *ListUsers {
	return &ListUsers{repo: repo}
}

func (uc *ListUsers) Execute(ctx context.Context, query string) ([]models.User, error) {
	users, err := uc.repo.List(ctx, domainUser.ListFilter{Query: query})
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	return users, nil
}
