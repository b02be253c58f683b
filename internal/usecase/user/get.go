package user

import (
	"context"

	"github.com/BruksfildServices01/vet-scheduler/internal/cache"
	domainUser "github.com/BruksfildServices01/vet-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
)

type GetUser struct {
	repo  domainUser.Repository
	cache cache.Cache
}

func NewGetUser(repo domainUser.Repository, c cache.Cache) *GetUser {
	return &GetUser{repo: repo, cache: c}
}

func (uc *GetUser) Execute(ctx context.Context, id uint) (*models.User, error) {
	key := cache.UserKey(id)

	var cached models.User
	if usecase.CacheGet(ctx, uc.cache, key, &cached) {
		return &cached, nil
	}

	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, usecase.NotFound(err, "user_not_found", "Usuário não encontrado.")
	}

	usecase.CacheSet(ctx, uc.cache, key, u)
	return u, nil
}
