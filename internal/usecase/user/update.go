package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/vet-scheduler/internal/audit"
	"github.com/BruksfildServices01/vet-scheduler/internal/cache"
	"github.com/BruksfildServices01/vet-scheduler/internal/domain"
	domainUser "github.com/BruksfildServices01/vet-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
	"github.com/BruksfildServices01/vet-scheduler/internal/security"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
)

type UpdateUser struct {
	repo   domainUser.Repository
	hasher security.Hasher
	cache  cache.Cache
	audit  *audit.Recorder
}

func NewUpdateUser(
	repo domainUser.Repository,
	hasher security.Hasher,
	c cache.Cache,
	audit *audit.Recorder,
) *UpdateUser {
	return &UpdateUser{
		repo:   repo,
		hasher: hasher,
		cache:  c,
		audit:  audit,
	}
}

func (uc *UpdateUser) Execute(ctx context.Context, id uint, in Input) (*models.User, error) {
	u, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, usecase.NotFound(err, "user_not_found", "Usuário não encontrado.")
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

	u.Name = strings.TrimSpace(in.Name)
	u.Email = in.Email
	u.PasswordHash = hash

	if err := uc.repo.Update(ctx, u); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, usecase.EmailTaken()
		}
		return nil, usecase.NotFound(err, "user_not_found", "Usuário não encontrado.")
	}

	usecase.CacheDelete(ctx, uc.cache, cache.UserKey(id))

	uc.audit.Record(ctx, audit.Event{
		Action:   "user_updated",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return u, nil
}
