package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/BruksfildServices01/vet-scheduler/internal/audit"
	"github.com/BruksfildServices01/vet-scheduler/internal/domain"
	domainUser "github.com/BruksfildServices01/vet-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
	"github.com/BruksfildServices01/vet-scheduler/internal/security"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
)

type CreateUser struct {
	repo   domainUser.Repository
	hasher security.Hasher
	audit  *audit.Recorder
}

func NewCreateUser(
	repo domainUser.Repository,
	hasher security.Hasher,
	audit *audit.Recorder,
) *CreateUser {
	return &CreateUser{
		repo:   repo,
		hasher: hasher,
		audit:  audit,
	}
}

func (uc *CreateUser) Execute(ctx context.Context, in Input) (*models.User, error) {
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

	u := &models.User{
		Name:         strings.TrimSpace(in.Name),
		Email:        in.Email,
		PasswordHash: hash,
	}

	if err := uc.repo.Create(ctx, u); err != nil {
		// corrida entre EmailTaken e o insert cai no índice único
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, usecase.EmailTaken()
		}
		return nil, fmt.Errorf("create user: %w", err)
	}

	uc.audit.Record(ctx, audit.Event{
		Action:   "user_created",
		Entity:   "user",
		EntityID: &u.ID,
	})

	return u, nil
}
