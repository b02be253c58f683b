package user

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/vet-scheduler/internal/auth"
	"github.com/BruksfildServices01/vet-scheduler/internal/domain"
	domainUser "github.com/BruksfildServices01/vet-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
	"github.com/BruksfildServices01/vet-scheduler/internal/security"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
)

type LoginUser struct {
	repo   domainUser.Repository
	hasher security.Hasher
	issuer *auth.Issuer
}

func NewLoginUser(
	repo domainUser.Repository,
	hasher security.Hasher,
	issuer *auth.Issuer,
) *LoginUser {
	return &LoginUser{
		repo:   repo,
		hasher: hasher,
		issuer: issuer,
	}
}

func (uc *LoginUser) Execute(ctx context.Context, email, password string) (string, *models.User, error) {
	u, err := uc.repo.FindByEmail(ctx, email)
	if errors.Is(err, domain.ErrNotFound) {
		return "", nil, usecase.InvalidCredentials()
	}
	if err != nil {
		return "", nil, fmt.Errorf("find user: %w", err)
	}

	if !uc.hasher.Verify(u.PasswordHash, password) {
		return "", nil, usecase.InvalidCredentials()
	}

	token, err := uc.issuer.Issue(u.ID, auth.RoleUser)
	if err != nil {
		return "", nil, err
	}

	return token, u, nil
}
