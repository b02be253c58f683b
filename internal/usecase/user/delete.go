package user

import (
	"context"

	"github.com/BruksfildServices01/vet-scheduler/internal/audit"
	"github.com/BruksfildServices01/vet-scheduler/internal/cache"
	domainUser "github.com/BruksfildServices01/vet-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
)

type DeleteUser struct {
	repo  domainUser.Repository
	cache cache.Cache
	audit *audit.Recorder
}

func NewDeleteUser(
	repo domainUser.Repository,
	c cache.Cache,
	audit *audit.Recorder,
) *DeleteUser {
	return &DeleteUser{
		repo:  repo,
		cache: c,
		audit: audit,
	}
}

// Execute remove o usuário junto com os pets e as consultas deles.
func (uc *DeleteUser) Execute(ctx context.Context, id uint) error {
	cascade, err := uc.repo.Delete(ctx, id)
	if err != nil {
		return usecase.NotFound(err, "user_not_found", "Usuário não encontrado.")
	}

	keys := append([]string{cache.UserKey(id)}, cache.PetKeys(cascade.PetIDs)...)
	usecase.CacheEvict(ctx, uc.cache, keys...)

	uc.audit.Record(ctx, audit.Event{
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &id,
		Metadata: map[string]any{
			"pet_ids":         cascade.PetIDs,
			"appointment_ids": cascade.AppointmentIDs,
		},
	})

	return nil
}
