package user

import (
	"context"

	"github.com/BruksfildServices01/vet-scheduler/internal/models"
)

type ListFilter struct {
	// substring de nome ou e-mail, sem diferenciar maiúsculas
	Query string
}

type Repository interface {
	Create(ctx context.Context, u *models.User) error
	FindByID(ctx context.Context, id uint) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)

	// EmailTaken ignora o registro exceptID (0 = nenhum).
	EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error)

	Update(ctx context.Context, u *models.User) error

	// Delete remove o usuário, seus pets e as consultas desses pets.
	Delete(ctx context.Context, id uint) (*models.Cascade, error)

	List(ctx context.Context, f ListFilter) ([]models.User, error)
}
