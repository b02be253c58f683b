package pet

import (
	"context"

	"github.com/BruksfildServices01/vet-scheduler/internal/models"
)

type ListFilter struct {
	OwnerID *uint
	Species string
}

type Repository interface {
	Create(ctx context.Context, p *models.Pet) error
	FindByID(ctx context.Context, id uint) (*models.Pet, error)
	Update(ctx context.Context, p *models.Pet) error

	// Delete remove o pet e as consultas dele.
	Delete(ctx context.Context, id uint) (*models.Cascade, error)

	List(ctx context.Context, f ListFilter) ([]models.Pet, error)
}
