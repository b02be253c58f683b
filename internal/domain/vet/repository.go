package vet

import (
	"context"

	"github.com/BruksfildServices01/vet-scheduler/internal/models"
)

type Repository interface {
	Create(ctx context.Context, v *models.Veterinarian) error
	FindByID(ctx context.Context, id uint) (*models.Veterinarian, error)
	FindByEmail(ctx context.Context, email string) (*models.Veterinarian, error)
	EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error)
	Update(ctx context.Context, v *models.Veterinarian) error

	// Delete remove o veterinário e as consultas dele.
	Delete(ctx context.Context, id uint) (*models.Cascade, error)
}
