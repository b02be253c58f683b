package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/vet-scheduler/internal/models"
)

type Repository interface {
	Create(ctx context.Context, ap *models.Appointment) error

	// FindByID carrega também Vet e Pet.
	FindByID(ctx context.Context, id uint) (*models.Appointment, error)

	Update(ctx context.Context, ap *models.Appointment) error
	Delete(ctx context.Context, id uint) error

	// ListForVet devolve as consultas com horário em [start, end), em ordem.
	ListForVet(
		ctx context.Context,
		vetID uint,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)
}
