package appointment

import (
	"context"

	"github.com/BruksfildServices01/vet-scheduler/internal/audit"
	domainAppointment "github.com/BruksfildServices01/vet-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
)

type DeleteAppointment struct {
	repo  domainAppointment.Repository
	audit *audit.Recorder
}

func NewDeleteAppointment(
	repo domainAppointment.Repository,
	audit *audit.Recorder,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DeleteAppointment) Execute(ctx context.Context, id uint) error {
	if err := uc.repo.Delete(ctx, id); err != nil {
		return usecase.NotFound(err, "appointment_not_found", "Consulta não encontrada.")
	}

	uc.audit.Record(ctx, audit.Event{
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &id,
	})

	return nil
}
