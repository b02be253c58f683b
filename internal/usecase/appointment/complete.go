package appointment

import (
	"context"

	"github.com/BruksfildServices01/vet-scheduler/internal/audit"
	domainAppointment "github.com/BruksfildServices01/vet-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
)

type CompleteAppointment struct {
	repo  domainAppointment.Repository
	audit *audit.Recorder
}

func NewCompleteAppointment(
	repo domainAppointment.Repository,
	audit *audit.Recorder,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

// Execute grava a marcação explícita, que vale até o próximo agendamento.
func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	id uint,
	completed bool,
) (*models.Appointment, error) {

	ap, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, usecase.NotFound(err, "appointment_not_found", "Consulta não encontrada.")
	}

	domainAppointment.MarkCompleted(ap, completed)

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, usecase.NotFound(err, "appointment_not_found", "Consulta não encontrada.")
	}

	uc.audit.Record(ctx, audit.Event{
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{"completed": completed},
	})

	return ap, nil
}
