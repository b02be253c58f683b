package appointment

import (
	"context"

	domainAppointment "github.com/BruksfildServices01/vet-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
)

type GetAppointment struct {
	repo domainAppointment.Repository
}

func NewGetAppointment(repo domainAppointment.Repository) *GetAppointment {
	return &GetAppointment{repo: repo}
}

func (uc *GetAppointment) Execute(ctx context.Context, id uint) (*models.Appointment, error) {
	ap, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, usecase.NotFound(err, "appointment_not_found", "Consulta não encontrada.")
	}
	return ap, nil
}
