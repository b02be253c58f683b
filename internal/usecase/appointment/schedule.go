package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/vet-scheduler/internal/audit"
	domainAppointment "github.com/BruksfildServices01/vet-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/vet-scheduler/internal/httperr"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
	"github.com/BruksfildServices01/vet-scheduler/internal/timezone"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
)

type ScheduleAppointment struct {
	repo  domainAppointment.Repository
	audit *audit.Recorder
	now   func() time.Time
}

func NewScheduleAppointment(
	repo domainAppointment.Repository,
	audit *audit.Recorder,
) *ScheduleAppointment {
	return &ScheduleAppointment{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

// Execute aceita RFC 3339 ou "YYYY-MM-DD HH:MM" no fuso de referência.
func (uc *ScheduleAppointment) Execute(
	ctx context.Context,
	id uint,
	scheduledTime string,
) (*models.Appointment, error) {

	at, err := timezone.ParseDateTime(scheduledTime)
	if err != nil {
		return nil, httperr.ErrValidation("invalid_scheduled_time", "Data e hora da consulta inválidas.")
	}

	ap, err := uc.repo.FindByID(ctx, id)
	if err != nil {
		return nil, usecase.NotFound(err, "appointment_not_found", "Consulta não encontrada.")
	}

	domainAppointment.Schedule(ap, at, uc.now())

	if err := uc.repo.Update(ctx, ap); err != nil {
		return nil, usecase.NotFound(err, "appointment_not_found", "Consulta não encontrada.")
	}

	uc.audit.Record(ctx, audit.Event{
		Action:   "appointment_scheduled",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"scheduled_time": ap.ScheduledAt,
			"completed":      ap.Completed,
		},
	})

	return ap, nil
}
