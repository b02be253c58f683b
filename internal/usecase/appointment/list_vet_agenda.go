package appointment

import (
	"context"
	"fmt"
	"time"

	domainAppointment "github.com/BruksfildServices01/vet-scheduler/internal/domain/appointment"
	domainVet "github.com/BruksfildServices01/vet-scheduler/internal/domain/vet"
	"github.com/BruksfildServices01/vet-scheduler/internal/dto"
	"github.com/BruksfildServices01/vet-scheduler/internal/timezone"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
)

// ListVetAgenda lista as consultas com horário de um veterinário,
// por dia ou por mês, no fuso de referência.
type ListVetAgenda struct {
	repo domainAppointment.Repository
	vets domainVet.Repository
}

func NewListVetAgenda(
	repo domainAppointment.Repository,
	vets domainVet.Repository,
) *ListVetAgenda {
	return &ListVetAgenda{
		repo: repo,
		vets: vets,
	}
}

func (uc *ListVetAgenda) ByDate(
	ctx context.Context,
	vetID uint,
	date time.Time,
) ([]dto.AppointmentListDTO, error) {

	loc := timezone.Location()
	date = date.In(loc)

	start := time.Date(
		date.Year(),
		date.Month(),
		date.Day(),
		0, 0, 0, 0,
		loc,
	)
	end := start.AddDate(0, 0, 1)

	return uc.list(ctx, vetID, start, end)
}

func (uc *ListVetAgenda) ByMonth(
	ctx context.Context,
	vetID uint,
	year int,
	month int,
) ([]dto.AppointmentListDTO, error) {

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, timezone.Location())
	end := start.AddDate(0, 1, 0)

	return uc.list(ctx, vetID, start, end)
}

func (uc *ListVetAgenda) list(
	ctx context.Context,
	vetID uint,
	start time.Time,
	end time.Time,
) ([]dto.AppointmentListDTO, error) {

	if _, err := uc.vets.FindByID(ctx, vetID); err != nil {
		return nil, usecase.NotFound(err, "vet_not_found", "Veterinário não encontrado.")
	}

	appointments, err := uc.repo.ListForVet(ctx, vetID, start, end)
	if err != nil {
		return nil, fmt.Errorf("list vet agenda: %w", err)
	}

	return dto.NewAppointmentList(appointments), nil
}
