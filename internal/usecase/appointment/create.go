package appointment

import (
	"context"
	"errors"
	"fmt"

	"github.com/BruksfildServices01/vet-scheduler/internal/audit"
	"github.com/BruksfildServices01/vet-scheduler/internal/domain"
	domainAppointment "github.com/BruksfildServices01/vet-scheduler/internal/domain/appointment"
	domainPet "github.com/BruksfildServices01/vet-scheduler/internal/domain/pet"
	domainUser "github.com/BruksfildServices01/vet-scheduler/internal/domain/user"
	domainVet "github.com/BruksfildServices01/vet-scheduler/internal/domain/vet"
	"github.com/BruksfildServices01/vet-scheduler/internal/httperr"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
	"github.com/BruksfildServices01/vet-scheduler/internal/usecase"
)

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	UserID uint
	VetID  uint
	PetID  uint
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domainAppointment.Repository
	users domainUser.Repository
	vets  domainVet.Repository
	pets  domainPet.Repository
	audit *audit.Recorder
}

func NewCreateAppointment(
	repo domainAppointment.Repository,
	users domainUser.Repository,
	vets domainVet.Repository,
	pets domainPet.Repository,
	audit *audit.Recorder,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		users: users,
		vets:  vets,
		pets:  pets,
		audit: audit,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Usuário
	// --------------------------------------------------
	if _, err := uc.users.FindByID(ctx, in.UserID); err != nil {
		return nil, usecase.NotFound(err, "user_not_found", "Usuário não encontrado.")
	}

	// --------------------------------------------------
	// 2️⃣ Veterinário
	// --------------------------------------------------
	vet, err := uc.vets.FindByID(ctx, in.VetID)
	if err != nil {
		return nil, usecase.NotFound(err, "vet_not_found", "Veterinário não encontrado.")
	}

	// --------------------------------------------------
	// 3️⃣ Pet (precisa ser do usuário)
	// --------------------------------------------------
	pet, err := uc.pets.FindByID(ctx, in.PetID)
	if err != nil {
		return nil, usecase.NotFound(err, "pet_not_found", "Pet não encontrado.")
	}
	if pet.OwnerID != in.UserID {
		return nil, httperr.ErrNotFound("pet_not_found", "Pet não encontrado para este usuário.")
	}

	// --------------------------------------------------
	// 4️⃣ Criação (sem horário, não realizada)
	// --------------------------------------------------
	ap := &models.Appointment{
		VetID:     vet.ID,
		PetID:     pet.ID,
		Completed: false,
	}

	if err := uc.repo.Create(ctx, ap); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, httperr.ErrNotFound("pet_not_found", "Pet não encontrado.")
		}
		return nil, fmt.Errorf("create appointment: %w", err)
	}

	ap.Vet = *vet
	ap.Pet = *pet

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Record(ctx, audit.Event{
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
		Metadata: map[string]any{
			"user_id": in.UserID,
			"vet_id":  vet.ID,
			"pet_id":  pet.ID,
		},
	})

	return ap, nil
}
