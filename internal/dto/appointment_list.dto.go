package dto

import (
	"time"

	domain "github.com/BruksfildServices01/vet-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
)

// AppointmentDTO é a visão de leitura de uma consulta.
type AppointmentDTO struct {
	ID            uint       `json:"id"`
	ScheduledTime *time.Time `json:"scheduled_time"`
	Completed     bool       `json:"completed"`
	VetID         uint       `json:"vet_id"`
	VetName       string     `json:"vet_name"`
	PetID         uint       `json:"pet_id"`
	PetName       string     `json:"pet_name"`
}

// AppointmentListDTO é a linha da agenda do veterinário.
type AppointmentListDTO struct {
	ID            uint       `json:"id"`
	ScheduledTime *time.Time `json:"scheduled_time"`
	Completed     bool       `json:"completed"`
	Status        string     `json:"status"`
	PetID         uint       `json:"pet_id"`
	PetName       string     `json:"pet_name"`
	OwnerID       uint       `json:"owner_id"`
}

func NewAppointment(ap *models.Appointment) AppointmentDTO {
	return AppointmentDTO{
		ID:            ap.ID,
		ScheduledTime: ap.ScheduledAt,
		Completed:     ap.Completed,
		VetID:         ap.VetID,
		VetName:       ap.Vet.Name,
		PetID:         ap.PetID,
		PetName:       ap.Pet.Name,
	}
}

func NewAppointmentList(aps []models.Appointment) []AppointmentListDTO {
	out := make([]AppointmentListDTO, 0, len(aps))
	for i := range aps {
		ap := &aps[i]
		out = append(out, AppointmentListDTO{
			ID:            ap.ID,
			ScheduledTime: ap.ScheduledAt,
			Completed:     ap.Completed,
			Status:        string(domain.StatusOf(ap)),
			PetID:         ap.PetID,
			PetName:       ap.Pet.Name,
			OwnerID:       ap.Pet.OwnerID,
		})
	}
	return out
}
