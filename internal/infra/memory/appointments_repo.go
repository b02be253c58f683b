package memory

import (
	"context"
	"sort"
	"time"

	"github.com/BruksfildServices01/vet-scheduler/internal/domain"
	"github.com/BruksfildServices01/vet-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
)

type appointmentRepo struct {
	s *Store
}

func (s *Store) Appointments() appointment.Repository {
	return &appointmentRepo{s: s}
}

func (r *appointmentRepo) Create(ctx context.Context, ap *models.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vets[ap.VetID]; !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.pets[ap.PetID]; !ok {
		return domain.ErrNotFound
	}

	r.s.lastAppointmentID++
	now := r.s.now()
	ap.ID = r.s.lastAppointmentID
	ap.CreatedAt = now
	ap.UpdatedAt = now
	r.s.appointments[ap.ID] = stripRelations(*ap)
	return nil
}

func (r *appointmentRepo) FindByID(ctx context.Context, id uint) (*models.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	ap, ok := r.s.appointments[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	r.withRelationsLocked(&ap)
	return &ap, nil
}

func (r *appointmentRepo) Update(ctx context.Context, ap *models.Appointment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.appointments[ap.ID]
	if !ok {
		return domain.ErrNotFound
	}

	current.ScheduledAt = ap.ScheduledAt
	current.Completed = ap.Completed
	current.UpdatedAt = r.s.now()
	r.s.appointments[ap.ID] = current

	ap.UpdatedAt = current.UpdatedAt
	return nil
}

func (r *appointmentRepo) Delete(ctx context.Context, id uint) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.appointments[id]; !ok {
		return domain.ErrNotFound
	}
	delete(r.s.appointments, id)
	return nil
}

func (r *appointmentRepo) ListForVet(
	ctx context.Context,
	vetID uint,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]models.Appointment, 0)
	for _, ap := range r.s.appointments {
		if ap.VetID != vetID || ap.ScheduledAt == nil {
			continue
		}
		if ap.ScheduledAt.Before(start) || !ap.ScheduledAt.Before(end) {
			continue
		}
		r.withRelationsLocked(&ap)
		out = append(out, ap)
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].ScheduledAt.Equal(*out[j].ScheduledAt) {
			return out[i].ID < out[j].ID
		}
		return out[i].ScheduledAt.Before(*out[j].ScheduledAt)
	})
	return out, nil
}

func (r *appointmentRepo) withRelationsLocked(ap *models.Appointment) {
	ap.Vet = r.s.vets[ap.VetID]
	ap.Pet = r.s.pets[ap.PetID]
}

func stripRelations(ap models.Appointment) models.Appointment {
	ap.Vet = models.Veterinarian{}
	ap.Pet = models.Pet{}
	return ap
}
