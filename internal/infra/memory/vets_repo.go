package memory

import (
	"context"
	"strings"

	"github.com/BruksfildServices01/vet-scheduler/internal/domain"
	"github.com/BruksfildServices01/vet-scheduler/internal/domain/vet"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
)

type vetRepo struct {
	s *Store
}

func (s *Store) Vets() vet.Repository {
	return &vetRepo{s: s}
}

func (r *vetRepo) Create(ctx context.Context, v *models.Veterinarian) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.emailTakenLocked(v.Email, 0) {
		return domain.ErrDuplicate
	}

	r.s.lastVetID++
	now := r.s.now()
	v.ID = r.s.lastVetID
	v.CreatedAt = now
	v.UpdatedAt = now
	r.s.vets[v.ID] = *v
	return nil
}

func (r *vetRepo) FindByID(ctx context.Context, id uint) (*models.Veterinarian, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	v, ok := r.s.vets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &v, nil
}

func (r *vetRepo) FindByEmail(ctx context.Context, email string) (*models.Veterinarian, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, v := range r.s.vets {
		if strings.EqualFold(v.Email, email) {
			return &v, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *vetRepo) EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.emailTakenLocked(email, exceptID), nil
}

func (r *vetRepo) emailTakenLocked(email string, exceptID uint) bool {
	for id, v := range r.s.vets {
		if id != exceptID && strings.EqualFold(v.Email, email) {
			return true
		}
	}
	return false
}

func (r *vetRepo) Update(ctx context.Context, v *models.Veterinarian) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.vets[v.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if r.emailTakenLocked(v.Email, v.ID) {
		return domain.ErrDuplicate
	}

	current.Name = v.Name
	current.Specialty = v.Specialty
	current.Email = v.Email
	current.PasswordHash = v.PasswordHash
	current.UpdatedAt = r.s.now()
	r.s.vets[v.ID] = current

	*v = current
	return nil
}

func (r *vetRepo) Delete(ctx context.Context, id uint) (*models.Cascade, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.vets[id]; !ok {
		return nil, domain.ErrNotFound
	}

	var apIDs []uint
	for aid, ap := range r.s.appointments {
		if ap.VetID == id {
			apIDs = append(apIDs, aid)
		}
	}

	out := &models.Cascade{}
	r.s.deleteAppointmentsLocked(apIDs, out)
	delete(r.s.vets, id)
	return out, nil
}
