package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/BruksfildServices01/vet-scheduler/internal/domain"
	"github.com/BruksfildServices01/vet-scheduler/internal/domain/pet"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
)

type petRepo struct {
	s *Store
}

func (s *Store) Pets() pet.Repository {
	return &petRepo{s: s}
}

func (r *petRepo) Create(ctx context.Context, p *models.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[p.OwnerID]; !ok {
		return domain.ErrNotFound
	}

	r.s.lastPetID++
	now := r.s.now()
	p.ID = r.s.lastPetID
	p.CreatedAt = now
	p.UpdatedAt = now
	r.s.pets[p.ID] = *p
	return nil
}

func (r *petRepo) FindByID(ctx context.Context, id uint) (*models.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	p, ok := r.s.pets[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &p, nil
}

func (r *petRepo) Update(ctx context.Context, p *models.Pet) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.pets[p.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if _, ok := r.s.users[p.OwnerID]; !ok {
		return domain.ErrNotFound
	}

	current.Name = p.Name
	current.Species = p.Species
	current.Age = p.Age
	current.OwnerID = p.OwnerID
	current.UpdatedAt = r.s.now()
	r.s.pets[p.ID] = current

	*p = current
	return nil
}

func (r *petRepo) Delete(ctx context.Context, id uint) (*models.Cascade, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.pets[id]; !ok {
		return nil, domain.ErrNotFound
	}

	out := &models.Cascade{}
	r.s.deletePetsLocked([]uint{id}, out)
	return out, nil
}

func (r *petRepo) List(ctx context.Context, f pet.ListFilter) ([]models.Pet, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	species := strings.ToLower(strings.TrimSpace(f.Species))

	out := make([]models.Pet, 0)
	for _, p := range r.s.pets {
		if f.OwnerID != nil && p.OwnerID != *f.OwnerID {
			continue
		}
		if species != "" && strings.ToLower(p.Species) != species {
			continue
		}
		out = append(out, p)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
