package memory

import (
	"context"
	"sort"
	"strings"

	"github.com/BruksfildServices01/vet-scheduler/internal/domain"
	"github.com/BruksfildServices01/vet-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
)

type userRepo struct {
	s *Store
}

func (s *Store) Users() user.Repository {
	return &userRepo{s: s}
}

func (r *userRepo) Create(ctx context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if r.emailTakenLocked(u.Email, 0) {
		return domain.ErrDuplicate
	}

	r.s.lastUserID++
	now := r.s.now()
	u.ID = r.s.lastUserID
	u.CreatedAt = now
	u.UpdatedAt = now

	stored := *u
	stored.Pets = nil
	r.s.users[u.ID] = stored
	return nil
}

func (r *userRepo) FindByID(ctx context.Context, id uint) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	u, ok := r.s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return &u, nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, u := range r.s.users {
		if strings.EqualFold(u.Email, email) {
			return &u, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (r *userRepo) EmailTaken(ctx context.Context, email string, exceptID uint) (bool, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return r.emailTakenLocked(email, exceptID), nil
}

func (r *userRepo) emailTakenLocked(email string, exceptID uint) bool {
	for id, u := range r.s.users {
		if id != exceptID && strings.EqualFold(u.Email, email) {
			return true
		}
	}
	return false
}

func (r *userRepo) Update(ctx context.Context, u *models.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	current, ok := r.s.users[u.ID]
	if !ok {
		return domain.ErrNotFound
	}
	if r.emailTakenLocked(u.Email, u.ID) {
		return domain.ErrDuplicate
	}

	current.Name = u.Name
	current.Email = u.Email
	current.PasswordHash = u.PasswordHash
	current.UpdatedAt = r.s.now()
	r.s.users[u.ID] = current

	*u = current
	return nil
}

func (r *userRepo) Delete(ctx context.Context, id uint) (*models.Cascade, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.users[id]; !ok {
		return nil, domain.ErrNotFound
	}

	var petIDs []uint
	for pid, p := range r.s.pets {
		if p.OwnerID == id {
			petIDs = append(petIDs, pid)
		}
	}
	sortIDs(petIDs)

	out := &models.Cascade{}
	r.s.deletePetsLocked(petIDs, out)
	delete(r.s.users, id)
	return out, nil
}

func (r *userRepo) List(ctx context.Context, f user.ListFilter) ([]models.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	query := strings.ToLower(strings.TrimSpace(f.Query))

	out := make([]models.User, 0)
	for _, u := range r.s.users {
		if query != "" &&
			!strings.Contains(strings.ToLower(u.Name), query) &&
			!strings.Contains(strings.ToLower(u.Email), query) {
			continue
		}
		out = append(out, u)
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}
