package memory

import (
	"sort"
	"sync"
	"time"

	"github.com/BruksfildServices01/vet-scheduler/internal/models"
)

// Store guarda todas as entidades em mapas protegidos por um único RWMutex,
// o que permite aplicar as cascatas de forma atômica.
type Store struct {
	mu sync.RWMutex

	users        map[uint]models.User
	pets         map[uint]models.Pet
	vets         map[uint]models.Veterinarian
	appointments map[uint]models.Appointment

	lastUserID        uint
	lastPetID         uint
	lastVetID         uint
	lastAppointmentID uint

	now func() time.Time
}

func NewStore() *Store {
	return &Store{
		users:        make(map[uint]models.User),
		pets:         make(map[uint]models.Pet),
		vets:         make(map[uint]models.Veterinarian),
		appointments: make(map[uint]models.Appointment),
		now:          time.Now,
	}
}

// --------------------------------------------------
// Cascades (chamar com s.mu travado para escrita)
// --------------------------------------------------

func (s *Store) deletePetsLocked(petIDs []uint, out *models.Cascade) {
	if len(petIDs) == 0 {
		return
	}

	set := make(map[uint]struct{}, len(petIDs))
	for _, id := range petIDs {
		set[id] = struct{}{}
		delete(s.pets, id)
	}
	out.PetIDs = append(out.PetIDs, petIDs...)

	var apIDs []uint
	for id, ap := range s.appointments {
		if _, ok := set[ap.PetID]; ok {
			apIDs = append(apIDs, id)
		}
	}
	s.deleteAppointmentsLocked(apIDs, out)
}

func (s *Store) deleteAppointmentsLocked(ids []uint, out *models.Cascade) {
	sortIDs(ids)
	for _, id := range ids {
		delete(s.appointments, id)
	}
	out.AppointmentIDs = append(out.AppointmentIDs, ids...)
}

func sortIDs(ids []uint) {
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
}
