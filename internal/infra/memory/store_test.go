package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/BruksfildServices01/vet-scheduler/internal/domain"
	"github.com/BruksfildServices01/vet-scheduler/internal/domain/pet"
	"github.com/BruksfildServices01/vet-scheduler/internal/domain/user"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
)

type fixture struct {
	store *Store
	owner *models.User
	other *models.User
	vet   *models.Veterinarian
	rex   *models.Pet
	mia   *models.Pet
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	ctx := context.Background()
	s := NewStore()

	f := fixture{store: s}
	f.owner = &models.User{Name: "Luis", Email: "Luis11@gmail.com", PasswordHash: "h"}
	f.other = &models.User{Name: "Ana", Email: "ana123@gmail.com", PasswordHash: "h"}
	f.vet = &models.Veterinarian{Name: "Dra. Clara", Specialty: "felinos", Email: "clara1@vet.com", PasswordHash: "h"}

	mustNil(t, s.Users().Create(ctx, f.owner))
	mustNil(t, s.Users().Create(ctx, f.other))
	mustNil(t, s.Vets().Create(ctx, f.vet))

	f.rex = &models.Pet{Name: "Rex", Species: "cachorro", Age: 3, OwnerID: f.owner.ID}
	f.mia = &models.Pet{Name: "Mia", Species: "gato", Age: 1, OwnerID: f.other.ID}
	mustNil(t, s.Pets().Create(ctx, f.rex))
	mustNil(t, s.Pets().Create(ctx, f.mia))

	return f
}

func mustNil(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func (f fixture) appointment(t *testing.T, petID uint, at *time.Time) *models.Appointment {
	t.Helper()
	ap := &models.Appointment{VetID: f.vet.ID, PetID: petID, ScheduledAt: at}
	mustNil(t, f.store.Appointments().Create(context.Background(), ap))
	return ap
}

func TestUsers_IDsAndDuplicateEmail(t *testing.T) {
	f := newFixture(t)
	if f.owner.ID != 1 || f.other.ID != 2 {
		t.Fatalf("expected sequential ids, got %d and %d", f.owner.ID, f.other.ID)
	}

	err := f.store.Users().Create(context.Background(), &models.User{Name: "X", Email: "LUIS11@GMAIL.COM"})
	if !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}
}

func TestUsers_UpdateToTakenEmail(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	u := *f.other
	u.Email = "luis11@gmail.com"
	if err := f.store.Users().Update(ctx, &u); !errors.Is(err, domain.ErrDuplicate) {
		t.Fatalf("expected ErrDuplicate, got %v", err)
	}

	// o próprio e-mail com outra caixa é permitido
	u = *f.owner
	u.Email = "LUIS11@gmail.com"
	mustNil(t, f.store.Users().Update(ctx, &u))

	got, err := f.store.Users().FindByEmail(ctx, "luis11@GMAIL.com")
	mustNil(t, err)
	if got.ID != f.owner.ID || got.Email != "LUIS11@gmail.com" {
		t.Fatalf("unexpected user %+v", got)
	}
}

func TestUsers_DeleteCascadesPetsAndAppointments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap1 := f.appointment(t, f.rex.ID, nil)
	ap2 := f.appointment(t, f.mia.ID, nil)

	cascade, err := f.store.Users().Delete(ctx, f.owner.ID)
	mustNil(t, err)

	if len(cascade.PetIDs) != 1 || cascade.PetIDs[0] != f.rex.ID {
		t.Fatalf("unexpected pet cascade %v", cascade.PetIDs)
	}
	if len(cascade.AppointmentIDs) != 1 || cascade.AppointmentIDs[0] != ap1.ID {
		t.Fatalf("unexpected appointment cascade %v", cascade.AppointmentIDs)
	}

	if _, err := f.store.Pets().FindByID(ctx, f.rex.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected pet to be gone, got %v", err)
	}
	if _, err := f.store.Appointments().FindByID(ctx, ap1.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected appointment to be gone, got %v", err)
	}
	if _, err := f.store.Appointments().FindByID(ctx, ap2.ID); err != nil {
		t.Fatalf("unrelated appointment must survive: %v", err)
	}

	if _, err := f.store.Users().Delete(ctx, f.owner.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestVets_DeleteCascadesAppointments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap := f.appointment(t, f.rex.ID, nil)

	cascade, err := f.store.Vets().Delete(ctx, f.vet.ID)
	mustNil(t, err)
	if len(cascade.AppointmentIDs) != 1 || cascade.AppointmentIDs[0] != ap.ID {
		t.Fatalf("unexpected cascade %v", cascade.AppointmentIDs)
	}
	if _, err := f.store.Appointments().FindByID(ctx, ap.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected appointment to be gone, got %v", err)
	}
	if _, err := f.store.Pets().FindByID(ctx, f.rex.ID); err != nil {
		t.Fatalf("pet must survive vet deletion: %v", err)
	}
}

func TestPets_DeleteCascadesAppointments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	ap := f.appointment(t, f.rex.ID, nil)

	cascade, err := f.store.Pets().Delete(ctx, f.rex.ID)
	mustNil(t, err)
	if len(cascade.AppointmentIDs) != 1 || cascade.AppointmentIDs[0] != ap.ID {
		t.Fatalf("unexpected cascade %v", cascade.AppointmentIDs)
	}
	if _, err := f.store.Users().FindByID(ctx, f.owner.ID); err != nil {
		t.Fatalf("owner must survive pet deletion: %v", err)
	}
}

func TestPets_CreateRequiresOwner(t *testing.T) {
	f := newFixture(t)
	err := f.store.Pets().Create(context.Background(), &models.Pet{Name: "Bob", Species: "gato", OwnerID: 99})
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestLists_Filters(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	users, err := f.store.Users().List(ctx, user.ListFilter{Query: "ANA"})
	mustNil(t, err)
	if len(users) != 1 || users[0].ID != f.other.ID {
		t.Fatalf("unexpected users %+v", users)
	}

	owner := f.owner.ID
	pets, err := f.store.Pets().List(ctx, pet.ListFilter{OwnerID: &owner})
	mustNil(t, err)
	if len(pets) != 1 || pets[0].ID != f.rex.ID {
		t.Fatalf("unexpected pets %+v", pets)
	}

	pets, err = f.store.Pets().List(ctx, pet.ListFilter{Species: "Gato"})
	mustNil(t, err)
	if len(pets) != 1 || pets[0].ID != f.mia.ID {
		t.Fatalf("unexpected pets by species %+v", pets)
	}
}

func TestAppointments_ListForVetInRange(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	late := day.Add(15 * time.Hour)
	early := day.Add(9 * time.Hour)
	nextDay := day.Add(30 * time.Hour)

	f.appointment(t, f.rex.ID, &late)
	f.appointment(t, f.mia.ID, &early)
	f.appointment(t, f.rex.ID, &nextDay)
	f.appointment(t, f.rex.ID, nil)

	got, err := f.store.Appointments().ListForVet(ctx, f.vet.ID, day, day.Add(24*time.Hour))
	mustNil(t, err)
	if len(got) != 2 {
		t.Fatalf("expected 2 appointments, got %d", len(got))
	}
	if !got[0].ScheduledAt.Equal(early) || got[0].Pet.Name != "Mia" {
		t.Fatalf("expected earliest first with pet loaded, got %+v", got[0])
	}
	if got[1].Vet.Name != "Dra. Clara" {
		t.Fatalf("expected vet loaded, got %+v", got[1].Vet)
	}
}
