package user

import (
	"context"
	"errors"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/BruksfildServices01/vet-scheduler/internal/audit"
	"github.com/BruksfildServices01/vet-scheduler/internal/auth"
	"github.com/BruksfildServices01/vet-scheduler/internal/cache"
	"github.com/BruksfildServices01/vet-scheduler/internal/cache/cachetest"
	"github.com/BruksfildServices01/vet-scheduler/internal/httperr"
	"github.com/BruksfildServices01/vet-scheduler/internal/infra/memory"
	"github.com/BruksfildServices01/vet-scheduler/internal/models"
	"github.com/BruksfildServices01/vet-scheduler/internal/security"
)

type env struct {
	store  *memory.Store
	cache  *cachetest.Cache
	audit  *audit.Memory
	hasher security.Hasher

	create *CreateUser
	get    *GetUser
	update *UpdateUser
	delete *DeleteUser
	list   *ListUsers
	login  *LoginUser
}

func newEnv() env {
	store := memory.NewStore()
	c := cachetest.New()
	logs := audit.NewMemory()
	rec := audit.NewRecorder(logs)
	hasher := security.NewBcryptHasher(bcrypt.MinCost)
	users := store.Users()

	return env{
		store:  store,
		cache:  c,
		audit:  logs,
		hasher: hasher,
		create: NewCreateUser(users, hasher, rec),
		get:    NewGetUser(users, c),
		update: NewUpdateUser(users, hasher, c, rec),
		delete: NewDeleteUser(users, c, rec),
		list:   NewListUsers(users),
		login:  NewLoginUser(users, hasher, auth.NewIssuer("secret", time.Hour)),
	}
}

func (e env) mustCreate(t *testing.T, name, email string) *models.User {
	t.Helper()
	u, err := e.create.Execute(context.Background(), Input{Name: name, Email: email, Password: "@Luis12345"})
	if err != nil {
		t.Fatalf("create %s: %v", email, err)
	}
	return u
}

func TestCreateUser_HashesPassword(t *testing.T) {
	e := newEnv()
	u := e.mustCreate(t, "Luis", "Luis11@gmail.com")

	if u.ID == 0 {
		t.Fatalf("expected id to be assigned")
	}
	if u.PasswordHash == "@Luis12345" || !e.hasher.Verify(u.PasswordHash, "@Luis12345") {
		t.Fatalf("expected a verifiable hash, got %q", u.PasswordHash)
	}
	if u.Email != "Luis11@gmail.com" {
		t.Fatalf("email must be stored as supplied, got %q", u.Email)
	}

	logs, _, _ := e.audit.List(context.Background(), audit.Filter{Action: "user_created"})
	if len(logs) != 1 || logs[0].EntityID == nil || *logs[0].EntityID != u.ID {
		t.Fatalf("expected audit entry for created user, got %+v", logs)
	}
}

func TestCreateUser_Validation(t *testing.T) {
	e := newEnv()
	ctx := context.Background()

	tests := []struct {
		name string
		in   Input
		code string
	}{
		{"empty name", Input{Name: "  ", Email: "Luis11@gmail.com", Password: "@Luis12345"}, "name_required"},
		{"email checked before password", Input{Name: "Luis", Email: "13@gmail.com", Password: "weak"}, "email_local_too_short"},
		{"weak password", Input{Name: "Luis", Email: "Luis11@gmail.com", Password: "luiscarlosmacedo"}, "password_weak"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := e.create.Execute(ctx, tt.in)
			if !httperr.IsKind(err, httperr.KindValidation) || !httperr.IsBusiness(err, tt.code) {
				t.Fatalf("expected validation %s, got %v", tt.code, err)
			}
		})
	}

	users, _ := e.list.Execute(ctx, "")
	if len(users) != 0 {
		t.Fatalf("no user should have been created, got %d", len(users))
	}
}

func TestCreateUser_DuplicateEmailIgnoresCase(t *testing.T) {
	e := newEnv()
	e.mustCreate(t, "Luis", "Luis11@gmail.com")

	_, err := e.create.Execute(context.Background(), Input{Name: "Outro", Email: "LUIS11@gmail.com", Password: "@Luis12345"})
	if !httperr.IsKind(err, httperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}
}

func TestUpdateUser(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	luis := e.mustCreate(t, "Luis", "Luis11@gmail.com")
	e.mustCreate(t, "Ana", "ana123@gmail.com")

	// conflito com outro usuário, qualquer caixa
	_, err := e.update.Execute(ctx, luis.ID, Input{Name: "Luis", Email: "ANA123@gmail.com", Password: "@Luis12345"})
	if !httperr.IsKind(err, httperr.KindConflict) {
		t.Fatalf("expected conflict, got %v", err)
	}

	// o próprio e-mail continua permitido
	updated, err := e.update.Execute(ctx, luis.ID, Input{Name: "Luis Carlos", Email: "luis11@gmail.com", Password: "#Nova1234"})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.Name != "Luis Carlos" || updated.Email != "luis11@gmail.com" {
		t.Fatalf("unexpected snapshot %+v", updated)
	}
	if !e.hasher.Verify(updated.PasswordHash, "#Nova1234") {
		t.Fatalf("expected password to be re-hashed")
	}

	_, err = e.update.Execute(ctx, 999, Input{Name: "X", Email: "xyz12@gmail.com", Password: "@Luis12345"})
	if !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	_, err = e.update.Execute(ctx, luis.ID, Input{Name: "Luis", Email: "luis11@gmail.com", Password: "curta"})
	if !httperr.IsBusiness(err, "password_too_short") {
		t.Fatalf("expected password_too_short, got %v", err)
	}
}

func TestGetUser_ReadThroughCache(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	u := e.mustCreate(t, "Luis", "Luis11@gmail.com")

	if _, err := e.get.Execute(ctx, u.ID); err != nil {
		t.Fatalf("get: %v", err)
	}
	if !e.cache.Has(cache.UserKey(u.ID)) {
		t.Fatalf("expected snapshot to be cached")
	}

	got, err := e.get.Execute(ctx, u.ID)
	if err != nil || got.Email != u.Email || e.cache.Hits() != 1 {
		t.Fatalf("expected cached read, got %+v hits=%d err=%v", got, e.cache.Hits(), err)
	}

	if _, err := e.update.Execute(ctx, u.ID, Input{Name: "Novo", Email: u.Email, Password: "@Luis12345"}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if e.cache.Has(cache.UserKey(u.ID)) {
		t.Fatalf("expected update to invalidate cache")
	}

	got, _ = e.get.Execute(ctx, u.ID)
	if got.Name != "Novo" {
		t.Fatalf("expected fresh snapshot after update, got %q", got.Name)
	}

	if _, err := e.get.Execute(ctx, 999); !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestDeleteUser_CascadesAndInvalidatesPets(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	u := e.mustCreate(t, "Luis", "Luis11@gmail.com")

	p := &models.Pet{Name: "Rex", Species: "cachorro", Age: 2, OwnerID: u.ID}
	if err := e.store.Pets().Create(ctx, p); err != nil {
		t.Fatalf("create pet: %v", err)
	}
	_ = e.cache.Set(ctx, cache.PetKey(p.ID), p)
	_, _ = e.get.Execute(ctx, u.ID)

	if err := e.delete.Execute(ctx, u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if e.cache.Has(cache.PetKey(p.ID)) || e.cache.Has(cache.UserKey(u.ID)) {
		t.Fatalf("expected cached snapshots to be gone")
	}

	// leituras iniciadas antes da exclusão tentam repor os snapshots
	_ = e.cache.Set(ctx, cache.PetKey(p.ID), p)
	_ = e.cache.Set(ctx, cache.UserKey(u.ID), u)
	if e.cache.Has(cache.PetKey(p.ID)) || e.cache.Has(cache.UserKey(u.ID)) {
		t.Fatalf("stale snapshots written back after delete")
	}
	if _, err := e.store.Pets().FindByID(ctx, p.ID); err == nil {
		t.Fatalf("expected pet to be deleted with its owner")
	}
	if _, err := e.get.Execute(ctx, u.ID); !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("expected not found after delete, got %v", err)
	}

	if err := e.delete.Execute(ctx, u.ID); !httperr.IsKind(err, httperr.KindNotFound) {
		t.Fatalf("expected not found on second delete, got %v", err)
	}
}

func TestListUsers_Query(t *testing.T) {
	e := newEnv()
	e.mustCreate(t, "Luis", "Luis11@gmail.com")
	e.mustCreate(t, "Ana", "ana123@gmail.com")

	users, err := e.list.Execute(context.Background(), "gmail")
	if err != nil || len(users) != 2 {
		t.Fatalf("expected 2 users, got %d (%v)", len(users), err)
	}

	users, _ = e.list.Execute(context.Background(), "luis")
	if len(users) != 1 || users[0].Name != "Luis" {
		t.Fatalf("unexpected filter result %+v", users)
	}
}

func TestLoginUser(t *testing.T) {
	e := newEnv()
	ctx := context.Background()
	u := e.mustCreate(t, "Luis", "Luis11@gmail.com")

	token, got, err := e.login.Execute(ctx, "luis11@GMAIL.com", "@Luis12345")
	if err != nil || token == "" || got.ID != u.ID {
		t.Fatalf("expected successful login, got token=%q err=%v", token, err)
	}

	_, _, err = e.login.Execute(ctx, "Luis11@gmail.com", "@Errada123")
	if !httperr.IsKind(err, httperr.KindUnauthorized) {
		t.Fatalf("expected unauthorized, got %v", err)
	}

	_, _, err = e.login.Execute(ctx, "ninguem@gmail.com", "@Luis12345")
	var be httperr.BusinessError
	if !errors.As(err, &be) || be.Code != "invalid_credentials" {
		t.Fatalf("unknown email must look like a wrong password, got %v", err)
	}
}
