package service

import (
	"context"
	"errors"
	"testing"

	"github.com/atinyakov/FleetDesk/internal/models"
	"golang.org/x/crypto/bcrypt"
)

type mockAdminRepo struct {
	CreateAdminFunc     func(ctx context.Context, admin models.Admin) error
	GetAdminByEmailFunc func(ctx context.Context, email string) (*models.Admin, error)
	GetAdminByIDFunc    func(ctx context.Context, id string) (*models.Admin, error)
}

func (m *mockAdminRepo) CreateAdmin(ctx context.Context, admin models.Admin) error {
	return m.CreateAdminFunc(ctx, admin)
}
func (m *mockAdminRepo) GetAdminByEmail(ctx context.Context, email string) (*models.Admin, error) {
	return m.GetAdminByEmailFunc(ctx, email)
}
func (m *mockAdminRepo) GetAdminByID(ctx context.Context, id string) (*models.Admin, error) {
	return m.GetAdminByIDFunc(ctx, id)
}

// memAdminRepo enforces email uniqueness the way the unique index does.
type memAdminRepo struct {
	byEmail map[string]models.Admin
}

func (m *memAdminRepo) CreateAdmin(_ context.Context, admin models.Admin) error {
	if _, ok := m.byEmail[admin.Email]; ok {
		return models.ErrConflict
	}
	m.byEmail[admin.Email] = admin
	return nil
}
func (m *memAdminRepo) GetAdminByEmail(_ context.Context, email string) (*models.Admin, error) {
	a, ok := m.byEmail[email]
	if !ok {
		return nil, models.ErrNotFound
	}
	return &a, nil
}
func (m *memAdminRepo) GetAdminByID(_ context.Context, id string) (*models.Admin, error) {
	for _, a := range m.byEmail {
		if a.ID == id {
			return &a, nil
		}
	}
	return nil, models.ErrNotFound
}

func TestNormalizeEmail(t *testing.T) {
	if got := NormalizeEmail("  Root@Fleet.IO \t"); got != "root@fleet.io" {
		t.Errorf("NormalizeEmail = %q; want %q", got, "root@fleet.io")
	}
}

func TestRegister_HashesAndNormalizes(t *testing.T) {
	var stored models.Admin
	repo := &mockAdminRepo{
		CreateAdminFunc: func(ctx context.Context, admin models.Admin) error {
			stored = admin
			return nil
		},
	}
	svc := NewAuthService(repo)

	admin, err := svc.Register(context.Background(), " Carol@Fleet.io ", "pa55word")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}
	if stored.Email != "carol@fleet.io" {
		t.Errorf("stored email = %q; want %q", stored.Email, "carol@fleet.io")
	}
	if stored.ID == "" || stored.ID != admin.ID {
		t.Errorf("expected generated id to be stored and returned, got %q / %q", stored.ID, admin.ID)
	}
	if string(stored.PasswordHash) == "pa55word" {
		t.Fatal("password stored in plain text")
	}
	if err := bcrypt.CompareHashAndPassword(stored.PasswordHash, []byte("pa55word")); err != nil {
		t.Errorf("stored hash does not match password: %v", err)
	}
}

func TestRegister_DuplicateCaseInsensitive(t *testing.T) {
	svc := NewAuthService(&memAdminRepo{byEmail: map[string]models.Admin{}})

	if _, err := svc.Register(context.Background(), "dave@fleet.io", "pw"); err != nil {
		t.Fatalf("first Register returned error: %v", err)
	}
	_, err := svc.Register(context.Background(), "  DAVE@fleet.io ", "pw2")
	if !errors.Is(err, models.ErrConflict) {
		t.Fatalf("second Register error = %v; want ErrConflict", err)
	}
}

func TestLogin(t *testing.T) {
	svc := NewAuthService(&memAdminRepo{byEmail: map[string]models.Admin{}})
	registered, err := svc.Register(context.Background(), "erin@fleet.io", "correct horse")
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	tests := []struct {
		name     string
		email    string
		password string
		wantErr  error
	}{
		{"success", "erin@fleet.io", "correct horse", nil},
		{"mixed case email", " ERIN@fleet.io", "correct horse", nil},
		{"wrong password", "erin@fleet.io", "battery staple", models.ErrInvalidCredentials},
		{"unknown email", "frank@fleet.io", "correct horse", models.ErrInvalidCredentials},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			admin, err := svc.Login(context.Background(), tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Login error = %v; want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && admin.ID != registered.ID {
				t.Errorf("Login admin id = %q; want %q", admin.ID, registered.ID)
			}
		})
	}
}

func TestLogin_RepoError(t *testing.T) {
	wantErr := errors.New("db error")
	svc := NewAuthService(&mockAdminRepo{
		GetAdminByEmailFunc: func(ctx context.Context, email string) (*models.Admin, error) {
			return nil, wantErr
		},
	})

	_, err := svc.Login(context.Background(), "x@fleet.io", "pw")
	if !errors.Is(err, wantErr) {
		t.Fatalf("Login error = %v; want %v", err, wantErr)
	}
}

func TestFindByID(t *testing.T) {
	repo := &mockAdminRepo{
		GetAdminByIDFunc: func(ctx context.Context, id string) (*models.Admin, error) {
			if id != "a1" {
				t.Errorf("GetAdminByID received id = %q; want %q", id, "a1")
			}
			return &models.Admin{ID: "a1"}, nil
		},
	}
	svc := NewAuthService(repo)

	admin, err := svc.FindByID(context.Background(), "a1")
	if err != nil {
		t.Fatalf("FindByID returned error: %v", err)
	}
	if admin.ID != "a1" {
		t.Errorf("FindByID id = %q; want a1", admin.ID)
	}
}

func TestFindByEmail_Normalizes(t *testing.T) {
	repo := &mockAdminRepo{
		GetAdminByEmailFunc: func(ctx context.Context, email string) (*models.Admin, error) {
			if email != "gina@fleet.io" {
				t.Errorf("GetAdminByEmail received email = %q; want %q", email, "gina@fleet.io")
			}
			return nil, models.ErrNotFound
		},
	}
	svc := NewAuthService(repo)

	if _, err := svc.FindByEmail(context.Background(), " Gina@Fleet.io"); !errors.Is(err, models.ErrNotFound) {
		t.Fatalf("FindByEmail error = %v; want ErrNotFound", err)
	}
}
