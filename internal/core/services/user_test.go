package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/crately/crately-core/internal/core/domain"
	"github.com/crately/crately-core/internal/core/ports/driven/mocks"
	"github.com/crately/crately-core/internal/core/ports/driving"
)

func TestSetup_CreatesFirstAdmin(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	svc := NewUserService(userStore, mocks.NewMockSessionStore(), mocks.NewMockAuthAdapter())

	resp, err := svc.Setup(context.Background(), driving.SetupRequest{
		Email:    "Admin@Example.com",
		Password: "secret",
		Name:     "First Admin",
	})
	if err != nil {
		t.Fatalf("Setup failed: %v", err)
	}

	if resp.User.Role != domain.RoleAdmin {
		t.Errorf("expected admin role, got %q", resp.User.Role)
	}
	if resp.User.Email != "admin@example.com" {
		t.Errorf("expected normalized email, got %q", resp.User.Email)
	}

	stored, err := userStore.GetByEmail(context.Background(), "admin@example.com")
	if err != nil {
		t.Fatalf("expected user persisted: %v", err)
	}
	if stored.PasswordHash != "hashed:secret" {
		t.Errorf("expected hashed password, got %q", stored.PasswordHash)
	}
	if !stored.Active {
		t.Error("expected new user active")
	}
}

func TestSetup_OnlyOnce(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	svc := NewUserService(userStore, mocks.NewMockSessionStore(), mocks.NewMockAuthAdapter())

	req := driving.SetupRequest{Email: "a@example.com", Password: "secret", Name: "A"}
	if _, err := svc.Setup(context.Background(), req); err != nil {
		t.Fatalf("first Setup failed: %v", err)
	}

	req.Email = "b@example.com"
	if _, err := svc.Setup(context.Background(), req); !errors.Is(err, domain.ErrForbidden) {
		t.Errorf("expected ErrForbidden once a user exists, got %v", err)
	}
}

func TestSetup_MissingFields(t *testing.T) {
	svc := NewUserService(mocks.NewMockUserStore(), mocks.NewMockSessionStore(), mocks.NewMockAuthAdapter())

	for _, req := range []driving.SetupRequest{
		{},
		{Email: "a@example.com", Password: "secret"},
		{Email: "a@example.com", Name: "A"},
		{Password: "secret", Name: "A"},
	} {
		if _, err := svc.Setup(context.Background(), req); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("Setup(%+v): expected ErrInvalidInput, got %v", req, err)
		}
	}
}

func TestUserCreate_DefaultRoleIsMember(t *testing.T) {
	svc := NewUserService(mocks.NewMockUserStore(), mocks.NewMockSessionStore(), mocks.NewMockAuthAdapter())

	user, err := svc.Create(context.Background(), driving.CreateUserRequest{
		Email:    "member@example.com",
		Password: "secret",
		Name:     "Member",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if user.Role != domain.RoleMember {
		t.Errorf("expected member role by default, got %q", user.Role)
	}
}

func TestUserCreate_InvalidRole(t *testing.T) {
	svc := NewUserService(mocks.NewMockUserStore(), mocks.NewMockSessionStore(), mocks.NewMockAuthAdapter())

	_, err := svc.Create(context.Background(), driving.CreateUserRequest{
		Email:    "x@example.com",
		Password: "secret",
		Name:     "X",
		Role:     "superuser",
	})
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestUserCreate_DuplicateEmail(t *testing.T) {
	svc := NewUserService(mocks.NewMockUserStore(), mocks.NewMockSessionStore(), mocks.NewMockAuthAdapter())

	req := driving.CreateUserRequest{Email: "dup@example.com", Password: "secret", Name: "First"}
	if _, err := svc.Create(context.Background(), req); err != nil {
		t.Fatalf("first Create failed: %v", err)
	}

	// Email uniqueness is case-insensitive
	req.Email = "DUP@example.com"
	req.Name = "Second"
	if _, err := svc.Create(context.Background(), req); !errors.Is(err, domain.ErrAlreadyExists) {
		t.Errorf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestUserList(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	seedUser(t, userStore, "a@example.com", "secret", domain.RoleAdmin, true)
	seedUser(t, userStore, "b@example.com", "secret", domain.RoleMember, true)

	svc := NewUserService(userStore, mocks.NewMockSessionStore(), mocks.NewMockAuthAdapter())

	users, err := svc.List(context.Background())
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(users) != 2 {
		t.Errorf("expected 2 users, got %d", len(users))
	}
}

func TestUserDelete_RevokesSessions(t *testing.T) {
	userStore := mocks.NewMockUserStore()
	sessionStore := mocks.NewMockSessionStore()
	user := seedUser(t, userStore, "a@example.com", "secret", domain.RoleAdmin, true)

	session := &domain.Session{
		ID:           "sess-1",
		UserID:       user.ID,
		Token:        "t",
		RefreshToken: "r",
		ExpiresAt:    time.Now().Add(time.Hour),
		CreatedAt:    time.Now(),
	}
	if err := sessionStore.Save(context.Background(), session); err != nil {
		t.Fatalf("seed session: %v", err)
	}

	svc := NewUserService(userStore, sessionStore, mocks.NewMockAuthAdapter())

	if err := svc.Delete(context.Background(), user.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := userStore.Get(context.Background(), user.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected user gone, got %v", err)
	}
	if _, err := sessionStore.Get(context.Background(), session.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected sessions revoked, got %v", err)
	}
}

func TestUserDelete_NotFound(t *testing.T) {
	svc := NewUserService(mocks.NewMockUserStore(), mocks.NewMockSessionStore(), mocks.NewMockAuthAdapter())

	if err := svc.Delete(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}
