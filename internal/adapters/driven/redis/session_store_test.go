package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/crately/crately-core/internal/core/domain"
	"github.com/redis/go-redis/v9"
)

// setupTestRedis creates a miniredis-backed client for tests
func setupTestRedis(t *testing.T) (*redis.Client, *miniredis.Miniredis, func()) {
	mr, err := miniredis.Run()
	if err != nil {
		t.Fatalf("failed to start miniredis: %v", err)
	}

	client := redis.NewClient(&redis.Options{
		Addr: mr.Addr(),
	})

	return client, mr, func() {
		client.Close()
		mr.Close()
	}
}

// createTestSession creates a test session with default values
func createTestSession(userID string) *domain.Session {
	return &domain.Session{
		ID:           "session-123",
		UserID:       userID,
		Token:        "token-abc",
		RefreshToken: "refresh-xyz",
		ExpiresAt:    time.Now().Add(24 * time.Hour),
		CreatedAt:    time.Now(),
	}
}

func TestSessionStore_Save_Success(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()
	store := NewSessionStore(client)

	ctx := context.Background()
	session := createTestSession("user-1")

	err := store.Save(ctx, session)
	if err != nil {
		t.Fatalf("unexpected error saving session: %v", err)
	}

	retrieved, err := store.Get(ctx, session.ID)
	if err != nil {
		t.Fatalf("failed to retrieve saved session: %v", err)
	}

	if retrieved.ID != session.ID {
		t.Errorf("expected ID %s, got %s", session.ID, retrieved.ID)
	}
	if retrieved.UserID != session.UserID {
		t.Errorf("expected UserID %s, got %s", session.UserID, retrieved.UserID)
	}
	if retrieved.Token != session.Token {
		t.Errorf("expected Token %s, got %s", session.Token, retrieved.Token)
	}
}

func TestSessionStore_Save_ExpiredSession(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()
	store := NewSessionStore(client)

	ctx := context.Background()
	session := createTestSession("user-1")
	session.ExpiresAt = time.Now().Add(-1 * time.Hour) // Already expired

	err := store.Save(ctx, session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Session should not be saved since it's already expired
	_, err = store.Get(ctx, session.ID)
	if err != domain.ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound for expired session, got %v", err)
	}
}

func TestSessionStore_Save_CreatesIndexes(t *testing.T) {
	client, mr, cleanup := setupTestRedis(t)
	defer cleanup()
	store := NewSessionStore(client)

	ctx := context.Background()
	session := createTestSession("user-1")

	err := store.Save(ctx, session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Verify refresh token index exists
	refreshKey := sessionRefreshPrefix + session.RefreshToken
	if !mr.Exists(refreshKey) {
		t.Error("expected refresh token index to exist")
	}

	// Verify session ID is in user's set
	userKey := sessionUserPrefix + session.UserID
	members, err := mr.Members(userKey)
	if err != nil {
		t.Fatalf("failed to get members: %v", err)
	}
	found := false
	for _, member := range members {
		if member == session.ID {
			found = true
			break
		}
	}
	if !found {
		t.Error("expected session ID in user's session set")
	}
}

func TestSessionStore_Get_NotFound(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()
	store := NewSessionStore(client)

	ctx := context.Background()

	_, err := store.Get(ctx, "nonexistent-session")
	if err != domain.ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStore_Get_InvalidJSON(t *testing.T) {
	client, mr, cleanup := setupTestRedis(t)
	defer cleanup()
	store := NewSessionStore(client)

	ctx := context.Background()

	// Manually set invalid JSON in Redis
	_ = mr.Set(sessionPrefix+"bad-session", "invalid json data")

	_, err := store.Get(ctx, "bad-session")
	if err == nil {
		t.Error("expected error unmarshaling invalid JSON")
	}
}

func TestSessionStore_GetByRefreshToken_Success(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()
	store := NewSessionStore(client)

	ctx := context.Background()
	session := createTestSession("user-1")

	err := store.Save(ctx, session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	retrieved, err := store.GetByRefreshToken(ctx, session.RefreshToken)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if retrieved.ID != session.ID {
		t.Errorf("expected ID %s, got %s", session.ID, retrieved.ID)
	}
}

func TestSessionStore_GetByRefreshToken_NotFound(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()
	store := NewSessionStore(client)

	ctx := context.Background()

	_, err := store.GetByRefreshToken(ctx, "nonexistent-refresh-token")
	if err != domain.ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestSessionStore_Delete_Success(t *testing.T) {
	client, mr, cleanup := setupTestRedis(t)
	defer cleanup()
	store := NewSessionStore(client)

	ctx := context.Background()
	session := createTestSession("user-1")

	err := store.Save(ctx, session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err = store.Delete(ctx, session.ID)
	if err != nil {
		t.Fatalf("unexpected error deleting session: %v", err)
	}

	_, err = store.Get(ctx, session.ID)
	if err != domain.ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound after deletion, got %v", err)
	}

	// Verify refresh token index is removed
	refreshKey := sessionRefreshPrefix + session.RefreshToken
	if mr.Exists(refreshKey) {
		t.Error("expected refresh token index to be removed")
	}
}

func TestSessionStore_Delete_NotFound(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()
	store := NewSessionStore(client)

	ctx := context.Background()

	// Deleting non-existent session should not error
	err := store.Delete(ctx, "nonexistent-session")
	if err != nil {
		t.Errorf("unexpected error deleting non-existent session: %v", err)
	}
}

func TestSessionStore_DeleteByUser(t *testing.T) {
	client, _, cleanup := setupTestRedis(t)
	defer cleanup()
	store := NewSessionStore(client)

	ctx := context.Background()

	session1 := createTestSession("user-1")
	session1.ID = "session-1"
	session1.RefreshToken = "refresh-1"

	session2 := createTestSession("user-1")
	session2.ID = "session-2"
	session2.RefreshToken = "refresh-2"

	other := createTestSession("user-2")
	other.ID = "session-3"
	other.RefreshToken = "refresh-3"

	for _, s := range []*domain.Session{session1, session2, other} {
		if err := store.Save(ctx, s); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}

	err := store.DeleteByUser(ctx, "user-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := store.Get(ctx, session1.ID); err != domain.ErrSessionNotFound {
		t.Errorf("expected session1 deleted, got %v", err)
	}
	if _, err := store.Get(ctx, session2.ID); err != domain.ErrSessionNotFound {
		t.Errorf("expected session2 deleted, got %v", err)
	}

	// Other user's session should survive
	if _, err := store.Get(ctx, other.ID); err != nil {
		t.Errorf("expected other user's session to remain, got %v", err)
	}
}

func TestSessionStore_TTL_Expiration(t *testing.T) {
	client, mr, cleanup := setupTestRedis(t)
	defer cleanup()
	store := NewSessionStore(client)

	ctx := context.Background()

	session := createTestSession("user-1")
	session.ExpiresAt = time.Now().Add(2 * time.Second)

	err := store.Save(ctx, session)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := store.Get(ctx, session.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Fast-forward time in miniredis
	mr.FastForward(3 * time.Second)

	_, err = store.Get(ctx, session.ID)
	if err != domain.ErrSessionNotFound {
		t.Errorf("expected ErrSessionNotFound for expired session, got %v", err)
	}
}
