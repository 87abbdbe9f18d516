package driving

import (
	"context"

	"github.com/crately/crately-core/internal/core/domain"
)

// SetupRequest creates the initial admin user
type SetupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// SetupResponse is returned after successful setup
type SetupResponse struct {
	User *domain.UserSummary `json:"user"`
}

// CreateUserRequest carries the fields for a new user (admin only)
type CreateUserRequest struct {
	Email    string      `json:"email"`
	Password string      `json:"password"`
	Name     string      `json:"name"`
	Role     domain.Role `json:"role"`
}

// UserService manages user accounts
type UserService interface {
	// Setup creates the initial admin user; only allowed while no users exist
	Setup(ctx context.Context, req SetupRequest) (*SetupResponse, error)

	// Create creates a new user (admin only)
	Create(ctx context.Context, req CreateUserRequest) (*domain.User, error)

	// Get retrieves a user by ID
	Get(ctx context.Context, id string) (*domain.User, error)

	// List retrieves all users
	List(ctx context.Context) ([]*domain.User, error)

	// Delete deletes a user and their sessions
	Delete(ctx context.Context, id string) error
}
