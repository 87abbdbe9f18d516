package mocks

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/crately/crately-core/internal/core/domain"
)

// MockAuthAdapter is a mock implementation of AuthAdapter for testing.
// Hashing is reversible and tokens are plain JSON so tests can assert on
// contents without real crypto.
type MockAuthAdapter struct{}

// NewMockAuthAdapter creates a new MockAuthAdapter
func NewMockAuthAdapter() *MockAuthAdapter {
	return &MockAuthAdapter{}
}

func (m *MockAuthAdapter) HashPassword(password string) (string, error) {
	return "hashed:" + password, nil
}

func (m *MockAuthAdapter) VerifyPassword(password, hash string) bool {
	return hash == "hashed:"+password
}

func (m *MockAuthAdapter) GenerateToken(claims *domain.TokenClaims) (string, error) {
	data, err := json.Marshal(claims)
	if err != nil {
		return "", err
	}
	return "token:" + string(data), nil
}

func (m *MockAuthAdapter) ParseToken(token string) (*domain.TokenClaims, error) {
	raw, ok := strings.CutPrefix(token, "token:")
	if !ok {
		return nil, fmt.Errorf("malformed mock token")
	}
	var claims domain.TokenClaims
	if err := json.Unmarshal([]byte(raw), &claims); err != nil {
		return nil, err
	}
	return &claims, nil
}
