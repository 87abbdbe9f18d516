package mocks

// MockLabelRenderer is a mock implementation of LabelRenderer for testing.
// It records the last rendered URL and returns a stub payload.
type MockLabelRenderer struct {
	LastURL string
	Err     error
}

// NewMockLabelRenderer creates a new MockLabelRenderer
func NewMockLabelRenderer() *MockLabelRenderer {
	return &MockLabelRenderer{}
}

func (m *MockLabelRenderer) Render(url string) ([]byte, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	m.LastURL = url
	return []byte("png:" + url), nil
}
