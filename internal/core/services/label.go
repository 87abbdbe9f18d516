package services

import (
	"context"
	"errors"

	"github.com/crately/crately-core/internal/core/domain"
	"github.com/crately/crately-core/internal/core/ports/driven"
	"github.com/crately/crately-core/internal/core/ports/driving"
	"github.com/crately/crately-core/internal/label"
)

// Ensure labelService implements LabelService
var _ driving.LabelService = (*labelService)(nil)

// labelService implements the LabelService interface
type labelService struct {
	boxStore driven.BoxStore
	renderer driven.LabelRenderer
	origin   string // Deployment origin, e.g. https://crately.example.com
}

// NewLabelService creates a new LabelService. origin is the public base URL
// labels must point at.
func NewLabelService(
	boxStore driven.BoxStore,
	renderer driven.LabelRenderer,
	origin string,
) driving.LabelService {
	return &labelService{
		boxStore: boxStore,
		renderer: renderer,
		origin:   origin,
	}
}

// Encode renders the printable label for an existing box
func (s *labelService) Encode(ctx context.Context, boxID string) (*domain.Label, error) {
	// Only existing boxes get labels; the codec itself would happily encode
	// any identifier.
	if _, err := s.boxStore.Get(ctx, boxID); err != nil {
		return nil, err
	}

	url := label.EncodeURL(s.origin, boxID)
	png, err := s.renderer.Render(url)
	if err != nil {
		return nil, err
	}

	return &domain.Label{
		BoxID: boxID,
		URL:   url,
		PNG:   png,
	}, nil
}

// Resolve decodes raw scanner text and looks up the recognized box. An
// unrecognized payload or a box that no longer exists are ordinary outcomes
// carried in the resolution; the caller keeps scanning.
func (s *labelService) Resolve(ctx context.Context, scanText string) (*domain.ScanResolution, error) {
	boxID, ok := label.Decode(scanText)
	if !ok {
		return &domain.ScanResolution{Recognized: false}, nil
	}

	box, err := s.boxStore.Get(ctx, boxID)
	if errors.Is(err, domain.ErrNotFound) {
		return &domain.ScanResolution{Recognized: true, BoxID: boxID}, nil
	}
	if err != nil {
		return nil, err
	}

	return &domain.ScanResolution{
		Recognized: true,
		Exists:     true,
		BoxID:      boxID,
		Box:        box,
	}, nil
}
