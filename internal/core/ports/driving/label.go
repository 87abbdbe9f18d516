package driving

import (
	"context"

	"github.com/crately/crately-core/internal/core/domain"
)

// LabelService mints optical labels for boxes and resolves scanned payloads
type LabelService interface {
	// Encode renders the printable label for an existing box
	Encode(ctx context.Context, boxID string) (*domain.Label, error)

	// Resolve decodes raw scanner text and, when a candidate identifier is
	// recognized, looks the box up in storage. Unrecognized payloads and
	// missing boxes are normal outcomes carried in the resolution, not
	// errors.
	Resolve(ctx context.Context, scanText string) (*domain.ScanResolution, error)
}
