package qrcode

import (
	"fmt"

	qr "github.com/skip2/go-qrcode"

	"github.com/crately/crately-core/internal/core/ports/driven"
)

// Verify interface compliance
var _ driven.LabelRenderer = (*Renderer)(nil)

// defaultSize is the PNG edge length in pixels, large enough
// to print on a standard label sheet and still scan reliably.
const defaultSize = 512

// Renderer renders locator URLs as QR code PNGs
type Renderer struct {
	size int
}

// NewRenderer creates a Renderer producing PNGs at the default size
func NewRenderer() *Renderer {
	return &Renderer{size: defaultSize}
}

// NewRendererWithSize creates a Renderer producing PNGs of size pixels per edge
func NewRendererWithSize(size int) *Renderer {
	if size <= 0 {
		size = defaultSize
	}
	return &Renderer{size: size}
}

// Render encodes url into a QR code PNG.
// Medium error recovery tolerates partial label damage.
func (r *Renderer) Render(url string) ([]byte, error) {
	if url == "" {
		return nil, fmt.Errorf("cannot render empty url")
	}

	png, err := qr.Encode(url, qr.Medium, r.size)
	if err != nil {
		return nil, fmt.Errorf("failed to render qr code: %w", err)
	}
	return png, nil
}
