package driven

// LabelRenderer renders a locator string into an optical payload (QR PNG).
// The payload carries the locator and nothing else.
type LabelRenderer interface {
	// Render encodes url into a PNG image
	Render(url string) ([]byte, error)
}
