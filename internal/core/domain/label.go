package domain

// Label is a printable optical code for a box. The PNG payload encodes the
// locator URL and nothing else: no expiry, no signature, no checksum beyond
// what the QR format itself provides.
type Label struct {
	BoxID string `json:"box_id"`
	URL   string `json:"url"`
	PNG   []byte `json:"-"`
}

// ScanResolution is the outcome of resolving raw scanner text. Recognized
// reports whether a candidate box ID could be extracted at all; Exists
// whether that box is actually in storage.
type ScanResolution struct {
	Recognized bool   `json:"recognized"`
	Exists     bool   `json:"exists,omitempty"`
	BoxID      string `json:"box_id,omitempty"`
	Box        *Box   `json:"box,omitempty"`
}
