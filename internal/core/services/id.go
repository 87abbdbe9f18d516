package services

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

// newID mints a canonical record identifier: a random uuid4 string. The
// optical codec's bare-identifier recognizer depends on this exact shape, so
// every box and item ID in the system uses it.
func newID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // variant 10
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}

// generateOpaqueID mints a session identifier. Sessions are never encoded
// into labels, so they do not need the canonical shape.
func generateOpaqueID() string {
	b := make([]byte, 16)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}

func generateRefreshToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return base64.RawURLEncoding.EncodeToString(b)
}
