// Package label turns canonical box identifiers into scannable locators and
// recovers identifiers from arbitrary scanned text. Both directions are pure
// string transforms; rendering the locator into an optical payload and
// checking that a recovered identifier actually exists are caller concerns.
package label

import (
	"regexp"
	"strings"
)

// PathPrefix is the fixed path marker carried by every encoded locator.
const PathPrefix = "/box/"

// Canonical box identifiers are uuid4 strings: fixed-length hyphen-delimited
// hexadecimal groups, matched case-insensitively.
var idShape = regexp.MustCompile(`^[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)

// EncodeURL builds the canonical absolute locator for a box: the origin
// (scheme://host[:port] of the deployment) joined with the fixed box path.
func EncodeURL(origin, boxID string) string {
	return strings.TrimRight(origin, "/") + PathPrefix + boxID
}

// Decode attempts to recover a box identifier from raw scanner text. Two
// recognizers run in strict order: first the locator form (any text carrying
// the path marker), then a bare canonical identifier. An unrecognized
// payload is a normal outcome, not an error; callers branch on ok.
//
// Decode never verifies that the identifier exists in storage.
func Decode(scan string) (boxID string, ok bool) {
	text := strings.TrimSpace(scan)
	if text == "" {
		return "", false
	}

	if idx := strings.Index(text, PathPrefix); idx >= 0 {
		candidate := text[idx+len(PathPrefix):]
		// Anything past the identifier segment is not part of the ID.
		if cut := strings.IndexAny(candidate, "/?#"); cut >= 0 {
			candidate = candidate[:cut]
		}
		if candidate != "" {
			return candidate, true
		}
		return "", false
	}

	if idShape.MatchString(text) {
		return text, true
	}

	return "", false
}

// IsCanonicalID reports whether s has the strict lexical shape of a box
// identifier.
func IsCanonicalID(s string) bool {
	return idShape.MatchString(s)
}
