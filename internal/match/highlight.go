package match

import "strings"

// Segment is a contiguous run of a display string, marked as matching a
// query or not. Concatenating the Text of every segment in order
// reconstructs the original string exactly.
type Segment struct {
	Text  string `json:"text"`
	Match bool   `json:"match"`
}

// Highlight splits text into alternating matched/unmatched segments around
// case-insensitive literal occurrences of query, scanning left to right
// without overlap. Original casing is preserved. Highlighting is always
// literal even when the match that triggered display was fuzzy: exact
// substrings light up, pure fuzzy similarity does not.
func Highlight(text, query string) []Segment {
	if text == "" {
		return nil
	}
	if query == "" {
		return []Segment{{Text: text}}
	}

	// strings.ToLower maps rune for rune, so lowered text and original text
	// align in rune space even when byte lengths differ.
	tr := []rune(text)
	lr := []rune(strings.ToLower(text))
	qr := []rune(strings.ToLower(query))
	if len(qr) > len(lr) {
		return []Segment{{Text: text}}
	}

	var segs []Segment
	start := 0 // Start of the pending unmatched run
	for i := 0; i+len(qr) <= len(lr); {
		if !runesEqual(lr[i:i+len(qr)], qr) {
			i++
			continue
		}
		if i > start {
			segs = append(segs, Segment{Text: string(tr[start:i])})
		}
		segs = append(segs, Segment{Text: string(tr[i : i+len(qr)]), Match: true})
		i += len(qr)
		start = i
	}
	if start < len(tr) {
		segs = append(segs, Segment{Text: string(tr[start:])})
	}
	return segs
}

func runesEqual(a, b []rune) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
