// Package match implements typo-tolerant scoring of record collections
// against free-form queries. It is pure and in-memory: callers hand it a
// snapshot of records plus a per-field weight configuration and get back a
// deterministic, ascending-by-score ranking.
package match

import (
	"fmt"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// DefaultThreshold excludes candidates whose normalized dissimilarity is 60%
// or worse.
const DefaultThreshold = 0.6

// FieldWeight names one matchable field and its relative weight. Higher
// weights make matches on that field rank better.
type FieldWeight struct {
	Name   string
	Weight float64
}

// Config describes how one collection is matched: which fields are eligible
// and how heavily each counts. Threshold overrides DefaultThreshold when
// positive.
type Config struct {
	Fields    []FieldWeight
	Threshold float64
}

func (c Config) validate() error {
	if len(c.Fields) == 0 {
		return fmt.Errorf("match: config has no fields")
	}
	seen := make(map[string]bool, len(c.Fields))
	positive := false
	for _, f := range c.Fields {
		if f.Name == "" {
			return fmt.Errorf("match: field with empty name")
		}
		if seen[f.Name] {
			return fmt.Errorf("match: duplicate field %q", f.Name)
		}
		seen[f.Name] = true
		if f.Weight < 0 {
			return fmt.Errorf("match: field %q has negative weight", f.Name)
		}
		if f.Weight > 0 {
			positive = true
		}
	}
	if !positive {
		return fmt.Errorf("match: all field weights are zero")
	}
	if c.Threshold < 0 || c.Threshold > 1 {
		return fmt.Errorf("match: threshold %v outside [0,1]", c.Threshold)
	}
	return nil
}

func (c Config) threshold() float64 {
	if c.Threshold > 0 {
		return c.Threshold
	}
	return DefaultThreshold
}

// Source is a read-only snapshot of one record collection. Field returns the
// named field of record i, or "" when the record has no such field.
type Source interface {
	Len() int
	Field(i int, name string) string
}

// Match references one source record by position. Score is 0 for a perfect
// match and grows with dissimilarity; Field names the field that produced
// the best score.
type Match struct {
	Index int
	Score float64
	Field string
}

// Index wraps a collection snapshot with its match configuration. It holds
// no derived state: queries score the snapshot directly, so a Rebuild is a
// plain swap. Callers must not mutate a snapshot while an Index built from
// it is in use.
type Index struct {
	cfg Config
	src Source
}

// NewIndex validates cfg and wraps src. Configuration errors (no fields,
// all-zero weights) are reported here, never mid-query.
func NewIndex(cfg Config, src Source) (*Index, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Index{cfg: cfg, src: src}, nil
}

// Rebuild replaces the snapshot entirely. There is no incremental diffing;
// the matcher is stateless per call, so a swap is always sufficient.
func (ix *Index) Rebuild(src Source) {
	ix.src = src
}

// Len reports the snapshot size.
func (ix *Index) Len() int {
	if ix.src == nil {
		return 0
	}
	return ix.src.Len()
}

// Query scores every record against query and returns matches below the
// threshold, ascending by score. Ties keep original collection order, so
// identical inputs always produce identical output. An empty or
// whitespace-only query returns every record in original order with a
// perfect score: no filter degrades to "show everything".
func (ix *Index) Query(query string) []Match {
	if ix.src == nil {
		return nil
	}
	n := ix.src.Len()

	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		all := make([]Match, n)
		for i := range all {
			all[i] = Match{Index: i}
		}
		return all
	}

	threshold := ix.cfg.threshold()
	var results []Match
	for i := 0; i < n; i++ {
		best := -1.0
		bestField := ""
		for _, f := range ix.cfg.Fields {
			if f.Weight == 0 {
				continue
			}
			s := fieldScore(q, ix.src.Field(i, f.Name))
			if s < 0 {
				continue
			}
			// Down-weighted fields rank strictly worse for the same raw
			// similarity.
			s /= f.Weight
			if best < 0 || s < best {
				best = s
				bestField = f.Name
			}
		}
		if best >= 0 && best < threshold {
			results = append(results, Match{Index: i, Score: best, Field: bestField})
		}
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score < results[b].Score
	})
	return results
}

// fieldScore computes the dissimilarity of a lowered query against one field
// value: 0 is a perfect match, values approaching 1 are unrelated, negative
// means no basis for a match at all. Similarity is edit-distance based at
// both whole-field and word granularity, so a transposed or substituted
// letter still matches.
func fieldScore(q, value string) float64 {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return -1
	}

	best := -1.0
	consider := func(s float64) {
		if best < 0 || s < best {
			best = s
		}
	}

	qLen := utf8.RuneCountInString(q)
	if idx := strings.Index(v, q); idx >= 0 {
		// Literal containment is always a strong signal; longer queries
		// cover more of the field and score closer to perfect.
		vLen := utf8.RuneCountInString(v)
		consider(0.5 * (1 - float64(qLen)/float64(vLen)))
	}
	if qLen < 2 {
		// Single-rune queries only match fields containing that rune;
		// edit distance against longer values would admit everything.
		return best
	}

	consider(normalizedDistance(q, v, qLen))
	for _, word := range strings.Fields(v) {
		consider(normalizedDistance(q, word, qLen))
	}
	return best
}

func normalizedDistance(q, s string, qLen int) float64 {
	d := levenshtein.ComputeDistance(q, s)
	n := utf8.RuneCountInString(s)
	if qLen > n {
		n = qLen
	}
	if n == 0 {
		return 1
	}
	return float64(d) / float64(n)
}
