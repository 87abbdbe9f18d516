package match

import (
	"math"
	"reflect"
	"strings"
	"testing"
)

// sliceSource adapts a slice of field maps for tests
type sliceSource []map[string]string

func (s sliceSource) Len() int { return len(s) }

func (s sliceSource) Field(i int, name string) string { return s[i][name] }

func nameConfig() Config {
	return Config{Fields: []FieldWeight{{Name: "name", Weight: 1.0}}}
}

func mustIndex(t *testing.T, cfg Config, src Source) *Index {
	t.Helper()
	ix, err := NewIndex(cfg, src)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return ix
}

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestNewIndex_ConfigValidation(t *testing.T) {
	src := sliceSource{}

	tests := []struct {
		name string
		cfg  Config
	}{
		{"no fields", Config{}},
		{"empty field name", Config{Fields: []FieldWeight{{Name: "", Weight: 1}}}},
		{"duplicate field", Config{Fields: []FieldWeight{{Name: "name", Weight: 1}, {Name: "name", Weight: 0.5}}}},
		{"negative weight", Config{Fields: []FieldWeight{{Name: "name", Weight: -1}}}},
		{"all zero weights", Config{Fields: []FieldWeight{{Name: "name", Weight: 0}}}},
		{"threshold above one", Config{Fields: []FieldWeight{{Name: "name", Weight: 1}}, Threshold: 1.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := NewIndex(tt.cfg, src); err == nil {
				t.Error("expected config error")
			}
		})
	}
}

func TestQuery_TransposedTypo(t *testing.T) {
	src := sliceSource{
		{"name": "Garage Tools"},
		{"name": "Kitchen Items"},
	}
	ix := mustIndex(t, nameConfig(), src)

	matches := ix.Query("graage")

	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Index != 0 {
		t.Errorf("expected Garage Tools to match, got index %d", matches[0].Index)
	}
	// "graage" vs the word "garage": two single-rune edits over six runes
	if !approx(matches[0].Score, 2.0/6.0) {
		t.Errorf("expected score 1/3, got %v", matches[0].Score)
	}
	if matches[0].Field != "name" {
		t.Errorf("expected field 'name', got %s", matches[0].Field)
	}
}

func TestQuery_ExactWordIsPerfect(t *testing.T) {
	src := sliceSource{{"name": "Garage Tools"}}
	ix := mustIndex(t, nameConfig(), src)

	matches := ix.Query("garage")

	if len(matches) != 1 {
		t.Fatalf("expected 1 match, got %d", len(matches))
	}
	if matches[0].Score != 0 {
		t.Errorf("expected perfect score 0, got %v", matches[0].Score)
	}
}

func TestQuery_CaseInsensitive(t *testing.T) {
	src := sliceSource{{"name": "Garage Tools"}}
	ix := mustIndex(t, nameConfig(), src)

	if len(ix.Query("GARAGE")) != 1 {
		t.Error("expected uppercase query to match")
	}
	if len(ix.Query("  garage  ")) != 1 {
		t.Error("expected surrounding whitespace to be ignored")
	}
}

func TestQuery_EmptyReturnsEverything(t *testing.T) {
	src := sliceSource{
		{"name": "Garage Tools"},
		{"name": "Kitchen Items"},
		{"name": "Winter Clothes"},
	}
	ix := mustIndex(t, nameConfig(), src)

	for _, q := range []string{"", "   ", "\t\n"} {
		matches := ix.Query(q)
		if len(matches) != len(src) {
			t.Fatalf("query %q: expected %d matches, got %d", q, len(src), len(matches))
		}
		for i, m := range matches {
			if m.Index != i || m.Score != 0 {
				t.Errorf("query %q: expected record %d with score 0, got %+v", q, i, m)
			}
		}
	}
}

func TestQuery_NoHitsIsEmptyNotError(t *testing.T) {
	src := sliceSource{{"name": "Garage Tools"}}
	ix := mustIndex(t, nameConfig(), src)

	if matches := ix.Query("zzzzzzzz"); len(matches) != 0 {
		t.Errorf("expected no matches, got %+v", matches)
	}
}

func TestQuery_Deterministic(t *testing.T) {
	src := sliceSource{
		{"name": "Garage Tools"},
		{"name": "Garden Gloves"},
		{"name": "Garbage Bags"},
	}
	ix := mustIndex(t, nameConfig(), src)

	first := ix.Query("gar")
	for i := 0; i < 10; i++ {
		if got := ix.Query("gar"); !reflect.DeepEqual(first, got) {
			t.Fatalf("run %d differs: %+v vs %+v", i, first, got)
		}
	}
}

func TestQuery_AscendingWithStableTies(t *testing.T) {
	// Two identical names tie exactly; original collection order must hold.
	src := sliceSource{
		{"name": "Hammer"},
		{"name": "Hummer"},
		{"name": "Hammer"},
	}
	ix := mustIndex(t, nameConfig(), src)

	matches := ix.Query("hammer")

	if len(matches) != 3 {
		t.Fatalf("expected 3 matches, got %d", len(matches))
	}
	for i := 1; i < len(matches); i++ {
		if matches[i].Score < matches[i-1].Score {
			t.Errorf("scores not ascending: %+v", matches)
		}
	}
	// Both perfect hits precede the typo hit, in collection order
	if matches[0].Index != 0 || matches[1].Index != 2 || matches[2].Index != 1 {
		t.Errorf("unexpected order: %+v", matches)
	}
}

func TestQuery_WeightDivision(t *testing.T) {
	// The same raw similarity on a half-weight field ranks strictly worse.
	cfg := Config{
		Fields: []FieldWeight{
			{Name: "name", Weight: 1.0},
			{Name: "details", Weight: 0.5},
		},
		Threshold: 0.9,
	}
	src := sliceSource{
		{"name": "Hammer", "details": ""},
		{"name": "Wrench", "details": "Hammer"},
	}
	ix := mustIndex(t, cfg, src)

	matches := ix.Query("hammre")

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %+v", matches)
	}
	if matches[0].Index != 0 {
		t.Errorf("expected full-weight name match first, got %+v", matches)
	}
	if !approx(matches[1].Score, matches[0].Score*2) {
		t.Errorf("expected half-weight field to score double: %+v", matches)
	}
	if matches[1].Field != "details" {
		t.Errorf("expected details field, got %s", matches[1].Field)
	}
}

func TestQuery_ZeroWeightFieldIgnored(t *testing.T) {
	cfg := Config{Fields: []FieldWeight{
		{Name: "name", Weight: 1.0},
		{Name: "location", Weight: 0},
	}}
	src := sliceSource{{"name": "Books", "location": "hammer shelf"}}
	ix := mustIndex(t, cfg, src)

	if matches := ix.Query("hammer"); len(matches) != 0 {
		t.Errorf("expected zero-weight field to be ignored, got %+v", matches)
	}
}

func TestQuery_SingleRune(t *testing.T) {
	src := sliceSource{
		{"name": "Garage Tools"},
		{"name": "Kitchen Items"},
	}
	ix := mustIndex(t, nameConfig(), src)

	matches := ix.Query("g")

	// Containment only: edit distance for one rune would admit everything
	if len(matches) != 1 || matches[0].Index != 0 {
		t.Errorf("expected only the containing record, got %+v", matches)
	}
}

func TestQuery_ContainmentScoresByCoverage(t *testing.T) {
	src := sliceSource{
		{"name": "Toolbox"},        // query covers more of the value
		{"name": "Toolbox Corner"}, // query covers less
	}
	ix := mustIndex(t, nameConfig(), src)

	matches := ix.Query("toolb")

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %+v", matches)
	}
	if matches[0].Index != 0 {
		t.Errorf("expected better coverage to rank first, got %+v", matches)
	}
	if matches[0].Score >= matches[1].Score {
		t.Errorf("expected strictly better score for full coverage: %+v", matches)
	}
}

func TestQuery_ThresholdFiltering(t *testing.T) {
	src := sliceSource{{"name": "Hammer"}}

	strict := mustIndex(t, Config{
		Fields:    []FieldWeight{{Name: "name", Weight: 1.0}},
		Threshold: 0.1,
	}, src)
	if matches := strict.Query("hammre"); len(matches) != 0 {
		t.Errorf("expected strict threshold to exclude typo, got %+v", matches)
	}

	lax := mustIndex(t, nameConfig(), src)
	if matches := lax.Query("hammre"); len(matches) != 1 {
		t.Errorf("expected default threshold to admit typo, got %+v", matches)
	}
}

func TestQuery_MissingFieldSkipped(t *testing.T) {
	cfg := Config{Fields: []FieldWeight{
		{Name: "name", Weight: 1.0},
		{Name: "description", Weight: 0.4},
	}}
	src := sliceSource{{"name": "Hammer"}} // no description at all
	ix := mustIndex(t, cfg, src)

	matches := ix.Query("hammer")
	if len(matches) != 1 || matches[0].Score != 0 {
		t.Errorf("expected a clean match despite missing field, got %+v", matches)
	}
}

func TestRebuild_SwapsSnapshot(t *testing.T) {
	ix := mustIndex(t, nameConfig(), sliceSource{{"name": "Hammer"}})

	if ix.Len() != 1 {
		t.Fatalf("expected length 1, got %d", ix.Len())
	}

	ix.Rebuild(sliceSource{{"name": "Wrench"}, {"name": "Pliers"}})

	if ix.Len() != 2 {
		t.Errorf("expected length 2 after rebuild, got %d", ix.Len())
	}
	if matches := ix.Query("hammer"); len(matches) != 0 {
		t.Errorf("expected old records gone after rebuild, got %+v", matches)
	}
	if matches := ix.Query("wrench"); len(matches) != 1 {
		t.Errorf("expected new records matchable, got %+v", matches)
	}
}

func TestQuery_UnicodeRuneCounting(t *testing.T) {
	src := sliceSource{{"name": "Café Décor"}}
	ix := mustIndex(t, nameConfig(), src)

	matches := ix.Query("café")
	if len(matches) != 1 {
		t.Fatalf("expected multibyte query to match, got %+v", matches)
	}

	// One substitution over four runes, not over byte length
	matches = ix.Query("cafe")
	if len(matches) != 1 {
		t.Fatalf("expected accent typo to match, got %+v", matches)
	}
	if !approx(matches[0].Score, 1.0/4.0) {
		t.Errorf("expected score 1/4, got %v", matches[0].Score)
	}
}

func TestQuery_LongQueryNormalizedByQueryLength(t *testing.T) {
	src := sliceSource{{"name": "Saw"}}
	ix := mustIndex(t, nameConfig(), src)

	// Query much longer than the value: distance normalizes by the longer
	// side, so unrelated long queries stay excluded.
	if matches := ix.Query(strings.Repeat("saw", 10)); len(matches) != 0 {
		t.Errorf("expected long unrelated query excluded, got %+v", matches)
	}
}
