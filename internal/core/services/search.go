package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/crately/crately-core/internal/core/domain"
	"github.com/crately/crately-core/internal/core/ports/driven"
	"github.com/crately/crately-core/internal/core/ports/driving"
	"github.com/crately/crately-core/internal/match"
)

// Ensure searchService implements SearchService
var _ driving.SearchService = (*searchService)(nil)

// SnapshotKey is the cache key under which the search snapshot lives.
// Mutating services invalidate it so a search never sees a stale inventory.
const SnapshotKey = "search:snapshot"

// snapshotTTL bounds how long an unchanged snapshot may be served from cache.
const snapshotTTL = 30 * time.Second

// Field weights per collection. Names dominate; secondary text fields still
// match but rank strictly worse at equal similarity.
var (
	boxMatchConfig = match.Config{Fields: []match.FieldWeight{
		{Name: "name", Weight: 1.0},
		{Name: "location", Weight: 0.6},
		{Name: "description", Weight: 0.4},
	}}
	itemMatchConfig = match.Config{Fields: []match.FieldWeight{
		{Name: "name", Weight: 1.0},
		{Name: "details", Weight: 0.5},
	}}
)

// boxSource adapts a box snapshot to the matcher
type boxSource []*domain.Box

func (s boxSource) Len() int { return len(s) }

func (s boxSource) Field(i int, name string) string {
	switch name {
	case "name":
		return s[i].Name
	case "location":
		return s[i].Location
	case "description":
		return s[i].Description
	}
	return ""
}

// itemSource adapts an item snapshot to the matcher
type itemSource []*domain.Item

func (s itemSource) Len() int { return len(s) }

func (s itemSource) Field(i int, name string) string {
	switch name {
	case "name":
		return s[i].Name
	case "details":
		return s[i].Details
	}
	return ""
}

// snapshot is the in-memory view of the inventory one search runs against
type snapshot struct {
	Boxes []*domain.Box  `json:"boxes"`
	Items []*domain.Item `json:"items"`
}

// searchService implements the SearchService interface. Each call builds
// fresh collection indices from a snapshot; the matcher itself holds no
// state across calls.
type searchService struct {
	boxStore  driven.BoxStore
	itemStore driven.ItemStore
	cache     driven.SnapshotCache // optional, may be nil
	logger    *slog.Logger
}

// NewSearchService creates a new SearchService. cache may be nil, in which
// case every search reads the snapshot from the stores.
func NewSearchService(
	boxStore driven.BoxStore,
	itemStore driven.ItemStore,
	cache driven.SnapshotCache,
	logger *slog.Logger,
) driving.SearchService {
	if logger == nil {
		logger = slog.Default()
	}
	return &searchService{
		boxStore:  boxStore,
		itemStore: itemStore,
		cache:     cache,
		logger:    logger,
	}
}

// Search matches query against boxes and items, joins item hits to their
// parent box, and merges both sets into one list ranked ascending by score.
func (s *searchService) Search(ctx context.Context, query string, opts domain.SearchOptions) (*domain.SearchResponse, error) {
	start := time.Now()

	if opts.Limit <= 0 {
		opts.Limit = domain.DefaultSearchOptions().Limit
	}
	if opts.Limit > 500 {
		opts.Limit = 500
	}
	orphanName := opts.OrphanName
	if orphanName == "" {
		orphanName = domain.UnknownBoxName
	}

	snap, err := s.snapshot(ctx)
	if err != nil {
		return nil, err
	}

	boxIndex, err := match.NewIndex(boxMatchConfig, boxSource(snap.Boxes))
	if err != nil {
		return nil, err
	}
	itemIndex, err := match.NewIndex(itemMatchConfig, itemSource(snap.Items))
	if err != nil {
		return nil, err
	}

	boxByID := make(map[string]*domain.Box, len(snap.Boxes))
	for _, b := range snap.Boxes {
		boxByID[b.ID] = b
	}

	// Results accumulate boxes first so that the stable sort keeps the
	// configured origin precedence and per-collection order at equal score.
	trimmed := strings.TrimSpace(query)
	results := make([]*domain.SearchResult, 0)
	appendBoxes := func() {
		for _, m := range boxIndex.Query(query) {
			b := snap.Boxes[m.Index]
			results = append(results, &domain.SearchResult{
				Origin:     domain.OriginBox,
				ID:         b.ID,
				Name:       b.Name,
				Score:      m.Score,
				Field:      m.Field,
				Location:   b.Location,
				Details:    b.Description,
				Highlights: highlightName(b.Name, trimmed),
			})
		}
	}
	appendItems := func() {
		for _, m := range itemIndex.Query(query) {
			it := snap.Items[m.Index]
			boxName := orphanName
			if parent, ok := boxByID[it.BoxID]; ok {
				boxName = parent.Name
			}
			results = append(results, &domain.SearchResult{
				Origin:     domain.OriginItem,
				ID:         it.ID,
				Name:       it.Name,
				Score:      m.Score,
				Field:      m.Field,
				Details:    it.Details,
				BoxID:      it.BoxID,
				BoxName:    boxName,
				Quantity:   it.Quantity,
				Highlights: highlightName(it.Name, trimmed),
			})
		}
	}
	if opts.BoxesFirst {
		appendBoxes()
		appendItems()
	} else {
		appendItems()
		appendBoxes()
	}

	sort.SliceStable(results, func(a, b int) bool {
		return results[a].Score < results[b].Score
	})

	total := len(results)
	if total > opts.Limit {
		results = results[:opts.Limit]
	}

	s.logger.Debug("search completed",
		"query", query,
		"hits", total,
		"boxes", len(snap.Boxes),
		"items", len(snap.Items),
		"took", time.Since(start))

	return &domain.SearchResponse{
		Query:      query,
		Results:    results,
		TotalCount: total,
		Took:       time.Since(start),
	}, nil
}

// highlightName marks the literal query occurrences in a result's display
// name. Browse mode (empty query) carries no highlights.
func highlightName(name, query string) []domain.HighlightSegment {
	if query == "" {
		return nil
	}
	segs := match.Highlight(name, query)
	out := make([]domain.HighlightSegment, len(segs))
	for i, s := range segs {
		out[i] = domain.HighlightSegment{Text: s.Text, Match: s.Match}
	}
	return out
}

// snapshot materializes the current inventory, via the cache when one is
// configured. Cache failures degrade to a direct store read.
func (s *searchService) snapshot(ctx context.Context) (*snapshot, error) {
	if s.cache != nil {
		if data, ok, err := s.cache.Get(ctx, SnapshotKey); err == nil && ok {
			var snap snapshot
			if err := json.Unmarshal(data, &snap); err == nil {
				return &snap, nil
			}
		}
	}

	boxes, err := s.boxStore.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	items, err := s.itemStore.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	snap := &snapshot{Boxes: boxes, Items: items}

	if s.cache != nil {
		if data, err := json.Marshal(snap); err == nil {
			if err := s.cache.Set(ctx, SnapshotKey, data, snapshotTTL); err != nil {
				s.logger.Debug("snapshot cache write failed", "error", err)
			}
		}
	}
	return snap, nil
}
