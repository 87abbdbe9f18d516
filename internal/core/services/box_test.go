package services

import (
	"context"
	"errors"
	"testing"

	"github.com/crately/crately-core/internal/core/domain"
	"github.com/crately/crately-core/internal/core/ports/driven/mocks"
	"github.com/crately/crately-core/internal/core/ports/driving"
	"github.com/crately/crately-core/internal/label"
)

func TestBoxCreate_Success(t *testing.T) {
	boxStore := mocks.NewMockBoxStore()
	itemStore := mocks.NewMockItemStore()
	svc := NewBoxService(boxStore, itemStore, nil)

	box, err := svc.Create(context.Background(), driving.CreateBoxRequest{
		Name:        "  Garage Tools  ",
		Location:    " Garage ",
		Description: "Hand tools",
	})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if box.Name != "Garage Tools" {
		t.Errorf("expected trimmed name, got %q", box.Name)
	}
	if box.Location != "Garage" {
		t.Errorf("expected trimmed location, got %q", box.Location)
	}
	if !label.IsCanonicalID(box.ID) {
		t.Errorf("expected canonical identifier, got %q", box.ID)
	}
	if box.CreatedAt.IsZero() || box.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	stored, err := boxStore.Get(context.Background(), box.ID)
	if err != nil {
		t.Fatalf("expected box persisted: %v", err)
	}
	if stored.Name != "Garage Tools" {
		t.Errorf("persisted name mismatch: %q", stored.Name)
	}
}

func TestBoxCreate_EmptyName(t *testing.T) {
	svc := NewBoxService(mocks.NewMockBoxStore(), mocks.NewMockItemStore(), nil)

	for _, name := range []string{"", "   ", "\t"} {
		if _, err := svc.Create(context.Background(), driving.CreateBoxRequest{Name: name}); !errors.Is(err, domain.ErrInvalidInput) {
			t.Errorf("Create(%q): expected ErrInvalidInput, got %v", name, err)
		}
	}
}

func TestBoxCreate_InvalidatesSnapshot(t *testing.T) {
	cache := mocks.NewMockSnapshotCache()
	svc := NewBoxService(mocks.NewMockBoxStore(), mocks.NewMockItemStore(), cache)

	if _, err := svc.Create(context.Background(), driving.CreateBoxRequest{Name: "Attic"}); err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if cache.Invalidations != 1 {
		t.Errorf("expected 1 snapshot invalidation, got %d", cache.Invalidations)
	}
}

func TestBoxGet_EnrichesItemCount(t *testing.T) {
	boxStore := mocks.NewMockBoxStore()
	itemStore := mocks.NewMockItemStore()
	box := seedBox(t, boxStore, "box-1", "Garage Tools", "Garage")
	seedItem(t, itemStore, "item-1", box.ID, "Hammer", 1)
	seedItem(t, itemStore, "item-2", box.ID, "Saw", 1)

	svc := NewBoxService(boxStore, itemStore, nil)

	got, err := svc.Get(context.Background(), box.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if got.ItemCount != 2 {
		t.Errorf("expected item count 2, got %d", got.ItemCount)
	}
}

func TestBoxGet_NotFound(t *testing.T) {
	svc := NewBoxService(mocks.NewMockBoxStore(), mocks.NewMockItemStore(), nil)

	if _, err := svc.Get(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBoxList_FilterAndCounts(t *testing.T) {
	boxStore := mocks.NewMockBoxStore()
	itemStore := mocks.NewMockItemStore()
	garage := seedBox(t, boxStore, "box-1", "Garage Tools", "Garage")
	seedBox(t, boxStore, "box-2", "Winter Clothes", "Attic")
	seedItem(t, itemStore, "item-1", garage.ID, "Hammer", 1)

	svc := NewBoxService(boxStore, itemStore, nil)

	boxes, err := svc.List(context.Background(), domain.BoxFilter{Location: "garage"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(boxes) != 1 {
		t.Fatalf("expected 1 box, got %d", len(boxes))
	}
	if boxes[0].ID != garage.ID {
		t.Errorf("expected garage box, got %q", boxes[0].ID)
	}
	if boxes[0].ItemCount != 1 {
		t.Errorf("expected item count 1, got %d", boxes[0].ItemCount)
	}
}

func TestBoxUpdate_Partial(t *testing.T) {
	boxStore := mocks.NewMockBoxStore()
	box := seedBox(t, boxStore, "box-1", "Garage Tools", "Garage")

	svc := NewBoxService(boxStore, mocks.NewMockItemStore(), nil)

	newName := "Power Tools"
	updated, err := svc.Update(context.Background(), box.ID, driving.UpdateBoxRequest{Name: &newName})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "Power Tools" {
		t.Errorf("expected updated name, got %q", updated.Name)
	}
	if updated.Location != "Garage" {
		t.Errorf("expected untouched location, got %q", updated.Location)
	}
	if !updated.UpdatedAt.After(box.UpdatedAt) {
		t.Error("expected updated_at to advance")
	}
}

func TestBoxUpdate_EmptyNameRejected(t *testing.T) {
	boxStore := mocks.NewMockBoxStore()
	box := seedBox(t, boxStore, "box-1", "Garage Tools", "")

	svc := NewBoxService(boxStore, mocks.NewMockItemStore(), nil)

	empty := "   "
	if _, err := svc.Update(context.Background(), box.ID, driving.UpdateBoxRequest{Name: &empty}); !errors.Is(err, domain.ErrInvalidInput) {
		t.Errorf("expected ErrInvalidInput, got %v", err)
	}
}

func TestBoxUpdate_NotFound(t *testing.T) {
	svc := NewBoxService(mocks.NewMockBoxStore(), mocks.NewMockItemStore(), nil)

	name := "X"
	if _, err := svc.Update(context.Background(), "nope", driving.UpdateBoxRequest{Name: &name}); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBoxDelete_CascadesToItems(t *testing.T) {
	boxStore := mocks.NewMockBoxStore()
	itemStore := mocks.NewMockItemStore()
	cache := mocks.NewMockSnapshotCache()
	box := seedBox(t, boxStore, "box-1", "Garage Tools", "")
	other := seedBox(t, boxStore, "box-2", "Attic", "")
	seedItem(t, itemStore, "item-1", box.ID, "Hammer", 1)
	seedItem(t, itemStore, "item-2", box.ID, "Saw", 1)
	kept := seedItem(t, itemStore, "item-3", other.ID, "Blanket", 1)

	svc := NewBoxService(boxStore, itemStore, cache)

	if err := svc.Delete(context.Background(), box.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := boxStore.Get(context.Background(), box.ID); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected box gone, got %v", err)
	}
	for _, id := range []string{"item-1", "item-2"} {
		if _, err := itemStore.Get(context.Background(), id); !errors.Is(err, domain.ErrNotFound) {
			t.Errorf("expected item %s deleted with its box, got %v", id, err)
		}
	}
	if _, err := itemStore.Get(context.Background(), kept.ID); err != nil {
		t.Errorf("expected other box's item to survive: %v", err)
	}
	if cache.Invalidations != 1 {
		t.Errorf("expected 1 snapshot invalidation, got %d", cache.Invalidations)
	}
}

func TestBoxDelete_NotFound(t *testing.T) {
	svc := NewBoxService(mocks.NewMockBoxStore(), mocks.NewMockItemStore(), nil)

	if err := svc.Delete(context.Background(), "nope"); !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestBoxStats(t *testing.T) {
	boxStore := mocks.NewMockBoxStore()
	itemStore := mocks.NewMockItemStore()
	seedBox(t, boxStore, "box-1", "Garage Tools", "")
	seedBox(t, boxStore, "box-2", "Attic", "")
	seedItem(t, itemStore, "item-1", "box-1", "Hammer", 2)
	seedItem(t, itemStore, "item-2", "box-1", "Nails", 500)

	svc := NewBoxService(boxStore, itemStore, nil)

	stats, err := svc.Stats(context.Background())
	if err != nil {
		t.Fatalf("Stats failed: %v", err)
	}
	if stats.TotalBoxes != 2 {
		t.Errorf("expected 2 boxes, got %d", stats.TotalBoxes)
	}
	if stats.TotalItems != 2 {
		t.Errorf("expected 2 items, got %d", stats.TotalItems)
	}
	if stats.TotalQuantity != 502 {
		t.Errorf("expected total quantity 502, got %d", stats.TotalQuantity)
	}
	if stats.Timestamp.IsZero() {
		t.Error("expected timestamp set")
	}
}
