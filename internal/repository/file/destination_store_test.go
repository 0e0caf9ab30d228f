package file

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/njprem/Travel_Diary_BackEnd/internal/domain"
)

func newTestStore(t *testing.T) *DestinationStore {
	t.Helper()
	store := NewDestinationStore(filepath.Join(t.TempDir(), "user-destinations.json"))
	fixed := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	store.now = func() time.Time { return fixed }
	return store
}

func TestDestinationStore_ListMissingFileIsEmpty(t *testing.T) {
	store := newTestStore(t)

	list, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list == nil || len(list) != 0 {
		t.Fatalf("expected empty non-nil list, got %#v", list)
	}
}

func TestDestinationStore_AppendPrependsAndFlags(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	first, err := store.Append(ctx, domain.Destination{Name: "Tbilisi", Country: "Georgia", Lat: "41.71", Lng: "44.79"})
	if err != nil {
		t.Fatalf("append first: %v", err)
	}
	second, err := store.Append(ctx, domain.Destination{Name: "Baku", Country: "Azerbaiyán", Lat: "40.40", Lng: "49.86"})
	if err != nil {
		t.Fatalf("append second: %v", err)
	}

	if !first.IsUserAdded || !second.IsUserAdded {
		t.Fatal("appended destinations must be flagged as user added")
	}
	if first.ID != time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC).UnixMilli() {
		t.Fatalf("expected timestamp id, got %d", first.ID)
	}
	if second.ID <= first.ID {
		t.Fatalf("expected strictly increasing ids, got %d then %d", first.ID, second.ID)
	}

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 destinations, got %d", len(list))
	}
	if list[0].Name != "Baku" || list[1].Name != "Tbilisi" {
		t.Fatalf("expected newest first, got %q then %q", list[0].Name, list[1].Name)
	}
}

func TestDestinationStore_AppendDuplicateConflicts(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Append(ctx, domain.Destination{Name: "Tbilisi", Country: "Georgia"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	before, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	_, err = store.Append(ctx, domain.Destination{Name: "Tbilisi", Country: "Georgia", Festivals: "other"})
	if !errors.Is(err, domain.ErrDestinationExists) {
		t.Fatalf("expected ErrDestinationExists, got %v", err)
	}

	after, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(before) != string(after) {
		t.Fatal("store file changed after a rejected append")
	}
}

func TestDestinationStore_SameNameDifferentCountryAllowed(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	if _, err := store.Append(ctx, domain.Destination{Name: "Córdoba", Country: "España"}); err != nil {
		t.Fatalf("append: %v", err)
	}
	if _, err := store.Append(ctx, domain.Destination{Name: "Córdoba", Country: "Argentina"}); err != nil {
		t.Fatalf("expected second Córdoba to be accepted, got %v", err)
	}
}

func TestDestinationStore_CorruptFileErrors(t *testing.T) {
	store := newTestStore(t)
	if err := os.WriteFile(store.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	if _, err := store.List(context.Background()); err == nil {
		t.Fatal("expected decode error for corrupt file")
	}
	if _, err := store.Append(context.Background(), domain.Destination{Name: "A", Country: "B"}); err == nil {
		t.Fatal("expected append to fail on corrupt file")
	}
}

func TestDestinationStore_ListOverridesProvenance(t *testing.T) {
	store := newTestStore(t)
	seed := `[{"id": 7, "name": "Lisboa", "country": "Portugal", "isUserAdded": false}]`
	if err := os.WriteFile(store.Path(), []byte(seed), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	list, err := store.List(context.Background())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 1 || !list[0].IsUserAdded {
		t.Fatalf("expected stored entry flagged as user added, got %#v", list)
	}
}

func TestDestinationStore_ConcurrentAppendsKeepEveryEntry(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	names := []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	var wg sync.WaitGroup
	for _, name := range names {
		wg.Add(1)
		go func(name string) {
			defer wg.Done()
			if _, err := store.Append(ctx, domain.Destination{Name: name, Country: "X"}); err != nil {
				t.Errorf("append %s: %v", name, err)
			}
		}(name)
	}
	wg.Wait()

	list, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != len(names) {
		t.Fatalf("expected %d entries, got %d", len(names), len(list))
	}
	seen := map[int64]bool{}
	for _, d := range list {
		if seen[d.ID] {
			t.Fatalf("duplicate id %d", d.ID)
		}
		seen[d.ID] = true
	}
}
