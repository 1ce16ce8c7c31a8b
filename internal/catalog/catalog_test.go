package catalog

import (
	"context"
	"strings"
	"testing"
)

func TestInventoryContext_Format(t *testing.T) {
	products := []Product{
		{ID: "p1", Name: "Bike", Price: 12000, Location: "Town"},
		{ID: "abc-9", Name: "Desk", Price: 8500, Location: "Njoro"},
	}

	got := InventoryContext(products)

	want := "[ID: p1] Bike - KES 12000 in Town\n[ID: abc-9] Desk - KES 8500 in Njoro"
	if got != want {
		t.Errorf("InventoryContext() = %q, want %q", got, want)
	}
}

func TestInventoryContext_EmptyCatalogSentinel(t *testing.T) {
	if got := InventoryContext(nil); got != EmptyInventorySentinel {
		t.Errorf("InventoryContext(nil) = %q, want sentinel", got)
	}
	if got := InventoryContext([]Product{}); got != EmptyInventorySentinel {
		t.Errorf("InventoryContext(empty) = %q, want sentinel", got)
	}
}

func TestMemoryStore_SnapshotIsolation(t *testing.T) {
	store := NewMemoryStore([]Product{{ID: "a", Name: "A"}})

	snap, err := store.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(snap) != 1 {
		t.Fatalf("ListAll() returned %d products, want 1", len(snap))
	}

	// A refresh must not affect snapshots already handed out.
	store.Replace([]Product{{ID: "b", Name: "B"}, {ID: "c", Name: "C"}})
	if snap[0].ID != "a" {
		t.Errorf("earlier snapshot mutated: got %q", snap[0].ID)
	}

	snap2, err := store.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll() after replace error = %v", err)
	}
	if len(snap2) != 2 || snap2[0].ID != "b" {
		t.Errorf("ListAll() after replace = %v", snap2)
	}
}

func TestMemoryStore_CancelledContext(t *testing.T) {
	store := NewMemoryStore(nil)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := store.ListAll(ctx); err == nil {
		t.Error("ListAll() with cancelled context should fail")
	}
}

func TestParseSeed(t *testing.T) {
	data := []byte(`
products:
  - id: p1
    name: Bike
    price: 12000
    category: Other
    condition: Used
    status: Available
    stock: 1
    location: Town
`)
	products, err := ParseSeed(data)
	if err != nil {
		t.Fatalf("ParseSeed() error = %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("ParseSeed() returned %d products, want 1", len(products))
	}
	p := products[0]
	if p.ID != "p1" || p.Name != "Bike" || p.Price != 12000 || p.Location != "Town" {
		t.Errorf("ParseSeed() product = %+v", p)
	}
}

func TestParseSeed_RejectsMissingID(t *testing.T) {
	data := []byte("products:\n  - name: NoID\n    price: 5\n")
	if _, err := ParseSeed(data); err == nil {
		t.Error("ParseSeed() should reject a product without id")
	}
}

func TestParseSeed_BadYAML(t *testing.T) {
	if _, err := ParseSeed([]byte("products: [")); err == nil {
		t.Error("ParseSeed() should fail on malformed YAML")
	}
}

func TestDefaultSeed(t *testing.T) {
	seed := DefaultSeed()
	if len(seed) == 0 {
		t.Fatal("DefaultSeed() is empty")
	}
	seen := map[string]bool{}
	for _, p := range seed {
		if p.ID == "" {
			t.Errorf("seed product %q has no id", p.Name)
		}
		if seen[p.ID] {
			t.Errorf("duplicate seed id %q", p.ID)
		}
		seen[p.ID] = true
		if p.Price <= 0 {
			t.Errorf("seed product %q has price %d", p.Name, p.Price)
		}
	}
	// The serialized seed must feed straight into an assistant prompt.
	if !strings.Contains(InventoryContext(seed), "[ID: ") {
		t.Error("seed inventory context carries no markers")
	}
}
