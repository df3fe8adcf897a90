package tests

import (
	"testing"

	"github.com/aretw0/taproom/pkg/domain"
	"github.com/aretw0/taproom/pkg/ports"
)

// CatalogContractTest is a reusable test suite that verifies if an adapter complies with ports.Catalog.
// want is the exact item list the catalog was built from.
func CatalogContractTest(t *testing.T, catalog ports.Catalog, want []domain.MenuItem) {
	t.Helper()

	t.Run("Items_Order", func(t *testing.T) {
		items := catalog.Items()
		if len(items) != len(want) {
			t.Fatalf("expected %d items, got %d", len(want), len(items))
		}
		for i := range want {
			if items[i].ID != want[i].ID {
				t.Errorf("item %d: got %q, want %q", i, items[i].ID, want[i].ID)
			}
		}
	})

	t.Run("Find_Success", func(t *testing.T) {
		for _, expected := range want {
			got, ok := ports.FindByID(catalog, expected.ID)
			if !ok {
				t.Fatalf("item %s not found", expected.ID)
			}
			if got.Name != expected.Name || got.PricePence != expected.PricePence {
				t.Errorf("item mismatch for %s. got %+v, want %+v", expected.ID, got, expected)
			}
		}
	})

	t.Run("Find_NotFound", func(t *testing.T) {
		if _, ok := ports.FindByID(catalog, "non-existent-item"); ok {
			t.Error("expected no match for non-existent item")
		}
	})

	t.Run("ListByTag", func(t *testing.T) {
		counts := make(map[string]int)
		for _, item := range want {
			for _, tag := range item.Tags {
				counts[tag]++
			}
		}
		for tag, n := range counts {
			got := catalog.ListByTag(tag)
			if len(got) != n {
				t.Errorf("tag %q: expected %d items, got %d", tag, n, len(got))
			}
			for _, item := range got {
				if !item.HasTag(tag) {
					t.Errorf("tag %q: item %s does not carry it", tag, item.ID)
				}
			}
		}
		if got := catalog.ListByTag("no-such-tag"); len(got) != 0 {
			t.Errorf("expected empty list for unknown tag, got %d items", len(got))
		}
	})

	t.Run("Items_Isolated", func(t *testing.T) {
		items := catalog.Items()
		if len(items) == 0 {
			return
		}
		original := items[0].Name
		items[0].Name = "mutated"
		if catalog.Items()[0].Name != original {
			t.Error("catalog returned a shared slice; callers must not be able to mutate it")
		}
	})
}
