package memory

import (
	"fmt"

	"github.com/aretw0/taproom/pkg/domain"
)

// DefaultMenu is the built-in bar menu.
var DefaultMenu = []domain.MenuItem{
	{ID: "beer_guinness_pint", Name: "Guinness", PricePence: 500, Tags: []string{"beer", "pint", "guinness"}},
	{ID: "crisps_ready_salted", Name: "Ready Salted Crisps", PricePence: 100, Tags: []string{"snacks", "crisps"}},
	{ID: "crisps_cheese_onion", Name: "Cheese and Onion Crisps", PricePence: 100, Tags: []string{"snacks", "crisps"}},
	{ID: "crisps_salt_vinegar", Name: "Salt and Vinegar Crisps", PricePence: 100, Tags: []string{"snacks", "crisps"}},
	{ID: "nuts", Name: "Nuts", PricePence: 999, Tags: []string{"snacks", "nuts"}},
}

// Catalog implements ports.Catalog over an immutable slice.
// Safe for concurrent use: nothing mutates it after construction.
type Catalog struct {
	items []domain.MenuItem
}

// NewCatalog validates items and copies them into a catalog.
func NewCatalog(items []domain.MenuItem) (*Catalog, error) {
	if err := domain.ValidateMenu(items); err != nil {
		return nil, fmt.Errorf("failed to build catalog: %w", err)
	}
	return &Catalog{items: cloneItems(items)}, nil
}

// NewDefaultCatalog returns a catalog holding DefaultMenu.
func NewDefaultCatalog() *Catalog {
	return &Catalog{items: cloneItems(DefaultMenu)}
}

// Find returns the first item satisfying match.
func (c *Catalog) Find(match func(domain.MenuItem) bool) (domain.MenuItem, bool) {
	for _, item := range c.items {
		if match(item) {
			return cloneItem(item), true
		}
	}
	return domain.MenuItem{}, false
}

// ListByTag returns every item carrying tag, in catalog order.
func (c *Catalog) ListByTag(tag string) []domain.MenuItem {
	var out []domain.MenuItem
	for _, item := range c.items {
		if item.HasTag(tag) {
			out = append(out, cloneItem(item))
		}
	}
	return out
}

// Items returns a copy of the whole catalog.
func (c *Catalog) Items() []domain.MenuItem {
	return cloneItems(c.items)
}

func cloneItems(items []domain.MenuItem) []domain.MenuItem {
	out := make([]domain.MenuItem, len(items))
	for i, item := range items {
		out[i] = cloneItem(item)
	}
	return out
}

func cloneItem(item domain.MenuItem) domain.MenuItem {
	item.Tags = append([]string(nil), item.Tags...)
	return item
}
