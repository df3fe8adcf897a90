package domain

import (
	"fmt"
	"slices"
)

// MenuItem is a single orderable product of the catalog.
type MenuItem struct {
	ID         string   `json:"id" yaml:"id" mapstructure:"id"`
	Name       string   `json:"name" yaml:"name" mapstructure:"name"`
	PricePence int64    `json:"pricePence" yaml:"price_pence" mapstructure:"price_pence"`
	Tags       []string `json:"tags" yaml:"tags" mapstructure:"tags"`
}

// HasTag reports whether the item carries the given tag.
func (m MenuItem) HasTag(tag string) bool {
	return slices.Contains(m.Tags, tag)
}

// ValidateMenu checks that every item has an identifier and a name, identifiers are
// unique, and prices are not negative.
func ValidateMenu(items []MenuItem) error {
	seen := make(map[string]struct{}, len(items))
	for i, item := range items {
		if item.ID == "" {
			return fmt.Errorf("%w: item %d has no id", ErrInvalidMenu, i)
		}
		if item.Name == "" {
			return fmt.Errorf("%w: item %q has no name", ErrInvalidMenu, item.ID)
		}
		if item.PricePence < 0 {
			return fmt.Errorf("%w: item %q has negative price %d", ErrInvalidMenu, item.ID, item.PricePence)
		}
		if _, dup := seen[item.ID]; dup {
			return fmt.Errorf("%w: duplicate id %q", ErrInvalidMenu, item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	return nil
}
