package ports

import "github.com/aretw0/taproom/pkg/domain"

// Catalog is the read-only menu lookup consumed by the resolvers and the order assembler.
// Implementations must return items in a stable order; the snack resolver derives its flavour
// options (and therefore its matching priority) from that order.
type Catalog interface {
	// Find returns the first item satisfying match.
	Find(match func(domain.MenuItem) bool) (domain.MenuItem, bool)

	// ListByTag returns every item carrying tag, in catalog order.
	ListByTag(tag string) []domain.MenuItem

	// Items returns the whole catalog in order.
	Items() []domain.MenuItem
}

// FindByID is a convenience lookup by identifier.
func FindByID(c Catalog, id string) (domain.MenuItem, bool) {
	return c.Find(func(item domain.MenuItem) bool { return item.ID == id })
}
