package ports

import (
	"context"

	"github.com/aretw0/taproom/pkg/domain"
)

// Resolver is the stateless turn resolver. Everything it needs arrives in the Turn, and the
// returned Outcome is the only thing it produces.
// This is the primary interface used by adapters (HTTP, MCP, CLI runner).
type Resolver interface {
	Resolve(ctx context.Context, turn domain.Turn) (*domain.Outcome, error)

	// Menu exposes the catalog the resolver prices against.
	Menu() []domain.MenuItem
}
