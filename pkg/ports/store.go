package ports

import (
	"context"

	"github.com/aretw0/taproom/pkg/domain"
)

// TurnCache memoizes turn outcomes. The pipeline is a pure function of the turn input, so a
// cached outcome is always equal to a recomputed one; the cache holds no conversation state.
type TurnCache interface {
	// Get returns the outcome stored under key.
	// Returns domain.ErrCacheMiss if nothing is stored.
	Get(ctx context.Context, key string) (*domain.Outcome, error)

	// Set stores the outcome under key.
	Set(ctx context.Context, key string, outcome *domain.Outcome) error
}
