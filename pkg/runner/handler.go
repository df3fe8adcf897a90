package runner

import (
	"context"

	"github.com/aretw0/taproom/pkg/domain"
)

// IOHandler defines the strategy for interacting with the user.
// This allows switching between Text (terminal) and JSON (structured) modes.
type IOHandler interface {
	// Output presents the outcome of a turn.
	Output(ctx context.Context, outcome *domain.Outcome) error

	// Confirm presents the paid order for table.
	Confirm(ctx context.Context, table int) error

	// Input reads the next line from the user. Sanitizer failures are returned as *InputError
	// and do not end the loop.
	Input(ctx context.Context) (string, error)

	// SystemOutput presents a meta-message to the user (hints, status updates).
	// This is distinct from outcome rendering.
	SystemOutput(ctx context.Context, msg string) error
}
