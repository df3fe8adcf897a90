package runner

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/aretw0/taproom/internal/presentation/tree"
	"github.com/aretw0/taproom/pkg/domain"
)

// Event types written by JSONHandler.
const (
	EventOutcome      = "outcome"
	EventConfirmation = "confirmation"
	EventSystem       = "system"
)

// Event is one line of JSONHandler output.
type Event struct {
	Type    string          `json:"type"`
	Outcome *domain.Outcome `json:"outcome,omitempty"`
	Tree    tree.Tree       `json:"tree,omitempty"`
	Message string          `json:"message,omitempty"`
}

// JSONHandler implements the IOHandler interface for structured JSON-Lines communication.
// Input lines may be plain text or a JSON string.
type JSONHandler struct {
	Encoder *json.Encoder

	pump     *linePump
	maxInput int
}

// NewJSONHandler creates a handler for JSON IO. A limit <= 0 uses MaxInputSize.
func NewJSONHandler(r io.Reader, w io.Writer, limit int) *JSONHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	return &JSONHandler{
		Encoder:  json.NewEncoder(w),
		pump:     newLinePump(r),
		maxInput: limit,
	}
}

func (h *JSONHandler) Output(ctx context.Context, outcome *domain.Outcome) error {
	return h.Encoder.Encode(Event{Type: EventOutcome, Outcome: outcome, Tree: tree.FromOutcome(outcome)})
}

func (h *JSONHandler) Confirm(ctx context.Context, table int) error {
	c := tree.Confirmation(table)
	return h.Encoder.Encode(Event{Type: EventConfirmation, Tree: c, Message: c.Props.Message})
}

func (h *JSONHandler) Input(ctx context.Context) (string, error) {
	text, err := h.pump.next(ctx)
	if err != nil {
		return "", err
	}
	text = strings.TrimSpace(text)

	var val string
	if err := json.Unmarshal([]byte(text), &val); err == nil {
		text = val
	}
	return SanitizeInput(text, h.maxInput)
}

// Close stops the background line reader. Input returns io.EOF afterwards.
func (h *JSONHandler) Close() error {
	h.pump.close()
	return nil
}

func (h *JSONHandler) SystemOutput(ctx context.Context, msg string) error {
	return h.Encoder.Encode(Event{Type: EventSystem, Message: msg})
}
