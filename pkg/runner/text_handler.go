package runner

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/aretw0/taproom/internal/presentation/tui"
	"github.com/aretw0/taproom/pkg/domain"
)

// ContentRenderer transforms markdown before it is written, e.g. markdown to ANSI.
type ContentRenderer func(string) (string, error)

// TextHandler implements the standard text-based interface.
type TextHandler struct {
	Writer   io.Writer
	Renderer ContentRenderer

	pump     *linePump
	maxInput int
}

// TextHandlerOption defines configuration for TextHandler.
type TextHandlerOption func(*TextHandler)

// WithTextHandlerRenderer configures the content renderer.
func WithTextHandlerRenderer(renderer ContentRenderer) TextHandlerOption {
	return func(h *TextHandler) {
		h.Renderer = renderer
	}
}

// WithTextHandlerMaxInputSize overrides the sanitizer limit.
func WithTextHandlerMaxInputSize(limit int) TextHandlerOption {
	return func(h *TextHandler) {
		h.maxInput = limit
	}
}

// NewTextHandler creates a handler for standard text IO.
func NewTextHandler(r io.Reader, w io.Writer, opts ...TextHandlerOption) *TextHandler {
	if r == nil {
		r = os.Stdin
	}
	if w == nil {
		w = os.Stdout
	}
	h := &TextHandler{
		Writer: w,
		pump:   newLinePump(r),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

func (h *TextHandler) Output(ctx context.Context, outcome *domain.Outcome) error {
	return h.render(tui.Markdown(outcome))
}

func (h *TextHandler) Confirm(ctx context.Context, table int) error {
	return h.render(tui.ConfirmationMarkdown(table))
}

func (h *TextHandler) Input(ctx context.Context) (string, error) {
	if ctx.Err() != nil {
		return "", ctx.Err()
	}
	fmt.Fprint(h.Writer, "> ")

	text, err := h.pump.next(ctx)
	if err != nil {
		return "", err
	}
	return SanitizeInput(strings.TrimSpace(text), h.maxInput)
}

func (h *TextHandler) SystemOutput(ctx context.Context, msg string) error {
	_, err := fmt.Fprintf(h.Writer, "[System] %s\n", msg)
	return err
}

// Close stops the background line reader. Input returns io.EOF afterwards.
func (h *TextHandler) Close() error {
	h.pump.close()
	return nil
}

func (h *TextHandler) render(markdown string) error {
	output := markdown
	if h.Renderer != nil {
		if rendered, err := h.Renderer(markdown); err == nil {
			output = rendered
		}
	}
	_, err := fmt.Fprintln(h.Writer, strings.TrimSpace(output))
	return err
}
