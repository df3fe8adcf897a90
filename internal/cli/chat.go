package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/taproom"
	"github.com/aretw0/taproom/internal/presentation/tui"
	"github.com/aretw0/taproom/pkg/ports"
	"github.com/aretw0/taproom/pkg/runner"
	"golang.org/x/term"
)

// ChatOptions configures an interactive session.
type ChatOptions struct {
	// JSON switches to JSON-lines IO.
	JSON bool
	// Prompt is resolved before any input is read.
	Prompt       string
	MaxInputSize int
	In           io.Reader
	Out          io.Writer
}

// RunChat runs the interactive turn loop until input ends or the user quits.
func RunChat(ctx context.Context, resolver ports.Resolver, logger *slog.Logger, opts ChatOptions) error {
	if opts.In == nil {
		opts.In = os.Stdin
	}
	if opts.Out == nil {
		opts.Out = os.Stdout
	}

	var handler runner.IOHandler
	if opts.JSON {
		handler = runner.NewJSONHandler(opts.In, opts.Out, opts.MaxInputSize)
	} else {
		textOpts := []runner.TextHandlerOption{runner.WithTextHandlerMaxInputSize(opts.MaxInputSize)}
		if IsTerminal(opts.Out) {
			tui.PrintBanner(opts.Out, strings.TrimSpace(taproom.Version))
			textOpts = append(textOpts, runner.WithTextHandlerRenderer(tui.NewRenderer()))
		}
		handler = runner.NewTextHandler(opts.In, opts.Out, textOpts...)
	}

	r := runner.NewRunner(
		runner.WithResolver(resolver),
		runner.WithLogger(logger),
		runner.WithInputHandler(handler),
		runner.WithInitialPrompt(opts.Prompt),
	)
	return r.Run(ctx)
}

// IsTerminal reports whether w is an interactive terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
