package runner

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/aretw0/taproom/internal/logging"
	"github.com/aretw0/taproom/pkg/domain"
	"github.com/aretw0/taproom/pkg/ports"
	"github.com/aretw0/taproom/pkg/session"
)

// User-facing system messages.
const (
	MsgGreeting  = "What can I get you? Try \"2 pints of guinness and a bag of crisps for table 4\"."
	MsgReset     = "Order cleared. What can I get you?"
	MsgDiscarded = "Order discarded. Press Ctrl+C again to leave."
	MsgHelp      = "Answer the question, type a new order, \"reset\" to start over or \"exit\" to leave."
)

var (
	// ErrNoResolver is returned by Run when no resolver was configured.
	ErrNoResolver = errors.New("runner: no resolver configured")

	errQuit = errors.New("quit")
)

// Runner drives an interactive conversation against a resolver.
// It uses an IOHandler strategy to abstract the interaction mode (Text vs JSON).
type Runner struct {
	// Handler is the strategy for IO. Defaults to a TextHandler on stdin/stdout.
	Handler IOHandler

	// Logger is used for internal debug logging.
	// If nil, a no-op logger is used.
	Logger *slog.Logger

	resolver      ports.Resolver
	initialPrompt string
}

// NewRunner creates a Runner.
func NewRunner(opts ...Option) *Runner {
	r := &Runner{Logger: logging.NewNop()}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the turn loop until the input ends, the user quits or ctx is cancelled.
// An interrupt while an order is in progress discards the order; an interrupt with nothing in
// progress ends the loop. A handler implementing io.Closer is closed when Run returns.
func (r *Runner) Run(ctx context.Context) error {
	if r.resolver == nil {
		return ErrNoResolver
	}
	handler := r.resolveHandler()
	if c, ok := handler.(io.Closer); ok {
		defer func() {
			if err := c.Close(); err != nil {
				r.Logger.Debug("closing handler", "error", err)
			}
		}()
	}
	conv := session.New()

	signals := NewSignalManager(ctx)
	defer signals.Stop()

	if prompt := strings.TrimSpace(r.initialPrompt); prompt != "" {
		if err := r.step(ctx, handler, conv, prompt); err != nil {
			return r.finish(err)
		}
	} else if err := handler.SystemOutput(ctx, MsgGreeting); err != nil {
		return fmt.Errorf("output error: %w", err)
	}

	for {
		inputCtx := signals.Context()
		line, err := handler.Input(inputCtx)
		if err != nil {
			var inputErr *InputError
			switch {
			case ctx.Err() != nil:
				return nil
			case errors.As(err, &inputErr):
				if err := handler.SystemOutput(ctx, fmt.Sprintf("Error: %v. Please try again.", err)); err != nil {
					return fmt.Errorf("output error: %w", err)
				}
				continue
			}

			signals.CheckRace()
			if inputCtx.Err() != nil {
				if idle(conv) {
					return nil
				}
				r.Logger.Debug("order discarded by interrupt", "prompt", conv.Prompt())
				conv.Reset()
				signals.Reset()
				if err := handler.SystemOutput(ctx, MsgDiscarded); err != nil {
					return fmt.Errorf("output error: %w", err)
				}
				continue
			}
			if errors.Is(err, io.EOF) {
				return nil
			}
			return fmt.Errorf("input error: %w", err)
		}

		if err := r.step(ctx, handler, conv, line); err != nil {
			return r.finish(err)
		}
	}
}

func (r *Runner) finish(err error) error {
	if errors.Is(err, errQuit) {
		return nil
	}
	return err
}

// resolveHandler ensures a valid IOHandler is set.
func (r *Runner) resolveHandler() IOHandler {
	if r.Handler == nil {
		r.Handler = NewTextHandler(os.Stdin, os.Stdout)
	}
	return r.Handler
}

// step interprets one line of input against the open question, if any.
func (r *Runner) step(ctx context.Context, h IOHandler, conv *session.Conversation, line string) error {
	line = strings.TrimSpace(line)
	cmd := strings.ToLower(line)

	switch cmd {
	case "":
		return nil
	case "exit", "quit":
		return errQuit
	case "help", "?":
		return h.SystemOutput(ctx, MsgHelp)
	case "reset":
		conv.Reset()
		return h.SystemOutput(ctx, MsgReset)
	}

	if last := conv.Last(); last != nil && last.Kind == domain.OutcomeProposal {
		switch cmd {
		case "pay", "yes", "y":
			table, err := conv.Pay()
			if err != nil {
				return h.SystemOutput(ctx, err.Error())
			}
			r.Logger.Info("order paid", "table", table)
			return h.Confirm(ctx, table)
		case "no", "n":
			conv.Reset()
			return h.SystemOutput(ctx, MsgReset)
		}
	}

	if q, ok := conv.Pending(); ok {
		switch q.Kind {
		case domain.ClarifyTableNumber:
			if n, err := strconv.Atoi(cmd); err == nil {
				turn, err := conv.SetTable(n)
				if err != nil {
					return h.SystemOutput(ctx, err.Error())
				}
				return r.resolve(ctx, h, conv, turn)
			}
		case domain.ClarifySnackFlavour:
			if handled, err := r.answerFlavour(ctx, h, conv, q, cmd); handled || err != nil {
				return err
			}
		}
	}

	turn, err := conv.Submit(line)
	if err != nil {
		return h.SystemOutput(ctx, err.Error())
	}
	return r.resolve(ctx, h, conv, turn)
}

// answerFlavour handles "change N", an option number or an option name. handled is false when
// the line is none of those.
func (r *Runner) answerFlavour(ctx context.Context, h IOHandler, conv *session.Conversation, q domain.Clarification, cmd string) (handled bool, err error) {
	if rest, ok := strings.CutPrefix(cmd, "change "); ok {
		n, convErr := strconv.Atoi(strings.TrimSpace(rest))
		if convErr != nil {
			return false, nil
		}
		if err := conv.RemoveAt(n - 1); err != nil {
			return true, h.SystemOutput(ctx, err.Error())
		}
		return true, h.SystemOutput(ctx, selectionStatus(conv, q))
	}

	option, ok := pickOption(q.Options, cmd)
	if !ok {
		return false, nil
	}
	turn, ready, err := conv.Choose(option)
	if err != nil {
		return true, h.SystemOutput(ctx, err.Error())
	}
	if !ready {
		return true, h.SystemOutput(ctx, selectionStatus(conv, q))
	}
	return true, r.resolve(ctx, h, conv, turn)
}

func (r *Runner) resolve(ctx context.Context, h IOHandler, conv *session.Conversation, turn domain.Turn) error {
	outcome, err := r.resolver.Resolve(ctx, turn)
	if err != nil {
		return fmt.Errorf("resolve error: %w", err)
	}
	r.Logger.Debug("turn resolved", "kind", outcome.Kind)
	conv.Observe(outcome)
	if err := h.Output(ctx, outcome); err != nil {
		return fmt.Errorf("output error: %w", err)
	}
	return nil
}

// pickOption accepts a 1-based option number or an option name, ignoring case.
func pickOption(options []string, cmd string) (string, bool) {
	if n, err := strconv.Atoi(cmd); err == nil {
		if n >= 1 && n <= len(options) {
			return options[n-1], true
		}
		return "", false
	}
	for _, opt := range options {
		if strings.EqualFold(opt, cmd) {
			return opt, true
		}
	}
	return "", false
}

func selectionStatus(conv *session.Conversation, q domain.Clarification) string {
	chosen := conv.Context().Snacks
	left := max(1, q.RequiredCount) - len(chosen)
	if len(chosen) == 0 {
		return fmt.Sprintf("Nothing chosen yet. Pick %d.", left)
	}
	var sb strings.Builder
	sb.WriteString("Chosen:")
	for i, s := range chosen {
		fmt.Fprintf(&sb, " %d) %s", i+1, s)
	}
	fmt.Fprintf(&sb, ". Pick %d more, or \"change N\" to drop one.", left)
	return sb.String()
}

func idle(conv *session.Conversation) bool {
	return conv.Prompt() == "" && conv.Last() == nil
}
