package runner

import (
	"log/slog"

	"github.com/aretw0/taproom/pkg/ports"
)

// Option defines a functional option for configuring the Runner.
type Option func(*Runner)

// WithResolver configures the resolver turns are sent to. Required.
func WithResolver(resolver ports.Resolver) Option {
	return func(r *Runner) {
		r.resolver = resolver
	}
}

// WithLogger configures the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Runner) {
		if logger != nil {
			r.Logger = logger
		}
	}
}

// WithInputHandler configures a custom IOHandler.
func WithInputHandler(handler IOHandler) Option {
	return func(r *Runner) {
		r.Handler = handler
	}
}

// WithInitialPrompt resolves prompt before reading any input.
func WithInitialPrompt(prompt string) Option {
	return func(r *Runner) {
		r.initialPrompt = prompt
	}
}
