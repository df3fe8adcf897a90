package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/aretw0/taproom/internal/presentation/graph"
	"github.com/aretw0/taproom/internal/presentation/tree"
	"github.com/aretw0/taproom/internal/presentation/tui"
	"github.com/aretw0/taproom/pkg/domain"
	"github.com/aretw0/taproom/pkg/ports"
)

// Output formats of the resolve and menu commands.
const (
	FormatJSON     = "json"
	FormatTree     = "tree"
	FormatMarkdown = "markdown"
	FormatMermaid  = "mermaid"
)

// ResolveOptions configures a one-shot resolution.
type ResolveOptions struct {
	Prompt string
	// Context is a raw JSON session context, decoded leniently.
	Context string
	Format  string
}

// RunResolve resolves a single turn and writes it to w in the requested format.
func RunResolve(ctx context.Context, resolver ports.Resolver, w io.Writer, opts ResolveOptions) error {
	var sessionCtx domain.SessionContext
	if raw := strings.TrimSpace(opts.Context); raw != "" {
		if err := json.Unmarshal([]byte(raw), &sessionCtx); err != nil {
			return fmt.Errorf("error parsing --context JSON: %w", err)
		}
	}

	outcome, err := resolver.Resolve(ctx, domain.Turn{Text: opts.Prompt, Context: sessionCtx})
	if err != nil {
		return err
	}

	switch opts.Format {
	case "", FormatJSON:
		return writeJSON(w, outcome)
	case FormatTree:
		return writeJSON(w, tree.FromOutcome(outcome))
	case FormatMarkdown:
		_, err := io.WriteString(w, tui.Markdown(outcome))
		return err
	case FormatMermaid:
		_, err := fmt.Fprintln(w, graph.GenerateMermaid(graph.TraceOutcome(outcome)))
		return err
	default:
		return fmt.Errorf("unknown format %q (json, tree, markdown, mermaid)", opts.Format)
	}
}

// RunMenu writes the catalog as JSON or as a markdown price list.
func RunMenu(resolver ports.Resolver, w io.Writer, format string) error {
	switch format {
	case "", FormatMarkdown:
		_, err := io.WriteString(w, tui.MenuMarkdown(resolver.Menu()))
		return err
	case FormatJSON:
		return writeJSON(w, resolver.Menu())
	default:
		return fmt.Errorf("unknown format %q (json, markdown)", format)
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
