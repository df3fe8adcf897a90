package tui

import (
	"fmt"
	"strings"

	"github.com/aretw0/taproom/internal/order"
	"github.com/aretw0/taproom/internal/presentation/tree"
	"github.com/aretw0/taproom/pkg/domain"
)

// Markdown renders an outcome for the terminal client. Options are numbered from 1 so the
// user can answer with a number.
func Markdown(outcome *domain.Outcome) string {
	switch t := tree.FromOutcome(outcome).(type) {
	case tree.CardTablePrompt:
		var sb strings.Builder
		fmt.Fprintf(&sb, "### %s\n\n", t.Props.Prompt)
		if t.Props.Input != nil {
			fmt.Fprintf(&sb, "_Enter a number between %d and %d._\n", t.Props.Input.Min, t.Props.Input.Max)
		}
		return sb.String()

	case tree.Choice:
		var sb strings.Builder
		fmt.Fprintf(&sb, "### %s\n\n", t.Props.Prompt)
		for i, opt := range t.Props.Options {
			fmt.Fprintf(&sb, "%d. %s\n", i+1, opt)
		}
		if t.Props.RequiredCount > 1 {
			fmt.Fprintf(&sb, "\n_Pick %d, one per bag._\n", t.Props.RequiredCount)
		}
		return sb.String()

	case tree.CardCheckout:
		var sb strings.Builder
		fmt.Fprintf(&sb, "## %s\n\n", t.Title)
		fmt.Fprintf(&sb, "**%s**\n\n", t.Message)
		for _, line := range t.Summary {
			fmt.Fprintf(&sb, "- %s\n", line)
		}
		fmt.Fprintf(&sb, "\nTotal: **%s**\n\n", order.FormatGBP(t.Total.Amount))
		fmt.Fprintf(&sb, "`%s` %s · `%s` %s\n", t.PrimaryAction.Name, t.PrimaryAction.Label, t.SecondaryAction.Name, t.SecondaryAction.Label)
		return sb.String()

	case tree.ErrorTree:
		return fmt.Sprintf("> %s\n", t.Message)
	}
	return ""
}

// ConfirmationMarkdown renders the paid-order card.
func ConfirmationMarkdown(table int) string {
	c := tree.Confirmation(table)
	return fmt.Sprintf("## %s\n\n%s\n", c.Props.Title, c.Props.Message)
}

// MenuMarkdown renders the catalog as a price list.
func MenuMarkdown(items []domain.MenuItem) string {
	var sb strings.Builder
	sb.WriteString("| Item | Price |\n|---|---:|\n")
	for _, item := range items {
		fmt.Fprintf(&sb, "| %s | %s |\n", item.Name, order.FormatPounds(item.PricePence))
	}
	return sb.String()
}
