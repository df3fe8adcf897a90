package resolver

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/aretw0/taproom/pkg/domain"
)

// Clarification prompts for the table slot.
const (
	PromptTableMissing    = "What table number are you sat on?"
	PromptTableOutOfRange = "Table not recognised (valid tables are 1-256)"
)

// QuantityNouns are the words that, directly after "for <digits>", mark the number as a
// quantity of food or drink rather than a table ("for 2 pints").
//
// This list is coupled to the menu: adding a product sold by a new unit (e.g. "glasses" of
// wine) requires adding that unit here too, or "for 2 glasses" will be read as table 2.
// Deployments with extra units should pass them through NewTableResolver.
var QuantityNouns = []string{"pint", "pints", "packet", "packets", "bag", "bags", "crisps", "nuts"}

var (
	tablePattern    = regexp.MustCompile(`\btable\s*#?\s*(\d+)\b`)
	hashPattern     = regexp.MustCompile(`#\s*(\d+)\b`)
	forPattern      = regexp.MustCompile(`\bfor\s*#?\s*(\d+)\b`)
	leadingWordExpr = regexp.MustCompile(`^\s*([a-z]+)`)
)

// TableResolver extracts and validates the table number.
type TableResolver struct {
	quantityNouns map[string]struct{}
}

// NewTableResolver creates a resolver that treats QuantityNouns plus extraNouns as
// quantity markers in the "for N" rule.
func NewTableResolver(extraNouns ...string) *TableResolver {
	nouns := make(map[string]struct{}, len(QuantityNouns)+len(extraNouns))
	for _, n := range QuantityNouns {
		nouns[n] = struct{}{}
	}
	for _, n := range extraNouns {
		if n = strings.ToLower(strings.TrimSpace(n)); n != "" {
			nouns[n] = struct{}{}
		}
	}
	return &TableResolver{quantityNouns: nouns}
}

// Resolve returns the table number from text, falling back to sessionTable, or a
// clarification when neither yields a table within [domain.MinTable, domain.MaxTable].
func (r *TableResolver) Resolve(text string, sessionTable *int) domain.Resolution[int] {
	table, ok := r.Extract(text)
	if !ok && sessionTable != nil {
		table, ok = *sessionTable, true
	}

	if !ok {
		return domain.NeedsInput[int](tableClarification(PromptTableMissing))
	}
	// Range is checked after extraction so an explicit bad number gets the specific prompt.
	if table < domain.MinTable || table > domain.MaxTable {
		return domain.NeedsInput[int](tableClarification(PromptTableOutOfRange))
	}
	return domain.Resolved(table)
}

// Extract finds a table number in text. Priority, first match wins:
//
//	"table 19" / "table #19"
//	"#19"
//	"for 19", unless the next word is a quantity noun ("for 2 pints")
func (r *TableResolver) Extract(text string) (int, bool) {
	lower := strings.ToLower(text)

	if m := tablePattern.FindStringSubmatch(lower); m != nil {
		return atoiSaturating(m[1]), true
	}
	if m := hashPattern.FindStringSubmatch(lower); m != nil {
		return atoiSaturating(m[1]), true
	}
	if loc := forPattern.FindStringSubmatchIndex(lower); loc != nil {
		next := ""
		if w := leadingWordExpr.FindStringSubmatch(lower[loc[1]:]); w != nil {
			next = w[1]
		}
		if _, isQuantity := r.quantityNouns[next]; !isQuantity {
			return atoiSaturating(lower[loc[2]:loc[3]]), true
		}
	}
	return 0, false
}

func tableClarification(prompt string) domain.Clarification {
	return domain.Clarification{
		Kind:   domain.ClarifyTableNumber,
		Prompt: prompt,
		Input:  &domain.InputConstraints{Min: domain.MinTable, Max: domain.MaxTable},
	}
}

// atoiSaturating parses digits, saturating on overflow so huge numbers stay out of range
// instead of disappearing.
func atoiSaturating(digits string) int {
	n, err := strconv.Atoi(digits)
	if err != nil {
		return math.MaxInt
	}
	return n
}
