package resolver

import (
	"regexp"
	"strings"

	"github.com/aretw0/taproom/pkg/domain"
	"github.com/aretw0/taproom/pkg/ports"
)

// Clarification prompts and field name for the snack slot.
const (
	PromptSnackSingle   = "Which crisps would you like?"
	PromptSnackMultiple = "Choose crisp flavours"
	SnackFieldName      = "crisps"
)

var (
	crispWord = regexp.MustCompile(`(?i)\bcrisps?\b`)

	// "2 bags of crisps", "three packets crisps"
	numericCrispBags = regexp.MustCompile(`(?i)\b(` + numberPattern + `)\s+(?:bags?|packets?)(?:\s+of)?\s+crisps?\b`)
	// "a bag of crisps", "one packet crisps"
	singularCrispBag = regexp.MustCompile(`(?i)\b(?:a|one)\s+(?:bag|packet)(?:\s+of)?\s+crisps?\b`)
	// "a bag of cheese and onion": only counts when the segment also names a known flavour.
	flavouredBag = regexp.MustCompile(`(?i)\b(a|` + numberPattern + `)\s+(?:bags?|packets?)\b`)

	// Whole-utterance fallback used when no segment yields a quantity.
	looseNumericCrisps = regexp.MustCompile(`(?i)\b(` + numberPattern + `)\s+bags?\s+of\s+crisps?\b`)
)

// snackRequest is what one segment of the utterance asks for.
type snackRequest struct {
	quantity int
	flavour  string
}

// snackParse is the text-only reading of an utterance, before the session context is consulted.
type snackParse struct {
	wantsSnacks bool
	totalBags   int
	flavours    []string
}

// SnackResolver extracts crisp orders and merges them with flavours chosen on previous turns.
type SnackResolver struct {
	flavours []string
}

// NewSnackResolver derives the flavour options from every catalog item tagged "crisps",
// keeping catalog order. That order is also the matching priority.
func NewSnackResolver(catalog ports.Catalog) *SnackResolver {
	items := catalog.ListByTag(domain.TagCrisps)
	flavours := make([]string, 0, len(items))
	for _, item := range items {
		flavours = append(flavours, FlavourLabel(item.Name))
	}
	return &SnackResolver{flavours: flavours}
}

// Flavours returns the flavour labels offered in clarifications.
func (r *SnackResolver) Flavours() []string {
	return append([]string(nil), r.flavours...)
}

// Resolve settles the snack order for this turn. Flavours fully named in the text win;
// otherwise the session context must hold exactly one selection per bag, or the caller is
// asked to choose.
func (r *SnackResolver) Resolve(text string, session domain.SessionContext) domain.Resolution[domain.SnackIntent] {
	parsed := r.parse(text)
	if !parsed.wantsSnacks {
		return domain.Resolved(domain.SnackIntent{Quantity: 0, Flavours: []string{}})
	}

	if len(parsed.flavours) >= parsed.totalBags {
		return domain.Resolved(domain.SnackIntent{
			Quantity: parsed.totalBags,
			Flavours: parsed.flavours[:parsed.totalBags],
		})
	}

	required := max(1, parsed.totalBags)
	if len(session.Snacks) != required {
		return domain.NeedsInput[domain.SnackIntent](r.clarification(required))
	}

	return domain.Resolved(domain.SnackIntent{
		Quantity: parsed.totalBags,
		Flavours: append([]string(nil), session.Snacks...),
	})
}

func (r *SnackResolver) clarification(required int) domain.Clarification {
	prompt := PromptSnackSingle
	if required > 1 {
		prompt = PromptSnackMultiple
	}
	return domain.Clarification{
		Kind:          domain.ClarifySnackFlavour,
		Prompt:        prompt,
		Options:       r.Flavours(),
		Name:          SnackFieldName,
		RequiredCount: required,
	}
}

func (r *SnackResolver) parse(text string) snackParse {
	var requests []snackRequest
	for _, segment := range SplitSegments(text) {
		if req, ok := r.parseSegment(segment); ok {
			requests = append(requests, req)
		}
	}

	if len(requests) == 0 && !crispWord.MatchString(text) {
		return snackParse{}
	}

	// A segment names at most one flavour whatever its bag count; the remaining bags are asked for.
	total := 0
	var flavours []string
	for _, req := range requests {
		total += req.quantity
		if req.flavour != "" {
			flavours = append(flavours, req.flavour)
		}
	}

	if total == 0 {
		total = fallbackBagCount(text)
	}

	return snackParse{wantsSnacks: true, totalBags: total, flavours: flavours}
}

// parseSegment reads the quantity and flavour of a single bag order. Segments without a
// quantity are dropped.
func (r *SnackResolver) parseSegment(segment string) (snackRequest, bool) {
	qty := 0
	if m := numericCrispBags.FindStringSubmatch(segment); m != nil {
		qty = parseQuantity(m[1])
	}
	if qty == 0 && singularCrispBag.MatchString(segment) {
		qty = 1
	}

	flavour := r.matchFlavour(segment)
	if qty == 0 && flavour != "" {
		if m := flavouredBag.FindStringSubmatch(segment); m != nil {
			qty = parseQuantity(m[1])
		}
	}

	if qty == 0 {
		return snackRequest{}, false
	}
	return snackRequest{quantity: qty, flavour: flavour}, true
}

// matchFlavour returns the first catalog flavour whose normalised label occurs in segment.
func (r *SnackResolver) matchFlavour(segment string) string {
	normalised := NormaliseFlavour(segment)
	for _, flavour := range r.flavours {
		label := NormaliseFlavour(flavour)
		if label != "" && strings.Contains(normalised, label) {
			return flavour
		}
	}
	return ""
}

// fallbackBagCount recovers a bag count from the whole utterance when segment parsing found
// none. Mentioning crisps at all means at least one bag.
func fallbackBagCount(text string) int {
	if m := looseNumericCrisps.FindStringSubmatch(text); m != nil {
		if n := parseQuantity(m[1]); n > 0 {
			return n
		}
	}
	// "a bag of crisps" and a bare "crisps" both mean one bag.
	return 1
}
