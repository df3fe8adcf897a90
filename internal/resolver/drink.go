package resolver

import (
	"regexp"

	"github.com/aretw0/taproom/pkg/domain"
)

var (
	// Accepts the common misspelling "guiness".
	drinkNamePattern = regexp.MustCompile(`(?i)\bguinn?ess\b`)
	pintPattern      = regexp.MustCompile(`(?i)\b(` + numberPattern + `)\s+pints?\b`)
)

// ResolveDrink extracts Guinness intent and the number of pints. A pint count without the
// product name is not an order. Drinks never need clarification: the quantity defaults to 1.
func ResolveDrink(text string) domain.DrinkIntent {
	if !drinkNamePattern.MatchString(text) {
		return domain.DrinkIntent{}
	}
	qty := 1
	if m := pintPattern.FindStringSubmatch(text); m != nil {
		qty = parseQuantity(m[1])
	}
	return domain.DrinkIntent{WantsDrink: true, Quantity: qty}
}
