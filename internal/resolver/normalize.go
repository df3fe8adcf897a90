package resolver

import (
	"regexp"
	"strings"
)

var (
	ampersandExpr  = regexp.MustCompile(`\s*&\s*`)
	whitespaceExpr = regexp.MustCompile(`\s+`)
	crispsSuffix   = regexp.MustCompile(`(?i)\s*crisps$`)
)

// NormaliseFlavour canonicalises a flavour label or utterance for containment matching:
// trimmed, "&" spelled "and", whitespace collapsed, lower-cased.
func NormaliseFlavour(value string) string {
	value = strings.TrimSpace(value)
	value = ampersandExpr.ReplaceAllString(value, " and ")
	value = whitespaceExpr.ReplaceAllString(value, " ")
	return strings.ToLower(strings.TrimSpace(value))
}

// FlavourLabel turns a crisp product name into the label offered to the caller
// ("Salt and Vinegar Crisps" -> "Salt and Vinegar").
func FlavourLabel(productName string) string {
	return strings.TrimSpace(crispsSuffix.ReplaceAllString(productName, ""))
}
