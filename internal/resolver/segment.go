package resolver

import (
	"regexp"
	"strings"
)

// segmentBoundary finds an "and" that introduces a new bag order.
//
// Grammar of a boundary (case-insensitive, whitespace-separated):
//
//	boundary := "and" quantity unit
//	quantity := "a" | "one" | <digits> | <number word two..twelve>
//	unit     := "bag" | "bags" | "packet" | "packets"
//
// Only "and" followed by a quantity phrase splits. A bare "and" is kept because it usually
// belongs to a flavour name: "salt and vinegar", "cheese and onion".
//
//	"a bag of salt and vinegar and a bag of cheese and onion"
//	  -> ["a bag of salt and vinegar", "a bag of cheese and onion"]
//
// Group 1 spans the quantity phrase, which starts the next segment.
var segmentBoundary = regexp.MustCompile(`(?i)\s+and\s+((?:a|` + numberPattern + `)\s+(?:bags?|packets?)\b)`)

// SplitSegments splits an utterance into the substrings that each describe one bag order.
// Text with no boundary comes back as a single segment.
func SplitSegments(text string) []string {
	var segments []string
	start := 0
	for _, loc := range segmentBoundary.FindAllStringSubmatchIndex(text, -1) {
		segments = append(segments, strings.TrimSpace(text[start:loc[0]]))
		start = loc[2]
	}
	segments = append(segments, strings.TrimSpace(text[start:]))
	return segments
}
