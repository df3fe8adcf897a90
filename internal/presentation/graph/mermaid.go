package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/taproom/pkg/domain"
)

// Stage identifiers of the turn pipeline.
const (
	StageTurn       = "turn"
	StageTable      = "table"
	StageDrink      = "drink"
	StageSnacks     = "snacks"
	StageAssembly   = "assembly"
	StageProposal   = "proposal"
	StageEmptyOrder = "empty_order"
	StageAsk        = "clarification"
)

type stage struct {
	id    string
	label string
	shape string // opener and closer joined by "|"
}

var stages = []stage{
	{StageTurn, "text + context", "((|))"},
	{StageTable, "table", "[/|/]"},
	{StageDrink, "drink", "[|]"},
	{StageSnacks, "snacks", "[/|/]"},
	{StageAssembly, "assemble + price", "[[|]]"},
	{StageProposal, "proposal", "([|])"},
	{StageEmptyOrder, "nothing to order", "([|])"},
	{StageAsk, "clarification", "{{|}}"},
}

var edges = []struct {
	from, to, label string
}{
	{StageTurn, StageTable, ""},
	{StageTable, StageAsk, "missing / out of range"},
	{StageTable, StageDrink, ""},
	{StageDrink, StageSnacks, ""},
	{StageSnacks, StageAsk, "flavours incomplete"},
	{StageSnacks, StageAssembly, ""},
	{StageAssembly, StageProposal, "lines"},
	{StageAssembly, StageEmptyOrder, "no lines"},
}

// Overlay marks the path a turn took through the pipeline.
type Overlay struct {
	VisitedStages []string
	CurrentStage  string
}

// TraceOutcome derives the overlay of an outcome.
func TraceOutcome(outcome *domain.Outcome) *Overlay {
	if outcome == nil {
		return nil
	}
	full := []string{StageTurn, StageTable, StageDrink, StageSnacks, StageAssembly}
	switch outcome.Kind {
	case domain.OutcomeClarification:
		if outcome.Clarification != nil && outcome.Clarification.Kind == domain.ClarifyTableNumber {
			return &Overlay{VisitedStages: []string{StageTurn, StageTable}, CurrentStage: StageAsk}
		}
		return &Overlay{VisitedStages: full[:4], CurrentStage: StageAsk}
	case domain.OutcomeProposal:
		return &Overlay{VisitedStages: full, CurrentStage: StageProposal}
	case domain.OutcomeEmptyOrder:
		return &Overlay{VisitedStages: full, CurrentStage: StageEmptyOrder}
	}
	return nil
}

// GenerateMermaid produces a Mermaid flowchart of the resolver pipeline.
// It applies semantic styling:
// - Input: ((Circle))
// - Stages that can ask a question: [/Parallelogram/]
// - Assembly: [[Subroutine]]
// - Terminal outcomes: ([Stadium])
// It also applies overlay styles (Visited/Current) if provided.
func GenerateMermaid(overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph TD\n")

	for _, s := range stages {
		opener, closer, _ := strings.Cut(s.shape, "|")
		sb.WriteString(fmt.Sprintf("    %s%s\"%s\"%s\n", s.id, opener, s.label, closer))
	}
	for _, e := range edges {
		arrow := "-->"
		if e.label != "" {
			arrow = fmt.Sprintf("-- \"%s\" -->", strings.ReplaceAll(e.label, "\"", "'"))
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", e.from, arrow, e.to))
	}

	if overlay != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Force black text (color:#000) for high-contrast on light backgrounds, regardless of theme (Light/Dark)
		sb.WriteString("    classDef visited fill:#e1f5fe,stroke:#01579b,stroke-width:2px,color:#000;\n")
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")

		seen := make(map[string]bool)
		for _, id := range overlay.VisitedStages {
			if !seen[id] && id != "" {
				seen[id] = true
				sb.WriteString(fmt.Sprintf("    class %s visited;\n", id))
			}
		}
		if overlay.CurrentStage != "" {
			sb.WriteString(fmt.Sprintf("    class %s current;\n", overlay.CurrentStage))
		}
	}

	return sb.String()
}
