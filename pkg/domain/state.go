package domain

// Turn is the complete input of one resolver pass.
type Turn struct {
	Text    string         `json:"prompt"`
	Context SessionContext `json:"context"`
}

// OutcomeKind discriminates the Outcome variants.
type OutcomeKind string

const (
	OutcomeProposal      OutcomeKind = "proposal"      // Order resolved and priced
	OutcomeClarification OutcomeKind = "clarification" // Caller must answer a question first
	OutcomeEmptyOrder    OutcomeKind = "empty_order"   // Nothing recognisable to order
)

// EmptyOrderMessage is the informational text attached to OutcomeEmptyOrder.
const EmptyOrderMessage = "Nothing to order yet. Please add Guinness or crisps."

// Outcome is the result of a full turn. Exactly one of Clarification or Proposal is set,
// unless Kind is OutcomeEmptyOrder, in which case only Message is set.
type Outcome struct {
	Kind          OutcomeKind    `json:"kind"`
	Clarification *Clarification `json:"clarification,omitempty"`
	Proposal      *Proposal      `json:"proposal,omitempty"`
	Message       string         `json:"message,omitempty"`
}

// NewClarificationOutcome wraps a clarification as a turn outcome.
func NewClarificationOutcome(c Clarification) *Outcome {
	return &Outcome{Kind: OutcomeClarification, Clarification: &c}
}

// NewProposalOutcome wraps a priced proposal as a turn outcome.
func NewProposalOutcome(p Proposal) *Outcome {
	return &Outcome{Kind: OutcomeProposal, Proposal: &p}
}

// NewEmptyOrderOutcome reports that the turn resolved but produced no order lines.
func NewEmptyOrderOutcome() *Outcome {
	return &Outcome{Kind: OutcomeEmptyOrder, Message: EmptyOrderMessage}
}

// Resolution is the result of a single resolver stage: either a resolved value or a
// clarification that short-circuits the pipeline.
type Resolution[T any] struct {
	Value T
	Ask   *Clarification
}

// Resolved returns a resolution carrying v.
func Resolved[T any](v T) Resolution[T] {
	return Resolution[T]{Value: v}
}

// NeedsInput returns a resolution that asks the caller for more information.
func NeedsInput[T any](c Clarification) Resolution[T] {
	return Resolution[T]{Ask: &c}
}

// Pending reports whether the resolution is waiting on a clarification.
func (r Resolution[T]) Pending() bool {
	return r.Ask != nil
}
