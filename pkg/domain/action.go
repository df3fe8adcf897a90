package domain

// ClarificationKind identifies which slot a clarification is asking the caller to fill.
type ClarificationKind string

const (
	// ClarifyTableNumber asks for the table the order should be delivered to.
	ClarifyTableNumber ClarificationKind = "table_number"
	// ClarifySnackFlavour asks for one crisp flavour per bag ordered.
	ClarifySnackFlavour ClarificationKind = "snack_flavour"
)

// InputConstraints bounds a free-form numeric answer.
type InputConstraints struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Clarification describes the information the caller must supply before the turn can resolve.
//
// RequiredCount, when present, is the total number of selections needed, not only the missing
// ones: the caller resubmits the whole context with every choice made so far.
type Clarification struct {
	Kind          ClarificationKind `json:"kind"`
	Prompt        string            `json:"prompt"`
	Options       []string          `json:"options,omitempty"`
	Name          string            `json:"name,omitempty"`
	RequiredCount int               `json:"requiredCount,omitempty"`
	Input         *InputConstraints `json:"input,omitempty"`
}

// Accepts reports whether n satisfies the numeric constraints of the clarification.
// Clarifications without constraints accept any value.
func (c Clarification) Accepts(n int) bool {
	if c.Input == nil {
		return true
	}
	return n >= c.Input.Min && n <= c.Input.Max
}
