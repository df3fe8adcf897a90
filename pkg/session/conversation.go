package session

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aretw0/taproom/pkg/domain"
)

var (
	ErrEmptyPrompt       = errors.New("prompt is empty")
	ErrNoPendingQuestion = errors.New("no question is pending")
	ErrUnknownOption     = errors.New("option is not offered")
	ErrTableOutOfRange   = errors.New("table out of range")
	ErrIndexOutOfRange   = errors.New("selection index out of range")
	ErrNothingToPay      = errors.New("no order is awaiting payment")
)

// Conversation is the client state between turns. Not safe for concurrent use.
type Conversation struct {
	prompt  string
	context domain.SessionContext
	last    *domain.Outcome
}

// New starts an empty conversation.
func New() *Conversation {
	return &Conversation{}
}

// Prompt returns the utterance the conversation is about.
func (c *Conversation) Prompt() string { return c.prompt }

// Context returns the accumulated answers.
func (c *Conversation) Context() domain.SessionContext { return c.context }

// Last returns the most recent outcome, or nil.
func (c *Conversation) Last() *domain.Outcome { return c.last }

// Submit starts or restarts the order with a new utterance. Answers given so far are kept.
func (c *Conversation) Submit(prompt string) (domain.Turn, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return domain.Turn{}, ErrEmptyPrompt
	}
	c.prompt = prompt
	return c.Turn(), nil
}

// Turn builds the turn for the current prompt and context.
func (c *Conversation) Turn() domain.Turn {
	return domain.Turn{Text: c.prompt, Context: c.context}
}

// Observe records the outcome of the last submitted turn.
func (c *Conversation) Observe(outcome *domain.Outcome) {
	c.last = outcome
}

// Pending returns the open question, if any.
func (c *Conversation) Pending() (domain.Clarification, bool) {
	if c.last == nil || c.last.Kind != domain.OutcomeClarification || c.last.Clarification == nil {
		return domain.Clarification{}, false
	}
	return *c.last.Clarification, true
}

// Choose answers a flavour question with option. With one bag the option replaces any earlier
// choice; with several it is appended, capped at the required count. ready reports whether
// enough flavours are chosen to resubmit.
func (c *Conversation) Choose(option string) (turn domain.Turn, ready bool, err error) {
	q, ok := c.Pending()
	if !ok || q.Kind != domain.ClarifySnackFlavour {
		return domain.Turn{}, false, ErrNoPendingQuestion
	}
	if len(q.Options) > 0 && !contains(q.Options, option) {
		return domain.Turn{}, false, fmt.Errorf("%w: %q", ErrUnknownOption, option)
	}

	required := max(1, q.RequiredCount)
	var next domain.Selections
	if required == 1 {
		next = domain.Selections{option}
	} else {
		next = append(append(domain.Selections(nil), c.context.Snacks...), option)
		if len(next) > required {
			next = next[:required]
		}
	}
	c.context = c.context.WithSnacks(next)

	return c.Turn(), len(next) == required, nil
}

// RemoveAt drops the selection at index.
func (c *Conversation) RemoveAt(index int) error {
	snacks := c.context.Snacks
	if index < 0 || index >= len(snacks) {
		return fmt.Errorf("%w: %d", ErrIndexOutOfRange, index)
	}
	next := make(domain.Selections, 0, len(snacks)-1)
	next = append(next, snacks[:index]...)
	next = append(next, snacks[index+1:]...)
	c.context = c.context.WithSnacks(next)
	return nil
}

// SetTable answers the table question. The returned turn appends "for table N" to the prompt
// so the table is also explicit in the text.
func (c *Conversation) SetTable(n int) (domain.Turn, error) {
	q, ok := c.Pending()
	if !ok || q.Kind != domain.ClarifyTableNumber {
		q = domain.Clarification{Input: &domain.InputConstraints{Min: domain.MinTable, Max: domain.MaxTable}}
	}
	if !q.Accepts(n) {
		return domain.Turn{}, fmt.Errorf("%w: table not recognised (valid tables are %d-%d)", ErrTableOutOfRange, q.Input.Min, q.Input.Max)
	}
	c.context = c.context.WithTable(n)

	turn := c.Turn()
	turn.Text = fmt.Sprintf("%s for table %d", c.prompt, n)
	return turn, nil
}

// Pay accepts the proposed order and clears the conversation. It returns the table the order
// goes to.
func (c *Conversation) Pay() (int, error) {
	if c.last == nil || c.last.Kind != domain.OutcomeProposal || c.last.Proposal == nil {
		return 0, ErrNothingToPay
	}
	table := c.last.Proposal.Table
	c.Reset()
	return table, nil
}

// Reset discards the prompt, answers and last outcome.
func (c *Conversation) Reset() {
	*c = Conversation{}
}

func contains(options []string, option string) bool {
	for _, o := range options {
		if o == option {
			return true
		}
	}
	return false
}
