// Package tree renders turn outcomes as the JSON UI trees consumed by the web client.
package tree

import (
	"fmt"

	"github.com/aretw0/taproom/internal/order"
	"github.com/aretw0/taproom/pkg/domain"
)

// Tree types.
const (
	TypeChoice           = "Choice"
	TypeCardTablePrompt  = "CardTablePrompt"
	TypeCardCheckout     = "CardCheckout"
	TypeCardConfirmation = "CardConfirmation"
	TypeError            = "Error"
)

// Fixed copy shown by the client.
const (
	TablePromptButton     = "Set"
	TableInputPlaceholder = "Enter a number"
	CheckoutTitle         = "Ready to place this order?"
	CheckoutStatus        = "pending"
	ActionPay             = "pay"
	ActionReset           = "reset"
	ResetLabel            = "No, start over"
	ConfirmationTitle     = "Order complete"
	ConfirmationButton    = "Start over"
)

// Tree is any renderable UI tree.
type Tree interface {
	TreeType() string
}

// Input describes a numeric input field.
type Input struct {
	Type        string `json:"type,omitempty"`
	Min         int    `json:"min"`
	Max         int    `json:"max"`
	Placeholder string `json:"placeholder,omitempty"`
}

type ChoiceProps struct {
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options,omitempty"`
	Name          string   `json:"name,omitempty"`
	RequiredCount int      `json:"requiredCount,omitempty"`
	Input         *Input   `json:"input,omitempty"`
}

// Choice asks the user to pick one or more options.
type Choice struct {
	Type  string      `json:"type"`
	Props ChoiceProps `json:"props"`
}

func (Choice) TreeType() string { return TypeChoice }

type TablePromptProps struct {
	Prompt      string `json:"prompt"`
	ButtonLabel string `json:"buttonLabel,omitempty"`
	Input       *Input `json:"input,omitempty"`
}

// CardTablePrompt asks for the table number.
type CardTablePrompt struct {
	Type  string           `json:"type"`
	Props TablePromptProps `json:"props"`
}

func (CardTablePrompt) TreeType() string { return TypeCardTablePrompt }

type Total struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

type Action struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

// CardCheckout presents a priced order for confirmation.
type CardCheckout struct {
	Type            string   `json:"type"`
	Title           string   `json:"title"`
	Status          string   `json:"status"`
	Table           int      `json:"table"`
	Summary         []string `json:"summary"`
	Total           Total    `json:"total"`
	Message         string   `json:"message"`
	PrimaryAction   Action   `json:"primaryAction"`
	SecondaryAction Action   `json:"secondaryAction"`
}

func (CardCheckout) TreeType() string { return TypeCardCheckout }

type ConfirmationProps struct {
	Title       string `json:"title"`
	Message     string `json:"message"`
	ButtonLabel string `json:"buttonLabel"`
}

// CardConfirmation is shown once an order has been paid.
type CardConfirmation struct {
	Type  string            `json:"type"`
	Props ConfirmationProps `json:"props"`
}

func (CardConfirmation) TreeType() string { return TypeCardConfirmation }

// ErrorTree carries an informational message such as an empty order.
type ErrorTree struct {
	Type    string `json:"type"`
	Message string `json:"message"`
}

func (ErrorTree) TreeType() string { return TypeError }

// FromOutcome picks the tree for an outcome. A nil or unknown outcome renders as an error.
func FromOutcome(outcome *domain.Outcome) Tree {
	if outcome == nil {
		return NewError("no outcome")
	}
	switch outcome.Kind {
	case domain.OutcomeClarification:
		if outcome.Clarification != nil {
			return FromClarification(*outcome.Clarification)
		}
	case domain.OutcomeProposal:
		if outcome.Proposal != nil {
			return Checkout(*outcome.Proposal)
		}
	case domain.OutcomeEmptyOrder:
		return NewError(outcome.Message)
	}
	return NewError(fmt.Sprintf("unexpected outcome %q", outcome.Kind))
}

// FromClarification renders table questions as a table prompt and everything else as a choice.
func FromClarification(c domain.Clarification) Tree {
	var input *Input
	if c.Input != nil {
		input = &Input{Type: "number", Min: c.Input.Min, Max: c.Input.Max, Placeholder: TableInputPlaceholder}
	}

	if c.Kind == domain.ClarifyTableNumber {
		return CardTablePrompt{
			Type: TypeCardTablePrompt,
			Props: TablePromptProps{
				Prompt:      c.Prompt,
				ButtonLabel: TablePromptButton,
				Input:       input,
			},
		}
	}

	return Choice{
		Type: TypeChoice,
		Props: ChoiceProps{
			Prompt:        c.Prompt,
			Options:       c.Options,
			Name:          c.Name,
			RequiredCount: c.RequiredCount,
			Input:         input,
		},
	}
}

// Checkout renders a proposal as a checkout card.
func Checkout(p domain.Proposal) CardCheckout {
	return CardCheckout{
		Type:    TypeCardCheckout,
		Title:   CheckoutTitle,
		Status:  CheckoutStatus,
		Table:   p.Table,
		Summary: p.Summary,
		Total:   Total{Amount: p.TotalPence, Currency: p.Currency},
		Message: fmt.Sprintf("Order for Table %d", p.Table),
		PrimaryAction: Action{
			Name:  ActionPay,
			Label: "Yes, PAY " + order.FormatPounds(p.TotalPence),
		},
		SecondaryAction: Action{Name: ActionReset, Label: ResetLabel},
	}
}

// Confirmation renders the paid-order card for table.
func Confirmation(table int) CardConfirmation {
	return CardConfirmation{
		Type: TypeCardConfirmation,
		Props: ConfirmationProps{
			Title:       ConfirmationTitle,
			Message:     ConfirmationMessage(table),
			ButtonLabel: ConfirmationButton,
		},
	}
}

// ConfirmationMessage is the text shown after paying.
func ConfirmationMessage(table int) string {
	return fmt.Sprintf("Table %d order is on its way", table)
}

// NewError renders an informational message.
func NewError(message string) ErrorTree {
	return ErrorTree{Type: TypeError, Message: message}
}
