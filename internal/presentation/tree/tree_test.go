package tree_test

import (
	"encoding/json"
	"testing"

	"github.com/aretw0/taproom/internal/presentation/tree"
	"github.com/aretw0/taproom/internal/resolver"
	"github.com/aretw0/taproom/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromOutcome_Checkout(t *testing.T) {
	outcome := domain.NewProposalOutcome(domain.Proposal{
		Table:      19,
		Lines:      []domain.OrderLine{{MenuID: "beer_guinness_pint", Quantity: 2}, {MenuID: "crisps_salt_vinegar", Quantity: 1}},
		TotalPence: 1100,
		Currency:   domain.CurrencyGBP,
		Summary:    []string{"2 x Guinness", "1 x Salt and Vinegar Crisps"},
	})

	b, err := json.Marshal(tree.FromOutcome(outcome))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "CardCheckout",
		"title": "Ready to place this order?",
		"status": "pending",
		"table": 19,
		"summary": ["2 x Guinness", "1 x Salt and Vinegar Crisps"],
		"total": {"amount": 1100, "currency": "GBP"},
		"message": "Order for Table 19",
		"primaryAction": {"name": "pay", "label": "Yes, PAY £11.00"},
		"secondaryAction": {"name": "reset", "label": "No, start over"}
	}`, string(b))
}

func TestFromOutcome_TablePrompt(t *testing.T) {
	outcome := domain.NewClarificationOutcome(domain.Clarification{
		Kind:   domain.ClarifyTableNumber,
		Prompt: resolver.PromptTableMissing,
		Input:  &domain.InputConstraints{Min: 1, Max: 256},
	})

	b, err := json.Marshal(tree.FromOutcome(outcome))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "CardTablePrompt",
		"props": {
			"prompt": "What table number are you sat on?",
			"buttonLabel": "Set",
			"input": {"type": "number", "min": 1, "max": 256, "placeholder": "Enter a number"}
		}
	}`, string(b))
}

func TestFromOutcome_Choice(t *testing.T) {
	outcome := domain.NewClarificationOutcome(domain.Clarification{
		Kind:          domain.ClarifySnackFlavour,
		Prompt:        resolver.PromptSnackMultiple,
		Options:       []string{"Ready Salted", "Cheese and Onion", "Salt and Vinegar"},
		Name:          resolver.SnackFieldName,
		RequiredCount: 2,
	})

	b, err := json.Marshal(tree.FromOutcome(outcome))
	require.NoError(t, err)

	assert.JSONEq(t, `{
		"type": "Choice",
		"props": {
			"prompt": "Choose crisp flavours",
			"options": ["Ready Salted", "Cheese and Onion", "Salt and Vinegar"],
			"name": "crisps",
			"requiredCount": 2
		}
	}`, string(b))
}

func TestFromOutcome_Errors(t *testing.T) {
	b, err := json.Marshal(tree.FromOutcome(domain.NewEmptyOrderOutcome()))
	require.NoError(t, err)
	assert.JSONEq(t, `{"type": "Error", "message": "Nothing to order yet. Please add Guinness or crisps."}`, string(b))

	assert.Equal(t, tree.TypeError, tree.FromOutcome(nil).TreeType())
	assert.Equal(t, tree.TypeError, tree.FromOutcome(&domain.Outcome{Kind: domain.OutcomeProposal}).TreeType())
}

func TestConfirmation(t *testing.T) {
	c := tree.Confirmation(7)
	assert.Equal(t, tree.TypeCardConfirmation, c.TreeType())
	assert.Equal(t, "Table 7 order is on its way", c.Props.Message)
	assert.Equal(t, "Order complete", c.Props.Title)
}
