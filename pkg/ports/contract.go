package ports

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/taproom/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// RunTurnCacheContract runs a suite of tests to verify that a TurnCache implementation
// adheres to the defined interface contract.
func RunTurnCacheContract(t *testing.T, cache TurnCache) {
	ctx := context.Background()
	key := "contract-test-" + time.Now().Format("20060102150405.000000")

	t.Run("Set and Get proposal", func(t *testing.T) {
		outcome := domain.NewProposalOutcome(domain.Proposal{
			Table:      19,
			Lines:      []domain.OrderLine{{MenuID: "beer_guinness_pint", Quantity: 2}},
			TotalPence: 1000,
			Currency:   domain.CurrencyGBP,
			Summary:    []string{"2 x Guinness"},
		})

		require.NoError(t, cache.Set(ctx, key, outcome), "Set should not return error")

		loaded, err := cache.Get(ctx, key)
		require.NoError(t, err, "Get should not return error")
		assert.Equal(t, outcome, loaded)
	})

	t.Run("Set and Get clarification", func(t *testing.T) {
		outcome := domain.NewClarificationOutcome(domain.Clarification{
			Kind:          domain.ClarifySnackFlavour,
			Prompt:        "Choose crisp flavours",
			Options:       []string{"Ready Salted", "Cheese and Onion"},
			Name:          "crisps",
			RequiredCount: 2,
		})

		require.NoError(t, cache.Set(ctx, key+"-ask", outcome))
		loaded, err := cache.Get(ctx, key+"-ask")
		require.NoError(t, err)
		assert.Equal(t, outcome, loaded)
	})

	t.Run("Get Non-Existent", func(t *testing.T) {
		_, err := cache.Get(ctx, "non-existent-"+key)
		assert.ErrorIs(t, err, domain.ErrCacheMiss)
	})

	t.Run("Overwrite", func(t *testing.T) {
		require.NoError(t, cache.Set(ctx, key+"-ow", domain.NewEmptyOrderOutcome()))
		replacement := domain.NewClarificationOutcome(domain.Clarification{Kind: domain.ClarifyTableNumber, Prompt: "?"})
		require.NoError(t, cache.Set(ctx, key+"-ow", replacement))

		loaded, err := cache.Get(ctx, key+"-ow")
		require.NoError(t, err)
		assert.Equal(t, domain.OutcomeClarification, loaded.Kind)
	})
}
