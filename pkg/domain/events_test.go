package domain_test

import (
	"context"
	"testing"

	"github.com/aretw0/taproom/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestLifecycleHooks_Merge(t *testing.T) {
	var calls []string
	a := domain.LifecycleHooks{
		OnClarification: func(context.Context, *domain.ClarificationEvent) { calls = append(calls, "a") },
	}
	b := domain.LifecycleHooks{
		OnClarification: func(context.Context, *domain.ClarificationEvent) { calls = append(calls, "b") },
		OnTurnStart:     func(context.Context, *domain.TurnEvent) { calls = append(calls, "start") },
	}

	merged := a.Merge(b)
	merged.OnClarification(context.Background(), &domain.ClarificationEvent{})
	merged.OnTurnStart(context.Background(), &domain.TurnEvent{})

	assert.Equal(t, []string{"a", "b", "start"}, calls)
	assert.Nil(t, merged.OnTurnEnd)
}

func TestResolution(t *testing.T) {
	ok := domain.Resolved(12)
	assert.False(t, ok.Pending())
	assert.Equal(t, 12, ok.Value)

	ask := domain.NeedsInput[int](domain.Clarification{Kind: domain.ClarifyTableNumber, Prompt: "?"})
	assert.True(t, ask.Pending())
	assert.Equal(t, domain.ClarifyTableNumber, ask.Ask.Kind)
}

func TestClarification_Accepts(t *testing.T) {
	c := domain.Clarification{Input: &domain.InputConstraints{Min: 1, Max: 256}}
	assert.True(t, c.Accepts(1))
	assert.True(t, c.Accepts(256))
	assert.False(t, c.Accepts(0))
	assert.False(t, c.Accepts(257))
	assert.True(t, domain.Clarification{}.Accepts(-5))
}
