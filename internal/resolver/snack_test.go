package resolver_test

import (
	"testing"

	"github.com/aretw0/taproom/internal/resolver"
	"github.com/aretw0/taproom/pkg/adapters/memory"
	"github.com/aretw0/taproom/pkg/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var allFlavours = []string{"Ready Salted", "Cheese and Onion", "Salt and Vinegar"}

func newSnackResolver() *resolver.SnackResolver {
	return resolver.NewSnackResolver(memory.NewDefaultCatalog())
}

func TestSnackResolver_Flavours(t *testing.T) {
	assert.Equal(t, allFlavours, newSnackResolver().Flavours())
}

func TestSnackResolver_Resolved(t *testing.T) {
	r := newSnackResolver()

	tests := []struct {
		name    string
		text    string
		session domain.SessionContext
		want    domain.SnackIntent
	}{
		{
			name: "no snack intent",
			text: "2 pints of guinness for table 4",
			want: domain.SnackIntent{Quantity: 0, Flavours: []string{}},
		},
		{
			name: "two flavoured bags without the word crisps",
			text: "a bag of salt and vinegar and a bag of cheese and onion",
			want: domain.SnackIntent{Quantity: 2, Flavours: []string{"Salt and Vinegar", "Cheese and Onion"}},
		},
		{
			name: "flavours in text ignore context",
			text: "a bag of salt and vinegar and a bag of cheese and onion",
			session: domain.SessionContext{
				Snacks: domain.Selections{"Ready Salted"},
			},
			want: domain.SnackIntent{Quantity: 2, Flavours: []string{"Salt and Vinegar", "Cheese and Onion"}},
		},
		{
			name:    "bare crisps with a single context choice",
			text:    "crisps please",
			session: domain.SessionContext{Snacks: domain.Selections{"Ready Salted"}},
			want:    domain.SnackIntent{Quantity: 1, Flavours: []string{"Ready Salted"}},
		},
		{
			name:    "counted bags of one flavour completed from context",
			text:    "2 bags of salt and vinegar crisps",
			session: domain.SessionContext{Snacks: domain.Selections{"Salt and Vinegar", "Ready Salted"}},
			want:    domain.SnackIntent{Quantity: 2, Flavours: []string{"Salt and Vinegar", "Ready Salted"}},
		},
		{
			name: "ampersand flavour",
			text: "salt & vinegar crisps, just a bag",
			want: domain.SnackIntent{Quantity: 1, Flavours: []string{"Salt and Vinegar"}},
		},
		{
			name: "singular crisp bag with flavour",
			text: "a packet of ready salted crisps for table 3",
			want: domain.SnackIntent{Quantity: 1, Flavours: []string{"Ready Salted"}},
		},
		{
			name:    "mixed order completed from context",
			text:    "a bag of crisps and a bag of ready salted crisps",
			session: domain.SessionContext{Snacks: domain.Selections{"Cheese and Onion", "Ready Salted"}},
			want:    domain.SnackIntent{Quantity: 2, Flavours: []string{"Cheese and Onion", "Ready Salted"}},
		},
		{
			name:    "duplicates allowed",
			text:    "two bags of crisps",
			session: domain.SessionContext{Snacks: domain.Selections{"Ready Salted", "Ready Salted"}},
			want:    domain.SnackIntent{Quantity: 2, Flavours: []string{"Ready Salted", "Ready Salted"}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Resolve(tt.text, tt.session)
			require.False(t, res.Pending(), "unexpected clarification: %+v", res.Ask)
			assert.Equal(t, tt.want, res.Value)
		})
	}
}

func TestSnackResolver_Clarification(t *testing.T) {
	r := newSnackResolver()

	tests := []struct {
		name       string
		text       string
		session    domain.SessionContext
		wantPrompt string
		wantCount  int
	}{
		{
			name:       "two bags with no flavours",
			text:       "two bags of crisps",
			wantPrompt: resolver.PromptSnackMultiple,
			wantCount:  2,
		},
		{
			name:       "bare crisps",
			text:       "crisps please",
			wantPrompt: resolver.PromptSnackSingle,
			wantCount:  1,
		},
		{
			name:       "partial context asks for the whole list again",
			text:       "two bags of crisps",
			session:    domain.SessionContext{Snacks: domain.Selections{"Ready Salted"}},
			wantPrompt: resolver.PromptSnackMultiple,
			wantCount:  2,
		},
		{
			name:       "too many context choices",
			text:       "a bag of crisps",
			session:    domain.SessionContext{Snacks: domain.Selections{"Ready Salted", "Cheese and Onion"}},
			wantPrompt: resolver.PromptSnackSingle,
			wantCount:  1,
		},
		{
			name:       "one text flavour is not enough for two bags",
			text:       "a bag of crisps and a bag of ready salted crisps",
			wantPrompt: resolver.PromptSnackMultiple,
			wantCount:  2,
		},
		{
			name:       "number word",
			text:       "three packets of crisps",
			wantPrompt: resolver.PromptSnackMultiple,
			wantCount:  3,
		},
		{
			name:       "one flavour named for two bags",
			text:       "2 bags of crisps salt and vinegar",
			wantPrompt: resolver.PromptSnackMultiple,
			wantCount:  2,
		},
		{
			name:       "counted bags of one flavour",
			text:       "2 bags of salt and vinegar crisps",
			wantPrompt: resolver.PromptSnackMultiple,
			wantCount:  2,
		},
		{
			name:       "huge bag count is clamped",
			text:       "50000000 bags of salt and vinegar crisps",
			wantPrompt: resolver.PromptSnackMultiple,
			wantCount:  resolver.MaxQuantity,
		},
		{
			name:       "zero bags still means one",
			text:       "0 bags of crisps",
			wantPrompt: resolver.PromptSnackSingle,
			wantCount:  1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := r.Resolve(tt.text, tt.session)
			require.True(t, res.Pending())
			assert.Equal(t, domain.Clarification{
				Kind:          domain.ClarifySnackFlavour,
				Prompt:        tt.wantPrompt,
				Options:       allFlavours,
				Name:          resolver.SnackFieldName,
				RequiredCount: tt.wantCount,
			}, *res.Ask)
		})
	}
}

func TestSnackResolver_Idempotent(t *testing.T) {
	r := newSnackResolver()
	text := "two bags of crisps"

	first := r.Resolve(text, domain.SessionContext{})
	require.True(t, first.Pending())

	session := domain.SessionContext{Snacks: domain.Selections{"Cheese and Onion", "Salt and Vinegar"}}
	require.Len(t, session.Snacks, first.Ask.RequiredCount)

	for i := 0; i < 3; i++ {
		res := r.Resolve(text, session)
		require.False(t, res.Pending())
		assert.Equal(t, 2, res.Value.Quantity)
		assert.Equal(t, []string{"Cheese and Onion", "Salt and Vinegar"}, res.Value.Flavours)
	}
}

func TestSnackResolver_DoesNotAliasContext(t *testing.T) {
	r := newSnackResolver()
	session := domain.SessionContext{Snacks: domain.Selections{"Ready Salted"}}

	res := r.Resolve("crisps", session)
	require.False(t, res.Pending())
	res.Value.Flavours[0] = "mutated"

	assert.Equal(t, "Ready Salted", session.Snacks[0])
}

func TestSnackResolver_CustomCatalog(t *testing.T) {
	catalog, err := memory.NewCatalog([]domain.MenuItem{
		{ID: "crisps_prawn", Name: "Prawn Cocktail crisps", PricePence: 110, Tags: []string{"snacks", "crisps"}},
		{ID: "crisps_plain", Name: "Crisps", PricePence: 90, Tags: []string{"snacks", "crisps"}},
	})
	require.NoError(t, err)
	r := resolver.NewSnackResolver(catalog)

	assert.Equal(t, []string{"Prawn Cocktail", ""}, r.Flavours())

	res := r.Resolve("a bag of prawn cocktail", domain.SessionContext{})
	require.False(t, res.Pending())
	assert.Equal(t, []string{"Prawn Cocktail"}, res.Value.Flavours)
}
