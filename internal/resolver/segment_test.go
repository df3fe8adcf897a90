package resolver_test

import (
	"testing"

	"github.com/aretw0/taproom/internal/resolver"
	"github.com/stretchr/testify/assert"
)

func TestSplitSegments(t *testing.T) {
	tests := []struct {
		text string
		want []string
	}{
		{
			text: "a bag of salt and vinegar and a bag of cheese and onion",
			want: []string{"a bag of salt and vinegar", "a bag of cheese and onion"},
		},
		{
			text: "salt and vinegar crisps",
			want: []string{"salt and vinegar crisps"},
		},
		{
			text: "2 pints of guinness and a bag of crisps for table 19",
			want: []string{"2 pints of guinness", "a bag of crisps for table 19"},
		},
		{
			text: "one packet of ready salted AND two bags of cheese and onion and 3 packets of salt and vinegar",
			want: []string{"one packet of ready salted", "two bags of cheese and onion", "3 packets of salt and vinegar"},
		},
		{
			text: "cheese and onion and nuts",
			want: []string{"cheese and onion and nuts"},
		},
		{
			text: "crisps and a bagel",
			want: []string{"crisps and a bagel"},
		},
		{
			text: "",
			want: []string{""},
		},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.SplitSegments(tt.text))
		})
	}
}

func TestNormaliseFlavour(t *testing.T) {
	assert.Equal(t, "salt and vinegar", resolver.NormaliseFlavour("  Salt & Vinegar  "))
	assert.Equal(t, "cheese and onion", resolver.NormaliseFlavour("Cheese&Onion"))
	assert.Equal(t, "ready salted", resolver.NormaliseFlavour("Ready \t  Salted"))
	assert.Equal(t, "", resolver.NormaliseFlavour("   "))
}

func TestFlavourLabel(t *testing.T) {
	assert.Equal(t, "Salt and Vinegar", resolver.FlavourLabel("Salt and Vinegar Crisps"))
	assert.Equal(t, "Ready Salted", resolver.FlavourLabel("Ready Salted crisps"))
	assert.Equal(t, "Nuts", resolver.FlavourLabel("Nuts"))
	assert.Equal(t, "", resolver.FlavourLabel("Crisps"))
}
