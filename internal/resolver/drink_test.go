package resolver_test

import (
	"testing"

	"github.com/aretw0/taproom/internal/resolver"
	"github.com/aretw0/taproom/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestResolveDrink(t *testing.T) {
	tests := []struct {
		text string
		want domain.DrinkIntent
	}{
		{"2 pints of guinness", domain.DrinkIntent{WantsDrink: true, Quantity: 2}},
		{"a pint please", domain.DrinkIntent{}},
		{"3 pints", domain.DrinkIntent{}},
		{"a Guinness for table 4", domain.DrinkIntent{WantsDrink: true, Quantity: 1}},
		{"one guiness", domain.DrinkIntent{WantsDrink: true, Quantity: 1}},
		{"two pints of GUINNESS", domain.DrinkIntent{WantsDrink: true, Quantity: 2}},
		{"guinness, 4 pint", domain.DrinkIntent{WantsDrink: true, Quantity: 4}},
		{"0 pints of guinness", domain.DrinkIntent{WantsDrink: true, Quantity: 0}},
		{"9223372036854775807 pints of guinness", domain.DrinkIntent{WantsDrink: true, Quantity: resolver.MaxQuantity}},
		{"150 pints of guinness", domain.DrinkIntent{WantsDrink: true, Quantity: resolver.MaxQuantity}},
		{"guinnesses all round", domain.DrinkIntent{}},
		{"a bag of crisps", domain.DrinkIntent{}},
	}

	for _, tt := range tests {
		t.Run(tt.text, func(t *testing.T) {
			assert.Equal(t, tt.want, resolver.ResolveDrink(tt.text))
		})
	}
}
