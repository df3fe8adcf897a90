// Package order turns resolved intents into priced order proposals.
package order

import (
	"github.com/aretw0/taproom/internal/resolver"
	"github.com/aretw0/taproom/pkg/domain"
	"github.com/aretw0/taproom/pkg/ports"
)

// DrinkReference names the drink in anomalies when the catalog has no Guinness pint.
const DrinkReference = "guinness pint"

// Assembler builds proposals against a catalog.
type Assembler struct {
	catalog ports.Catalog
}

// NewAssembler creates an assembler backed by catalog.
func NewAssembler(catalog ports.Catalog) *Assembler {
	return &Assembler{catalog: catalog}
}

// Assemble builds the order lines for table from the drink and snack intents, then prices
// and summarises them. It returns nil when nothing could be ordered.
//
// Products that cannot be matched against the catalog are skipped and reported in
// Proposal.Anomalies; the second return value carries the same anomalies so callers can
// observe them even when the order ends up empty.
func (a *Assembler) Assemble(table int, drink domain.DrinkIntent, snack domain.SnackIntent) (*domain.Proposal, []domain.Anomaly) {
	var lines []domain.OrderLine
	var anomalies []domain.Anomaly

	if drink.WantsDrink && drink.Quantity > 0 {
		if item, ok := a.drinkItem(); ok {
			lines = append(lines, domain.OrderLine{MenuID: item.ID, Quantity: drink.Quantity})
		} else {
			anomalies = append(anomalies, domain.Anomaly{Reference: DrinkReference, Reason: domain.AnomalyUnmatchedDrink})
		}
	}

	if snack.Quantity > 0 {
		for _, flavour := range snack.Flavours {
			item, ok := a.snackItem(flavour)
			if !ok {
				anomalies = append(anomalies, domain.Anomaly{Reference: flavour, Reason: domain.AnomalyUnmatchedFlavour})
				continue
			}
			lines = append(lines, domain.OrderLine{MenuID: item.ID, Quantity: 1})
		}
	}

	if len(lines) == 0 {
		return nil, anomalies
	}

	total, unknown := Total(a.catalog, lines)
	anomalies = append(anomalies, unknown...)

	return &domain.Proposal{
		Table:      table,
		Lines:      lines,
		TotalPence: total,
		Currency:   domain.CurrencyGBP,
		Summary:    Summary(a.catalog, lines),
		Anomalies:  anomalies,
	}, anomalies
}

func (a *Assembler) drinkItem() (domain.MenuItem, bool) {
	return a.catalog.Find(func(item domain.MenuItem) bool {
		return item.HasTag(domain.TagGuinness) && item.HasTag(domain.TagPint)
	})
}

// snackItem finds the first snack whose normalised name contains the normalised flavour.
func (a *Assembler) snackItem(flavour string) (domain.MenuItem, bool) {
	want := resolver.NormaliseFlavour(flavour)
	if want == "" {
		return domain.MenuItem{}, false
	}
	return a.catalog.Find(func(item domain.MenuItem) bool {
		return item.HasTag(domain.TagSnacks) && containsNormalised(item.Name, want)
	})
}
