package order

import (
	"fmt"
	"math"
	"strings"

	"github.com/aretw0/taproom/internal/resolver"
	"github.com/aretw0/taproom/pkg/domain"
	"github.com/aretw0/taproom/pkg/ports"
)

// Total sums unit price times quantity over lines, in pence. Lines whose menu identifier is
// not in the catalog, or whose subtotal would overflow the total, are left out of the total
// and returned as anomalies.
func Total(catalog ports.Catalog, lines []domain.OrderLine) (int64, []domain.Anomaly) {
	var total int64
	var anomalies []domain.Anomaly
	for _, line := range lines {
		item, ok := ports.FindByID(catalog, line.MenuID)
		if !ok {
			anomalies = append(anomalies, domain.Anomaly{Reference: line.MenuID, Reason: domain.AnomalyUnknownMenuID})
			continue
		}
		if line.Quantity <= 0 {
			continue
		}
		qty := int64(line.Quantity)
		if item.PricePence > (math.MaxInt64-total)/qty {
			anomalies = append(anomalies, domain.Anomaly{Reference: line.MenuID, Reason: domain.AnomalyTotalOverflow})
			continue
		}
		total += item.PricePence * qty
	}
	return total, anomalies
}

// Summary aggregates lines per menu identifier in first-seen order and renders each as
// "<qty> x <name>". Unknown identifiers are rendered by identifier.
func Summary(catalog ports.Catalog, lines []domain.OrderLine) []string {
	var order []string
	counts := make(map[string]int, len(lines))
	for _, line := range lines {
		if _, seen := counts[line.MenuID]; !seen {
			order = append(order, line.MenuID)
		}
		counts[line.MenuID] += line.Quantity
	}

	summary := make([]string, 0, len(order))
	for _, id := range order {
		name := id
		if item, ok := ports.FindByID(catalog, id); ok {
			name = item.Name
		}
		summary = append(summary, fmt.Sprintf("%d x %s", counts[id], name))
	}
	return summary
}

// FormatGBP renders pence as "GBP 11.00".
func FormatGBP(pence int64) string {
	return domain.CurrencyGBP + " " + formatPounds(pence)
}

// FormatPounds renders pence with the pound sign, as used on pay buttons: "£11.00".
func FormatPounds(pence int64) string {
	return "£" + formatPounds(pence)
}

func formatPounds(pence int64) string {
	sign := ""
	if pence < 0 {
		sign = "-"
		pence = -pence
	}
	return fmt.Sprintf("%s%d.%02d", sign, pence/100, pence%100)
}

func containsNormalised(name, normalisedNeedle string) bool {
	return strings.Contains(resolver.NormaliseFlavour(name), normalisedNeedle)
}
