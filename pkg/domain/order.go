package domain

// DrinkIntent is what the drink resolver extracted from the utterance.
type DrinkIntent struct {
	WantsDrink bool `json:"wantsDrink"`
	Quantity   int  `json:"quantity"`
}

// SnackIntent is what the snack resolver settled on. Flavours holds one entry per bag.
type SnackIntent struct {
	Quantity int      `json:"quantity"`
	Flavours []string `json:"flavours"`
}

// OrderLine references a catalog item and a positive quantity.
type OrderLine struct {
	MenuID   string `json:"menuId"`
	Quantity int    `json:"quantity"`
}

// Anomaly records a resolved product that could not be matched against the catalog or priced.
// It never fails a turn but is surfaced so drift between resolvers and catalog is visible.
type Anomaly struct {
	Reference string `json:"reference"`
	Reason    string `json:"reason"`
}

// Anomaly reasons.
const (
	AnomalyUnmatchedFlavour = "unmatched_flavour"
	AnomalyUnmatchedDrink   = "unmatched_drink"
	AnomalyUnknownMenuID    = "unknown_menu_id"
	AnomalyTotalOverflow    = "total_overflow"
)

// Proposal is a fully resolved, priced order awaiting the caller's confirmation.
type Proposal struct {
	Table      int         `json:"table"`
	Lines      []OrderLine `json:"lines"`
	TotalPence int64       `json:"totalPence"`
	Currency   string      `json:"currency"`
	Summary    []string    `json:"summary"`
	Anomalies  []Anomaly   `json:"anomalies,omitempty"`
}
