package domain

// Catalog tags the resolvers rely on.
const (
	TagSnacks   = "snacks"
	TagCrisps   = "crisps"
	TagPint     = "pint"
	TagGuinness = "guinness"
)

// CurrencyGBP is the only currency the catalog is priced in.
const CurrencyGBP = "GBP"

// Valid table range.
const (
	MinTable = 1
	MaxTable = 256
)
