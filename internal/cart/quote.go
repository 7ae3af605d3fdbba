package cart

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuotedLine is one cart line priced against the live catalogue.
type QuotedLine struct {
	CatalogueID uuid.UUID `json:"catalogue_id"`
	VariantID   uuid.UUID `json:"variant_id"`
	ItemName    string    `json:"item_name"`
	SizeLabel   string    `json:"size_label"`
	UnitPrice   float64   `json:"unit_price"`
	Quantity    int       `json:"quantity"`
	LineTotal   float64   `json:"line_total"`
}

// Quote is the priced view of a cart. Prices are read live at quote time,
// so the same cart can quote differently after a price change.
type Quote struct {
	Lines []QuotedLine `json:"lines"`
	Total float64      `json:"total"`
}

// priceLine computes a line total in exact decimal and rounds to paise.
func priceLine(unitPrice float64, quantity int) float64 {
	total := decimal.NewFromFloat(unitPrice).
		Mul(decimal.NewFromInt(int64(quantity))).
		Round(2)
	value, _ := total.Float64()
	return value
}

// sumLines folds line totals in decimal so paise never drift across lines.
func sumLines(lines []QuotedLine) float64 {
	total := decimal.Zero
	for _, line := range lines {
		total = total.Add(decimal.NewFromFloat(line.LineTotal))
	}
	value, _ := total.Round(2).Float64()
	return value
}
