package orders

import (
	"testing"

	"github.com/google/uuid"

	"github.com/strideworks/stride-backend/internal/cart"
)

func TestBuildItemRowsFreezesQuote(t *testing.T) {
	catalogueID := uuid.New()
	variantID := uuid.New()

	rows := buildItemRows([]cart.QuotedLine{
		{
			CatalogueID: catalogueID,
			VariantID:   variantID,
			ItemName:    "Trail Runner / Navy",
			SizeLabel:   "UK-8",
			UnitPrice:   1499,
			Quantity:    3,
			LineTotal:   4497,
		},
		{
			ItemName:  "Court Classic",
			SizeLabel: "UK-9",
			UnitPrice: 999.50,
			Quantity:  2,
			LineTotal: 1999,
		},
	})

	if rows[0].Position != 0 || rows[1].Position != 1 {
		t.Fatalf("positions = %d,%d, want 0,1", rows[0].Position, rows[1].Position)
	}
	if rows[0].CatalogueID == nil || *rows[0].CatalogueID != catalogueID {
		t.Fatalf("catalogue id not carried over")
	}
	if rows[0].LineTotal != 4497 || rows[0].UnitPrice != 1499 {
		t.Fatalf("row 0 money = %v/%v, want frozen quote values", rows[0].UnitPrice, rows[0].LineTotal)
	}
	if rows[1].SizeLabel != "UK-9" || rows[1].Quantity != 2 {
		t.Fatalf("row 1 = %+v, want quote fields carried over", rows[1])
	}
}
