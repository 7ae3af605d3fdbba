package purchaseorders

import (
	"testing"

	"github.com/strideworks/stride-backend/pkg/db/models"
	"github.com/strideworks/stride-backend/pkg/enums"
	pkgerrors "github.com/strideworks/stride-backend/pkg/errors"
)

func TestNormalizeLinesDefaults(t *testing.T) {
	lines, err := normalizeLines([]LineInput{
		{ItemName: "  Trail Runner  ", BasePrice: 1200, TaxRate: 18},
	})
	if err != nil {
		t.Fatalf("normalizeLines: %v", err)
	}

	if lines[0].ItemName != "Trail Runner" {
		t.Fatalf("item name = %q, want trimmed", lines[0].ItemName)
	}
	if lines[0].Quantity != 1 {
		t.Fatalf("quantity = %d, want default 1", lines[0].Quantity)
	}
	if lines[0].TaxType != enums.TaxTypeCGSTSGST {
		t.Fatalf("tax type = %q, want default CGST_SGST", lines[0].TaxType)
	}
}

func TestNormalizeLinesRejections(t *testing.T) {
	tests := []struct {
		name  string
		lines []LineInput
	}{
		{"empty set", nil},
		{"blank item name", []LineInput{{ItemName: "   ", BasePrice: 10}}},
		{"negative price", []LineInput{{ItemName: "Clog", BasePrice: -1}}},
		{"tax rate over 100", []LineInput{{ItemName: "Clog", TaxRate: 101}}},
		{"negative quantity", []LineInput{{ItemName: "Clog", Quantity: -2}}},
		{"unknown tax type", []LineInput{{ItemName: "Clog", TaxType: "VAT"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := normalizeLines(tt.lines)
			typed := pkgerrors.As(err)
			if typed == nil || typed.Code() != pkgerrors.CodeValidation {
				t.Fatalf("err = %v, want validation error", err)
			}
		})
	}
}

func TestBuildLineRowsDerivesAmountsInOrder(t *testing.T) {
	rows := buildLineRows([]LineInput{
		{ItemName: "A", BasePrice: 1000, TaxRate: 18, Quantity: 3, TaxType: enums.TaxTypeCGSTSGST},
		{ItemName: "B", BasePrice: 250, TaxRate: 5, Quantity: 4, TaxType: enums.TaxTypeIGST},
	})

	if rows[0].Position != 0 || rows[1].Position != 1 {
		t.Fatalf("positions = %d,%d, want 0,1", rows[0].Position, rows[1].Position)
	}
	if rows[0].TaxPerItem != 180.00 || rows[0].UnitTotal != 3540.00 {
		t.Fatalf("row 0 amounts = %v/%v, want 180.00/3540.00", rows[0].TaxPerItem, rows[0].UnitTotal)
	}
	if rows[1].TaxPerItem != 12.50 || rows[1].UnitTotal != 1050.00 {
		t.Fatalf("row 1 amounts = %v/%v, want 12.50/1050.00", rows[1].TaxPerItem, rows[1].UnitTotal)
	}
}

func TestApplyHeadUpdateMergesOnlyProvidedFields(t *testing.T) {
	order := &models.PurchaseOrder{
		ReferenceNumber: "REF-1",
		Notes:           "rush",
		DiscountPercent: 5,
	}

	notes := "  standard delivery "
	applyHeadUpdate(order, UpdateOrderInput{Notes: &notes})

	if order.Notes != "standard delivery" {
		t.Fatalf("notes = %q, want trimmed update", order.Notes)
	}
	if order.ReferenceNumber != "REF-1" {
		t.Fatalf("reference = %q, want untouched", order.ReferenceNumber)
	}
	if order.DiscountPercent != 5 {
		t.Fatalf("discount = %v, want untouched", order.DiscountPercent)
	}
}

func TestApplyTotalsRefoldsHead(t *testing.T) {
	order := &models.PurchaseOrder{DiscountPercent: 10}
	applyTotals(order, []LineInput{
		{BasePrice: 2500, TaxRate: 8, Quantity: 2},
	})

	if order.SubTotal != 5000 {
		t.Fatalf("sub total = %v, want 5000", order.SubTotal)
	}
	if order.DiscountAmount != 500 {
		t.Fatalf("discount = %v, want 500", order.DiscountAmount)
	}
	if order.TotalTax != 400 {
		t.Fatalf("total tax = %v, want 400", order.TotalTax)
	}
	if order.Total != 4900 {
		t.Fatalf("total = %v, want 4900", order.Total)
	}
}
