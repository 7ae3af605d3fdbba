package purchaseorders

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestComputeLine(t *testing.T) {
	got := ComputeLine(1000, 18, 3)
	if !almostEqual(got.TaxPerItem, 180.00) {
		t.Fatalf("tax per item = %v, want 180.00", got.TaxPerItem)
	}
	if !almostEqual(got.UnitTotal, 3540.00) {
		t.Fatalf("unit total = %v, want 3540.00", got.UnitTotal)
	}
}

func TestComputeLineRoundsTaxBeforeTotal(t *testing.T) {
	// 99.99 * 12.5% = 12.49875, rounds to 12.50 before the quantity multiply.
	got := ComputeLine(99.99, 12.5, 2)
	if !almostEqual(got.TaxPerItem, 12.50) {
		t.Fatalf("tax per item = %v, want 12.50", got.TaxPerItem)
	}
	if !almostEqual(got.UnitTotal, 224.98) {
		t.Fatalf("unit total = %v, want 224.98", got.UnitTotal)
	}
}

func TestComputeLineZeroQuantity(t *testing.T) {
	got := ComputeLine(500, 18, 0)
	if !almostEqual(got.UnitTotal, 0) {
		t.Fatalf("unit total = %v, want 0", got.UnitTotal)
	}
}

func TestComputeOrder(t *testing.T) {
	lines := []LineInput{
		{BasePrice: 1000, TaxRate: 18, Quantity: 3},
		{BasePrice: 1000, TaxRate: 5, Quantity: 2},
	}
	// subTotal = 5000, tax = 180*3 + 50*2 = 640
	got := ComputeOrder(lines, 10)

	if !almostEqual(got.SubTotal, 5000) {
		t.Fatalf("sub total = %v, want 5000", got.SubTotal)
	}
	if !almostEqual(got.DiscountAmount, 500) {
		t.Fatalf("discount = %v, want 500", got.DiscountAmount)
	}
	if !almostEqual(got.TotalTax, 640) {
		t.Fatalf("total tax = %v, want 640", got.TotalTax)
	}
	if !almostEqual(got.Total, 5140) {
		t.Fatalf("total = %v, want 5140", got.Total)
	}
}

func TestComputeOrderInvariantUnderLineReorder(t *testing.T) {
	lines := []LineInput{
		{BasePrice: 1000, TaxRate: 18, Quantity: 3},
		{BasePrice: 99.99, TaxRate: 12.5, Quantity: 2},
		{BasePrice: 250, TaxRate: 5, Quantity: 7},
	}
	reversed := []LineInput{lines[2], lines[1], lines[0]}

	a := ComputeOrder(lines, 12.5)
	b := ComputeOrder(reversed, 12.5)

	if !almostEqual(a.SubTotal, b.SubTotal) || !almostEqual(a.TotalTax, b.TotalTax) ||
		!almostEqual(a.DiscountAmount, b.DiscountAmount) || !almostEqual(a.Total, b.Total) {
		t.Fatalf("totals differ under reorder: %+v vs %+v", a, b)
	}
}

func TestComputeOrderDiscountOnPreTaxBase(t *testing.T) {
	lines := []LineInput{
		{BasePrice: 2500, TaxRate: 8, Quantity: 2},
	}
	// subTotal = 5000, tax per item = 200, totalTax = 400
	got := ComputeOrder(lines, 10)

	if !almostEqual(got.DiscountAmount, 500) {
		t.Fatalf("discount = %v, want 500", got.DiscountAmount)
	}
	if !almostEqual(got.Total, 4900) {
		t.Fatalf("total = %v, want 4900", got.Total)
	}
}

func TestComputeOrderNoLines(t *testing.T) {
	got := ComputeOrder(nil, 10)
	if !almostEqual(got.SubTotal, 0) || !almostEqual(got.Total, 0) {
		t.Fatalf("empty fold = %+v, want zeros", got)
	}
}
