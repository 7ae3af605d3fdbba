package purchaseorders

import "math"

// round2 rounds half away from zero to two decimal places. All purchase
// order money flows through this so stored and displayed values agree.
func round2(value float64) float64 {
	return math.Round(value*100) / 100
}

// LineAmounts are the derived money fields for one line.
type LineAmounts struct {
	TaxPerItem float64
	UnitTotal  float64
}

// ComputeLine derives per-item tax and the line total from base price,
// tax rate percent and quantity. The tax is rounded per item before the
// line total is taken, matching the printed document.
func ComputeLine(basePrice, taxRate float64, quantity int) LineAmounts {
	taxPerItem := round2(basePrice * taxRate / 100)
	unitTotal := round2((basePrice + taxPerItem) * float64(quantity))
	return LineAmounts{TaxPerItem: taxPerItem, UnitTotal: unitTotal}
}

// OrderAmounts are the derived money fields for the order head.
type OrderAmounts struct {
	SubTotal       float64
	DiscountAmount float64
	TotalTax       float64
	Total          float64
}

// ComputeOrder folds the lines into head totals. The discount applies to the
// pre-tax subtotal only; tax is charged on the undiscounted base.
func ComputeOrder(lines []LineInput, discountPercent float64) OrderAmounts {
	var subTotal, totalTax float64
	for _, line := range lines {
		amounts := ComputeLine(line.BasePrice, line.TaxRate, line.Quantity)
		subTotal += line.BasePrice * float64(line.Quantity)
		totalTax += amounts.TaxPerItem * float64(line.Quantity)
	}

	discount := round2(subTotal * discountPercent / 100)
	total := round2(subTotal - discount + totalTax)

	return OrderAmounts{
		SubTotal:       subTotal,
		DiscountAmount: discount,
		TotalTax:       totalTax,
		Total:          total,
	}
}
