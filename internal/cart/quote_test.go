package cart

import "testing"

func TestPriceLineRoundsToPaise(t *testing.T) {
	tests := []struct {
		name      string
		unitPrice float64
		quantity  int
		want      float64
	}{
		{"whole rupees", 1499, 3, 4497},
		{"fractional unit price", 99.99, 3, 299.97},
		{"binary float artifact", 0.1, 3, 0.30},
		{"single unit", 1250.50, 1, 1250.50},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := priceLine(tt.unitPrice, tt.quantity); got != tt.want {
				t.Fatalf("priceLine(%v, %d) = %v, want %v", tt.unitPrice, tt.quantity, got, tt.want)
			}
		})
	}
}

func TestSumLinesExactAcrossMany(t *testing.T) {
	// 100 lines of 0.10 must sum to exactly 10.00.
	lines := make([]QuotedLine, 100)
	for i := range lines {
		lines[i] = QuotedLine{LineTotal: 0.10}
	}
	if got := sumLines(lines); got != 10.00 {
		t.Fatalf("sumLines = %v, want 10.00", got)
	}
}

func TestSumLinesEmpty(t *testing.T) {
	if got := sumLines(nil); got != 0 {
		t.Fatalf("sumLines(nil) = %v, want 0", got)
	}
}
