package purchaseorders

import "testing"

func TestNextNumber(t *testing.T) {
	tests := []struct {
		name     string
		existing []string
		want     string
	}{
		{"empty", nil, "PO-00001"},
		{"gaps do not matter", []string{"PO-00001", "PO-00007", "PO-00003"}, "PO-00008"},
		{"malformed ignored", []string{"PO-", "DRAFT-1", "PO-0002x", "PO-00004"}, "PO-00005"},
		{"all malformed", []string{"order-1", "PO"}, "PO-00001"},
		{"wide suffix keeps growing", []string{"PO-123456"}, "PO-123457"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NextNumber(tt.existing); got != tt.want {
				t.Fatalf("NextNumber(%v) = %q, want %q", tt.existing, got, tt.want)
			}
		})
	}
}

func TestFormatNumberPadsToFiveDigits(t *testing.T) {
	if got := FormatNumber(8); got != "PO-00008" {
		t.Fatalf("FormatNumber(8) = %q, want PO-00008", got)
	}
	if got := FormatNumber(123456); got != "PO-123456" {
		t.Fatalf("FormatNumber(123456) = %q, want PO-123456", got)
	}
}
