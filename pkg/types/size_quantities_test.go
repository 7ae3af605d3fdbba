package types

import (
	"testing"
)

func TestSizeQuantitiesPreserveOrder(t *testing.T) {
	sizes := SizeQuantities{
		{Size: "UK9", Qty: 12},
		{Size: "UK7", Qty: 4},
		{Size: "UK11", Qty: 0},
	}

	val, err := sizes.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var decoded SizeQuantities
	if err := decoded.Scan(val); err != nil {
		t.Fatalf("scan: %v", err)
	}

	if len(decoded) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(decoded))
	}
	for i, want := range []string{"UK9", "UK7", "UK11"} {
		if decoded[i].Size != want {
			t.Fatalf("entry %d: expected size %s, got %s", i, want, decoded[i].Size)
		}
	}
}

func TestSizeQuantitiesSparseLookup(t *testing.T) {
	sizes := SizeQuantities{{Size: "UK8", Qty: 6}}

	if qty, ok := sizes.Get("UK8"); !ok || qty != 6 {
		t.Fatalf("expected UK8=6, got %d %v", qty, ok)
	}
	if _, ok := sizes.Get("UK10"); ok {
		t.Fatal("UK10 should be absent, the map is sparse")
	}
	if total := sizes.TotalQty(); total != 6 {
		t.Fatalf("expected total 6, got %d", total)
	}
}

func TestSizeQuantitiesValidate(t *testing.T) {
	if err := (SizeQuantities{{Size: "", Qty: 1}}).Validate(); err == nil {
		t.Fatal("expected error for blank size label")
	}
	if err := (SizeQuantities{{Size: "UK9", Qty: -1}}).Validate(); err == nil {
		t.Fatal("expected error for negative quantity")
	}
	if err := (SizeQuantities{{Size: "UK9", Qty: 0}}).Validate(); err != nil {
		t.Fatalf("zero quantity is allowed: %v", err)
	}
}

func TestImageRefScanRoundTrip(t *testing.T) {
	key := "uploads/sole-red.jpg"
	ref := ImageRef{URL: "https://cdn.example.com/sole-red.jpg", Key: &key}

	val, err := ref.Value()
	if err != nil {
		t.Fatalf("value: %v", err)
	}

	var decoded ImageRef
	if err := decoded.Scan(val); err != nil {
		t.Fatalf("scan: %v", err)
	}
	if decoded.URL != ref.URL || decoded.Key == nil || *decoded.Key != key {
		t.Fatalf("round trip mismatch: %+v", decoded)
	}
	if decoded.IsZero() {
		t.Fatal("populated ref should not be zero")
	}
	if !(ImageRef{}).IsZero() {
		t.Fatal("empty ref should be zero")
	}
}
