package vendors

import (
	"testing"

	"github.com/strideworks/stride-backend/pkg/db/models"
)

func strPtr(v string) *string { return &v }

func TestApplyUpdateMergesOnlyProvidedFields(t *testing.T) {
	vendor := &models.Vendor{
		DisplayName:  "Acme Traders",
		CompanyName:  "Acme Pvt Ltd",
		City:         "Agra",
		PaymentTerms: "NET30",
		Tags:         []string{"footwear"},
	}

	applyUpdate(vendor, UpdateVendorInput{
		DisplayName: strPtr("  Acme Distributors  "),
		City:        strPtr("Kanpur"),
	})

	if vendor.DisplayName != "Acme Distributors" {
		t.Fatalf("expected trimmed display name, got %q", vendor.DisplayName)
	}
	if vendor.City != "Kanpur" {
		t.Fatalf("expected city updated, got %q", vendor.City)
	}
	if vendor.CompanyName != "Acme Pvt Ltd" {
		t.Fatalf("expected company name untouched, got %q", vendor.CompanyName)
	}
	if vendor.PaymentTerms != "NET30" {
		t.Fatalf("expected payment terms untouched, got %q", vendor.PaymentTerms)
	}
	if len(vendor.Tags) != 1 || vendor.Tags[0] != "footwear" {
		t.Fatalf("expected tags untouched, got %v", vendor.Tags)
	}
}

func TestApplyUpdateReplacesTagsWholesale(t *testing.T) {
	vendor := &models.Vendor{Tags: []string{"footwear", "leather"}}

	tags := []string{"sports"}
	applyUpdate(vendor, UpdateVendorInput{Tags: &tags})
	if len(vendor.Tags) != 1 || vendor.Tags[0] != "sports" {
		t.Fatalf("expected wholesale tag replace, got %v", vendor.Tags)
	}

	var empty []string
	applyUpdate(vendor, UpdateVendorInput{Tags: &empty})
	if vendor.Tags == nil || len(vendor.Tags) != 0 {
		t.Fatalf("expected empty non-nil tags, got %v", vendor.Tags)
	}
}
