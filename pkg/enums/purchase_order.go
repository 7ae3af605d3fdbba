package enums

import "fmt"

// POStatus is the purchase order lifecycle state.
type POStatus string

const (
	POStatusDraft POStatus = "DRAFT"
	POStatusSent  POStatus = "SENT"
)

var validPOStatuses = []POStatus{
	POStatusDraft,
	POStatusSent,
}

// String implements fmt.Stringer.
func (s POStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known POStatus.
func (s POStatus) IsValid() bool {
	for _, candidate := range validPOStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParsePOStatus converts raw input into a POStatus.
func ParsePOStatus(value string) (POStatus, error) {
	for _, candidate := range validPOStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid purchase order status %q", value)
}

// TaxType distinguishes intra-state from inter-state tax treatment on a line.
type TaxType string

const (
	TaxTypeCGSTSGST TaxType = "CGST_SGST"
	TaxTypeIGST     TaxType = "IGST"
)

var validTaxTypes = []TaxType{
	TaxTypeCGSTSGST,
	TaxTypeIGST,
}

// String implements fmt.Stringer.
func (t TaxType) String() string {
	return string(t)
}

// IsValid reports whether the value is a known TaxType.
func (t TaxType) IsValid() bool {
	for _, candidate := range validTaxTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

// ParseTaxType converts raw input into a TaxType.
func ParseTaxType(value string) (TaxType, error) {
	for _, candidate := range validTaxTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid tax type %q", value)
}
