package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// SizeQuantity is one size-label entry in a variant's sparse quantity map.
type SizeQuantity struct {
	Size string `json:"size"`
	Qty  int    `json:"qty"`
}

// SizeQuantities is an ordered array of size/qty pairs stored as JSONB.
// It is deliberately not a map: entry order mirrors what the operator typed
// and the UI displays sizes in that order.
type SizeQuantities []SizeQuantity

// Get returns the quantity for a size label and whether it is present.
func (s SizeQuantities) Get(size string) (int, bool) {
	for _, entry := range s {
		if entry.Size == size {
			return entry.Qty, true
		}
	}
	return 0, false
}

// TotalQty sums all per-size quantities.
func (s SizeQuantities) TotalQty() int {
	total := 0
	for _, entry := range s {
		total += entry.Qty
	}
	return total
}

// Validate rejects blank size labels and negative quantities.
func (s SizeQuantities) Validate() error {
	for _, entry := range s {
		if entry.Size == "" {
			return fmt.Errorf("size label cannot be empty")
		}
		if entry.Qty < 0 {
			return fmt.Errorf("size %q: quantity cannot be negative", entry.Size)
		}
	}
	return nil
}

// Value marshals the pairs into a JSONB column.
func (s SizeQuantities) Value() (driver.Value, error) {
	if s == nil {
		s = SizeQuantities{}
	}
	raw, err := json.Marshal(s)
	if err != nil {
		return nil, fmt.Errorf("size quantities: %w", err)
	}
	return string(raw), nil
}

// Scan decodes the JSONB column.
func (s *SizeQuantities) Scan(value interface{}) error {
	if value == nil {
		*s = SizeQuantities{}
		return nil
	}
	raw, ok := toBytes(value)
	if !ok {
		return fmt.Errorf("size quantities: unsupported scan type %T", value)
	}
	return json.Unmarshal(raw, s)
}
