package enums

import "fmt"

// SalesOrderStatus is the distributor order lifecycle state.
type SalesOrderStatus string

const (
	SalesOrderPlaced    SalesOrderStatus = "PLACED"
	SalesOrderConfirmed SalesOrderStatus = "CONFIRMED"
	SalesOrderCancelled SalesOrderStatus = "CANCELLED"
)

var validSalesOrderStatuses = []SalesOrderStatus{
	SalesOrderPlaced,
	SalesOrderConfirmed,
	SalesOrderCancelled,
}

// String implements fmt.Stringer.
func (s SalesOrderStatus) String() string {
	return string(s)
}

// IsValid reports whether the value is a known SalesOrderStatus.
func (s SalesOrderStatus) IsValid() bool {
	for _, candidate := range validSalesOrderStatuses {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSalesOrderStatus converts raw input into a SalesOrderStatus.
func ParseSalesOrderStatus(value string) (SalesOrderStatus, error) {
	for _, candidate := range validSalesOrderStatuses {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sales order status %q", value)
}
