package purchaseorders

import (
	"fmt"
	"regexp"
	"strconv"
)

var poNumberRe = regexp.MustCompile(`^PO-(\d+)$`)

// NextNumber returns the next order number given all existing numbers. The
// highest numeric suffix wins regardless of creation order; malformed
// numbers are ignored.
func NextNumber(existing []string) string {
	max := 0
	for _, number := range existing {
		m := poNumberRe.FindStringSubmatch(number)
		if m == nil {
			continue
		}
		value, err := strconv.Atoi(m[1])
		if err != nil {
			continue
		}
		if value > max {
			max = value
		}
	}
	return FormatNumber(max + 1)
}

// FormatNumber renders a numeric suffix as a zero-padded order number.
func FormatNumber(suffix int) string {
	return fmt.Sprintf("PO-%05d", suffix)
}
