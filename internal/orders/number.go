package orders

import (
	"fmt"
	"regexp"
	"strconv"
)

var soNumberRe = regexp.MustCompile(`^SO-(\d+)$`)

// NextNumber derives the next sales order number from the issued set.
// Malformed entries are ignored; gaps do not get backfilled.
func NextNumber(existing []string) string {
	max := 0
	for _, number := range existing {
		match := soNumberRe.FindStringSubmatch(number)
		if match == nil {
			continue
		}
		value, err := strconv.Atoi(match[1])
		if err != nil {
			continue
		}
		if value > max {
			max = value
		}
	}
	return FormatNumber(max + 1)
}

// FormatNumber renders a suffix as a zero padded sales order number.
func FormatNumber(suffix int) string {
	return fmt.Sprintf("SO-%05d", suffix)
}
