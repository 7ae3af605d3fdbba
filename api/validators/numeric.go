package validators

import (
	"encoding/json"
	"strconv"
	"strings"
)

// LenientFloat is a float64 that decodes from any JSON scalar. Client-side
// documents carry numeric fields as strings in places, so numbers and
// numeric strings land as their value and anything else lands as zero.
type LenientFloat float64

func (f *LenientFloat) UnmarshalJSON(data []byte) error {
	*f = LenientFloat(FloatOrZero(json.Number(trimJSONScalar(data))))
	return nil
}

// LenientInt is the integer counterpart of LenientFloat.
type LenientInt int

func (i *LenientInt) UnmarshalJSON(data []byte) error {
	*i = LenientInt(IntOrZero(json.Number(trimJSONScalar(data))))
	return nil
}

func trimJSONScalar(data []byte) string {
	raw := strings.TrimSpace(string(data))
	if len(raw) >= 2 && raw[0] == '"' && raw[len(raw)-1] == '"' {
		raw = raw[1 : len(raw)-1]
	}
	return raw
}

// FloatOrZero coerces a json.Number to float64, defaulting to zero on
// malformed input.
func FloatOrZero(n json.Number) float64 {
	raw := strings.TrimSpace(n.String())
	if raw == "" {
		return 0
	}
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return value
}

// IntOrZero coerces a json.Number to int, defaulting to zero on
// malformed input. Fractional values are truncated.
func IntOrZero(n json.Number) int {
	raw := strings.TrimSpace(n.String())
	if raw == "" {
		return 0
	}
	if value, err := strconv.Atoi(raw); err == nil {
		return value
	}
	if value, err := strconv.ParseFloat(raw, 64); err == nil {
		return int(value)
	}
	return 0
}
