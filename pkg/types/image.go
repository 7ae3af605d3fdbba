package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// ImageRef is the uniform {url, key?} shape every image field normalizes to,
// whether it came from an upload pipeline or a direct URL.
type ImageRef struct {
	URL string  `json:"url"`
	Key *string `json:"key,omitempty"`
}

// IsZero reports whether no image is present.
func (i ImageRef) IsZero() bool {
	return strings.TrimSpace(i.URL) == ""
}

// Value marshals the ref into a JSONB column.
func (i ImageRef) Value() (driver.Value, error) {
	raw, err := json.Marshal(i)
	if err != nil {
		return nil, fmt.Errorf("image ref: %w", err)
	}
	return string(raw), nil
}

// Scan decodes the JSONB column.
func (i *ImageRef) Scan(value interface{}) error {
	if value == nil {
		*i = ImageRef{}
		return nil
	}
	raw, ok := toBytes(value)
	if !ok {
		return fmt.Errorf("image ref: unsupported scan type %T", value)
	}
	return json.Unmarshal(raw, i)
}

// ImageRefList is an ordered JSONB array of image refs. Order is display
// order and must survive round trips.
type ImageRefList []ImageRef

// Value marshals the list into a JSONB column.
func (l ImageRefList) Value() (driver.Value, error) {
	if l == nil {
		l = ImageRefList{}
	}
	raw, err := json.Marshal(l)
	if err != nil {
		return nil, fmt.Errorf("image ref list: %w", err)
	}
	return string(raw), nil
}

// Scan decodes the JSONB column.
func (l *ImageRefList) Scan(value interface{}) error {
	if value == nil {
		*l = ImageRefList{}
		return nil
	}
	raw, ok := toBytes(value)
	if !ok {
		return fmt.Errorf("image ref list: unsupported scan type %T", value)
	}
	return json.Unmarshal(raw, l)
}

func toBytes(value interface{}) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	default:
		return nil, false
	}
}
