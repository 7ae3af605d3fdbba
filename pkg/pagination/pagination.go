package pagination

const (
	// DefaultLimit is the standard page size when a limit is not provided.
	DefaultLimit = 25
	// MaxLimit caps how many rows a capped listing can request.
	MaxLimit = 100
)

// Params holds offset pagination inputs from controllers or services.
// Page is 1-indexed.
type Params struct {
	Page  int
	Limit int
}

// Normalize applies the default page and limit to zero or negative inputs.
func Normalize(p Params) Params {
	if p.Page <= 0 {
		p.Page = 1
	}
	if p.Limit <= 0 {
		p.Limit = DefaultLimit
	}
	return p
}

// NormalizeCapped normalizes and additionally clamps the limit to MaxLimit.
func NormalizeCapped(p Params) Params {
	p = Normalize(p)
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

// Offset converts the 1-indexed page into a row offset.
func (p Params) Offset() int {
	if p.Page <= 1 {
		return 0
	}
	return (p.Page - 1) * p.Limit
}
