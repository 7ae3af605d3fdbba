package enums

import "fmt"

// Gender represents the article gender segment.
type Gender string

const (
	GenderMen    Gender = "MEN"
	GenderWomen  Gender = "WOMEN"
	GenderKids   Gender = "KIDS"
	GenderUnisex Gender = "UNISEX"
)

var validGenders = []Gender{
	GenderMen,
	GenderWomen,
	GenderKids,
	GenderUnisex,
}

// String implements fmt.Stringer.
func (g Gender) String() string {
	return string(g)
}

// IsValid reports whether the value is a known Gender.
func (g Gender) IsValid() bool {
	for _, candidate := range validGenders {
		if candidate == g {
			return true
		}
	}
	return false
}

// ParseGender converts raw input into a Gender.
func ParseGender(value string) (Gender, error) {
	for _, candidate := range validGenders {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid gender %q", value)
}

// CatalogueStage is the article lifecycle flag.
type CatalogueStage string

const (
	StageAvailable CatalogueStage = "AVAILABLE"
	StageWishlist  CatalogueStage = "WISHLIST"
)

var validCatalogueStages = []CatalogueStage{
	StageAvailable,
	StageWishlist,
}

// String implements fmt.Stringer.
func (s CatalogueStage) String() string {
	return string(s)
}

// IsValid reports whether the value is a known CatalogueStage.
func (s CatalogueStage) IsValid() bool {
	for _, candidate := range validCatalogueStages {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseCatalogueStage converts raw input into a CatalogueStage.
func ParseCatalogueStage(value string) (CatalogueStage, error) {
	for _, candidate := range validCatalogueStages {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid catalogue stage %q", value)
}
