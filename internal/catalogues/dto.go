package catalogues

import (
	"time"

	"github.com/google/uuid"

	"github.com/strideworks/stride-backend/pkg/db/models"
	"github.com/strideworks/stride-backend/pkg/enums"
	"github.com/strideworks/stride-backend/pkg/types"
)

// CatalogueDTO is the wire representation of an article with its variants.
type CatalogueDTO struct {
	ID                    uuid.UUID            `json:"id"`
	ArticleName           string               `json:"article_name"`
	SoleColor             string               `json:"sole_color"`
	Gender                enums.Gender         `json:"gender"`
	CategoryID            *uuid.UUID           `json:"category_id,omitempty"`
	BrandID               *uuid.UUID           `json:"brand_id,omitempty"`
	ManufacturerCompanyID *uuid.UUID           `json:"manufacturer_company_id,omitempty"`
	UnitID                *uuid.UUID           `json:"unit_id,omitempty"`
	Stage                 enums.CatalogueStage `json:"stage"`
	ExpectedAt            *time.Time           `json:"expected_at,omitempty"`
	PrimaryImage          types.ImageRef       `json:"primary_image"`
	SecondaryImages       []types.ImageRef     `json:"secondary_images"`
	Variants              []VariantDTO         `json:"variants"`
	CreatedAt             time.Time            `json:"created_at"`
	UpdatedAt             time.Time            `json:"updated_at"`
}

// VariantDTO is one colour/size-run combination of an article.
type VariantDTO struct {
	ID           uuid.UUID            `json:"id"`
	Position     int                  `json:"position"`
	ItemName     string               `json:"item_name"`
	SKU          string               `json:"sku"`
	CostPrice    float64              `json:"cost_price"`
	SellingPrice float64              `json:"selling_price"`
	MRP          float64              `json:"mrp"`
	Sizes        types.SizeQuantities `json:"sizes"`
}

// NewCatalogueDTO maps a catalogue row and its loaded variants to wire shape.
func NewCatalogueDTO(catalogue *models.Catalogue) *CatalogueDTO {
	if catalogue == nil {
		return nil
	}

	secondary := []types.ImageRef(catalogue.SecondaryImages)
	if secondary == nil {
		secondary = []types.ImageRef{}
	}

	variants := make([]VariantDTO, len(catalogue.Variants))
	for i, variant := range catalogue.Variants {
		sizes := variant.Sizes
		if sizes == nil {
			sizes = types.SizeQuantities{}
		}
		variants[i] = VariantDTO{
			ID:           variant.ID,
			Position:     variant.Position,
			ItemName:     variant.ItemName,
			SKU:          variant.SKU,
			CostPrice:    variant.CostPrice,
			SellingPrice: variant.SellingPrice,
			MRP:          variant.MRP,
			Sizes:        sizes,
		}
	}

	return &CatalogueDTO{
		ID:                    catalogue.ID,
		ArticleName:           catalogue.ArticleName,
		SoleColor:             catalogue.SoleColor,
		Gender:                catalogue.Gender,
		CategoryID:            catalogue.CategoryID,
		BrandID:               catalogue.BrandID,
		ManufacturerCompanyID: catalogue.ManufacturerCompanyID,
		UnitID:                catalogue.UnitID,
		Stage:                 catalogue.Stage,
		ExpectedAt:            catalogue.ExpectedAt,
		PrimaryImage:          catalogue.PrimaryImage,
		SecondaryImages:       secondary,
		Variants:              variants,
		CreatedAt:             catalogue.CreatedAt,
		UpdatedAt:             catalogue.UpdatedAt,
	}
}
