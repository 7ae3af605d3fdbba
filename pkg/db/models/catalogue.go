package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/strideworks/stride-backend/pkg/enums"
	"github.com/strideworks/stride-backend/pkg/types"
)

// Catalogue is the article-level master record. Variants are owned rows kept
// in explicit position order.
type Catalogue struct {
	ID                    uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	ArticleName           string               `gorm:"column:article_name;not null"`
	SoleColor             string               `gorm:"column:sole_color;not null;default:''"`
	Gender                enums.Gender         `gorm:"column:gender;type:text;not null"`
	CategoryID            *uuid.UUID           `gorm:"column:category_id;type:uuid"`
	BrandID               *uuid.UUID           `gorm:"column:brand_id;type:uuid"`
	ManufacturerCompanyID *uuid.UUID           `gorm:"column:manufacturer_company_id;type:uuid"`
	UnitID                *uuid.UUID           `gorm:"column:unit_id;type:uuid"`
	Stage                 enums.CatalogueStage `gorm:"column:stage;type:text;not null;default:'AVAILABLE'"`
	ExpectedAt            *time.Time           `gorm:"column:expected_at"`
	PrimaryImage          types.ImageRef       `gorm:"column:primary_image;type:jsonb;not null"`
	SecondaryImages       types.ImageRefList   `gorm:"column:secondary_images;type:jsonb;not null;default:'[]'"`
	IsDeleted             bool                 `gorm:"column:is_deleted;not null;default:false"`
	Variants              []CatalogueVariant   `gorm:"foreignKey:CatalogueID;constraint:OnDelete:CASCADE"`
	CreatedAt             time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt             time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}

// CatalogueVariant is one color/size-range combination of an article.
// Position is the entry order and is load-bearing for display.
type CatalogueVariant struct {
	ID           uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CatalogueID  uuid.UUID            `gorm:"column:catalogue_id;type:uuid;not null;index"`
	Position     int                  `gorm:"column:position;not null"`
	ItemName     string               `gorm:"column:item_name;not null"`
	SKU          string               `gorm:"column:sku;not null;default:'N/A'"`
	CostPrice    float64              `gorm:"column:cost_price;not null;default:0"`
	SellingPrice float64              `gorm:"column:selling_price;not null;default:0"`
	MRP          float64              `gorm:"column:mrp;not null;default:0"`
	Sizes        types.SizeQuantities `gorm:"column:sizes;type:jsonb;not null;default:'[]'"`
	CreatedAt    time.Time            `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt    time.Time            `gorm:"column:updated_at;autoUpdateTime"`
}
