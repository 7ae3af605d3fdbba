package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/strideworks/stride-backend/pkg/enums"
)

// PurchaseOrder is a vendor-facing order document. Monetary fields are the
// stored results of the line fold; they are never read back as inputs.
type PurchaseOrder struct {
	ID                 uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	PONumber           string         `gorm:"column:po_number;not null;uniqueIndex:uq_purchase_orders_po_number"`
	VendorID           uuid.UUID      `gorm:"column:vendor_id;type:uuid;not null;index"`
	VendorName         string         `gorm:"column:vendor_name;not null"`
	ReferenceNumber    string         `gorm:"column:reference_number;not null;default:''"`
	OrderDate          time.Time      `gorm:"column:order_date;not null"`
	DeliveryDate       *time.Time     `gorm:"column:delivery_date"`
	PaymentTerms       string         `gorm:"column:payment_terms;not null;default:''"`
	ShipmentPreference string         `gorm:"column:shipment_preference;not null;default:''"`
	Notes              string         `gorm:"column:notes;not null;default:''"`
	Terms              string         `gorm:"column:terms;not null;default:''"`
	DiscountPercent    float64        `gorm:"column:discount_percent;not null;default:0"`
	SubTotal           float64        `gorm:"column:sub_total;not null;default:0"`
	DiscountAmount     float64        `gorm:"column:discount_amount;not null;default:0"`
	TotalTax           float64        `gorm:"column:total_tax;not null;default:0"`
	Total              float64        `gorm:"column:total;not null;default:0"`
	Status             enums.POStatus `gorm:"column:status;type:text;not null;default:'DRAFT'"`
	Items              []POLineItem   `gorm:"foreignKey:PurchaseOrderID;constraint:OnDelete:CASCADE"`
	CreatedAt          time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt          time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}

// POLineItem is one ordered line. TaxPerItem and UnitTotal are derived from
// quantity, base price and tax rate and recomputed on every change.
type POLineItem struct {
	ID              uuid.UUID     `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	PurchaseOrderID uuid.UUID     `gorm:"column:purchase_order_id;type:uuid;not null;index"`
	Position        int           `gorm:"column:position;not null"`
	CatalogueID     *uuid.UUID    `gorm:"column:catalogue_id;type:uuid"`
	VariantID       *uuid.UUID    `gorm:"column:variant_id;type:uuid"`
	ItemName        string        `gorm:"column:item_name;not null"`
	ImageURL        string        `gorm:"column:image_url;not null;default:''"`
	SKU             string        `gorm:"column:sku;not null;default:''"`
	SKUCompany      string        `gorm:"column:sku_company;not null;default:''"`
	HSNCode         string        `gorm:"column:hsn_code;not null;default:''"`
	Quantity        int           `gorm:"column:quantity;not null;default:1"`
	TaxRate         float64       `gorm:"column:tax_rate;not null;default:0"`
	TaxType         enums.TaxType `gorm:"column:tax_type;type:text;not null;default:'CGST_SGST'"`
	BasePrice       float64       `gorm:"column:base_price;not null;default:0"`
	TaxPerItem      float64       `gorm:"column:tax_per_item;not null;default:0"`
	UnitTotal       float64       `gorm:"column:unit_total;not null;default:0"`
	CreatedAt       time.Time     `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt       time.Time     `gorm:"column:updated_at;autoUpdateTime"`
}
