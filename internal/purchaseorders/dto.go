package purchaseorders

import (
	"time"

	"github.com/google/uuid"

	"github.com/strideworks/stride-backend/pkg/db/models"
	"github.com/strideworks/stride-backend/pkg/enums"
)

// PurchaseOrderDTO is the wire representation of an order with its lines.
type PurchaseOrderDTO struct {
	ID                 uuid.UUID      `json:"id"`
	PONumber           string         `json:"po_number"`
	VendorID           uuid.UUID      `json:"vendor_id"`
	VendorName         string         `json:"vendor_name"`
	ReferenceNumber    string         `json:"reference_number"`
	OrderDate          time.Time      `json:"order_date"`
	DeliveryDate       *time.Time     `json:"delivery_date,omitempty"`
	PaymentTerms       string         `json:"payment_terms"`
	ShipmentPreference string         `json:"shipment_preference"`
	Notes              string         `json:"notes"`
	Terms              string         `json:"terms"`
	DiscountPercent    float64        `json:"discount_percent"`
	SubTotal           float64        `json:"sub_total"`
	DiscountAmount     float64        `json:"discount_amount"`
	TotalTax           float64        `json:"total_tax"`
	Total              float64        `json:"total"`
	Status             enums.POStatus `json:"status"`
	Items              []LineItemDTO  `json:"items"`
	CreatedAt          time.Time      `json:"created_at"`
	UpdatedAt          time.Time      `json:"updated_at"`
}

// LineItemDTO is one ordered line with derived amounts.
type LineItemDTO struct {
	ID          uuid.UUID     `json:"id"`
	Position    int           `json:"position"`
	CatalogueID *uuid.UUID    `json:"catalogue_id,omitempty"`
	VariantID   *uuid.UUID    `json:"variant_id,omitempty"`
	ItemName    string        `json:"item_name"`
	ImageURL    string        `json:"image_url"`
	SKU         string        `json:"sku"`
	SKUCompany  string        `json:"sku_company"`
	HSNCode     string        `json:"hsn_code"`
	Quantity    int           `json:"quantity"`
	TaxRate     float64       `json:"tax_rate"`
	TaxType     enums.TaxType `json:"tax_type"`
	BasePrice   float64       `json:"base_price"`
	TaxPerItem  float64       `json:"tax_per_item"`
	UnitTotal   float64       `json:"unit_total"`
}

// NewPurchaseOrderDTO maps an order row and loaded lines to wire shape.
func NewPurchaseOrderDTO(order *models.PurchaseOrder) *PurchaseOrderDTO {
	if order == nil {
		return nil
	}

	items := make([]LineItemDTO, len(order.Items))
	for i, item := range order.Items {
		items[i] = LineItemDTO{
			ID:          item.ID,
			Position:    item.Position,
			CatalogueID: item.CatalogueID,
			VariantID:   item.VariantID,
			ItemName:    item.ItemName,
			ImageURL:    item.ImageURL,
			SKU:         item.SKU,
			SKUCompany:  item.SKUCompany,
			HSNCode:     item.HSNCode,
			Quantity:    item.Quantity,
			TaxRate:     item.TaxRate,
			TaxType:     item.TaxType,
			BasePrice:   item.BasePrice,
			TaxPerItem:  item.TaxPerItem,
			UnitTotal:   item.UnitTotal,
		}
	}

	return &PurchaseOrderDTO{
		ID:                 order.ID,
		PONumber:           order.PONumber,
		VendorID:           order.VendorID,
		VendorName:         order.VendorName,
		ReferenceNumber:    order.ReferenceNumber,
		OrderDate:          order.OrderDate,
		DeliveryDate:       order.DeliveryDate,
		PaymentTerms:       order.PaymentTerms,
		ShipmentPreference: order.ShipmentPreference,
		Notes:              order.Notes,
		Terms:              order.Terms,
		DiscountPercent:    order.DiscountPercent,
		SubTotal:           order.SubTotal,
		DiscountAmount:     order.DiscountAmount,
		TotalTax:           order.TotalTax,
		Total:              order.Total,
		Status:             order.Status,
		Items:              items,
		CreatedAt:          order.CreatedAt,
		UpdatedAt:          order.UpdatedAt,
	}
}
