package orders

import (
	"time"

	"github.com/google/uuid"

	"github.com/strideworks/stride-backend/pkg/db/models"
	"github.com/strideworks/stride-backend/pkg/enums"
)

// SalesOrderDTO is the wire representation of a distributor order.
type SalesOrderDTO struct {
	ID        uuid.UUID              `json:"id"`
	SONumber  string                 `json:"so_number"`
	UserID    uuid.UUID              `json:"user_id"`
	Status    enums.SalesOrderStatus `json:"status"`
	Total     float64                `json:"total"`
	Items     []SalesOrderItemDTO    `json:"items"`
	CreatedAt time.Time              `json:"created_at"`
	UpdatedAt time.Time              `json:"updated_at"`
}

// SalesOrderItemDTO is one frozen order line.
type SalesOrderItemDTO struct {
	ID          uuid.UUID  `json:"id"`
	Position    int        `json:"position"`
	CatalogueID *uuid.UUID `json:"catalogue_id,omitempty"`
	VariantID   *uuid.UUID `json:"variant_id,omitempty"`
	ItemName    string     `json:"item_name"`
	SizeLabel   string     `json:"size_label"`
	UnitPrice   float64    `json:"unit_price"`
	Quantity    int        `json:"quantity"`
	LineTotal   float64    `json:"line_total"`
}

// NewSalesOrderDTO maps a stored order onto its API shape.
func NewSalesOrderDTO(order *models.SalesOrder) *SalesOrderDTO {
	items := make([]SalesOrderItemDTO, len(order.Items))
	for i, item := range order.Items {
		items[i] = SalesOrderItemDTO{
			ID:          item.ID,
			Position:    item.Position,
			CatalogueID: item.CatalogueID,
			VariantID:   item.VariantID,
			ItemName:    item.ItemName,
			SizeLabel:   item.SizeLabel,
			UnitPrice:   item.UnitPrice,
			Quantity:    item.Quantity,
			LineTotal:   item.LineTotal,
		}
	}
	return &SalesOrderDTO{
		ID:        order.ID,
		SONumber:  order.SONumber,
		UserID:    order.UserID,
		Status:    order.Status,
		Total:     order.Total,
		Items:     items,
		CreatedAt: order.CreatedAt,
		UpdatedAt: order.UpdatedAt,
	}
}
