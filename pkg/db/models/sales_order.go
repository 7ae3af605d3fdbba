package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/strideworks/stride-backend/pkg/enums"
)

// SalesOrder is a distributor order snapshotted from a cart at checkout.
type SalesOrder struct {
	ID        uuid.UUID              `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SONumber  string                 `gorm:"column:so_number;not null;uniqueIndex:uq_sales_orders_so_number"`
	UserID    uuid.UUID              `gorm:"column:user_id;type:uuid;not null;index"`
	Status    enums.SalesOrderStatus `gorm:"column:status;type:text;not null;default:'PLACED'"`
	Total     float64                `gorm:"column:total;not null;default:0"`
	Items     []SalesOrderItem       `gorm:"foreignKey:SalesOrderID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time              `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time              `gorm:"column:updated_at;autoUpdateTime"`
}

// SalesOrderItem is a denormalized line; prices are frozen at checkout time.
type SalesOrderItem struct {
	ID           uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	SalesOrderID uuid.UUID  `gorm:"column:sales_order_id;type:uuid;not null;index"`
	Position     int        `gorm:"column:position;not null"`
	CatalogueID  *uuid.UUID `gorm:"column:catalogue_id;type:uuid"`
	VariantID    *uuid.UUID `gorm:"column:variant_id;type:uuid"`
	ItemName     string     `gorm:"column:item_name;not null"`
	SizeLabel    string     `gorm:"column:size_label;not null"`
	UnitPrice    float64    `gorm:"column:unit_price;not null"`
	Quantity     int        `gorm:"column:quantity;not null"`
	LineTotal    float64    `gorm:"column:line_total;not null"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
}
