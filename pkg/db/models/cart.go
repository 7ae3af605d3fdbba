package models

import (
	"time"

	"github.com/google/uuid"
)

// CartRecord is the single open cart a distributor user owns.
type CartRecord struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	UserID    uuid.UUID  `gorm:"column:user_id;type:uuid;not null;uniqueIndex"`
	Items     []CartItem `gorm:"foreignKey:CartID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

// CartItem references a catalogue variant at a specific size label.
type CartItem struct {
	ID          uuid.UUID `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	CartID      uuid.UUID `gorm:"column:cart_id;type:uuid;not null;index"`
	CatalogueID uuid.UUID `gorm:"column:catalogue_id;type:uuid;not null"`
	VariantID   uuid.UUID `gorm:"column:variant_id;type:uuid;not null"`
	SizeLabel   string    `gorm:"column:size_label;not null"`
	Quantity    int       `gorm:"column:quantity;not null"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime"`
}
