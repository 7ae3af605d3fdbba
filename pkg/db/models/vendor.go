package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Vendor is a supplier the distributor raises purchase orders against.
type Vendor struct {
	ID            uuid.UUID      `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey"`
	DisplayName   string         `gorm:"column:display_name;not null"`
	CompanyName   string         `gorm:"column:company_name;not null;default:''"`
	ContactPerson string         `gorm:"column:contact_person;not null;default:''"`
	Email         string         `gorm:"column:email;not null;default:''"`
	Phone         string         `gorm:"column:phone;not null;default:''"`
	GSTIN         *string        `gorm:"column:gstin"`
	AddressLine1  string         `gorm:"column:address_line1;not null;default:''"`
	AddressLine2  *string        `gorm:"column:address_line2"`
	City          string         `gorm:"column:city;not null;default:''"`
	State         string         `gorm:"column:state;not null;default:''"`
	Pincode       string         `gorm:"column:pincode;not null;default:''"`
	PaymentTerms  string         `gorm:"column:payment_terms;not null;default:''"`
	Tags          pq.StringArray `gorm:"column:tags;type:text[];not null;default:ARRAY[]::text[]"`
	Notes         *string        `gorm:"column:notes"`
	IsDeleted     bool           `gorm:"column:is_deleted;not null;default:false"`
	CreatedAt     time.Time      `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt     time.Time      `gorm:"column:updated_at;autoUpdateTime"`
}
