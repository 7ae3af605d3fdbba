package vendors

import (
	"time"

	"github.com/google/uuid"

	"github.com/strideworks/stride-backend/pkg/db/models"
)

// VendorDTO is the wire representation of a supplier.
type VendorDTO struct {
	ID            uuid.UUID `json:"id"`
	DisplayName   string    `json:"display_name"`
	CompanyName   string    `json:"company_name"`
	ContactPerson string    `json:"contact_person"`
	Email         string    `json:"email"`
	Phone         string    `json:"phone"`
	GSTIN         *string   `json:"gstin,omitempty"`
	AddressLine1  string    `json:"address_line1"`
	AddressLine2  *string   `json:"address_line2,omitempty"`
	City          string    `json:"city"`
	State         string    `json:"state"`
	Pincode       string    `json:"pincode"`
	PaymentTerms  string    `json:"payment_terms"`
	Tags          []string  `json:"tags"`
	Notes         *string   `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewVendorDTO maps a vendor row to its wire shape.
func NewVendorDTO(vendor *models.Vendor) *VendorDTO {
	if vendor == nil {
		return nil
	}
	tags := vendor.Tags
	if tags == nil {
		tags = []string{}
	}
	return &VendorDTO{
		ID:            vendor.ID,
		DisplayName:   vendor.DisplayName,
		CompanyName:   vendor.CompanyName,
		ContactPerson: vendor.ContactPerson,
		Email:         vendor.Email,
		Phone:         vendor.Phone,
		GSTIN:         vendor.GSTIN,
		AddressLine1:  vendor.AddressLine1,
		AddressLine2:  vendor.AddressLine2,
		City:          vendor.City,
		State:         vendor.State,
		Pincode:       vendor.Pincode,
		PaymentTerms:  vendor.PaymentTerms,
		Tags:          tags,
		Notes:         vendor.Notes,
		CreatedAt:     vendor.CreatedAt,
		UpdatedAt:     vendor.UpdatedAt,
	}
}
