package vendors

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/strideworks/stride-backend/pkg/db/models"
	pkgerrors "github.com/strideworks/stride-backend/pkg/errors"
	"github.com/strideworks/stride-backend/pkg/pagination"
)

// Service exposes vendor management operations.
type Service interface {
	Create(ctx context.Context, input CreateVendorInput) (*VendorDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*VendorDTO, error)
	List(ctx context.Context, input ListVendorsInput) (*ListResult, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateVendorInput) (*VendorDTO, error)
	SoftDelete(ctx context.Context, id uuid.UUID) error
}

// CreateVendorInput holds the validated payload to create a vendor.
type CreateVendorInput struct {
	DisplayName   string
	CompanyName   string
	ContactPerson string
	Email         string
	Phone         string
	GSTIN         *string
	AddressLine1  string
	AddressLine2  *string
	City          string
	State         string
	Pincode       string
	PaymentTerms  string
	Tags          []string
	Notes         *string
}

// UpdateVendorInput holds optional mutation values; nil fields are untouched.
type UpdateVendorInput struct {
	DisplayName   *string
	CompanyName   *string
	ContactPerson *string
	Email         *string
	Phone         *string
	GSTIN         *string
	AddressLine1  *string
	AddressLine2  *string
	City          *string
	State         *string
	Pincode       *string
	PaymentTerms  *string
	Tags          *[]string
	Notes         *string
}

// ListVendorsInput carries filters for the vendor listing.
type ListVendorsInput struct {
	Search string
	Page   pagination.Params
}

// ListResult pairs a vendor page with the unpaged total.
type ListResult struct {
	Vendors []VendorDTO
	Total   int64
	Page    pagination.Params
}

type service struct {
	repo *Repository
}

// NewService constructs a vendor service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("vendor repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, input CreateVendorInput) (*VendorDTO, error) {
	displayName := strings.TrimSpace(input.DisplayName)
	if displayName == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "display_name is required")
	}

	vendor := &models.Vendor{
		DisplayName:   displayName,
		CompanyName:   strings.TrimSpace(input.CompanyName),
		ContactPerson: strings.TrimSpace(input.ContactPerson),
		Email:         strings.TrimSpace(input.Email),
		Phone:         strings.TrimSpace(input.Phone),
		GSTIN:         input.GSTIN,
		AddressLine1:  strings.TrimSpace(input.AddressLine1),
		AddressLine2:  input.AddressLine2,
		City:          strings.TrimSpace(input.City),
		State:         strings.TrimSpace(input.State),
		Pincode:       strings.TrimSpace(input.Pincode),
		PaymentTerms:  strings.TrimSpace(input.PaymentTerms),
		Tags:          input.Tags,
		Notes:         input.Notes,
	}
	if vendor.Tags == nil {
		vendor.Tags = []string{}
	}

	if err := s.repo.Create(ctx, vendor); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert vendor")
	}
	return NewVendorDTO(vendor), nil
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*VendorDTO, error) {
	vendor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load vendor")
	}
	return NewVendorDTO(vendor), nil
}

func (s *service) List(ctx context.Context, input ListVendorsInput) (*ListResult, error) {
	page := pagination.Normalize(input.Page)
	rows, total, err := s.repo.List(ctx, input.Search, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list vendors")
	}

	out := make([]VendorDTO, len(rows))
	for i := range rows {
		out[i] = *NewVendorDTO(&rows[i])
	}
	return &ListResult{Vendors: out, Total: total, Page: page}, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateVendorInput) (*VendorDTO, error) {
	vendor, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load vendor")
	}

	applyUpdate(vendor, input)
	if strings.TrimSpace(vendor.DisplayName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "display_name cannot be empty")
	}

	if err := s.repo.Update(ctx, vendor); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update vendor")
	}
	return NewVendorDTO(vendor), nil
}

func (s *service) SoftDelete(ctx context.Context, id uuid.UUID) error {
	if err := s.repo.MarkDeleted(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "vendor not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete vendor")
	}
	return nil
}

func applyUpdate(vendor *models.Vendor, input UpdateVendorInput) {
	if input.DisplayName != nil {
		vendor.DisplayName = strings.TrimSpace(*input.DisplayName)
	}
	if input.CompanyName != nil {
		vendor.CompanyName = strings.TrimSpace(*input.CompanyName)
	}
	if input.ContactPerson != nil {
		vendor.ContactPerson = strings.TrimSpace(*input.ContactPerson)
	}
	if input.Email != nil {
		vendor.Email = strings.TrimSpace(*input.Email)
	}
	if input.Phone != nil {
		vendor.Phone = strings.TrimSpace(*input.Phone)
	}
	if input.GSTIN != nil {
		vendor.GSTIN = input.GSTIN
	}
	if input.AddressLine1 != nil {
		vendor.AddressLine1 = strings.TrimSpace(*input.AddressLine1)
	}
	if input.AddressLine2 != nil {
		vendor.AddressLine2 = input.AddressLine2
	}
	if input.City != nil {
		vendor.City = strings.TrimSpace(*input.City)
	}
	if input.State != nil {
		vendor.State = strings.TrimSpace(*input.State)
	}
	if input.Pincode != nil {
		vendor.Pincode = strings.TrimSpace(*input.Pincode)
	}
	if input.PaymentTerms != nil {
		vendor.PaymentTerms = strings.TrimSpace(*input.PaymentTerms)
	}
	if input.Tags != nil {
		vendor.Tags = *input.Tags
		if vendor.Tags == nil {
			vendor.Tags = []string{}
		}
	}
	if input.Notes != nil {
		vendor.Notes = input.Notes
	}
}
