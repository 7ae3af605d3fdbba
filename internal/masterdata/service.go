package masterdata

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/strideworks/stride-backend/pkg/db"
	"github.com/strideworks/stride-backend/pkg/db/models"
	pkgerrors "github.com/strideworks/stride-backend/pkg/errors"
)

// Collection selects one of the catalogue reference collections.
type Collection string

const (
	CollectionCategories    Collection = "categories"
	CollectionBrands        Collection = "brands"
	CollectionManufacturers Collection = "manufacturer-companies"
	CollectionUnits         Collection = "units"
)

// ItemDTO is the wire shape shared by all four collections.
type ItemDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// CreateItemInput holds the validated payload for a new entry.
type CreateItemInput struct {
	Name        string
	Description *string
}

// Service exposes CRUD over the reference collections.
type Service interface {
	Create(ctx context.Context, collection Collection, input CreateItemInput) (*ItemDTO, error)
	List(ctx context.Context, collection Collection) ([]ItemDTO, error)
	Rename(ctx context.Context, collection Collection, id uuid.UUID, name string) (*ItemDTO, error)
	Delete(ctx context.Context, collection Collection, id uuid.UUID) error
}

type service struct {
	repo *Repository
}

// NewService constructs a masterdata service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("masterdata repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Create(ctx context.Context, collection Collection, input CreateItemInput) (*ItemDTO, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	var dto *ItemDTO
	var err error
	switch collection {
	case CollectionCategories:
		record := &models.Category{Name: name, Description: input.Description}
		if err = s.repo.CreateCategory(ctx, record); err == nil {
			dto = &ItemDTO{ID: record.ID, Name: record.Name, Description: record.Description, CreatedAt: record.CreatedAt}
		}
	case CollectionBrands:
		record := &models.Brand{Name: name, Description: input.Description}
		if err = s.repo.CreateBrand(ctx, record); err == nil {
			dto = &ItemDTO{ID: record.ID, Name: record.Name, Description: record.Description, CreatedAt: record.CreatedAt}
		}
	case CollectionManufacturers:
		record := &models.ManufacturerCompany{Name: name, Description: input.Description}
		if err = s.repo.CreateManufacturer(ctx, record); err == nil {
			dto = &ItemDTO{ID: record.ID, Name: record.Name, Description: record.Description, CreatedAt: record.CreatedAt}
		}
	case CollectionUnits:
		record := &models.Unit{Name: name, Description: input.Description}
		if err = s.repo.CreateUnit(ctx, record); err == nil {
			dto = &ItemDTO{ID: record.ID, Name: record.Name, Description: record.Description, CreatedAt: record.CreatedAt}
		}
	default:
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "unknown collection")
	}

	if err != nil {
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert masterdata entry")
	}
	return dto, nil
}

func (s *service) List(ctx context.Context, collection Collection) ([]ItemDTO, error) {
	switch collection {
	case CollectionCategories:
		rows, err := s.repo.ListCategories(ctx)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list categories")
		}
		out := make([]ItemDTO, len(rows))
		for i, row := range rows {
			out[i] = ItemDTO{ID: row.ID, Name: row.Name, Description: row.Description, CreatedAt: row.CreatedAt}
		}
		return out, nil
	case CollectionBrands:
		rows, err := s.repo.ListBrands(ctx)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list brands")
		}
		out := make([]ItemDTO, len(rows))
		for i, row := range rows {
			out[i] = ItemDTO{ID: row.ID, Name: row.Name, Description: row.Description, CreatedAt: row.CreatedAt}
		}
		return out, nil
	case CollectionManufacturers:
		rows, err := s.repo.ListManufacturers(ctx)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list manufacturer companies")
		}
		out := make([]ItemDTO, len(rows))
		for i, row := range rows {
			out[i] = ItemDTO{ID: row.ID, Name: row.Name, Description: row.Description, CreatedAt: row.CreatedAt}
		}
		return out, nil
	case CollectionUnits:
		rows, err := s.repo.ListUnits(ctx)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list units")
		}
		out := make([]ItemDTO, len(rows))
		for i, row := range rows {
			out[i] = ItemDTO{ID: row.ID, Name: row.Name, Description: row.Description, CreatedAt: row.CreatedAt}
		}
		return out, nil
	}
	return nil, pkgerrors.New(pkgerrors.CodeNotFound, "unknown collection")
}

func (s *service) Rename(ctx context.Context, collection Collection, id uuid.UUID, name string) (*ItemDTO, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}

	var dto *ItemDTO
	var err error
	switch collection {
	case CollectionCategories:
		var record *models.Category
		if record, err = s.repo.RenameCategory(ctx, id, name); err == nil {
			dto = &ItemDTO{ID: record.ID, Name: record.Name, Description: record.Description, CreatedAt: record.CreatedAt}
		}
	case CollectionBrands:
		var record *models.Brand
		if record, err = s.repo.RenameBrand(ctx, id, name); err == nil {
			dto = &ItemDTO{ID: record.ID, Name: record.Name, Description: record.Description, CreatedAt: record.CreatedAt}
		}
	case CollectionManufacturers:
		var record *models.ManufacturerCompany
		if record, err = s.repo.RenameManufacturer(ctx, id, name); err == nil {
			dto = &ItemDTO{ID: record.ID, Name: record.Name, Description: record.Description, CreatedAt: record.CreatedAt}
		}
	case CollectionUnits:
		var record *models.Unit
		if record, err = s.repo.RenameUnit(ctx, id, name); err == nil {
			dto = &ItemDTO{ID: record.ID, Name: record.Name, Description: record.Description, CreatedAt: record.CreatedAt}
		}
	default:
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "unknown collection")
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "entry not found")
		}
		if db.IsUniqueViolation(err, "") {
			return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "name already exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: rename masterdata entry")
	}
	return dto, nil
}

func (s *service) Delete(ctx context.Context, collection Collection, id uuid.UUID) error {
	var err error
	switch collection {
	case CollectionCategories:
		err = s.repo.DeleteCategory(ctx, id)
	case CollectionBrands:
		err = s.repo.DeleteBrand(ctx, id)
	case CollectionManufacturers:
		err = s.repo.DeleteManufacturer(ctx, id)
	case CollectionUnits:
		err = s.repo.DeleteUnit(ctx, id)
	default:
		return pkgerrors.New(pkgerrors.CodeNotFound, "unknown collection")
	}

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "entry not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete masterdata entry")
	}
	return nil
}

// ParseCollection maps a URL segment onto a known collection.
func ParseCollection(raw string) (Collection, error) {
	switch Collection(raw) {
	case CollectionCategories, CollectionBrands, CollectionManufacturers, CollectionUnits:
		return Collection(raw), nil
	}
	return "", pkgerrors.New(pkgerrors.CodeNotFound, "unknown collection")
}
