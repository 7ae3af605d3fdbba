package masterdata

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/strideworks/stride-backend/pkg/db/models"
)

// Repository persists the catalogue reference collections.
type Repository struct {
	db *gorm.DB
}

// NewRepository builds a repository tied to the provided GORM DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// WithTx returns a repository bound to the provided transaction.
func (r *Repository) WithTx(tx *gorm.DB) *Repository {
	return &Repository{db: tx}
}

func (r *Repository) CreateCategory(ctx context.Context, record *models.Category) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *Repository) ListCategories(ctx context.Context) ([]models.Category, error) {
	var rows []models.Category
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *Repository) RenameCategory(ctx context.Context, id uuid.UUID, name string) (*models.Category, error) {
	var record models.Category
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	record.Name = name
	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *Repository) DeleteCategory(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.Category](r.db, ctx, id)
}

func (r *Repository) CreateBrand(ctx context.Context, record *models.Brand) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *Repository) ListBrands(ctx context.Context) ([]models.Brand, error) {
	var rows []models.Brand
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *Repository) RenameBrand(ctx context.Context, id uuid.UUID, name string) (*models.Brand, error) {
	var record models.Brand
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	record.Name = name
	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *Repository) DeleteBrand(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.Brand](r.db, ctx, id)
}

func (r *Repository) CreateManufacturer(ctx context.Context, record *models.ManufacturerCompany) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *Repository) ListManufacturers(ctx context.Context) ([]models.ManufacturerCompany, error) {
	var rows []models.ManufacturerCompany
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *Repository) RenameManufacturer(ctx context.Context, id uuid.UUID, name string) (*models.ManufacturerCompany, error) {
	var record models.ManufacturerCompany
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	record.Name = name
	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *Repository) DeleteManufacturer(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.ManufacturerCompany](r.db, ctx, id)
}

func (r *Repository) CreateUnit(ctx context.Context, record *models.Unit) error {
	return r.db.WithContext(ctx).Create(record).Error
}

func (r *Repository) ListUnits(ctx context.Context) ([]models.Unit, error) {
	var rows []models.Unit
	err := r.db.WithContext(ctx).Order("name ASC").Find(&rows).Error
	return rows, err
}

func (r *Repository) RenameUnit(ctx context.Context, id uuid.UUID, name string) (*models.Unit, error) {
	var record models.Unit
	if err := r.db.WithContext(ctx).First(&record, "id = ?", id).Error; err != nil {
		return nil, err
	}
	record.Name = name
	if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

func (r *Repository) DeleteUnit(ctx context.Context, id uuid.UUID) error {
	return deleteByID[models.Unit](r.db, ctx, id)
}

func deleteByID[T any](db *gorm.DB, ctx context.Context, id uuid.UUID) error {
	var zero T
	result := db.WithContext(ctx).Where("id = ?", id).Delete(&zero)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
