package catalogues

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/strideworks/stride-backend/pkg/db/models"
	"github.com/strideworks/stride-backend/pkg/enums"
	"github.com/strideworks/stride-backend/pkg/pagination"
)

// Repository persists catalogues and their variants.
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

func (r *Repository) Create(ctx context.Context, catalogue *models.Catalogue) error {
	return r.db.WithContext(ctx).Create(catalogue).Error
}

// FindByID loads a live catalogue with variants in position order.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.Catalogue, error) {
	var catalogue models.Catalogue
	if err := r.db.WithContext(ctx).
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&catalogue, "id = ? AND is_deleted = ?", id, false).Error; err != nil {
		return nil, err
	}
	return &catalogue, nil
}

// ListFilter narrows the catalogue listing.
type ListFilter struct {
	Stage                 enums.CatalogueStage
	Gender                enums.Gender
	CategoryID            *uuid.UUID
	BrandID               *uuid.UUID
	ManufacturerCompanyID *uuid.UUID
	Search                string
}

// List returns live catalogues newest first. The listing is not capped; the
// client UI renders the full master in one view.
func (r *Repository) List(ctx context.Context, filter ListFilter, page pagination.Params) ([]models.Catalogue, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Catalogue{}).Where("is_deleted = ?", false)

	if filter.Stage != "" {
		query = query.Where("stage = ?", filter.Stage)
	}
	if filter.Gender != "" {
		query = query.Where("gender = ?", filter.Gender)
	}
	if filter.CategoryID != nil {
		query = query.Where("category_id = ?", *filter.CategoryID)
	}
	if filter.BrandID != nil {
		query = query.Where("brand_id = ?", *filter.BrandID)
	}
	if filter.ManufacturerCompanyID != nil {
		query = query.Where("manufacturer_company_id = ?", *filter.ManufacturerCompanyID)
	}
	if term := strings.TrimSpace(filter.Search); term != "" {
		like := "%" + strings.ToLower(term) + "%"
		query = query.Where("LOWER(article_name) LIKE ? OR LOWER(sole_color) LIKE ?", like, like)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Catalogue
	if err := query.
		Preload("Variants", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Order("created_at DESC").
		Offset(page.Offset()).
		Limit(page.Limit).
		Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

func (r *Repository) Update(ctx context.Context, catalogue *models.Catalogue) error {
	return r.db.WithContext(ctx).Omit("Variants").Save(catalogue).Error
}

// ReplaceVariants deletes all variant rows for the catalogue and writes the
// provided set. Positions are assumed to be assigned by the caller.
func (r *Repository) ReplaceVariants(ctx context.Context, catalogueID uuid.UUID, variants []models.CatalogueVariant) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("catalogue_id = ?", catalogueID).Delete(&models.CatalogueVariant{}).Error; err != nil {
		return err
	}
	if len(variants) == 0 {
		return nil
	}
	return tx.Create(&variants).Error
}

// MarkDeleted flips the soft-delete flag. Returns gorm.ErrRecordNotFound when
// the catalogue is missing or already deleted.
func (r *Repository) MarkDeleted(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).
		Model(&models.Catalogue{}).
		Where("id = ? AND is_deleted = ?", id, false).
		Update("is_deleted", true)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
