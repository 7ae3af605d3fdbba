package cart

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/strideworks/stride-backend/pkg/db/models"
)

// Repository persists carts and resolves the variants they reference.
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

// FindByUser loads the user's cart with items in insertion order.
// gorm.ErrRecordNotFound means the user has no cart yet.
func (r *Repository) FindByUser(ctx context.Context, userID uuid.UUID) (*models.CartRecord, error) {
	var record models.CartRecord
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("created_at ASC")
		}).
		First(&record, "user_id = ?", userID).Error; err != nil {
		return nil, err
	}
	return &record, nil
}

// Replace swaps the cart contents wholesale, creating the cart row on first use.
func (r *Repository) Replace(ctx context.Context, userID uuid.UUID, items []models.CartItem) (*models.CartRecord, error) {
	var record models.CartRecord
	err := r.db.WithContext(ctx).First(&record, "user_id = ?", userID).Error
	switch {
	case err == nil:
	case err == gorm.ErrRecordNotFound:
		record = models.CartRecord{UserID: userID}
		if err := r.db.WithContext(ctx).Create(&record).Error; err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	if err := r.db.WithContext(ctx).
		Where("cart_id = ?", record.ID).
		Delete(&models.CartItem{}).Error; err != nil {
		return nil, err
	}
	if len(items) > 0 {
		for i := range items {
			items[i].CartID = record.ID
		}
		if err := r.db.WithContext(ctx).Create(&items).Error; err != nil {
			return nil, err
		}
	}
	record.Items = items
	return &record, nil
}

// Clear empties the cart after checkout. A missing cart is not an error.
func (r *Repository) Clear(ctx context.Context, userID uuid.UUID) error {
	var record models.CartRecord
	if err := r.db.WithContext(ctx).First(&record, "user_id = ?", userID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil
		}
		return err
	}
	return r.db.WithContext(ctx).
		Where("cart_id = ?", record.ID).
		Delete(&models.CartItem{}).Error
}

// FindVariants resolves live variants for the given IDs, skipping any whose
// catalogue has been soft deleted.
func (r *Repository) FindVariants(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]models.CatalogueVariant, error) {
	out := make(map[uuid.UUID]models.CatalogueVariant, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	var rows []models.CatalogueVariant
	if err := r.db.WithContext(ctx).
		Joins("JOIN catalogues ON catalogues.id = catalogue_variants.catalogue_id AND catalogues.is_deleted = ?", false).
		Where("catalogue_variants.id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.ID] = row
	}
	return out, nil
}
