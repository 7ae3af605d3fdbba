package purchaseorders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/strideworks/stride-backend/pkg/db/models"
	"github.com/strideworks/stride-backend/pkg/enums"
	"github.com/strideworks/stride-backend/pkg/pagination"
)

// Repository persists purchase orders and their lines.
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

func (r *Repository) Create(ctx context.Context, order *models.PurchaseOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

// FindByID loads an order with lines in position order.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.PurchaseOrder, error) {
	var order models.PurchaseOrder
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListFilter narrows the purchase order listing.
type ListFilter struct {
	VendorID *uuid.UUID
	Status   enums.POStatus
}

// List returns orders newest first.
func (r *Repository) List(ctx context.Context, filter ListFilter, page pagination.Params) ([]models.PurchaseOrder, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.PurchaseOrder{})

	if filter.VendorID != nil {
		query = query.Where("vendor_id = ?", *filter.VendorID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.PurchaseOrder
	if err := query.
		Preload("Items", func(db *gorm.DB) *gorm.DB {
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

func (r *Repository) Update(ctx context.Context, order *models.PurchaseOrder) error {
	return r.db.WithContext(ctx).Omit("Items").Save(order).Error
}

// ReplaceItems deletes all line rows for the order and writes the provided
// set. Positions are assumed to be assigned by the caller.
func (r *Repository) ReplaceItems(ctx context.Context, orderID uuid.UUID, items []models.POLineItem) error {
	tx := r.db.WithContext(ctx)
	if err := tx.Where("purchase_order_id = ?", orderID).Delete(&models.POLineItem{}).Error; err != nil {
		return err
	}
	if len(items) == 0 {
		return nil
	}
	return tx.Create(&items).Error
}

func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.PurchaseOrder{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// ListNumbers returns every order number ever issued, including numbers on
// orders later deleted in the same process lifetime only if still present.
func (r *Repository) ListNumbers(ctx context.Context) ([]string, error) {
	var numbers []string
	if err := r.db.WithContext(ctx).
		Model(&models.PurchaseOrder{}).
		Pluck("po_number", &numbers).Error; err != nil {
		return nil, err
	}
	return numbers, nil
}
