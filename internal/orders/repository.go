package orders

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/strideworks/stride-backend/pkg/db/models"
	"github.com/strideworks/stride-backend/pkg/enums"
	"github.com/strideworks/stride-backend/pkg/pagination"
)

// Repository persists sales orders.
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

func (r *Repository) Create(ctx context.Context, order *models.SalesOrder) error {
	return r.db.WithContext(ctx).Create(order).Error
}

func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (*models.SalesOrder, error) {
	var order models.SalesOrder
	if err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&order, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &order, nil
}

// ListFilter narrows the sales order listing. A nil UserID means all users.
type ListFilter struct {
	UserID *uuid.UUID
	Status enums.SalesOrderStatus
}

// List returns orders newest first.
func (r *Repository) List(ctx context.Context, filter ListFilter, page pagination.Params) ([]models.SalesOrder, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.SalesOrder{})

	if filter.UserID != nil {
		query = query.Where("user_id = ?", *filter.UserID)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.SalesOrder
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

func (r *Repository) Update(ctx context.Context, order *models.SalesOrder) error {
	return r.db.WithContext(ctx).Omit("Items").Save(order).Error
}

// ListNumbers returns every sales order number issued so far.
func (r *Repository) ListNumbers(ctx context.Context) ([]string, error) {
	var numbers []string
	if err := r.db.WithContext(ctx).
		Model(&models.SalesOrder{}).
		Pluck("so_number", &numbers).Error; err != nil {
		return nil, err
	}
	return numbers, nil
}
