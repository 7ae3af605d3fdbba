package cart

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/strideworks/stride-backend/pkg/db/models"
	pkgerrors "github.com/strideworks/stride-backend/pkg/errors"
)

// ItemInput is one requested cart line.
type ItemInput struct {
	CatalogueID uuid.UUID
	VariantID   uuid.UUID
	SizeLabel   string
	Quantity    int
}

// CartDTO is the wire representation of a cart with its live quote.
type CartDTO struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"user_id"`
	Quote     Quote     `json:"quote"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Service exposes the distributor cart operations.
type Service interface {
	Get(ctx context.Context, userID uuid.UUID) (*CartDTO, error)
	Replace(ctx context.Context, userID uuid.UUID, items []ItemInput) (*CartDTO, error)
	Clear(ctx context.Context, userID uuid.UUID) error
	QuoteFor(ctx context.Context, userID uuid.UUID) (*models.CartRecord, *Quote, error)
}

type service struct {
	repo *Repository
}

// NewService constructs a cart service instance.
func NewService(repo *Repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("cart repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Get(ctx context.Context, userID uuid.UUID) (*CartDTO, error) {
	record, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// A user who never touched their cart sees an empty one.
			return &CartDTO{UserID: userID, Quote: Quote{Lines: []QuotedLine{}}}, nil
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load cart")
	}

	quote, err := s.buildQuote(ctx, record.Items)
	if err != nil {
		return nil, err
	}
	return newCartDTO(record, quote), nil
}

// Replace swaps the cart wholesale. Lines referencing missing or deleted
// variants are rejected rather than silently dropped.
func (s *service) Replace(ctx context.Context, userID uuid.UUID, items []ItemInput) (*CartDTO, error) {
	rows, err := s.normalizeItems(ctx, items)
	if err != nil {
		return nil, err
	}

	record, err := s.repo.Replace(ctx, userID, rows)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: replace cart")
	}

	quote, err := s.buildQuote(ctx, record.Items)
	if err != nil {
		return nil, err
	}
	return newCartDTO(record, quote), nil
}

func (s *service) Clear(ctx context.Context, userID uuid.UUID) error {
	if err := s.repo.Clear(ctx, userID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: clear cart")
	}
	return nil
}

// QuoteFor returns the stored cart and its live quote for checkout.
func (s *service) QuoteFor(ctx context.Context, userID uuid.UUID) (*models.CartRecord, *Quote, error) {
	record, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
		}
		return nil, nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load cart")
	}
	if len(record.Items) == 0 {
		return nil, nil, pkgerrors.New(pkgerrors.CodeValidation, "cart is empty")
	}

	quote, err := s.buildQuote(ctx, record.Items)
	if err != nil {
		return nil, nil, err
	}
	return record, quote, nil
}

func (s *service) normalizeItems(ctx context.Context, items []ItemInput) ([]models.CartItem, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.VariantID)
	}
	variants, err := s.repo.FindVariants(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: resolve variants")
	}

	rows := make([]models.CartItem, 0, len(items))
	for i, item := range items {
		if item.Quantity <= 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be positive").
				WithDetails(map[string]any{"position": i})
		}
		sizeLabel := strings.TrimSpace(item.SizeLabel)
		if sizeLabel == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "size_label is required").
				WithDetails(map[string]any{"position": i})
		}
		variant, ok := variants[item.VariantID]
		if !ok {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "variant not found").
				WithDetails(map[string]any{"position": i})
		}
		if variant.CatalogueID != item.CatalogueID {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "variant does not belong to the catalogue").
				WithDetails(map[string]any{"position": i})
		}
		rows = append(rows, models.CartItem{
			CatalogueID: item.CatalogueID,
			VariantID:   item.VariantID,
			SizeLabel:   sizeLabel,
			Quantity:    item.Quantity,
		})
	}
	return rows, nil
}

// buildQuote prices stored items against live variants. Items whose variant
// disappeared since the cart was written price as unavailable and are
// surfaced with a zero unit price rather than dropped.
func (s *service) buildQuote(ctx context.Context, items []models.CartItem) (*Quote, error) {
	ids := make([]uuid.UUID, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.VariantID)
	}
	variants, err := s.repo.FindVariants(ctx, ids)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: resolve variants")
	}

	lines := make([]QuotedLine, 0, len(items))
	for _, item := range items {
		line := QuotedLine{
			CatalogueID: item.CatalogueID,
			VariantID:   item.VariantID,
			SizeLabel:   item.SizeLabel,
			Quantity:    item.Quantity,
		}
		if variant, ok := variants[item.VariantID]; ok {
			line.ItemName = variant.ItemName
			line.UnitPrice = variant.SellingPrice
			line.LineTotal = priceLine(variant.SellingPrice, item.Quantity)
		}
		lines = append(lines, line)
	}
	return &Quote{Lines: lines, Total: sumLines(lines)}, nil
}

func newCartDTO(record *models.CartRecord, quote *Quote) *CartDTO {
	return &CartDTO{
		ID:        record.ID,
		UserID:    record.UserID,
		Quote:     *quote,
		UpdatedAt: record.UpdatedAt,
	}
}
