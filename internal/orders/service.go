package orders

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/strideworks/stride-backend/internal/cart"
	"github.com/strideworks/stride-backend/pkg/db"
	"github.com/strideworks/stride-backend/pkg/db/models"
	"github.com/strideworks/stride-backend/pkg/enums"
	pkgerrors "github.com/strideworks/stride-backend/pkg/errors"
	"github.com/strideworks/stride-backend/pkg/logger"
	"github.com/strideworks/stride-backend/pkg/pagination"
)

const numberAllocationAttempts = 3

// cartQuoter is the cart surface checkout consumes.
type cartQuoter interface {
	QuoteFor(ctx context.Context, userID uuid.UUID) (*models.CartRecord, *cart.Quote, error)
	Clear(ctx context.Context, userID uuid.UUID) error
}

// ListSalesOrdersInput carries filters for the order listing. Scope is
// decided by the caller: distributors pass their own ID, admins may pass nil.
type ListSalesOrdersInput struct {
	UserID *uuid.UUID
	Status string
	Page   pagination.Params
}

// ListResult pairs an order page with the unpaged total.
type ListResult struct {
	Orders []SalesOrderDTO
	Total  int64
	Page   pagination.Params
}

// Service exposes distributor sales order operations.
type Service interface {
	Checkout(ctx context.Context, userID uuid.UUID) (*SalesOrderDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*SalesOrderDTO, error)
	List(ctx context.Context, input ListSalesOrdersInput) (*ListResult, error)
	Cancel(ctx context.Context, id uuid.UUID) (*SalesOrderDTO, error)
}

type service struct {
	repo  *Repository
	carts cartQuoter
	logg  *logger.Logger
}

// NewService constructs a sales order service instance.
func NewService(repo *Repository, carts cartQuoter, logg *logger.Logger) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("sales order repository required")
	}
	if carts == nil {
		return nil, fmt.Errorf("cart service required")
	}
	if logg == nil {
		return nil, fmt.Errorf("logger required")
	}
	return &service{repo: repo, carts: carts, logg: logg}, nil
}

// Checkout freezes the user's cart into a placed order. The quote is taken
// once; later catalogue price changes never touch a placed order.
func (s *service) Checkout(ctx context.Context, userID uuid.UUID) (*SalesOrderDTO, error) {
	_, quote, err := s.carts.QuoteFor(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i, line := range quote.Lines {
		if line.ItemName == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "cart references an unavailable variant").
				WithDetails(map[string]any{"position": i})
		}
	}

	order := &models.SalesOrder{
		UserID: userID,
		Status: enums.SalesOrderPlaced,
		Total:  quote.Total,
		Items:  buildItemRows(quote.Lines),
	}

	var lastErr error
	for attempt := 0; attempt < numberAllocationAttempts; attempt++ {
		numbers, err := s.repo.ListNumbers(ctx)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list order numbers")
		}
		order.SONumber = NextNumber(numbers)

		if err := s.repo.Create(ctx, order); err != nil {
			if db.IsUniqueViolation(err, "uq_sales_orders_so_number") {
				lastErr = err
				continue
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert sales order")
		}
		lastErr = nil
		break
	}
	if lastErr != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, lastErr, "sales order number allocation contention")
	}

	if err := s.carts.Clear(ctx, userID); err != nil {
		// The order is placed; a stale cart is recoverable while a lost
		// order is not.
		s.logg.Error(ctx, "clear cart after checkout", err)
	}
	return s.Get(ctx, order.ID)
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*SalesOrderDTO, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "sales order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load sales order")
	}
	return NewSalesOrderDTO(order), nil
}

func (s *service) List(ctx context.Context, input ListSalesOrdersInput) (*ListResult, error) {
	filter := ListFilter{UserID: input.UserID}
	if raw := strings.TrimSpace(input.Status); raw != "" {
		status, err := enums.ParseSalesOrderStatus(raw)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status filter")
		}
		filter.Status = status
	}

	page := pagination.Normalize(input.Page)
	rows, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list sales orders")
	}

	out := make([]SalesOrderDTO, len(rows))
	for i := range rows {
		out[i] = *NewSalesOrderDTO(&rows[i])
	}
	return &ListResult{Orders: out, Total: total, Page: page}, nil
}

// Cancel moves a placed order to cancelled. Confirmed orders stay put.
func (s *service) Cancel(ctx context.Context, id uuid.UUID) (*SalesOrderDTO, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "sales order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load sales order")
	}
	if order.Status != enums.SalesOrderPlaced {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "only placed orders can be cancelled")
	}

	order.Status = enums.SalesOrderCancelled
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: cancel sales order")
	}
	return NewSalesOrderDTO(order), nil
}

// buildItemRows freezes quoted lines as order rows in quote order.
func buildItemRows(lines []cart.QuotedLine) []models.SalesOrderItem {
	rows := make([]models.SalesOrderItem, len(lines))
	for i, line := range lines {
		catalogueID := line.CatalogueID
		variantID := line.VariantID
		rows[i] = models.SalesOrderItem{
			Position:    i,
			CatalogueID: &catalogueID,
			VariantID:   &variantID,
			ItemName:    line.ItemName,
			SizeLabel:   line.SizeLabel,
			UnitPrice:   line.UnitPrice,
			Quantity:    line.Quantity,
			LineTotal:   line.LineTotal,
		}
	}
	return rows
}
