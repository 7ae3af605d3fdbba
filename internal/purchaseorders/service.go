package purchaseorders

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
	"github.com/strideworks/stride-backend/pkg/enums"
	pkgerrors "github.com/strideworks/stride-backend/pkg/errors"
	"github.com/strideworks/stride-backend/pkg/pagination"
)

// numberAllocationAttempts bounds the retry loop when two writers race for
// the same order number.
const numberAllocationAttempts = 3

// vendorFinder resolves the vendor snapshot written onto the order head.
type vendorFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*models.Vendor, error)
}

// LineInput is one requested order line. Derived amounts are never accepted
// from the caller; they are recomputed on every write.
type LineInput struct {
	CatalogueID *uuid.UUID
	VariantID   *uuid.UUID
	ItemName    string
	ImageURL    string
	SKU         string
	SKUCompany  string
	HSNCode     string
	Quantity    int
	TaxRate     float64
	TaxType     enums.TaxType
	BasePrice   float64
}

// CreateOrderInput holds the validated payload to create a purchase order.
type CreateOrderInput struct {
	VendorID           uuid.UUID
	ReferenceNumber    string
	OrderDate          time.Time
	DeliveryDate       *time.Time
	PaymentTerms       string
	ShipmentPreference string
	Notes              string
	Terms              string
	DiscountPercent    float64
	Lines              []LineInput
}

// UpdateOrderInput holds optional head mutations plus an optional wholesale
// line replacement. Nil fields are untouched.
type UpdateOrderInput struct {
	VendorID           *uuid.UUID
	ReferenceNumber    *string
	OrderDate          *time.Time
	DeliveryDate       *time.Time
	PaymentTerms       *string
	ShipmentPreference *string
	Notes              *string
	Terms              *string
	DiscountPercent    *float64
	Lines              *[]LineInput
}

// ListOrdersInput carries filters for the order listing.
type ListOrdersInput struct {
	VendorID *uuid.UUID
	Status   string
	Page     pagination.Params
}

// ListResult pairs an order page with the unpaged total.
type ListResult struct {
	Orders []PurchaseOrderDTO
	Total  int64
	Page   pagination.Params
}

// Service exposes purchase order operations.
type Service interface {
	Create(ctx context.Context, input CreateOrderInput) (*PurchaseOrderDTO, error)
	Get(ctx context.Context, id uuid.UUID) (*PurchaseOrderDTO, error)
	List(ctx context.Context, input ListOrdersInput) (*ListResult, error)
	Update(ctx context.Context, id uuid.UUID, input UpdateOrderInput) (*PurchaseOrderDTO, error)
	MarkSent(ctx context.Context, id uuid.UUID) (*PurchaseOrderDTO, error)
	Delete(ctx context.Context, id uuid.UUID) error
	NextNumber(ctx context.Context) (string, error)
}

type service struct {
	repo     *Repository
	vendors  vendorFinder
	dbClient *db.Client
}

// NewService constructs a purchase order service instance.
func NewService(repo *Repository, vendors vendorFinder, dbClient *db.Client) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("purchase order repository required")
	}
	if vendors == nil {
		return nil, fmt.Errorf("vendor finder required")
	}
	if dbClient == nil {
		return nil, fmt.Errorf("db client required")
	}
	return &service{repo: repo, vendors: vendors, dbClient: dbClient}, nil
}

func (s *service) Create(ctx context.Context, input CreateOrderInput) (*PurchaseOrderDTO, error) {
	lines, err := normalizeLines(input.Lines)
	if err != nil {
		return nil, err
	}
	if err := validateDiscount(input.DiscountPercent); err != nil {
		return nil, err
	}

	vendor, err := s.vendors.FindByID(ctx, input.VendorID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load vendor")
	}

	orderDate := input.OrderDate
	if orderDate.IsZero() {
		orderDate = time.Now().UTC()
	}

	order := &models.PurchaseOrder{
		VendorID:           vendor.ID,
		VendorName:         vendor.DisplayName,
		ReferenceNumber:    strings.TrimSpace(input.ReferenceNumber),
		OrderDate:          orderDate,
		DeliveryDate:       input.DeliveryDate,
		PaymentTerms:       strings.TrimSpace(input.PaymentTerms),
		ShipmentPreference: strings.TrimSpace(input.ShipmentPreference),
		Notes:              strings.TrimSpace(input.Notes),
		Terms:              strings.TrimSpace(input.Terms),
		DiscountPercent:    input.DiscountPercent,
		Status:             enums.POStatusDraft,
		Items:              buildLineRows(lines),
	}
	applyTotals(order, lines)

	// The number column is unique, so a concurrent create can collide. Each
	// attempt re-reads the issued numbers and re-derives the successor.
	var lastErr error
	for attempt := 0; attempt < numberAllocationAttempts; attempt++ {
		numbers, err := s.repo.ListNumbers(ctx)
		if err != nil {
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list order numbers")
		}
		order.PONumber = NextNumber(numbers)

		if err := s.repo.Create(ctx, order); err != nil {
			if db.IsUniqueViolation(err, "uq_purchase_orders_po_number") {
				lastErr = err
				continue
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: insert purchase order")
		}
		return s.Get(ctx, order.ID)
	}
	return nil, pkgerrors.Wrap(pkgerrors.CodeConflict, lastErr, "purchase order number allocation contention")
}

func (s *service) Get(ctx context.Context, id uuid.UUID) (*PurchaseOrderDTO, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "purchase order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load purchase order")
	}
	return NewPurchaseOrderDTO(order), nil
}

func (s *service) List(ctx context.Context, input ListOrdersInput) (*ListResult, error) {
	filter := ListFilter{VendorID: input.VendorID}
	if raw := strings.TrimSpace(input.Status); raw != "" {
		status, err := enums.ParsePOStatus(raw)
		if err != nil {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid status filter")
		}
		filter.Status = status
	}

	page := pagination.Normalize(input.Page)
	rows, total, err := s.repo.List(ctx, filter, page)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list purchase orders")
	}

	out := make([]PurchaseOrderDTO, len(rows))
	for i := range rows {
		out[i] = *NewPurchaseOrderDTO(&rows[i])
	}
	return &ListResult{Orders: out, Total: total, Page: page}, nil
}

func (s *service) Update(ctx context.Context, id uuid.UUID, input UpdateOrderInput) (*PurchaseOrderDTO, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "purchase order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load purchase order")
	}
	if order.Status != enums.POStatusDraft {
		return nil, pkgerrors.New(pkgerrors.CodeStateConflict, "only draft purchase orders can be edited")
	}

	if input.VendorID != nil && *input.VendorID != order.VendorID {
		vendor, err := s.vendors.FindByID(ctx, *input.VendorID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeValidation, "vendor not found")
			}
			return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load vendor")
		}
		order.VendorID = vendor.ID
		order.VendorName = vendor.DisplayName
	}
	applyHeadUpdate(order, input)
	if err := validateDiscount(order.DiscountPercent); err != nil {
		return nil, err
	}

	// Lines replace wholesale when provided. Either way the head totals are
	// refolded from whichever line set ends up stored.
	lines := linesFromRows(order.Items)
	if input.Lines != nil {
		normalized, err := normalizeLines(*input.Lines)
		if err != nil {
			return nil, err
		}
		lines = normalized
	}
	applyTotals(order, lines)

	if err := s.dbClient.WithTx(ctx, func(tx *gorm.DB) error {
		txRepo := s.repo.WithTx(tx)
		if err := txRepo.Update(ctx, order); err != nil {
			return err
		}
		if input.Lines != nil {
			rows := buildLineRows(lines)
			for i := range rows {
				rows[i].PurchaseOrderID = order.ID
			}
			return txRepo.ReplaceItems(ctx, order.ID, rows)
		}
		// Derived line amounts are stale if only head fields moved the
		// discount; per-line amounts do not depend on the discount, so the
		// existing rows stay as written.
		return nil
	}); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: update purchase order")
	}
	return s.Get(ctx, order.ID)
}

func (s *service) MarkSent(ctx context.Context, id uuid.UUID) (*PurchaseOrderDTO, error) {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "purchase order not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load purchase order")
	}
	if order.Status == enums.POStatusSent {
		return NewPurchaseOrderDTO(order), nil
	}

	order.Status = enums.POStatusSent
	if err := s.repo.Update(ctx, order); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: mark purchase order sent")
	}
	return NewPurchaseOrderDTO(order), nil
}

func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	order, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "purchase order not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: load purchase order")
	}
	if order.Status != enums.POStatusDraft {
		return pkgerrors.New(pkgerrors.CodeStateConflict, "only draft purchase orders can be deleted")
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkgerrors.New(pkgerrors.CodeNotFound, "purchase order not found")
		}
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: delete purchase order")
	}
	return nil
}

func (s *service) NextNumber(ctx context.Context) (string, error) {
	numbers, err := s.repo.ListNumbers(ctx)
	if err != nil {
		return "", pkgerrors.Wrap(pkgerrors.CodeDependency, err, "db: list order numbers")
	}
	return NextNumber(numbers), nil
}

func validateDiscount(percent float64) error {
	if percent < 0 || percent > 100 {
		return pkgerrors.New(pkgerrors.CodeValidation, "discount_percent must be between 0 and 100")
	}
	return nil
}

// normalizeLines validates and cleans the requested lines. Quantity defaults
// to 1 and tax type to CGST_SGST when unset.
func normalizeLines(inputs []LineInput) ([]LineInput, error) {
	if len(inputs) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "at least one line item is required")
	}

	out := make([]LineInput, len(inputs))
	for i, line := range inputs {
		line.ItemName = strings.TrimSpace(line.ItemName)
		if line.ItemName == "" {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "item_name is required").
				WithDetails(map[string]any{"position": i})
		}
		if line.BasePrice < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "base_price cannot be negative").
				WithDetails(map[string]any{"position": i})
		}
		if line.TaxRate < 0 || line.TaxRate > 100 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "tax_rate must be between 0 and 100").
				WithDetails(map[string]any{"position": i})
		}
		if line.Quantity < 0 {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "quantity cannot be negative").
				WithDetails(map[string]any{"position": i})
		}
		if line.Quantity == 0 {
			line.Quantity = 1
		}
		if line.TaxType == "" {
			line.TaxType = enums.TaxTypeCGSTSGST
		}
		if !line.TaxType.IsValid() {
			return nil, pkgerrors.New(pkgerrors.CodeValidation, "invalid tax_type").
				WithDetails(map[string]any{"position": i})
		}
		line.ImageURL = strings.TrimSpace(line.ImageURL)
		line.SKU = strings.TrimSpace(line.SKU)
		line.SKUCompany = strings.TrimSpace(line.SKUCompany)
		line.HSNCode = strings.TrimSpace(line.HSNCode)
		out[i] = line
	}
	return out, nil
}

// buildLineRows turns cleaned lines into storage rows with derived amounts.
// Position follows input order.
func buildLineRows(lines []LineInput) []models.POLineItem {
	rows := make([]models.POLineItem, len(lines))
	for i, line := range lines {
		amounts := ComputeLine(line.BasePrice, line.TaxRate, line.Quantity)
		rows[i] = models.POLineItem{
			Position:    i,
			CatalogueID: line.CatalogueID,
			VariantID:   line.VariantID,
			ItemName:    line.ItemName,
			ImageURL:    line.ImageURL,
			SKU:         line.SKU,
			SKUCompany:  line.SKUCompany,
			HSNCode:     line.HSNCode,
			Quantity:    line.Quantity,
			TaxRate:     line.TaxRate,
			TaxType:     line.TaxType,
			BasePrice:   line.BasePrice,
			TaxPerItem:  amounts.TaxPerItem,
			UnitTotal:   amounts.UnitTotal,
		}
	}
	return rows
}

func linesFromRows(rows []models.POLineItem) []LineInput {
	lines := make([]LineInput, len(rows))
	for i, row := range rows {
		lines[i] = LineInput{
			CatalogueID: row.CatalogueID,
			VariantID:   row.VariantID,
			ItemName:    row.ItemName,
			ImageURL:    row.ImageURL,
			SKU:         row.SKU,
			SKUCompany:  row.SKUCompany,
			HSNCode:     row.HSNCode,
			Quantity:    row.Quantity,
			TaxRate:     row.TaxRate,
			TaxType:     row.TaxType,
			BasePrice:   row.BasePrice,
		}
	}
	return lines
}

func applyTotals(order *models.PurchaseOrder, lines []LineInput) {
	amounts := ComputeOrder(lines, order.DiscountPercent)
	order.SubTotal = amounts.SubTotal
	order.DiscountAmount = amounts.DiscountAmount
	order.TotalTax = amounts.TotalTax
	order.Total = amounts.Total
}

func applyHeadUpdate(order *models.PurchaseOrder, input UpdateOrderInput) {
	if input.ReferenceNumber != nil {
		order.ReferenceNumber = strings.TrimSpace(*input.ReferenceNumber)
	}
	if input.OrderDate != nil {
		order.OrderDate = *input.OrderDate
	}
	if input.DeliveryDate != nil {
		order.DeliveryDate = input.DeliveryDate
	}
	if input.PaymentTerms != nil {
		order.PaymentTerms = strings.TrimSpace(*input.PaymentTerms)
	}
	if input.ShipmentPreference != nil {
		order.ShipmentPreference = strings.TrimSpace(*input.ShipmentPreference)
	}
	if input.Notes != nil {
		order.Notes = strings.TrimSpace(*input.Notes)
	}
	if input.Terms != nil {
		order.Terms = strings.TrimSpace(*input.Terms)
	}
	if input.DiscountPercent != nil {
		order.DiscountPercent = *input.DiscountPercent
	}
}
