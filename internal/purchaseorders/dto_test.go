package purchaseorders

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/strideworks/stride-backend/pkg/db/models"
	"github.com/strideworks/stride-backend/pkg/enums"
)

func TestNewPurchaseOrderDTO(t *testing.T) {
	orderID := uuid.New()
	vendorID := uuid.New()
	now := time.Now().UTC()

	dto := NewPurchaseOrderDTO(&models.PurchaseOrder{
		ID:              orderID,
		PONumber:        "PO-00042",
		VendorID:        vendorID,
		VendorName:      "Apex Footwear Mills",
		OrderDate:       now,
		DiscountPercent: 10,
		SubTotal:        5000,
		DiscountAmount:  500,
		TotalTax:        400,
		Total:           4900,
		Status:          enums.POStatusDraft,
		Items: []models.POLineItem{
			{Position: 0, ItemName: "Trail Runner", Quantity: 3, BasePrice: 1000, TaxRate: 18, TaxPerItem: 180, UnitTotal: 3540},
		},
	})

	require.Equal(t, "PO-00042", dto.PONumber)
	require.Equal(t, enums.POStatusDraft, dto.Status)
	require.Equal(t, 4900.0, dto.Total)
	require.Len(t, dto.Items, 1)
	require.Equal(t, 3540.0, dto.Items[0].UnitTotal)
}

func TestNewPurchaseOrderDTOEmptyItems(t *testing.T) {
	dto := NewPurchaseOrderDTO(&models.PurchaseOrder{PONumber: "PO-00001"})
	require.NotNil(t, dto.Items)
	require.Empty(t, dto.Items)
}
