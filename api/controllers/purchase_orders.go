package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/strideworks/stride-backend/api/responses"
	"github.com/strideworks/stride-backend/api/validators"
	posvc "github.com/strideworks/stride-backend/internal/purchaseorders"
	"github.com/strideworks/stride-backend/pkg/enums"
	pkgerrors "github.com/strideworks/stride-backend/pkg/errors"
	"github.com/strideworks/stride-backend/pkg/logger"
	"github.com/strideworks/stride-backend/pkg/pagination"
	"github.com/strideworks/stride-backend/pkg/types"
)

type poLineRequest struct {
	CatalogueID *uuid.UUID              `json:"catalogue_id"`
	VariantID   *uuid.UUID              `json:"variant_id"`
	ItemName    string                  `json:"item_name" validate:"required"`
	ImageURL    string                  `json:"image_url"`
	SKU         string                  `json:"sku"`
	SKUCompany  string                  `json:"sku_company"`
	HSNCode     string                  `json:"hsn_code"`
	Quantity    validators.LenientInt   `json:"quantity"`
	TaxRate     validators.LenientFloat `json:"tax_rate"`
	TaxType     string                  `json:"tax_type"`
	BasePrice   validators.LenientFloat `json:"base_price"`
}

type createPORequest struct {
	VendorID           uuid.UUID               `json:"vendor_id" validate:"required"`
	ReferenceNumber    string                  `json:"reference_number"`
	OrderDate          *time.Time              `json:"order_date"`
	DeliveryDate       *time.Time              `json:"delivery_date"`
	PaymentTerms       string                  `json:"payment_terms"`
	ShipmentPreference string                  `json:"shipment_preference"`
	Notes              string                  `json:"notes"`
	Terms              string                  `json:"terms"`
	DiscountPercent    validators.LenientFloat `json:"discount_percent"`
	Lines              []poLineRequest         `json:"lines" validate:"required,min=1"`
}

type updatePORequest struct {
	VendorID           *uuid.UUID               `json:"vendor_id"`
	ReferenceNumber    *string                  `json:"reference_number"`
	OrderDate          *time.Time               `json:"order_date"`
	DeliveryDate       *time.Time               `json:"delivery_date"`
	PaymentTerms       *string                  `json:"payment_terms"`
	ShipmentPreference *string                  `json:"shipment_preference"`
	Notes              *string                  `json:"notes"`
	Terms              *string                  `json:"terms"`
	DiscountPercent    *validators.LenientFloat `json:"discount_percent"`
	Lines              *[]poLineRequest         `json:"lines"`
}

func PurchaseOrdersCreate(svc posvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createPORequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := posvc.CreateOrderInput{
			VendorID:           payload.VendorID,
			ReferenceNumber:    payload.ReferenceNumber,
			DeliveryDate:       payload.DeliveryDate,
			PaymentTerms:       payload.PaymentTerms,
			ShipmentPreference: payload.ShipmentPreference,
			Notes:              payload.Notes,
			Terms:              payload.Terms,
			DiscountPercent:    float64(payload.DiscountPercent),
			Lines:              toLineInputs(payload.Lines),
		}
		if payload.OrderDate != nil {
			input.OrderDate = *payload.OrderDate
		}

		order, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

func PurchaseOrdersGet(svc posvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "purchaseOrderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func PurchaseOrdersList(svc posvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		input := posvc.ListOrdersInput{
			Status: r.URL.Query().Get("status"),
			Page: pagination.Params{
				Page:  validators.QueryIntOrZero(r, "page"),
				Limit: validators.QueryIntOrZero(r, "limit"),
			},
		}
		if raw := r.URL.Query().Get("vendor_id"); raw != "" {
			vendorID, err := uuid.Parse(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "invalid vendor_id filter"))
				return
			}
			input.VendorID = &vendorID
		}

		result, err := svc.List(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, result.Orders, types.ListMeta{
			Total: result.Total,
			Page:  result.Page.Page,
			Limit: result.Page.Limit,
		})
	}
}

func PurchaseOrdersUpdate(svc posvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "purchaseOrderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updatePORequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := posvc.UpdateOrderInput{
			VendorID:           payload.VendorID,
			ReferenceNumber:    payload.ReferenceNumber,
			OrderDate:          payload.OrderDate,
			DeliveryDate:       payload.DeliveryDate,
			PaymentTerms:       payload.PaymentTerms,
			ShipmentPreference: payload.ShipmentPreference,
			Notes:              payload.Notes,
			Terms:              payload.Terms,
		}
		if payload.DiscountPercent != nil {
			discount := float64(*payload.DiscountPercent)
			input.DiscountPercent = &discount
		}
		if payload.Lines != nil {
			lines := toLineInputs(*payload.Lines)
			input.Lines = &lines
		}

		order, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func PurchaseOrdersSend(svc posvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "purchaseOrderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.MarkSent(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func PurchaseOrdersDelete(svc posvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "purchaseOrderId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}

// PurchaseOrdersNextNumber previews the number the next order would get.
func PurchaseOrdersNextNumber(svc posvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		number, err := svc.NextNumber(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"po_number": number})
	}
}

func toLineInputs(requests []poLineRequest) []posvc.LineInput {
	out := make([]posvc.LineInput, len(requests))
	for i, req := range requests {
		out[i] = posvc.LineInput{
			CatalogueID: req.CatalogueID,
			VariantID:   req.VariantID,
			ItemName:    req.ItemName,
			ImageURL:    req.ImageURL,
			SKU:         req.SKU,
			SKUCompany:  req.SKUCompany,
			HSNCode:     req.HSNCode,
			Quantity:    int(req.Quantity),
			TaxRate:     float64(req.TaxRate),
			TaxType:     enums.TaxType(req.TaxType),
			BasePrice:   float64(req.BasePrice),
		}
	}
	return out
}
