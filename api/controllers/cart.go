package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/strideworks/stride-backend/api/responses"
	"github.com/strideworks/stride-backend/api/validators"
	cartsvc "github.com/strideworks/stride-backend/internal/cart"
	"github.com/strideworks/stride-backend/pkg/logger"
)

type cartItemRequest struct {
	CatalogueID uuid.UUID             `json:"catalogue_id" validate:"required"`
	VariantID   uuid.UUID             `json:"variant_id" validate:"required"`
	SizeLabel   string                `json:"size_label" validate:"required"`
	Quantity    validators.LenientInt `json:"quantity"`
}

type replaceCartRequest struct {
	Items []cartItemRequest `json:"items"`
}

func CartGet(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		record, err := svc.Get(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, record)
	}
}

// CartReplace swaps the caller's cart wholesale with the provided items.
func CartReplace(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload replaceCartRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items := make([]cartsvc.ItemInput, len(payload.Items))
		for i, item := range payload.Items {
			items[i] = cartsvc.ItemInput{
				CatalogueID: item.CatalogueID,
				VariantID:   item.VariantID,
				SizeLabel:   item.SizeLabel,
				Quantity:    int(item.Quantity),
			}
		}

		record, err := svc.Replace(r.Context(), userID, items)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, record)
	}
}

func CartClear(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Clear(r.Context(), userID); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "cleared"})
	}
}
