package controllers

import (
	"net/http"

	"github.com/strideworks/stride-backend/api/responses"
	"github.com/strideworks/stride-backend/api/validators"
	vendorsvc "github.com/strideworks/stride-backend/internal/vendors"
	"github.com/strideworks/stride-backend/pkg/logger"
	"github.com/strideworks/stride-backend/pkg/pagination"
	"github.com/strideworks/stride-backend/pkg/types"
)

type createVendorRequest struct {
	DisplayName   string   `json:"display_name" validate:"required"`
	CompanyName   string   `json:"company_name"`
	ContactPerson string   `json:"contact_person"`
	Email         string   `json:"email"`
	Phone         string   `json:"phone"`
	GSTIN         *string  `json:"gstin"`
	AddressLine1  string   `json:"address_line1"`
	AddressLine2  *string  `json:"address_line2"`
	City          string   `json:"city"`
	State         string   `json:"state"`
	Pincode       string   `json:"pincode"`
	PaymentTerms  string   `json:"payment_terms"`
	Tags          []string `json:"tags"`
	Notes         *string  `json:"notes"`
}

type updateVendorRequest struct {
	DisplayName   *string   `json:"display_name"`
	CompanyName   *string   `json:"company_name"`
	ContactPerson *string   `json:"contact_person"`
	Email         *string   `json:"email"`
	Phone         *string   `json:"phone"`
	GSTIN         *string   `json:"gstin"`
	AddressLine1  *string   `json:"address_line1"`
	AddressLine2  *string   `json:"address_line2"`
	City          *string   `json:"city"`
	State         *string   `json:"state"`
	Pincode       *string   `json:"pincode"`
	PaymentTerms  *string   `json:"payment_terms"`
	Tags          *[]string `json:"tags"`
	Notes         *string   `json:"notes"`
}

func VendorsCreate(svc vendorsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createVendorRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		vendor, err := svc.Create(r.Context(), vendorsvc.CreateVendorInput{
			DisplayName:   payload.DisplayName,
			CompanyName:   payload.CompanyName,
			ContactPerson: payload.ContactPerson,
			Email:         payload.Email,
			Phone:         payload.Phone,
			GSTIN:         payload.GSTIN,
			AddressLine1:  payload.AddressLine1,
			AddressLine2:  payload.AddressLine2,
			City:          payload.City,
			State:         payload.State,
			Pincode:       payload.Pincode,
			PaymentTerms:  payload.PaymentTerms,
			Tags:          payload.Tags,
			Notes:         payload.Notes,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, vendor)
	}
}

func VendorsGet(svc vendorsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		vendor, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, vendor)
	}
}

func VendorsList(svc vendorsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		result, err := svc.List(r.Context(), vendorsvc.ListVendorsInput{
			Search: r.URL.Query().Get("q"),
			Page: pagination.Params{
				Page:  validators.QueryIntOrZero(r, "page"),
				Limit: validators.QueryIntOrZero(r, "limit"),
			},
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, result.Vendors, types.ListMeta{
			Total: result.Total,
			Page:  result.Page.Page,
			Limit: result.Page.Limit,
		})
	}
}

func VendorsUpdate(svc vendorsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateVendorRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		vendor, err := svc.Update(r.Context(), id, vendorsvc.UpdateVendorInput{
			DisplayName:   payload.DisplayName,
			CompanyName:   payload.CompanyName,
			ContactPerson: payload.ContactPerson,
			Email:         payload.Email,
			Phone:         payload.Phone,
			GSTIN:         payload.GSTIN,
			AddressLine1:  payload.AddressLine1,
			AddressLine2:  payload.AddressLine2,
			City:          payload.City,
			State:         payload.State,
			Pincode:       payload.Pincode,
			PaymentTerms:  payload.PaymentTerms,
			Tags:          payload.Tags,
			Notes:         payload.Notes,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, vendor)
	}
}

func VendorsDelete(svc vendorsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "vendorId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.SoftDelete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
