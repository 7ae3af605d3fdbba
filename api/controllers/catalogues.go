package controllers

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/strideworks/stride-backend/api/responses"
	"github.com/strideworks/stride-backend/api/validators"
	cataloguesvc "github.com/strideworks/stride-backend/internal/catalogues"
	"github.com/strideworks/stride-backend/pkg/enums"
	pkgerrors "github.com/strideworks/stride-backend/pkg/errors"
	"github.com/strideworks/stride-backend/pkg/logger"
	"github.com/strideworks/stride-backend/pkg/pagination"
	"github.com/strideworks/stride-backend/pkg/types"
)

// variantRequest accepts prices leniently so a client sending "1200"
// as a string still lands as 1200, and garbage lands as zero.
type variantRequest struct {
	ItemName     string                  `json:"item_name" validate:"required"`
	SKU          *string                 `json:"sku"`
	CostPrice    validators.LenientFloat `json:"cost_price"`
	SellingPrice validators.LenientFloat `json:"selling_price"`
	MRP          validators.LenientFloat `json:"mrp"`
	Sizes        types.SizeQuantities    `json:"sizes"`
}

type createCatalogueRequest struct {
	ArticleName           string           `json:"article_name" validate:"required"`
	SoleColor             string           `json:"sole_color"`
	Gender                string           `json:"gender" validate:"required"`
	CategoryID            *uuid.UUID       `json:"category_id"`
	BrandID               *uuid.UUID       `json:"brand_id"`
	ManufacturerCompanyID *uuid.UUID       `json:"manufacturer_company_id"`
	UnitID                *uuid.UUID       `json:"unit_id"`
	Stage                 string           `json:"stage"`
	ExpectedAt            *time.Time       `json:"expected_at"`
	PrimaryImage          *types.ImageRef  `json:"primary_image" validate:"required"`
	SecondaryImages       []types.ImageRef `json:"secondary_images"`
	Variants              []variantRequest `json:"variants"`
}

type updateCatalogueRequest struct {
	ArticleName           *string           `json:"article_name"`
	SoleColor             *string           `json:"sole_color"`
	Gender                *string           `json:"gender"`
	CategoryID            *uuid.UUID        `json:"category_id"`
	BrandID               *uuid.UUID        `json:"brand_id"`
	ManufacturerCompanyID *uuid.UUID        `json:"manufacturer_company_id"`
	UnitID                *uuid.UUID        `json:"unit_id"`
	Stage                 *string           `json:"stage"`
	ExpectedAt            *time.Time        `json:"expected_at"`
	PrimaryImage          *types.ImageRef   `json:"primary_image"`
	SecondaryImages       *[]types.ImageRef `json:"secondary_images"`
	ReplaceSecondary      bool              `json:"replace_secondary"`
	Variants              *[]variantRequest `json:"variants"`
}

func CataloguesCreate(svc cataloguesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload createCatalogueRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		gender, err := enums.ParseGender(payload.Gender)
		if err != nil {
			responses.WriteError(r.Context(), logg, w,
				pkgerrors.New(pkgerrors.CodeValidation, "invalid gender"))
			return
		}

		input := cataloguesvc.CreateCatalogueInput{
			ArticleName:           payload.ArticleName,
			SoleColor:             payload.SoleColor,
			Gender:                gender,
			CategoryID:            payload.CategoryID,
			BrandID:               payload.BrandID,
			ManufacturerCompanyID: payload.ManufacturerCompanyID,
			UnitID:                payload.UnitID,
			ExpectedAt:            payload.ExpectedAt,
			PrimaryImage:          payload.PrimaryImage,
			SecondaryImages:       payload.SecondaryImages,
			Variants:              toVariantInputs(payload.Variants),
		}
		if payload.Stage != "" {
			stage, err := enums.ParseCatalogueStage(payload.Stage)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "invalid stage"))
				return
			}
			input.Stage = stage
		}

		catalogue, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, catalogue)
	}
}

func CataloguesGet(svc cataloguesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "catalogueId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		catalogue, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalogue)
	}
}

func CataloguesList(svc cataloguesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filter := cataloguesvc.ListFilter{Search: r.URL.Query().Get("q")}
		if raw := r.URL.Query().Get("stage"); raw != "" {
			stage, err := enums.ParseCatalogueStage(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "invalid stage filter"))
				return
			}
			filter.Stage = stage
		}
		if raw := r.URL.Query().Get("gender"); raw != "" {
			gender, err := enums.ParseGender(raw)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "invalid gender filter"))
				return
			}
			filter.Gender = gender
		}
		categoryID, err := queryUUID(r, "categoryId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		brandID, err := queryUUID(r, "brandId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		manufacturerID, err := queryUUID(r, "manufacturerCompanyId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		filter.CategoryID = categoryID
		filter.BrandID = brandID
		filter.ManufacturerCompanyID = manufacturerID

		result, err := svc.List(r.Context(), cataloguesvc.ListCataloguesInput{
			Filter: filter,
			Page: pagination.Params{
				Page:  validators.QueryIntOrZero(r, "page"),
				Limit: validators.QueryIntOrZero(r, "limit"),
			},
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteList(w, result.Catalogues, types.ListMeta{
			Total: result.Total,
			Page:  result.Page.Page,
			Limit: result.Page.Limit,
		})
	}
}

func CataloguesUpdate(svc cataloguesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "catalogueId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload updateCatalogueRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := cataloguesvc.UpdateCatalogueInput{
			ArticleName:           payload.ArticleName,
			SoleColor:             payload.SoleColor,
			CategoryID:            payload.CategoryID,
			BrandID:               payload.BrandID,
			ManufacturerCompanyID: payload.ManufacturerCompanyID,
			UnitID:                payload.UnitID,
			ExpectedAt:            payload.ExpectedAt,
			PrimaryImage:          payload.PrimaryImage,
			SecondaryImages:       payload.SecondaryImages,
			ReplaceSecondary:      payload.ReplaceSecondary,
		}
		if payload.Gender != nil {
			gender, err := enums.ParseGender(*payload.Gender)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "invalid gender"))
				return
			}
			input.Gender = &gender
		}
		if payload.Stage != nil {
			stage, err := enums.ParseCatalogueStage(*payload.Stage)
			if err != nil {
				responses.WriteError(r.Context(), logg, w,
					pkgerrors.New(pkgerrors.CodeValidation, "invalid stage"))
				return
			}
			input.Stage = &stage
		}
		if payload.Variants != nil {
			variants := toVariantInputs(*payload.Variants)
			input.Variants = &variants
		}

		catalogue, err := svc.Update(r.Context(), id, input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, catalogue)
	}
}

func CataloguesDelete(svc cataloguesvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := pathUUID(r, "catalogueId")
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

func toVariantInputs(requests []variantRequest) []cataloguesvc.VariantInput {
	out := make([]cataloguesvc.VariantInput, len(requests))
	for i, req := range requests {
		out[i] = cataloguesvc.VariantInput{
			ItemName:     req.ItemName,
			SKU:          req.SKU,
			CostPrice:    float64(req.CostPrice),
			SellingPrice: float64(req.SellingPrice),
			MRP:          float64(req.MRP),
			Sizes:        req.Sizes,
		}
	}
	return out
}
