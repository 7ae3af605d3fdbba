package controllers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/strideworks/stride-backend/api/responses"
	"github.com/strideworks/stride-backend/api/validators"
	mdsvc "github.com/strideworks/stride-backend/internal/masterdata"
	"github.com/strideworks/stride-backend/pkg/logger"
)

type createMasterdataRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

type renameMasterdataRequest struct {
	Name string `json:"name" validate:"required"`
}

// MasterdataCreate serves all four lookup collections through the
// {collection} path segment.
func MasterdataCreate(svc mdsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collection, err := mdsvc.ParseCollection(chi.URLParam(r, "collection"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload createMasterdataRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Create(r.Context(), collection, mdsvc.CreateItemInput{
			Name:        payload.Name,
			Description: payload.Description,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, item)
	}
}

func MasterdataList(svc mdsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collection, err := mdsvc.ParseCollection(chi.URLParam(r, "collection"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.List(r.Context(), collection)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, items)
	}
}

func MasterdataRename(svc mdsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collection, err := mdsvc.ParseCollection(chi.URLParam(r, "collection"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := pathUUID(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload renameMasterdataRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Rename(r.Context(), collection, id, payload.Name)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, item)
	}
}

func MasterdataDelete(svc mdsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collection, err := mdsvc.ParseCollection(chi.URLParam(r, "collection"))
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		id, err := pathUUID(r, "itemId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), collection, id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, map[string]string{"status": "deleted"})
	}
}
