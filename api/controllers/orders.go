package controllers

import (
	"net/http"

	"github.com/strideworks/stride-backend/api/middleware"
	"github.com/strideworks/stride-backend/api/responses"
	"github.com/strideworks/stride-backend/api/validators"
	orderssvc "github.com/strideworks/stride-backend/internal/orders"
	"github.com/strideworks/stride-backend/pkg/enums"
	pkgerrors "github.com/strideworks/stride-backend/pkg/errors"
	"github.com/strideworks/stride-backend/pkg/logger"
	"github.com/strideworks/stride-backend/pkg/pagination"
	"github.com/strideworks/stride-backend/pkg/types"
)

// Checkout freezes the caller's cart into a placed sales order.
func Checkout(svc orderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		order, err := svc.Checkout(r.Context(), userID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccessStatus(w, http.StatusCreated, order)
	}
}

// SalesOrdersList scopes distributors to their own orders; admin roles see
// everything.
func SalesOrdersList(svc orderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, err := userIDFromContext(r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input := orderssvc.ListSalesOrdersInput{
			Status: r.URL.Query().Get("status"),
			Page: pagination.Params{
				Page:  validators.QueryIntOrZero(r, "page"),
				Limit: validators.QueryIntOrZero(r, "limit"),
			},
		}
		role := enums.MemberRole(middleware.RoleFromContext(r.Context()))
		if role == enums.RoleDistributor {
			input.UserID = &userID
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

func SalesOrdersGet(svc orderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := loadScopedOrder(svc, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, order)
	}
}

func SalesOrdersCancel(svc orderssvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		order, err := loadScopedOrder(svc, r)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		cancelled, err := svc.Cancel(r.Context(), order.ID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteSuccess(w, cancelled)
	}
}

// loadScopedOrder fetches an order and enforces that distributors only see
// their own.
func loadScopedOrder(svc orderssvc.Service, r *http.Request) (*orderssvc.SalesOrderDTO, error) {
	userID, err := userIDFromContext(r)
	if err != nil {
		return nil, err
	}
	id, err := pathUUID(r, "orderId")
	if err != nil {
		return nil, err
	}

	order, err := svc.Get(r.Context(), id)
	if err != nil {
		return nil, err
	}

	role := enums.MemberRole(middleware.RoleFromContext(r.Context()))
	if role == enums.RoleDistributor && order.UserID != userID {
		// A foreign order is indistinguishable from a missing one.
		return nil, pkgerrors.New(pkgerrors.CodeNotFound, "sales order not found")
	}
	return order, nil
}
