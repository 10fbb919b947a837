package httpserver

import (
	"errors"
	"net/http"

	ordererrors "bazaar/contexts/commerce/order-service/domain/errors"
	orderhttp "bazaar/contexts/commerce/order-service/transport/http"
	accessentities "bazaar/contexts/identity-access/access-control/domain/entities"
)

func writeOrderError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, orderhttp.ErrorResponse{Code: code, Message: message})
}

func writeOrderDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ordererrors.ErrOrderNotFound):
		writeOrderError(w, http.StatusNotFound, "order_not_found", err.Error())
	case errors.Is(err, ordererrors.ErrInvalidOrderInput):
		writeOrderError(w, http.StatusBadRequest, "invalid_order_input", err.Error())
	case errors.Is(err, ordererrors.ErrInvalidStatusTransition):
		writeOrderError(w, http.StatusConflict, "invalid_status_transition", err.Error())
	case errors.Is(err, ordererrors.ErrOrderNumberConflict):
		writeOrderError(w, http.StatusConflict, "order_number_conflict", err.Error())
	default:
		writeOrderError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	outcome, ok := s.guardModule(w, r, accessentities.ModuleOrders)
	if !ok {
		return
	}
	page, perPage := parsePage(r)
	resp, err := s.orders.Handler.ListOrdersHandler(r.Context(), orderhttp.ListOrdersRequest{
		Status:  r.URL.Query().Get("status"),
		Search:  r.URL.Query().Get("search"),
		Page:    page,
		PerPage: perPage,
	}, outcome.CanEdit)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.guardModule(w, r, accessentities.ModuleOrders); !ok {
		return
	}
	resp, err := s.orders.Handler.GetOrderHandler(r.Context(), r.PathValue("order_id"))
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireModuleEdit(w, r, accessentities.ModuleOrders); !ok {
		return
	}
	var req orderhttp.UpdateOrderStatusRequest
	if !s.decodeJSON(w, r, &req, writeOrderError) {
		return
	}
	resp, err := s.orders.Handler.UpdateOrderStatusHandler(r.Context(), r.PathValue("order_id"), req)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
