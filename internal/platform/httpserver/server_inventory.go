package httpserver

import (
	"errors"
	"net/http"

	inventoryerrors "bazaar/contexts/commerce/inventory-service/domain/errors"
	inventoryhttp "bazaar/contexts/commerce/inventory-service/transport/http"
	accessentities "bazaar/contexts/identity-access/access-control/domain/entities"
)

func writeInventoryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, inventoryhttp.ErrorResponse{Code: code, Message: message})
}

func writeInventoryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, inventoryerrors.ErrStockRecordNotFound):
		writeInventoryError(w, http.StatusNotFound, "stock_record_not_found", err.Error())
	case errors.Is(err, inventoryerrors.ErrInvalidStockInput):
		writeInventoryError(w, http.StatusBadRequest, "invalid_stock_input", err.Error())
	case errors.Is(err, inventoryerrors.ErrInsufficientStock):
		writeInventoryError(w, http.StatusConflict, "insufficient_stock", err.Error())
	default:
		writeInventoryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListStock(w http.ResponseWriter, r *http.Request) {
	outcome, ok := s.guardModule(w, r, accessentities.ModuleInventory)
	if !ok {
		return
	}
	lowOnly := r.URL.Query().Get("low_stock") == "true"
	resp, err := s.inventory.Handler.ListStockHandler(r.Context(), lowOnly, outcome.CanEdit)
	if err != nil {
		writeInventoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetStock(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.guardModule(w, r, accessentities.ModuleInventory); !ok {
		return
	}
	resp, err := s.inventory.Handler.GetStockHandler(r.Context(), r.PathValue("product_id"))
	if err != nil {
		writeInventoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleAdjustStock(w http.ResponseWriter, r *http.Request) {
	outcome, ok := s.requireModuleEdit(w, r, accessentities.ModuleInventory)
	if !ok {
		return
	}
	var req inventoryhttp.AdjustStockRequest
	if !s.decodeJSON(w, r, &req, writeInventoryError) {
		return
	}
	resp, err := s.inventory.Handler.AdjustStockHandler(r.Context(), r.PathValue("product_id"), outcome.User.ID, req)
	if err != nil {
		writeInventoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListAdjustments(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.guardModule(w, r, accessentities.ModuleInventory); !ok {
		return
	}
	resp, err := s.inventory.Handler.ListAdjustmentsHandler(r.Context(), r.PathValue("product_id"))
	if err != nil {
		writeInventoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
