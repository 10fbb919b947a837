package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	producterrors "bazaar/contexts/catalog/product-service/domain/errors"
	producthttp "bazaar/contexts/catalog/product-service/transport/http"
	accessentities "bazaar/contexts/identity-access/access-control/domain/entities"
)

func writeProductError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, producthttp.ErrorResponse{Code: code, Message: message})
}

func writeProductDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, producterrors.ErrProductNotFound):
		writeProductError(w, http.StatusNotFound, "product_not_found", err.Error())
	case errors.Is(err, producterrors.ErrInvalidProductInput):
		writeProductError(w, http.StatusBadRequest, "invalid_product_input", err.Error())
	case errors.Is(err, producterrors.ErrSKUConflict):
		writeProductError(w, http.StatusConflict, "sku_conflict", err.Error())
	default:
		writeProductError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func parsePage(r *http.Request) (page int, perPage int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	perPage, _ = strconv.Atoi(r.URL.Query().Get("per_page"))
	return page, perPage
}

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	outcome, ok := s.guardModule(w, r, accessentities.ModuleProducts)
	if !ok {
		return
	}
	page, perPage := parsePage(r)
	resp, err := s.products.Handler.ListProductsHandler(r.Context(), producthttp.ListProductsRequest{
		Search:  r.URL.Query().Get("search"),
		Status:  r.URL.Query().Get("status"),
		Page:    page,
		PerPage: perPage,
	}, outcome.CanEdit)
	if err != nil {
		writeProductDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.guardModule(w, r, accessentities.ModuleProducts); !ok {
		return
	}
	resp, err := s.products.Handler.GetProductHandler(r.Context(), r.PathValue("product_id"))
	if err != nil {
		writeProductDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireModuleEdit(w, r, accessentities.ModuleProducts); !ok {
		return
	}
	var req producthttp.CreateProductRequest
	if !s.decodeJSON(w, r, &req, writeProductError) {
		return
	}
	resp, err := s.products.Handler.CreateProductHandler(r.Context(), req)
	if err != nil {
		writeProductDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateProduct(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireModuleEdit(w, r, accessentities.ModuleProducts); !ok {
		return
	}
	var req producthttp.UpdateProductRequest
	if !s.decodeJSON(w, r, &req, writeProductError) {
		return
	}
	resp, err := s.products.Handler.UpdateProductHandler(r.Context(), r.PathValue("product_id"), req)
	if err != nil {
		writeProductDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleArchiveProduct(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireModuleEdit(w, r, accessentities.ModuleProducts); !ok {
		return
	}
	if err := s.products.Handler.ArchiveProductHandler(r.Context(), r.PathValue("product_id")); err != nil {
		writeProductDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
