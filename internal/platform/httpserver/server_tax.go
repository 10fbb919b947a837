package httpserver

import (
	"errors"
	"net/http"

	taxerrors "bazaar/contexts/commerce/tax-service/domain/errors"
	taxhttp "bazaar/contexts/commerce/tax-service/transport/http"
	accessentities "bazaar/contexts/identity-access/access-control/domain/entities"
)

func writeTaxError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, taxhttp.ErrorResponse{Code: code, Message: message})
}

func writeTaxDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, taxerrors.ErrTaxRuleNotFound):
		writeTaxError(w, http.StatusNotFound, "tax_rule_not_found", err.Error())
	case errors.Is(err, taxerrors.ErrInvalidTaxRuleInput):
		writeTaxError(w, http.StatusBadRequest, "invalid_tax_rule_input", err.Error())
	default:
		writeTaxError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListTaxRules(w http.ResponseWriter, r *http.Request) {
	outcome, ok := s.guardModule(w, r, accessentities.ModuleTax)
	if !ok {
		return
	}
	page, perPage := parsePage(r)
	req := taxhttp.ListTaxRulesRequest{
		Search:  r.URL.Query().Get("search"),
		Page:    page,
		PerPage: perPage,
	}
	switch r.URL.Query().Get("is_active") {
	case "true":
		active := true
		req.IsActive = &active
	case "false":
		active := false
		req.IsActive = &active
	}
	resp, err := s.tax.Handler.ListTaxRulesHandler(r.Context(), req, outcome.CanEdit)
	if err != nil {
		writeTaxDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetTaxRule(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.guardModule(w, r, accessentities.ModuleTax); !ok {
		return
	}
	resp, err := s.tax.Handler.GetTaxRuleHandler(r.Context(), r.PathValue("rule_id"))
	if err != nil {
		writeTaxDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateTaxRule(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireModuleEdit(w, r, accessentities.ModuleTax); !ok {
		return
	}
	var req taxhttp.TaxRuleRequest
	if !s.decodeJSON(w, r, &req, writeTaxError) {
		return
	}
	resp, err := s.tax.Handler.CreateTaxRuleHandler(r.Context(), req)
	if err != nil {
		writeTaxDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateTaxRule(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireModuleEdit(w, r, accessentities.ModuleTax); !ok {
		return
	}
	var req taxhttp.TaxRuleRequest
	if !s.decodeJSON(w, r, &req, writeTaxError) {
		return
	}
	resp, err := s.tax.Handler.UpdateTaxRuleHandler(r.Context(), r.PathValue("rule_id"), req)
	if err != nil {
		writeTaxDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleToggleTaxRule(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireModuleEdit(w, r, accessentities.ModuleTax); !ok {
		return
	}
	resp, err := s.tax.Handler.ToggleTaxRuleHandler(r.Context(), r.PathValue("rule_id"))
	if err != nil {
		writeTaxDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteTaxRule(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireModuleEdit(w, r, accessentities.ModuleTax); !ok {
		return
	}
	if err := s.tax.Handler.DeleteTaxRuleHandler(r.Context(), r.PathValue("rule_id")); err != nil {
		writeTaxDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCalculateTax(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.guardModule(w, r, accessentities.ModuleTax); !ok {
		return
	}
	var req taxhttp.CalculateTaxRequest
	if !s.decodeJSON(w, r, &req, writeTaxError) {
		return
	}
	resp, err := s.tax.Handler.CalculateTaxHandler(r.Context(), req)
	if err != nil {
		writeTaxDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
