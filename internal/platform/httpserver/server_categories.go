package httpserver

import (
	"errors"
	"net/http"

	categoryerrors "bazaar/contexts/catalog/category-service/domain/errors"
	categoryhttp "bazaar/contexts/catalog/category-service/transport/http"
	accessentities "bazaar/contexts/identity-access/access-control/domain/entities"
)

func writeCategoryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, categoryhttp.ErrorResponse{Code: code, Message: message})
}

func writeCategoryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, categoryerrors.ErrCategoryNotFound):
		writeCategoryError(w, http.StatusNotFound, "category_not_found", err.Error())
	case errors.Is(err, categoryerrors.ErrParentNotFound):
		writeCategoryError(w, http.StatusBadRequest, "parent_not_found", err.Error())
	case errors.Is(err, categoryerrors.ErrInvalidCategoryInput):
		writeCategoryError(w, http.StatusBadRequest, "invalid_category_input", err.Error())
	case errors.Is(err, categoryerrors.ErrSlugConflict):
		writeCategoryError(w, http.StatusConflict, "slug_conflict", err.Error())
	case errors.Is(err, categoryerrors.ErrCategoryHasChildren):
		writeCategoryError(w, http.StatusConflict, "category_has_children", err.Error())
	default:
		writeCategoryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListCategories(w http.ResponseWriter, r *http.Request) {
	outcome, ok := s.guardModule(w, r, accessentities.ModuleCategories)
	if !ok {
		return
	}
	resp, err := s.categories.Handler.ListCategoriesHandler(r.Context(), outcome.CanEdit)
	if err != nil {
		writeCategoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetCategory(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.guardModule(w, r, accessentities.ModuleCategories); !ok {
		return
	}
	resp, err := s.categories.Handler.GetCategoryHandler(r.Context(), r.PathValue("category_id"))
	if err != nil {
		writeCategoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireModuleEdit(w, r, accessentities.ModuleCategories); !ok {
		return
	}
	var req categoryhttp.CategoryRequest
	if !s.decodeJSON(w, r, &req, writeCategoryError) {
		return
	}
	resp, err := s.categories.Handler.CreateCategoryHandler(r.Context(), req)
	if err != nil {
		writeCategoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireModuleEdit(w, r, accessentities.ModuleCategories); !ok {
		return
	}
	var req categoryhttp.CategoryRequest
	if !s.decodeJSON(w, r, &req, writeCategoryError) {
		return
	}
	resp, err := s.categories.Handler.UpdateCategoryHandler(r.Context(), r.PathValue("category_id"), req)
	if err != nil {
		writeCategoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireModuleEdit(w, r, accessentities.ModuleCategories); !ok {
		return
	}
	if err := s.categories.Handler.DeleteCategoryHandler(r.Context(), r.PathValue("category_id")); err != nil {
		writeCategoryDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
