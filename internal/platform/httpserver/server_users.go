package httpserver

import (
	"errors"
	"net/http"

	accessentities "bazaar/contexts/identity-access/access-control/domain/entities"
	directoryerrors "bazaar/contexts/identity-access/user-directory/domain/errors"
	directoryhttp "bazaar/contexts/identity-access/user-directory/transport/http"
)

func writeDirectoryError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, directoryhttp.ErrorResponse{Code: code, Message: message})
}

func writeDirectoryDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, directoryerrors.ErrUserNotFound):
		writeDirectoryError(w, http.StatusNotFound, "user_not_found", err.Error())
	case errors.Is(err, directoryerrors.ErrInvalidUserInput),
		errors.Is(err, directoryerrors.ErrInvalidRole),
		errors.Is(err, directoryerrors.ErrInvalidPermissionGrant):
		writeDirectoryError(w, http.StatusBadRequest, "invalid_request", err.Error())
	case errors.Is(err, directoryerrors.ErrEmailConflict):
		writeDirectoryError(w, http.StatusConflict, "email_conflict", err.Error())
	case errors.Is(err, directoryerrors.ErrCannotDeclineApproved):
		writeDirectoryError(w, http.StatusConflict, "cannot_decline_approved", err.Error())
	case errors.Is(err, directoryerrors.ErrCannotDemoteLastAdmin):
		writeDirectoryError(w, http.StatusConflict, "cannot_demote_last_admin", err.Error())
	default:
		writeDirectoryError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	outcome, ok := s.guardModule(w, r, accessentities.ModuleUsers)
	if !ok {
		return
	}
	page, perPage := parsePage(r)
	resp, err := s.users.Handler.ListUsersHandler(r.Context(), directoryhttp.ListUsersRequest{
		Role:        r.URL.Query().Get("role"),
		PendingOnly: r.URL.Query().Get("pending") == "true",
		Search:      r.URL.Query().Get("search"),
		Page:        page,
		PerPage:     perPage,
	}, outcome.CanEdit)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetUser(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.guardModule(w, r, accessentities.ModuleUsers); !ok {
		return
	}
	resp, err := s.users.Handler.GetUserHandler(r.Context(), r.PathValue("user_id"))
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetUserApproval(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireModuleEdit(w, r, accessentities.ModuleUsers); !ok {
		return
	}
	var req directoryhttp.SetApprovalRequest
	if !s.decodeJSON(w, r, &req, writeDirectoryError) {
		return
	}
	resp, err := s.users.Handler.SetApprovalHandler(r.Context(), r.PathValue("user_id"), req)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetUserRole(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireModuleEdit(w, r, accessentities.ModuleUsers); !ok {
		return
	}
	var req directoryhttp.SetRoleRequest
	if !s.decodeJSON(w, r, &req, writeDirectoryError) {
		return
	}
	resp, err := s.users.Handler.SetRoleHandler(r.Context(), r.PathValue("user_id"), req)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleSetUserPermissions(w http.ResponseWriter, r *http.Request) {
	if _, ok := s.requireModuleEdit(w, r, accessentities.ModuleUsers); !ok {
		return
	}
	var req directoryhttp.SetPermissionsRequest
	if !s.decodeJSON(w, r, &req, writeDirectoryError) {
		return
	}
	resp, err := s.users.Handler.SetPermissionsHandler(r.Context(), r.PathValue("user_id"), req)
	if err != nil {
		writeDirectoryDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
