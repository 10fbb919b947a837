package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"bazaar/contexts/identity-access/user-directory/application"
	"bazaar/contexts/identity-access/user-directory/domain/entities"
	"bazaar/contexts/identity-access/user-directory/ports"
	httptransport "bazaar/contexts/identity-access/user-directory/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) ListUsersHandler(ctx context.Context, req httptransport.ListUsersRequest, canEdit bool) (httptransport.ListUsersResponse, error) {
	page, err := h.Service.ListUsers(ctx, ports.UserFilter{
		Role:        req.Role,
		PendingOnly: req.PendingOnly,
		Search:      req.Search,
		Page:        req.Page,
		PerPage:     req.PerPage,
	})
	if err != nil {
		return httptransport.ListUsersResponse{}, err
	}

	resp := httptransport.ListUsersResponse{Status: "success"}
	resp.Data.Total = page.Total
	resp.Data.Page = req.Page
	resp.Data.PerPage = req.PerPage
	resp.Data.CanEdit = canEdit
	for _, user := range page.Items {
		resp.Data.Items = append(resp.Data.Items, userPayload(user))
	}
	return resp, nil
}

func (h Handler) GetUserHandler(ctx context.Context, userID string) (httptransport.GetUserResponse, error) {
	user, err := h.Service.GetUser(ctx, userID)
	if err != nil {
		return httptransport.GetUserResponse{}, err
	}
	return httptransport.GetUserResponse{Status: "success", Data: userPayload(user)}, nil
}

func (h Handler) SetApprovalHandler(ctx context.Context, userID string, req httptransport.SetApprovalRequest) (httptransport.GetUserResponse, error) {
	user, err := h.Service.SetApproval(ctx, userID, req.Approved)
	if err != nil {
		return httptransport.GetUserResponse{}, err
	}
	return httptransport.GetUserResponse{Status: "success", Data: userPayload(user)}, nil
}

func (h Handler) SetRoleHandler(ctx context.Context, userID string, req httptransport.SetRoleRequest) (httptransport.GetUserResponse, error) {
	user, err := h.Service.SetRole(ctx, userID, req.Role)
	if err != nil {
		return httptransport.GetUserResponse{}, err
	}
	return httptransport.GetUserResponse{Status: "success", Data: userPayload(user)}, nil
}

func (h Handler) SetPermissionsHandler(ctx context.Context, userID string, req httptransport.SetPermissionsRequest) (httptransport.GetUserResponse, error) {
	user, err := h.Service.SetPermissions(ctx, userID, req.Permissions)
	if err != nil {
		return httptransport.GetUserResponse{}, err
	}
	return httptransport.GetUserResponse{Status: "success", Data: userPayload(user)}, nil
}

func userPayload(user entities.DirectoryUser) httptransport.UserPayload {
	permissions := user.Permissions
	if permissions == nil {
		permissions = map[string]string{}
	}
	return httptransport.UserPayload{
		UserID:      user.UserID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Role:        user.Role,
		IsApproved:  user.IsApproved,
		Permissions: permissions,
		CreatedAt:   user.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   user.UpdatedAt.Format(time.RFC3339),
	}
}
