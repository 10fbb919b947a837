package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	category "bazaar/contexts/catalog/category-service"
	product "bazaar/contexts/catalog/product-service"
	inventory "bazaar/contexts/commerce/inventory-service"
	order "bazaar/contexts/commerce/order-service"
	tax "bazaar/contexts/commerce/tax-service"
	accessapp "bazaar/contexts/identity-access/access-control/application"
	accessentities "bazaar/contexts/identity-access/access-control/domain/entities"
	session "bazaar/contexts/identity-access/session-service"
	sessionapp "bazaar/contexts/identity-access/session-service/application"
	sessionentities "bazaar/contexts/identity-access/session-service/domain/entities"
	directory "bazaar/contexts/identity-access/user-directory"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "bazaar/internal/platform/httpserver/docs"
)

// Modules bundles the bounded-context composition roots the console serves.
type Modules struct {
	Sessions   session.Module
	Products   product.Module
	Categories category.Module
	Inventory  inventory.Module
	Orders     order.Module
	Users      directory.Module
	Tax        tax.Module
}

type Server struct {
	mux     *http.ServeMux
	handler http.Handler
	logger  *slog.Logger
	addr    string

	sessions   session.Module
	gate       accessapp.Gate
	products   product.Module
	categories category.Module
	inventory  inventory.Module
	orders     order.Module
	users      directory.Module
	tax        tax.Module
}

func New(modules Modules, logger *slog.Logger, addr string, enableSwagger bool) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:        http.NewServeMux(),
		logger:     logger,
		addr:       addr,
		sessions:   modules.Sessions,
		gate:       accessapp.Gate{Logger: logger},
		products:   modules.Products,
		categories: modules.Categories,
		inventory:  modules.Inventory,
		orders:     modules.Orders,
		users:      modules.Users,
		tax:        modules.Tax,
	}
	s.registerRoutes(enableSwagger)
	s.handler = s.withSession(s.mux)
	return s
}

// Handler exposes the full middleware chain for tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.handler)
}

func (s *Server) registerRoutes(enableSwagger bool) {
	if enableSwagger {
		s.mux.Handle("/swagger/", httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		))
	}

	s.mux.HandleFunc("GET /api/admin/v1/session", s.handleSessionSnapshot)

	s.mux.HandleFunc("GET /api/admin/v1/products", s.handleListProducts)
	s.mux.HandleFunc("POST /api/admin/v1/products", s.handleCreateProduct)
	s.mux.HandleFunc("GET /api/admin/v1/products/{product_id}", s.handleGetProduct)
	s.mux.HandleFunc("PUT /api/admin/v1/products/{product_id}", s.handleUpdateProduct)
	s.mux.HandleFunc("DELETE /api/admin/v1/products/{product_id}", s.handleArchiveProduct)

	s.mux.HandleFunc("GET /api/admin/v1/categories", s.handleListCategories)
	s.mux.HandleFunc("POST /api/admin/v1/categories", s.handleCreateCategory)
	s.mux.HandleFunc("GET /api/admin/v1/categories/{category_id}", s.handleGetCategory)
	s.mux.HandleFunc("PUT /api/admin/v1/categories/{category_id}", s.handleUpdateCategory)
	s.mux.HandleFunc("DELETE /api/admin/v1/categories/{category_id}", s.handleDeleteCategory)

	s.mux.HandleFunc("GET /api/admin/v1/inventory", s.handleListStock)
	s.mux.HandleFunc("GET /api/admin/v1/inventory/{product_id}", s.handleGetStock)
	s.mux.HandleFunc("POST /api/admin/v1/inventory/{product_id}/adjust", s.handleAdjustStock)
	s.mux.HandleFunc("GET /api/admin/v1/inventory/{product_id}/adjustments", s.handleListAdjustments)

	s.mux.HandleFunc("GET /api/admin/v1/orders", s.handleListOrders)
	s.mux.HandleFunc("GET /api/admin/v1/orders/{order_id}", s.handleGetOrder)
	s.mux.HandleFunc("PUT /api/admin/v1/orders/{order_id}/status", s.handleUpdateOrderStatus)

	s.mux.HandleFunc("GET /api/admin/v1/users", s.handleListUsers)
	s.mux.HandleFunc("GET /api/admin/v1/users/{user_id}", s.handleGetUser)
	s.mux.HandleFunc("PUT /api/admin/v1/users/{user_id}/approval", s.handleSetUserApproval)
	s.mux.HandleFunc("PUT /api/admin/v1/users/{user_id}/role", s.handleSetUserRole)
	s.mux.HandleFunc("PUT /api/admin/v1/users/{user_id}/permissions", s.handleSetUserPermissions)

	s.mux.HandleFunc("GET /api/admin/v1/tax/rules", s.handleListTaxRules)
	s.mux.HandleFunc("POST /api/admin/v1/tax/rules", s.handleCreateTaxRule)
	s.mux.HandleFunc("GET /api/admin/v1/tax/rules/{rule_id}", s.handleGetTaxRule)
	s.mux.HandleFunc("PUT /api/admin/v1/tax/rules/{rule_id}", s.handleUpdateTaxRule)
	s.mux.HandleFunc("DELETE /api/admin/v1/tax/rules/{rule_id}", s.handleDeleteTaxRule)
	s.mux.HandleFunc("POST /api/admin/v1/tax/rules/{rule_id}/toggle", s.handleToggleTaxRule)
	s.mux.HandleFunc("POST /api/admin/v1/tax/calculate", s.handleCalculateTax)
}

// withSession attaches a request-scoped session resolver so every access
// check in the request tree shares one memoized resolution.
func (s *Server) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		resolver := sessionapp.NewResolver(s.sessions.Service, sessionToken(r))
		next.ServeHTTP(w, r.WithContext(sessionapp.NewContext(r.Context(), resolver)))
	})
}

func sessionToken(r *http.Request) string {
	header := strings.TrimSpace(r.Header.Get("Authorization"))
	if parts := strings.SplitN(header, " ", 2); len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return strings.TrimSpace(parts[1])
	}
	if cookie, err := r.Cookie("bazaar_session"); err == nil {
		return cookie.Value
	}
	return ""
}

type accessDeniedResponse struct {
	Code   string `json:"code"`
	Module string `json:"module"`
}

// guardModule gates a view route. Redirect and denied outcomes are written
// to the response; the caller proceeds only when access is granted.
func (s *Server) guardModule(w http.ResponseWriter, r *http.Request, module accessentities.Module) (accessentities.Outcome, bool) {
	outcome := s.gate.Guard(r.Context(), module)
	switch outcome.Kind {
	case accessentities.OutcomeGranted:
		return outcome, true
	case accessentities.OutcomeRedirect:
		http.Redirect(w, r, outcome.Redirect.Location(), http.StatusFound)
	default:
		// The denial response names the module and nothing else.
		writeJSON(w, http.StatusForbidden, accessDeniedResponse{
			Code:   "access_denied",
			Module: string(outcome.Module),
		})
	}
	return outcome, false
}

// requireModuleEdit gates a mutating route. On top of the view gate it
// re-evaluates edit permission server-side, so a direct request can never
// ride on a stale or presentation-only CanEdit signal.
func (s *Server) requireModuleEdit(w http.ResponseWriter, r *http.Request, module accessentities.Module) (accessentities.Outcome, bool) {
	outcome, ok := s.guardModule(w, r, module)
	if !ok {
		return outcome, false
	}
	if !s.gate.Authorize(outcome.User, module) {
		writeJSON(w, http.StatusForbidden, accessDeniedResponse{
			Code:   "edit_forbidden",
			Module: string(outcome.Module),
		})
		return outcome, false
	}
	return outcome, true
}

func (s *Server) handleSessionSnapshot(w http.ResponseWriter, r *http.Request) {
	resolver, ok := sessionapp.FromContext(r.Context())
	if !ok {
		http.Redirect(w, r, sessionentities.Redirect{
			Target: sessionentities.RedirectTargetLogin,
			Reason: sessionentities.ReasonUnauthenticated,
		}.Location(), http.StatusFound)
		return
	}
	resolution := resolver.Resolve(r.Context())
	if resolution.Kind == sessionentities.ResolutionRedirect {
		http.Redirect(w, r, resolution.Redirect.Location(), http.StatusFound)
		return
	}

	type sessionPayload struct {
		UserID      string            `json:"user_id"`
		Email       string            `json:"email"`
		DisplayName string            `json:"display_name,omitempty"`
		Role        string            `json:"role"`
		Permissions map[string]string `json:"permissions"`
	}
	user := resolution.User
	writeJSON(w, http.StatusOK, struct {
		Status string         `json:"status"`
		Data   sessionPayload `json:"data"`
	}{
		Status: "success",
		Data: sessionPayload{
			UserID:      user.ID,
			Email:       user.Email,
			DisplayName: user.DisplayName,
			Role:        string(user.Role),
			Permissions: user.Permissions,
		},
	})
}

func (s *Server) decodeJSON(w http.ResponseWriter, r *http.Request, dst any, writeError func(http.ResponseWriter, int, string, string)) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
