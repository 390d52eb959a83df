package httpapi

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Router stdlib http.ServeMux (no third-party router needed for this
// route count)
type Router struct {
	mux    *http.ServeMux
	logger *zap.Logger
}

func NewRouter(logger *zap.Logger) *Router {
	return &Router{
		mux:    http.NewServeMux(),
		logger: logger,
	}
}

func (r *Router) Handle(pattern string, h http.HandlerFunc) {
	r.mux.HandleFunc(pattern, h)
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.mux.ServeHTTP(w, req)
}

// RegisterAdminRoutes wires the dashboard API.
func (r *Router) RegisterAdminRoutes(
	donors *DonorHandler,
	hospitals *HospitalHandler,
	employees *EmployeeHandler,
	inventory *InventoryHandler,
	orders *OrderHandler,
	supply *SupplyHandler,
	search *SearchHandler,
	dashboard *DashboardHandler,
) {
	r.Handle("/admin/api/v1/donors", methodSwitch(donors.List, donors.Register))
	r.Handle("/admin/api/v1/hospitals", methodSwitch(hospitals.List, hospitals.Create))
	r.Handle("/admin/api/v1/employees", methodSwitch(employees.List, employees.Create))

	r.Handle("/admin/api/v1/inventory", getOnly(inventory.ListLots))
	r.Handle("/admin/api/v1/inventory/availability", getOnly(inventory.Availability))
	r.Handle("/admin/api/v1/inventory/adjust", postOnly(inventory.Adjust))
	r.Handle("/admin/api/v1/inventory/export", getOnly(inventory.Export))

	r.Handle("/admin/api/v1/orders", methodSwitch(orders.List, orders.Place))
	r.Handle("/admin/api/v1/orders/pending", getOnly(orders.ListPending))
	// /admin/api/v1/orders/{id}/fulfill and /{id}/cancel
	r.Handle("/admin/api/v1/orders/", postOnly(func(w http.ResponseWriter, req *http.Request) {
		rest := strings.TrimPrefix(req.URL.Path, "/admin/api/v1/orders/")
		switch {
		case strings.HasSuffix(rest, "/fulfill"):
			orders.Fulfill(w, req, strings.TrimSuffix(rest, "/fulfill"))
		case strings.HasSuffix(rest, "/cancel"):
			orders.Cancel(w, req, strings.TrimSuffix(rest, "/cancel"))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	r.Handle("/admin/api/v1/supply", methodSwitch(supply.List, supply.Record))
	r.Handle("/admin/api/v1/search", postOnly(search.Search))
	r.Handle("/admin/api/v1/dashboard", getOnly(dashboard.Overview))
}

func methodSwitch(get, post http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		switch req.Method {
		case http.MethodGet:
			get(w, req)
		case http.MethodPost:
			post(w, req)
		default:
			w.WriteHeader(http.StatusMethodNotAllowed)
		}
	}
}

func getOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodGet {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h(w, req)
	}
}

func postOnly(h http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		if req.Method != http.MethodPost {
			w.WriteHeader(http.StatusMethodNotAllowed)
			return
		}
		h(w, req)
	}
}
