package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
	"github.com/fixhub/repairshop/internal/shop/usecase/command"
	"github.com/fixhub/repairshop/internal/shop/usecase/query"
)

// ServiceHandler handles HTTP requests for service requests
type ServiceHandler struct {
	createHandler *command.CreateServiceHandler
	updateHandler *command.UpdateServiceHandler
	deleteHandler *command.DeleteServiceHandler

	getHandler  *query.GetServiceHandler
	listHandler *query.ListServicesHandler

	metrics *Metrics
}

// NewServiceHandler creates a new service request handler
func NewServiceHandler(repo domain.ServiceRepository, res *resolver.Resolver, metrics *Metrics) *ServiceHandler {
	return &ServiceHandler{
		createHandler: command.NewCreateServiceHandler(repo, res),
		updateHandler: command.NewUpdateServiceHandler(repo, res),
		deleteHandler: command.NewDeleteServiceHandler(repo, res),
		getHandler:    query.NewGetServiceHandler(res),
		listHandler:   query.NewListServicesHandler(repo, res),
		metrics:       metrics,
	}
}

// Create handles POST /customers/{customer_id}/services
func (h *ServiceHandler) Create(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customer_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	actor, ok := actorID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	var req struct {
		Type      domain.ServiceType `json:"type"`
		TotalCost float64            `json:"total_cost"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.CreateServiceCommand{
		CustomerID: customerID,
		ActorID:    actor,
		Type:       req.Type,
		TotalCost:  req.TotalCost,
	}

	service, err := h.createHandler.Handle(cmd)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, service)
}

// Get handles GET /customers/{customer_id}/services/{service_id}
func (h *ServiceHandler) Get(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customer_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	serviceID, err := pathID(r, "service_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	service, err := h.getHandler.Handle(query.GetServiceQuery{CustomerID: customerID, ServiceID: serviceID})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, service)
}

// List handles GET /customers/{customer_id}/services
func (h *ServiceHandler) List(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customer_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	services, err := h.listHandler.Handle(query.ListServicesQuery{CustomerID: customerID})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, services)
}

// Put handles PUT /customers/{customer_id}/services/{service_id}
func (h *ServiceHandler) Put(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, true)
}

// Patch handles PATCH /customers/{customer_id}/services/{service_id}
func (h *ServiceHandler) Patch(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, false)
}

func (h *ServiceHandler) update(w http.ResponseWriter, r *http.Request, replace bool) {
	customerID, err := pathID(r, "customer_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	serviceID, err := pathID(r, "service_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	actor, ok := actorID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	var fields domain.ServiceUpdate
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.UpdateServiceCommand{
		CustomerID: customerID,
		ServiceID:  serviceID,
		ActorID:    actor,
		Replace:    replace,
		Fields:     fields,
	}

	service, err := h.updateHandler.Handle(cmd)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, service)
}

// Delete handles DELETE /customers/{customer_id}/services/{service_id}
func (h *ServiceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "customer_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	serviceID, err := pathID(r, "service_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	actor, ok := actorID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	cmd := command.DeleteServiceCommand{CustomerID: customerID, ServiceID: serviceID, ActorID: actor}
	if err := h.deleteHandler.Handle(cmd); err != nil {
		respondDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegisterRoutes registers all service request routes
func (h *ServiceHandler) RegisterRoutes(router *mux.Router) {
	base := "/customers/{customer_id}/services"
	item := base + "/{service_id}"

	router.HandleFunc(base, h.metrics.Middleware(base, AuthMiddleware(h.Create))).Methods("POST")
	router.HandleFunc(base, h.metrics.Middleware(base, h.List)).Methods("GET")
	router.HandleFunc(item, h.metrics.Middleware(item, h.Get)).Methods("GET")
	router.HandleFunc(item, h.metrics.Middleware(item, AuthMiddleware(h.Put))).Methods("PUT")
	router.HandleFunc(item, h.metrics.Middleware(item, AuthMiddleware(h.Patch))).Methods("PATCH")
	router.HandleFunc(item, h.metrics.Middleware(item, AuthMiddleware(h.Delete))).Methods("DELETE")
}
