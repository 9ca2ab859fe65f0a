package http

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/resolver"
	"github.com/fixhub/repairshop/internal/shop/usecase/command"
	"github.com/fixhub/repairshop/internal/shop/usecase/query"
	"github.com/fixhub/repairshop/kafka"
	"github.com/fixhub/repairshop/pkg/logger"
)

// RepairHandler handles HTTP requests for repair tickets
type RepairHandler struct {
	createHandler *command.CreateRepairHandler
	updateHandler *command.UpdateRepairHandler
	deleteHandler *command.DeleteRepairHandler

	getHandler  *query.GetRepairHandler
	listHandler *query.ListRepairsHandler

	publisher *kafka.Publisher
	metrics   *Metrics
}

// NewRepairHandler creates a new repair handler
func NewRepairHandler(repo domain.RepairRepository, res *resolver.Resolver, publisher *kafka.Publisher, metrics *Metrics) *RepairHandler {
	return &RepairHandler{
		createHandler: command.NewCreateRepairHandler(repo, res),
		updateHandler: command.NewUpdateRepairHandler(repo, res),
		deleteHandler: command.NewDeleteRepairHandler(repo, res),
		getHandler:    query.NewGetRepairHandler(res),
		listHandler:   query.NewListRepairsHandler(repo, res),
		publisher:     publisher,
		metrics:       metrics,
	}
}

// Create handles POST /customers/{customer_id}/services/{service_id}/repairs
func (h *RepairHandler) Create(w http.ResponseWriter, r *http.Request) {
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

	var req struct {
		Description string              `json:"description"`
		Status      domain.RepairStatus `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.CreateRepairCommand{
		CustomerID:  customerID,
		ServiceID:   serviceID,
		ActorID:     actor,
		Description: req.Description,
		Status:      req.Status,
	}

	repair, err := h.createHandler.Handle(cmd)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, repair)
}

// Get handles GET .../repairs/{repair_id}
func (h *RepairHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	repairID, err := pathID(r, "repair_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	repair, err := h.getHandler.Handle(query.GetRepairQuery{
		CustomerID: customerID,
		ServiceID:  serviceID,
		RepairID:   repairID,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, repair)
}

// List handles GET .../repairs
func (h *RepairHandler) List(w http.ResponseWriter, r *http.Request) {
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

	repairs, err := h.listHandler.Handle(query.ListRepairsQuery{CustomerID: customerID, ServiceID: serviceID})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, repairs)
}

// Put handles PUT .../repairs/{repair_id}
func (h *RepairHandler) Put(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, true)
}

// Patch handles PATCH .../repairs/{repair_id}
func (h *RepairHandler) Patch(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, false)
}

func (h *RepairHandler) update(w http.ResponseWriter, r *http.Request, replace bool) {
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
	repairID, err := pathID(r, "repair_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	actor, ok := actorID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	var fields domain.RepairUpdate
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.UpdateRepairCommand{
		CustomerID: customerID,
		ServiceID:  serviceID,
		RepairID:   repairID,
		ActorID:    actor,
		Replace:    replace,
		Fields:     fields,
	}

	repair, previous, err := h.updateHandler.Handle(cmd)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	if previous != repair.Status {
		event := kafka.RepairStatusChangedEvent{
			RepairID:       repair.ID,
			RequestID:      repair.RequestID,
			CustomerID:     customerID,
			PreviousStatus: string(previous),
			NewStatus:      string(repair.Status),
			StartDate:      repair.StartDate,
			FinishedDate:   repair.FinishedDate,
		}
		if err := h.publisher.PublishRepairStatusChanged(r.Context(), event); err != nil {
			// The mutation already committed; event delivery failures must
			// not fail the request.
			logger.Warn(r.Context()).
				Err(err).
				Uint("repair_id", repair.ID).
				Msg("Failed to publish repair status change")
		}
	}

	respondJSON(w, http.StatusOK, repair)
}

// Delete handles DELETE .../repairs/{repair_id}
func (h *RepairHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	repairID, err := pathID(r, "repair_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	actor, ok := actorID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	cmd := command.DeleteRepairCommand{
		CustomerID: customerID,
		ServiceID:  serviceID,
		RepairID:   repairID,
		ActorID:    actor,
	}
	if err := h.deleteHandler.Handle(cmd); err != nil {
		respondDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegisterRoutes registers all repair routes
func (h *RepairHandler) RegisterRoutes(router *mux.Router) {
	base := "/customers/{customer_id}/services/{service_id}/repairs"
	item := base + "/{repair_id}"

	router.HandleFunc(base, h.metrics.Middleware(base, AuthMiddleware(h.Create))).Methods("POST")
	router.HandleFunc(base, h.metrics.Middleware(base, h.List)).Methods("GET")
	router.HandleFunc(item, h.metrics.Middleware(item, h.Get)).Methods("GET")
	router.HandleFunc(item, h.metrics.Middleware(item, AuthMiddleware(h.Put))).Methods("PUT")
	router.HandleFunc(item, h.metrics.Middleware(item, AuthMiddleware(h.Patch))).Methods("PATCH")
	router.HandleFunc(item, h.metrics.Middleware(item, AuthMiddleware(h.Delete))).Methods("DELETE")
}
