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

// ItemHandler handles HTTP requests for sale line items
type ItemHandler struct {
	createHandler *command.CreateItemHandler
	updateHandler *command.UpdateItemHandler
	deleteHandler *command.DeleteItemHandler

	getHandler  *query.GetItemHandler
	listHandler *query.ListItemsHandler

	publisher *kafka.Publisher
	metrics   *Metrics
}

// NewItemHandler creates a new item handler
func NewItemHandler(repo domain.ItemRequestRepository, res *resolver.Resolver, publisher *kafka.Publisher, metrics *Metrics) *ItemHandler {
	return &ItemHandler{
		createHandler: command.NewCreateItemHandler(repo, res),
		updateHandler: command.NewUpdateItemHandler(repo, res),
		deleteHandler: command.NewDeleteItemHandler(repo, res),
		getHandler:    query.NewGetItemHandler(res),
		listHandler:   query.NewListItemsHandler(repo, res),
		publisher:     publisher,
		metrics:       metrics,
	}
}

// Create handles POST /customers/{customer_id}/services/{service_id}/items
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
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
		ProductVariantID uint    `json:"product_variant_id"`
		Quantity         int     `json:"quantity"`
		UnitPrice        float64 `json:"unit_price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.CreateItemCommand{
		CustomerID:       customerID,
		ServiceID:        serviceID,
		ActorID:          actor,
		ProductVariantID: req.ProductVariantID,
		Quantity:         req.Quantity,
		UnitPrice:        req.UnitPrice,
	}

	item, err := h.createHandler.Handle(cmd)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	event := kafka.ItemRequestedEvent{
		ItemID:           item.ID,
		RequestID:        item.RequestID,
		CustomerID:       customerID,
		ProductVariantID: item.ProductVariantID,
		Quantity:         item.Quantity,
		UnitPrice:        item.UnitPrice,
	}
	if err := h.publisher.PublishItemRequested(r.Context(), event); err != nil {
		logger.Warn(r.Context()).
			Err(err).
			Uint("item_id", item.ID).
			Msg("Failed to publish item requested event")
	}

	respondJSON(w, http.StatusCreated, item)
}

// Get handles GET .../items/{item_id}
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	itemID, err := pathID(r, "item_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	item, err := h.getHandler.Handle(query.GetItemQuery{
		CustomerID: customerID,
		ServiceID:  serviceID,
		ItemID:     itemID,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// List handles GET .../items
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
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

	items, err := h.listHandler.Handle(query.ListItemsQuery{CustomerID: customerID, ServiceID: serviceID})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, items)
}

// Put handles PUT .../items/{item_id}
func (h *ItemHandler) Put(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, true)
}

// Patch handles PATCH .../items/{item_id}
func (h *ItemHandler) Patch(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, false)
}

func (h *ItemHandler) update(w http.ResponseWriter, r *http.Request, replace bool) {
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
	itemID, err := pathID(r, "item_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	actor, ok := actorID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	var fields domain.ItemUpdate
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.UpdateItemCommand{
		CustomerID: customerID,
		ServiceID:  serviceID,
		ItemID:     itemID,
		ActorID:    actor,
		Replace:    replace,
		Fields:     fields,
	}

	item, err := h.updateHandler.Handle(cmd)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, item)
}

// Delete handles DELETE .../items/{item_id}
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
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
	itemID, err := pathID(r, "item_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	actor, ok := actorID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	cmd := command.DeleteItemCommand{
		CustomerID: customerID,
		ServiceID:  serviceID,
		ItemID:     itemID,
		ActorID:    actor,
	}
	if err := h.deleteHandler.Handle(cmd); err != nil {
		respondDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegisterRoutes registers all item routes
func (h *ItemHandler) RegisterRoutes(router *mux.Router) {
	base := "/customers/{customer_id}/services/{service_id}/items"
	item := base + "/{item_id}"

	router.HandleFunc(base, h.metrics.Middleware(base, AuthMiddleware(h.Create))).Methods("POST")
	router.HandleFunc(base, h.metrics.Middleware(base, h.List)).Methods("GET")
	router.HandleFunc(item, h.metrics.Middleware(item, h.Get)).Methods("GET")
	router.HandleFunc(item, h.metrics.Middleware(item, AuthMiddleware(h.Put))).Methods("PUT")
	router.HandleFunc(item, h.metrics.Middleware(item, AuthMiddleware(h.Patch))).Methods("PATCH")
	router.HandleFunc(item, h.metrics.Middleware(item, AuthMiddleware(h.Delete))).Methods("DELETE")
}
