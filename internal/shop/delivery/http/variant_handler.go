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

// VariantHandler handles HTTP requests for product variants
type VariantHandler struct {
	createHandler *command.CreateVariantHandler
	updateHandler *command.UpdateVariantHandler
	deleteHandler *command.DeleteVariantHandler

	getHandler  *query.GetVariantHandler
	listHandler *query.ListVariantsHandler

	cache   func(http.HandlerFunc) http.HandlerFunc
	metrics *Metrics
}

// NewVariantHandler creates a new variant handler
func NewVariantHandler(repo domain.VariantRepository, res *resolver.Resolver, cache func(http.HandlerFunc) http.HandlerFunc, metrics *Metrics) *VariantHandler {
	if cache == nil {
		cache = func(next http.HandlerFunc) http.HandlerFunc { return next }
	}
	return &VariantHandler{
		createHandler: command.NewCreateVariantHandler(repo, res),
		updateHandler: command.NewUpdateVariantHandler(repo, res),
		deleteHandler: command.NewDeleteVariantHandler(repo, res),
		getHandler:    query.NewGetVariantHandler(res),
		listHandler:   query.NewListVariantsHandler(repo, res),
		cache:         cache,
		metrics:       metrics,
	}
}

// Create handles POST /products/{product_id}/variants
func (h *VariantHandler) Create(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "product_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	var req struct {
		Size          string `json:"size"`
		Color         string `json:"color"`
		StockQuantity int    `json:"stock_quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.CreateVariantCommand{
		ProductID:     productID,
		Size:          req.Size,
		Color:         req.Color,
		StockQuantity: req.StockQuantity,
	}

	variant, err := h.createHandler.Handle(cmd)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, variant)
}

// Get handles GET /products/{product_id}/variants/{variant_id}
func (h *VariantHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "product_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	variantID, err := pathID(r, "variant_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	variant, err := h.getHandler.Handle(query.GetVariantQuery{ProductID: productID, VariantID: variantID})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, variant)
}

// List handles GET /products/{product_id}/variants
func (h *VariantHandler) List(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "product_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	variants, err := h.listHandler.Handle(query.ListVariantsQuery{ProductID: productID})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, variants)
}

// Put handles PUT /products/{product_id}/variants/{variant_id}
func (h *VariantHandler) Put(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, true)
}

// Patch handles PATCH /products/{product_id}/variants/{variant_id}
func (h *VariantHandler) Patch(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, false)
}

func (h *VariantHandler) update(w http.ResponseWriter, r *http.Request, replace bool) {
	productID, err := pathID(r, "product_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	variantID, err := pathID(r, "variant_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	var fields domain.VariantUpdate
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.UpdateVariantCommand{
		ProductID: productID,
		VariantID: variantID,
		Replace:   replace,
		Fields:    fields,
	}

	variant, err := h.updateHandler.Handle(cmd)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, variant)
}

// Delete handles DELETE /products/{product_id}/variants/{variant_id}
func (h *VariantHandler) Delete(w http.ResponseWriter, r *http.Request) {
	productID, err := pathID(r, "product_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	variantID, err := pathID(r, "variant_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	cmd := command.DeleteVariantCommand{ProductID: productID, VariantID: variantID}
	if err := h.deleteHandler.Handle(cmd); err != nil {
		respondDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegisterRoutes registers all variant routes
func (h *VariantHandler) RegisterRoutes(router *mux.Router) {
	base := "/products/{product_id}/variants"
	item := base + "/{variant_id}"

	router.HandleFunc(base, h.metrics.Middleware(base, h.Create)).Methods("POST")
	router.HandleFunc(base, h.metrics.Middleware(base, h.cache(h.List))).Methods("GET")
	router.HandleFunc(item, h.metrics.Middleware(item, h.cache(h.Get))).Methods("GET")
	router.HandleFunc(item, h.metrics.Middleware(item, h.Put)).Methods("PUT")
	router.HandleFunc(item, h.metrics.Middleware(item, h.Patch)).Methods("PATCH")
	router.HandleFunc(item, h.metrics.Middleware(item, h.Delete)).Methods("DELETE")
}
