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

// ProductHandler handles HTTP requests for the product catalog. The catalog
// carries no per-customer ownership, so its routes are open.
type ProductHandler struct {
	createHandler *command.CreateProductHandler
	updateHandler *command.UpdateProductHandler
	deleteHandler *command.DeleteProductHandler

	getHandler  *query.GetProductHandler
	listHandler *query.ListProductsHandler

	cache   func(http.HandlerFunc) http.HandlerFunc
	metrics *Metrics
}

// NewProductHandler creates a new product handler
func NewProductHandler(repo domain.ProductRepository, res *resolver.Resolver, cache func(http.HandlerFunc) http.HandlerFunc, metrics *Metrics) *ProductHandler {
	if cache == nil {
		cache = func(next http.HandlerFunc) http.HandlerFunc { return next }
	}
	return &ProductHandler{
		createHandler: command.NewCreateProductHandler(repo),
		updateHandler: command.NewUpdateProductHandler(repo, res),
		deleteHandler: command.NewDeleteProductHandler(repo, res),
		getHandler:    query.NewGetProductHandler(res),
		listHandler:   query.NewListProductsHandler(repo),
		cache:         cache,
		metrics:       metrics,
	}
}

// Create handles POST /products
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name          string  `json:"name"`
		Description   string  `json:"description"`
		Price         float64 `json:"price"`
		StockQuantity int     `json:"stock_quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.CreateProductCommand{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		StockQuantity: req.StockQuantity,
	}

	product, err := h.createHandler.Handle(cmd)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, product)
}

// Get handles GET /products/{product_id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "product_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	product, err := h.getHandler.Handle(query.GetProductQuery{ID: id})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// List handles GET /products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	products, err := h.listHandler.Handle(query.ListProductsQuery{})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, products)
}

// Put handles PUT /products/{product_id}
func (h *ProductHandler) Put(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, true)
}

// Patch handles PATCH /products/{product_id}
func (h *ProductHandler) Patch(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, false)
}

func (h *ProductHandler) update(w http.ResponseWriter, r *http.Request, replace bool) {
	id, err := pathID(r, "product_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	var fields domain.ProductUpdate
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.UpdateProductCommand{ID: id, Replace: replace, Fields: fields}

	product, err := h.updateHandler.Handle(cmd)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// Delete handles DELETE /products/{product_id}
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "product_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteProductCommand{ID: id}); err != nil {
		respondDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/products", h.metrics.Middleware("/products", h.Create)).Methods("POST")
	router.HandleFunc("/products", h.metrics.Middleware("/products", h.cache(h.List))).Methods("GET")
	router.HandleFunc("/products/{product_id}", h.metrics.Middleware("/products/{product_id}", h.cache(h.Get))).Methods("GET")
	router.HandleFunc("/products/{product_id}", h.metrics.Middleware("/products/{product_id}", h.Put)).Methods("PUT")
	router.HandleFunc("/products/{product_id}", h.metrics.Middleware("/products/{product_id}", h.Patch)).Methods("PATCH")
	router.HandleFunc("/products/{product_id}", h.metrics.Middleware("/products/{product_id}", h.Delete)).Methods("DELETE")
}
