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

// CustomerHandler handles HTTP requests for customers
type CustomerHandler struct {
	createHandler *command.CreateCustomerHandler
	loginHandler  *command.LoginCustomerHandler
	updateHandler *command.UpdateCustomerHandler
	deleteHandler *command.DeleteCustomerHandler

	getHandler  *query.GetCustomerHandler
	listHandler *query.ListCustomersHandler

	metrics *Metrics
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(repo domain.CustomerRepository, res *resolver.Resolver, metrics *Metrics) *CustomerHandler {
	return &CustomerHandler{
		createHandler: command.NewCreateCustomerHandler(repo),
		loginHandler:  command.NewLoginCustomerHandler(repo),
		updateHandler: command.NewUpdateCustomerHandler(repo, res),
		deleteHandler: command.NewDeleteCustomerHandler(repo, res),
		getHandler:    query.NewGetCustomerHandler(res),
		listHandler:   query.NewListCustomersHandler(repo),
		metrics:       metrics,
	}
}

// Create handles POST /customers
func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Address  string `json:"address"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.CreateCustomerCommand{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Address:  req.Address,
	}

	customer, err := h.createHandler.Handle(cmd)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusCreated, customer)
}

// Login handles POST /login. Credentials arrive form-encoded under the
// username/password field names of the token endpoint convention.
func (h *CustomerHandler) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.LoginCustomerCommand{
		Email:    r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}

	response, err := h.loginHandler.Handle(cmd)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, response)
}

// Get handles GET /customers/{customer_id}
func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "customer_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	customer, err := h.getHandler.Handle(query.GetCustomerQuery{ID: id})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

// List handles GET /customers
func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.listHandler.Handle(query.ListCustomersQuery{})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, customers)
}

// Put handles PUT /customers/{customer_id}
func (h *CustomerHandler) Put(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, true)
}

// Patch handles PATCH /customers/{customer_id}
func (h *CustomerHandler) Patch(w http.ResponseWriter, r *http.Request) {
	h.update(w, r, false)
}

func (h *CustomerHandler) update(w http.ResponseWriter, r *http.Request, replace bool) {
	id, err := pathID(r, "customer_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	actor, ok := actorID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	var fields domain.CustomerUpdate
	if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := command.UpdateCustomerCommand{
		ID:      id,
		ActorID: actor,
		Replace: replace,
		Fields:  fields,
	}

	customer, err := h.updateHandler.Handle(cmd)
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, customer)
}

// Delete handles DELETE /customers/{customer_id}
func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "customer_id")
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	actor, ok := actorID(r)
	if !ok {
		respondError(w, http.StatusUnauthorized, "could not validate credentials")
		return
	}

	cmd := command.DeleteCustomerCommand{ID: id, ActorID: actor}
	if err := h.deleteHandler.Handle(cmd); err != nil {
		respondDomainError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// RegisterRoutes registers all customer routes
func (h *CustomerHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/login", h.metrics.Middleware("/login", h.Login)).Methods("POST")

	router.HandleFunc("/customers", h.metrics.Middleware("/customers", h.Create)).Methods("POST")
	router.HandleFunc("/customers", h.metrics.Middleware("/customers", h.List)).Methods("GET")
	router.HandleFunc("/customers/{customer_id}", h.metrics.Middleware("/customers/{customer_id}", h.Get)).Methods("GET")
	router.HandleFunc("/customers/{customer_id}", h.metrics.Middleware("/customers/{customer_id}", AuthMiddleware(h.Put))).Methods("PUT")
	router.HandleFunc("/customers/{customer_id}", h.metrics.Middleware("/customers/{customer_id}", AuthMiddleware(h.Patch))).Methods("PATCH")
	router.HandleFunc("/customers/{customer_id}", h.metrics.Middleware("/customers/{customer_id}", AuthMiddleware(h.Delete))).Methods("DELETE")
}
