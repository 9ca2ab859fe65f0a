package http

// Create godoc
// @Summary Register a new customer
// @Description Create a customer account
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body object{name=string,email=string,password=string,address=string} true "Customer data"
// @Success 201 {object} object{id=int,name=string,email=string,address=string,created_at=string}
// @Failure 400 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /customers [post]
func (h *CustomerHandler) CreateDoc() {}

// Login godoc
// @Summary Customer login
// @Description Authenticate with email and password, returns a bearer token
// @Tags Auth
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Customer email"
// @Param password formData string true "Password"
// @Success 200 {object} object{access_token=string,token_type=string,customer_id=int}
// @Failure 403 {object} object{error=string}
// @Router /login [post]
func (h *CustomerHandler) LoginDoc() {}

// Get godoc
// @Summary Get a customer
// @Description Fetch a customer with its service requests
// @Tags Customers
// @Produce json
// @Success 200 {object} object{id=int,name=string,email=string,address=string,services=array}
// @Failure 404 {object} object{error=string}
// @Router /customers/{customer_id} [get]
func (h *CustomerHandler) GetDoc() {}

// Create godoc
// @Summary Open a service request
// @Description Open a sale or repair service request for a customer
// @Tags Services
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{type=string,total_cost=number} true "Service request data"
// @Success 201 {object} object{id=int,type=string,total_cost=number,date=string}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /customers/{customer_id}/services [post]
func (h *ServiceHandler) CreateDoc() {}

// Create godoc
// @Summary Open a repair ticket
// @Description Add a repair ticket under a repair-type service request
// @Tags Repairs
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{description=string,status=string} true "Repair data"
// @Success 201 {object} object{id=int,description=string,status=string,start_date=string,finished_date=string}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /customers/{customer_id}/services/{service_id}/repairs [post]
func (h *RepairHandler) CreateDoc() {}

// Create godoc
// @Summary Request a sale item
// @Description Add a product variant line item under a sale-type service request
// @Tags Items
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body object{product_variant_id=int,quantity=int,unit_price=number} true "Item data"
// @Success 201 {object} object{id=int,product_variant_id=int,quantity=int,unit_price=number}
// @Failure 400 {object} object{error=string}
// @Failure 403 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Failure 409 {object} object{error=string}
// @Router /customers/{customer_id}/services/{service_id}/items [post]
func (h *ItemHandler) CreateDoc() {}

// List godoc
// @Summary List products
// @Description Fetch the product catalog with variants
// @Tags Products
// @Produce json
// @Success 200 {array} object{id=int,name=string,description=string,price=number,stock_quantity=int,variants=array}
// @Router /products [get]
func (h *ProductHandler) ListDoc() {}

// Create godoc
// @Summary Add a product variant
// @Description Add a size/color variant under a product
// @Tags Variants
// @Accept json
// @Produce json
// @Param request body object{size=string,color=string,stock_quantity=int} true "Variant data"
// @Success 201 {object} object{id=int,size=string,color=string,stock_quantity=int}
// @Failure 400 {object} object{error=string}
// @Failure 404 {object} object{error=string}
// @Router /products/{product_id}/variants [post]
func (h *VariantHandler) CreateDoc() {}
