package shop

import (
	httpDelivery "github.com/fixhub/repairshop/internal/shop/delivery/http"
)

// Handlers groups the HTTP handlers of every shop entity.
type Handlers struct {
	Customers *httpDelivery.CustomerHandler
	Services  *httpDelivery.ServiceHandler
	Repairs   *httpDelivery.RepairHandler
	Items     *httpDelivery.ItemHandler
	Products  *httpDelivery.ProductHandler
	Variants  *httpDelivery.VariantHandler
}
