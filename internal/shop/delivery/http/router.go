package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

// RegisterAll mounts every shop handler plus the operational endpoints on
// the router.
func RegisterAll(
	router *mux.Router,
	customers *CustomerHandler,
	services *ServiceHandler,
	repairs *RepairHandler,
	items *ItemHandler,
	products *ProductHandler,
	variants *VariantHandler,
) {
	repairs.RegisterRoutes(router)
	items.RegisterRoutes(router)
	services.RegisterRoutes(router)
	customers.RegisterRoutes(router)
	variants.RegisterRoutes(router)
	products.RegisterRoutes(router)

	router.Handle("/metrics", promhttp.Handler()).Methods("GET")
}

// RegisterHealthCheck registers the health endpoint pinging the database
func RegisterHealthCheck(router *mux.Router, db *gorm.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		sqlDB, err := db.DB()
		if err == nil {
			err = sqlDB.PingContext(ctx)
		}
		if err != nil {
			respondJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  err.Error(),
			})
			return
		}

		respondJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
	}).Methods("GET")
}

// RegisterSwaggerDocs registers Swagger documentation routes
func RegisterSwaggerDocs(router *mux.Router, swaggerHandler http.Handler) {
	router.PathPrefix("/swagger/").Handler(swaggerHandler)
}
