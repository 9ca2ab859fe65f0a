//go:build wireinject
// +build wireinject

package shop

import (
	"net/http"

	"github.com/google/wire"
	"gorm.io/gorm"

	httpDelivery "github.com/fixhub/repairshop/internal/shop/delivery/http"
	"github.com/fixhub/repairshop/internal/shop/domain"
	"github.com/fixhub/repairshop/internal/shop/repository"
	"github.com/fixhub/repairshop/internal/shop/resolver"
	"github.com/fixhub/repairshop/kafka"
)

// Repository providers

func ProvideCustomerRepository(db *gorm.DB) domain.CustomerRepository {
	return repository.NewGormCustomerRepository(db)
}

func ProvideServiceRepository(db *gorm.DB) domain.ServiceRepository {
	return repository.NewGormServiceRepository(db)
}

func ProvideRepairRepository(db *gorm.DB) domain.RepairRepository {
	return repository.NewGormRepairRepository(db)
}

func ProvideItemRepository(db *gorm.DB) domain.ItemRequestRepository {
	return repository.NewGormItemRepository(db)
}

func ProvideProductRepository(db *gorm.DB) domain.ProductRepository {
	return repository.NewGormProductRepository(db)
}

func ProvideVariantRepository(db *gorm.DB) domain.VariantRepository {
	return repository.NewGormVariantRepository(db)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideCustomerRepository,
	ProvideServiceRepository,
	ProvideRepairRepository,
	ProvideItemRepository,
	ProvideProductRepository,
	ProvideVariantRepository,
)

var HandlerSet = wire.NewSet(
	resolver.New,
	httpDelivery.NewMetrics,
	httpDelivery.NewCustomerHandler,
	httpDelivery.NewServiceHandler,
	httpDelivery.NewRepairHandler,
	httpDelivery.NewItemHandler,
	httpDelivery.NewProductHandler,
	httpDelivery.NewVariantHandler,
)

// InitializeHandlers initializes the shop HTTP handlers with all
// dependencies. The publisher and cache middleware may be nil.
func InitializeHandlers(db *gorm.DB, publisher *kafka.Publisher, cache func(http.HandlerFunc) http.HandlerFunc) (*Handlers, error) {
	wire.Build(
		RepositorySet,
		HandlerSet,
		wire.Struct(new(Handlers), "*"),
	)
	return nil, nil
}
