//go:build wireinject
// +build wireinject

package order

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/ordersperf/orders-api/internal/order/delivery/http"
	"github.com/ordersperf/orders-api/internal/order/domain"
	"github.com/ordersperf/orders-api/internal/order/repository"
	"github.com/ordersperf/orders-api/internal/order/usecase/command"
	"github.com/ordersperf/orders-api/internal/order/usecase/query"
)

// ProvideOrderRepository provides the order repository
func ProvideOrderRepository(db *gorm.DB) domain.OrderRepository {
	return repository.NewGormOrderRepository(db)
}

// Command Handlers Providers
func ProvideCreateOrderHandler(repo domain.OrderRepository) *command.CreateOrderHandler {
	return command.NewCreateOrderHandler(repo)
}

func ProvideDeleteOrderHandler(repo domain.OrderRepository) *command.DeleteOrderHandler {
	return command.NewDeleteOrderHandler(repo)
}

// Query Handlers Providers
func ProvideGetOrderHandler(repo domain.OrderRepository) *query.GetOrderHandler {
	return query.NewGetOrderHandler(repo)
}

// Wire sets
var AllHandlersSet = wire.NewSet(
	ProvideOrderRepository,
	ProvideCreateOrderHandler,
	ProvideDeleteOrderHandler,
	ProvideGetOrderHandler,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB) (*http.OrderHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewOrderHandlerWithDI,
	)
	return nil, nil
}
