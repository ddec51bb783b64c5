//go:build wireinject
// +build wireinject

package user

import (
	"github.com/google/wire"
	"gorm.io/gorm"

	"github.com/ordersperf/orders-api/internal/user/delivery/http"
	"github.com/ordersperf/orders-api/internal/user/domain"
	"github.com/ordersperf/orders-api/internal/user/repository"
	"github.com/ordersperf/orders-api/internal/user/usecase/command"
	"github.com/ordersperf/orders-api/internal/user/usecase/query"
	"github.com/ordersperf/orders-api/pkg/cache"
)

// ProvideUserRepository provides the user repository
func ProvideUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewGormUserRepository(db)
}

// Command Handlers Providers
func ProvideCreateUserHandler(repo domain.UserRepository) *command.CreateUserHandler {
	return command.NewCreateUserHandler(repo)
}

func ProvideUpdateUserHandler(repo domain.UserRepository) *command.UpdateUserHandler {
	return command.NewUpdateUserHandler(repo)
}

func ProvideDeleteUserHandler(repo domain.UserRepository) *command.DeleteUserHandler {
	return command.NewDeleteUserHandler(repo)
}

// Query Handlers Providers
func ProvideGetUserHandler(repo domain.UserRepository) *query.GetUserHandler {
	return query.NewGetUserHandler(repo)
}

func ProvideListUsersHandler(repo domain.UserRepository) *query.ListUsersHandler {
	return query.NewListUsersHandler(repo)
}

func ProvideTopBuyersHandler(repo domain.UserRepository, c *cache.Cache) *query.TopBuyersHandler {
	return query.NewTopBuyersHandler(repo, c)
}

// Wire sets
var RepositorySet = wire.NewSet(
	ProvideUserRepository,
)

var CommandHandlerSet = wire.NewSet(
	ProvideCreateUserHandler,
	ProvideUpdateUserHandler,
	ProvideDeleteUserHandler,
)

var QueryHandlerSet = wire.NewSet(
	ProvideGetUserHandler,
	ProvideListUsersHandler,
	ProvideTopBuyersHandler,
)

var AllHandlersSet = wire.NewSet(
	RepositorySet,
	CommandHandlerSet,
	QueryHandlerSet,
)

// InitializeHTTPHandler initializes the HTTP handler with all dependencies
func InitializeHTTPHandler(db *gorm.DB, c *cache.Cache) (*http.UserHandler, error) {
	wire.Build(
		AllHandlersSet,
		http.NewUserHandlerWithDI,
	)
	return nil, nil
}
