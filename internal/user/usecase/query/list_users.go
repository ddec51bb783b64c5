package query

import (
	"fmt"

	"github.com/ordersperf/orders-api/internal/user/domain"
	"github.com/ordersperf/orders-api/pkg/pagination"
)

// ListUsersQuery represents the query to list users page by page
type ListUsersQuery struct {
	Filter pagination.Filter
}

// ListUsersHandler handles list users query
type ListUsersHandler struct {
	repo domain.UserRepository
}

// NewListUsersHandler creates a new list users handler
func NewListUsersHandler(repo domain.UserRepository) *ListUsersHandler {
	return &ListUsersHandler{repo: repo}
}

// Handle executes the list users query
func (h *ListUsersHandler) Handle(q ListUsersQuery) (pagination.Response[domain.User], error) {
	var empty pagination.Response[domain.User]

	total, err := h.repo.Count()
	if err != nil {
		return empty, fmt.Errorf("failed to count users: %w", err)
	}

	users, err := h.repo.FindAll(q.Filter.PageSize, q.Filter.Offset())
	if err != nil {
		return empty, fmt.Errorf("failed to list users: %w", err)
	}

	return pagination.NewResponse(users, total, q.Filter.PageNumber, q.Filter.PageSize), nil
}
