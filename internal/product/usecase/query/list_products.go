package query

import (
	"fmt"

	"github.com/ordersperf/orders-api/internal/product/domain"
	"github.com/ordersperf/orders-api/pkg/pagination"
)

// ListProductsQuery represents the query to list products page by page
type ListProductsQuery struct {
	Filter pagination.Filter
}

// ListProductsHandler handles list products query
type ListProductsHandler struct {
	repo domain.ProductRepository
}

// NewListProductsHandler creates a new list products handler
func NewListProductsHandler(repo domain.ProductRepository) *ListProductsHandler {
	return &ListProductsHandler{repo: repo}
}

// Handle executes the list products query
func (h *ListProductsHandler) Handle(q ListProductsQuery) (pagination.Response[domain.Product], error) {
	var empty pagination.Response[domain.Product]

	total, err := h.repo.Count()
	if err != nil {
		return empty, fmt.Errorf("failed to count products: %w", err)
	}

	products, err := h.repo.FindAll(q.Filter.PageSize, q.Filter.Offset())
	if err != nil {
		return empty, fmt.Errorf("failed to list products: %w", err)
	}

	return pagination.NewResponse(products, total, q.Filter.PageNumber, q.Filter.PageSize), nil
}
