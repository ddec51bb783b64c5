package command

import (
	"fmt"
	"time"

	"github.com/ordersperf/orders-api/internal/product/domain"
)

// UpdateProductCommand represents the command to update a product.
// The stored product is replaced whole by the submitted fields.
type UpdateProductCommand struct {
	ID    uint
	Name  string
	Price float64
}

// UpdateProductHandler handles product update command
type UpdateProductHandler struct {
	repo domain.ProductRepository
}

// NewUpdateProductHandler creates a new update product handler
func NewUpdateProductHandler(repo domain.ProductRepository) *UpdateProductHandler {
	return &UpdateProductHandler{repo: repo}
}

// Handle executes the update product command
func (h *UpdateProductHandler) Handle(cmd UpdateProductCommand) (*domain.Product, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.Price <= 0 {
		return nil, fmt.Errorf("price must be greater than zero")
	}

	product, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	product.Name = cmd.Name
	product.Price = cmd.Price
	product.UpdatedAt = time.Now()

	if err := h.repo.Update(product); err != nil {
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	return product, nil
}
