package command

import (
	"fmt"
	"time"

	"github.com/ordersperf/orders-api/internal/product/domain"
)

// CreateProductCommand represents the command to create a new product
type CreateProductCommand struct {
	Name  string
	Price float64
}

// CreateProductHandler handles product creation command
type CreateProductHandler struct {
	repo domain.ProductRepository
}

// NewCreateProductHandler creates a new create product handler
func NewCreateProductHandler(repo domain.ProductRepository) *CreateProductHandler {
	return &CreateProductHandler{repo: repo}
}

// Handle executes the create product command
func (h *CreateProductHandler) Handle(cmd CreateProductCommand) (*domain.Product, error) {
	// Validation
	if cmd.Name == "" {
		return nil, fmt.Errorf("product name is required")
	}
	if cmd.Price <= 0 {
		return nil, fmt.Errorf("price must be greater than zero")
	}

	product := &domain.Product{
		Name:      cmd.Name,
		Price:     cmd.Price,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.repo.Create(product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	return product, nil
}
