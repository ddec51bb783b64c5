package command

import (
	"fmt"

	"github.com/ordersperf/orders-api/internal/product/domain"
)

// DeleteProductCommand represents the command to delete a product
type DeleteProductCommand struct {
	ID uint
}

// DeleteProductHandler handles product deletion command
type DeleteProductHandler struct {
	repo domain.ProductRepository
}

// NewDeleteProductHandler creates a new delete product handler
func NewDeleteProductHandler(repo domain.ProductRepository) *DeleteProductHandler {
	return &DeleteProductHandler{repo: repo}
}

// Handle executes the delete product command. Deleting an unknown id
// surfaces ErrNotFound to the caller even though the repository delete
// itself would be a no-op.
func (h *DeleteProductHandler) Handle(cmd DeleteProductCommand) error {
	if _, err := h.repo.FindByID(cmd.ID); err != nil {
		return err
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}
