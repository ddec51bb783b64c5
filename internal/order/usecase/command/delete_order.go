package command

import (
	"fmt"

	"github.com/ordersperf/orders-api/internal/order/domain"
)

// DeleteOrderCommand represents the command to delete an order
type DeleteOrderCommand struct {
	ID uint
}

// DeleteOrderHandler handles order deletion command
type DeleteOrderHandler struct {
	repo domain.OrderRepository
}

// NewDeleteOrderHandler creates a new delete order handler
func NewDeleteOrderHandler(repo domain.OrderRepository) *DeleteOrderHandler {
	return &DeleteOrderHandler{repo: repo}
}

// Handle executes the delete order command. Line items are removed by
// the cascade rule.
func (h *DeleteOrderHandler) Handle(cmd DeleteOrderCommand) error {
	if _, err := h.repo.FindByID(cmd.ID); err != nil {
		return err
	}

	if err := h.repo.Delete(cmd.ID); err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}

	return nil
}
