package command

import (
	"fmt"
	"time"

	"github.com/ordersperf/orders-api/internal/order/domain"
)

// LineItem is one submitted order line: a product, how many units, and
// the price at time of purchase.
type LineItem struct {
	ProductID uint
	Quantity  int
	Price     float64
}

// CreateOrderCommand represents the command to create an order with its
// line items. A zero DateAdded defaults to now.
type CreateOrderCommand struct {
	UserID    uint
	DateAdded time.Time
	Items     []LineItem
}

// CreateOrderHandler handles order creation command
type CreateOrderHandler struct {
	repo domain.OrderRepository
}

// NewCreateOrderHandler creates a new create order handler
func NewCreateOrderHandler(repo domain.OrderRepository) *CreateOrderHandler {
	return &CreateOrderHandler{repo: repo}
}

// Handle executes the create order command
func (h *CreateOrderHandler) Handle(cmd CreateOrderCommand) (*domain.Order, error) {
	// Validation
	if cmd.UserID == 0 {
		return nil, fmt.Errorf("user id is required")
	}
	if len(cmd.Items) == 0 {
		return nil, fmt.Errorf("order must have at least one line item")
	}

	seen := make(map[uint]bool, len(cmd.Items))
	for _, item := range cmd.Items {
		if item.ProductID == 0 {
			return nil, fmt.Errorf("product id is required on every line item")
		}
		if item.Quantity < 0 {
			return nil, fmt.Errorf("quantity cannot be negative")
		}
		if item.Price < 0 {
			return nil, fmt.Errorf("price cannot be negative")
		}
		// A product appears at most once per order
		if seen[item.ProductID] {
			return nil, fmt.Errorf("duplicate product %d in order", item.ProductID)
		}
		seen[item.ProductID] = true
	}

	dateAdded := cmd.DateAdded
	if dateAdded.IsZero() {
		dateAdded = time.Now().UTC()
	}

	order := &domain.Order{
		UserID:    cmd.UserID,
		DateAdded: dateAdded,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
	for _, item := range cmd.Items {
		order.OrderProducts = append(order.OrderProducts, domain.OrderProduct{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	if err := h.repo.Create(order); err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	return order, nil
}
