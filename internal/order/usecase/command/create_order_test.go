package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordersperf/orders-api/internal/order/domain"
)

type stubOrderRepository struct {
	created []*domain.Order
}

func (s *stubOrderRepository) Create(order *domain.Order) error {
	order.ID = uint(len(s.created) + 1)
	s.created = append(s.created, order)
	return nil
}

func (s *stubOrderRepository) FindByID(uint) (*domain.Order, error) {
	return nil, domain.ErrNotFound
}

func (s *stubOrderRepository) Delete(uint) error     { return nil }
func (s *stubOrderRepository) Count() (int64, error) { return 0, nil }

func TestCreateOrder(t *testing.T) {
	repo := &stubOrderRepository{}
	h := NewCreateOrderHandler(repo)

	placed := time.Date(2026, 8, 1, 10, 0, 0, 0, time.UTC)
	order, err := h.Handle(CreateOrderCommand{
		UserID:    1,
		DateAdded: placed,
		Items: []LineItem{
			{ProductID: 1, Quantity: 2, Price: 10},
			{ProductID: 2, Quantity: 1, Price: 5},
		},
	})
	require.NoError(t, err)

	assert.NotZero(t, order.ID)
	assert.Equal(t, placed, order.DateAdded)
	require.Len(t, order.OrderProducts, 2)
	assert.Equal(t, uint(1), order.OrderProducts[0].ProductID)
	assert.Equal(t, 2, order.OrderProducts[0].Quantity)
}

func TestCreateOrderDefaultsDateAdded(t *testing.T) {
	repo := &stubOrderRepository{}
	h := NewCreateOrderHandler(repo)

	before := time.Now().UTC()
	order, err := h.Handle(CreateOrderCommand{
		UserID: 1,
		Items:  []LineItem{{ProductID: 1, Quantity: 1, Price: 10}},
	})
	require.NoError(t, err)

	assert.False(t, order.DateAdded.Before(before))
}

func TestCreateOrderValidation(t *testing.T) {
	tests := []struct {
		name string
		cmd  CreateOrderCommand
	}{
		{"missing user", CreateOrderCommand{
			Items: []LineItem{{ProductID: 1, Quantity: 1, Price: 10}},
		}},
		{"no line items", CreateOrderCommand{UserID: 1}},
		{"missing product id", CreateOrderCommand{
			UserID: 1,
			Items:  []LineItem{{Quantity: 1, Price: 10}},
		}},
		{"negative quantity", CreateOrderCommand{
			UserID: 1,
			Items:  []LineItem{{ProductID: 1, Quantity: -1, Price: 10}},
		}},
		{"negative price", CreateOrderCommand{
			UserID: 1,
			Items:  []LineItem{{ProductID: 1, Quantity: 1, Price: -10}},
		}},
		{"duplicate product", CreateOrderCommand{
			UserID: 1,
			Items: []LineItem{
				{ProductID: 1, Quantity: 1, Price: 10},
				{ProductID: 1, Quantity: 2, Price: 10},
			},
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &stubOrderRepository{}
			h := NewCreateOrderHandler(repo)

			_, err := h.Handle(tt.cmd)
			assert.Error(t, err)
			assert.Empty(t, repo.created)
		})
	}
}
