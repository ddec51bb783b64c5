package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ordersperf/orders-api/internal/order/domain"
)

// GormOrderRepository implements OrderRepository using GORM
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// AutoMigrate creates the orders and order_products tables. The user
// and product tables must be migrated first so the foreign keys can be
// created.
func (r *GormOrderRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Order{}, &domain.OrderProduct{})
}

// Create inserts the order and its line items
func (r *GormOrderRepository) Create(order *domain.Order) error {
	if err := r.db.Create(order).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}
	return nil
}

// FindByID retrieves an order with its line items eagerly loaded, so
// callers get the full order in one round trip.
func (r *GormOrderRepository) FindByID(id uint) (*domain.Order, error) {
	var order domain.Order
	if err := r.db.Preload("OrderProducts").First(&order, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find order: %w", err)
	}
	return &order, nil
}

// Delete removes an order by ID; line items are removed by the cascade
// rule. Absent ids are a silent no-op.
func (r *GormOrderRepository) Delete(id uint) error {
	if err := r.db.Delete(&domain.Order{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete order: %w", err)
	}
	return nil
}

// Count returns the total number of orders
func (r *GormOrderRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Order{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count orders: %w", err)
	}
	return count, nil
}
