package domain

import (
	"errors"
	"time"

	productdomain "github.com/ordersperf/orders-api/internal/product/domain"
	userdomain "github.com/ordersperf/orders-api/internal/user/domain"
)

// ErrNotFound is returned when an order does not exist.
var ErrNotFound = errors.New("order not found")

// Order represents the order entity. An order belongs to a user and
// owns its line items: deleting the order deletes the line items, while
// deleting a user is blocked as long as orders reference it.
type Order struct {
	ID            uint             `json:"id" gorm:"primaryKey"`
	UserID        uint             `json:"user_id" gorm:"not null;index"`
	User          *userdomain.User `json:"-" gorm:"constraint:OnDelete:RESTRICT"`
	DateAdded     time.Time        `json:"date_added" gorm:"not null;index"`
	OrderProducts []OrderProduct   `json:"order_products" gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
	CreatedAt     time.Time        `json:"created_at"`
	UpdatedAt     time.Time        `json:"updated_at"`
}

// TableName specifies the table name
func (Order) TableName() string {
	return "orders"
}

// OrderProduct is one line item of an order. The composite primary key
// (OrderID, ProductID) makes a product appear at most once per order.
// Price is the price at time of purchase, independent of the product's
// current price.
type OrderProduct struct {
	OrderID   uint                   `json:"order_id" gorm:"primaryKey;autoIncrement:false"`
	ProductID uint                   `json:"product_id" gorm:"primaryKey;autoIncrement:false"`
	Product   *productdomain.Product `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	Quantity  int                    `json:"quantity" gorm:"not null"`
	Price     float64                `json:"price" gorm:"not null"`
}

// TableName specifies the table name
func (OrderProduct) TableName() string {
	return "order_products"
}

// OrderRepository defines the contract for order data access
type OrderRepository interface {
	// Create inserts the order together with its line items.
	Create(order *Order) error
	// FindByID eagerly loads the order's line items so callers get the
	// full order in one round trip.
	FindByID(id uint) (*Order, error)
	// Delete removes the order; line items go with it. Deleting an id
	// that does not exist is a silent no-op.
	Delete(id uint) error
	Count() (int64, error)
}
