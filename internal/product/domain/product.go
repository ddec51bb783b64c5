package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a product does not exist.
var ErrNotFound = errors.New("product not found")

// Product represents the product entity
type Product struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	Price     float64   `json:"price" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (Product) TableName() string {
	return "products"
}

// ProductSalesReport is a report row: units sold and revenue for one
// product over the report window. Computed on read, never persisted.
type ProductSalesReport struct {
	ProductName    string  `json:"product_name"`
	TotalUnitsSold int64   `json:"total_units_sold"`
	TotalRevenue   float64 `json:"total_revenue"`
}

// ProductRepository defines the contract for product data access
type ProductRepository interface {
	Create(product *Product) error
	FindByID(id uint) (*Product, error)
	FindAll(limit, offset int) ([]Product, error)
	Update(product *Product) error
	// Delete removes the product. Deleting an id that does not exist is
	// a silent no-op. Line items referencing the product are removed by
	// the cascade rule.
	Delete(id uint) error
	Count() (int64, error)

	// BestSellers aggregates, inside the query engine, units sold and
	// revenue per product over orders placed within [start, end], and
	// returns one page sorted by revenue descending (units descending
	// as tie-break) together with the total row count.
	BestSellers(start, end time.Time, limit, offset int) ([]ProductSalesReport, int64, error)
}
