package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ordersperf/orders-api/internal/product/domain"
)

// GormProductRepository implements ProductRepository using GORM
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM product repository
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

func (r *GormProductRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.Product{})
}

// Create inserts a new product into the database
func (r *GormProductRepository) Create(product *domain.Product) error {
	if err := r.db.Create(product).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}
	return nil
}

// FindByID retrieves a product by ID
func (r *GormProductRepository) FindByID(id uint) (*domain.Product, error) {
	var product domain.Product
	if err := r.db.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find product: %w", err)
	}
	return &product, nil
}

// FindAll retrieves products with pagination
func (r *GormProductRepository) FindAll(limit, offset int) ([]domain.Product, error) {
	var products []domain.Product
	query := r.db.Order("id ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&products).Error; err != nil {
		return nil, fmt.Errorf("failed to find products: %w", err)
	}
	return products, nil
}

// Update replaces the stored product with the given one
func (r *GormProductRepository) Update(product *domain.Product) error {
	if err := r.db.Save(product).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	return nil
}

// Delete removes a product by ID; absent ids are a silent no-op
func (r *GormProductRepository) Delete(id uint) error {
	if err := r.db.Delete(&domain.Product{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	return nil
}

// Count returns the total number of products
func (r *GormProductRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Product{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count products: %w", err)
	}
	return count, nil
}

// BestSellers computes units sold and revenue per product over orders
// placed within [start, end], both bounds inclusive. Grouping, sums,
// sort and paging run inside the database so only the requested page
// is materialized.
func (r *GormProductRepository) BestSellers(start, end time.Time, limit, offset int) ([]domain.ProductSalesReport, int64, error) {
	base := func() *gorm.DB {
		return r.db.Table("order_products").
			Joins("JOIN products ON products.id = order_products.product_id").
			Joins("JOIN orders ON orders.id = order_products.order_id").
			Where("orders.date_added >= ? AND orders.date_added <= ?", start, end)
	}

	var total int64
	if err := base().Distinct("products.name").Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count best sellers: %w", err)
	}

	var report []domain.ProductSalesReport
	err := base().
		Select("products.name AS product_name, SUM(order_products.quantity) AS total_units_sold, SUM(order_products.quantity * order_products.price) AS total_revenue").
		Group("products.name").
		Order("total_revenue DESC, total_units_sold DESC").
		Limit(limit).
		Offset(offset).
		Scan(&report).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query best sellers: %w", err)
	}

	return report, total, nil
}
