package repository

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/ordersperf/orders-api/internal/user/domain"
)

// GormUserRepository implements UserRepository using GORM
type GormUserRepository struct {
	db *gorm.DB
}

// NewGormUserRepository creates a new GORM user repository
func NewGormUserRepository(db *gorm.DB) *GormUserRepository {
	return &GormUserRepository{db: db}
}

func (r *GormUserRepository) AutoMigrate() error {
	return r.db.AutoMigrate(&domain.User{})
}

// Create inserts a new user into the database
func (r *GormUserRepository) Create(user *domain.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// FindByID retrieves a user by ID
func (r *GormUserRepository) FindByID(id uint) (*domain.User, error) {
	var user domain.User
	if err := r.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return &user, nil
}

// FindAll retrieves users with pagination
func (r *GormUserRepository) FindAll(limit, offset int) ([]domain.User, error) {
	var users []domain.User
	query := r.db.Order("id ASC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to find users: %w", err)
	}
	return users, nil
}

// Update replaces the stored user with the given one
func (r *GormUserRepository) Update(user *domain.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return fmt.Errorf("failed to update user: %w", err)
	}
	return nil
}

// Delete removes a user by ID. Absent ids are a silent no-op; a user
// that orders still reference is not deleted.
func (r *GormUserRepository) Delete(id uint) error {
	var referencing int64
	if err := r.db.Table("orders").Where("user_id = ?", id).Count(&referencing).Error; err != nil {
		return fmt.Errorf("failed to check user orders: %w", err)
	}
	if referencing > 0 {
		return domain.ErrHasOrders
	}

	if err := r.db.Delete(&domain.User{}, id).Error; err != nil {
		return fmt.Errorf("failed to delete user: %w", err)
	}
	return nil
}

// Count returns the total number of users
func (r *GormUserRepository) Count() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.User{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// TopBuyers computes each user's total order value over orders placed
// at or after cutoff and keeps users whose total exceeds minSpend. The
// join, grouping, filter, sort and paging all run inside the database
// so only the requested page is materialized.
func (r *GormUserRepository) TopBuyers(cutoff time.Time, minSpend float64, limit, offset int) ([]domain.TopBuyer, int64, error) {
	base := func() *gorm.DB {
		return r.db.Table("users").
			Joins("JOIN orders ON orders.user_id = users.id").
			Joins("JOIN order_products ON order_products.order_id = orders.id").
			Where("orders.date_added >= ?", cutoff).
			Group("users.id, users.name").
			Having("SUM(order_products.quantity * order_products.price) > ?", minSpend)
	}

	var total int64
	if err := r.db.Table("(?) AS top_buyers", base().Select("users.id")).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count top buyers: %w", err)
	}

	var buyers []domain.TopBuyer
	err := base().
		Select("users.id AS user_id, users.name AS user_name, SUM(order_products.quantity * order_products.price) AS total_order_value").
		Order("total_order_value DESC").
		Limit(limit).
		Offset(offset).
		Scan(&buyers).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query top buyers: %w", err)
	}

	return buyers, total, nil
}
