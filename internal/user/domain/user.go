package domain

import (
	"errors"
	"time"
)

// ErrNotFound is returned when a user does not exist.
var ErrNotFound = errors.New("user not found")

// ErrHasOrders is returned when a user cannot be deleted because orders
// still reference it.
var ErrHasOrders = errors.New("user has existing orders")

// User represents the user entity (domain model)
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Name      string    `json:"name" gorm:"not null"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName specifies the table name
func (User) TableName() string {
	return "users"
}

// TopBuyer is a report row: a user's total spend over the report window.
// Computed on read, never persisted.
type TopBuyer struct {
	UserID          uint    `json:"user_id"`
	UserName        string  `json:"user_name"`
	TotalOrderValue float64 `json:"total_order_value"`
}

// UserRepository defines the contract for user data access
type UserRepository interface {
	Create(user *User) error
	FindByID(id uint) (*User, error)
	FindAll(limit, offset int) ([]User, error)
	Update(user *User) error
	// Delete removes the user. Deleting an id that does not exist is a
	// silent no-op; deleting a user that orders still reference returns
	// ErrHasOrders.
	Delete(id uint) error
	Count() (int64, error)

	// TopBuyers aggregates, inside the query engine, each user's total
	// order value over orders placed at or after cutoff, keeps users
	// whose total exceeds minSpend, and returns one page sorted by
	// total descending together with the total row count.
	TopBuyers(cutoff time.Time, minSpend float64, limit, offset int) ([]TopBuyer, int64, error)
}
