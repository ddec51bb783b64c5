package command

import (
	"fmt"
	"time"

	"github.com/ordersperf/orders-api/internal/user/domain"
)

// CreateUserCommand represents the command to create a user
type CreateUserCommand struct {
	Name string
}

// CreateUserHandler handles user creation command
type CreateUserHandler struct {
	repo domain.UserRepository
}

// NewCreateUserHandler creates a new create user handler
func NewCreateUserHandler(repo domain.UserRepository) *CreateUserHandler {
	return &CreateUserHandler{repo: repo}
}

// Handle executes the create user command
func (h *CreateUserHandler) Handle(cmd CreateUserCommand) (*domain.User, error) {
	// Validation
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	user := &domain.User{
		Name:      cmd.Name,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := h.repo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}
