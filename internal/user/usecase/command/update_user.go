package command

import (
	"fmt"
	"time"

	"github.com/ordersperf/orders-api/internal/user/domain"
)

// UpdateUserCommand represents the command to update a user
type UpdateUserCommand struct {
	ID   uint
	Name string
}

// UpdateUserHandler handles user update command
type UpdateUserHandler struct {
	repo domain.UserRepository
}

// NewUpdateUserHandler creates a new update user handler
func NewUpdateUserHandler(repo domain.UserRepository) *UpdateUserHandler {
	return &UpdateUserHandler{repo: repo}
}

// Handle executes the update user command
func (h *UpdateUserHandler) Handle(cmd UpdateUserCommand) (*domain.User, error) {
	if cmd.Name == "" {
		return nil, fmt.Errorf("name is required")
	}

	user, err := h.repo.FindByID(cmd.ID)
	if err != nil {
		return nil, err
	}

	user.Name = cmd.Name
	user.UpdatedAt = time.Now()

	if err := h.repo.Update(user); err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}

	return user, nil
}
