package command

import (
	"github.com/ordersperf/orders-api/internal/user/domain"
)

// DeleteUserCommand represents the command to delete a user
type DeleteUserCommand struct {
	ID uint
}

// DeleteUserHandler handles user deletion command
type DeleteUserHandler struct {
	repo domain.UserRepository
}

// NewDeleteUserHandler creates a new delete user handler
func NewDeleteUserHandler(repo domain.UserRepository) *DeleteUserHandler {
	return &DeleteUserHandler{repo: repo}
}

// Handle executes the delete user command. An unknown id surfaces
// ErrNotFound; a user that orders still reference surfaces
// ErrHasOrders from the repository.
func (h *DeleteUserHandler) Handle(cmd DeleteUserCommand) error {
	if _, err := h.repo.FindByID(cmd.ID); err != nil {
		return err
	}

	return h.repo.Delete(cmd.ID)
}
