package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/ordersperf/orders-api/internal/middleware"
	"github.com/ordersperf/orders-api/internal/user/domain"
	"github.com/ordersperf/orders-api/internal/user/usecase/command"
	"github.com/ordersperf/orders-api/internal/user/usecase/query"
	"github.com/ordersperf/orders-api/pkg/logger"
	"github.com/ordersperf/orders-api/pkg/pagination"
)

// UserHandler handles HTTP requests for users using CQRS pattern
type UserHandler struct {
	// Command handlers
	createHandler *command.CreateUserHandler
	updateHandler *command.UpdateUserHandler
	deleteHandler *command.DeleteUserHandler

	// Query handlers
	getUserHandler   *query.GetUserHandler
	listHandler      *query.ListUsersHandler
	topBuyersHandler *query.TopBuyersHandler
}

// NewUserHandler creates a new user handler (manual DI)
func NewUserHandler(repo domain.UserRepository, topBuyersHandler *query.TopBuyersHandler) *UserHandler {
	return NewUserHandlerWithDI(
		command.NewCreateUserHandler(repo),
		command.NewUpdateUserHandler(repo),
		command.NewDeleteUserHandler(repo),
		query.NewGetUserHandler(repo),
		query.NewListUsersHandler(repo),
		topBuyersHandler,
	)
}

// NewUserHandlerWithDI creates a new user handler using dependency injection
// This is used by Wire for automatic dependency injection
func NewUserHandlerWithDI(
	createHandler *command.CreateUserHandler,
	updateHandler *command.UpdateUserHandler,
	deleteHandler *command.DeleteUserHandler,
	getUserHandler *query.GetUserHandler,
	listHandler *query.ListUsersHandler,
	topBuyersHandler *query.TopBuyersHandler,
) *UserHandler {
	return &UserHandler{
		createHandler:    createHandler,
		updateHandler:    updateHandler,
		deleteHandler:    deleteHandler,
		getUserHandler:   getUserHandler,
		listHandler:      listHandler,
		topBuyersHandler: topBuyersHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// TopUsersResponse carries the report page together with the measured
// server-side computation latency.
type TopUsersResponse struct {
	ExecutionTimeMs int64                                 `json:"execution_time_ms"`
	Data            pagination.Response[domain.TopBuyer] `json:"data"`
}

func (h *UserHandler) RegisterRoutes(router *mux.Router) {
	// top-users before {id} so the literal path wins
	router.HandleFunc("/api/users/top-users", middleware.Metrics("/api/users/top-users", h.TopUsers)).Methods("GET")
	router.HandleFunc("/api/users", middleware.Metrics("/api/users", h.ListUsers)).Methods("GET")
	router.HandleFunc("/api/users/{id}", middleware.Metrics("/api/users/{id}", h.GetUser)).Methods("GET")
	router.HandleFunc("/api/users", middleware.Metrics("/api/users", h.CreateUser)).Methods("POST")
	router.HandleFunc("/api/users/{id}", middleware.Metrics("/api/users/{id}", h.UpdateUser)).Methods("PUT")
	router.HandleFunc("/api/users/{id}", middleware.Metrics("/api/users/{id}", h.DeleteUser)).Methods("DELETE")
}

// TopUsers handles GET /api/users/top-users
func (h *UserHandler) TopUsers(w http.ResponseWriter, r *http.Request) {
	start := time.Now()

	q := query.TopBuyersQuery{Filter: parseFilter(r)}

	page, err := h.topBuyersHandler.Handle(q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to query top buyers")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to query top buyers",
		})
		return
	}

	elapsed := time.Since(start)
	logger.Logger.Info().
		Int64("duration_ms", elapsed.Milliseconds()).
		Int("page", q.Filter.PageNumber).
		Int("page_size", q.Filter.PageSize).
		Msg("Top buyers report computed")

	respondJSON(w, http.StatusOK, TopUsersResponse{
		ExecutionTimeMs: elapsed.Milliseconds(),
		Data:            page,
	})
}

// CreateUser handles POST /api/users
func (h *UserHandler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	user, err := h.createHandler.Handle(command.CreateUserCommand{Name: req.Name})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create user")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/users/%d", user.ID))
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "User created successfully",
		Data:    user,
	})
}

// ListUsers handles GET /api/users
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	page, err := h.listHandler.Handle(query.ListUsersQuery{Filter: parseFilter(r)})
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list users")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list users",
		})
		return
	}

	respondJSON(w, http.StatusOK, page)
}

// GetUser handles GET /api/users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	user, err := h.getUserHandler.Handle(query.GetUserQuery{ID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "User not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    user,
	})
}

// UpdateUser handles PUT /api/users/{id}
func (h *UserHandler) UpdateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req struct {
		Name string `json:"name"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	user, err := h.updateHandler.Handle(command.UpdateUserCommand{ID: id, Name: req.Name})
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "User not found",
			})
			return
		}
		logger.Logger.Error().Err(err).Msg("Failed to update user")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "User updated successfully",
		Data:    user,
	})
}

// DeleteUser handles DELETE /api/users/{id}
func (h *UserHandler) DeleteUser(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteUserCommand{ID: id}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "User not found",
			})
			return
		}
		if errors.Is(err, domain.ErrHasOrders) {
			respondJSON(w, http.StatusConflict, Response{
				Success: false,
				Error:   "User has existing orders",
			})
			return
		}
		logger.Logger.Error().Err(err).Msg("Failed to delete user")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to delete user",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "User deleted successfully",
	})
}

// parseID extracts the {id} path variable, answering 400 on garbage
func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid user ID",
		})
		return 0, false
	}
	return uint(id), true
}

// parseFilter reads pageNumber/pageSize query params, falling back to defaults
func parseFilter(r *http.Request) pagination.Filter {
	f := pagination.NewFilter()
	if v, err := strconv.Atoi(r.URL.Query().Get("pageNumber")); err == nil && v > 0 {
		f.PageNumber = v
	}
	if v, err := strconv.Atoi(r.URL.Query().Get("pageSize")); err == nil && v > 0 {
		f.PageSize = v
	}
	return f
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
