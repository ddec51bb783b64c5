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
	"github.com/ordersperf/orders-api/internal/order/domain"
	"github.com/ordersperf/orders-api/internal/order/usecase/command"
	"github.com/ordersperf/orders-api/internal/order/usecase/query"
	"github.com/ordersperf/orders-api/pkg/logger"
)

// OrderHandler handles HTTP requests for orders using CQRS pattern
type OrderHandler struct {
	createHandler   *command.CreateOrderHandler
	deleteHandler   *command.DeleteOrderHandler
	getOrderHandler *query.GetOrderHandler
}

// NewOrderHandler creates a new order handler (manual DI)
func NewOrderHandler(repo domain.OrderRepository) *OrderHandler {
	return NewOrderHandlerWithDI(
		command.NewCreateOrderHandler(repo),
		command.NewDeleteOrderHandler(repo),
		query.NewGetOrderHandler(repo),
	)
}

// NewOrderHandlerWithDI creates a new order handler using dependency injection
// This is used by Wire for automatic dependency injection
func NewOrderHandlerWithDI(
	createHandler *command.CreateOrderHandler,
	deleteHandler *command.DeleteOrderHandler,
	getOrderHandler *query.GetOrderHandler,
) *OrderHandler {
	return &OrderHandler{
		createHandler:   createHandler,
		deleteHandler:   deleteHandler,
		getOrderHandler: getOrderHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *OrderHandler) RegisterRoutes(router *mux.Router) {
	router.HandleFunc("/api/orders/{id}", middleware.Metrics("/api/orders/{id}", h.GetOrder)).Methods("GET")
	router.HandleFunc("/api/orders", middleware.Metrics("/api/orders", h.CreateOrder)).Methods("POST")
	router.HandleFunc("/api/orders/{id}", middleware.Metrics("/api/orders/{id}", h.DeleteOrder)).Methods("DELETE")
}

// GetOrder handles GET /api/orders/{id}; the order comes back with its
// line items embedded.
func (h *OrderHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	order, err := h.getOrderHandler.Handle(query.GetOrderQuery{ID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Order not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    order,
	})
}

// CreateOrder handles POST /api/orders
func (h *OrderHandler) CreateOrder(w http.ResponseWriter, r *http.Request) {
	var req struct {
		UserID        uint      `json:"user_id"`
		DateAdded     time.Time `json:"date_added"`
		OrderProducts []struct {
			ProductID uint    `json:"product_id"`
			Quantity  int     `json:"quantity"`
			Price     float64 `json:"price"`
		} `json:"order_products"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateOrderCommand{
		UserID:    req.UserID,
		DateAdded: req.DateAdded,
	}
	for _, item := range req.OrderProducts {
		cmd.Items = append(cmd.Items, command.LineItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Price:     item.Price,
		})
	}

	order, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create order")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/orders/%d", order.ID))
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Order created successfully",
		Data:    order,
	})
}

// DeleteOrder handles DELETE /api/orders/{id}
func (h *OrderHandler) DeleteOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteOrderCommand{ID: id}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Order not found",
			})
			return
		}
		logger.Logger.Error().Err(err).Msg("Failed to delete order")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to delete order",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Order deleted successfully",
	})
}

// parseID extracts the {id} path variable, answering 400 on garbage
func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid order ID",
		})
		return 0, false
	}
	return uint(id), true
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
