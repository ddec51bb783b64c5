package http

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/ordersperf/orders-api/internal/middleware"
	"github.com/ordersperf/orders-api/internal/product/domain"
	"github.com/ordersperf/orders-api/internal/product/usecase/command"
	"github.com/ordersperf/orders-api/internal/product/usecase/query"
	"github.com/ordersperf/orders-api/pkg/logger"
	"github.com/ordersperf/orders-api/pkg/pagination"
)

// ProductHandler handles HTTP requests for products using CQRS pattern
type ProductHandler struct {
	// Command handlers
	createHandler *command.CreateProductHandler
	updateHandler *command.UpdateProductHandler
	deleteHandler *command.DeleteProductHandler

	// Query handlers
	getProductHandler  *query.GetProductHandler
	listHandler        *query.ListProductsHandler
	bestSellersHandler *query.BestSellersHandler
}

// NewProductHandler creates a new product handler (manual DI)
func NewProductHandler(repo domain.ProductRepository) *ProductHandler {
	return NewProductHandlerWithDI(
		command.NewCreateProductHandler(repo),
		command.NewUpdateProductHandler(repo),
		command.NewDeleteProductHandler(repo),
		query.NewGetProductHandler(repo),
		query.NewListProductsHandler(repo),
		query.NewBestSellersHandler(repo),
	)
}

// NewProductHandlerWithDI creates a new product handler using dependency injection
// This is used by Wire for automatic dependency injection
func NewProductHandlerWithDI(
	createHandler *command.CreateProductHandler,
	updateHandler *command.UpdateProductHandler,
	deleteHandler *command.DeleteProductHandler,
	getProductHandler *query.GetProductHandler,
	listHandler *query.ListProductsHandler,
	bestSellersHandler *query.BestSellersHandler,
) *ProductHandler {
	return &ProductHandler{
		createHandler:      createHandler,
		updateHandler:      updateHandler,
		deleteHandler:      deleteHandler,
		getProductHandler:  getProductHandler,
		listHandler:        listHandler,
		bestSellersHandler: bestSellersHandler,
	}
}

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

func (h *ProductHandler) RegisterRoutes(router *mux.Router) {
	// bestsellers before {id} so the literal path wins
	router.HandleFunc("/api/products/bestsellers", middleware.Metrics("/api/products/bestsellers", h.BestSellers)).Methods("GET")
	router.HandleFunc("/api/products", middleware.Metrics("/api/products", h.ListProducts)).Methods("GET")
	router.HandleFunc("/api/products/{id}", middleware.Metrics("/api/products/{id}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/api/products", middleware.Metrics("/api/products", h.CreateProduct)).Methods("POST")
	router.HandleFunc("/api/products/{id}", middleware.Metrics("/api/products/{id}", h.UpdateProduct)).Methods("PUT")
	router.HandleFunc("/api/products/{id}", middleware.Metrics("/api/products/{id}", h.DeleteProduct)).Methods("DELETE")
}

// CreateProduct handles POST /api/products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.CreateProductCommand{
		Name:  req.Name,
		Price: req.Price,
	}

	product, err := h.createHandler.Handle(cmd)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to create product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	w.Header().Set("Location", fmt.Sprintf("/api/products/%d", product.ID))
	respondJSON(w, http.StatusCreated, Response{
		Success: true,
		Message: "Product created successfully",
		Data:    product,
	})
}

// ListProducts handles GET /api/products
func (h *ProductHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	q := query.ListProductsQuery{Filter: parseFilter(r)}

	page, err := h.listHandler.Handle(q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to list products")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to list products",
		})
		return
	}

	respondJSON(w, http.StatusOK, page)
}

// GetProduct handles GET /api/products/{id}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	product, err := h.getProductHandler.Handle(query.GetProductQuery{ID: id})
	if err != nil {
		respondJSON(w, http.StatusNotFound, Response{
			Success: false,
			Error:   "Product not found",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Data:    product,
	})
}

// UpdateProduct handles PUT /api/products/{id}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	var req struct {
		Name  string  `json:"name"`
		Price float64 `json:"price"`
	}

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid request body",
		})
		return
	}

	cmd := command.UpdateProductCommand{
		ID:    id,
		Name:  req.Name,
		Price: req.Price,
	}

	product, err := h.updateHandler.Handle(cmd)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Product not found",
			})
			return
		}
		logger.Logger.Error().Err(err).Msg("Failed to update product")
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   err.Error(),
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product updated successfully",
		Data:    product,
	})
}

// DeleteProduct handles DELETE /api/products/{id}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(w, r)
	if !ok {
		return
	}

	if err := h.deleteHandler.Handle(command.DeleteProductCommand{ID: id}); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			respondJSON(w, http.StatusNotFound, Response{
				Success: false,
				Error:   "Product not found",
			})
			return
		}
		logger.Logger.Error().Err(err).Msg("Failed to delete product")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to delete product",
		})
		return
	}

	respondJSON(w, http.StatusOK, Response{
		Success: true,
		Message: "Product deleted successfully",
	})
}

// BestSellers handles GET /api/products/bestsellers
func (h *ProductHandler) BestSellers(w http.ResponseWriter, r *http.Request) {
	startDate, err := parseDate(r.URL.Query().Get("startDate"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid startDate",
		})
		return
	}
	endDate, err := parseDate(r.URL.Query().Get("endDate"))
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid endDate",
		})
		return
	}

	q := query.BestSellersQuery{
		StartDate: startDate,
		EndDate:   endDate,
		Filter:    parseFilter(r),
	}

	report, err := h.bestSellersHandler.Handle(q)
	if err != nil {
		logger.Logger.Error().Err(err).Msg("Failed to query best sellers")
		respondJSON(w, http.StatusInternalServerError, Response{
			Success: false,
			Error:   "Failed to query best sellers",
		})
		return
	}

	respondJSON(w, http.StatusOK, report)
}

// RegisterHealthCheck wires the health endpoint, which pings the database
func (h *ProductHandler) RegisterHealthCheck(router *mux.Router, db *sql.DB) {
	router.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		if err := db.Ping(); err != nil {
			respondJSON(w, http.StatusServiceUnavailable, Response{
				Success: false,
				Error:   "Database unavailable",
			})
			return
		}

		respondJSON(w, http.StatusOK, Response{
			Success: true,
			Message: "Orders API is healthy",
		})
	}).Methods("GET")
}

// parseID extracts the {id} path variable, answering 400 on garbage
func parseID(w http.ResponseWriter, r *http.Request) (uint, bool) {
	vars := mux.Vars(r)
	id, err := strconv.ParseUint(vars["id"], 10, 32)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, Response{
			Success: false,
			Error:   "Invalid product ID",
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

// parseDate accepts RFC3339 or a bare date; empty input is the zero time
func parseDate(value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// respondJSON sends a JSON response
func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}
