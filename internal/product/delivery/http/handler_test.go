package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	orderdomain "github.com/ordersperf/orders-api/internal/order/domain"
	"github.com/ordersperf/orders-api/internal/product/domain"
	"github.com/ordersperf/orders-api/internal/product/repository"
	userdomain "github.com/ordersperf/orders-api/internal/user/domain"
	"github.com/ordersperf/orders-api/pkg/logger"
)

func setupRouter(t *testing.T) (*mux.Router, *repository.GormProductRepository) {
	t.Helper()

	logger.Init("test", false)

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(
		&userdomain.User{},
		&domain.Product{},
		&orderdomain.Order{},
		&orderdomain.OrderProduct{},
	))

	repo := repository.NewGormProductRepository(db)
	router := mux.NewRouter()
	NewProductHandler(repo).RegisterRoutes(router)

	return router, repo
}

func doJSON(router *mux.Router, method, target string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCreateProductReturns201WithLocation(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/products", map[string]any{
		"name":  "Keyboard",
		"price": 49.99,
	})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/products/1", rec.Header().Get("Location"))

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
}

func TestCreateProductRejectsInvalidBody(t *testing.T) {
	router, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/api/products", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCreateProductRejectsMissingName(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/products", map[string]any{
		"price": 49.99,
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Error)
}

func TestGetProductNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/products/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetProductInvalidID(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/products/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateProductNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(router, http.MethodPut, "/api/products/999", map[string]any{
		"name":  "Mouse",
		"price": 19.99,
	})
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProductNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(router, http.MethodDelete, "/api/products/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteProduct(t *testing.T) {
	router, repo := setupRouter(t)

	require.NoError(t, repo.Create(&domain.Product{Name: "Mouse", Price: 19.99}))

	rec := doJSON(router, http.MethodDelete, "/api/products/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodGet, "/api/products/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestListProductsReturnsPaginationEnvelope(t *testing.T) {
	router, repo := setupRouter(t)

	for _, name := range []string{"a", "b", "c"} {
		require.NoError(t, repo.Create(&domain.Product{Name: name, Price: 1}))
	}

	rec := doJSON(router, http.MethodGet, "/api/products?pageNumber=1&pageSize=2", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Data            []domain.Product `json:"data"`
		TotalCount      int64            `json:"total_count"`
		CurrentPage     int              `json:"current_page"`
		PageSize        int              `json:"page_size"`
		TotalPages      int              `json:"total_pages"`
		HasPreviousPage bool             `json:"has_previous_page"`
		HasNextPage     bool             `json:"has_next_page"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))

	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(3), page.TotalCount)
	assert.Equal(t, 1, page.CurrentPage)
	assert.Equal(t, 2, page.PageSize)
	assert.Equal(t, 2, page.TotalPages)
	assert.False(t, page.HasPreviousPage)
	assert.True(t, page.HasNextPage)
}

func TestBestSellersRejectsBadDate(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/products/bestsellers?startDate=not-a-date", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestBestSellersEmptyWindow(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/products/bestsellers", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var page struct {
		Data       []domain.ProductSalesReport `json:"data"`
		TotalCount int64                       `json:"total_count"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Empty(t, page.Data)
	assert.Equal(t, int64(0), page.TotalCount)
}
