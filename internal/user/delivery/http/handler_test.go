package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	orderdomain "github.com/ordersperf/orders-api/internal/order/domain"
	productdomain "github.com/ordersperf/orders-api/internal/product/domain"
	"github.com/ordersperf/orders-api/internal/user/domain"
	"github.com/ordersperf/orders-api/internal/user/repository"
	"github.com/ordersperf/orders-api/internal/user/usecase/query"
	"github.com/ordersperf/orders-api/pkg/cache"
	"github.com/ordersperf/orders-api/pkg/logger"
)

func setupRouter(t *testing.T) (*mux.Router, *gorm.DB) {
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
		&domain.User{},
		&productdomain.Product{},
		&orderdomain.Order{},
		&orderdomain.OrderProduct{},
	))

	repo := repository.NewGormUserRepository(db)
	handler := NewUserHandler(repo, query.NewTopBuyersHandler(repo, cache.New(5*time.Minute)))

	router := mux.NewRouter()
	handler.RegisterRoutes(router)

	return router, db
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

func TestCreateUserReturns201WithLocation(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(router, http.MethodPost, "/api/users", map[string]any{"name": "alice"})

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "/api/users/1", rec.Header().Get("Location"))
}

func TestGetUserNotFound(t *testing.T) {
	router, _ := setupRouter(t)

	rec := doJSON(router, http.MethodGet, "/api/users/999", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestDeleteUserWithOrdersReturns409(t *testing.T) {
	router, db := setupRouter(t)

	user := &domain.User{Name: "bob"}
	require.NoError(t, db.Create(user).Error)

	product := &productdomain.Product{Name: "Widget", Price: 10}
	require.NoError(t, db.Create(product).Error)

	order := &orderdomain.Order{
		UserID:    user.ID,
		DateAdded: time.Now().UTC(),
		OrderProducts: []orderdomain.OrderProduct{
			{ProductID: product.ID, Quantity: 1, Price: 10},
		},
	}
	require.NoError(t, db.Create(order).Error)

	rec := doJSON(router, http.MethodDelete, "/api/users/1", nil)
	assert.Equal(t, http.StatusConflict, rec.Code)

	var resp Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.Success)
}

func TestDeleteUserWithoutOrders(t *testing.T) {
	router, db := setupRouter(t)

	require.NoError(t, db.Create(&domain.User{Name: "carol"}).Error)

	rec := doJSON(router, http.MethodDelete, "/api/users/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(router, http.MethodGet, "/api/users/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestTopUsersReportEnvelope(t *testing.T) {
	router, db := setupRouter(t)

	user := &domain.User{Name: "whale"}
	require.NoError(t, db.Create(user).Error)

	product := &productdomain.Product{Name: "Server", Price: 2500}
	require.NoError(t, db.Create(product).Error)

	order := &orderdomain.Order{
		UserID:    user.ID,
		DateAdded: time.Now().UTC().Add(-24 * time.Hour),
		OrderProducts: []orderdomain.OrderProduct{
			{ProductID: product.ID, Quantity: 1, Price: 2500},
		},
	}
	require.NoError(t, db.Create(order).Error)

	rec := doJSON(router, http.MethodGet, "/api/users/top-users", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp TopUsersResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.GreaterOrEqual(t, resp.ExecutionTimeMs, int64(0))
	assert.Equal(t, int64(1), resp.Data.TotalCount)
	require.Len(t, resp.Data.Data, 1)
	assert.Equal(t, "whale", resp.Data.Data[0].UserName)
	assert.Equal(t, 2500.0, resp.Data.Data[0].TotalOrderValue)
}
