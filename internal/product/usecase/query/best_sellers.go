package query

import (
	"fmt"
	"time"

	"github.com/ordersperf/orders-api/internal/product/domain"
	"github.com/ordersperf/orders-api/pkg/pagination"
)

// defaultReportWindow is the trailing window used when the caller does
// not supply a date range.
const defaultReportWindow = 30 * 24 * time.Hour

// BestSellersQuery represents the query for the best-selling products
// report. Zero StartDate/EndDate default to a trailing 30-day window
// ending now. Both bounds are inclusive.
type BestSellersQuery struct {
	StartDate time.Time
	EndDate   time.Time
	Filter    pagination.Filter
}

// BestSellersHandler handles the best-selling products report query
type BestSellersHandler struct {
	repo domain.ProductRepository
}

// NewBestSellersHandler creates a new best sellers handler
func NewBestSellersHandler(repo domain.ProductRepository) *BestSellersHandler {
	return &BestSellersHandler{repo: repo}
}

// Handle executes the best sellers query. The result is recomputed on
// every call: arbitrary date ranges would make a cache keyspace
// unbounded, and ad hoc reporting expects fresh data.
func (h *BestSellersHandler) Handle(q BestSellersQuery) (pagination.Response[domain.ProductSalesReport], error) {
	var empty pagination.Response[domain.ProductSalesReport]

	start, end := q.StartDate, q.EndDate
	if start.IsZero() {
		start = time.Now().UTC().Add(-defaultReportWindow)
	}
	if end.IsZero() {
		end = time.Now().UTC()
	}

	report, total, err := h.repo.BestSellers(start, end, q.Filter.PageSize, q.Filter.Offset())
	if err != nil {
		return empty, fmt.Errorf("failed to query best sellers: %w", err)
	}

	return pagination.NewResponse(report, total, q.Filter.PageNumber, q.Filter.PageSize), nil
}
