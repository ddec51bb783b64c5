package query

import (
	"fmt"
	"time"

	"github.com/ordersperf/orders-api/internal/user/domain"
	"github.com/ordersperf/orders-api/pkg/cache"
	"github.com/ordersperf/orders-api/pkg/pagination"
)

const (
	// topBuyersWindowMonths is the trailing window the report covers.
	topBuyersWindowMonths = 6

	// topBuyersMinSpend is the spend threshold a user must exceed,
	// strictly, to appear in the report.
	topBuyersMinSpend = 1000.00
)

// TopBuyersQuery represents the query for the top buyers report
type TopBuyersQuery struct {
	Filter pagination.Filter
}

// TopBuyersHandler handles the top buyers report query. The report
// traverses the user x order x line-item fan-out, which is markedly
// more expensive than the best-sellers join, so each page is cached
// under a key derived from the paging parameters. A hit returns the
// cached envelope verbatim, total count included; brief staleness
// within the TTL window is accepted.
type TopBuyersHandler struct {
	repo  domain.UserRepository
	cache *cache.Cache
	now   func() time.Time
}

// NewTopBuyersHandler creates a new top buyers handler
func NewTopBuyersHandler(repo domain.UserRepository, c *cache.Cache) *TopBuyersHandler {
	return &TopBuyersHandler{repo: repo, cache: c, now: time.Now}
}

// cacheKey derives the cache key from the query's paging parameters
func cacheKey(f pagination.Filter) string {
	return fmt.Sprintf("TopBuyers_Page%d_Size%d", f.PageNumber, f.PageSize)
}

// Handle executes the top buyers query, consulting the cache first
func (h *TopBuyersHandler) Handle(q TopBuyersQuery) (pagination.Response[domain.TopBuyer], error) {
	key := cacheKey(q.Filter)

	if cached, ok := h.cache.Get(key); ok {
		if response, ok := cached.(pagination.Response[domain.TopBuyer]); ok {
			return response, nil
		}
	}

	cutoff := h.now().UTC().AddDate(0, -topBuyersWindowMonths, 0)

	buyers, total, err := h.repo.TopBuyers(cutoff, topBuyersMinSpend, q.Filter.PageSize, q.Filter.Offset())
	if err != nil {
		var empty pagination.Response[domain.TopBuyer]
		return empty, fmt.Errorf("failed to query top buyers: %w", err)
	}

	response := pagination.NewResponse(buyers, total, q.Filter.PageNumber, q.Filter.PageSize)
	h.cache.Set(key, response)

	return response, nil
}
