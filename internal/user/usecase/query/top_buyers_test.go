package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordersperf/orders-api/internal/user/domain"
	"github.com/ordersperf/orders-api/pkg/cache"
	"github.com/ordersperf/orders-api/pkg/pagination"
)

// stubUserRepository returns canned top-buyer rows and counts how often
// the report query actually reaches the repository.
type stubUserRepository struct {
	buyers     []domain.TopBuyer
	total      int64
	calls      int
	lastCutoff time.Time
}

func (s *stubUserRepository) Create(*domain.User) error               { return nil }
func (s *stubUserRepository) FindByID(uint) (*domain.User, error)     { return nil, domain.ErrNotFound }
func (s *stubUserRepository) FindAll(int, int) ([]domain.User, error) { return nil, nil }
func (s *stubUserRepository) Update(*domain.User) error               { return nil }
func (s *stubUserRepository) Delete(uint) error                       { return nil }
func (s *stubUserRepository) Count() (int64, error)                   { return 0, nil }

func (s *stubUserRepository) TopBuyers(cutoff time.Time, minSpend float64, limit, offset int) ([]domain.TopBuyer, int64, error) {
	s.calls++
	s.lastCutoff = cutoff
	return s.buyers, s.total, nil
}

func newTestHandler(repo *stubUserRepository, now func() time.Time) *TopBuyersHandler {
	h := NewTopBuyersHandler(repo, cache.NewWithClock(5*time.Minute, now))
	h.now = now
	return h
}

func TestHandleQueriesRepositoryOnColdCache(t *testing.T) {
	repo := &stubUserRepository{
		buyers: []domain.TopBuyer{{UserID: 1, UserName: "alice", TotalOrderValue: 2500}},
		total:  1,
	}
	h := newTestHandler(repo, time.Now)

	resp, err := h.Handle(TopBuyersQuery{Filter: pagination.NewFilter()})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, int64(1), resp.TotalCount)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "alice", resp.Data[0].UserName)
}

func TestHandleServesRepeatQueryFromCache(t *testing.T) {
	repo := &stubUserRepository{
		buyers: []domain.TopBuyer{{UserID: 1, UserName: "alice", TotalOrderValue: 2500}},
		total:  1,
	}
	h := newTestHandler(repo, time.Now)

	first, err := h.Handle(TopBuyersQuery{Filter: pagination.NewFilter()})
	require.NoError(t, err)

	// The repository changed underneath; the cached page must win
	repo.buyers = []domain.TopBuyer{{UserID: 2, UserName: "bob", TotalOrderValue: 9000}}
	repo.total = 7

	second, err := h.Handle(TopBuyersQuery{Filter: pagination.NewFilter()})
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls)
	assert.Equal(t, first, second)
}

func TestHandleCachesPerPageAndSize(t *testing.T) {
	repo := &stubUserRepository{total: 0}
	h := newTestHandler(repo, time.Now)

	_, err := h.Handle(TopBuyersQuery{Filter: pagination.Filter{PageNumber: 1, PageSize: 10}})
	require.NoError(t, err)
	_, err = h.Handle(TopBuyersQuery{Filter: pagination.Filter{PageNumber: 2, PageSize: 10}})
	require.NoError(t, err)
	_, err = h.Handle(TopBuyersQuery{Filter: pagination.Filter{PageNumber: 1, PageSize: 25}})
	require.NoError(t, err)

	// Three distinct page/size pairs, three repository round trips
	assert.Equal(t, 3, repo.calls)
}

func TestHandleRecomputesAfterTTL(t *testing.T) {
	now := time.Now()
	clock := func() time.Time { return now }

	repo := &stubUserRepository{
		buyers: []domain.TopBuyer{{UserID: 1, UserName: "alice", TotalOrderValue: 2500}},
		total:  1,
	}
	h := newTestHandler(repo, clock)

	_, err := h.Handle(TopBuyersQuery{Filter: pagination.NewFilter()})
	require.NoError(t, err)

	now = now.Add(5*time.Minute + time.Second)

	repo.buyers = []domain.TopBuyer{{UserID: 2, UserName: "bob", TotalOrderValue: 9000}}
	resp, err := h.Handle(TopBuyersQuery{Filter: pagination.NewFilter()})
	require.NoError(t, err)

	assert.Equal(t, 2, repo.calls)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "bob", resp.Data[0].UserName)
}

func TestHandleUsesSixMonthCutoff(t *testing.T) {
	now := time.Date(2025, 8, 15, 12, 0, 0, 0, time.UTC)

	repo := &stubUserRepository{}
	h := newTestHandler(repo, func() time.Time { return now })

	_, err := h.Handle(TopBuyersQuery{Filter: pagination.NewFilter()})
	require.NoError(t, err)

	assert.Equal(t, now.AddDate(0, -6, 0), repo.lastCutoff)
}

func TestCacheKeyFormat(t *testing.T) {
	key := cacheKey(pagination.Filter{PageNumber: 2, PageSize: 25})
	assert.Equal(t, "TopBuyers_Page2_Size25", key)
}
