package command

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ordersperf/orders-api/internal/product/domain"
)

type stubProductRepository struct {
	created []*domain.Product
}

func (s *stubProductRepository) Create(p *domain.Product) error {
	p.ID = uint(len(s.created) + 1)
	s.created = append(s.created, p)
	return nil
}

func (s *stubProductRepository) FindByID(uint) (*domain.Product, error) {
	return nil, domain.ErrNotFound
}

func (s *stubProductRepository) FindAll(int, int) ([]domain.Product, error) { return nil, nil }
func (s *stubProductRepository) Update(*domain.Product) error               { return nil }
func (s *stubProductRepository) Delete(uint) error                          { return nil }
func (s *stubProductRepository) Count() (int64, error)                      { return 0, nil }

func (s *stubProductRepository) BestSellers(start, end time.Time, limit, offset int) ([]domain.ProductSalesReport, int64, error) {
	return nil, 0, nil
}

func TestCreateProduct(t *testing.T) {
	repo := &stubProductRepository{}
	h := NewCreateProductHandler(repo)

	product, err := h.Handle(CreateProductCommand{Name: "Keyboard", Price: 49.99})
	require.NoError(t, err)

	assert.NotZero(t, product.ID)
	assert.Equal(t, "Keyboard", product.Name)
	assert.Equal(t, 49.99, product.Price)
	assert.Len(t, repo.created, 1)
}

func TestCreateProductRejectsEmptyName(t *testing.T) {
	repo := &stubProductRepository{}
	h := NewCreateProductHandler(repo)

	_, err := h.Handle(CreateProductCommand{Name: "", Price: 10})
	assert.Error(t, err)
	assert.Empty(t, repo.created)
}

func TestCreateProductRejectsNonPositivePrice(t *testing.T) {
	repo := &stubProductRepository{}
	h := NewCreateProductHandler(repo)

	for _, price := range []float64{0, -1} {
		_, err := h.Handle(CreateProductCommand{Name: "Keyboard", Price: price})
		assert.Error(t, err, "price %v", price)
	}
	assert.Empty(t, repo.created)
}
