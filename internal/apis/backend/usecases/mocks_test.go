package usecases

import (
	"context"
	"io"
	"log/slog"

	"github.com/stretchr/testify/mock"

	"shopadmin/internal/apis/backend"
	"shopadmin/internal/apis/backend/responses"
)

func quietLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockShopService struct {
	mock.Mock
}

var _ backend.ShopService = (*MockShopService)(nil)

func shopPage(args mock.Arguments) (responses.Page[backend.Shop], error) {
	p, _ := args.Get(0).(responses.Page[backend.Shop])
	return p, args.Error(1)
}

func (m *MockShopService) List(ctx context.Context, page, size int) (responses.Page[backend.Shop], error) {
	return shopPage(m.Called(ctx, page, size))
}

func (m *MockShopService) ListSearched(ctx context.Context, page, size int, name string) (responses.Page[backend.Shop], error) {
	return shopPage(m.Called(ctx, page, size, name))
}

func (m *MockShopService) ListSorted(ctx context.Context, page, size int, key backend.SortKey) (responses.Page[backend.Shop], error) {
	return shopPage(m.Called(ctx, page, size, key))
}

func (m *MockShopService) ListFiltered(ctx context.Context, page, size int, fragment string) (responses.Page[backend.Shop], error) {
	return shopPage(m.Called(ctx, page, size, fragment))
}

func (m *MockShopService) Get(ctx context.Context, id int64) (backend.Shop, error) {
	args := m.Called(ctx, id)
	s, _ := args.Get(0).(backend.Shop)
	return s, args.Error(1)
}

func (m *MockShopService) Create(ctx context.Context, shop backend.MinimalShop) (backend.Shop, error) {
	args := m.Called(ctx, shop)
	s, _ := args.Get(0).(backend.Shop)
	return s, args.Error(1)
}

func (m *MockShopService) Edit(ctx context.Context, shop backend.MinimalShop) (backend.Shop, error) {
	args := m.Called(ctx, shop)
	s, _ := args.Get(0).(backend.Shop)
	return s, args.Error(1)
}

func (m *MockShopService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type MockProductService struct {
	mock.Mock
}

var _ backend.ProductService = (*MockProductService)(nil)

func productPage(args mock.Arguments) (responses.Page[backend.Product], error) {
	p, _ := args.Get(0).(responses.Page[backend.Product])
	return p, args.Error(1)
}

func (m *MockProductService) List(ctx context.Context, page, size int) (responses.Page[backend.Product], error) {
	return productPage(m.Called(ctx, page, size))
}

func (m *MockProductService) ListByShop(ctx context.Context, page, size int, shopID int64) (responses.Page[backend.Product], error) {
	return productPage(m.Called(ctx, page, size, shopID))
}

func (m *MockProductService) ListByShopAndCategory(ctx context.Context, page, size int, shopID, categoryID int64) (responses.Page[backend.Product], error) {
	return productPage(m.Called(ctx, page, size, shopID, categoryID))
}

func (m *MockProductService) Get(ctx context.Context, id int64) (backend.Product, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(backend.Product)
	return p, args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, p backend.MinimalProduct) (backend.Product, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(backend.Product)
	return out, args.Error(1)
}

func (m *MockProductService) Edit(ctx context.Context, p backend.MinimalProduct) (backend.Product, error) {
	args := m.Called(ctx, p)
	out, _ := args.Get(0).(backend.Product)
	return out, args.Error(1)
}

func (m *MockProductService) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}
