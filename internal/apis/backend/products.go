package backend

import (
	"context"
	"fmt"

	"shopadmin/internal/apis/backend/endpoints"
	"shopadmin/internal/apis/backend/failure"
	"shopadmin/internal/apis/backend/responses"
)

type ProductService interface {
	List(ctx context.Context, page, size int) (responses.Page[Product], error)
	ListByShop(ctx context.Context, page, size int, shopID int64) (responses.Page[Product], error)
	ListByShopAndCategory(ctx context.Context, page, size int, shopID, categoryID int64) (responses.Page[Product], error)
	Get(ctx context.Context, id int64) (Product, error)
	// Create and Edit send the price x100; the returned price is not scaled back.
	Create(ctx context.Context, p MinimalProduct) (Product, error)
	Edit(ctx context.Context, p MinimalProduct) (Product, error)
	Delete(ctx context.Context, id int64) error
}

type productService struct {
	api    *endpoints.Client
	policy *failure.Policy
}

func (s *productService) List(ctx context.Context, page, size int) (responses.Page[Product], error) {
	out, err := s.api.ListProducts(ctx, page, size)
	return out, s.policy.Handle("list products", err)
}

func (s *productService) ListByShop(ctx context.Context, page, size int, shopID int64) (responses.Page[Product], error) {
	out, err := s.api.ListProductsByShop(ctx, page, size, shopID)
	return out, s.policy.Handle("list shop products", err)
}

func (s *productService) ListByShopAndCategory(ctx context.Context, page, size int, shopID, categoryID int64) (responses.Page[Product], error) {
	out, err := s.api.ListProductsByShopAndCategory(ctx, page, size, shopID, categoryID)
	return out, s.policy.Handle("list shop products by category", err)
}

func (s *productService) Get(ctx context.Context, id int64) (Product, error) {
	out, err := s.api.GetProduct(ctx, id)
	return out, s.policy.Handle("get product", err)
}

func (s *productService) Create(ctx context.Context, p MinimalProduct) (Product, error) {
	out, err := s.api.CreateProduct(ctx, p)
	return out, s.policy.Handle("create product", err)
}

func (s *productService) Edit(ctx context.Context, p MinimalProduct) (Product, error) {
	if p.ID == 0 {
		return Product{}, fmt.Errorf("edit product: %w", ErrMissingID)
	}
	out, err := s.api.EditProduct(ctx, p)
	return out, s.policy.Handle("edit product", err)
}

func (s *productService) Delete(ctx context.Context, id int64) error {
	return s.policy.Handle("delete product", s.api.DeleteProduct(ctx, id))
}
