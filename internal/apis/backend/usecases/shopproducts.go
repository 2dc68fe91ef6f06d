package usecases

import (
	"context"
	"fmt"
	"log/slog"

	"shopadmin/internal/apis/backend"
	"shopadmin/internal/apis/backend/responses"
)

type ShopProducts struct {
	products backend.ProductService
	log      *slog.Logger
}

func NewShopProducts(products backend.ProductService, logger *slog.Logger) *ShopProducts {
	if logger == nil {
		logger = slog.Default()
	}
	return &ShopProducts{products: products, log: logger}
}

// List returns one page of a shop's products. A nil category or the
// "all categories" sentinel lists without a category filter.
func (s *ShopProducts) List(ctx context.Context, shopID int64, category *backend.Category, page, size int) (responses.Page[backend.Product], error) {
	if shopID <= 0 {
		return responses.Page[backend.Product]{}, fmt.Errorf("shopID must be > 0")
	}

	if category == nil || category.IsAll() {
		s.log.Debug("list shop products", "shop_id", shopID, "page", page)
		return s.products.ListByShop(ctx, page, size, shopID)
	}

	s.log.Debug("list shop products", "shop_id", shopID, "category_id", category.ID, "page", page)
	return s.products.ListByShopAndCategory(ctx, page, size, shopID, category.ID)
}
