package backend

import (
	"context"
	"fmt"

	"shopadmin/internal/apis/backend/endpoints"
	"shopadmin/internal/apis/backend/failure"
	"shopadmin/internal/apis/backend/responses"
)

type SortKey string

const (
	SortByName       SortKey = "name"
	SortByCreatedAt  SortKey = "createdAt"
	SortByNbProducts SortKey = "nbProducts"
)

func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(s); k {
	case SortByName, SortByCreatedAt, SortByNbProducts:
		return k, nil
	default:
		return "", fmt.Errorf("unknown sort key %q (expected name|createdAt|nbProducts)", s)
	}
}

type ShopService interface {
	// List retries on network and server failures before giving up.
	List(ctx context.Context, page, size int) (responses.Page[Shop], error)
	ListSearched(ctx context.Context, page, size int, name string) (responses.Page[Shop], error)
	ListSorted(ctx context.Context, page, size int, key SortKey) (responses.Page[Shop], error)
	ListFiltered(ctx context.Context, page, size int, fragment string) (responses.Page[Shop], error)
	Get(ctx context.Context, id int64) (Shop, error)
	Create(ctx context.Context, shop MinimalShop) (Shop, error)
	Edit(ctx context.Context, shop MinimalShop) (Shop, error)
	Delete(ctx context.Context, id int64) error
}

type shopService struct {
	api    *endpoints.Client
	policy *failure.Policy
}

func (s *shopService) List(ctx context.Context, page, size int) (responses.Page[Shop], error) {
	return failure.Retry(ctx, s.policy, "list shops", func(ctx context.Context) (responses.Page[Shop], error) {
		return s.api.ListShops(ctx, page, size)
	})
}

func (s *shopService) ListSearched(ctx context.Context, page, size int, name string) (responses.Page[Shop], error) {
	out, err := s.api.SearchShops(ctx, page, size, name)
	return out, s.policy.Handle("search shops", err)
}

func (s *shopService) ListSorted(ctx context.Context, page, size int, key SortKey) (responses.Page[Shop], error) {
	out, err := s.api.ListShopsSorted(ctx, page, size, string(key))
	return out, s.policy.Handle("list sorted shops", err)
}

func (s *shopService) ListFiltered(ctx context.Context, page, size int, fragment string) (responses.Page[Shop], error) {
	out, err := s.api.ListShopsFiltered(ctx, page, size, fragment)
	return out, s.policy.Handle("list filtered shops", err)
}

func (s *shopService) Get(ctx context.Context, id int64) (Shop, error) {
	out, err := s.api.GetShop(ctx, id)
	return out, s.policy.Handle("get shop", err)
}

func (s *shopService) Create(ctx context.Context, shop MinimalShop) (Shop, error) {
	out, err := s.api.CreateShop(ctx, shop)
	return out, s.policy.Handle("create shop", err)
}

func (s *shopService) Edit(ctx context.Context, shop MinimalShop) (Shop, error) {
	if shop.ID == 0 {
		return Shop{}, fmt.Errorf("edit shop: %w", ErrMissingID)
	}
	out, err := s.api.EditShop(ctx, shop)
	return out, s.policy.Handle("edit shop", err)
}

func (s *shopService) Delete(ctx context.Context, id int64) error {
	return s.policy.Handle("delete shop", s.api.DeleteShop(ctx, id))
}
