package endpoints

import (
	"context"
	"net/http"

	"shopadmin/internal/apis/backend/responses"
)

const shopsPath = "/shops"

func (c *Client) ListShops(ctx context.Context, page, size int) (responses.Page[responses.Shop], error) {
	return listPage[responses.Shop](ctx, c, shopsPath, pageQuery(page, size), "", size)
}

func (c *Client) SearchShops(ctx context.Context, page, size int, name string) (responses.Page[responses.Shop], error) {
	q := pageQuery(page, size)
	q.Set("name", name)
	return listPage[responses.Shop](ctx, c, shopsPath, q, "", size)
}

func (c *Client) ListShopsSorted(ctx context.Context, page, size int, sortBy string) (responses.Page[responses.Shop], error) {
	q := pageQuery(page, size)
	q.Set("sortBy", sortBy)
	return listPage[responses.Shop](ctx, c, shopsPath, q, "", size)
}

// ListShopsFiltered appends fragment (e.g. "&inVacations=true") to the page query untouched.
func (c *Client) ListShopsFiltered(ctx context.Context, page, size int, fragment string) (responses.Page[responses.Shop], error) {
	return listPage[responses.Shop](ctx, c, shopsPath, pageQuery(page, size), fragment, size)
}

func (c *Client) GetShop(ctx context.Context, id int64) (responses.Shop, error) {
	return getOne[responses.Shop](ctx, c, itemPath(shopsPath, id))
}

func (c *Client) CreateShop(ctx context.Context, shop responses.MinimalShop) (responses.Shop, error) {
	return send[responses.Shop](ctx, c, http.MethodPost, shopsPath, shop)
}

func (c *Client) EditShop(ctx context.Context, shop responses.MinimalShop) (responses.Shop, error) {
	return send[responses.Shop](ctx, c, http.MethodPut, shopsPath, shop)
}

func (c *Client) DeleteShop(ctx context.Context, id int64) error {
	return c.remove(ctx, itemPath(shopsPath, id))
}
