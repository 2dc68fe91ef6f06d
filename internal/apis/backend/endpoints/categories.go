package endpoints

import (
	"context"
	"net/http"

	"shopadmin/internal/apis/backend/responses"
)

const categoriesPath = "/categories"

func (c *Client) ListCategories(ctx context.Context, page, size int) (responses.Page[responses.Category], error) {
	return listPage[responses.Category](ctx, c, categoriesPath, pageQuery(page, size), "", size)
}

func (c *Client) GetCategory(ctx context.Context, id int64) (responses.Category, error) {
	return getOne[responses.Category](ctx, c, itemPath(categoriesPath, id))
}

func (c *Client) CreateCategory(ctx context.Context, cat responses.MinimalCategory) (responses.Category, error) {
	return send[responses.Category](ctx, c, http.MethodPost, categoriesPath, cat)
}

func (c *Client) EditCategory(ctx context.Context, cat responses.MinimalCategory) (responses.Category, error) {
	return send[responses.Category](ctx, c, http.MethodPut, categoriesPath, cat)
}

func (c *Client) DeleteCategory(ctx context.Context, id int64) error {
	return c.remove(ctx, itemPath(categoriesPath, id))
}
