package endpoints

import (
	"context"
	"net/http"
	"strconv"

	"shopadmin/internal/apis/backend/mapper"
	"shopadmin/internal/apis/backend/responses"
)

const productsPath = "/products"

func (c *Client) ListProducts(ctx context.Context, page, size int) (responses.Page[responses.Product], error) {
	return listPage[responses.Product](ctx, c, productsPath, pageQuery(page, size), "", size)
}

func (c *Client) ListProductsByShop(ctx context.Context, page, size int, shopID int64) (responses.Page[responses.Product], error) {
	q := pageQuery(page, size)
	q.Set("shopId", strconv.FormatInt(shopID, 10))
	return listPage[responses.Product](ctx, c, productsPath, q, "", size)
}

func (c *Client) ListProductsByShopAndCategory(ctx context.Context, page, size int, shopID, categoryID int64) (responses.Page[responses.Product], error) {
	q := pageQuery(page, size)
	q.Set("shopId", strconv.FormatInt(shopID, 10))
	q.Set("categoryId", strconv.FormatInt(categoryID, 10))
	return listPage[responses.Product](ctx, c, productsPath, q, "", size)
}

func (c *Client) GetProduct(ctx context.Context, id int64) (responses.Product, error) {
	return getOne[responses.Product](ctx, c, itemPath(productsPath, id))
}

// CreateProduct sends the price in minor units; the reply is returned as the server wrote it.
func (c *Client) CreateProduct(ctx context.Context, p responses.MinimalProduct) (responses.Product, error) {
	return send[responses.Product](ctx, c, http.MethodPost, productsPath, mapper.ToProductPayload(p))
}

func (c *Client) EditProduct(ctx context.Context, p responses.MinimalProduct) (responses.Product, error) {
	return send[responses.Product](ctx, c, http.MethodPut, productsPath, mapper.ToProductPayload(p))
}

func (c *Client) DeleteProduct(ctx context.Context, id int64) error {
	return c.remove(ctx, itemPath(productsPath, id))
}
