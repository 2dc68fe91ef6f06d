package endpoints

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"shopadmin/internal/apis/backend/responses"
)

func pageQuery(page, size int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	return q
}

func itemPath(base string, id int64) string {
	return fmt.Sprintf("%s/%d", base, id)
}

func listPage[T any](ctx context.Context, c *Client, path string, q url.Values, raw string, size int) (responses.Page[T], error) {
	resp, err := c.Do(ctx, Request{Method: http.MethodGet, Path: path, Query: q, RawQuery: raw})
	if err != nil {
		return responses.Page[T]{}, err
	}

	out, err := decodeJSON[responses.Page[T]](resp, "list "+path)
	if err != nil {
		return responses.Page[T]{}, err
	}

	// server data is passed through as is
	if err := out.Check(size); err != nil {
		c.Log.Warn("page contract violated", "path", path, "query", q.Encode(), "err", err)
	}
	return out, nil
}

func getOne[T any](ctx context.Context, c *Client, path string) (T, error) {
	resp, err := c.Do(ctx, Request{Method: http.MethodGet, Path: path})
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeJSON[T](resp, "get "+path)
}

func send[T any](ctx context.Context, c *Client, method, path string, body any) (T, error) {
	resp, err := c.Do(ctx, Request{Method: method, Path: path, Body: body})
	if err != nil {
		var zero T
		return zero, err
	}
	return decodeJSON[T](resp, method+" "+path)
}

func (c *Client) remove(ctx context.Context, path string) error {
	_, err := c.Do(ctx, Request{Method: http.MethodDelete, Path: path})
	return err
}
