package endpoints

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopadmin/internal/apis/backend/responses"
)

func quietLog() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type recorded struct {
	method   string
	path     string
	rawQuery string
	body     []byte
}

func newBackend(t *testing.T, status int, reply string) (*Client, *[]recorded) {
	t.Helper()
	var calls []recorded
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		calls = append(calls, recorded{method: r.Method, path: r.URL.Path, rawQuery: r.URL.RawQuery, body: b})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, reply)
	}))
	t.Cleanup(ts.Close)
	return New(ts.Client(), ts.URL+"/", nil, quietLog()), &calls
}

const onePage = `{"content":[{"id":1,"name":"Corner"}],"totalPages":1,"pageable":{"pageNumber":0}}`

func TestJoinQuery(t *testing.T) {
	q := url.Values{"page": {"0"}, "size": {"9"}}

	assert.Equal(t, "page=0&size=9", joinQuery(q, ""))
	assert.Equal(t, "page=0&size=9&inVacations=true", joinQuery(q, "&inVacations=true"))
	assert.Equal(t, "a=1", joinQuery(nil, "?a=1"))
	assert.Equal(t, "", joinQuery(nil, ""))
}

func TestListShops_Query(t *testing.T) {
	c, calls := newBackend(t, http.StatusOK, onePage)

	page, err := c.ListShops(context.Background(), 2, 9)
	require.NoError(t, err)
	require.Len(t, *calls, 1)

	got := (*calls)[0]
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/shops", got.path)
	assert.Equal(t, "page=2&size=9", got.rawQuery)
	assert.Equal(t, "Corner", page.Content[0].Name)
}

func TestShopListingVariants_Query(t *testing.T) {
	ctx := context.Background()

	c, calls := newBackend(t, http.StatusOK, onePage)
	_, err := c.SearchShops(ctx, 0, 9, "corner shop")
	require.NoError(t, err)
	_, err = c.ListShopsSorted(ctx, 1, 9, "nbProducts")
	require.NoError(t, err)
	_, err = c.ListShopsFiltered(ctx, 0, 9, "&inVacations=false&createdAfter=2024-01-01")
	require.NoError(t, err)

	require.Len(t, *calls, 3)
	assert.Equal(t, "name=corner+shop&page=0&size=9", (*calls)[0].rawQuery)
	assert.Equal(t, "page=1&size=9&sortBy=nbProducts", (*calls)[1].rawQuery)
	assert.Equal(t, "page=0&size=9&inVacations=false&createdAfter=2024-01-01", (*calls)[2].rawQuery)
}

func TestProductsByShop_Query(t *testing.T) {
	ctx := context.Background()
	c, calls := newBackend(t, http.StatusOK, `{"content":[],"totalPages":0,"number":0}`)

	_, err := c.ListProductsByShop(ctx, 0, 6, 5)
	require.NoError(t, err)
	_, err = c.ListProductsByShopAndCategory(ctx, 0, 6, 5, 3)
	require.NoError(t, err)

	assert.Equal(t, "page=0&shopId=5&size=6", (*calls)[0].rawQuery)
	assert.Equal(t, "categoryId=3&page=0&shopId=5&size=6", (*calls)[1].rawQuery)
}

func TestCreateProduct_SendsMinorUnits(t *testing.T) {
	c, calls := newBackend(t, http.StatusCreated, `{"id":7,"name":"Tea","price":1999,"shop":{"id":4},"categories":[]}`)

	out, err := c.CreateProduct(context.Background(), responses.MinimalProduct{
		Name:  "Tea",
		Price: decimal.RequireFromString("19.99"),
		Shop:  &responses.ShopRef{ID: 4},
	})
	require.NoError(t, err)

	var sent map[string]any
	require.NoError(t, json.Unmarshal((*calls)[0].body, &sent))
	assert.Equal(t, float64(1999), sent["price"])
	assert.Equal(t, http.MethodPost, (*calls)[0].method)

	assert.True(t, out.Price.Equal(decimal.NewFromInt(1999)), "reply price is not scaled back")
}

func TestEditShop_PutsToCollection(t *testing.T) {
	c, calls := newBackend(t, http.StatusOK, `{"id":3,"name":"Renamed"}`)

	_, err := c.EditShop(context.Background(), responses.MinimalShop{ID: 3, Name: "Renamed"})
	require.NoError(t, err)

	assert.Equal(t, http.MethodPut, (*calls)[0].method)
	assert.Equal(t, "/shops", (*calls)[0].path)
	assert.JSONEq(t, `{"id":3,"name":"Renamed","inVacations":false,"openingHours":null}`, string((*calls)[0].body))
}

func TestDelete_Path(t *testing.T) {
	c, calls := newBackend(t, http.StatusNoContent, "")

	require.NoError(t, c.DeleteCategory(context.Background(), 12))
	assert.Equal(t, http.MethodDelete, (*calls)[0].method)
	assert.Equal(t, "/categories/12", (*calls)[0].path)
}

func TestDo_APIError(t *testing.T) {
	c, _ := newBackend(t, http.StatusNotFound, `{"error":"NOT_FOUND","message":"shop 5 not found"}`)

	_, err := c.GetShop(context.Background(), 5)
	require.Error(t, err)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.Status)
	assert.Equal(t, "NOT_FOUND", apiErr.Code)
	assert.Equal(t, "shop 5 not found", apiErr.Message)
	assert.True(t, HasResponse(err))
	assert.False(t, IsNetwork(err))

	status, ok := StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, 404, status)
}

func TestDo_ServerErrorPlainBody(t *testing.T) {
	c, _ := newBackend(t, http.StatusBadGateway, "upstream down")

	_, err := c.ListCategories(context.Background(), 0, 9)

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, 502, apiErr.Status)
	assert.Nil(t, apiErr.Code)
	assert.Contains(t, apiErr.Error(), "upstream down")
}

func TestDo_NetworkError(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	base := ts.URL
	ts.Close()

	c := New(http.DefaultClient, base, nil, quietLog())
	_, err := c.ListShops(context.Background(), 0, 9)
	require.Error(t, err)

	assert.True(t, IsNetwork(err))
	assert.False(t, HasResponse(err))
	_, ok := StatusCode(err)
	assert.False(t, ok)
}

// truncatedReply answers with status and a body shorter than its Content-Length.
func truncatedReply(t *testing.T, status string) string {
	t.Helper()
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, buf, err := w.(http.Hijacker).Hijack()
		if err != nil {
			return
		}
		defer conn.Close()
		_, _ = buf.WriteString("HTTP/1.1 " + status + "\r\nContent-Type: application/json\r\nContent-Length: 100\r\n\r\n{\"mess")
		_ = buf.Flush()
	}))
	t.Cleanup(ts.Close)
	return ts.URL
}

func TestDo_BrokenBodyKeepsStatus(t *testing.T) {
	c := New(http.DefaultClient, truncatedReply(t, "404 Not Found"), nil, quietLog())

	_, err := c.GetShop(context.Background(), 7)
	require.Error(t, err)

	assert.False(t, IsNetwork(err))
	assert.True(t, HasResponse(err))
	status, ok := StatusCode(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDo_BrokenBodyOnSuccess(t *testing.T) {
	c := New(http.DefaultClient, truncatedReply(t, "200 OK"), nil, quietLog())

	_, err := c.GetShop(context.Background(), 7)
	require.Error(t, err)
	assert.True(t, IsNetwork(err))
}

func TestDo_CanceledContext(t *testing.T) {
	c, calls := newBackend(t, http.StatusOK, onePage)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ListShops(ctx, 0, 9)
	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, IsNetwork(err))
	assert.Empty(t, *calls)
}

func TestDo_BadJSON(t *testing.T) {
	c, _ := newBackend(t, http.StatusOK, `{"content":`)

	_, err := c.ListShops(context.Background(), 0, 9)
	require.Error(t, err)
	assert.False(t, IsNetwork(err))
	assert.False(t, HasResponse(err))
}

func TestListPage_ContractViolationPassesThrough(t *testing.T) {
	c, _ := newBackend(t, http.StatusOK, `{"content":[{"id":1},{"id":2},{"id":3}],"totalPages":1,"number":0}`)

	page, err := c.ListCategories(context.Background(), 0, 2)
	require.NoError(t, err)
	assert.Len(t, page.Content, 3)
}

func TestHeadersApplied(t *testing.T) {
	var got http.Header
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = r.Header.Clone()
		_, _ = io.WriteString(w, `{"id":1,"name":"Food"}`)
	}))
	defer ts.Close()

	c := New(ts.Client(), ts.URL, func(r *http.Request) { r.Header.Set("X-Test", "1") }, quietLog())
	_, err := c.CreateCategory(context.Background(), responses.MinimalCategory{Name: "Food"})
	require.NoError(t, err)

	assert.Equal(t, "1", got.Get("X-Test"))
	assert.Equal(t, "application/json", got.Get("Content-Type"))
}
