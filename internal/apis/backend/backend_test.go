package backend

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopadmin/internal/apis/backend/endpoints"
	"shopadmin/internal/apis/backend/failure"
	"shopadmin/internal/apis/backend/responses"
	"shopadmin/internal/client/transport"
	"shopadmin/internal/logger"
)

type countingNav struct{ n atomic.Int32 }

func (c *countingNav) Navigate(string) { c.n.Add(1) }

func quietLog() *slog.Logger {
	return logger.Discard()
}

func newServices(t *testing.T, h http.Handler) (Services, *countingNav) {
	t.Helper()
	ts := httptest.NewServer(h)
	t.Cleanup(ts.Close)

	tr, err := transport.Build(transport.Options{HTTPClient: ts.Client(), Logger: quietLog()})
	require.NoError(t, err)

	nav := &countingNav{}
	policy := failure.NewPolicy(nav, failure.RetryPolicy{MaxAttempts: 5, Interval: time.Millisecond}, quietLog())
	return New(tr, ts.URL, policy, quietLog()), nav
}

func TestShops_ListRetriesThenSucceeds(t *testing.T) {
	var calls atomic.Int32
	svcs, nav := newServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		_, _ = io.WriteString(w, `{"content":[{"id":1,"name":"Corner"}],"totalPages":1,"number":0}`)
	}))

	page, err := svcs.Shops.List(context.Background(), 0, 9)
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	assert.Len(t, page.Content, 1)
	assert.Zero(t, nav.n.Load())
}

func TestShops_ListExhausted(t *testing.T) {
	var calls atomic.Int32
	svcs, nav := newServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := svcs.Shops.List(context.Background(), 0, 9)
	assert.ErrorIs(t, err, failure.ErrUnavailable)
	assert.Equal(t, int32(5), calls.Load())
	assert.Equal(t, int32(1), nav.n.Load())
}

func TestShops_SearchNavigatesOnServerError(t *testing.T) {
	var calls atomic.Int32
	svcs, nav := newServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))

	_, err := svcs.Shops.ListSearched(context.Background(), 0, 9, "corner")
	require.Error(t, err)
	assert.Equal(t, int32(1), calls.Load(), "only the plain listing retries")
	assert.Equal(t, int32(1), nav.n.Load())
}

func TestShops_DeleteClientFailure(t *testing.T) {
	svcs, nav := newServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		_, _ = io.WriteString(w, `{"message":"shop has products"}`)
	}))

	err := svcs.Shops.Delete(context.Background(), 3)

	var apiErr *endpoints.APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusConflict, apiErr.Status)
	assert.Zero(t, nav.n.Load())
}

func TestEditRequiresID(t *testing.T) {
	var calls atomic.Int32
	svcs, nav := newServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	ctx := context.Background()

	_, err := svcs.Shops.Edit(ctx, MinimalShop{Name: "x"})
	assert.ErrorIs(t, err, ErrMissingID)
	_, err = svcs.Products.Edit(ctx, MinimalProduct{Name: "x"})
	assert.ErrorIs(t, err, ErrMissingID)
	_, err = svcs.Categories.Edit(ctx, MinimalCategory{Name: "x"})
	assert.ErrorIs(t, err, ErrMissingID)

	assert.Zero(t, calls.Load())
	assert.Zero(t, nav.n.Load())
}

func TestProducts_EditSendsMinorUnits(t *testing.T) {
	var (
		mu   sync.Mutex
		sent map[string]any
	)
	svcs, _ := newServices(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		_ = json.NewDecoder(r.Body).Decode(&sent)
		mu.Unlock()
		_, _ = io.WriteString(w, `{"id":8,"name":"Tea","price":1999,"shop":{"id":2},"categories":[{"id":1,"name":"Drinks"}]}`)
	}))

	out, err := svcs.Products.Edit(context.Background(), MinimalProduct{
		ID:         8,
		Name:       "Tea",
		Price:      decimal.RequireFromString("19.99"),
		Shop:       &responses.ShopRef{ID: 2, Name: "Corner"},
		Categories: []responses.CategoryRef{{ID: 1, Name: "Drinks"}},
	})
	require.NoError(t, err)

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, float64(1999), sent["price"])
	assert.Equal(t, map[string]any{"id": float64(2)}, sent["shop"])
	assert.Equal(t, []any{map[string]any{"id": float64(1)}}, sent["categories"])
	assert.Equal(t, "1999", out.Price.String())
}

func TestProducts_NetworkFailureNavigates(t *testing.T) {
	ts := httptest.NewServer(http.NotFoundHandler())
	base := ts.URL
	ts.Close()

	tr, err := transport.Build(transport.Options{HTTPClient: http.DefaultClient, Logger: quietLog()})
	require.NoError(t, err)
	nav := &countingNav{}
	svcs := New(tr, base, failure.NewPolicy(nav, failure.RetryPolicy{Interval: time.Millisecond}, quietLog()), quietLog())

	_, err = svcs.Products.Get(context.Background(), 1)
	assert.True(t, endpoints.IsNetwork(err))
	assert.Equal(t, int32(1), nav.n.Load())
}

func TestParseSortKey(t *testing.T) {
	k, err := ParseSortKey("createdAt")
	require.NoError(t, err)
	assert.Equal(t, SortByCreatedAt, k)

	_, err = ParseSortKey("price")
	assert.Error(t, err)
}
