package bootstrap

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopadmin/internal/config"
	"shopadmin/internal/logger"
	"shopadmin/internal/maintenance"
)

func profile(baseURL string) *config.Config {
	cfg := &config.Config{Env: "local"}
	cfg.Backend.BaseURL = baseURL
	cfg.HTTP.TimeoutSeconds = 2
	cfg.HTTP.MaxInFlight = 2
	cfg.Retry.MaxAttempts = 3
	cfg.Retry.IntervalSeconds = 7
	return cfg
}

func TestRetryPolicy(t *testing.T) {
	rp := RetryPolicy(profile("http://x"), logger.Discard())

	assert.Equal(t, 3, rp.MaxAttempts)
	assert.Equal(t, 7*time.Second, rp.Interval)
	require.NotNil(t, rp.OnRetry)
	rp.OnRetry(1, errors.New("boom"))
}

func TestBuildServices(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "shopadmin/1.0", r.Header.Get("User-Agent"))
		_, _ = io.WriteString(w, `{"id":4,"name":"Drinks"}`)
	}))
	defer ts.Close()

	mode := maintenance.New(logger.Discard(), nil)
	svcs, err := BuildServices(profile(ts.URL), logger.Discard(), mode)
	require.NoError(t, err)

	c, err := svcs.Categories.Get(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "Drinks", c.Name)
	assert.False(t, mode.Active())
}

func TestBuildTransport_BadProxy(t *testing.T) {
	cfg := profile("http://x")
	cfg.HTTP.ProxyURL = "http://bad host:1"

	_, err := BuildTransport(cfg, logger.Discard())
	assert.Error(t, err)
}
