package transport

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"sync/atomic"
	"time"
)

// Transport sends one request and returns whatever came back. It never retries.
type Transport interface {
	Do(req *http.Request) (*http.Response, error)
}

type Options struct {
	HTTPClient *http.Client
	// MaxInFlight caps concurrent requests; 0 means no cap.
	MaxInFlight int
	Logger      *slog.Logger
}

var (
	errNoClient        = errors.New("transport: HTTPClient is nil")
	errNegativeLimiter = errors.New("transport: MaxInFlight must be >= 0")
)

// Build returns the plain client transport, wrapped in a Limiter when MaxInFlight > 0.
func Build(opts Options) (Transport, error) {
	switch {
	case opts.HTTPClient == nil:
		return nil, errNoClient
	case opts.MaxInFlight < 0:
		return nil, errNegativeLimiter
	}
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	base := &HTTPTransport{Client: opts.HTTPClient}
	if opts.MaxInFlight == 0 {
		return base, nil
	}

	log.Debug("backend in-flight cap", "max_in_flight", opts.MaxInFlight)
	return NewLimiter(base, opts.MaxInFlight, log), nil
}

type HTTPTransport struct {
	Client *http.Client
}

func (h *HTTPTransport) Do(req *http.Request) (*http.Response, error) {
	return h.Client.Do(req)
}

// Limiter holds a request until one of its slots is free or the request
// context ends. The slot is released when Base.Do returns.
type Limiter struct {
	Base  Transport
	slots chan struct{}
	busy  atomic.Int64
	log   *slog.Logger
}

func NewLimiter(base Transport, slots int, log *slog.Logger) *Limiter {
	if slots <= 0 {
		slots = 1
	}
	if log == nil {
		log = slog.Default()
	}
	return &Limiter{Base: base, slots: make(chan struct{}, slots), log: log}
}

func (l *Limiter) Do(req *http.Request) (*http.Response, error) {
	if err := l.wait(req.Context()); err != nil {
		return nil, err
	}
	l.busy.Add(1)
	defer func() {
		l.busy.Add(-1)
		<-l.slots
	}()

	return l.Base.Do(req)
}

func (l *Limiter) wait(ctx context.Context) error {
	select {
	case l.slots <- struct{}{}:
		return nil
	default:
	}

	start := time.Now()
	select {
	case l.slots <- struct{}{}:
		l.log.Debug("waited for backend slot", "wait_ms", time.Since(start).Milliseconds())
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// InFlight is the number of requests currently sent through l.
func (l *Limiter) InFlight() int64 {
	return l.busy.Load()
}
