package endpoints

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const maxBodyBytes = 4 * 1024 * 1024

type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

type Client struct {
	Doer         Doer
	BaseURL      string
	ApplyHeaders func(*http.Request)
	Log          *slog.Logger
}

func New(doer Doer, baseURL string, applyHeaders func(*http.Request), log *slog.Logger) *Client {
	if log == nil {
		log = slog.Default()
	}
	return &Client{
		Doer:         doer,
		BaseURL:      strings.TrimRight(baseURL, "/"),
		ApplyHeaders: applyHeaders,
		Log:          log,
	}
}

// Request describes one backend call. RawQuery is appended after Query as is.
type Request struct {
	Method   string
	Path     string
	Query    url.Values
	RawQuery string
	Body     any
}

type Response struct {
	Status int
	Header http.Header
	Body   []byte
}

// Do performs exactly one HTTP call.
// A non-2xx reply yields *APIError even when its body could not be read,
// no reply at all yields *NetworkError.
func (c *Client) Do(ctx context.Context, r Request) (Response, error) {
	req, err := c.newReq(ctx, r)
	if err != nil {
		return Response{}, err
	}

	start := time.Now()
	resp, err := c.Doer.Do(req)
	if err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return Response{}, cerr
		}
		return Response{}, &NetworkError{Method: r.Method, URL: req.URL.String(), Err: err}
	}

	b, err := readLimited(resp, maxBodyBytes)
	if err != nil {
		if cerr := ctx.Err(); cerr != nil {
			return Response{}, cerr
		}
		if resp.StatusCode < 200 || resp.StatusCode > 299 {
			apiErr := ParseAPIError(resp.StatusCode, bytes.TrimSpace(b))
			apiErr.Message = fmt.Sprintf("read body: %v", err)
			return Response{}, apiErr
		}
		return Response{}, &NetworkError{Method: r.Method, URL: req.URL.String(), Err: fmt.Errorf("read body: %w", err)}
	}

	c.Log.Debug("backend call",
		"method", r.Method,
		"url", req.URL.String(),
		"status", resp.StatusCode,
		"bytes", len(b),
		"duration_ms", time.Since(start).Milliseconds(),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Response{}, ParseAPIError(resp.StatusCode, bytes.TrimSpace(b))
	}

	return Response{Status: resp.StatusCode, Header: resp.Header, Body: b}, nil
}

func (c *Client) newReq(ctx context.Context, r Request) (*http.Request, error) {
	if c.BaseURL == "" {
		return nil, fmt.Errorf("BaseURL is empty")
	}
	path := r.Path
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	target := c.BaseURL + path
	if q := joinQuery(r.Query, r.RawQuery); q != "" {
		target += "?" + q
	}

	var body io.Reader
	if r.Body != nil {
		b, err := json.Marshal(r.Body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s body: %w", r.Method, path, err)
		}
		body = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, r.Method, target, body)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.ApplyHeaders != nil {
		c.ApplyHeaders(req)
	}
	return req, nil
}

func joinQuery(q url.Values, raw string) string {
	enc := q.Encode()
	raw = strings.TrimLeft(raw, "?&")
	switch {
	case raw == "":
		return enc
	case enc == "":
		return raw
	default:
		return enc + "&" + raw
	}
}

func readLimited(resp *http.Response, limit int64) ([]byte, error) {
	defer resp.Body.Close()
	return io.ReadAll(io.LimitReader(resp.Body, limit))
}

func decodeJSON[T any](r Response, what string) (T, error) {
	var out T
	if err := json.Unmarshal(r.Body, &out); err != nil {
		return out, fmt.Errorf("%s: bad json body=%s: %w", what, string(r.Body[:min(len(r.Body), 1024)]), err)
	}
	return out, nil
}
