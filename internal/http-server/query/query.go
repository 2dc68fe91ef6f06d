package query

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
)

func Int(r *http.Request, key string) (val int, present bool, err error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, false, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, true, fmt.Errorf("%s must be integer", key)
	}
	return n, true, nil
}

func Int64(r *http.Request, key string) (val int64, present bool, err error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return 0, false, nil
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, true, fmt.Errorf("%s must be integer", key)
	}
	return n, true, nil
}

func Bool(r *http.Request, key string) (val bool, present bool, err error) {
	raw := r.URL.Query().Get(key)
	if raw == "" {
		return false, false, nil
	}
	b, err := strconv.ParseBool(raw)
	if err != nil {
		return false, true, fmt.Errorf("%s must be true or false", key)
	}
	return b, true, nil
}

func String(r *http.Request, key string) string {
	return strings.TrimSpace(r.URL.Query().Get(key))
}

// Page reads the 1-based "page" parameter and returns the zero-based backend index.
func Page(r *http.Request) (int, error) {
	v, present, err := Int(r, "page")
	if err != nil {
		return 0, err
	}
	if !present {
		return 0, nil
	}
	if v < 1 {
		return 0, fmt.Errorf("page must be >= 1")
	}
	return v - 1, nil
}

// PathID parses an entity id taken from the route.
func PathID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id must be a positive integer")
	}
	return id, nil
}
