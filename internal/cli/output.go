package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"shopadmin/internal/apis/backend/responses"
)

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printPage[T any](w io.Writer, p responses.Page[T]) error {
	return printJSON(w, p.View())
}

func readPayload[T any](path string) (T, error) {
	var v T
	if path == "" {
		return v, fmt.Errorf("--file is required")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return v, err
	}
	if err := json.Unmarshal(b, &v); err != nil {
		return v, fmt.Errorf("parse %s: %w", path, err)
	}
	return v, nil
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id must be a positive integer, got %q", raw)
	}
	return id, nil
}

// zeroBased turns the 1-based --page flag into a backend page index.
func zeroBased(page int) (int, error) {
	if page < 1 {
		return 0, fmt.Errorf("--page must be >= 1")
	}
	return page - 1, nil
}

func parseBoolFlag(name, raw string) (bool, error) {
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("--%s must be true or false", name)
	}
	return v, nil
}
