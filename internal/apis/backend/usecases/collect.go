package usecases

import (
	"context"
	"errors"
	"fmt"

	"shopadmin/internal/apis/backend/responses"
)

const maxCollected = 200_000

// PageFunc fetches one zero-based page.
type PageFunc[T any] func(ctx context.Context, page int) (responses.Page[T], error)

// Collect walks pages from 0 until the server reports the last one or maxPages is hit.
func Collect[T any](ctx context.Context, fetch PageFunc[T], maxPages int) ([]T, error) {
	if maxPages <= 0 {
		maxPages = 500
	}

	out := make([]T, 0, 128)
	for page := 0; page < maxPages; page++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		p, err := fetch(ctx, page)
		if err != nil {
			return nil, fmt.Errorf("page=%d: %w", page, err)
		}

		out = append(out, p.Content...)
		if len(out) > maxCollected {
			return nil, errors.New("too many items collected: possible infinite pagination")
		}

		if p.Last() {
			break
		}
	}
	return out, nil
}
