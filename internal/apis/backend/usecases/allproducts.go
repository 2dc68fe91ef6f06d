package usecases

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"sync/atomic"
	"time"

	"shopadmin/internal/apis/backend"
	"shopadmin/internal/apis/backend/failure"
	"shopadmin/internal/apis/backend/responses"
)

type ShopProductsResult struct {
	ShopID   int64
	Products []backend.Product
	Err      error
}

// ProductsScan collects the products of many shops with a fixed worker pool.
type ProductsScan struct {
	Products backend.ProductService
	Log      *slog.Logger
	Workers  int
	PageSize int
	MaxPages int
	// Progress is the interval of the progress log line; zero disables it.
	Progress time.Duration
}

// Run returns one result per shop in shopIDs order. A failing shop does not
// stop the others; its error is kept in the result.
func (s *ProductsScan) Run(ctx context.Context, shopIDs []int64) []ShopProductsResult {
	log := s.Log
	if log == nil {
		log = slog.Default()
	}
	workers := s.Workers
	if workers <= 0 {
		workers = 4
	}
	if workers > len(shopIDs) {
		workers = len(shopIDs)
	}

	ids := make(chan int, len(shopIDs))
	for i := range shopIDs {
		ids <- i
	}
	close(ids)

	out := make([]ShopProductsResult, len(shopIDs))
	var scanned, failed uint64

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range ids {
				shopID := shopIDs[idx]
				products, err := Collect(ctx, func(ctx context.Context, page int) (responses.Page[backend.Product], error) {
					return s.Products.ListByShop(ctx, page, s.PageSize, shopID)
				}, s.MaxPages)
				if err != nil {
					atomic.AddUint64(&failed, 1)
					log.Warn("collect shop products failed", "shop_id", shopID, "err", err)
				}
				out[idx] = ShopProductsResult{ShopID: shopID, Products: products, Err: err}
				atomic.AddUint64(&scanned, 1)
			}
		}()
	}

	done := make(chan struct{})
	if s.Progress > 0 {
		go func() {
			ticker := time.NewTicker(s.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					log.Info("scan progress",
						"scanned", atomic.LoadUint64(&scanned),
						"failed", atomic.LoadUint64(&failed),
						"total", len(shopIDs),
					)
				}
			}
		}()
	}

	wg.Wait()
	close(done)
	return out
}

// Unavailable returns the first result error that means the backend is down or
// the scan was cancelled. Client failures of single shops are not reported.
func Unavailable(results []ShopProductsResult) error {
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		if failure.Classify(r.Err).Unavailable() ||
			errors.Is(r.Err, context.Canceled) || errors.Is(r.Err, context.DeadlineExceeded) {
			return fmt.Errorf("shop %d: %w", r.ShopID, r.Err)
		}
	}
	return nil
}

// Flatten joins the successful results, ordered by shop id.
func Flatten(results []ShopProductsResult) []backend.Product {
	sorted := make([]ShopProductsResult, len(results))
	copy(sorted, results)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].ShopID < sorted[j].ShopID })

	var all []backend.Product
	for _, r := range sorted {
		if r.Err == nil {
			all = append(all, r.Products...)
		}
	}
	if all == nil {
		all = []backend.Product{}
	}
	return all
}
