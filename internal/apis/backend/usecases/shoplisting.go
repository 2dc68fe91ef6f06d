package usecases

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strconv"
	"strings"
	"time"

	"shopadmin/internal/apis/backend"
	"shopadmin/internal/apis/backend/responses"
)

const filterDateLayout = "2006-01-02"

// ShopFilters builds the raw filter fragment of the shop listing.
type ShopFilters struct {
	InVacations   *bool
	CreatedAfter  *time.Time
	CreatedBefore *time.Time
}

func (f ShopFilters) Empty() bool {
	return f.InVacations == nil && f.CreatedAfter == nil && f.CreatedBefore == nil
}

// Fragment renders the filters as "&key=value..." in a fixed order.
func (f ShopFilters) Fragment() string {
	var b strings.Builder
	if f.InVacations != nil {
		b.WriteString("&inVacations=" + strconv.FormatBool(*f.InVacations))
	}
	if f.CreatedAfter != nil {
		b.WriteString("&createdAfter=" + url.QueryEscape(f.CreatedAfter.Format(filterDateLayout)))
	}
	if f.CreatedBefore != nil {
		b.WriteString("&createdBefore=" + url.QueryEscape(f.CreatedBefore.Format(filterDateLayout)))
	}
	return b.String()
}

func ParseFilterDate(s string) (time.Time, error) {
	t, err := time.Parse(filterDateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("date must be YYYY-MM-DD: %q", s)
	}
	return t, nil
}

type ShopQuery struct {
	Page    int
	Size    int
	Search  string
	Sort    backend.SortKey
	Filters ShopFilters
}

// Mode names which listing a query resolves to.
func (q ShopQuery) Mode() string {
	switch {
	case q.Search != "":
		return "search"
	case q.Sort != "":
		return "sort"
	case !q.Filters.Empty():
		return "filter"
	default:
		return "plain"
	}
}

type ShopListing struct {
	shops backend.ShopService
	log   *slog.Logger
}

func NewShopListing(shops backend.ShopService, logger *slog.Logger) *ShopListing {
	if logger == nil {
		logger = slog.Default()
	}
	return &ShopListing{shops: shops, log: logger}
}

// List applies one mode per call: search, then sort, then filters, then the plain listing.
func (l *ShopListing) List(ctx context.Context, q ShopQuery) (responses.Page[backend.Shop], error) {
	if q.Page < 0 {
		return responses.Page[backend.Shop]{}, fmt.Errorf("page must be >= 0")
	}
	if q.Size <= 0 {
		return responses.Page[backend.Shop]{}, fmt.Errorf("size must be > 0")
	}

	l.log.Debug("list shops", "mode", q.Mode(), "page", q.Page, "size", q.Size)

	switch q.Mode() {
	case "search":
		return l.shops.ListSearched(ctx, q.Page, q.Size, q.Search)
	case "sort":
		return l.shops.ListSorted(ctx, q.Page, q.Size, q.Sort)
	case "filter":
		return l.shops.ListFiltered(ctx, q.Page, q.Size, q.Filters.Fragment())
	default:
		return l.shops.List(ctx, q.Page, q.Size)
	}
}
