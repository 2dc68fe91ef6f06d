package shops

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"shopadmin/internal/apis/backend"
	"shopadmin/internal/apis/backend/mapper"
	"shopadmin/internal/apis/backend/usecases"
	"shopadmin/internal/http-server/query"
	"shopadmin/internal/http-server/respond"
)

type Options struct {
	Log      *slog.Logger
	Shops    backend.ShopService
	PageSize int
	Timeout  time.Duration
}

type OpeningHourView struct {
	ID      int64  `json:"id"`
	Day     int    `json:"day"`
	DayName string `json:"day_name"`
	OpenAt  string `json:"open_at"`
	CloseAt string `json:"close_at"`
}

type ShopView struct {
	ID           int64             `json:"id"`
	Name         string            `json:"name"`
	CreatedAt    time.Time         `json:"created_at"`
	NbProducts   int               `json:"nb_products"`
	InVacations  bool              `json:"in_vacations"`
	OpeningHours []OpeningHourView `json:"opening_hours"`
}

func toView(s backend.Shop) ShopView {
	hours := mapper.SortOpeningHours(s.OpeningHours)
	v := ShopView{
		ID:           s.ID,
		Name:         s.Name,
		CreatedAt:    s.CreatedAt,
		NbProducts:   s.NbProducts,
		InVacations:  s.InVacations,
		OpeningHours: make([]OpeningHourView, 0, len(hours)),
	}
	for _, h := range hours {
		v.OpeningHours = append(v.OpeningHours, OpeningHourView{
			ID:      h.ID,
			Day:     h.Day,
			DayName: mapper.DayName(h.Day),
			OpenAt:  h.OpenAt,
			CloseAt: h.CloseAt,
		})
	}
	return v
}

type Handler struct {
	opts    Options
	log     *slog.Logger
	listing *usecases.ShopListing
}

func New(opts Options) *Handler {
	log := opts.Log
	if log == nil {
		log = slog.Default()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 30 * time.Second
	}
	if opts.PageSize <= 0 {
		opts.PageSize = 9
	}
	return &Handler{
		opts:    opts,
		log:     log,
		listing: usecases.NewShopListing(opts.Shops, log),
	}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/", h.Edit)
	r.Get("/{id}", h.Get)
	r.Delete("/{id}", h.Delete)
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q, err := parseQuery(r, h.opts.PageSize)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.Timeout)
	defer cancel()

	page, err := h.listing.List(ctx, q)
	if err != nil {
		h.log.Error("list shops failed", "err", err, "mode", q.Mode())
		respond.WriteBackendError(w, r, err, "could not load shops")
		return
	}
	respond.WriteJSON(w, http.StatusOK, page.View())
}

func parseQuery(r *http.Request, size int) (usecases.ShopQuery, error) {
	page, err := query.Page(r)
	if err != nil {
		return usecases.ShopQuery{}, err
	}
	q := usecases.ShopQuery{Page: page, Size: size, Search: query.String(r, "search")}

	if raw := query.String(r, "sort"); raw != "" {
		key, err := backend.ParseSortKey(raw)
		if err != nil {
			return usecases.ShopQuery{}, err
		}
		q.Sort = key
	}

	if v, present, err := query.Bool(r, "inVacations"); err != nil {
		return usecases.ShopQuery{}, err
	} else if present {
		q.Filters.InVacations = &v
	}
	if raw := query.String(r, "createdAfter"); raw != "" {
		t, err := usecases.ParseFilterDate(raw)
		if err != nil {
			return usecases.ShopQuery{}, err
		}
		q.Filters.CreatedAfter = &t
	}
	if raw := query.String(r, "createdBefore"); raw != "" {
		t, err := usecases.ParseFilterDate(raw)
		if err != nil {
			return usecases.ShopQuery{}, err
		}
		q.Filters.CreatedBefore = &t
	}
	return q, nil
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := query.PathID(chi.URLParam(r, "id"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.Timeout)
	defer cancel()

	shop, err := h.opts.Shops.Get(ctx, id)
	if err != nil {
		h.log.Warn("get shop failed", "err", err, "shop_id", id)
		respond.WriteBackendError(w, r, err, "shop not available")
		return
	}
	respond.WriteJSON(w, http.StatusOK, toView(shop))
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in backend.MinimalShop
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "bad_request", "invalid shop body")
		return
	}
	in.ID = 0

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.Timeout)
	defer cancel()

	shop, err := h.opts.Shops.Create(ctx, in)
	if err != nil {
		h.log.Warn("create shop failed", "err", err)
		respond.WriteBackendError(w, r, err, "creation failed")
		return
	}
	respond.WriteJSON(w, http.StatusCreated, toView(shop))
}

func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	var in backend.MinimalShop
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "bad_request", "invalid shop body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.Timeout)
	defer cancel()

	shop, err := h.opts.Shops.Edit(ctx, in)
	if err != nil {
		h.log.Warn("edit shop failed", "err", err, "shop_id", in.ID)
		respond.WriteBackendError(w, r, err, "update failed")
		return
	}
	respond.WriteJSON(w, http.StatusOK, toView(shop))
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := query.PathID(chi.URLParam(r, "id"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.Timeout)
	defer cancel()

	if err := h.opts.Shops.Delete(ctx, id); err != nil {
		h.log.Warn("delete shop failed", "err", err, "shop_id", id)
		respond.WriteBackendError(w, r, err, "deletion failed")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]any{"id": id, "deleted": true})
}
