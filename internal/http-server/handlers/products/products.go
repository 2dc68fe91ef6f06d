package products

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"shopadmin/internal/apis/backend"
	"shopadmin/internal/apis/backend/usecases"
	"shopadmin/internal/http-server/query"
	"shopadmin/internal/http-server/respond"
)

type Options struct {
	Log      *slog.Logger
	Products backend.ProductService
	PageSize int
	// ShopPageSize is the page size of the shop details product list.
	ShopPageSize int
	Timeout      time.Duration
}

type Handler struct {
	opts         Options
	log          *slog.Logger
	shopProducts *usecases.ShopProducts
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
	if opts.ShopPageSize <= 0 {
		opts.ShopPageSize = 6
	}
	return &Handler{
		opts:         opts,
		log:          log,
		shopProducts: usecases.NewShopProducts(opts.Products, log),
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
	page, err := query.Page(r)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.Timeout)
	defer cancel()

	out, err := h.opts.Products.List(ctx, page, h.opts.PageSize)
	if err != nil {
		h.log.Error("list products failed", "err", err, "page", page)
		respond.WriteBackendError(w, r, err, "could not load products")
		return
	}
	respond.WriteJSON(w, http.StatusOK, out.View())
}

// ListByShop serves /shops/{id}/products. A missing or zero categoryId
// lists every category.
func (h *Handler) ListByShop(w http.ResponseWriter, r *http.Request) {
	shopID, err := query.PathID(chi.URLParam(r, "id"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}
	page, err := query.Page(r)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	var category *backend.Category
	if id, present, err := query.Int64(r, "categoryId"); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	} else if present && id != 0 {
		category = &backend.Category{ID: id}
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.Timeout)
	defer cancel()

	out, err := h.shopProducts.List(ctx, shopID, category, page, h.opts.ShopPageSize)
	if err != nil {
		h.log.Error("list shop products failed", "err", err, "shop_id", shopID)
		respond.WriteBackendError(w, r, err, "could not load shop products")
		return
	}
	respond.WriteJSON(w, http.StatusOK, out.View())
}

func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := query.PathID(chi.URLParam(r, "id"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.Timeout)
	defer cancel()

	p, err := h.opts.Products.Get(ctx, id)
	if err != nil {
		h.log.Warn("get product failed", "err", err, "product_id", id)
		respond.WriteBackendError(w, r, err, "product not available")
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in backend.MinimalProduct
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "bad_request", "invalid product body")
		return
	}
	in.ID = 0

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.Timeout)
	defer cancel()

	p, err := h.opts.Products.Create(ctx, in)
	if err != nil {
		h.log.Warn("create product failed", "err", err)
		respond.WriteBackendError(w, r, err, "creation failed")
		return
	}
	respond.WriteJSON(w, http.StatusCreated, p)
}

func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	var in backend.MinimalProduct
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "bad_request", "invalid product body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.Timeout)
	defer cancel()

	p, err := h.opts.Products.Edit(ctx, in)
	if err != nil {
		h.log.Warn("edit product failed", "err", err, "product_id", in.ID)
		respond.WriteBackendError(w, r, err, "update failed")
		return
	}
	respond.WriteJSON(w, http.StatusOK, p)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := query.PathID(chi.URLParam(r, "id"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.Timeout)
	defer cancel()

	if err := h.opts.Products.Delete(ctx, id); err != nil {
		h.log.Warn("delete product failed", "err", err, "product_id", id)
		respond.WriteBackendError(w, r, err, "deletion failed")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]any{"id": id, "deleted": true})
}
