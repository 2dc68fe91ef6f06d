package categories

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"shopadmin/internal/apis/backend"
	"shopadmin/internal/apis/backend/responses"
	"shopadmin/internal/http-server/query"
	"shopadmin/internal/http-server/respond"
)

type Options struct {
	Log        *slog.Logger
	Categories backend.CategoryService
	PageSize   int
	Timeout    time.Duration
}

type Handler struct {
	opts Options
	log  *slog.Logger
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
	return &Handler{opts: opts, log: log}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.List)
	r.Post("/", h.Create)
	r.Put("/", h.Edit)
	r.Get("/options", h.Options)
	r.Get("/{id}", h.Get)
	r.Delete("/{id}", h.Delete)
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) (responses.Page[backend.Category], bool) {
	page, err := query.Page(r)
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
		return responses.Page[backend.Category]{}, false
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.Timeout)
	defer cancel()

	out, err := h.opts.Categories.List(ctx, page, h.opts.PageSize)
	if err != nil {
		h.log.Error("list categories failed", "err", err, "page", page)
		respond.WriteBackendError(w, r, err, "could not load categories")
		return responses.Page[backend.Category]{}, false
	}
	return out, true
}

func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	out, ok := h.list(w, r)
	if !ok {
		return
	}
	respond.WriteJSON(w, http.StatusOK, out.View())
}

// Options feeds the category select of the shop details view: the first page
// starts with the "all categories" entry.
func (h *Handler) Options(w http.ResponseWriter, r *http.Request) {
	out, ok := h.list(w, r)
	if !ok {
		return
	}
	if out.PageNumber == 0 {
		items := make([]backend.Category, 0, len(out.Content)+1)
		items = append(items, responses.AllCategories())
		out.Content = append(items, out.Content...)
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

	c, err := h.opts.Categories.Get(ctx, id)
	if err != nil {
		h.log.Warn("get category failed", "err", err, "category_id", id)
		respond.WriteBackendError(w, r, err, "category not available")
		return
	}
	respond.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var in backend.MinimalCategory
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "bad_request", "invalid category body")
		return
	}
	in.ID = 0

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.Timeout)
	defer cancel()

	c, err := h.opts.Categories.Create(ctx, in)
	if err != nil {
		h.log.Warn("create category failed", "err", err)
		respond.WriteBackendError(w, r, err, "creation failed")
		return
	}
	respond.WriteJSON(w, http.StatusCreated, c)
}

func (h *Handler) Edit(w http.ResponseWriter, r *http.Request) {
	var in backend.MinimalCategory
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		respond.WriteError(w, http.StatusBadRequest, "bad_request", "invalid category body")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.Timeout)
	defer cancel()

	c, err := h.opts.Categories.Edit(ctx, in)
	if err != nil {
		h.log.Warn("edit category failed", "err", err, "category_id", in.ID)
		respond.WriteBackendError(w, r, err, "update failed")
		return
	}
	respond.WriteJSON(w, http.StatusOK, c)
}

func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := query.PathID(chi.URLParam(r, "id"))
	if err != nil {
		respond.WriteError(w, http.StatusBadRequest, "bad_request", err.Error())
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.Timeout)
	defer cancel()

	if err := h.opts.Categories.Delete(ctx, id); err != nil {
		h.log.Warn("delete category failed", "err", err, "category_id", id)
		respond.WriteBackendError(w, r, err, "deletion failed")
		return
	}
	respond.WriteJSON(w, http.StatusOK, map[string]any{"id": id, "deleted": true})
}
