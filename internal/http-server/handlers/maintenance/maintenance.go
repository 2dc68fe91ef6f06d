package maintenance

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"shopadmin/internal/http-server/respond"
)

const Message = "The service is temporarily unavailable. Please try again later."

// Switch is the part of the maintenance mode the view needs.
type Switch interface {
	Active() bool
	Leave() bool
}

// ProbeFunc performs one cheap backend call. A nil error means the backend is back.
type ProbeFunc func(ctx context.Context) error

type Options struct {
	Log     *slog.Logger
	Mode    Switch
	Probe   ProbeFunc
	Timeout time.Duration
	// Home is where a successful retry redirects.
	Home string
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
	if opts.Home == "" {
		opts.Home = "/shops"
	}
	return &Handler{opts: opts, log: log}
}

func (h *Handler) Routes(r chi.Router) {
	r.Get("/", h.Show)
	r.Post("/retry", h.Retry)
}

type status struct {
	Maintenance bool   `json:"maintenance"`
	Message     string `json:"message,omitempty"`
}

func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	if h.opts.Mode == nil || !h.opts.Mode.Active() {
		respond.WriteJSON(w, http.StatusOK, status{Maintenance: false})
		return
	}
	respond.WriteJSON(w, http.StatusServiceUnavailable, status{Maintenance: true, Message: Message})
}

func (h *Handler) Retry(w http.ResponseWriter, r *http.Request) {
	if h.opts.Probe == nil {
		h.log.Error("maintenance handler misconfigured: probe is nil")
		respond.WriteInternalError(w)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.opts.Timeout)
	defer cancel()

	if err := h.opts.Probe(ctx); err != nil {
		h.log.Warn("backend still unavailable", "err", err)
		respond.WriteJSON(w, http.StatusServiceUnavailable, status{Maintenance: true, Message: Message})
		return
	}

	if h.opts.Mode != nil && h.opts.Mode.Leave() {
		h.log.Info("backend reachable again")
	}
	http.Redirect(w, r, h.opts.Home, http.StatusSeeOther)
}
