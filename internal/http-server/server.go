package httpserver

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"shopadmin/internal/apis/backend"
	"shopadmin/internal/http-server/handlers/categories"
	"shopadmin/internal/http-server/handlers/maintenance"
	"shopadmin/internal/http-server/handlers/products"
	"shopadmin/internal/http-server/handlers/shops"
	"shopadmin/internal/http-server/middleware"
	"shopadmin/internal/http-server/respond"
)

type Server struct {
	log    *slog.Logger
	mode   maintenance.Switch
	router chi.Router
}

func New(log *slog.Logger, mode maintenance.Switch) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{log: log, mode: mode, router: chi.NewRouter()}
}

func (s *Server) Handler() http.Handler {
	var h http.Handler = s.router
	h = middleware.MaintenanceGate(s.mode)(h)
	h = chimw.Recoverer(h)
	h = middleware.AccessLog(s.log)(h)
	h = middleware.WithRequestID(h)
	return h
}

type Deps struct {
	Services             backend.Services
	PageSize             int
	ShopProductsPageSize int
	Timeout              time.Duration
	Probe                func(ctx context.Context) error
}

func (s *Server) RegisterRoutes(dep Deps) {
	shopsH := shops.New(shops.Options{
		Log:      s.log,
		Shops:    dep.Services.Shops,
		PageSize: dep.PageSize,
		Timeout:  dep.Timeout,
	})
	productsH := products.New(products.Options{
		Log:          s.log,
		Products:     dep.Services.Products,
		PageSize:     dep.PageSize,
		ShopPageSize: dep.ShopProductsPageSize,
		Timeout:      dep.Timeout,
	})
	categoriesH := categories.New(categories.Options{
		Log:        s.log,
		Categories: dep.Services.Categories,
		PageSize:   dep.PageSize,
		Timeout:    dep.Timeout,
	})
	maintenanceH := maintenance.New(maintenance.Options{
		Log:     s.log,
		Mode:    s.mode,
		Probe:   dep.Probe,
		Timeout: dep.Timeout,
	})

	s.router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		respond.WriteJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	s.router.Route("/shops", func(r chi.Router) {
		shopsH.Routes(r)
		r.Get("/{id}/products", productsH.ListByShop)
	})
	s.router.Route("/products", productsH.Routes)
	s.router.Route("/categories", categoriesH.Routes)
	s.router.Route("/maintenance", maintenanceH.Routes)
}
