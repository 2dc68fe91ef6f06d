package backend

import (
	"errors"
	"log/slog"
	"net/http"

	"shopadmin/internal/apis/backend/endpoints"
	"shopadmin/internal/apis/backend/failure"
	"shopadmin/internal/apis/backend/responses"
	"shopadmin/internal/client/transport"
)

type Shop = responses.Shop
type Product = responses.Product
type Category = responses.Category
type MinimalShop = responses.MinimalShop
type MinimalProduct = responses.MinimalProduct
type MinimalCategory = responses.MinimalCategory

var ErrMissingID = errors.New("id is required")

// Services bundles the three resource clients sharing one transport and one failure policy.
type Services struct {
	Shops      ShopService
	Products   ProductService
	Categories CategoryService
}

func New(tr transport.Transport, baseURL string, policy *failure.Policy, logger *slog.Logger) Services {
	if logger == nil {
		logger = slog.Default()
	}
	if policy == nil {
		policy = failure.NewPolicy(nil, failure.DefaultRetryPolicy(), logger)
	}

	api := endpoints.New(tr, baseURL, applyDefaultHeaders, logger)

	return Services{
		Shops:      &shopService{api: api, policy: policy},
		Products:   &productService{api: api, policy: policy},
		Categories: &categoryService{api: api, policy: policy},
	}
}

func applyDefaultHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("User-Agent", "shopadmin/1.0")
}
