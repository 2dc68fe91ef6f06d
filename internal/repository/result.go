package repository

import (
	"shopadmin/internal/apis/backend/responses"
)

type ShopsResult struct {
	FetchedAt string           `json:"fetched_at"`
	Backend   string           `json:"backend"`
	Shops     []responses.Shop `json:"shops"`
	Count     int              `json:"count"`
}

type ProductsResult struct {
	FetchedAt string              `json:"fetched_at"`
	Backend   string              `json:"backend"`
	ShopID    int64               `json:"shop_id,omitempty"`
	Products  []responses.Product `json:"products"`
	Count     int                 `json:"count"`
}
