package responses

import "github.com/shopspring/decimal"

// Product as read from the backend. Price is already in major units.
type Product struct {
	ID          int64           `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Shop        *ShopRef        `json:"shop"`
	Categories  []CategoryRef   `json:"categories"`
}

// MinimalProduct is what forms hand to create and edit.
// Price is in major units; the endpoint layer converts it.
type MinimalProduct struct {
	ID          int64           `json:"id,omitempty"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description,omitempty"`
	Shop        *ShopRef        `json:"shop"`
	Categories  []CategoryRef   `json:"categories"`
}
