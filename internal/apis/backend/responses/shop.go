package responses

import "time"

type OpeningHour struct {
	ID      int64  `json:"id"`
	Day     int    `json:"day"` // 1 = monday .. 7 = sunday
	OpenAt  string `json:"openAt"`
	CloseAt string `json:"closeAt"`
}

type Shop struct {
	ID           int64         `json:"id"`
	Name         string        `json:"name"`
	CreatedAt    time.Time     `json:"createdAt"`
	NbProducts   int           `json:"nbProducts"`
	InVacations  bool          `json:"inVacations"`
	OpeningHours []OpeningHour `json:"openingHours"`
}

type MinimalOpeningHour struct {
	ID      int64  `json:"id,omitempty"`
	Day     int    `json:"day"`
	OpenAt  string `json:"openAt"`
	CloseAt string `json:"closeAt"`
}

// MinimalShop is the body of create and edit; ID is left out on create.
type MinimalShop struct {
	ID           int64                `json:"id,omitempty"`
	Name         string               `json:"name"`
	InVacations  bool                 `json:"inVacations"`
	OpeningHours []MinimalOpeningHour `json:"openingHours"`
}

// ShopRef is a weak reference to a shop held by a product.
type ShopRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}
