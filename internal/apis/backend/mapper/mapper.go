package mapper

import (
	"sort"

	"github.com/shopspring/decimal"

	"shopadmin/internal/apis/backend/responses"
)

var hundred = decimal.NewFromInt(100)

// ProductPayload is the product body the backend accepts. Price is in minor units.
type ProductPayload struct {
	ID          int64        `json:"id,omitempty"`
	Name        string       `json:"name"`
	Price       int64        `json:"price"`
	Description string       `json:"description,omitempty"`
	Shop        *refPayload  `json:"shop"`
	Categories  []refPayload `json:"categories"`
}

type refPayload struct {
	ID int64 `json:"id"`
}

// ToProductPayload converts a form product for the wire: price x100, refs reduced to ids.
func ToProductPayload(p responses.MinimalProduct) ProductPayload {
	out := ProductPayload{
		ID:          p.ID,
		Name:        p.Name,
		Price:       ToMinorUnits(p.Price),
		Description: p.Description,
		Categories:  make([]refPayload, 0, len(p.Categories)),
	}
	if p.Shop != nil {
		out.Shop = &refPayload{ID: p.Shop.ID}
	}
	for _, c := range p.Categories {
		out.Categories = append(out.Categories, refPayload{ID: c.ID})
	}
	return out
}

func ToMinorUnits(major decimal.Decimal) int64 {
	return major.Mul(hundred).Round(0).IntPart()
}

var dayNames = map[int]string{
	1: "Monday",
	2: "Tuesday",
	3: "Wednesday",
	4: "Thursday",
	5: "Friday",
	6: "Saturday",
	7: "Sunday",
}

func DayName(day int) string {
	if n, ok := dayNames[day]; ok {
		return n
	}
	return "Unknown"
}

// SortOpeningHours returns a copy ordered by day then opening time.
func SortOpeningHours(hours []responses.OpeningHour) []responses.OpeningHour {
	out := make([]responses.OpeningHour, len(hours))
	copy(out, hours)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Day != out[j].Day {
			return out[i].Day < out[j].Day
		}
		return out[i].OpenAt < out[j].OpenAt
	})
	return out
}
