package responses

// AllCategoriesLabel names the pseudo category that stands for "no filter".
// It is never sent to the backend.
const AllCategoriesLabel = "All categories"

type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type CategoryRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name,omitempty"`
}

type MinimalCategory struct {
	ID   int64  `json:"id,omitempty"`
	Name string `json:"name"`
}

func AllCategories() Category {
	return Category{Name: AllCategoriesLabel}
}

// IsAll reports whether c is the "no filter" sentinel.
func (c Category) IsAll() bool {
	return c.Name == AllCategoriesLabel
}
