package models

// Category represents a named expense category.
// Names are unique across all categories (case-sensitive exact match).
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DefaultCategories are seeded into an empty store, in this order.
var DefaultCategories = []string{
	"Food",
	"Transportation",
	"Housing",
	"Utilities",
	"Entertainment",
	"Other",
}
