package travel

import "strings"

// Category is the closed set of query topics the consultant understands.
type Category string

const (
	CategoryVisa    Category = "visa"
	CategoryHotel   Category = "hotel"
	CategoryFlight  Category = "flight"
	CategoryEvent   Category = "event"
	CategoryCity    Category = "city"
	CategoryGeneric Category = "generic"
)

// Categories lists every known category in a stable order.
func Categories() []Category {
	return []Category{
		CategoryVisa,
		CategoryHotel,
		CategoryFlight,
		CategoryEvent,
		CategoryCity,
		CategoryGeneric,
	}
}

// ParseCategory maps free text onto a Category. Input is trimmed and
// lowercased before matching; anything unrecognized reports ok=false.
func ParseCategory(raw string) (Category, bool) {
	normalized := strings.ToLower(strings.TrimSpace(raw))
	switch Category(normalized) {
	case CategoryVisa, CategoryHotel, CategoryFlight, CategoryEvent, CategoryCity, CategoryGeneric:
		return Category(normalized), true
	default:
		return "", false
	}
}
