package model

// Category is one of the six fixed expense classification buckets.
type Category string

const (
	CategoryAccommodation  Category = "accommodation"
	CategoryFood           Category = "food"
	CategoryTransportation Category = "transportation"
	CategoryActivities     Category = "activities"
	CategoryShopping       Category = "shopping"
	CategoryOther          Category = "other"
)

// Categories lists all buckets in display order.
var Categories = []Category{
	CategoryAccommodation,
	CategoryFood,
	CategoryTransportation,
	CategoryActivities,
	CategoryShopping,
	CategoryOther,
}

// NormalizeCategory maps a stored category string onto the closed enumeration.
// Unrecognized values fold into CategoryOther; the stored record is untouched.
func NormalizeCategory(s string) Category {
	switch Category(s) {
	case CategoryAccommodation, CategoryFood, CategoryTransportation,
		CategoryActivities, CategoryShopping, CategoryOther:
		return Category(s)
	default:
		return CategoryOther
	}
}

// currencySymbols maps supported currency codes to display symbols.
// Codes outside the table pass through verbatim as their own symbol.
var currencySymbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"CAD": "CA$",
	"AUD": "A$",
	"INR": "₹",
}

// CurrencySymbol returns the display symbol for a currency code,
// falling back to the raw code for anything unrecognized.
func CurrencySymbol(code string) string {
	if sym, ok := currencySymbols[code]; ok {
		return sym
	}
	return code
}

// CurrencyCodes lists the currencies offered by the trip forms, in menu order.
// Stored trips may carry any code; this is only the pick list.
var CurrencyCodes = []string{"USD", "EUR", "GBP", "JPY", "CAD", "AUD", "INR"}
