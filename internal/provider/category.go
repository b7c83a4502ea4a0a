package provider

import (
	"strings"
	"unicode"
)

// Category is the marketplace vertical a provider is listed under.
type Category string

const (
	FoodBeverage  Category = "FoodBeverage"
	Entertainment Category = "Entertainment"
	Venues        Category = "Venues"
	Vendors       Category = "Vendors"
)

// DefaultCategory is assumed when a record carries no usable category.
const DefaultCategory = Vendors

// Categories lists every category in collection search order.
var Categories = []Category{FoodBeverage, Entertainment, Venues, Vendors}

// Valid reports whether c is one of the four known categories.
func (c Category) Valid() bool {
	switch c {
	case FoodBeverage, Entertainment, Venues, Vendors:
		return true
	}
	return false
}

// ParseCategory maps the labels the onboarding forms have stored over time
// ("Food & Beverage", "foodBeverage", "venue", ...) onto a Category.
func ParseCategory(v any) (Category, bool) {
	s, ok := v.(string)
	if !ok {
		return "", false
	}
	key := strings.ToLower(strings.Join(strings.FieldsFunc(s, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	}), ""))

	switch key {
	case "foodbeverage", "foodandbeverage", "foodbeverages", "food", "catering", "caterer":
		return FoodBeverage, true
	case "entertainment", "entertainer", "entertainers", "performer":
		return Entertainment, true
	case "venues", "venue":
		return Venues, true
	case "vendors", "vendor":
		return Vendors, true
	}
	return "", false
}

// detailsKey is the nested object holding category-specific fields,
// both on the main document and inside formData.
func (c Category) detailsKey() string {
	switch c {
	case FoodBeverage:
		return "foodBeverageDetails"
	case Entertainment:
		return "entertainmentDetails"
	case Venues:
		return "venueDetails"
	case Vendors:
		return "vendorDetails"
	}
	return ""
}

// detailsDocs names the details sub-collection documents that hold
// overrides for c, most specific first.
func (c Category) detailsDocs() []string {
	switch c {
	case FoodBeverage:
		return []string{"foodBeverage", "food"}
	case Entertainment:
		return []string{"entertainment"}
	case Venues:
		return []string{"venue"}
	case Vendors:
		return []string{"vendor"}
	}
	return nil
}

// mobile reports whether providers in c travel to the event rather than
// hosting it.
func (c Category) mobile() bool {
	return c == FoodBeverage || c == Entertainment || c == Vendors
}

// DetailsDocs is the fixed vocabulary of details sub-collection documents.
var DetailsDocs = []string{"food", "foodBeverage", "entertainment", "venue", "vendor", "pricing"}
