package provider

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   any
		want Category
		ok   bool
	}{
		{"FoodBeverage", FoodBeverage, true},
		{"Food & Beverage", FoodBeverage, true},
		{"foodBeverage", FoodBeverage, true},
		{"food", FoodBeverage, true},
		{"Entertainment", Entertainment, true},
		{"venue", Venues, true},
		{"Venues", Venues, true},
		{"vendor", Vendors, true},
		{"florist", "", false},
		{"", "", false},
		{nil, "", false},
		{3.0, "", false},
	}
	for _, tt := range tests {
		got, ok := ParseCategory(tt.in)
		assert.Equal(t, tt.ok, ok, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}
}

func TestCategoryValid(t *testing.T) {
	for _, c := range Categories {
		assert.True(t, c.Valid())
		assert.NotEmpty(t, c.detailsKey())
		assert.NotEmpty(t, c.detailsDocs())
	}
	assert.False(t, Category("Florists").Valid())
}
