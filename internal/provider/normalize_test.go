package provider

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	t.Run("should tolerate a record without formData", func(t *testing.T) {
		p := Normalize(&Record{ID: "p1", Category: Venues, Source: "Providers/Venues/providers", Data: map[string]any{
			"venueName": "The Loft",
		}})

		assert.Equal(t, "p1", p.ID)
		assert.Equal(t, Venues, p.Category)
		assert.Equal(t, "The Loft", p.Name)
		assert.Nil(t, p.City)
		assert.Nil(t, p.Coordinates)
		assert.Nil(t, p.CoverPhoto)
		assert.Empty(t, p.Images)
		require.NotNil(t, p.Venue)
		assert.Nil(t, p.FoodBeverage)
		assert.Nil(t, p.Entertainment)
		assert.Nil(t, p.Vendor)
		assert.Empty(t, p.Venue.Spaces)
		assert.False(t, p.Venue.WifiAvailable)
	})

	t.Run("should encode every key and never encode slices as null", func(t *testing.T) {
		for _, c := range Categories {
			raw, err := json.Marshal(Normalize(&Record{ID: "x", Category: c}))
			require.NoError(t, err)

			var out map[string]any
			require.NoError(t, json.Unmarshal(raw, &out))

			for _, key := range []string{"id", "category", "source", "name", "city", "state", "coordinates", "serviceRadius", "rating", "socialLinks", "policies", "foodBeverage", "entertainment", "venue", "vendor"} {
				assert.Contains(t, out, key, c)
			}
			for _, key := range []string{"images", "languages", "eventTypes", "tags"} {
				assert.Equal(t, []any{}, out[key], "%s %s", c, key)
			}
			policies := out["policies"].(map[string]any)
			assert.Nil(t, policies["nonprofitFlexibility"])
			assert.Nil(t, policies["highVolumePartner"])
		}
	})

	t.Run("should default an unknown category to vendors", func(t *testing.T) {
		p := Normalize(&Record{ID: "x", Category: "Florists"})
		assert.Equal(t, Vendors, p.Category)
		assert.NotNil(t, p.Vendor)
	})

	t.Run("should not panic on a nil record", func(t *testing.T) {
		assert.NotPanics(t, func() { Normalize(nil) })
	})

	t.Run("should fill common fields through their fallbacks", func(t *testing.T) {
		p := Normalize(&Record{ID: "x", Category: Vendors, Data: map[string]any{
			"businessTitle": "Bloom & Co",
			"firstName":     "Ada",
			"lastName":      "Ng",
			"contactEmail":  "ada@bloom.co",
			"formData": map[string]any{
				"phoneNumber": "555-0100",
				"socialLinks": map[string]any{"instagram": "@bloom"},
				"languages":   []any{"English", "Spanish"},
			},
			"vendorDetails": map[string]any{"bio": "Florals for every event"},
			"facebookUrl":   "https://facebook.com/bloom",
			"reviews":       []any{map[string]any{"stars": 5}, map[string]any{"stars": 4}},
			"averageRating": "4.5",
			"isVerified":    true,
			"coverPhoto":    "cover.jpg",
			"createdAt":     map[string]any{"_seconds": 1700000000.0, "_nanoseconds": 0.0},
			"tags":          "weddings, corporate",
		}})

		assert.Equal(t, "Bloom & Co", p.Name)
		assert.Equal(t, "Bloom & Co", *p.BusinessName)
		assert.Equal(t, "Ada Ng", *p.ContactName)
		assert.Equal(t, "ada@bloom.co", *p.Email)
		assert.Equal(t, "555-0100", *p.Phone)
		assert.Equal(t, "@bloom", *p.SocialLinks.Instagram)
		assert.Equal(t, "https://facebook.com/bloom", *p.SocialLinks.Facebook)
		assert.Nil(t, p.SocialLinks.TikTok)
		assert.Equal(t, []string{"English", "Spanish"}, p.Languages)
		assert.Equal(t, "Florals for every event", *p.Bio)
		assert.Equal(t, 2, p.ReviewCount)
		assert.Equal(t, 4.5, *p.Rating)
		assert.True(t, p.Verified)
		assert.Equal(t, "cover.jpg", *p.CoverPhoto)
		assert.Equal(t, "2023-11-14T22:13:20Z", *p.CreatedAt)
		assert.Equal(t, []string{"weddings", "corporate"}, p.Tags)
	})

	t.Run("should read the starting price from the pricing document before formData", func(t *testing.T) {
		p := Normalize(&Record{ID: "x", Category: Vendors,
			Data:    map[string]any{"formData": map[string]any{"startingPrice": 100.0}},
			Details: map[string]map[string]any{"pricing": {"basePrice": "$1,250"}},
		})
		assert.Equal(t, 1250.0, *p.StartingPrice)
	})
}

func TestNormalizeNonFiniteNumbers(t *testing.T) {
	for _, bad := range []string{"NaN", "Inf", "-infinity"} {
		t.Run("should resolve "+bad+" to null and still encode", func(t *testing.T) {
			p := Normalize(&Record{ID: "x", Category: FoodBeverage,
				Data: map[string]any{
					"businessName": "Tasty Co",
					"rating":       bad,
					"lat":          bad,
					"lng":          -97.7,
					"formData": map[string]any{
						"menuItems": []any{map[string]any{"name": "Tacos", "price": bad}},
					},
				},
			})

			assert.Nil(t, p.Rating)
			assert.Nil(t, p.Coordinates)
			require.Len(t, p.FoodBeverage.MenuItems, 1)
			assert.Nil(t, p.FoodBeverage.MenuItems[0].Price)

			raw, err := json.Marshal(p)
			require.NoError(t, err)
			assert.Contains(t, string(raw), `"rating":null`)
		})
	}
}

func TestPolicies(t *testing.T) {
	t.Run("should prefer the details document for food and beverage cancellation", func(t *testing.T) {
		rec := &Record{ID: "x", Category: FoodBeverage,
			Data: map[string]any{
				"cancellationPolicy":  "Top-level policy",
				"foodBeverageDetails": map[string]any{"cancellationPolicy": "Category policy"},
			},
			Details: map[string]map[string]any{"food": {"cancellationPolicy": "Details policy"}},
		}
		p := Normalize(rec)
		assert.Equal(t, "Details policy", *p.Policies.CancellationPolicy)
		assert.Equal(t, "Details policy", *p.FoodBeverage.CancellationPolicy)

		delete(rec.Details, "food")
		assert.Equal(t, "Category policy", *Normalize(rec).FoodBeverage.CancellationPolicy)
	})

	t.Run("should prefer the top level for other categories", func(t *testing.T) {
		p := Normalize(&Record{ID: "x", Category: Venues,
			Data:    map[string]any{"cancellationPolicy": "Top-level policy"},
			Details: map[string]map[string]any{"venue": {"cancellationPolicy": "Details policy"}},
		})
		assert.Equal(t, "Top-level policy", *p.Policies.CancellationPolicy)
		assert.Equal(t, "Top-level policy", *p.Venue.CancellationPolicy)
	})

	t.Run("should populate policy objects with defaults when present", func(t *testing.T) {
		p := Normalize(&Record{ID: "x", Category: Entertainment, Data: map[string]any{
			"formData": map[string]any{
				"nonprofitFlexibility": map[string]any{"offered": true, "discountPercentage": "15"},
			},
			"entertainmentDetails": map[string]any{
				"highVolumePartner": map[string]any{"minEvents": 10.0},
			},
		}})

		np := p.Policies.NonprofitFlexibility
		require.NotNil(t, np)
		assert.True(t, np.Offered)
		assert.Equal(t, 15.0, *np.DiscountPercentage)
		assert.False(t, np.SlidingScale)
		assert.Equal(t, []string{}, np.EligibleOrganizations)
		assert.Nil(t, np.Notes)

		hv := p.Policies.HighVolumePartner
		require.NotNil(t, hv)
		assert.False(t, hv.Offered)
		assert.Equal(t, 10, *hv.MinimumEvents)
		assert.Nil(t, hv.DiscountPercentage)
	})
}

func TestCategoryBlocks(t *testing.T) {
	t.Run("should extract food and beverage fields", func(t *testing.T) {
		p := Normalize(&Record{ID: "x", Category: FoodBeverage,
			Data: map[string]any{
				"cuisineType":  []any{"Mexican", "Tex-Mex"},
				"offersPickup": false,
				"formData": map[string]any{
					"dietarySpecialties": []any{"Vegan", "Gluten-free"},
					"menuItems": []any{
						map[string]any{"name": "Tacos", "price": "12.50"},
						"not-an-item",
					},
				},
				"foodBeverageDetails": map[string]any{
					"serviceStyles": []any{"Buffet"},
					"offersPickup":  true,
				},
			},
			Details: map[string]map[string]any{
				"foodBeverage": {"offersDelivery": "yes"},
				"pricing": {
					"pricePerPerson":   22.0,
					"cateringPackages": []any{map[string]any{"name": "Fiesta", "includes": []any{"chips", "salsa"}}},
				},
			},
		})

		fb := p.FoodBeverage
		require.NotNil(t, fb)
		assert.Equal(t, "Mexican, Tex-Mex", *fb.CuisineType)
		assert.Equal(t, "Buffet", *fb.ServiceStyle)
		assert.Equal(t, []string{"Vegan", "Gluten-free"}, fb.DietarySpecialties)
		assert.Equal(t, []string{}, fb.AllergenAccommodations)
		assert.False(t, fb.OffersPickup)
		assert.True(t, fb.OffersDelivery)
		assert.False(t, fb.OffersStaffing)
		assert.Equal(t, 22.0, *fb.PricePerPerson)

		require.Len(t, fb.MenuItems, 1)
		assert.Equal(t, "Tacos", *fb.MenuItems[0].Name)
		assert.Equal(t, 12.5, *fb.MenuItems[0].Price)
		assert.Nil(t, fb.MenuItems[0].Description)
		assert.Equal(t, []string{}, fb.MenuItems[0].DietaryTags)

		require.Len(t, fb.CateringPackages, 1)
		assert.Equal(t, "Fiesta", *fb.CateringPackages[0].Name)
		assert.Equal(t, 0, fb.CateringPackages[0].MinGuests)
		assert.Nil(t, fb.CateringPackages[0].PricePerPerson)
		assert.Equal(t, []string{"chips", "salsa"}, fb.CateringPackages[0].Includes)
	})

	t.Run("should extract entertainment fields", func(t *testing.T) {
		p := Normalize(&Record{ID: "x", Category: Entertainment,
			Data: map[string]any{
				"genres":  []any{"Jazz", "Soul"},
				"basedIn": "Chicago, IL",
				"entertainmentDetails": map[string]any{
					"actSize":      "4",
					"serviceItems": []any{map[string]any{"name": "Ceremony set", "rate": 300.0, "duration": "45 min"}},
				},
			},
			Details: map[string]map[string]any{"entertainment": {"providesSoundSystem": true}},
		})

		e := p.Entertainment
		require.NotNil(t, e)
		assert.Equal(t, "Jazz, Soul", *e.Genres)
		assert.Equal(t, 4, *e.ActSize)
		assert.Equal(t, "Chicago, IL", *e.BasedIn)
		assert.True(t, e.ProvidesSoundSystem)
		require.Len(t, e.ServiceItems, 1)
		assert.Equal(t, 300.0, *e.ServiceItems[0].Price)
		assert.Equal(t, "45 min", *e.ServiceItems[0].Duration)
		assert.Equal(t, "Chicago", *p.City)
	})

	t.Run("should extract venue fields", func(t *testing.T) {
		p := Normalize(&Record{ID: "x", Category: Venues,
			Data: map[string]any{
				"venueDetails": map[string]any{
					"capacity":  map[string]any{"seated": 120.0, "standing": 200.0},
					"amenities": map[string]any{"Stage": true, "Bar": true, "Pool": false},
					"spaces": []any{
						map[string]any{"name": "Main Hall", "capacity": 150.0, "photos": []any{"hall.jpg", map[string]any{"url": "hall2.jpg"}}},
						map[string]any{"description": "Patio"},
					},
				},
				"wifiAvailable": "true",
				"venueAddress":  map[string]any{"street": "9 Hall Rd", "city": "Nashville", "state": "TN"},
			},
		})

		vd := p.Venue
		require.NotNil(t, vd)
		assert.Equal(t, 120, *vd.SeatedCapacity)
		assert.Equal(t, 200, *vd.StandingCapacity)
		assert.Nil(t, vd.MaxCapacity)
		assert.Equal(t, []string{"Bar", "Stage"}, vd.Amenities)
		assert.Equal(t, []string{}, vd.Accessibility)
		assert.True(t, vd.WifiAvailable)
		assert.False(t, vd.EcoFriendly)
		assert.Equal(t, "9 Hall Rd, Nashville, TN", *vd.VenueAddress)

		require.Len(t, vd.Spaces, 2)
		assert.Equal(t, 150, vd.Spaces[0].Capacity)
		assert.Equal(t, []string{"hall.jpg", "hall2.jpg"}, vd.Spaces[0].Images)
		assert.Nil(t, vd.Spaces[1].Name)
		assert.Equal(t, 0, vd.Spaces[1].Capacity)
		assert.Equal(t, []string{}, vd.Spaces[1].Amenities)
	})

	t.Run("should extract vendor fields", func(t *testing.T) {
		p := Normalize(&Record{ID: "x", Category: Vendors,
			Data: map[string]any{
				"vendorType": "Rentals",
				"formData": map[string]any{
					"products": map[string]any{
						"b": map[string]any{"name": "Chair", "price": 4.0, "quantity": "300"},
						"a": map[string]any{"name": "Table", "price": 12.0},
					},
				},
			},
			Details: map[string]map[string]any{"vendor": {"offersDelivery": true, "ecoFriendly": "no"}},
		})

		vd := p.Vendor
		require.NotNil(t, vd)
		assert.Equal(t, "Rentals", *vd.VendorType)
		assert.True(t, vd.OffersDelivery)
		assert.False(t, vd.EcoFriendly)
		require.Len(t, vd.Products, 2)
		assert.Equal(t, "Table", *vd.Products[0].Name)
		assert.Equal(t, "Chair", *vd.Products[1].Name)
		assert.Equal(t, 300, *vd.Products[1].QuantityAvailable)
		assert.Nil(t, vd.Products[0].QuantityAvailable)
		assert.Equal(t, []ServiceItem{}, vd.ServiceItems)
	})
}
