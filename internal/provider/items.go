package provider

// item is one element of a nested list: a menu item, a venue space, a
// product. Missing sub-fields default individually.
type item map[string]any

func (it item) str(keys ...string) *string {
	for _, k := range keys {
		if s, ok := toString(it[k]); ok {
			return &s
		}
	}
	return nil
}

func (it item) num(keys ...string) *float64 {
	for _, k := range keys {
		if f, ok := ExtractNumber(it[k]); ok {
			return &f
		}
	}
	return nil
}

func (it item) integer(keys ...string) *int {
	for _, k := range keys {
		if n, ok := toInt(it[k]); ok {
			return &n
		}
	}
	return nil
}

func (it item) flag(keys ...string) bool {
	for _, k := range keys {
		if b, ok := toBool(it[k]); ok {
			return b
		}
	}
	return false
}

func (it item) list(keys ...string) []string {
	for _, k := range keys {
		if l, ok := toStrings(it[k]); ok {
			return l
		}
	}
	return []string{}
}

// images accepts single URLs and gallery arrays under any of keys.
func (it item) images(keys ...string) []string {
	var out []string
	for _, k := range keys {
		switch val := it[k].(type) {
		case []any:
			for _, entry := range val {
				if u, ok := imageURL(entry); ok {
					out = append(out, u)
				}
			}
		default:
			if u, ok := imageURL(val); ok {
				out = append(out, u)
			}
		}
	}
	return dedupe(out)
}

func intOrZero(n *int) int {
	if n == nil {
		return 0
	}
	return *n
}

func menuItems(objs []map[string]any) []MenuItem {
	out := make([]MenuItem, 0, len(objs))
	for _, obj := range objs {
		it := item(obj)
		out = append(out, MenuItem{
			Name:        it.str("name", "itemName", "title"),
			Description: it.str("description"),
			Price:       it.num("price", "cost"),
			Category:    it.str("category", "course"),
			DietaryTags: it.list("dietaryTags", "dietary", "tags"),
			ImageURL:    it.str("imageUrl", "image", "photo"),
		})
	}
	return out
}

func cateringPackages(objs []map[string]any) []CateringPackage {
	out := make([]CateringPackage, 0, len(objs))
	for _, obj := range objs {
		it := item(obj)
		out = append(out, CateringPackage{
			Name:           it.str("name", "packageName", "title"),
			Description:    it.str("description"),
			PricePerPerson: it.num("pricePerPerson", "price", "perPersonPrice"),
			MinGuests:      intOrZero(it.integer("minGuests", "minimumGuests")),
			MaxGuests:      it.integer("maxGuests", "maximumGuests"),
			Includes:       it.list("includes", "items", "inclusions"),
		})
	}
	return out
}

func serviceItems(objs []map[string]any) []ServiceItem {
	out := make([]ServiceItem, 0, len(objs))
	for _, obj := range objs {
		it := item(obj)
		out = append(out, ServiceItem{
			Name:        it.str("name", "serviceName", "title"),
			Description: it.str("description"),
			Price:       it.num("price", "rate", "cost"),
			Duration:    it.str("duration", "length"),
			Includes:    it.list("includes", "inclusions", "features"),
		})
	}
	return out
}

func venueSpaces(objs []map[string]any) []VenueSpace {
	out := make([]VenueSpace, 0, len(objs))
	for _, obj := range objs {
		it := item(obj)
		out = append(out, VenueSpace{
			Name:             it.str("name", "spaceName", "title"),
			Description:      it.str("description"),
			Capacity:         intOrZero(it.integer("capacity", "maxCapacity")),
			SeatedCapacity:   it.integer("seatedCapacity", "seated"),
			StandingCapacity: it.integer("standingCapacity", "standing"),
			SquareFeet:       it.num("squareFeet", "squareFootage", "size"),
			Price:            it.num("price", "rentalPrice", "hourlyRate"),
			Amenities:        it.list("amenities", "features"),
			Images:           it.images("images", "photos", "imageUrl"),
		})
	}
	return out
}

func productItems(objs []map[string]any) []ProductItem {
	out := make([]ProductItem, 0, len(objs))
	for _, obj := range objs {
		it := item(obj)
		out = append(out, ProductItem{
			Name:              it.str("name", "productName", "title"),
			Description:       it.str("description"),
			Price:             it.num("price", "cost"),
			Category:          it.str("category", "type"),
			QuantityAvailable: it.integer("quantityAvailable", "quantity", "stock"),
			Images:            it.images("images", "photos", "imageUrl"),
		})
	}
	return out
}

func nonprofitFlexibility(obj map[string]any) *NonprofitFlexibility {
	if obj == nil {
		return nil
	}
	it := item(obj)
	return &NonprofitFlexibility{
		Offered:               it.flag("offered", "enabled", "available", "offersDiscount"),
		DiscountPercentage:    it.num("discountPercentage", "discountPercent", "discount"),
		SlidingScale:          it.flag("slidingScale"),
		InKindDonations:       it.flag("inKindDonations", "inKind"),
		EligibleOrganizations: it.list("eligibleOrganizations", "organizationTypes"),
		Notes:                 it.str("notes", "details", "description"),
	}
}

func highVolumePartner(obj map[string]any) *HighVolumePartner {
	if obj == nil {
		return nil
	}
	it := item(obj)
	return &HighVolumePartner{
		Offered:            it.flag("offered", "enabled", "available", "interested"),
		MinimumEvents:      it.integer("minimumEvents", "minEvents"),
		DiscountPercentage: it.num("discountPercentage", "volumeDiscount", "discount"),
		RecurringBookings:  it.flag("recurringBookings", "acceptsRecurring"),
		DedicatedContact:   it.flag("dedicatedContact", "accountManager"),
		Notes:              it.str("notes", "details", "description"),
	}
}
