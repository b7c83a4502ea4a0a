package provider

func (v *view) foodBeverage() *FoodBeverageDetails {
	return &FoodBeverageDetails{
		CuisineType:            v.joined(field("cuisineType", "cuisineTypes", "cuisine")...),
		ServiceStyle:           v.joined(field("serviceStyle", "serviceStyles")...),
		BusinessType:           v.joined(field("businessType", "foodBusinessType")...),
		DietarySpecialties:     v.list(field("dietarySpecialties", "dietaryOptions", "dietaryAccommodations")...),
		AllergenAccommodations: v.list(field("allergenAccommodations", "allergenInfo")...),
		MenuItems:              menuItems(v.objects(field("menuItems", "menu")...)),
		CateringPackages:       cateringPackages(v.objects(priced("cateringPackages", "packages")...)),
		PricePerPerson:         v.num(expand(pricingFirstScopes, []string{"pricePerPerson", "perPersonPrice"})...),
		MinimumOrder:           v.num(priced("minimumOrder", "minimumOrderAmount")...),
		MinGuests:              v.integer(field("minGuests", "minimumGuests")...),
		MaxGuests:              v.integer(field("maxGuests", "maximumGuests", "maxCapacity")...),
		LeadTime:               v.str(field("leadTime", "advanceNotice")...),
		DeliveryRadius:         v.num(field("deliveryRadius")...),
		EquipmentProvided:      v.list(field("equipmentProvided", "equipment")...),
		OffersPickup:           v.flag(field("offersPickup", "pickupAvailable")...),
		OffersDelivery:         v.flag(field("offersDelivery", "deliveryAvailable")...),
		OffersSetup:            v.flag(field("offersSetup", "setupIncluded")...),
		OffersStaffing:         v.flag(field("offersStaffing", "staffingAvailable")...),
		OffersTastings:         v.flag(field("offersTastings", "tastingsAvailable")...),
		AlcoholService:         v.flag(field("alcoholService", "servesAlcohol")...),
		HealthPermit:           v.flag(field("healthPermit", "hasHealthPermit")...),
		CancellationPolicy:     v.str(cancellationRefs(FoodBeverage)...),
	}
}
