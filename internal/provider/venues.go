package provider

func (v *view) venue() *VenueDetails {
	d := &VenueDetails{
		VenueType:              v.joined(field("venueType", "venueTypes", "spaceType")...),
		IndoorOutdoor:          v.joined(field("indoorOutdoor", "setting")...),
		MaxCapacity:            v.integer(field("maxCapacity", "capacity.max", "capacity")...),
		SeatedCapacity:         v.integer(field("seatedCapacity", "capacity.seated")...),
		StandingCapacity:       v.integer(field("standingCapacity", "capacity.standing")...),
		SquareFeet:             v.num(field("squareFeet", "squareFootage")...),
		Spaces:                 venueSpaces(v.objects(field("spaces", "venueSpaces", "rooms")...)),
		Amenities:              v.list(field("amenities", "venueAmenities")...),
		Accessibility:          v.list(field("accessibility", "accessibilityFeatures")...),
		Parking:                v.joined(field("parking", "parkingOptions")...),
		ParkingSpaces:          v.integer(field("parkingSpaces", "parkingCapacity")...),
		HourlyRate:             v.num(priced("hourlyRate", "rentalRateHourly")...),
		DailyRate:              v.num(priced("dailyRate", "rentalRateDaily")...),
		MinimumHours:           v.num(priced("minimumHours", "minimumBookingHours")...),
		CateringPolicy:         v.str(field("cateringPolicy")...),
		AlcoholPolicy:          v.str(field("alcoholPolicy")...),
		Curfew:                 v.str(field("curfew", "endTime")...),
		WifiAvailable:          v.flag(field("wifiAvailable", "wifi")...),
		EcoFriendly:            v.flag(field("ecoFriendly", "sustainable")...),
		AVEquipment:            v.flag(field("avEquipment", "audioVisual")...),
		KitchenAccess:          v.flag(field("kitchenAccess", "hasKitchen")...),
		OutsideCateringAllowed: v.flag(field("outsideCateringAllowed", "allowsOutsideCatering")...),
		WheelchairAccessible:   v.flag(field("wheelchairAccessible", "adaCompliant")...),
		CancellationPolicy:     v.str(cancellationRefs(Venues)...),
	}
	if s, ok := firstOf(v, toAddress, field("venueAddress")...); ok {
		d.VenueAddress = &s
	}
	return d
}
