package provider

func (v *view) entertainment() *EntertainmentDetails {
	return &EntertainmentDetails{
		PerformanceType:       v.joined(field("performanceType", "entertainmentType", "actType")...),
		Genres:                v.joined(field("genres", "genre", "musicGenres")...),
		ActSize:               v.integer(field("actSize", "groupSize", "numberOfPerformers")...),
		PerformanceDuration:   v.str(field("performanceDuration", "setLength")...),
		NumberOfSets:          v.integer(field("numberOfSets", "sets")...),
		HourlyRate:            v.num(priced("hourlyRate", "ratePerHour")...),
		MinimumBookingHours:   v.num(field("minimumBookingHours", "minimumHours")...),
		TravelRadius:          v.num(field("travelRadius", "travelDistance")...),
		BasedIn:               v.str(field("basedIn")...),
		AudienceTypes:         v.list(field("audienceTypes", "audiences")...),
		EquipmentProvided:     v.list(field("equipmentProvided", "equipment")...),
		TechnicalRequirements: v.list(field("technicalRequirements", "techRequirements")...),
		DemoLinks:             v.list(field("demoLinks", "videoLinks", "sampleLinks")...),
		ServiceItems:          serviceItems(v.objects(priced("serviceItems", "services", "packages")...)),
		ProvidesSoundSystem:   v.flag(field("providesSoundSystem", "hasSoundSystem")...),
		ProvidesLighting:      v.flag(field("providesLighting", "hasLighting")...),
		AcceptsRequests:       v.flag(field("acceptsRequests", "takesRequests")...),
		MCServices:            v.flag(field("mcServices", "offersMC")...),
		CancellationPolicy:    v.str(cancellationRefs(Entertainment)...),
	}
}
