// Package provider defines the normalized provider shape and the resolvers
// that build it from raw marketplace documents.
//
// Provider documents have been written by several generations of onboarding
// forms and dashboard editors, so the same concept lives under different
// names and nesting levels. Everything here reads a Record through an
// explicit, ordered list of field locations and never fails on missing or
// malformed data: the worst case is a null field.
//
// Every key of NormalizedProvider is always present in its JSON encoding.
// Pointers encode as null, slices are never nil.
package provider

// LatLng is a map position.
type LatLng struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// NormalizedProvider is the API contract for a single provider.
type NormalizedProvider struct {
	ID       string   `json:"id"`
	Category Category `json:"category"`
	Source   string   `json:"source"`

	Name         string  `json:"name"`
	BusinessName *string `json:"businessName"`
	ContactName  *string `json:"contactName"`
	Email        *string `json:"email"`
	Phone        *string `json:"phone"`
	Website      *string `json:"website"`

	Address         *string  `json:"address"`
	City            *string  `json:"city"`
	State           *string  `json:"state"`
	ZipCode         *string  `json:"zipCode"`
	ServiceLocation *string  `json:"serviceLocation"`
	Coordinates     *LatLng  `json:"coordinates"`
	ServiceRadius   *float64 `json:"serviceRadius"`

	Rating      *float64 `json:"rating"`
	ReviewCount int      `json:"reviewCount"`
	Verified    bool     `json:"verified"`
	Status      *string  `json:"status"`

	Images          []string `json:"images"`
	CoverPhoto      *string  `json:"coverPhoto"`
	Bio             *string  `json:"bio"`
	Description     *string  `json:"description"`
	YearsInBusiness *int     `json:"yearsInBusiness"`
	Languages       []string `json:"languages"`
	EventTypes      []string `json:"eventTypes"`
	Tags            []string `json:"tags"`

	PriceRange    *string  `json:"priceRange"`
	StartingPrice *float64 `json:"startingPrice"`

	SocialLinks SocialLinks `json:"socialLinks"`
	Policies    Policies    `json:"policies"`

	CreatedAt *string `json:"createdAt"`
	UpdatedAt *string `json:"updatedAt"`

	// Exactly one of these is set, matching Category.
	FoodBeverage  *FoodBeverageDetails  `json:"foodBeverage"`
	Entertainment *EntertainmentDetails `json:"entertainment"`
	Venue         *VenueDetails         `json:"venue"`
	Vendor        *VendorDetails        `json:"vendor"`
}

// SocialLinks holds profile URLs or handles; absent networks are null.
type SocialLinks struct {
	Instagram *string `json:"instagram"`
	Facebook  *string `json:"facebook"`
	TikTok    *string `json:"tiktok"`
	YouTube   *string `json:"youtube"`
	Twitter   *string `json:"twitter"`
	LinkedIn  *string `json:"linkedin"`
}

// Policies groups booking terms shared by every category.
type Policies struct {
	CancellationPolicy   *string               `json:"cancellationPolicy"`
	DepositPolicy        *string               `json:"depositPolicy"`
	RefundPolicy         *string               `json:"refundPolicy"`
	PaymentTerms         *string               `json:"paymentTerms"`
	NonprofitFlexibility *NonprofitFlexibility `json:"nonprofitFlexibility"`
	HighVolumePartner    *HighVolumePartner    `json:"highVolumePartner"`
}

// NonprofitFlexibility describes concessions offered to nonprofit hosts.
type NonprofitFlexibility struct {
	Offered               bool     `json:"offered"`
	DiscountPercentage    *float64 `json:"discountPercentage"`
	SlidingScale          bool     `json:"slidingScale"`
	InKindDonations       bool     `json:"inKindDonations"`
	EligibleOrganizations []string `json:"eligibleOrganizations"`
	Notes                 *string  `json:"notes"`
}

// HighVolumePartner describes terms for hosts booking many events.
type HighVolumePartner struct {
	Offered            bool     `json:"offered"`
	MinimumEvents      *int     `json:"minimumEvents"`
	DiscountPercentage *float64 `json:"discountPercentage"`
	RecurringBookings  bool     `json:"recurringBookings"`
	DedicatedContact   bool     `json:"dedicatedContact"`
	Notes              *string  `json:"notes"`
}

// FoodBeverageDetails is the block set for FoodBeverage providers.
type FoodBeverageDetails struct {
	CuisineType            *string           `json:"cuisineType"`
	ServiceStyle           *string           `json:"serviceStyle"`
	BusinessType           *string           `json:"businessType"`
	DietarySpecialties     []string          `json:"dietarySpecialties"`
	AllergenAccommodations []string          `json:"allergenAccommodations"`
	MenuItems              []MenuItem        `json:"menuItems"`
	CateringPackages       []CateringPackage `json:"cateringPackages"`
	PricePerPerson         *float64          `json:"pricePerPerson"`
	MinimumOrder           *float64          `json:"minimumOrder"`
	MinGuests              *int              `json:"minGuests"`
	MaxGuests              *int              `json:"maxGuests"`
	LeadTime               *string           `json:"leadTime"`
	DeliveryRadius         *float64          `json:"deliveryRadius"`
	EquipmentProvided      []string          `json:"equipmentProvided"`
	OffersPickup           bool              `json:"offersPickup"`
	OffersDelivery         bool              `json:"offersDelivery"`
	OffersSetup            bool              `json:"offersSetup"`
	OffersStaffing         bool              `json:"offersStaffing"`
	OffersTastings         bool              `json:"offersTastings"`
	AlcoholService         bool              `json:"alcoholService"`
	HealthPermit           bool              `json:"healthPermit"`
	CancellationPolicy     *string           `json:"cancellationPolicy"`
}

// MenuItem is one dish or drink on a caterer's menu.
type MenuItem struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Category    *string  `json:"category"`
	DietaryTags []string `json:"dietaryTags"`
	ImageURL    *string  `json:"imageUrl"`
}

// CateringPackage is a priced bundle offered per guest.
type CateringPackage struct {
	Name           *string  `json:"name"`
	Description    *string  `json:"description"`
	PricePerPerson *float64 `json:"pricePerPerson"`
	MinGuests      int      `json:"minGuests"`
	MaxGuests      *int     `json:"maxGuests"`
	Includes       []string `json:"includes"`
}

// EntertainmentDetails is the block set for Entertainment providers.
type EntertainmentDetails struct {
	PerformanceType       *string       `json:"performanceType"`
	Genres                *string       `json:"genres"`
	ActSize               *int          `json:"actSize"`
	PerformanceDuration   *string       `json:"performanceDuration"`
	NumberOfSets          *int          `json:"numberOfSets"`
	HourlyRate            *float64      `json:"hourlyRate"`
	MinimumBookingHours   *float64      `json:"minimumBookingHours"`
	TravelRadius          *float64      `json:"travelRadius"`
	BasedIn               *string       `json:"basedIn"`
	AudienceTypes         []string      `json:"audienceTypes"`
	EquipmentProvided     []string      `json:"equipmentProvided"`
	TechnicalRequirements []string      `json:"technicalRequirements"`
	DemoLinks             []string      `json:"demoLinks"`
	ServiceItems          []ServiceItem `json:"serviceItems"`
	ProvidesSoundSystem   bool          `json:"providesSoundSystem"`
	ProvidesLighting      bool          `json:"providesLighting"`
	AcceptsRequests       bool          `json:"acceptsRequests"`
	MCServices            bool          `json:"mcServices"`
	CancellationPolicy    *string       `json:"cancellationPolicy"`
}

// ServiceItem is a bookable service with its own price.
type ServiceItem struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price"`
	Duration    *string  `json:"duration"`
	Includes    []string `json:"includes"`
}

// VenueDetails is the block set for Venues providers.
type VenueDetails struct {
	VenueType              *string      `json:"venueType"`
	IndoorOutdoor          *string      `json:"indoorOutdoor"`
	MaxCapacity            *int         `json:"maxCapacity"`
	SeatedCapacity         *int         `json:"seatedCapacity"`
	StandingCapacity       *int         `json:"standingCapacity"`
	SquareFeet             *float64     `json:"squareFeet"`
	Spaces                 []VenueSpace `json:"spaces"`
	Amenities              []string     `json:"amenities"`
	Accessibility          []string     `json:"accessibility"`
	Parking                *string      `json:"parking"`
	ParkingSpaces          *int         `json:"parkingSpaces"`
	HourlyRate             *float64     `json:"hourlyRate"`
	DailyRate              *float64     `json:"dailyRate"`
	MinimumHours           *float64     `json:"minimumHours"`
	CateringPolicy         *string      `json:"cateringPolicy"`
	AlcoholPolicy          *string      `json:"alcoholPolicy"`
	Curfew                 *string      `json:"curfew"`
	VenueAddress           *string      `json:"venueAddress"`
	WifiAvailable          bool         `json:"wifiAvailable"`
	EcoFriendly            bool         `json:"ecoFriendly"`
	AVEquipment            bool         `json:"avEquipment"`
	KitchenAccess          bool         `json:"kitchenAccess"`
	OutsideCateringAllowed bool         `json:"outsideCateringAllowed"`
	WheelchairAccessible   bool         `json:"wheelchairAccessible"`
	CancellationPolicy     *string      `json:"cancellationPolicy"`
}

// VenueSpace is one rentable room or area within a venue.
type VenueSpace struct {
	Name             *string  `json:"name"`
	Description      *string  `json:"description"`
	Capacity         int      `json:"capacity"`
	SeatedCapacity   *int     `json:"seatedCapacity"`
	StandingCapacity *int     `json:"standingCapacity"`
	SquareFeet       *float64 `json:"squareFeet"`
	Price            *float64 `json:"price"`
	Amenities        []string `json:"amenities"`
	Images           []string `json:"images"`
}

// VendorDetails is the block set for Vendors providers.
type VendorDetails struct {
	VendorType          *string       `json:"vendorType"`
	ProductCategories   *string       `json:"productCategories"`
	Products            []ProductItem `json:"products"`
	ServiceItems        []ServiceItem `json:"serviceItems"`
	Materials           []string      `json:"materials"`
	MinimumOrder        *float64      `json:"minimumOrder"`
	LeadTime            *string       `json:"leadTime"`
	TurnaroundTime      *string       `json:"turnaroundTime"`
	DeliveryRadius      *float64      `json:"deliveryRadius"`
	OffersDelivery      bool          `json:"offersDelivery"`
	OffersSetup         bool          `json:"offersSetup"`
	OffersCustomization bool          `json:"offersCustomization"`
	OffersRentals       bool          `json:"offersRentals"`
	EcoFriendly         bool          `json:"ecoFriendly"`
	CancellationPolicy  *string       `json:"cancellationPolicy"`
}

// ProductItem is a product a vendor sells or rents.
type ProductItem struct {
	Name              *string  `json:"name"`
	Description       *string  `json:"description"`
	Price             *float64 `json:"price"`
	Category          *string  `json:"category"`
	QuantityAvailable *int     `json:"quantityAvailable"`
	Images            []string `json:"images"`
}
