package provider

func (v *view) vendor() *VendorDetails {
	return &VendorDetails{
		VendorType:          v.joined(field("vendorType", "vendorTypes", "vendorCategory")...),
		ProductCategories:   v.joined(field("productCategories", "productTypes")...),
		Products:            productItems(v.objects(priced("products", "productItems", "inventory")...)),
		ServiceItems:        serviceItems(v.objects(priced("serviceItems", "services")...)),
		Materials:           v.list(field("materials")...),
		MinimumOrder:        v.num(priced("minimumOrder", "minimumOrderAmount")...),
		LeadTime:            v.str(field("leadTime", "advanceNotice")...),
		TurnaroundTime:      v.str(field("turnaroundTime", "productionTime")...),
		DeliveryRadius:      v.num(field("deliveryRadius")...),
		OffersDelivery:      v.flag(field("offersDelivery", "deliveryAvailable")...),
		OffersSetup:         v.flag(field("offersSetup", "setupIncluded")...),
		OffersCustomization: v.flag(field("offersCustomization", "customOrders")...),
		OffersRentals:       v.flag(field("offersRentals", "rentalsAvailable")...),
		EcoFriendly:         v.flag(field("ecoFriendly", "sustainable")...),
		CancellationPolicy:  v.str(cancellationRefs(Vendors)...),
	}
}
