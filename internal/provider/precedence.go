package provider

// Field precedence for the record-wide fields. Most follow the general
// top > form > category details > details documents order; the exceptions
// are spelled out here rather than in the extractors.

var (
	businessNameRefs = topForm("businessName", "businessTitle")
	contactNameRefs  = common("contactName", "contactPerson", "ownerName")
	emailRefs        = common("email", "contactEmail", "businessEmail")
	phoneRefs        = common("phone", "phoneNumber", "contactPhone", "businessPhone")
	websiteRefs      = append(common("website", "websiteUrl"), topForm("socialLinks.website", "socialMedia.website")...)

	ratingRefs      = []ref{top("rating"), top("averageRating"), top("reviewStats.average")}
	reviewCountRefs = []ref{top("reviewCount"), top("totalReviews"), top("numReviews"), top("reviewStats.count")}
	verifiedRefs    = []ref{top("verified"), top("isVerified")}
	statusRefs      = []ref{top("status"), top("accountStatus")}

	bioRefs             = common("bio", "about", "aboutUs")
	descriptionRefs     = common("description", "businessDescription", "shortDescription")
	yearsRefs           = common("yearsInBusiness", "yearsOfExperience", "experienceYears")
	languageRefs        = common("languages", "languagesSpoken")
	eventTypeRefs       = common("eventTypes", "eventsServed", "eventSpecialties")
	tagRefs             = common("tags", "keywords", "specialties")
	priceRangeRefs      = append(common("priceRange", "pricingTier"), pricing("priceRange"))
	depositPolicyRefs   = append(common("depositPolicy", "depositRequirements"), pricing("depositPolicy"))
	refundPolicyRefs    = common("refundPolicy")
	paymentTermsRefs    = append(common("paymentTerms", "paymentPolicy"), pricing("paymentTerms"))
	nonprofitRefs       = common("nonprofitFlexibility")
	highVolumeRefs      = common("highVolumePartner")
	createdAtRefs       = []ref{top("createdAt"), top("created_at"), top("submittedAt")}
	updatedAtRefs       = []ref{top("updatedAt"), top("updated_at"), top("lastUpdated")}
	firstNameRefs       = topForm("firstName")
	lastNameRefs        = topForm("lastName")
	reviewListRefs      = []ref{top("reviews")}
	pricingFirstScopes  = []scope{scopeTop, scopePricing, scopeForm, scopeCat, scopeSub}
	detailsFirstScopes  = []scope{scopeSub, scopeCat, scopeTop, scopeForm}
	startingPriceFields = []string{"startingPrice", "basePrice", "minimumPrice", "startingAt"}
)

// startingPriceRefs reads the pricing document right after the top level.
func startingPriceRefs() []ref {
	return expand(pricingFirstScopes, startingPriceFields)
}

// cancellationRefs is the cancellation policy precedence for c. Food and
// beverage providers read the details documents first.
func cancellationRefs(c Category) []ref {
	if c == FoodBeverage {
		return expand(detailsFirstScopes, []string{"cancellationPolicy"})
	}
	return common("cancellationPolicy")
}

// socialRefs looks a network up in the link objects, then as a flat field.
func socialRefs(network string) []ref {
	refs := topForm("socialLinks."+network, "socialMedia."+network)
	return append(refs, topForm(network, network+"Url", network+"Handle")...)
}
