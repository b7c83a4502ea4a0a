package provider

import "strings"

// Normalize projects rec onto the API contract. It never fails: absent or
// malformed source data yields null, false, zero or empty fields.
func Normalize(rec *Record) *NormalizedProvider {
	if rec == nil {
		rec = &Record{}
	}
	v := newView(rec)

	images := v.images()
	p := &NormalizedProvider{
		ID:       v.id,
		Category: v.category,
		Source:   rec.Source,

		Name:         v.name(),
		BusinessName: v.str(businessNameRefs...),
		ContactName:  v.contactName(),
		Email:        v.str(emailRefs...),
		Phone:        v.str(phoneRefs...),
		Website:      v.str(websiteRefs...),

		Address:         v.address(),
		City:            v.city(),
		State:           v.state(),
		ZipCode:         v.zipCode(),
		ServiceLocation: v.serviceLocation(),
		Coordinates:     v.coordinates(),
		ServiceRadius:   v.serviceRadius(),

		Rating:      v.num(ratingRefs...),
		ReviewCount: v.reviewCount(),
		Verified:    v.flag(verifiedRefs...),
		Status:      v.str(statusRefs...),

		Images:          images,
		Bio:             v.str(bioRefs...),
		Description:     v.str(descriptionRefs...),
		YearsInBusiness: v.integer(yearsRefs...),
		Languages:       v.list(languageRefs...),
		EventTypes:      v.list(eventTypeRefs...),
		Tags:            v.list(tagRefs...),

		PriceRange:    v.joined(priceRangeRefs...),
		StartingPrice: v.num(startingPriceRefs()...),

		SocialLinks: SocialLinks{
			Instagram: v.str(socialRefs("instagram")...),
			Facebook:  v.str(socialRefs("facebook")...),
			TikTok:    v.str(socialRefs("tiktok")...),
			YouTube:   v.str(socialRefs("youtube")...),
			Twitter:   v.str(socialRefs("twitter")...),
			LinkedIn:  v.str(socialRefs("linkedin")...),
		},
		Policies: Policies{
			CancellationPolicy:   v.str(cancellationRefs(v.category)...),
			DepositPolicy:        v.str(depositPolicyRefs...),
			RefundPolicy:         v.str(refundPolicyRefs...),
			PaymentTerms:         v.str(paymentTermsRefs...),
			NonprofitFlexibility: nonprofitFlexibility(v.object(nonprofitRefs...)),
			HighVolumePartner:    highVolumePartner(v.object(highVolumeRefs...)),
		},

		CreatedAt: v.timestamp(createdAtRefs...),
		UpdatedAt: v.timestamp(updatedAtRefs...),
	}
	if len(images) > 0 {
		p.CoverPhoto = &images[0]
	}

	switch v.category {
	case FoodBeverage:
		p.FoodBeverage = v.foodBeverage()
	case Entertainment:
		p.Entertainment = v.entertainment()
	case Venues:
		p.Venue = v.venue()
	case Vendors:
		p.Vendor = v.vendor()
	}
	return p
}

// contactName falls back to "first last" when no contact field is set.
func (v *view) contactName() *string {
	if s := v.str(contactNameRefs...); s != nil {
		return s
	}
	var parts []string
	if s := v.str(firstNameRefs...); s != nil {
		parts = append(parts, *s)
	}
	if s := v.str(lastNameRefs...); s != nil {
		parts = append(parts, *s)
	}
	if len(parts) == 0 {
		return nil
	}
	name := strings.Join(parts, " ")
	return &name
}

func (v *view) reviewCount() int {
	if n := v.integer(reviewCountRefs...); n != nil {
		return *n
	}
	if reviews, ok := firstOf(v, toObjects, reviewListRefs...); ok {
		return len(reviews)
	}
	return 0
}
