package provider

var (
	venueNameRefs = []ref{
		top("venueName"), form("venueName"),
		top("businessName"), form("businessName"),
		top("businessTitle"), form("businessTitle"),
	}

	entertainmentNameRefs = []ref{
		top("stageName"), form("stageName"),
		form("stageArtistName"),
		top("businessName"), form("businessName"),
	}

	genericNameRefs = topForm("businessName", "businessTitle", "stageName", "venueName")

	fallbackNameRefs = topForm("name", "providerName", "vendorName", "contactName")
)

// nameRefs returns the name precedence for a category.
func nameRefs(c Category) []ref {
	var refs []ref
	switch c {
	case Venues:
		refs = append(refs, venueNameRefs...)
	case Entertainment:
		refs = append(refs, entertainmentNameRefs...)
	}
	refs = append(refs, genericNameRefs...)
	return append(refs, fallbackNameRefs...)
}

// ResolveName returns the display name for rec under its category, or ""
// when no candidate qualifies.
func ResolveName(rec *Record) string {
	return newView(rec).name()
}

func (v *view) name() string {
	name, _ := firstOf(v, toName, nameRefs(v.category)...)
	return name
}
