package provider

import (
	"regexp"
	"strings"
)

var (
	zipPattern      = regexp.MustCompile(`^\d{5}(-\d{4})?$`)
	stateZipPattern = regexp.MustCompile(`^([A-Za-z]{2})\s+\d{5}(-\d{4})?$`)
	trailingZip     = regexp.MustCompile(`\b(\d{5}(-\d{4})?)\s*$`)
	stateAbbr       = regexp.MustCompile(`^[A-Za-z]{2}$`)
)

var serviceLocationRefs = []ref{
	top("serviceLocation"), form("serviceLocation"),
	top("serviceAreaLocation"), form("serviceAreaLocation"),
	cat("serviceLocation"), cat("serviceAreaLocation"),
	sub("serviceLocation"), sub("serviceAreaLocation"),
}

// coordinateCategories is the order category detail objects are searched
// for coordinates, regardless of the record's own category.
var coordinateCategories = []Category{FoodBeverage, Entertainment, Vendors, Venues}

// Coordinates returns the provider's map position, or nil.
func Coordinates(rec *Record) *LatLng {
	return newView(rec).coordinates()
}

// City returns the provider's city, or nil.
func City(rec *Record) *string {
	return newView(rec).city()
}

// State returns the provider's state, or nil.
func State(rec *Record) *string {
	return newView(rec).state()
}

// Address returns a display address, or nil.
func Address(rec *Record) *string {
	return newView(rec).address()
}

// ServiceRadius returns how far the provider travels, in miles, or nil.
func ServiceRadius(rec *Record) *float64 {
	return newView(rec).serviceRadius()
}

// ServiceLocation returns the free-text area the provider serves, or nil.
func ServiceLocation(rec *Record) *string {
	return newView(rec).serviceLocation()
}

// ZipCode returns the postal code, read from a field or parsed from the
// address, or nil.
func ZipCode(rec *Record) *string {
	return newView(rec).zipCode()
}

func (v *view) coordinates() *LatLng {
	candidates := []func() (LatLng, bool){
		func() (LatLng, bool) { return pairOf(v.top, "lat", "lng") },
		func() (LatLng, bool) { return pairOf(v.top, "latitude", "longitude") },
		func() (LatLng, bool) { return coordsOf(v.top["coordinates"]) },
		func() (LatLng, bool) { return coordsOf(v.top["location"]) },
		func() (LatLng, bool) { return coordsOf(v.form["coordinates"]) },
		func() (LatLng, bool) { return pairOf(v.form, "latitude", "longitude") },
		func() (LatLng, bool) { return coordsOf(v.top["geocodedCoordinates"]) },
	}
	for _, c := range coordinateCategories {
		for _, obj := range append(v.categoryObjects(c), v.detailsDocs(c)...) {
			candidates = append(candidates,
				func() (LatLng, bool) { return coordsOf(obj["coordinates"]) },
				func() (LatLng, bool) { return coordsOf(obj["serviceAreaCoordinates"]) },
			)
		}
	}
	key := "venueCoordinates"
	if v.category.mobile() {
		key = "serviceAreaCoordinates"
	}
	candidates = append(candidates,
		func() (LatLng, bool) { return coordsOf(v.top[key]) },
		func() (LatLng, bool) { return coordsOf(v.form[key]) },
	)

	for _, candidate := range candidates {
		if ll, ok := candidate(); ok {
			return &ll
		}
	}
	return nil
}

// coordsOf reads a coordinate object. Both components must be non-zero.
func coordsOf(val any) (LatLng, bool) {
	m, ok := val.(map[string]any)
	if !ok {
		return LatLng{}, false
	}
	for _, keys := range [][2]string{{"lat", "lng"}, {"latitude", "longitude"}, {"_latitude", "_longitude"}} {
		if ll, ok := pairOf(m, keys[0], keys[1]); ok {
			return ll, true
		}
	}
	return LatLng{}, false
}

func pairOf(m map[string]any, latKey, lngKey string) (LatLng, bool) {
	lat, ok1 := ExtractNumber(m[latKey])
	lng, ok2 := ExtractNumber(m[lngKey])
	if !ok1 || !ok2 || lat == 0 || lng == 0 {
		return LatLng{}, false
	}
	return LatLng{Lat: lat, Lng: lng}, true
}

func (v *view) serviceLocation() *string {
	return v.str(serviceLocationRefs...)
}

func (v *view) city() *string {
	if segs := v.serviceLocationSegments(); len(segs) > 0 {
		return &segs[0]
	}
	if s := v.str(topForm("city")...); s != nil {
		return s
	}
	if s := v.str(addressRefs("city")...); s != nil {
		return s
	}
	switch v.category {
	case Venues:
		if s := v.str(top("venueCity"), form("venueCity"), cat("venueCity"),
			top("venueAddress.city"), form("venueAddress.city"), cat("venueAddress.city")); s != nil {
			return s
		}
	case Entertainment:
		if segs := v.basedInSegments(); len(segs) > 0 {
			return &segs[0]
		}
	}
	if loc, ok := firstOf(v, toText, top("location"), form("location")); ok {
		if city, _ := parseLocation(loc); city != "" {
			return &city
		}
	}
	return nil
}

func (v *view) state() *string {
	if segs := v.serviceLocationSegments(); len(segs) > 1 {
		return &segs[1]
	}
	if s := v.str(topForm("state")...); s != nil {
		return s
	}
	if s := v.str(addressRefs("state")...); s != nil {
		return s
	}
	switch v.category {
	case Venues:
		if s := v.str(top("venueState"), form("venueState"), cat("venueState"),
			top("venueAddress.state"), form("venueAddress.state"), cat("venueAddress.state")); s != nil {
			return s
		}
	case Entertainment:
		if segs := v.basedInSegments(); len(segs) > 1 {
			return &segs[1]
		}
	}
	if loc, ok := firstOf(v, toText, top("location"), form("location")); ok {
		if _, state := parseLocation(loc); state != "" {
			return &state
		}
	}
	return nil
}

func (v *view) zipCode() *string {
	if s := v.str(topForm("zipCode", "zip", "postalCode")...); s != nil {
		return s
	}
	if s := v.str(addressRefs("zipCode", "zip", "postalCode")...); s != nil {
		return s
	}
	if v.category == Venues {
		if s := v.str(top("venueAddress.zipCode"), top("venueAddress.zip"), cat("venueAddress.zipCode")); s != nil {
			return s
		}
	}
	if zip, ok := firstOf(v, toTrailingZip, top("location"), form("location"), top("address"), form("address")); ok {
		return &zip
	}
	return nil
}

// addressRefs looks key up in the nested residential, business and generic
// address objects.
func addressRefs(keys ...string) []ref {
	var refs []ref
	for _, obj := range []string{"residentialAddress", "businessAddress", "address"} {
		for _, k := range keys {
			refs = append(refs, top(obj+"."+k), form(obj+"."+k))
		}
	}
	return refs
}

func (v *view) serviceLocationSegments() []string {
	if s := v.serviceLocation(); s != nil {
		return splitLocation(*s)
	}
	return nil
}

func (v *view) basedInSegments() []string {
	if s := v.str(top("basedIn"), form("basedIn"), cat("basedIn"), sub("basedIn")); s != nil {
		return splitLocation(*s)
	}
	return nil
}

func (v *view) address() *string {
	if s, ok := firstOf(v, toAddress, top("address")); ok {
		return &s
	}
	if s, ok := firstOf(v, toText, form("address"), top("location"), form("location")); ok {
		return &s
	}
	if s := v.str(top("residentialAddress.street"), form("residentialAddress.street"),
		top("residentialAddress.streetAddress"), form("residentialAddress.streetAddress")); s != nil {
		return s
	}
	if s, ok := firstOf(v, toAddress, top("businessAddress"), form("businessAddress")); ok {
		return &s
	}
	if v.category == Venues {
		if s, ok := firstOf(v, toAddress, top("venueAddress"), form("venueAddress"), cat("venueAddress"), sub("venueAddress")); ok {
			return &s
		}
	}
	return nil
}

// toText accepts strings only.
func toText(val any) (string, bool) {
	if _, ok := val.(string); !ok {
		return "", false
	}
	return toString(val)
}

// toAddress accepts an address string or composes one from an address
// object as "street, city, state zip".
func toAddress(val any) (string, bool) {
	m, ok := val.(map[string]any)
	if !ok {
		return toString(val)
	}
	var parts []string
	if s, ok := firstString(m, "street", "streetAddress", "line1", "address1"); ok {
		parts = append(parts, s)
	}
	if s, ok := firstString(m, "city"); ok {
		parts = append(parts, s)
	}
	state, _ := firstString(m, "state")
	zip, _ := firstString(m, "zipCode", "zip", "postalCode")
	if tail := strings.TrimSpace(state + " " + zip); tail != "" {
		parts = append(parts, tail)
	}
	if len(parts) == 0 {
		return "", false
	}
	return strings.Join(parts, ", "), true
}

func toTrailingZip(val any) (string, bool) {
	s, ok := val.(string)
	if !ok {
		return "", false
	}
	if m := trailingZip.FindStringSubmatch(s); m != nil {
		return m[1], true
	}
	return "", false
}

func (v *view) serviceRadius() *float64 {
	if f, ok := firstOf(v, toRadius, top("serviceRadius"), form("serviceRadius"), cat("serviceRadius"), sub("serviceRadius")); ok {
		return &f
	}
	if f, ok := firstOf(v, ExtractLeadingInt, field("driveTime")...); ok {
		return &f
	}
	return nil
}

func toRadius(val any) (float64, bool) {
	if f, ok := ExtractNumber(val); ok {
		return f, true
	}
	return ExtractLeadingInt(val)
}

func splitLocation(s string) []string {
	var segs []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			segs = append(segs, p)
		}
	}
	return segs
}

// parseLocation guesses city and state from a free-text location such as
// "123 Main St, Austin, TX, 78701" or "Austin, TX 78701".
func parseLocation(s string) (city, state string) {
	segs := splitLocation(s)
	n := len(segs)
	if n == 0 {
		return "", ""
	}
	last := segs[n-1]

	switch {
	case zipPattern.MatchString(last):
		if n >= 3 {
			return segs[n-3], segs[n-2]
		}
		if n == 2 {
			return segs[0], ""
		}
		return "", ""
	case stateZipPattern.MatchString(last):
		state = strings.ToUpper(stateZipPattern.FindStringSubmatch(last)[1])
		if n >= 2 {
			city = segs[n-2]
		}
		return city, state
	case stateAbbr.MatchString(last):
		state = strings.ToUpper(last)
		if n >= 2 {
			city = segs[n-2]
		}
		return city, state
	}

	switch n {
	case 1:
		return segs[0], ""
	case 2:
		return segs[0], segs[1]
	default:
		return segs[n-2], segs[n-1]
	}
}
