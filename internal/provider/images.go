package provider

// galleryRefs are the image arrays collected, in order.
var galleryRefs = []ref{
	top("imageUrls"),
	top("businessPhotos"),
	top("photos"),
	top("venuePhotos"),
	form("venuePhotos"),
	form("businessPhotos"),
	top("mediaGallery"),
	top("galleryMedia"),
}

// primaryImageRefs are promoted to the front of the list, moving any
// existing copy. The last one prepended ends up first.
var primaryImageRefs = []ref{
	top("coverPhoto"),
	form("coverPhoto"),
	top("primaryImageUrl"),
}

// CollectImages returns every image URL on rec, primary images first,
// without duplicates.
func CollectImages(rec *Record) []string {
	return newView(rec).images()
}

func (v *view) images() []string {
	var collected []string
	for _, r := range galleryRefs {
		for _, val := range v.values(r) {
			items, ok := val.([]any)
			if !ok {
				continue
			}
			for _, item := range items {
				if u, ok := imageURL(item); ok {
					collected = append(collected, u)
				}
			}
		}
	}

	for _, r := range primaryImageRefs {
		for _, val := range v.values(r) {
			if u, ok := imageURL(val); ok {
				collected = append([]string{u}, collected...)
			}
		}
	}

	return dedupe(collected)
}

// imageURL accepts a bare URL or a gallery entry object.
func imageURL(val any) (string, bool) {
	if m, ok := val.(map[string]any); ok {
		return firstString(m, "url", "src", "downloadURL")
	}
	if s, ok := val.(string); ok {
		return toString(s)
	}
	return "", false
}

// dedupe keeps the first occurrence of each value. Never returns nil.
func dedupe(list []string) []string {
	seen := make(map[string]struct{}, len(list))
	out := make([]string, 0, len(list))
	for _, s := range list {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
