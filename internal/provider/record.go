package provider

import "strings"

// Record is a raw provider document as found in the datastore, together with
// the documents of its details sub-collection.
type Record struct {
	ID       string
	Category Category
	// Source is the collection path the document was found in.
	Source  string
	Data    map[string]any
	Details map[string]map[string]any
}

// scope is one layer of the record, in general precedence order.
type scope int

const (
	scopeTop scope = iota
	scopeForm
	scopeCat
	scopeSub
	scopePricing
)

// ref names one place a field may be stored.
type ref struct {
	scope scope
	path  []string
}

func top(path string) ref     { return ref{scopeTop, strings.Split(path, ".")} }
func form(path string) ref    { return ref{scopeForm, strings.Split(path, ".")} }
func cat(path string) ref     { return ref{scopeCat, strings.Split(path, ".")} }
func sub(path string) ref     { return ref{scopeSub, strings.Split(path, ".")} }
func pricing(path string) ref { return ref{scopePricing, strings.Split(path, ".")} }

// common expands keys to the record-wide order: top, form, category
// details, details documents. Aliases are tried within each scope.
func common(keys ...string) []ref {
	return expand([]scope{scopeTop, scopeForm, scopeCat, scopeSub}, keys)
}

// field expands keys to the category block order: top, category details,
// form, details documents.
func field(keys ...string) []ref {
	return expand([]scope{scopeTop, scopeCat, scopeForm, scopeSub}, keys)
}

// priced is field plus the pricing document.
func priced(keys ...string) []ref {
	return expand([]scope{scopeTop, scopeCat, scopeForm, scopeSub, scopePricing}, keys)
}

// topForm expands keys over the top level and formData only.
func topForm(keys ...string) []ref {
	return expand([]scope{scopeTop, scopeForm}, keys)
}

func expand(scopes []scope, keys []string) []ref {
	refs := make([]ref, 0, len(scopes)*len(keys))
	for _, s := range scopes {
		for _, k := range keys {
			refs = append(refs, ref{s, strings.Split(k, ".")})
		}
	}
	return refs
}

// view is the layered read model every resolver works against.
type view struct {
	id       string
	category Category
	top      map[string]any
	form     map[string]any
	cat      []map[string]any
	sub      []map[string]any
	pricing  map[string]any
	details  map[string]map[string]any
}

func newView(rec *Record) *view {
	v := &view{category: DefaultCategory}
	if rec == nil {
		return v
	}
	v.id = rec.ID
	v.category = rec.Category
	v.top = rec.Data
	v.form, _ = rec.Data["formData"].(map[string]any)
	v.details = rec.Details
	if !v.category.Valid() {
		v.category = DefaultCategory
	}
	v.cat = v.categoryObjects(v.category)
	v.sub = v.detailsDocs(v.category)
	v.pricing = rec.Details["pricing"]
	return v
}

// categoryObjects returns the nested <category>Details objects stored on
// the main document and inside formData.
func (v *view) categoryObjects(c Category) []map[string]any {
	var out []map[string]any
	key := c.detailsKey()
	for _, m := range []map[string]any{v.top, v.form} {
		if obj, ok := m[key].(map[string]any); ok {
			out = append(out, obj)
		}
	}
	return out
}

func (v *view) detailsDocs(c Category) []map[string]any {
	var out []map[string]any
	for _, name := range c.detailsDocs() {
		if doc, ok := v.details[name]; ok && doc != nil {
			out = append(out, doc)
		}
	}
	return out
}

// values returns every raw value stored at r, in layer order.
func (v *view) values(r ref) []any {
	var layers []map[string]any
	switch r.scope {
	case scopeTop:
		layers = []map[string]any{v.top}
	case scopeForm:
		layers = []map[string]any{v.form}
	case scopeCat:
		layers = v.cat
	case scopeSub:
		layers = v.sub
	case scopePricing:
		layers = []map[string]any{v.pricing}
	}

	var out []any
	for _, m := range layers {
		if val := dig(m, r.path); !isEmpty(val) {
			out = append(out, val)
		}
	}
	return out
}

func dig(m map[string]any, path []string) any {
	var cur any = m
	for _, key := range path {
		obj, ok := cur.(map[string]any)
		if !ok || obj == nil {
			return nil
		}
		cur = obj[key]
	}
	return cur
}

// firstOf walks refs in order and returns the first stored value conv
// accepts.
func firstOf[T any](v *view, conv func(any) (T, bool), refs ...ref) (T, bool) {
	for _, r := range refs {
		for _, val := range v.values(r) {
			if out, ok := conv(val); ok {
				return out, true
			}
		}
	}
	var zero T
	return zero, false
}

func (v *view) str(refs ...ref) *string {
	if s, ok := firstOf(v, toString, refs...); ok {
		return &s
	}
	return nil
}

func (v *view) joined(refs ...ref) *string {
	if s, ok := firstOf(v, toJoined, refs...); ok {
		return &s
	}
	return nil
}

func (v *view) num(refs ...ref) *float64 {
	if f, ok := firstOf(v, toNumber, refs...); ok {
		return &f
	}
	return nil
}

func (v *view) integer(refs ...ref) *int {
	if n, ok := firstOf(v, toInt, refs...); ok {
		return &n
	}
	return nil
}

// flag returns the first explicitly set boolean, defaulting to false.
func (v *view) flag(refs ...ref) bool {
	b, _ := firstOf(v, toBool, refs...)
	return b
}

// list never returns nil.
func (v *view) list(refs ...ref) []string {
	if l, ok := firstOf(v, toStrings, refs...); ok {
		return l
	}
	return []string{}
}

func (v *view) object(refs ...ref) map[string]any {
	m, _ := firstOf(v, toObject, refs...)
	return m
}

func (v *view) objects(refs ...ref) []map[string]any {
	l, _ := firstOf(v, toObjects, refs...)
	return l
}

func (v *view) timestamp(refs ...ref) *string {
	if s, ok := firstOf(v, toTimestamp, refs...); ok {
		return &s
	}
	return nil
}
