package catalog

import "strings"

// Filter selects products by free-text search and category. Both criteria
// compose: a product must satisfy each active one.
type Filter struct {
	Query    string
	Category string
}

// IsZero reports whether the filter would pass every product through.
func (f Filter) IsZero() bool {
	return strings.TrimSpace(f.Query) == "" &&
		(f.Category == "" || f.Category == CategoryAll)
}

// Match applies the composed predicate to one product.
func (f Filter) Match(p Product) bool {
	if q := strings.ToLower(strings.TrimSpace(f.Query)); q != "" {
		name := strings.ToLower(p.Name)
		desc := strings.ToLower(p.Description)
		if !strings.Contains(name, q) && !strings.Contains(desc, q) {
			return false
		}
	}
	if f.Category != "" && f.Category != CategoryAll {
		if !p.InCategory(f.Category) {
			return false
		}
	}
	return true
}

// Apply returns the products matching the filter, preserving order.
func Apply(products []Product, f Filter) []Product {
	if f.IsZero() {
		return products
	}
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if f.Match(p) {
			out = append(out, p)
		}
	}
	return out
}
