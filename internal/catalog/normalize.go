package catalog

import (
	"strconv"
	"strings"
)

// RawProduct is one undecoded record from the remote sheet. Records may use
// the canonical field names or the legacy localized ones, and numeric fields
// sometimes arrive as strings, so everything is resolved dynamically.
type RawProduct map[string]any

// Normalize resolves a raw record into the canonical product shape. Each
// canonical field is read from its primary key first and a legacy key second;
// numbers coerce with a zero default, booleans accept the sheet's sentinel
// strings.
func Normalize(raw RawProduct) Product {
	p := Product{
		ID:          stringField(raw, "id", "ID_Producto"),
		Name:        stringField(raw, "name", "Nombre"),
		Category:    stringField(raw, "category", "Categoría_Principal"),
		Price:       numberField(raw, "price", "Precio"),
		Image:       stringField(raw, "image", "Imagen URL"),
		Description: stringField(raw, "description", "Descripción"),
		Code:        stringField(raw, "code", "Código"),
	}
	p.Stock = int(numberField(raw, "stock", "Stock"))
	if p.Price < 0 {
		p.Price = 0
	}
	if p.Stock < 0 {
		p.Stock = 0
	}
	if p.Image == "" {
		p.Image = PlaceholderImage
	}

	p.Featured = boolField(raw, "featured") || sentinelYes(raw["Destacado"])

	// "active" wins when present; otherwise the legacy Activo column, where
	// SI, true, and an empty cell all count as active.
	if v, ok := raw["active"]; ok {
		p.Active = truthy(v)
	} else {
		v := raw["Activo"]
		p.Active = sentinelYes(v) || v == true || v == ""
	}

	p.AllCategories = categoriesField(raw, p.Category)
	return p
}

// categoriesField resolves the category set: an explicit array field first,
// then a comma-separated legacy string, then a singleton of the primary
// category.
func categoriesField(raw RawProduct, primary string) []string {
	if v, ok := raw["allCategories"]; ok {
		if cats := toStringSlice(v); len(cats) > 0 {
			return cats
		}
	}
	if v, ok := raw["Todas_Categorías"]; ok {
		switch t := v.(type) {
		case string:
			if cats := splitCategories(t); len(cats) > 0 {
				return cats
			}
		default:
			if cats := toStringSlice(v); len(cats) > 0 {
				return cats
			}
		}
	}
	return []string{primary}
}

func splitCategories(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func toStringSlice(v any) []string {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	var out []string
	for _, item := range items {
		if s, ok := item.(string); ok {
			if s = strings.TrimSpace(s); s != "" {
				out = append(out, s)
			}
		}
	}
	return out
}

func stringField(raw RawProduct, key, legacy string) string {
	for _, k := range []string{key, legacy} {
		if v, ok := raw[k]; ok {
			if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
				return strings.TrimSpace(s)
			}
		}
	}
	return ""
}

func numberField(raw RawProduct, key, legacy string) float64 {
	for _, k := range []string{key, legacy} {
		v, ok := raw[k]
		if !ok {
			continue
		}
		switch t := v.(type) {
		case float64:
			return t
		case int:
			return float64(t)
		case string:
			if n, err := strconv.ParseFloat(strings.TrimSpace(t), 64); err == nil {
				return n
			}
		}
	}
	return 0
}

func boolField(raw RawProduct, key string) bool {
	v, ok := raw[key]
	if !ok {
		return false
	}
	return truthy(v)
}

func truthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		s := strings.ToLower(strings.TrimSpace(t))
		return s == "true" || s == "si" || s == "sí" || s == "1"
	case float64:
		return t != 0
	default:
		return false
	}
}

func sentinelYes(v any) bool {
	s, ok := v.(string)
	return ok && strings.EqualFold(strings.TrimSpace(s), "SI")
}
