package catalog

// CategoryAll is the pseudo-category that matches every product.
const CategoryAll = "todos"

// Categories is the fixed, ordered list of filter controls rendered on the
// storefront. The "todos" pseudo-category always comes first.
var Categories = []string{
	CategoryAll,
	"herramientas",
	"electricos",
	"fontaneria",
	"pinturas",
	"construccion",
	"seguridad",
	"tornilleria",
	"jardin",
	"iluminacion",
	"madera",
	"plasticos",
}

var categoryNames = map[string]string{
	"todos":        "Todos",
	"herramientas": "Herramientas",
	"electricos":   "Eléctricos",
	"fontaneria":   "Fontanería",
	"pinturas":     "Pinturas",
	"construccion": "Construcción",
	"seguridad":    "Seguridad",
	"tornilleria":  "Tornillería",
	"jardin":       "Jardín",
	"iluminacion":  "Iluminación",
	"madera":       "Madera",
	"plasticos":    "Plásticos",
}

// CategoryName maps a category slug to its display name, returning the slug
// unchanged when it is not in the table.
func CategoryName(category string) string {
	if name, ok := categoryNames[category]; ok {
		return name
	}
	return category
}
