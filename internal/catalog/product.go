package catalog

// PlaceholderImage is used whenever a product record carries no image URL.
const PlaceholderImage = "/assets/img/placeholder.svg"

// Product is the canonical catalog record after normalization. Instances are
// built once per load cycle and treated as immutable until the next reload.
type Product struct {
	ID            string
	Name          string
	Category      string
	AllCategories []string
	Featured      bool
	Price         float64
	Stock         int
	Image         string
	Description   string
	Code          string
	Active        bool
}

// StockTier buckets raw stock counts into the three availability labels shown
// on product cards.
type StockTier int

const (
	TierOut StockTier = iota
	TierLow
	TierHigh
)

// Tier derives the availability bucket from the stock count. Thresholds match
// the storefront badges: more than 20 units reads as fully available, more
// than 10 as running low, anything else as out of reach.
func (p Product) Tier() StockTier {
	switch {
	case p.Stock > 20:
		return TierHigh
	case p.Stock > 10:
		return TierLow
	default:
		return TierOut
	}
}

// Label returns the Spanish badge text for the tier.
func (t StockTier) Label() string {
	switch t {
	case TierHigh:
		return "Disponible"
	case TierLow:
		return "Poco stock"
	default:
		return "Agotado"
	}
}

// Class returns the CSS class used by the grid badge for the tier.
func (t StockTier) Class() string {
	switch t {
	case TierHigh:
		return "stock-high"
	case TierLow:
		return "stock-medium"
	default:
		return "stock-low"
	}
}

// InCategory reports whether the product belongs to the given category,
// consulting the full category set and falling back to the primary category
// when the set is empty.
func (p Product) InCategory(category string) bool {
	if len(p.AllCategories) == 0 {
		return p.Category == category
	}
	for _, c := range p.AllCategories {
		if c == category {
			return true
		}
	}
	return false
}

// Featured returns the subset of products eligible for the promotional
// carousel: flagged, in stock, and active.
func FeaturedProducts(products []Product) []Product {
	var out []Product
	for _, p := range products {
		if p.Featured && p.Stock > 0 && p.Active {
			out = append(out, p)
		}
	}
	return out
}
