package catalog

import "pawmart/models"

// NewestWindow mirrors the storefront's "new collections" heuristic:
// skip the oldest entry, then take the trailing 8 of what remains.
// This is a display window over storage order, not a sorted query.
func NewestWindow(products []models.Product) []models.Product {
	if len(products) <= 1 {
		return []models.Product{}
	}
	rest := products[1:]
	if len(rest) > 8 {
		rest = rest[len(rest)-8:]
	}
	return rest
}

// PopularWindow takes the first 4 products in storage order.
func PopularWindow(products []models.Product) []models.Product {
	if len(products) > 4 {
		products = products[:4]
	}
	return products
}
