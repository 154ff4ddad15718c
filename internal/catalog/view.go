package catalog

import "github.com/pawpantry/storefront-backend/pkg/pagination"

// Page is one window of a filtered product list.
type Page struct {
	Items []Product `json:"items"`
	pagination.Window
}

// View runs the filter and pagination pipeline over products.
func View(products []Product, s FilterState, page, size int) Page {
	filtered := Filter(products, s)
	items, window := pagination.Slice(filtered, page, size)
	if items == nil {
		items = []Product{}
	}
	return Page{Items: items, Window: window}
}
