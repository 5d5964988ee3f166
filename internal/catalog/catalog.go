package catalog

import "fmt"

// Product is a catalog item. The backend is the system of record;
// Key is assigned there and never invented locally.
type Product struct {
	Key         int64   `json:"product_key"`
	Name        string  `json:"product_name"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	Retailer    string  `json:"retailer"`
	Price       float64 `json:"price"`
	Description string  `json:"product_description,omitempty"`
}

// BrandCount is one row of the brand aggregate: a brand name (possibly
// empty) and the number of products carrying it.
type BrandCount struct {
	Brand string `json:"brand"`
	Count int    `json:"count"`
}

// SortField enumerates the product attributes the list can be sorted by.
type SortField string

const (
	SortByKey      SortField = "key"
	SortByName     SortField = "name"
	SortByRetailer SortField = "retailer"
	SortByBrand    SortField = "brand"
	SortByModel    SortField = "model"
	SortByPrice    SortField = "price"
)

// ParseSortField validates a sort field name.
func ParseSortField(s string) (SortField, error) {
	switch SortField(s) {
	case SortByKey, SortByName, SortByRetailer, SortByBrand, SortByModel, SortByPrice:
		return SortField(s), nil
	}
	return "", fmt.Errorf("unknown sort field %q", s)
}

// SortDirection is the ordering applied to the active sort field.
type SortDirection string

const (
	Ascending  SortDirection = "asc"
	Descending SortDirection = "desc"
)

// ParseSortDirection validates a sort direction name.
func ParseSortDirection(s string) (SortDirection, error) {
	switch SortDirection(s) {
	case Ascending, Descending:
		return SortDirection(s), nil
	}
	return "", fmt.Errorf("unknown sort direction %q", s)
}

// Toggle flips ascending to descending and back.
func (d SortDirection) Toggle() SortDirection {
	if d == Ascending {
		return Descending
	}
	return Ascending
}

// PageRequest describes one page of the product list. Page is 1-based
// here; the translation to the backend's 0-based index happens exactly
// once, at the network boundary.
type PageRequest struct {
	Page          int
	Size          int
	Search        string
	SortField     SortField
	SortDirection SortDirection
}

// PageResult is one page of products together with collection totals.
type PageResult struct {
	Items         []Product
	TotalPages    int
	TotalElements int
}
