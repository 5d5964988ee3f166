package api

import "github.com/linhqtruong/productcatalogmanager/internal/catalog"

// wireProduct accepts both wire spellings the backend has historically
// produced for the same logical field (snake_case and camelCase).
// Normalization to the canonical internal names happens here, on parse,
// so nothing past this file ever sees an alias.
type wireProduct struct {
	Key            int64   `json:"product_key"`
	KeyCamel       int64   `json:"productKey"`
	Name           string  `json:"product_name"`
	NameCamel      string  `json:"productName"`
	Description    string  `json:"product_description"`
	DescCamel      string  `json:"productDescription"`
	Brand          string  `json:"brand"`
	Model          string  `json:"model"`
	Retailer       string  `json:"retailer"`
	Price          float64 `json:"price"`
}

func (w wireProduct) normalize() catalog.Product {
	p := catalog.Product{
		Key:         w.Key,
		Name:        w.Name,
		Description: w.Description,
		Brand:       w.Brand,
		Model:       w.Model,
		Retailer:    w.Retailer,
		Price:       w.Price,
	}
	if p.Key == 0 {
		p.Key = w.KeyCamel
	}
	if p.Name == "" {
		p.Name = w.NameCamel
	}
	if p.Description == "" {
		p.Description = w.DescCamel
	}
	return p
}

// wireProductBody is the request body for create and update calls.
// Outbound traffic uses only the canonical snake_case names.
type wireProductBody struct {
	Name        string  `json:"product_name"`
	Description string  `json:"product_description"`
	Retailer    string  `json:"retailer"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	Price       float64 `json:"price"`
}

// wirePage is the backend's list envelope.
type wirePage struct {
	Content       []wireProduct `json:"content"`
	TotalPages    int           `json:"totalPages"`
	TotalElements int           `json:"totalElements"`
}

func (w wirePage) normalize() catalog.PageResult {
	items := make([]catalog.Product, 0, len(w.Content))
	for _, p := range w.Content {
		items = append(items, p.normalize())
	}
	return catalog.PageResult{
		Items:         items,
		TotalPages:    w.TotalPages,
		TotalElements: w.TotalElements,
	}
}

// sortParam renders a sort field and direction in the backend's
// "property,direction" query format.
var sortParam = map[catalog.SortField]string{
	catalog.SortByKey:      "productKey",
	catalog.SortByName:     "productName",
	catalog.SortByRetailer: "retailer",
	catalog.SortByBrand:    "brand",
	catalog.SortByModel:    "model",
	catalog.SortByPrice:    "price",
}
