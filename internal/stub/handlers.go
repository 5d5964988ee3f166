package stub

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/linhqtruong/productcatalogmanager/internal/catalog"
)

const (
	defaultPageSize = 10
	maxPageSize     = 200
	maxPrice        = 999999.99
)

// Handler serves the catalog REST endpoints from a Store.
type Handler struct {
	store  *Store
	logger *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(store *Store, logger *slog.Logger) *Handler {
	return &Handler{store: store, logger: logger}
}

// pageEnvelope mirrors the Spring Data page response shape.
type pageEnvelope struct {
	Content       []catalog.Product `json:"content"`
	TotalPages    int               `json:"totalPages"`
	TotalElements int               `json:"totalElements"`
	Number        int               `json:"number"`
	Size          int               `json:"size"`
}

// errorBody mirrors the backend's exception handler output.
type errorBody struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors,omitempty"`
	Status  int               `json:"status"`
}

// productBody is the create/update request body.
type productBody struct {
	Name        string  `json:"product_name"`
	Description string  `json:"product_description"`
	Retailer    string  `json:"retailer"`
	Brand       string  `json:"brand"`
	Model       string  `json:"model"`
	Price       float64 `json:"price"`
}

// sortFieldForProperty maps the wire sort property names back to
// internal sort fields.
var sortFieldForProperty = map[string]catalog.SortField{
	"productKey":  catalog.SortByKey,
	"productName": catalog.SortByName,
	"retailer":    catalog.SortByRetailer,
	"brand":       catalog.SortByBrand,
	"model":       catalog.SortByModel,
	"price":       catalog.SortByPrice,
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// List serves GET /products with 0-based pagination, search, and sort.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page := 0
	if v, err := strconv.Atoi(q.Get("page")); err == nil && v >= 0 {
		page = v
	}
	size := defaultPageSize
	if v, err := strconv.Atoi(q.Get("size")); err == nil && v > 0 && v <= maxPageSize {
		size = v
	}

	field := catalog.SortByKey
	dir := catalog.Ascending
	if sortParam := q.Get("sort"); sortParam != "" {
		parts := strings.SplitN(sortParam, ",", 2)
		if f, ok := sortFieldForProperty[parts[0]]; ok {
			field = f
		}
		if len(parts) == 2 && parts[1] == string(catalog.Descending) {
			dir = catalog.Descending
		}
	}

	items, total := h.store.List(page, size, q.Get("search"), field, dir)
	totalPages := total / size
	if total%size > 0 {
		totalPages++
	}
	writeJSON(w, http.StatusOK, pageEnvelope{
		Content:       items,
		TotalPages:    totalPages,
		TotalElements: total,
		Number:        page,
		Size:          size,
	})
}

// Get serves GET /products/{key}.
func (h *Handler) Get(w http.ResponseWriter, r *http.Request) {
	key, ok := h.parseKey(w, r)
	if !ok {
		return
	}
	p, found := h.store.Get(key)
	if !found {
		h.notFound(w, key)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Create serves POST /products.
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	body, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}
	p := h.store.Create(bodyToProduct(body))
	writeJSON(w, http.StatusCreated, p)
}

// Update serves PUT /products/{key}.
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	key, ok := h.parseKey(w, r)
	if !ok {
		return
	}
	body, ok := h.decodeAndValidate(w, r)
	if !ok {
		return
	}
	p, found := h.store.Update(key, bodyToProduct(body))
	if !found {
		h.notFound(w, key)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// Delete serves DELETE /products/{key}.
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	key, ok := h.parseKey(w, r)
	if !ok {
		return
	}
	if !h.store.Delete(key) {
		h.notFound(w, key)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// BrandSummary serves GET /products/brand-summary.
func (h *Handler) BrandSummary(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.store.BrandSummary())
}

func (h *Handler) parseKey(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "key")
	key, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || key < 1 {
		writeJSON(w, http.StatusBadRequest, errorBody{
			Message: fmt.Sprintf("Invalid product key: %s", raw),
			Status:  http.StatusBadRequest,
		})
		return 0, false
	}
	return key, true
}

func (h *Handler) notFound(w http.ResponseWriter, key int64) {
	writeJSON(w, http.StatusNotFound, errorBody{
		Message: fmt.Sprintf("Product not found with key: %d", key),
		Status:  http.StatusNotFound,
	})
}

// decodeAndValidate parses the request body and applies the backend's
// validation rules, writing a bean-validation style 400 on failure.
func (h *Handler) decodeAndValidate(w http.ResponseWriter, r *http.Request) (productBody, bool) {
	var body productBody
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeJSON(w, http.StatusBadRequest, errorBody{
			Message: "Malformed request body",
			Status:  http.StatusBadRequest,
		})
		return productBody{}, false
	}

	errs := map[string]string{}
	if strings.TrimSpace(body.Name) == "" {
		errs["productName"] = "Product name is required"
	}
	if strings.TrimSpace(body.Brand) == "" {
		errs["brand"] = "Brand is required"
	}
	if strings.TrimSpace(body.Model) == "" {
		errs["model"] = "Model is required"
	}
	if strings.TrimSpace(body.Retailer) == "" {
		errs["retailer"] = "Retailer is required"
	}
	if body.Price < 0.01 {
		errs["price"] = "Price must be at least 0.01"
	} else if body.Price > maxPrice {
		errs["price"] = "Price cannot exceed 999,999.99"
	}

	if len(errs) > 0 {
		writeJSON(w, http.StatusBadRequest, errorBody{
			Message: "Validation failed",
			Errors:  errs,
			Status:  http.StatusBadRequest,
		})
		return productBody{}, false
	}
	return body, true
}

func bodyToProduct(body productBody) catalog.Product {
	return catalog.Product{
		Name:        body.Name,
		Description: body.Description,
		Retailer:    body.Retailer,
		Brand:       body.Brand,
		Model:       body.Model,
		Price:       body.Price,
	}
}
