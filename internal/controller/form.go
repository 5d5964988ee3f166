package controller

import (
	"context"
	"errors"
	"log/slog"
	"maps"
	"math"
	"strconv"
	"strings"
	"sync"

	"github.com/linhqtruong/productcatalogmanager/internal/catalog"
	"github.com/linhqtruong/productcatalogmanager/pkg/validator"
)

// FormAPI is the slice of the catalog API the form controller needs.
type FormAPI interface {
	GetProduct(ctx context.Context, key int64) (catalog.Product, error)
	CreateProduct(ctx context.Context, p catalog.Product) (catalog.Product, error)
	UpdateProduct(ctx context.Context, key int64, p catalog.Product) (catalog.Product, error)
}

// FormField names one editable form field. The values double as the
// keys of the field error map.
type FormField string

const (
	FieldName        FormField = "productName"
	FieldBrand       FormField = "brand"
	FieldModel       FormField = "model"
	FieldRetailer    FormField = "retailer"
	FieldPrice       FormField = "price"
	FieldDescription FormField = "productDescription"
)

// FormSnapshot is an immutable copy of the form view state.
type FormSnapshot struct {
	Editing     bool
	Key         int64
	Values      map[FormField]string
	FieldErrors map[FormField]string
	Err         string
	Loading     bool
	Saving      bool
}

// formSubmission is the shape handed to the validator. Price is
// validated on its parsed value; string fields on their trimmed ones.
type formSubmission struct {
	ProductName string  `validate:"required"`
	Brand       string  `validate:"required"`
	Model       string  `validate:"required"`
	Retailer    string  `validate:"required"`
	Price       float64 `validate:"required,gt=0"`
}

// fieldForStructField maps validator output back onto form fields.
var fieldForStructField = map[string]FormField{
	"ProductName": FieldName,
	"Brand":       FieldBrand,
	"Model":       FieldModel,
	"Retailer":    FieldRetailer,
	"Price":       FieldPrice,
}

// fieldLabels provide the human prefix of each validation message.
var fieldLabels = map[FormField]string{
	FieldName:     "Product name",
	FieldBrand:    "Brand",
	FieldModel:    "Model",
	FieldRetailer: "Retailer",
}

// FormController holds one product's editable fields as plain strings
// (price included, pending parse) and validates them on submit. A
// controller constructed with a key edits that product; without one it
// creates a new product.
type FormController struct {
	api    FormAPI
	logger *slog.Logger
	key    *int64

	mu          sync.Mutex
	values      map[FormField]string
	fieldErrors map[FormField]string
	err         string
	loading     bool
	saving      bool
}

// NewFormController creates a form controller. key is nil for create
// mode; in edit mode Load fetches the product into the fields.
func NewFormController(api FormAPI, logger *slog.Logger, key *int64) *FormController {
	return &FormController{
		api:         api,
		logger:      logger,
		key:         key,
		values:      map[FormField]string{},
		fieldErrors: map[FormField]string{},
	}
}

// Load prefetches the edited product. A no-op in create mode.
func (c *FormController) Load(ctx context.Context) {
	if c.key == nil {
		return
	}

	c.mu.Lock()
	c.loading = true
	c.mu.Unlock()

	p, err := c.api.GetProduct(ctx, *c.key)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.err = "Failed to fetch product: " + err.Error()
		return
	}
	c.err = ""
	c.values = map[FormField]string{
		FieldName:        p.Name,
		FieldBrand:       p.Brand,
		FieldModel:       p.Model,
		FieldRetailer:    p.Retailer,
		FieldPrice:       strconv.FormatFloat(p.Price, 'f', -1, 64),
		FieldDescription: p.Description,
	}
}

// SetValue records a field edit. Existing validation messages stay in
// place until the next submit attempt.
func (c *FormController) SetValue(field FormField, value string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.values[field] = value
}

// Submit validates all fields together and, when clean, sends the
// create or update call. It reports true once the save succeeded and
// the caller can navigate back to the list. On any failure the entered
// values are preserved.
func (c *FormController) Submit(ctx context.Context) bool {
	c.mu.Lock()
	if c.saving {
		c.mu.Unlock()
		return false
	}

	product, fieldErrors := c.validateLocked()
	c.fieldErrors = fieldErrors
	if len(fieldErrors) > 0 {
		c.mu.Unlock()
		return false
	}

	c.saving = true
	c.err = ""
	key := c.key
	c.mu.Unlock()

	var err error
	if key != nil {
		_, err = c.api.UpdateProduct(ctx, *key, product)
	} else {
		_, err = c.api.CreateProduct(ctx, product)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.saving = false
	if err != nil {
		c.err = "Failed to save product: " + err.Error()
		return false
	}
	return true
}

// validateLocked evaluates the whole rule set at once: the four string
// fields must be non-blank after trimming and the price must parse as
// a finite number greater than zero. The returned product already
// carries the trimmed values and parsed price.
func (c *FormController) validateLocked() (catalog.Product, map[FormField]string) {
	fieldErrors := map[FormField]string{}

	sub := formSubmission{
		ProductName: strings.TrimSpace(c.values[FieldName]),
		Brand:       strings.TrimSpace(c.values[FieldBrand]),
		Model:       strings.TrimSpace(c.values[FieldModel]),
		Retailer:    strings.TrimSpace(c.values[FieldRetailer]),
	}

	rawPrice := strings.TrimSpace(c.values[FieldPrice])
	price, perr := strconv.ParseFloat(rawPrice, 64)
	if rawPrice == "" || perr != nil || math.IsInf(price, 0) || math.IsNaN(price) {
		fieldErrors[FieldPrice] = "Valid price is required"
		// Keep the validator focused on the remaining fields.
		sub.Price = 1
	} else {
		sub.Price = price
	}

	if err := validator.Validate(sub); err != nil {
		var valErr *validator.ValidationError
		if errors.As(err, &valErr) {
			for structField := range valErr.Fields() {
				field, ok := fieldForStructField[structField]
				if !ok {
					continue
				}
				if field == FieldPrice {
					fieldErrors[field] = "Valid price is required"
					continue
				}
				fieldErrors[field] = fieldLabels[field] + " is required"
			}
		} else {
			c.logger.Error("form validation failed unexpectedly", slog.String("error", err.Error()))
			fieldErrors[FieldName] = "Validation failed"
		}
	}

	return catalog.Product{
		Name:        sub.ProductName,
		Brand:       sub.Brand,
		Model:       sub.Model,
		Retailer:    sub.Retailer,
		Price:       sub.Price,
		Description: strings.TrimSpace(c.values[FieldDescription]),
	}, fieldErrors
}

// Snapshot returns a copy of the current form state.
func (c *FormController) Snapshot() FormSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	snap := FormSnapshot{
		Editing:     c.key != nil,
		Values:      maps.Clone(c.values),
		FieldErrors: maps.Clone(c.fieldErrors),
		Err:         c.err,
		Loading:     c.loading,
		Saving:      c.saving,
	}
	if c.key != nil {
		snap.Key = *c.key
	}
	return snap
}
