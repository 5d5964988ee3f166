package render

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linhqtruong/productcatalogmanager/internal/catalog"
	"github.com/linhqtruong/productcatalogmanager/internal/controller"
	"github.com/linhqtruong/productcatalogmanager/pkg/logger"
)

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$9.99", FormatPrice(9.99))
	assert.Equal(t, "$10.00", FormatPrice(10))
	assert.Equal(t, "$1299.90", FormatPrice(1299.9))
}

func TestDisplayBrand(t *testing.T) {
	assert.Equal(t, "Acme", DisplayBrand("Acme"))
	assert.Equal(t, "Unknown", DisplayBrand(""))
}

func TestProductTable(t *testing.T) {
	var buf bytes.Buffer
	err := ProductTable(&buf, controller.ListSnapshot{
		Page:          2,
		PageSize:      10,
		TotalPages:    3,
		TotalElements: 25,
		SortField:     catalog.SortByPrice,
		SortDirection: catalog.Descending,
		Search:        "widget",
		Rows: []catalog.Product{
			{Key: 11, Name: "Widget", Retailer: "Shop", Brand: "Acme", Model: "W1", Price: 9.99},
		},
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, `Search: "widget"`)
	assert.Contains(t, out, "Widget")
	assert.Contains(t, out, "$9.99")
	assert.Contains(t, out, "PRICE v", "the active sort column carries a direction marker")
	assert.Contains(t, out, "Page 2 of 3 | 25 products | 10 per page")
	assert.NotContains(t, out, "No products found")
}

func TestProductTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	err := ProductTable(&buf, controller.ListSnapshot{Page: 1, PageSize: 10})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "No products found")
	assert.Contains(t, out, "Page 1 of 1", "zero total pages still reads as page 1 of 1")
}

func TestProductTableLoading(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, ProductTable(&buf, controller.ListSnapshot{Loading: true}))
	assert.Contains(t, buf.String(), "Loading products...")
}

func TestProductTableErrorAndNotification(t *testing.T) {
	var buf bytes.Buffer
	err := ProductTable(&buf, controller.ListSnapshot{
		Page:     1,
		PageSize: 10,
		Err:      "Failed to fetch products: Network Error: Please check your internet connection",
		Notification: &controller.Notification{
			Message:  "Product deleted successfully",
			Severity: controller.SeveritySuccess,
		},
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "! Failed to fetch products")
	assert.Contains(t, out, "[success] Product deleted successfully")
}

func TestProductTableDeletePrompt(t *testing.T) {
	var buf bytes.Buffer
	err := ProductTable(&buf, controller.ListSnapshot{
		Page:         1,
		PageSize:     10,
		Rows:         []catalog.Product{{Key: 1, Name: "Widget"}},
		DeleteTarget: &catalog.Product{Key: 1, Name: "Widget"},
	})

	require.NoError(t, err)
	assert.Contains(t, buf.String(), `Delete "Widget"? Type 'confirm' or 'cancel'.`)
}

func TestBrandTableSubstitutesUnknown(t *testing.T) {
	var buf bytes.Buffer
	err := BrandTable(&buf, controller.BrandSummarySnapshot{
		SortField:     controller.BrandSortByBrand,
		SortDirection: catalog.Ascending,
		Rows: []catalog.BrandCount{
			{Brand: "", Count: 1},
			{Brand: "Acme", Count: 5},
		},
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "Unknown")
	assert.Contains(t, out, "Acme")
}

func TestBrandTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, BrandTable(&buf, controller.BrandSummarySnapshot{}))
	assert.Contains(t, buf.String(), "No brand data available")
}

func TestFormView(t *testing.T) {
	var buf bytes.Buffer
	err := FormView(&buf, controller.FormSnapshot{
		Values: map[controller.FormField]string{
			controller.FieldName:  "Widget",
			controller.FieldPrice: "abc",
		},
		FieldErrors: map[controller.FormField]string{
			controller.FieldPrice: "Valid price is required",
		},
	})

	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "New product")
	assert.Contains(t, out, "Widget")
	assert.Contains(t, out, "Valid price is required")
}

func TestBoundaryRecoversFromPanic(t *testing.T) {
	b := NewBoundary(logger.NewWithWriter("test", "error", io.Discard))
	var buf bytes.Buffer

	err := b.Render(&buf, "exploding-view", func(io.Writer) error {
		panic("nil map write")
	})

	require.Error(t, err)
	out := buf.String()
	assert.Contains(t, out, "Something went wrong while rendering this view.")
	assert.Contains(t, out, "retry")
}

func TestBoundaryPassesThroughSuccess(t *testing.T) {
	b := NewBoundary(logger.NewWithWriter("test", "error", io.Discard))
	var buf bytes.Buffer

	err := b.Render(&buf, "ok-view", func(w io.Writer) error {
		_, werr := w.Write([]byte("content"))
		return werr
	})

	require.NoError(t, err)
	assert.Equal(t, "content", buf.String())
}
