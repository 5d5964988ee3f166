package controller

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/linhqtruong/productcatalogmanager/internal/catalog"
	"github.com/linhqtruong/productcatalogmanager/pkg/logger"
)

type fakeBrandAPI struct {
	rows []catalog.BrandCount
	err  error
}

func (f *fakeBrandAPI) BrandSummary(context.Context) ([]catalog.BrandCount, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.rows, nil
}

func newBrandForTest(api BrandSummaryAPI) *BrandSummaryController {
	return NewBrandSummaryController(api, logger.NewWithWriter("test", "error", io.Discard))
}

func TestBrandSummaryLoadAndSort(t *testing.T) {
	api := &fakeBrandAPI{rows: []catalog.BrandCount{
		{Brand: "Voltix", Count: 2},
		{Brand: "acme", Count: 5},
		{Brand: "Clickwell", Count: 3},
	}}
	c := newBrandForTest(api)
	c.Load(context.Background())

	snap := c.Snapshot()
	require.Len(t, snap.Rows, 3)
	assert.Equal(t, "acme", snap.Rows[0].Brand, "brand ordering ignores case")
	assert.Equal(t, "Clickwell", snap.Rows[1].Brand)
	assert.Equal(t, "Voltix", snap.Rows[2].Brand)
}

func TestBrandSummaryMissingBrandSortsAsEmpty(t *testing.T) {
	api := &fakeBrandAPI{rows: []catalog.BrandCount{
		{Brand: "Acme", Count: 5},
		{Brand: "", Count: 1},
	}}
	c := newBrandForTest(api)
	c.Load(context.Background())

	snap := c.Snapshot()
	require.Len(t, snap.Rows, 2)
	assert.Equal(t, "", snap.Rows[0].Brand, "a missing brand sorts as the empty string, first ascending")
}

func TestBrandSummarySortToggle(t *testing.T) {
	api := &fakeBrandAPI{rows: []catalog.BrandCount{
		{Brand: "Acme", Count: 5},
		{Brand: "Voltix", Count: 2},
		{Brand: "Clickwell", Count: 3},
	}}
	c := newBrandForTest(api)
	c.Load(context.Background())

	c.SortBy(BrandSortByBrand)
	snap := c.Snapshot()
	assert.Equal(t, catalog.Descending, snap.SortDirection, "re-sorting the active column flips direction")
	assert.Equal(t, "Voltix", snap.Rows[0].Brand)

	c.SortBy(BrandSortByCount)
	snap = c.Snapshot()
	assert.Equal(t, catalog.Ascending, snap.SortDirection, "a new column starts ascending")
	assert.Equal(t, 2, snap.Rows[0].Count)

	c.SortBy(BrandSortByCount)
	assert.Equal(t, 5, c.Snapshot().Rows[0].Count)
}

func TestBrandSummaryFilter(t *testing.T) {
	api := &fakeBrandAPI{rows: []catalog.BrandCount{
		{Brand: "Acme", Count: 5},
		{Brand: "Audine", Count: 2},
		{Brand: "Voltix", Count: 3},
	}}
	c := newBrandForTest(api)
	c.Load(context.Background())

	c.SetFilter("a")
	snap := c.Snapshot()
	require.Len(t, snap.Rows, 2, "filter matches substrings ignoring case")

	c.SetFilter("ACME")
	snap = c.Snapshot()
	require.Len(t, snap.Rows, 1)
	assert.Equal(t, "Acme", snap.Rows[0].Brand)

	c.SetFilter("")
	assert.Len(t, c.Snapshot().Rows, 3)
}

func TestBrandSummaryLoadFailureKeepsRows(t *testing.T) {
	api := &fakeBrandAPI{rows: []catalog.BrandCount{{Brand: "Acme", Count: 5}}}
	c := newBrandForTest(api)
	c.Load(context.Background())
	require.Len(t, c.Snapshot().Rows, 1)

	api.err = errors.New("Network Error: Please check your internet connection")
	c.Load(context.Background())

	snap := c.Snapshot()
	assert.Len(t, snap.Rows, 1, "previously fetched rows survive a failed reload")
	assert.Equal(t, "Failed to fetch brand summary: Network Error: Please check your internet connection", snap.Err)
}
