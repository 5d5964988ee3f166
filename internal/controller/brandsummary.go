package controller

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/linhqtruong/productcatalogmanager/internal/catalog"
)

// BrandSummaryAPI is the slice of the catalog API the aggregate view needs.
type BrandSummaryAPI interface {
	BrandSummary(ctx context.Context) ([]catalog.BrandCount, error)
}

// BrandSortField enumerates the two sortable aggregate columns.
type BrandSortField string

const (
	BrandSortByBrand BrandSortField = "brand"
	BrandSortByCount BrandSortField = "count"
)

// BrandSummarySnapshot is an immutable copy of the aggregate view
// state. Rows carry the sort and filter already applied.
type BrandSummarySnapshot struct {
	Rows          []catalog.BrandCount
	Loading       bool
	Err           string
	SortField     BrandSortField
	SortDirection catalog.SortDirection
	Filter        string
}

// BrandSummaryController fetches the brand aggregate once and applies
// sorting and filtering purely locally on every snapshot. The set is
// assumed small, so neither is debounced or persisted.
type BrandSummaryController struct {
	api      BrandSummaryAPI
	logger   *slog.Logger
	collator *collate.Collator

	mu            sync.Mutex
	rows          []catalog.BrandCount
	loading       bool
	err           string
	sortField     BrandSortField
	sortDirection catalog.SortDirection
	filter        string
}

// NewBrandSummaryController creates the aggregate view controller,
// sorted by brand ascending.
func NewBrandSummaryController(api BrandSummaryAPI, logger *slog.Logger) *BrandSummaryController {
	return &BrandSummaryController{
		api:           api,
		logger:        logger,
		collator:      collate.New(language.English, collate.IgnoreCase),
		loading:       true,
		sortField:     BrandSortByBrand,
		sortDirection: catalog.Ascending,
	}
}

// Load fetches the full aggregate in one call. On failure previously
// fetched rows are kept.
func (c *BrandSummaryController) Load(ctx context.Context) {
	c.mu.Lock()
	c.loading = true
	c.err = ""
	c.mu.Unlock()

	rows, err := c.api.BrandSummary(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.err = "Failed to fetch brand summary: " + err.Error()
		return
	}
	c.rows = rows
}

// SortBy toggles the direction when field is already active, otherwise
// activates the field ascending.
func (c *BrandSummaryController) SortBy(field BrandSortField) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.sortField == field {
		c.sortDirection = c.sortDirection.Toggle()
		return
	}
	c.sortField = field
	c.sortDirection = catalog.Ascending
}

// SetFilter sets the case-insensitive substring filter on brand names.
func (c *BrandSummaryController) SetFilter(filter string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.filter = filter
}

// Snapshot sorts and filters a copy of the rows and returns it with
// the rest of the view state. A missing brand sorts and filters as the
// empty string; rendering it as "Unknown" is the display layer's job.
func (c *BrandSummaryController) Snapshot() BrandSummarySnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()

	rows := make([]catalog.BrandCount, len(c.rows))
	copy(rows, c.rows)

	asc := c.sortDirection == catalog.Ascending
	if c.sortField == BrandSortByBrand {
		sort.SliceStable(rows, func(i, j int) bool {
			cmp := c.collator.CompareString(rows[i].Brand, rows[j].Brand)
			if asc {
				return cmp < 0
			}
			return cmp > 0
		})
	} else {
		sort.SliceStable(rows, func(i, j int) bool {
			if asc {
				return rows[i].Count < rows[j].Count
			}
			return rows[i].Count > rows[j].Count
		})
	}

	if c.filter != "" {
		needle := strings.ToLower(c.filter)
		filtered := rows[:0]
		for _, r := range rows {
			if strings.Contains(strings.ToLower(r.Brand), needle) {
				filtered = append(filtered, r)
			}
		}
		rows = filtered
	}

	return BrandSummarySnapshot{
		Rows:          rows,
		Loading:       c.loading,
		Err:           c.err,
		SortField:     c.sortField,
		SortDirection: c.sortDirection,
		Filter:        c.filter,
	}
}
