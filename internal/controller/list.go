// Package controller holds the view-state controllers of the admin
// console: the paginated product list, the create/edit form, and the
// brand aggregate. Controllers own all mutable view state; rendering
// layers only ever observe immutable snapshots.
package controller

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/linhqtruong/productcatalogmanager/internal/catalog"
)

// ProductAPI is the slice of the catalog API the list controller needs.
type ProductAPI interface {
	ListProducts(ctx context.Context, req catalog.PageRequest) (catalog.PageResult, error)
	DeleteProduct(ctx context.Context, key int64) error
}

// ListConfig carries the tunables of the list controller.
type ListConfig struct {
	PageSize             int
	PageSizeOptions      []int
	SortField            catalog.SortField
	SortDirection        catalog.SortDirection
	SearchDebounce       time.Duration
	NotificationAutoHide time.Duration
}

// ListSnapshot is an immutable copy of the list view state.
type ListSnapshot struct {
	Page             int
	PageSize         int
	SortField        catalog.SortField
	SortDirection    catalog.SortDirection
	SearchInput      string
	Search           string
	Loading          bool
	Err              string
	Rows             []catalog.Product
	TotalPages       int
	TotalElements    int
	DeleteTarget     *catalog.Product
	DeleteInProgress bool
	Notification     *Notification
}

// ListController owns the paginated, sorted, filtered view of the
// product collection. All state mutation happens under one mutex; the
// debounce and notification timers are the only sources of deferred
// work, and at most one of each is alive at a time.
type ListController struct {
	api    ProductAPI
	logger *slog.Logger
	cfg    ListConfig

	mu            sync.Mutex
	page          int
	pageSize      int
	sortField     catalog.SortField
	sortDirection catalog.SortDirection
	searchInput   string
	search        string
	loading       bool
	err           string
	rows          []catalog.Product
	totalPages    int
	totalElements int

	deleteTarget     *catalog.Product
	deleteInProgress bool

	notification *Notification
	notifSeq     int
	notifTimer   *time.Timer

	debounce *time.Timer

	// gen is a monotonic fetch generation. A response is applied only
	// if its generation is still the latest, so a slow earlier fetch
	// can never overwrite a newer one.
	gen uint64

	onChange func(ListSnapshot)
}

// NewListController creates a list controller in its initial state.
// No fetch is issued until Load is called.
func NewListController(api ProductAPI, cfg ListConfig, logger *slog.Logger) *ListController {
	return &ListController{
		api:           api,
		logger:        logger,
		cfg:           cfg,
		page:          1,
		pageSize:      cfg.PageSize,
		sortField:     cfg.SortField,
		sortDirection: cfg.SortDirection,
		loading:       true,
	}
}

// SetOnChange registers a callback invoked with a fresh snapshot after
// every state change. Must be called before the controller is used;
// the callback runs outside the controller lock.
func (c *ListController) SetOnChange(fn func(ListSnapshot)) {
	c.onChange = fn
}

// Snapshot returns a copy of the current view state.
func (c *ListController) Snapshot() ListSnapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshotLocked()
}

// Load issues the initial fetch for the current page.
func (c *ListController) Load(ctx context.Context) {
	c.mu.Lock()
	req, gen := c.prepareFetchLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
	c.runFetch(ctx, req, gen)
}

// SetPage moves to the given 1-based page and fetches it. Values below
// 1 and the current page are ignored.
func (c *ListController) SetPage(ctx context.Context, page int) {
	c.mu.Lock()
	if page < 1 || page == c.page {
		c.mu.Unlock()
		return
	}
	c.page = page
	req, gen := c.prepareFetchLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
	c.runFetch(ctx, req, gen)
}

// SetPageSize switches the page size, resets the page to 1, and
// fetches. Sizes outside the configured option set are ignored, as is
// the current size (so the page resets exactly when the size changes).
func (c *ListController) SetPageSize(ctx context.Context, size int) {
	c.mu.Lock()
	if size == c.pageSize {
		c.mu.Unlock()
		return
	}
	if !slices.Contains(c.cfg.PageSizeOptions, size) {
		c.mu.Unlock()
		c.logger.Warn("ignoring page size outside allowed set", slog.Int("size", size))
		return
	}
	c.pageSize = size
	c.page = 1
	req, gen := c.prepareFetchLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
	c.runFetch(ctx, req, gen)
}

// SetSearchInput records one keystroke of the search field and
// restarts the debounce countdown. Only a countdown that survives
// uninterrupted commits the term, resets the page to 1, and fetches;
// interrupted timers never fire.
func (c *ListController) SetSearchInput(ctx context.Context, text string) {
	c.mu.Lock()
	c.searchInput = text
	if c.debounce != nil {
		c.debounce.Stop()
	}
	c.debounce = time.AfterFunc(c.cfg.SearchDebounce, func() { c.commitSearch(ctx) })
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
}

func (c *ListController) commitSearch(ctx context.Context) {
	c.mu.Lock()
	c.search = c.searchInput
	c.page = 1
	req, gen := c.prepareFetchLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
	c.runFetch(ctx, req, gen)
}

// SortBy toggles the direction when field is already active, otherwise
// activates the field ascending, then refetches the current page with
// the new ordering. Sorting is the backend's job; already-fetched rows
// are never re-sorted locally.
func (c *ListController) SortBy(ctx context.Context, field catalog.SortField) {
	c.mu.Lock()
	if c.sortField == field {
		c.sortDirection = c.sortDirection.Toggle()
	} else {
		c.sortField = field
		c.sortDirection = catalog.Ascending
	}
	req, gen := c.prepareFetchLocked()
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
	c.runFetch(ctx, req, gen)
}

// RequestDelete opens the delete confirmation gate for the given
// product. No network call is made.
func (c *ListController) RequestDelete(p catalog.Product) {
	c.mu.Lock()
	c.deleteTarget = &p
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
}

// CancelDelete closes the confirmation gate without deleting.
func (c *ListController) CancelDelete() {
	c.mu.Lock()
	if c.deleteInProgress {
		c.mu.Unlock()
		return
	}
	c.deleteTarget = nil
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
}

// ConfirmDelete deletes the confirmed target. On success the row is
// removed from the current page immediately, without a refetch; if
// that empties a page beyond the first, the view moves back one page
// and fetches it. On failure rows are untouched and the gate closes so
// the dialog cannot get stuck.
func (c *ListController) ConfirmDelete(ctx context.Context) {
	c.mu.Lock()
	if c.deleteTarget == nil || c.deleteInProgress {
		c.mu.Unlock()
		return
	}
	key := c.deleteTarget.Key
	c.deleteInProgress = true
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)

	err := c.api.DeleteProduct(ctx, key)

	c.mu.Lock()
	c.deleteInProgress = false
	c.deleteTarget = nil
	if err != nil {
		c.err = "Failed to delete product: " + err.Error()
		c.notifyLocked(c.err, SeverityError)
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.emit(snap)
		return
	}

	c.rows = slices.DeleteFunc(slices.Clone(c.rows), func(p catalog.Product) bool {
		return p.Key == key
	})
	c.notifyLocked("Product deleted successfully", SeveritySuccess)

	var req catalog.PageRequest
	var gen uint64
	refetch := false
	if len(c.rows) == 0 && c.page > 1 {
		c.page--
		req, gen = c.prepareFetchLocked()
		refetch = true
	}
	snap = c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)

	if refetch {
		c.runFetch(ctx, req, gen)
	}
}

// DismissError clears the persistent error banner.
func (c *ListController) DismissError() {
	c.mu.Lock()
	c.err = ""
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
}

// DismissNotification clears the transient notification ahead of its
// auto-hide deadline.
func (c *ListController) DismissNotification() {
	c.mu.Lock()
	c.notification = nil
	c.notifSeq++
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
}

// prepareFetchLocked advances the fetch generation, marks the view
// loading, clears the error banner, and captures the page request for
// the fetch about to be issued.
func (c *ListController) prepareFetchLocked() (catalog.PageRequest, uint64) {
	c.gen++
	c.loading = true
	c.err = ""
	req := catalog.PageRequest{
		Page:          c.page,
		Size:          c.pageSize,
		Search:        c.search,
		SortField:     c.sortField,
		SortDirection: c.sortDirection,
	}
	return req, c.gen
}

// runFetch performs the network call and applies the result, unless a
// newer fetch has been issued in the meantime. On failure the
// previously rendered rows are kept; a stale view beats an empty one.
func (c *ListController) runFetch(ctx context.Context, req catalog.PageRequest, gen uint64) {
	res, err := c.api.ListProducts(ctx, req)

	c.mu.Lock()
	if gen != c.gen {
		c.mu.Unlock()
		c.logger.Debug("discarding stale list response",
			slog.Uint64("generation", gen),
			slog.Int("page", req.Page),
		)
		return
	}
	c.loading = false
	if err != nil {
		c.err = "Failed to fetch products: " + err.Error()
		c.notifyLocked(c.err, SeverityError)
	} else {
		c.rows = res.Items
		c.totalPages = res.TotalPages
		c.totalElements = res.TotalElements
	}
	snap := c.snapshotLocked()
	c.mu.Unlock()
	c.emit(snap)
}

// notifyLocked replaces the transient notification and restarts its
// auto-hide countdown. The sequence number keeps an expired timer from
// dismissing a notification raised after it.
func (c *ListController) notifyLocked(message string, severity Severity) {
	c.notifSeq++
	seq := c.notifSeq
	c.notification = &Notification{Message: message, Severity: severity}
	if c.notifTimer != nil {
		c.notifTimer.Stop()
	}
	if c.cfg.NotificationAutoHide <= 0 {
		return
	}
	c.notifTimer = time.AfterFunc(c.cfg.NotificationAutoHide, func() {
		c.mu.Lock()
		if c.notifSeq != seq {
			c.mu.Unlock()
			return
		}
		c.notification = nil
		snap := c.snapshotLocked()
		c.mu.Unlock()
		c.emit(snap)
	})
}

func (c *ListController) snapshotLocked() ListSnapshot {
	snap := ListSnapshot{
		Page:             c.page,
		PageSize:         c.pageSize,
		SortField:        c.sortField,
		SortDirection:    c.sortDirection,
		SearchInput:      c.searchInput,
		Search:           c.search,
		Loading:          c.loading,
		Err:              c.err,
		Rows:             slices.Clone(c.rows),
		TotalPages:       c.totalPages,
		TotalElements:    c.totalElements,
		DeleteInProgress: c.deleteInProgress,
	}
	if c.deleteTarget != nil {
		t := *c.deleteTarget
		snap.DeleteTarget = &t
	}
	if c.notification != nil {
		n := *c.notification
		snap.Notification = &n
	}
	return snap
}

func (c *ListController) emit(snap ListSnapshot) {
	if c.onChange != nil {
		c.onChange(snap)
	}
}
