// Package app wires the controllers, the API client, and the terminal
// renderer into the interactive admin console.
package app

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/linhqtruong/productcatalogmanager/internal/catalog"
	"github.com/linhqtruong/productcatalogmanager/internal/config"
	"github.com/linhqtruong/productcatalogmanager/internal/controller"
	"github.com/linhqtruong/productcatalogmanager/internal/render"
)

// CatalogAPI is the full API surface the console needs.
type CatalogAPI interface {
	controller.ProductAPI
	controller.FormAPI
	controller.BrandSummaryAPI
}

type viewMode int

const (
	modeList viewMode = iota
	modeBrands
	modeForm
)

// App is the interactive admin console. It reads commands line by line
// and renders the active view after each one.
type App struct {
	cfg      *config.Config
	logger   *slog.Logger
	api      CatalogAPI
	boundary *render.Boundary

	list   *controller.ListController
	brands *controller.BrandSummaryController
	form   *controller.FormController

	mode viewMode
	in   io.Reader
	out  io.Writer
}

// New creates the console app.
func New(cfg *config.Config, api CatalogAPI, logger *slog.Logger, in io.Reader, out io.Writer) *App {
	sortField, sortDir := cfg.SortDefaults()
	list := controller.NewListController(api, controller.ListConfig{
		PageSize:             cfg.DefaultPageSize,
		PageSizeOptions:      cfg.PageSizeOptions,
		SortField:            sortField,
		SortDirection:        sortDir,
		SearchDebounce:       cfg.SearchDebounce,
		NotificationAutoHide: cfg.NotificationAutoHide,
	}, logger)

	return &App{
		cfg:      cfg,
		logger:   logger,
		api:      api,
		boundary: render.NewBoundary(logger),
		list:     list,
		brands:   controller.NewBrandSummaryController(api, logger),
		mode:     modeList,
		in:       in,
		out:      out,
	}
}

// Run loads the product list and enters the command loop. It returns
// when the input is exhausted, the user quits, or ctx is cancelled.
func (a *App) Run(ctx context.Context) error {
	a.list.Load(ctx)
	a.renderActive()

	scanner := bufio.NewScanner(a.in)
	for scanner.Scan() {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			a.renderActive()
			continue
		}
		if line == "quit" || line == "exit" {
			return nil
		}
		a.dispatch(ctx, line)
		a.renderActive()
	}
	return scanner.Err()
}

func (a *App) dispatch(ctx context.Context, line string) {
	cmd, arg, _ := strings.Cut(line, " ")
	arg = strings.TrimSpace(arg)

	switch cmd {
	case "help":
		a.printHelp()
	case "retry":
		// Re-render only; renderActive runs after dispatch.
	case "list":
		a.mode = modeList
	case "brands":
		a.mode = modeBrands
		a.brands.Load(ctx)
	case "dismiss":
		a.list.DismissError()
		a.list.DismissNotification()
	default:
		switch a.mode {
		case modeForm:
			a.dispatchForm(ctx, cmd, arg)
		case modeBrands:
			a.dispatchBrands(cmd, arg)
		default:
			a.dispatchList(ctx, cmd, arg)
		}
	}
}

func (a *App) dispatchList(ctx context.Context, cmd, arg string) {
	switch cmd {
	case "next":
		a.list.SetPage(ctx, a.list.Snapshot().Page+1)
	case "prev":
		a.list.SetPage(ctx, a.list.Snapshot().Page-1)
	case "page":
		if n, err := strconv.Atoi(arg); err == nil {
			a.list.SetPage(ctx, n)
		} else {
			fmt.Fprintf(a.out, "Usage: page <number>\n")
		}
	case "size":
		if n, err := strconv.Atoi(arg); err == nil {
			a.list.SetPageSize(ctx, n)
		} else {
			fmt.Fprintf(a.out, "Usage: size <number> (one of %v)\n", a.cfg.PageSizeOptions)
		}
	case "search":
		a.list.SetSearchInput(ctx, arg)
	case "sort":
		field, err := catalog.ParseSortField(arg)
		if err != nil {
			fmt.Fprintf(a.out, "Unknown sort field %q\n", arg)
			return
		}
		a.list.SortBy(ctx, field)
	case "show":
		a.showProduct(ctx, arg)
	case "new":
		a.form = controller.NewFormController(a.api, a.logger, nil)
		a.mode = modeForm
	case "edit":
		key, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			fmt.Fprintf(a.out, "Usage: edit <key>\n")
			return
		}
		a.form = controller.NewFormController(a.api, a.logger, &key)
		a.form.Load(ctx)
		a.mode = modeForm
	case "delete":
		a.requestDelete(arg)
	case "confirm":
		a.list.ConfirmDelete(ctx)
	case "cancel":
		a.list.CancelDelete()
	default:
		fmt.Fprintf(a.out, "Unknown command %q (try 'help')\n", cmd)
	}
}

func (a *App) dispatchBrands(cmd, arg string) {
	switch cmd {
	case "sort":
		switch controller.BrandSortField(arg) {
		case controller.BrandSortByBrand, controller.BrandSortByCount:
			a.brands.SortBy(controller.BrandSortField(arg))
		default:
			fmt.Fprintf(a.out, "Sortable columns: brand, count\n")
		}
	case "filter":
		a.brands.SetFilter(arg)
	default:
		fmt.Fprintf(a.out, "Unknown command %q (try 'help')\n", cmd)
	}
}

func (a *App) dispatchForm(ctx context.Context, cmd, arg string) {
	switch cmd {
	case "set":
		field, value, ok := strings.Cut(arg, " ")
		if !ok && field == "" {
			fmt.Fprintf(a.out, "Usage: set <field> <value>\n")
			return
		}
		a.form.SetValue(controller.FormField(field), strings.TrimSpace(value))
	case "submit":
		if a.form.Submit(ctx) {
			a.form = nil
			a.mode = modeList
			a.list.Load(ctx)
		}
	case "back":
		a.form = nil
		a.mode = modeList
	default:
		fmt.Fprintf(a.out, "Unknown command %q (try 'help')\n", cmd)
	}
}

func (a *App) showProduct(ctx context.Context, arg string) {
	key, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Usage: show <key>\n")
		return
	}
	p, err := a.api.GetProduct(ctx, key)
	if err != nil {
		fmt.Fprintf(a.out, "! Failed to fetch product: %s\n", err)
		return
	}
	_ = a.boundary.Render(a.out, "product-detail", func(w io.Writer) error {
		return render.ProductDetail(w, p)
	})
}

// requestDelete resolves the key against the currently rendered rows so
// the confirmation prompt can name the product.
func (a *App) requestDelete(arg string) {
	key, err := strconv.ParseInt(arg, 10, 64)
	if err != nil {
		fmt.Fprintf(a.out, "Usage: delete <key>\n")
		return
	}
	for _, p := range a.list.Snapshot().Rows {
		if p.Key == key {
			a.list.RequestDelete(p)
			return
		}
	}
	fmt.Fprintf(a.out, "No product with key %d on this page\n", key)
}

func (a *App) renderActive() {
	fmt.Fprintln(a.out)
	switch a.mode {
	case modeForm:
		snap := a.form.Snapshot()
		_ = a.boundary.Render(a.out, "product-form", func(w io.Writer) error {
			return render.FormView(w, snap)
		})
	case modeBrands:
		snap := a.brands.Snapshot()
		_ = a.boundary.Render(a.out, "brand-summary", func(w io.Writer) error {
			return render.BrandTable(w, snap)
		})
	default:
		snap := a.list.Snapshot()
		_ = a.boundary.Render(a.out, "product-list", func(w io.Writer) error {
			return render.ProductTable(w, snap)
		})
	}
	fmt.Fprint(a.out, "> ")
}

func (a *App) printHelp() {
	fmt.Fprintln(a.out, `Commands:
  list                     show the product list
  next | prev | page N     move between pages
  size N                   change the page size
  search TERM              search (commits after the debounce delay)
  sort FIELD               sort by key|name|retailer|brand|model|price
  show KEY                 show one product
  new | edit KEY           open the product form
  set FIELD VALUE          (form) edit a field
  submit | back            (form) save or abandon
  delete KEY               ask to delete a product
  confirm | cancel         resolve the delete confirmation
  brands                   brand summary view
  sort brand|count         (brands) sort the summary
  filter TERM              (brands) filter by brand name
  dismiss                  clear error banner and notification
  retry                    redraw the current view
  quit`)
}
