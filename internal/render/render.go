// Package render turns controller snapshots into tabular terminal
// output. It holds no state of its own; everything it prints comes
// from an immutable snapshot.
package render

import (
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/linhqtruong/productcatalogmanager/internal/catalog"
	"github.com/linhqtruong/productcatalogmanager/internal/controller"
)

// FormatPrice renders a price the way the product table displays it.
func FormatPrice(p float64) string {
	return fmt.Sprintf("$%.2f", p)
}

// DisplayBrand substitutes "Unknown" for a missing brand. Display
// only; sort and filter keys are never normalized this way.
func DisplayBrand(brand string) string {
	if brand == "" {
		return "Unknown"
	}
	return brand
}

func sortMarker(active bool, dir catalog.SortDirection) string {
	if !active {
		return ""
	}
	if dir == catalog.Ascending {
		return " ^"
	}
	return " v"
}

// ProductTable writes the product list view: banner, search line,
// table, and pagination footer.
func ProductTable(w io.Writer, snap controller.ListSnapshot) error {
	if snap.Err != "" {
		fmt.Fprintf(w, "! %s\n", snap.Err)
	}
	if snap.Notification != nil {
		fmt.Fprintf(w, "[%s] %s\n", snap.Notification.Severity, snap.Notification.Message)
	}
	if snap.Loading {
		fmt.Fprintln(w, "Loading products...")
		return nil
	}
	if snap.Search != "" {
		fmt.Fprintf(w, "Search: %q\n", snap.Search)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "KEY%s\tNAME%s\tRETAILER%s\tBRAND%s\tMODEL%s\tPRICE%s\n",
		sortMarker(snap.SortField == catalog.SortByKey, snap.SortDirection),
		sortMarker(snap.SortField == catalog.SortByName, snap.SortDirection),
		sortMarker(snap.SortField == catalog.SortByRetailer, snap.SortDirection),
		sortMarker(snap.SortField == catalog.SortByBrand, snap.SortDirection),
		sortMarker(snap.SortField == catalog.SortByModel, snap.SortDirection),
		sortMarker(snap.SortField == catalog.SortByPrice, snap.SortDirection),
	)
	for _, p := range snap.Rows {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\n",
			p.Key, p.Name, p.Retailer, p.Brand, p.Model, FormatPrice(p.Price))
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	if len(snap.Rows) == 0 {
		fmt.Fprintln(w, "No products found")
	}
	fmt.Fprintf(w, "Page %d of %d | %d products | %d per page\n",
		snap.Page, max(snap.TotalPages, 1), snap.TotalElements, snap.PageSize)

	if snap.DeleteTarget != nil {
		fmt.Fprintf(w, "Delete %q? Type 'confirm' or 'cancel'.\n", snap.DeleteTarget.Name)
	}
	return nil
}

// ProductDetail writes the single-product view.
func ProductDetail(w io.Writer, p catalog.Product) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "Key\t%d\n", p.Key)
	fmt.Fprintf(tw, "Name\t%s\n", p.Name)
	fmt.Fprintf(tw, "Brand\t%s\n", p.Brand)
	fmt.Fprintf(tw, "Model\t%s\n", p.Model)
	fmt.Fprintf(tw, "Retailer\t%s\n", p.Retailer)
	fmt.Fprintf(tw, "Price\t%s\n", FormatPrice(p.Price))
	if p.Description != "" {
		fmt.Fprintf(tw, "Description\t%s\n", p.Description)
	}
	return tw.Flush()
}

// BrandTable writes the brand aggregate view.
func BrandTable(w io.Writer, snap controller.BrandSummarySnapshot) error {
	if snap.Err != "" {
		fmt.Fprintf(w, "! %s\n", snap.Err)
	}
	if snap.Loading {
		fmt.Fprintln(w, "Loading brand summary...")
		return nil
	}
	if snap.Filter != "" {
		fmt.Fprintf(w, "Filter: %q\n", snap.Filter)
	}

	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintf(tw, "BRAND%s\tPRODUCTS%s\n",
		sortMarker(snap.SortField == controller.BrandSortByBrand, snap.SortDirection),
		sortMarker(snap.SortField == controller.BrandSortByCount, snap.SortDirection),
	)
	for _, row := range snap.Rows {
		fmt.Fprintf(tw, "%s\t%d\n", DisplayBrand(row.Brand), row.Count)
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if len(snap.Rows) == 0 && snap.Err == "" {
		fmt.Fprintln(w, "No brand data available")
	}
	return nil
}

// FormView writes the create/edit form state: current values, field
// validation messages, and the top-level error.
func FormView(w io.Writer, snap controller.FormSnapshot) error {
	if snap.Editing {
		fmt.Fprintf(w, "Editing product %d\n", snap.Key)
	} else {
		fmt.Fprintln(w, "New product")
	}
	if snap.Err != "" {
		fmt.Fprintf(w, "! %s\n", snap.Err)
	}
	if snap.Loading {
		fmt.Fprintln(w, "Loading product...")
		return nil
	}

	fields := []controller.FormField{
		controller.FieldName,
		controller.FieldBrand,
		controller.FieldModel,
		controller.FieldRetailer,
		controller.FieldPrice,
		controller.FieldDescription,
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, f := range fields {
		line := fmt.Sprintf("%s\t%s", f, snap.Values[f])
		if msg, ok := snap.FieldErrors[f]; ok {
			line += "\t<- " + msg
		}
		fmt.Fprintln(tw, line)
	}
	return tw.Flush()
}
