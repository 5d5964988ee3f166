// Package stub is an in-memory implementation of the product-catalog
// backend's REST interface, used for local development and tests. It
// reproduces the real backend's wire contract: Spring-style page
// envelope, snake_case product fields, and bean-validation style
// failure bodies.
package stub

import (
	"sort"
	"strings"
	"sync"

	"github.com/linhqtruong/productcatalogmanager/internal/catalog"
)

// Store is a mutex-guarded in-memory product collection.
type Store struct {
	mu       sync.RWMutex
	nextKey  int64
	products map[int64]catalog.Product
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{nextKey: 1, products: map[int64]catalog.Product{}}
}

// Seed inserts products, assigning fresh keys.
func (s *Store) Seed(products []catalog.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range products {
		p.Key = s.nextKey
		s.nextKey++
		s.products[p.Key] = p
	}
}

// List returns one 0-based page of products matching the search term,
// ordered by the given sort, together with the total match count.
// The search is a case-insensitive substring match across name, brand,
// and model.
func (s *Store) List(page, size int, search string, field catalog.SortField, dir catalog.SortDirection) ([]catalog.Product, int) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	matches := make([]catalog.Product, 0, len(s.products))
	needle := strings.ToLower(strings.TrimSpace(search))
	for _, p := range s.products {
		if needle == "" ||
			strings.Contains(strings.ToLower(p.Name), needle) ||
			strings.Contains(strings.ToLower(p.Brand), needle) ||
			strings.Contains(strings.ToLower(p.Model), needle) {
			matches = append(matches, p)
		}
	}

	// Deterministic base order before the requested sort is applied.
	sort.Slice(matches, func(i, j int) bool { return matches[i].Key < matches[j].Key })
	sortProducts(matches, field, dir)

	total := len(matches)
	start := page * size
	if start >= total {
		return []catalog.Product{}, total
	}
	end := min(start+size, total)
	return matches[start:end], total
}

func sortProducts(products []catalog.Product, field catalog.SortField, dir catalog.SortDirection) {
	less := func(a, b catalog.Product) bool { return a.Key < b.Key }
	switch field {
	case catalog.SortByName:
		less = func(a, b catalog.Product) bool { return strings.ToLower(a.Name) < strings.ToLower(b.Name) }
	case catalog.SortByRetailer:
		less = func(a, b catalog.Product) bool { return strings.ToLower(a.Retailer) < strings.ToLower(b.Retailer) }
	case catalog.SortByBrand:
		less = func(a, b catalog.Product) bool { return strings.ToLower(a.Brand) < strings.ToLower(b.Brand) }
	case catalog.SortByModel:
		less = func(a, b catalog.Product) bool { return strings.ToLower(a.Model) < strings.ToLower(b.Model) }
	case catalog.SortByPrice:
		less = func(a, b catalog.Product) bool { return a.Price < b.Price }
	}
	sort.SliceStable(products, func(i, j int) bool {
		if dir == catalog.Descending {
			return less(products[j], products[i])
		}
		return less(products[i], products[j])
	})
}

// Get looks up a product by key.
func (s *Store) Get(key int64) (catalog.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[key]
	return p, ok
}

// Create stores a new product under a fresh key and returns it.
func (s *Store) Create(p catalog.Product) catalog.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.Key = s.nextKey
	s.nextKey++
	s.products[p.Key] = p
	return p
}

// Update replaces the product stored under key.
func (s *Store) Update(key int64, p catalog.Product) (catalog.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[key]; !ok {
		return catalog.Product{}, false
	}
	p.Key = key
	s.products[key] = p
	return p, true
}

// Delete removes the product stored under key.
func (s *Store) Delete(key int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[key]; !ok {
		return false
	}
	delete(s.products, key)
	return true
}

// BrandSummary groups products by brand and counts them, ordered by
// brand ascending. An empty brand stays empty; display substitution is
// the client's concern.
func (s *Store) BrandSummary() []catalog.BrandCount {
	s.mu.RLock()
	defer s.mu.RUnlock()

	counts := map[string]int{}
	for _, p := range s.products {
		counts[p.Brand]++
	}
	rows := make([]catalog.BrandCount, 0, len(counts))
	for brand, count := range counts {
		rows = append(rows, catalog.BrandCount{Brand: brand, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Brand < rows[j].Brand })
	return rows
}
