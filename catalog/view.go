// Package catalog derives the displayed product page from a fetched list
// and the user's filter choices. Everything here is a pure function: the
// input slice is never mutated and the same inputs always produce the same
// page.
package catalog

import (
	"sort"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"pixelarium/domain"
)

// CategoryAll disables category narrowing.
const CategoryAll domain.Category = "ALL"

// DefaultPageSize is the catalog page size used by the storefront.
const DefaultPageSize = 8

// SortOrder selects the catalog ordering.
type SortOrder string

const (
	SortPriceAsc  SortOrder = "PRICE_ASC"
	SortPriceDesc SortOrder = "PRICE_DESC"
	SortNameAsc   SortOrder = "NAME_ASC"
)

// ParseSortOrder accepts either enum form ("PRICE_ASC") or flag form
// ("price-asc").
func ParseSortOrder(s string) (SortOrder, bool) {
	normalized := SortOrder(strings.ReplaceAll(strings.ToUpper(strings.TrimSpace(s)), "-", "_"))
	switch normalized {
	case SortPriceAsc, SortPriceDesc, SortNameAsc:
		return normalized, true
	}
	return "", false
}

// FilterState is the full set of catalog narrowing, ordering and paging
// parameters. Use the With* helpers to change it: they encode the rule that
// changing what is shown jumps back to the first page, while changing only
// the page does not.
type FilterState struct {
	Category   domain.Category
	OnlyOnSale bool
	Sort       SortOrder
	Page       int // 1-based
	PageSize   int
}

// NewFilterState returns the initial state: every category, first page,
// alphabetical order.
func NewFilterState() FilterState {
	return FilterState{
		Category: CategoryAll,
		Sort:     SortNameAsc,
		Page:     1,
		PageSize: DefaultPageSize,
	}
}

// WithCategory narrows to one category (or CategoryAll) and resets paging.
func (f FilterState) WithCategory(c domain.Category) FilterState {
	f.Category = c
	f.Page = 1
	return f
}

// WithOnlyOnSale toggles the sale filter and resets paging.
func (f FilterState) WithOnlyOnSale(on bool) FilterState {
	f.OnlyOnSale = on
	f.Page = 1
	return f
}

// WithSort changes the ordering and resets paging.
func (f FilterState) WithSort(s SortOrder) FilterState {
	f.Sort = s
	f.Page = 1
	return f
}

// WithPage moves to another page of the same view.
func (f FilterState) WithPage(page int) FilterState {
	f.Page = page
	return f
}

// Page is one displayed window of the filtered catalog.
type Page struct {
	Items      []domain.Product
	TotalItems int
	TotalPages int
}

// View derives the displayed page: category filter, then sale filter, then
// a stable sort, then the page window. An out-of-range page yields an empty
// window, never a panic.
func View(products []domain.Product, state FilterState) Page {
	filtered := make([]domain.Product, 0, len(products))
	for _, p := range products {
		if state.Category != CategoryAll && state.Category != "" && p.Category != state.Category {
			continue
		}
		if state.OnlyOnSale && !p.OnSale() {
			continue
		}
		filtered = append(filtered, p)
	}

	switch state.Sort {
	case SortPriceAsc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].EffectivePrice() < filtered[j].EffectivePrice()
		})
	case SortPriceDesc:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].EffectivePrice() > filtered[j].EffectivePrice()
		})
	case SortNameAsc:
		// The storefront is Spanish; collation follows suit.
		coll := collate.New(language.Spanish, collate.IgnoreCase)
		sort.SliceStable(filtered, func(i, j int) bool {
			return coll.CompareString(filtered[i].Name, filtered[j].Name) < 0
		})
	}

	size := state.PageSize
	if size <= 0 {
		size = DefaultPageSize
	}
	page := state.Page
	if page < 1 {
		page = 1
	}

	totalPages := (len(filtered) + size - 1) / size
	if totalPages == 0 {
		totalPages = 1
	}

	start := (page - 1) * size
	if start > len(filtered) {
		start = len(filtered)
	}
	end := start + size
	if end > len(filtered) {
		end = len(filtered)
	}

	return Page{
		Items:      filtered[start:end],
		TotalItems: len(filtered),
		TotalPages: totalPages,
	}
}
