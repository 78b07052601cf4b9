// Package query holds the read side: pure functions over snapshots of the
// store's collections. Nothing here mutates state or touches persistence.
package query

import (
	"sort"
	"strings"

	"github.com/jdelacruz/tindahan/internal/domain"
)

// PageSize is the fixed number of items per inventory page.
const PageSize = 7

type SortKey string

const (
	SortByName     SortKey = "name"
	SortByCategory SortKey = "category"
	SortByStock    SortKey = "stock"
	SortByPrice    SortKey = "price"
)

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Page is one page of the inventory view plus the totals the caller needs
// for pager controls.
type Page struct {
	Items []domain.Item `json:"items"`
	Page  int           `json:"page"`
	Pages int           `json:"pages"`
	Total int           `json:"total"`
}

// Filter keeps items whose "name category" text contains queryText
// (case-insensitive) and whose category equals category. Empty arguments
// match everything.
func Filter(items []domain.Item, queryText, category string) []domain.Item {
	q := strings.ToLower(strings.TrimSpace(queryText))

	var out []domain.Item
	for _, it := range items {
		haystack := strings.ToLower(it.Name + " " + it.Category)
		if q != "" && !strings.Contains(haystack, q) {
			continue
		}
		if category != "" && it.Category != category {
			continue
		}
		out = append(out, it)
	}
	return out
}

// Sort returns a sorted copy of items. String keys compare
// case-insensitively; ties keep their original relative order. An unknown
// key sorts by name.
func Sort(items []domain.Item, key SortKey, dir Direction) []domain.Item {
	out := append([]domain.Item(nil), items...)

	less := func(a, b domain.Item) bool {
		switch key {
		case SortByCategory:
			return strings.ToLower(a.Category) < strings.ToLower(b.Category)
		case SortByStock:
			return a.Stock < b.Stock
		case SortByPrice:
			return a.Price < b.Price
		default:
			return strings.ToLower(a.Name) < strings.ToLower(b.Name)
		}
	}

	sort.SliceStable(out, func(i, j int) bool {
		if dir == Desc {
			return less(out[j], out[i])
		}
		return less(out[i], out[j])
	})
	return out
}

// Paginate slices out one page of items. The page number is clamped into
// the valid range, and an empty list still reports one (empty) page.
func Paginate(items []domain.Item, page int) Page {
	total := len(items)
	pages := (total + PageSize - 1) / PageSize
	if pages < 1 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * PageSize
	end := start + PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return Page{
		Items: append(make([]domain.Item, 0, end-start), items[start:end]...),
		Page:  page,
		Pages: pages,
		Total: total,
	}
}
