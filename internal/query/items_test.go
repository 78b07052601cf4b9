package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelacruz/tindahan/internal/domain"
)

func catalog() []domain.Item {
	return []domain.Item{
		{ID: 1, Name: "Espresso Beans 1kg", Category: "Beverage", Stock: 50, Price: 520},
		{ID: 2, Name: "Whole Milk 1L", Category: "Dairy", Stock: 12, Price: 88},
		{ID: 3, Name: "Chocolate Syrup", Category: "Condiments", Stock: 6, Price: 150},
		{ID: 4, Name: "Paper Cups (100s)", Category: "Packaging", Stock: 3, Price: 180},
		{ID: 5, Name: "Green Tea Bags", Category: "Beverage", Stock: 22, Price: 95},
	}
}

func names(items []domain.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

func TestFilterEmptyQueryMatchesAll(t *testing.T) {
	assert.Len(t, Filter(catalog(), "", ""), 5)
}

func TestFilterCaseInsensitiveSubstring(t *testing.T) {
	got := Filter(catalog(), "MILK", "")
	require.Len(t, got, 1)
	assert.Equal(t, "Whole Milk 1L", got[0].Name)
}

func TestFilterMatchesCategoryText(t *testing.T) {
	// The query matches against "name category", so a category word hits too.
	got := Filter(catalog(), "beverage", "")
	assert.Len(t, got, 2)
}

func TestFilterByCategory(t *testing.T) {
	got := Filter(catalog(), "", "Beverage")
	assert.ElementsMatch(t, []string{"Espresso Beans 1kg", "Green Tea Bags"}, names(got))

	// Category is an exact match, not a substring.
	assert.Empty(t, Filter(catalog(), "", "Bever"))
}

func TestFilterCombined(t *testing.T) {
	got := Filter(catalog(), "tea", "Beverage")
	require.Len(t, got, 1)
	assert.Equal(t, "Green Tea Bags", got[0].Name)
}

func TestSortByNameAsc(t *testing.T) {
	got := Sort(catalog(), SortByName, Asc)
	assert.Equal(t, []string{
		"Chocolate Syrup", "Espresso Beans 1kg", "Green Tea Bags", "Paper Cups (100s)", "Whole Milk 1L",
	}, names(got))
}

func TestSortByStockDesc(t *testing.T) {
	got := Sort(catalog(), SortByStock, Desc)
	assert.Equal(t, 50, got[0].Stock)
	assert.Equal(t, 3, got[4].Stock)
}

func TestSortByPriceAsc(t *testing.T) {
	got := Sort(catalog(), SortByPrice, Asc)
	assert.Equal(t, 88.0, got[0].Price)
	assert.Equal(t, 520.0, got[4].Price)
}

func TestSortCaseInsensitiveStrings(t *testing.T) {
	items := []domain.Item{
		{ID: 1, Name: "banana"},
		{ID: 2, Name: "Apple"},
		{ID: 3, Name: "cherry"},
	}
	got := Sort(items, SortByName, Asc)
	assert.Equal(t, []string{"Apple", "banana", "cherry"}, names(got))
}

func TestSortIsStable(t *testing.T) {
	// Duplicate categories: relative order within a tie must be preserved.
	items := []domain.Item{
		{ID: 1, Name: "Zest", Category: "A"},
		{ID: 2, Name: "Mint", Category: "B"},
		{ID: 3, Name: "Alum", Category: "A"},
		{ID: 4, Name: "Kale", Category: "B"},
	}
	got := Sort(items, SortByCategory, Asc)
	assert.Equal(t, []string{"Zest", "Alum", "Mint", "Kale"}, names(got))
}

func TestSortDoesNotMutateInput(t *testing.T) {
	items := catalog()
	Sort(items, SortByName, Asc)
	assert.Equal(t, "Espresso Beans 1kg", items[0].Name)
}

func TestPaginateEmptyList(t *testing.T) {
	page := Paginate(nil, 1)
	assert.Empty(t, page.Items)
	assert.Equal(t, 1, page.Page)
	assert.Equal(t, 1, page.Pages)
	assert.Equal(t, 0, page.Total)
}

func TestPaginateClampsPage(t *testing.T) {
	items := catalog() // 5 items, one page

	page := Paginate(items, 0)
	assert.Equal(t, 1, page.Page)

	page = Paginate(items, 99)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Items, 5)
}

func TestPaginateSplitsPages(t *testing.T) {
	var items []domain.Item
	for i := 1; i <= 16; i++ {
		items = append(items, domain.Item{ID: int64(i)})
	}

	first := Paginate(items, 1)
	assert.Len(t, first.Items, 7)
	assert.Equal(t, 3, first.Pages)
	assert.Equal(t, 16, first.Total)
	assert.Equal(t, int64(1), first.Items[0].ID)

	last := Paginate(items, 3)
	assert.Len(t, last.Items, 2)
	assert.Equal(t, int64(15), last.Items[0].ID)
}
