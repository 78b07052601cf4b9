package query

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jdelacruz/tindahan/internal/domain"
)

var today = time.Date(2026, 8, 31, 15, 0, 0, 0, time.UTC)

// saleOn builds a sale recorded n days before today.
func saleOn(daysAgo int, itemID int64, qty int, total float64) domain.Sale {
	return domain.Sale{
		ID:     today.AddDate(0, 0, -daysAgo).UnixMilli(),
		ItemID: itemID,
		Qty:    qty,
		Total:  total,
		SoldAt: today.AddDate(0, 0, -daysAgo),
	}
}

func TestDashboardTotals(t *testing.T) {
	m := Dashboard(catalog(), nil, 5, today)

	assert.Equal(t, 93, m.TotalUnits)
	// Stock 3 is low at threshold 5; stock 6 is not; stock 0 would be out.
	assert.Equal(t, 1, m.LowStock)
	assert.Zero(t, m.RevenueToday)
	assert.Empty(t, m.TopSellers)
}

func TestDashboardLowCountExcludesOutOfStock(t *testing.T) {
	items := []domain.Item{
		{ID: 1, Stock: 0},
		{ID: 2, Stock: 2},
		{ID: 3, Stock: 5},
		{ID: 4, Stock: 6},
	}
	m := Dashboard(items, nil, 5, today)
	assert.Equal(t, 2, m.LowStock)
}

func TestDashboardRevenueToday(t *testing.T) {
	sales := []domain.Sale{
		saleOn(0, 1, 1, 100),
		saleOn(0, 2, 2, 50),
		saleOn(1, 1, 1, 999), // yesterday, excluded
	}
	m := Dashboard(catalog(), sales, 5, today)
	assert.Equal(t, 150.0, m.RevenueToday)
}

func TestDashboardTopSellers(t *testing.T) {
	sales := []domain.Sale{
		saleOn(0, 2, 4, 0),
		saleOn(1, 1, 2, 0),
		saleOn(2, 2, 1, 0),
		saleOn(3, 3, 6, 0),
		saleOn(8, 2, 50, 0), // outside the trailing week
	}
	m := Dashboard(catalog(), sales, 5, today)

	require.Len(t, m.TopSellers, 3)
	assert.Equal(t, TopSeller{ItemID: 3, Name: "Chocolate Syrup", Qty: 6}, m.TopSellers[0])
	assert.Equal(t, TopSeller{ItemID: 2, Name: "Whole Milk 1L", Qty: 5}, m.TopSellers[1])
	assert.Equal(t, TopSeller{ItemID: 1, Name: "Espresso Beans 1kg", Qty: 2}, m.TopSellers[2])
}

func TestDashboardTopSellersTieKeepsEncounterOrder(t *testing.T) {
	sales := []domain.Sale{
		saleOn(0, 5, 3, 0),
		saleOn(1, 1, 3, 0),
	}
	m := Dashboard(catalog(), sales, 5, today)

	require.Len(t, m.TopSellers, 2)
	assert.Equal(t, int64(5), m.TopSellers[0].ItemID, "tie broken by first encounter in the scan")
	assert.Equal(t, int64(1), m.TopSellers[1].ItemID)
}

func TestDashboardTopSellersCapsAtFive(t *testing.T) {
	var sales []domain.Sale
	items := make([]domain.Item, 0, 8)
	for i := int64(1); i <= 8; i++ {
		items = append(items, domain.Item{ID: i, Name: "Item", Stock: 10})
		sales = append(sales, saleOn(0, i, int(i), 0))
	}
	m := Dashboard(items, sales, 5, today)
	assert.Len(t, m.TopSellers, 5)
	assert.Equal(t, 8, m.TopSellers[0].Qty)
}

func TestDashboardSkipsDanglingSales(t *testing.T) {
	sales := []domain.Sale{
		saleOn(0, 777, 9, 0), // item deleted since
		saleOn(0, 1, 1, 0),
	}
	m := Dashboard(catalog(), sales, 5, today)

	require.Len(t, m.TopSellers, 1)
	assert.Equal(t, int64(1), m.TopSellers[0].ItemID)
}

func TestWeeklySeriesOrderAndSum(t *testing.T) {
	// Day totals oldest to newest: 0,0,10,0,5,0,20.
	sales := []domain.Sale{
		saleOn(4, 1, 1, 10),
		saleOn(2, 1, 1, 5),
		saleOn(0, 1, 1, 20),
	}
	series := WeeklySeries(sales, today)

	require.Len(t, series, 7)
	totals := make([]float64, 7)
	var sum float64
	for i, day := range series {
		totals[i] = day.Total
		sum += day.Total
	}
	assert.Equal(t, []float64{0, 0, 10, 0, 5, 0, 20}, totals)
	assert.Equal(t, 35.0, sum)

	assert.Equal(t, "2026-08-25", series[0].Date)
	assert.Equal(t, "2026-08-31", series[6].Date)
	assert.Equal(t, "Aug 25", series[0].Label)
	assert.Equal(t, "Aug 31", series[6].Label)
}

func TestWeeklySeriesSumsMultipleSalesPerDay(t *testing.T) {
	sales := []domain.Sale{
		saleOn(0, 1, 1, 12),
		saleOn(0, 2, 1, 8),
	}
	series := WeeklySeries(sales, today)
	assert.Equal(t, 20.0, series[6].Total)
}

func TestWeeklySeriesEmptySales(t *testing.T) {
	series := WeeklySeries(nil, today)
	require.Len(t, series, 7)
	for _, day := range series {
		assert.Zero(t, day.Total)
	}
}

func TestValuation(t *testing.T) {
	// 50*520 + 12*88 + 6*150 + 3*180 + 22*95 = 30586
	assert.Equal(t, 30586.0, Valuation(catalog()))
	assert.Zero(t, Valuation(nil))
}

func TestLowStockReport(t *testing.T) {
	items := []domain.Item{
		{ID: 1, Name: "A", Stock: 5},
		{ID: 2, Name: "B", Stock: 0},
		{ID: 3, Name: "C", Stock: 2},
		{ID: 4, Name: "D", Stock: 9},
	}
	low := LowStock(items, 5)

	require.Len(t, low, 2)
	assert.Equal(t, "C", low[0].Name, "lowest stock first")
	assert.Equal(t, "A", low[1].Name)
}

func TestStockStatusBoundaries(t *testing.T) {
	assert.Equal(t, domain.StatusOut, domain.StatusOf(0, 5))
	assert.Equal(t, domain.StatusLow, domain.StatusOf(1, 5))
	assert.Equal(t, domain.StatusLow, domain.StatusOf(5, 5))
	assert.Equal(t, domain.StatusOK, domain.StatusOf(6, 5))
	assert.Equal(t, domain.StatusOK, domain.StatusOf(12, 5))

	// A zero threshold leaves no room for Low.
	assert.Equal(t, domain.StatusOut, domain.StatusOf(0, 0))
	assert.Equal(t, domain.StatusOK, domain.StatusOf(1, 0))
}
