package query

import (
	"sort"
	"time"

	"github.com/jdelacruz/tindahan/internal/domain"
)

const dateLayout = "2006-01-02"

// TopSeller pairs an item with its quantity sold over the trailing week.
type TopSeller struct {
	ItemID int64  `json:"item_id"`
	Name   string `json:"name"`
	Qty    int    `json:"qty"`
}

// Metrics holds the dashboard aggregates.
type Metrics struct {
	TotalUnits   int         `json:"total_units"`
	LowStock     int         `json:"low_stock"`
	RevenueToday float64     `json:"revenue_today"`
	TopSellers   []TopSeller `json:"top_sellers"`
}

// DayTotal is one bucket of the weekly revenue series.
type DayTotal struct {
	Label string  `json:"label"`
	Date  string  `json:"date"`
	Total float64 `json:"total"`
}

// Days bucket on the UTC calendar date of the sale timestamp.
func utcDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func startOfUTCDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Dashboard computes the headline numbers for a given day: total units in
// stock, low-stock item count, revenue for today, and the top five sellers
// of the trailing seven days. Sales whose item no longer exists are
// skipped when ranking sellers; ties keep first-encounter order.
func Dashboard(items []domain.Item, sales []domain.Sale, threshold int, today time.Time) Metrics {
	m := Metrics{TopSellers: []TopSeller{}}

	for _, it := range items {
		m.TotalUnits += it.Stock
		if domain.StatusOf(it.Stock, threshold) == domain.StatusLow {
			m.LowStock++
		}
	}

	todayKey := utcDate(today)
	for _, s := range sales {
		if utcDate(s.SoldAt) == todayKey {
			m.RevenueToday += s.Total
		}
	}

	byID := make(map[int64]domain.Item, len(items))
	for _, it := range items {
		byID[it.ID] = it
	}

	windowStart := startOfUTCDay(today).AddDate(0, 0, -6)
	counts := make(map[int64]int)
	var order []int64
	for _, s := range sales {
		if s.SoldAt.Before(windowStart) {
			continue
		}
		if _, ok := byID[s.ItemID]; !ok {
			continue
		}
		if _, seen := counts[s.ItemID]; !seen {
			order = append(order, s.ItemID)
		}
		counts[s.ItemID] += s.Qty
	}

	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})
	if len(order) > 5 {
		order = order[:5]
	}
	for _, id := range order {
		m.TopSellers = append(m.TopSellers, TopSeller{ItemID: id, Name: byID[id].Name, Qty: counts[id]})
	}

	return m
}

// WeeklySeries sums sale totals per day for the trailing seven days,
// oldest to newest, today included. Days without sales report zero.
func WeeklySeries(sales []domain.Sale, today time.Time) []DayTotal {
	totals := make(map[string]float64)
	for _, s := range sales {
		totals[utcDate(s.SoldAt)] += s.Total
	}

	series := make([]DayTotal, 0, 7)
	for i := 6; i >= 0; i-- {
		day := startOfUTCDay(today).AddDate(0, 0, -i)
		key := day.Format(dateLayout)
		series = append(series, DayTotal{
			Label: day.Format("Jan 02"),
			Date:  key,
			Total: totals[key],
		})
	}
	return series
}

// Valuation sums stock times price over the whole catalog.
func Valuation(items []domain.Item) float64 {
	var total float64
	for _, it := range items {
		total += float64(it.Stock) * it.Price
	}
	return total
}

// LowStock returns items with 0 < stock <= threshold, lowest stock first.
func LowStock(items []domain.Item, threshold int) []domain.Item {
	var low []domain.Item
	for _, it := range items {
		if domain.StatusOf(it.Stock, threshold) == domain.StatusLow {
			low = append(low, it)
		}
	}
	sort.SliceStable(low, func(i, j int) bool {
		return low[i].Stock < low[j].Stock
	})
	return low
}
