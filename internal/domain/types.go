package domain

import "time"

// Item is one catalog entry. IDs are allocated once at creation and never
// change; every other field may be overwritten by an edit.
type Item struct {
	ID       int64   `json:"id"`
	Name     string  `json:"name"`
	Category string  `json:"category"`
	Stock    int     `json:"stock"`
	Price    float64 `json:"price"`
}

// Sale is an immutable record of a completed sale. Total captures the unit
// price at the moment the sale was recorded; later price edits must not
// affect it. ItemID may dangle after the referenced item is deleted.
type Sale struct {
	ID     int64     `json:"id"`
	ItemID int64     `json:"item_id"`
	Qty    int       `json:"qty"`
	Total  float64   `json:"total"`
	SoldAt time.Time `json:"sold_at"`
}

// Settings is the single store-wide configuration record.
type Settings struct {
	Threshold int    `json:"threshold"`
	Theme     string `json:"theme"`
}

const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// StockStatus classifies an item's stock level against the low-stock
// threshold.
type StockStatus int

const (
	StatusOut StockStatus = iota
	StatusLow
	StatusOK
)

func (s StockStatus) String() string {
	switch s {
	case StatusOut:
		return "out"
	case StatusLow:
		return "low"
	default:
		return "ok"
	}
}

// StatusOf returns Out for zero stock, Low for stock in 1..threshold, and
// OK above the threshold.
func StatusOf(stock, threshold int) StockStatus {
	switch {
	case stock == 0:
		return StatusOut
	case stock <= threshold:
		return StatusLow
	default:
		return StatusOK
	}
}
