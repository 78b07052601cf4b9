package store

import (
	"context"
	"strings"

	"github.com/jdelacruz/tindahan/internal/domain"
)

func validateItemFields(name, category string, stock int, price float64) error {
	if strings.TrimSpace(name) == "" {
		return &domain.ValidationError{Field: "name", Reason: "must not be empty"}
	}
	if strings.TrimSpace(category) == "" {
		return &domain.ValidationError{Field: "category", Reason: "must not be empty"}
	}
	if stock < 0 {
		return &domain.ValidationError{Field: "stock", Reason: "must not be negative"}
	}
	if price < 0 {
		return &domain.ValidationError{Field: "price", Reason: "must not be negative"}
	}
	return nil
}

// AddItem appends a new item with a freshly allocated id (max existing
// id + 1) and persists the catalog.
func (s *Store) AddItem(ctx context.Context, name, category string, stock int, price float64) (domain.Item, error) {
	if err := validateItemFields(name, category, stock, price); err != nil {
		return domain.Item{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	item := domain.Item{
		ID:       s.maxItemIDLocked() + 1,
		Name:     strings.TrimSpace(name),
		Category: strings.TrimSpace(category),
		Stock:    stock,
		Price:    price,
	}
	s.items = append(s.items, item)

	if err := s.persistItemsLocked(ctx); err != nil {
		return item, err
	}
	s.logger.Info("item added", "id", item.ID, "name", item.Name)
	return item, nil
}

// EditItem overwrites every mutable field of the item in place, preserving
// its id and position in the catalog.
func (s *Store) EditItem(ctx context.Context, id int64, name, category string, stock int, price float64) (domain.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findLocked(id)
	if idx < 0 {
		return domain.Item{}, &domain.NotFoundError{ID: id}
	}
	if err := validateItemFields(name, category, stock, price); err != nil {
		return domain.Item{}, err
	}

	it := &s.items[idx]
	it.Name = strings.TrimSpace(name)
	it.Category = strings.TrimSpace(category)
	it.Stock = stock
	it.Price = price

	if err := s.persistItemsLocked(ctx); err != nil {
		return *it, err
	}
	s.logger.Info("item updated", "id", id)
	return *it, nil
}

// DeleteItem removes the item from the catalog. Sales referencing it are
// left untouched; their item_id simply no longer resolves.
func (s *Store) DeleteItem(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findLocked(id)
	if idx < 0 {
		return &domain.NotFoundError{ID: id}
	}
	s.items = append(s.items[:idx], s.items[idx+1:]...)

	if err := s.persistItemsLocked(ctx); err != nil {
		return err
	}
	s.logger.Info("item deleted", "id", id)
	return nil
}

// RestockItem increases the item's stock by amount.
func (s *Store) RestockItem(ctx context.Context, id int64, amount int) (domain.Item, error) {
	if amount <= 0 {
		return domain.Item{}, &domain.ValidationError{Field: "amount", Reason: "must be positive"}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findLocked(id)
	if idx < 0 {
		return domain.Item{}, &domain.NotFoundError{ID: id}
	}
	s.items[idx].Stock += amount

	if err := s.persistItemsLocked(ctx); err != nil {
		return s.items[idx], err
	}
	s.logger.Info("item restocked", "id", id, "amount", amount, "stock", s.items[idx].Stock)
	return s.items[idx], nil
}

// RecordSale decrements the item's stock and prepends a sale whose total
// captures the unit price at this instant. Both steps happen inside one
// critical section: no caller can observe decremented stock without the
// matching sale. On a failed precondition neither collection changes.
func (s *Store) RecordSale(ctx context.Context, itemID int64, qty int) (domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.findLocked(itemID)
	if idx < 0 {
		return domain.Sale{}, &domain.NotFoundError{ID: itemID}
	}
	if qty <= 0 {
		return domain.Sale{}, &domain.ValidationError{Field: "qty", Reason: "must be positive"}
	}
	it := &s.items[idx]
	if it.Stock < qty {
		return domain.Sale{}, &domain.InsufficientStockError{ItemID: itemID, Requested: qty, Available: it.Stock}
	}

	now := s.now()
	// Sale ids derive from the creation timestamp; bump past the current
	// maximum so two sales in the same millisecond stay unique.
	id := now.UnixMilli()
	if max := s.maxSaleIDLocked(); id <= max {
		id = max + 1
	}

	it.Stock -= qty
	sale := domain.Sale{
		ID:     id,
		ItemID: itemID,
		Qty:    qty,
		Total:  float64(qty) * it.Price,
		SoldAt: now,
	}
	s.sales = append([]domain.Sale{sale}, s.sales...)

	if err := s.persistItemsLocked(ctx); err != nil {
		return sale, err
	}
	if err := s.persistSalesLocked(ctx); err != nil {
		return sale, err
	}
	s.logger.Info("sale recorded", "sale_id", sale.ID, "item_id", itemID, "qty", qty, "total", sale.Total)
	return sale, nil
}

// SaveSettings overwrites the low-stock threshold. Negative input falls
// back to the default rather than failing; the threshold is a display
// cutoff, not a hard constraint.
func (s *Store) SaveSettings(ctx context.Context, threshold int) (domain.Settings, error) {
	if threshold < 0 {
		threshold = domain.DefaultThreshold
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.Threshold = threshold

	if err := s.persistSettingsLocked(ctx); err != nil {
		return s.settings, err
	}
	s.logger.Info("settings saved", "threshold", threshold)
	return s.settings, nil
}

// SetTheme switches the display theme.
func (s *Store) SetTheme(ctx context.Context, theme string) (domain.Settings, error) {
	if theme != domain.ThemeLight && theme != domain.ThemeDark {
		return domain.Settings{}, &domain.ValidationError{Field: "theme", Reason: `must be "light" or "dark"`}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.settings.Theme = theme

	if err := s.persistSettingsLocked(ctx); err != nil {
		return s.settings, err
	}
	s.logger.Info("theme changed", "theme", theme)
	return s.settings, nil
}
