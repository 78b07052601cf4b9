// Package store owns the in-memory inventory state: the item catalog, the
// sales log, and the settings record. All changes funnel through the
// mutation operations in mutate.go, each of which validates its input,
// applies the change under the store lock, and then writes the affected
// collections through the persistence gateway.
package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/jdelacruz/tindahan/internal/domain"
)

// Blob keys in the persistence gateway.
const (
	keyItems    = "items"
	keySales    = "sales"
	keySettings = "settings"
)

// Gateway is the subset of the persistence layer the Store requires.
// Load returns nil when no blob has been saved under the key.
type Gateway interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, value []byte) error
}

// Store is the single source of truth for a session. The mutex makes the
// stock-decrement-plus-sale-append step of RecordSale a single critical
// section, so concurrent callers never observe a half-applied sale.
type Store struct {
	mu       sync.Mutex
	items    []domain.Item
	sales    []domain.Sale // most recent first
	settings domain.Settings

	gw     Gateway
	now    func() time.Time
	logger *slog.Logger
}

// Open loads the three blobs from the gateway and builds the store. A blob
// that is absent or fails to parse is replaced by the built-in default;
// only gateway I/O failures abort the boot.
func Open(ctx context.Context, gw Gateway, logger *slog.Logger) (*Store, error) {
	s := &Store{
		gw:     gw,
		now:    time.Now,
		logger: logger,
	}

	items, err := loadBlob(ctx, gw, keyItems, logger, domain.DefaultItems())
	if err != nil {
		return nil, err
	}
	sales, err := loadBlob(ctx, gw, keySales, logger, []domain.Sale{})
	if err != nil {
		return nil, err
	}
	settings, err := loadBlob(ctx, gw, keySettings, logger, domain.DefaultSettings())
	if err != nil {
		return nil, err
	}

	// A blob holding literal JSON null decodes without error; treat it
	// like an absent blob.
	if items == nil {
		items = domain.DefaultItems()
	}
	if sales == nil {
		sales = []domain.Sale{}
	}
	if settings == (domain.Settings{}) {
		settings = domain.DefaultSettings()
	}

	s.items = items
	s.sales = sales
	s.settings = settings

	logger.Info("store opened", "items", len(s.items), "sales", len(s.sales), "threshold", s.settings.Threshold)
	return s, nil
}

func loadBlob[T any](ctx context.Context, gw Gateway, key string, logger *slog.Logger, fallback T) (T, error) {
	raw, err := gw.Load(ctx, key)
	if err != nil {
		var zero T
		return zero, fmt.Errorf("failed to load %q: %w", key, err)
	}
	if raw == nil {
		return fallback, nil
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		logger.Warn("saved blob is corrupt, using defaults", "key", key, "error", err)
		return fallback, nil
	}
	return value, nil
}

// Items returns a copy of the catalog in insertion order.
func (s *Store) Items() []domain.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Item(nil), s.items...)
}

// Sales returns a copy of the sales log, most recent first.
func (s *Store) Sales() []domain.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]domain.Sale(nil), s.sales...)
}

// RecentSales returns up to n of the most recent sales.
func (s *Store) RecentSales(n int) []domain.Sale {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n < 0 {
		n = 0
	}
	if n > len(s.sales) {
		n = len(s.sales)
	}
	out := make([]domain.Sale, 0, n)
	return append(out, s.sales[:n]...)
}

// Settings returns the current settings record.
func (s *Store) Settings() domain.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Categories returns the distinct item categories, sorted.
func (s *Store) Categories() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	seen := make(map[string]bool)
	var categories []string
	for _, it := range s.items {
		if !seen[it.Category] {
			seen[it.Category] = true
			categories = append(categories, it.Category)
		}
	}
	sort.Strings(categories)
	return categories
}

// Close writes all three collections through the gateway one final time.
func (s *Store) Close(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persistItemsLocked(ctx); err != nil {
		return err
	}
	if err := s.persistSalesLocked(ctx); err != nil {
		return err
	}
	if err := s.persistSettingsLocked(ctx); err != nil {
		return err
	}
	s.logger.Info("store closed", "items", len(s.items), "sales", len(s.sales))
	return nil
}

// persist helpers marshal the current collection and overwrite its blob.
// Callers hold the lock. Failures surface as PersistenceError; the
// in-memory mutation stays applied.

func (s *Store) persistItemsLocked(ctx context.Context) error {
	items := s.items
	if items == nil {
		items = []domain.Item{}
	}
	return s.saveLocked(ctx, keyItems, items)
}

func (s *Store) persistSalesLocked(ctx context.Context) error {
	sales := s.sales
	if sales == nil {
		sales = []domain.Sale{}
	}
	return s.saveLocked(ctx, keySales, sales)
}

func (s *Store) persistSettingsLocked(ctx context.Context) error {
	return s.saveLocked(ctx, keySettings, s.settings)
}

func (s *Store) saveLocked(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return &domain.PersistenceError{Key: key, Err: err}
	}
	if err := s.gw.Save(ctx, key, raw); err != nil {
		s.logger.Error("persistence failed, memory and durable state diverged", "key", key, "error", err)
		return &domain.PersistenceError{Key: key, Err: err}
	}
	return nil
}

func (s *Store) findLocked(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) maxItemIDLocked() int64 {
	var max int64
	for _, it := range s.items {
		if it.ID > max {
			max = it.ID
		}
	}
	return max
}

func (s *Store) maxSaleIDLocked() int64 {
	var max int64
	for _, sale := range s.sales {
		if sale.ID > max {
			max = sale.ID
		}
	}
	return max
}
