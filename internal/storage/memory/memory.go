package memory

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/carson-networks/transactions-report/internal/storage/transaction"
)

// Store keeps transactions in process. Records are held in insertion order,
// which is also ascending ID order.
type Store struct {
	mu     sync.RWMutex
	items  []*transaction.Transaction
	nextID int
}

var (
	_ transaction.ITransactionTable = (*Store)(nil)
	_ transaction.IWriterSource     = (*Store)(nil)
)

func New() *Store {
	return &Store{}
}

// List returns the matching page of records.
func (s *Store) List(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	matched, err := s.matching(ctx, filter)
	if err != nil {
		return nil, err
	}

	offset, limit := 0, len(matched)
	if filter != nil {
		offset = filter.Offset
		if filter.Limit > 0 {
			limit = filter.Limit
		}
	}
	if offset >= len(matched) {
		return []*transaction.Transaction{}, nil
	}
	end := offset + limit
	if end > len(matched) {
		end = len(matched)
	}

	result := make([]*transaction.Transaction, 0, end-offset)
	for _, t := range matched[offset:end] {
		copied := *t
		result = append(result, &copied)
	}
	return result, nil
}

func (s *Store) Count(ctx context.Context, filter *transaction.TransactionFilter) (int64, error) {
	matched, err := s.matching(ctx, filter)
	if err != nil {
		return 0, err
	}
	return int64(len(matched)), nil
}

func (s *Store) Statistics(ctx context.Context, filter *transaction.TransactionFilter) (*transaction.Statistics, error) {
	matched, err := s.matching(ctx, withoutSearch(filter))
	if err != nil {
		return nil, err
	}

	stats := &transaction.Statistics{TotalSaleAmount: decimal.Zero}
	for _, t := range matched {
		stats.TotalSaleAmount = stats.TotalSaleAmount.Add(decimal.NewFromFloat(t.Price))
		if t.Sold {
			stats.SoldItems++
		} else {
			stats.UnsoldItems++
		}
	}
	return stats, nil
}

func (s *Store) PriceRangeCounts(ctx context.Context, filter *transaction.TransactionFilter) ([]int64, error) {
	matched, err := s.matching(ctx, withoutSearch(filter))
	if err != nil {
		return nil, err
	}

	counts := make([]int64, len(transaction.PriceRanges))
	for _, t := range matched {
		if idx := transaction.PriceRangeIndex(t.Price); idx >= 0 {
			counts[idx]++
		}
	}
	return counts, nil
}

func (s *Store) CategoryCounts(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.CategoryCount, error) {
	matched, err := s.matching(ctx, withoutSearch(filter))
	if err != nil {
		return nil, err
	}

	byCategory := make(map[string]int64)
	for _, t := range matched {
		byCategory[t.Category]++
	}

	result := make([]*transaction.CategoryCount, 0, len(byCategory))
	for category, count := range byCategory {
		result = append(result, &transaction.CategoryCount{Category: category, Count: count})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Category < result[j].Category
	})
	return result, nil
}

// Write returns a writer whose replacement is swapped in on Commit.
func (s *Store) Write(ctx context.Context) (transaction.IWriter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &writer{store: s}, nil
}

func (s *Store) matching(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var matched []*transaction.Transaction
	for _, t := range s.items {
		if matches(filter, t) {
			matched = append(matched, t)
		}
	}
	return matched, nil
}

func matches(filter *transaction.TransactionFilter, t *transaction.Transaction) bool {
	if filter == nil {
		return true
	}
	if filter.Month != nil && t.DateOfSale.UTC().Month() != *filter.Month {
		return false
	}
	if filter.Search == "" {
		return true
	}

	needle := strings.ToLower(filter.Search)
	return strings.Contains(strings.ToLower(t.Title), needle) ||
		strings.Contains(strings.ToLower(t.Description), needle) ||
		strings.Contains(strconv.FormatFloat(t.Price, 'f', -1, 64), filter.Search)
}

func withoutSearch(filter *transaction.TransactionFilter) *transaction.TransactionFilter {
	if filter == nil {
		return nil
	}
	return &transaction.TransactionFilter{Month: filter.Month}
}

type writer struct {
	store   *Store
	staged  []*transaction.Transaction
	pending bool
}

func (w *writer) ReplaceAll(ctx context.Context, creates []*transaction.TransactionCreate) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	w.store.mu.RLock()
	nextID := w.store.nextID
	w.store.mu.RUnlock()

	staged := make([]*transaction.Transaction, len(creates))
	for i, c := range creates {
		nextID++
		staged[i] = &transaction.Transaction{
			ID:          fmt.Sprintf("%08d", nextID),
			Title:       c.Title,
			Description: c.Description,
			Price:       c.Price,
			DateOfSale:  c.DateOfSale,
			Sold:        c.Sold,
			Category:    c.Category,
		}
	}
	w.staged = staged
	w.pending = true
	return len(staged), nil
}

func (w *writer) Commit() error {
	if !w.pending {
		return nil
	}
	w.store.mu.Lock()
	defer w.store.mu.Unlock()
	w.store.items = w.staged
	w.store.nextID += len(w.staged)
	w.pending = false
	return nil
}

func (w *writer) Rollback() error {
	w.staged = nil
	w.pending = false
	return nil
}
