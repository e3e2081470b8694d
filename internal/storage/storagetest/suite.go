// Package storagetest holds behaviour checks shared by every record store.
package storagetest

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/transactions-report/internal/storage/transaction"
)

// Store is what a backend must expose to run the suite.
type Store interface {
	transaction.ITransactionTable
	transaction.IWriterSource
}

// RunTableSuite seeds store several times and checks query and report behaviour.
func RunTableSuite(t *testing.T, store Store) {
	t.Run("SingleMonth", func(t *testing.T) { singleMonth(t, store) })
	t.Run("PriceBoundaries", func(t *testing.T) { priceBoundaries(t, store) })
	t.Run("ReportTotalsAgree", func(t *testing.T) { reportTotalsAgree(t, store) })
	t.Run("CategoryOrder", func(t *testing.T) { categoryOrder(t, store) })
	t.Run("Pagination", func(t *testing.T) { pagination(t, store) })
	t.Run("Search", func(t *testing.T) { search(t, store) })
	t.Run("ReplaceIsIdempotent", func(t *testing.T) { replaceIsIdempotent(t, store) })
}

func monthPtr(m time.Month) *time.Month {
	return &m
}

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 12, 0, 0, 0, time.UTC)
}

// Seed replaces the contents of store with creates.
func Seed(t *testing.T, store transaction.IWriterSource, creates []*transaction.TransactionCreate) {
	t.Helper()
	ctx := context.Background()

	w, err := store.Write(ctx)
	require.NoError(t, err)
	n, err := w.ReplaceAll(ctx, creates)
	if err != nil {
		_ = w.Rollback()
		require.NoError(t, err)
	}
	require.NoError(t, w.Commit())
	require.Equal(t, len(creates), n)
}

// Catalogue returns a deterministic spread of records over two years.
func Catalogue() []*transaction.TransactionCreate {
	categories := []string{"electronics", "jewelery", "men's clothing", "women's clothing"}
	creates := make([]*transaction.TransactionCreate, 0, 60)
	for i := 0; i < 60; i++ {
		creates = append(creates, &transaction.TransactionCreate{
			Title:       fmt.Sprintf("Product %d", i),
			Description: "catalogue entry",
			Price:       float64(i*37%1200) + 0.25*float64(i%4),
			DateOfSale:  date(2021+i%2, time.Month(i%12+1), 1+i%27),
			Sold:        i%3 == 0,
			Category:    categories[i%len(categories)],
		})
	}
	return creates
}

func singleMonth(t *testing.T, store Store) {
	Seed(t, store, []*transaction.TransactionCreate{
		{Title: "a", Price: 50, DateOfSale: date(2022, time.March, 5), Sold: true, Category: "A"},
		{Title: "b", Price: 150, DateOfSale: date(2022, time.March, 10), Sold: false, Category: "B"},
		{Title: "c", Price: 999, DateOfSale: date(2021, time.April, 1), Sold: true, Category: "C"},
	})
	ctx := context.Background()
	filter := &transaction.TransactionFilter{Month: monthPtr(time.March)}

	stats, err := store.Statistics(ctx, filter)
	require.NoError(t, err)
	assert.True(t, stats.TotalSaleAmount.Equal(decimal.NewFromInt(200)), stats.TotalSaleAmount.String())
	assert.Equal(t, int64(1), stats.SoldItems)
	assert.Equal(t, int64(1), stats.UnsoldItems)

	counts, err := store.PriceRangeCounts(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 1, 0, 0, 0, 0, 0, 0, 0, 0}, counts)

	categories, err := store.CategoryCounts(ctx, filter)
	require.NoError(t, err)
	assert.Equal(t, []*transaction.CategoryCount{
		{Category: "A", Count: 1},
		{Category: "B", Count: 1},
	}, categories)

	empty, err := store.Statistics(ctx, &transaction.TransactionFilter{Month: monthPtr(time.August)})
	require.NoError(t, err)
	assert.True(t, empty.TotalSaleAmount.IsZero())
	assert.Zero(t, empty.SoldItems+empty.UnsoldItems)
}

func priceBoundaries(t *testing.T, store Store) {
	Seed(t, store, []*transaction.TransactionCreate{
		{Title: "hundred", Price: 100, DateOfSale: date(2022, time.May, 1), Category: "A"},
		{Title: "nine-o-one", Price: 901, DateOfSale: date(2022, time.May, 2), Category: "A"},
		{Title: "between", Price: 100.5, DateOfSale: date(2022, time.May, 3), Category: "A"},
	})

	counts, err := store.PriceRangeCounts(context.Background(), &transaction.TransactionFilter{Month: monthPtr(time.May)})
	require.NoError(t, err)
	assert.Equal(t, []int64{1, 1, 0, 0, 0, 0, 0, 0, 0, 1}, counts)
}

func reportTotalsAgree(t *testing.T, store Store) {
	Seed(t, store, Catalogue())
	ctx := context.Background()

	for m := time.January; m <= time.December; m++ {
		filter := &transaction.TransactionFilter{Month: monthPtr(m)}

		stats, err := store.Statistics(ctx, filter)
		require.NoError(t, err)
		counts, err := store.PriceRangeCounts(ctx, filter)
		require.NoError(t, err)
		categories, err := store.CategoryCounts(ctx, filter)
		require.NoError(t, err)

		var bucketSum, categorySum int64
		for _, c := range counts {
			bucketSum += c
		}
		for _, c := range categories {
			categorySum += c.Count
		}
		total := stats.SoldItems + stats.UnsoldItems
		assert.Positive(t, total, "month %s", m)
		assert.Equal(t, total, bucketSum, "month %s buckets: %s", m, spew.Sdump(counts))
		assert.Equal(t, total, categorySum, "month %s categories: %s", m, spew.Sdump(categories))
	}
}

func categoryOrder(t *testing.T, store Store) {
	Seed(t, store, []*transaction.TransactionCreate{
		{Title: "a", Price: 1, DateOfSale: date(2022, time.July, 1), Category: "cherry"},
		{Title: "b", Price: 2, DateOfSale: date(2022, time.July, 2), Category: "apple"},
		{Title: "c", Price: 3, DateOfSale: date(2022, time.July, 3), Category: "Banana"},
		{Title: "d", Price: 4, DateOfSale: date(2022, time.July, 4), Category: "men's clothing"},
		{Title: "e", Price: 5, DateOfSale: date(2022, time.July, 5), Category: "men clothing"},
	})

	categories, err := store.CategoryCounts(context.Background(), &transaction.TransactionFilter{Month: monthPtr(time.July)})
	require.NoError(t, err)

	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = c.Category
	}
	assert.Equal(t, []string{"Banana", "apple", "cherry", "men clothing", "men's clothing"}, names)
}

func pagination(t *testing.T, store Store) {
	creates := make([]*transaction.TransactionCreate, 25)
	for i := range creates {
		creates[i] = &transaction.TransactionCreate{
			Title:      fmt.Sprintf("Paged %02d", i),
			Price:      float64(i),
			DateOfSale: date(2022, time.June, 1+i),
			Category:   "paged",
		}
	}
	Seed(t, store, creates)
	ctx := context.Background()
	month := monthPtr(time.June)

	all, err := store.List(ctx, &transaction.TransactionFilter{Month: month, Limit: 100})
	require.NoError(t, err)
	require.Len(t, all, 25)

	page2, err := store.List(ctx, &transaction.TransactionFilter{Month: month, Limit: 10, Offset: 10})
	require.NoError(t, err)
	require.Len(t, page2, 10)
	for i := range page2 {
		assert.Equal(t, all[10+i].ID, page2[i].ID)
	}

	page3, err := store.List(ctx, &transaction.TransactionFilter{Month: month, Limit: 10, Offset: 20})
	require.NoError(t, err)
	assert.Len(t, page3, 5)

	for _, offset := range []int{0, 10, 20} {
		total, err := store.Count(ctx, &transaction.TransactionFilter{Month: month, Limit: 10, Offset: offset})
		require.NoError(t, err)
		assert.Equal(t, int64(25), total)
	}
}

func search(t *testing.T, store Store) {
	Seed(t, store, []*transaction.TransactionCreate{
		{Title: "Mens Casual Shirt", Description: "cotton", Price: 329.85, DateOfSale: date(2022, time.January, 1), Category: "men's clothing"},
		{Title: "Ring", Description: "Solid GOLD petite", Price: 168, DateOfSale: date(2022, time.January, 2), Category: "jewelery"},
		{Title: "Backpack", Description: "fits laptops (15 inch)", Price: 109.95, DateOfSale: date(2022, time.February, 2), Category: "bags"},
	})
	ctx := context.Background()

	cases := []struct {
		search string
		want   int64
	}{
		{"shirt", 1},
		{"gold", 1},
		{"329", 1},
		{"(15", 1},
		{"%", 0},
		{"nothing", 0},
	}
	for _, c := range cases {
		count, err := store.Count(ctx, &transaction.TransactionFilter{Search: c.search})
		require.NoError(t, err)
		assert.Equal(t, c.want, count, "search %q", c.search)
	}

	found, err := store.List(ctx, &transaction.TransactionFilter{Search: "9", Month: monthPtr(time.February), Limit: 10})
	require.NoError(t, err)
	require.Len(t, found, 1)
	assert.Equal(t, "Backpack", found[0].Title)
	assert.InDelta(t, 109.95, found[0].Price, 0.001)
	assert.Equal(t, time.February, found[0].DateOfSale.UTC().Month())
}

func replaceIsIdempotent(t *testing.T, store Store) {
	creates := Catalogue()
	ctx := context.Background()

	Seed(t, store, creates)
	first, err := store.Count(ctx, nil)
	require.NoError(t, err)

	Seed(t, store, creates)
	second, err := store.Count(ctx, nil)
	require.NoError(t, err)

	assert.Equal(t, int64(len(creates)), first)
	assert.Equal(t, first, second)
}
