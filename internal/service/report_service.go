package service

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/carson-networks/transactions-report/internal/logging"
	"github.com/carson-networks/transactions-report/internal/storage"
	"github.com/carson-networks/transactions-report/internal/storage/transaction"
)

// ReportService computes the monthly reports.
type ReportService struct {
	storage *storage.Storage
}

func NewReportService(store *storage.Storage) *ReportService {
	return &ReportService{storage: store}
}

func monthFilter(month time.Month) *transaction.TransactionFilter {
	return &transaction.TransactionFilter{Month: &month}
}

// Statistics returns the sale total and sold/unsold counts for month.
func (s *ReportService) Statistics(ctx context.Context, month time.Month) (*Statistics, error) {
	defer logging.GetLogData(ctx).AddTiming("statistics_ms")()

	stats, err := s.storage.Transactions.Statistics(ctx, monthFilter(month))
	if err != nil {
		return nil, storeError("statistics", err)
	}
	return &Statistics{
		TotalSaleAmount: stats.TotalSaleAmount.Round(2),
		SoldItems:       stats.SoldItems,
		UnsoldItems:     stats.UnsoldItems,
	}, nil
}

// BarChart returns one count per price range, in range order.
func (s *ReportService) BarChart(ctx context.Context, month time.Month) ([]PriceRangeCount, error) {
	defer logging.GetLogData(ctx).AddTiming("bar_chart_ms")()

	counts, err := s.storage.Transactions.PriceRangeCounts(ctx, monthFilter(month))
	if err != nil {
		return nil, storeError("price ranges", err)
	}
	if len(counts) != len(transaction.PriceRanges) {
		return nil, storeError("price ranges", fmt.Errorf("got %d counts for %d ranges", len(counts), len(transaction.PriceRanges)))
	}

	result := make([]PriceRangeCount, len(transaction.PriceRanges))
	for i, r := range transaction.PriceRanges {
		result[i] = PriceRangeCount{Range: r.Label, Count: counts[i]}
	}
	return result, nil
}

// PieChart returns the per-category counts for month. Without a month
// nothing matches and the result is empty.
func (s *ReportService) PieChart(ctx context.Context, month *time.Month) ([]CategoryCount, error) {
	if month == nil {
		return []CategoryCount{}, nil
	}
	defer logging.GetLogData(ctx).AddTiming("pie_chart_ms")()

	rows, err := s.storage.Transactions.CategoryCounts(ctx, monthFilter(*month))
	if err != nil {
		return nil, storeError("categories", err)
	}

	result := make([]CategoryCount, len(rows))
	for i, row := range rows {
		result[i] = CategoryCount{Category: row.Category, Count: row.Count}
	}
	return result, nil
}

// Combined runs the three reports concurrently. The first failure cancels
// the others and no partial report is returned.
func (s *ReportService) Combined(ctx context.Context, month time.Month) (*CombinedReport, error) {
	g, gctx := errgroup.WithContext(ctx)
	report := &CombinedReport{}

	g.Go(func() error {
		stats, err := s.Statistics(gctx, month)
		report.Statistics = stats
		return err
	})
	g.Go(func() error {
		bars, err := s.BarChart(gctx, month)
		report.BarChart = bars
		return err
	})
	g.Go(func() error {
		pie, err := s.PieChart(gctx, &month)
		report.PieChart = pie
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return report, nil
}
