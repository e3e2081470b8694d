package report

import (
	"context"
	"time"

	"github.com/carson-networks/transactions-report/internal/service"
)

// Statistics is the API response model for monthly statistics.
type Statistics struct {
	TotalSaleAmount float64 `json:"totalSaleAmount" doc:"Sum of prices of all records in the month, rounded to cents"`
	SoldItems       int64   `json:"soldItems" doc:"Number of sold records"`
	UnsoldItems     int64   `json:"unsoldItems" doc:"Number of unsold records"`
}

// PriceRange is one bar of the bar chart.
type PriceRange struct {
	Range string `json:"range" doc:"Price range label" example:"101-200"`
	Count int64  `json:"count" doc:"Number of records in the range"`
}

// Category is one slice of the pie chart.
type Category struct {
	Category string `json:"category" doc:"Category name"`
	Count    int64  `json:"count" doc:"Number of records in the category"`
}

// MonthInput is shared by the reports that need a month.
type MonthInput struct {
	Month string `query:"month" doc:"Month name, abbreviation or number 1-12" example:"March"`
}

// reporter is the interface for computing monthly reports.
type reporter interface {
	Statistics(ctx context.Context, month time.Month) (*service.Statistics, error)
	BarChart(ctx context.Context, month time.Month) ([]service.PriceRangeCount, error)
	PieChart(ctx context.Context, month *time.Month) ([]service.CategoryCount, error)
	Combined(ctx context.Context, month time.Month) (*service.CombinedReport, error)
}

func toStatistics(stats *service.Statistics) Statistics {
	return Statistics{
		TotalSaleAmount: stats.TotalSaleAmount.InexactFloat64(),
		SoldItems:       stats.SoldItems,
		UnsoldItems:     stats.UnsoldItems,
	}
}

func toPriceRanges(bars []service.PriceRangeCount) []PriceRange {
	out := make([]PriceRange, len(bars))
	for i, bar := range bars {
		out[i] = PriceRange{Range: bar.Range, Count: bar.Count}
	}
	return out
}

func toCategories(slices []service.CategoryCount) []Category {
	out := make([]Category, len(slices))
	for i, slice := range slices {
		out[i] = Category{Category: slice.Category, Count: slice.Count}
	}
	return out
}
