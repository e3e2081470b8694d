package report

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/transactions-report/internal/service"
	"github.com/carson-networks/transactions-report/internal/storage"
	"github.com/carson-networks/transactions-report/internal/storage/transaction"
)

type mockReporter struct {
	mock.Mock
}

func (m *mockReporter) Statistics(ctx context.Context, month time.Month) (*service.Statistics, error) {
	args := m.Called(ctx, month)
	stats, _ := args.Get(0).(*service.Statistics)
	return stats, args.Error(1)
}

func (m *mockReporter) BarChart(ctx context.Context, month time.Month) ([]service.PriceRangeCount, error) {
	args := m.Called(ctx, month)
	bars, _ := args.Get(0).([]service.PriceRangeCount)
	return bars, args.Error(1)
}

func (m *mockReporter) PieChart(ctx context.Context, month *time.Month) ([]service.CategoryCount, error) {
	args := m.Called(ctx, month)
	slices, _ := args.Get(0).([]service.CategoryCount)
	return slices, args.Error(1)
}

func (m *mockReporter) Combined(ctx context.Context, month time.Month) (*service.CombinedReport, error) {
	args := m.Called(ctx, month)
	report, _ := args.Get(0).(*service.CombinedReport)
	return report, args.Error(1)
}

func newReportTestAPI(t *testing.T, svc reporter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewStatisticsHandler(svc).Register(api)
	NewBarChartHandler(svc).Register(api)
	NewPieChartHandler(svc).Register(api)
	NewCombinedHandler(svc).Register(api)
	return api
}

// newSeededAPI serves the reports from a memory store holding the March records.
func newSeededAPI(t *testing.T) humatest.TestAPI {
	t.Helper()
	store := storage.NewMemoryStorage()

	w, err := store.Write(context.Background())
	require.NoError(t, err)
	_, err = w.ReplaceAll(context.Background(), []*transaction.TransactionCreate{
		{Title: "a", Price: 50, Sold: true, Category: "A", DateOfSale: time.Date(2022, time.March, 5, 0, 0, 0, 0, time.UTC)},
		{Title: "b", Price: 150, Sold: false, Category: "B", DateOfSale: time.Date(2022, time.March, 10, 0, 0, 0, 0, time.UTC)},
		{Title: "c", Price: 901, Sold: true, Category: "C", DateOfSale: time.Date(2021, time.July, 1, 0, 0, 0, 0, time.UTC)},
	})
	require.NoError(t, err)
	require.NoError(t, w.Commit())

	return newReportTestAPI(t, service.NewReportService(store))
}

func TestHTTP_Statistics_SingleMonth(t *testing.T) {
	resp := newSeededAPI(t).Get("/api/statistics?month=March")

	require.Equal(t, http.StatusOK, resp.Code)
	var body Statistics
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, Statistics{TotalSaleAmount: 200, SoldItems: 1, UnsoldItems: 1}, body)
}

func TestHTTP_BarChart_SingleMonth(t *testing.T) {
	resp := newSeededAPI(t).Get("/api/bar-chart?month=3")

	require.Equal(t, http.StatusOK, resp.Code)
	var body []PriceRange
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Len(t, body, 10)
	assert.Equal(t, PriceRange{Range: "0-100", Count: 1}, body[0])
	assert.Equal(t, PriceRange{Range: "101-200", Count: 1}, body[1])
	for _, bar := range body[2:] {
		assert.Zero(t, bar.Count, bar.Range)
	}
}

func TestHTTP_PieChart_SingleMonth(t *testing.T) {
	resp := newSeededAPI(t).Get("/api/pie-chart?month=mar")

	require.Equal(t, http.StatusOK, resp.Code)
	var body []Category
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []Category{{Category: "A", Count: 1}, {Category: "B", Count: 1}}, body)
}

func TestHTTP_PieChart_NoMonthIsEmptyArray(t *testing.T) {
	resp := newSeededAPI(t).Get("/api/pie-chart")

	require.Equal(t, http.StatusOK, resp.Code)
	assert.JSONEq(t, "[]", resp.Body.String())
}

func TestHTTP_Combined_SingleMonth(t *testing.T) {
	resp := newSeededAPI(t).Get("/api/combined?month=July")

	require.Equal(t, http.StatusOK, resp.Code)
	var body CombinedResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, Statistics{TotalSaleAmount: 901, SoldItems: 1}, body.Statistics)
	require.Len(t, body.BarChart, 10)
	assert.Equal(t, PriceRange{Range: "901-above", Count: 1}, body.BarChart[9])
	assert.Equal(t, []Category{{Category: "C", Count: 1}}, body.PieChart)
}

func TestHTTP_MissingMonth(t *testing.T) {
	api := newReportTestAPI(t, new(mockReporter))

	for _, path := range []string{"/api/statistics", "/api/bar-chart", "/api/combined"} {
		t.Run(path, func(t *testing.T) {
			resp := api.Get(path)
			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Contains(t, resp.Body.String(), "Month parameter is required")
		})
	}
}

func TestHTTP_InvalidMonth(t *testing.T) {
	api := newReportTestAPI(t, new(mockReporter))

	for _, path := range []string{"/api/statistics", "/api/bar-chart", "/api/pie-chart", "/api/combined"} {
		t.Run(path, func(t *testing.T) {
			resp := api.Get(path + "?month=Smarch")
			assert.Equal(t, http.StatusBadRequest, resp.Code)
			assert.Contains(t, resp.Body.String(), "invalid month parameter")
		})
	}
}

func TestHTTP_StoreFailureIs500(t *testing.T) {
	svc := new(mockReporter)
	storeErr := fmt.Errorf("statistics: %w", service.ErrStore)
	svc.On("Statistics", mock.Anything, time.March).Return(nil, storeErr)
	svc.On("Combined", mock.Anything, time.March).Return(nil, storeErr)

	api := newReportTestAPI(t, svc)

	resp := api.Get("/api/statistics?month=March")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.Contains(t, resp.Body.String(), "failed to compute statistics")

	resp = api.Get("/api/combined?month=March")
	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	assert.NotContains(t, resp.Body.String(), "barChart")
	svc.AssertExpectations(t)
}

func TestHTTP_DeadlineIs504(t *testing.T) {
	svc := new(mockReporter)
	svc.On("BarChart", mock.Anything, time.May).
		Return(nil, fmt.Errorf("price ranges: %w: %w", service.ErrCancelled, context.DeadlineExceeded))

	resp := newReportTestAPI(t, svc).Get("/api/bar-chart?month=may")
	assert.Equal(t, http.StatusGatewayTimeout, resp.Code)
	svc.AssertExpectations(t)
}
