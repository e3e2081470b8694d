package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/transactions-report/internal/handlers/v1/apierr"
	"github.com/carson-networks/transactions-report/internal/logging"
	"github.com/carson-networks/transactions-report/internal/service"
)

type StatisticsOutput struct {
	Body Statistics
}

// StatisticsHandler handles GET /api/statistics.
type StatisticsHandler struct {
	ReportService reporter
}

func NewStatisticsHandler(svc reporter) *StatisticsHandler {
	return &StatisticsHandler{ReportService: svc}
}

func (h *StatisticsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-statistics",
		Method:      http.MethodGet,
		Path:        "/api/statistics",
		Summary:     "Monthly statistics",
		Description: "Total sale amount and sold/unsold counts for a calendar month in any year.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *StatisticsHandler) handle(ctx context.Context, input *MonthInput) (*StatisticsOutput, error) {
	month, err := service.RequireMonth(input.Month)
	if err != nil {
		return nil, apierr.FromError(err, "")
	}
	logging.GetLogData(ctx).AddData("month", month.String())

	stats, err := h.ReportService.Statistics(ctx, month)
	if err != nil {
		return nil, apierr.FromError(err, "failed to compute statistics")
	}

	return &StatisticsOutput{Body: toStatistics(stats)}, nil
}
