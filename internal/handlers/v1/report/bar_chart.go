package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/transactions-report/internal/handlers/v1/apierr"
	"github.com/carson-networks/transactions-report/internal/logging"
	"github.com/carson-networks/transactions-report/internal/service"
)

type BarChartOutput struct {
	Body []PriceRange
}

// BarChartHandler handles GET /api/bar-chart.
type BarChartHandler struct {
	ReportService reporter
}

func NewBarChartHandler(svc reporter) *BarChartHandler {
	return &BarChartHandler{ReportService: svc}
}

func (h *BarChartHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-bar-chart",
		Method:      http.MethodGet,
		Path:        "/api/bar-chart",
		Summary:     "Monthly price range histogram",
		Description: "Record counts for the ten fixed price ranges, always in range order.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *BarChartHandler) handle(ctx context.Context, input *MonthInput) (*BarChartOutput, error) {
	month, err := service.RequireMonth(input.Month)
	if err != nil {
		return nil, apierr.FromError(err, "")
	}
	logging.GetLogData(ctx).AddData("month", month.String())

	bars, err := h.ReportService.BarChart(ctx, month)
	if err != nil {
		return nil, apierr.FromError(err, "failed to compute bar chart")
	}

	return &BarChartOutput{Body: toPriceRanges(bars)}, nil
}
