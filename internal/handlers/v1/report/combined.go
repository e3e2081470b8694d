package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/transactions-report/internal/handlers/v1/apierr"
	"github.com/carson-networks/transactions-report/internal/logging"
	"github.com/carson-networks/transactions-report/internal/service"
)

type CombinedResponseBody struct {
	Statistics Statistics   `json:"statistics"`
	BarChart   []PriceRange `json:"barChart"`
	PieChart   []Category   `json:"pieChart"`
}

type CombinedOutput struct {
	Body CombinedResponseBody
}

// CombinedHandler handles GET /api/combined.
type CombinedHandler struct {
	ReportService reporter
}

func NewCombinedHandler(svc reporter) *CombinedHandler {
	return &CombinedHandler{ReportService: svc}
}

func (h *CombinedHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-combined-report",
		Method:      http.MethodGet,
		Path:        "/api/combined",
		Summary:     "All monthly reports",
		Description: "Statistics, bar chart and pie chart for one month, computed together. Fails as a whole if any part fails.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *CombinedHandler) handle(ctx context.Context, input *MonthInput) (*CombinedOutput, error) {
	month, err := service.RequireMonth(input.Month)
	if err != nil {
		return nil, apierr.FromError(err, "")
	}
	logging.GetLogData(ctx).AddData("month", month.String())

	report, err := h.ReportService.Combined(ctx, month)
	if err != nil {
		return nil, apierr.FromError(err, "failed to compute combined report")
	}

	return &CombinedOutput{Body: CombinedResponseBody{
		Statistics: toStatistics(report.Statistics),
		BarChart:   toPriceRanges(report.BarChart),
		PieChart:   toCategories(report.PieChart),
	}}, nil
}
