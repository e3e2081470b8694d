package report

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/transactions-report/internal/handlers/v1/apierr"
	"github.com/carson-networks/transactions-report/internal/service"
)

type PieChartOutput struct {
	Body []Category
}

// PieChartHandler handles GET /api/pie-chart.
type PieChartHandler struct {
	ReportService reporter
}

func NewPieChartHandler(svc reporter) *PieChartHandler {
	return &PieChartHandler{ReportService: svc}
}

func (h *PieChartHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-pie-chart",
		Method:      http.MethodGet,
		Path:        "/api/pie-chart",
		Summary:     "Monthly category breakdown",
		Description: "Record counts per category, sorted by category. Without a month the result is empty.",
		Tags:        []string{"Reports"},
	}, h.handle)
}

func (h *PieChartHandler) handle(ctx context.Context, input *MonthInput) (*PieChartOutput, error) {
	month, err := service.ParseMonth(input.Month)
	if err != nil {
		return nil, apierr.FromError(err, "")
	}

	slices, err := h.ReportService.PieChart(ctx, month)
	if err != nil {
		return nil, apierr.FromError(err, "failed to compute pie chart")
	}

	return &PieChartOutput{Body: toCategories(slices)}, nil
}
