package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/transactions-report/internal/handlers/v1/apierr"
	"github.com/carson-networks/transactions-report/internal/logging"
	"github.com/carson-networks/transactions-report/internal/service"
)

// ListTransactionsInput is the Huma input for listing transactions.
// Pagination values are strings so malformed input falls back to defaults
// instead of being rejected.
type ListTransactionsInput struct {
	Month   string `query:"month" doc:"Month name, abbreviation or number 1-12" example:"March"`
	Search  string `query:"search" doc:"Case-insensitive text matched against title, description and price"`
	Page    string `query:"page" doc:"1-based page number, defaults to 1" example:"1"`
	PerPage string `query:"perPage" doc:"Page size, defaults to 10, at most 100" example:"10"`
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"Page of transactions"`
	Total        int64         `json:"total" doc:"Number of matching transactions across all pages"`
	Page         int           `json:"page" doc:"Resolved page number"`
	PerPage      int           `json:"perPage" doc:"Resolved page size"`
}

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context, query service.ListQuery) (*service.TransactionPage, error)
}

// ListTransactionsHandler handles GET /api/transactions.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list transactions endpoint with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/api/transactions",
		Summary:     "List transactions",
		Description: "Returns a page of transactions filtered by month and search text, ordered by id.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

// parseListTransactionsInput parses and validates the API input.
func parseListTransactionsInput(input *ListTransactionsInput) (service.ListQuery, error) {
	month, err := service.ParseMonth(input.Month)
	if err != nil {
		return service.ListQuery{}, err
	}

	page, perPage := service.ParsePagination(input.Page, input.PerPage)
	return service.ListQuery{
		Month:   month,
		Search:  input.Search,
		Page:    page,
		PerPage: perPage,
	}, nil
}

func (h *ListTransactionsHandler) handle(ctx context.Context, input *ListTransactionsInput) (*ListTransactionsOutput, error) {
	logData := logging.GetLogData(ctx)

	query, err := parseListTransactionsInput(input)
	if err != nil {
		return nil, apierr.FromError(err, "")
	}

	stopTimer := logData.AddTiming("listTransactionsMs")
	page, err := h.TransactionService.ListTransactions(ctx, query)
	stopTimer()
	if err != nil {
		return nil, apierr.FromError(err, "failed to list transactions")
	}

	logData.AddData("transactionCount", len(page.Transactions))

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(page.Transactions)),
		Total:        page.Total,
		Page:         page.Page,
		PerPage:      page.PerPage,
	}

	for i, tx := range page.Transactions {
		resp.Transactions[i] = Transaction{
			ID:          tx.ID,
			Title:       tx.Title,
			Description: tx.Description,
			Price:       tx.Price,
			DateOfSale:  tx.DateOfSale.UTC().Format(time.RFC3339),
			Sold:        tx.Sold,
			Category:    tx.Category,
		}
	}

	return &ListTransactionsOutput{Body: resp}, nil
}
