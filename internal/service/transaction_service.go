package service

import (
	"context"

	"github.com/carson-networks/transactions-report/internal/logging"
	"github.com/carson-networks/transactions-report/internal/storage"
	"github.com/carson-networks/transactions-report/internal/storage/transaction"
)

// TransactionService handles transaction business logic.
type TransactionService struct {
	storage *storage.Storage
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage) *TransactionService {
	return &TransactionService{storage: store}
}

// ListTransactions returns the requested page and the total number of matches.
func (s *TransactionService) ListTransactions(ctx context.Context, query ListQuery) (*TransactionPage, error) {
	page, perPage := query.Page, query.PerPage
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	perPage = min(perPage, MaxPerPage)

	filter := &transaction.TransactionFilter{
		Month:  query.Month,
		Search: query.Search,
		Limit:  perPage,
		Offset: (page - 1) * perPage,
	}

	logData := logging.GetLogData(ctx)
	endTimer := logData.AddTiming("list_ms")
	rows, err := s.storage.Transactions.List(ctx, filter)
	endTimer()
	if err != nil {
		return nil, storeError("list transactions", err)
	}

	endTimer = logData.AddTiming("count_ms")
	total, err := s.storage.Transactions.Count(ctx, filter)
	endTimer()
	if err != nil {
		return nil, storeError("count transactions", err)
	}

	convertedTransactions := make([]Transaction, len(rows))
	for i, row := range rows {
		convertedTransactions[i] = Transaction{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			Price:       row.Price,
			DateOfSale:  row.DateOfSale,
			Sold:        row.Sold,
			Category:    row.Category,
		}
	}

	return &TransactionPage{
		Transactions: convertedTransactions,
		Total:        total,
		Page:         page,
		PerPage:      perPage,
	}, nil
}
