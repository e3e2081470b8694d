package service

import (
	"github.com/carson-networks/transactions-report/internal/storage"
)

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Report      *ReportService
	Seed        *SeedService
}

// NewService creates a new Service with the given storage, seed source and write queue.
func NewService(store *storage.Storage, fetcher TransactionFetcher, processor ActionProcessor) *Service {
	return &Service{
		Transaction: NewTransactionService(store),
		Report:      NewReportService(store),
		Seed:        NewSeedService(fetcher, processor),
	}
}
