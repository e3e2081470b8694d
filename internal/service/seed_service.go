package service

import (
	"context"
	"fmt"

	"github.com/carson-networks/transactions-report/internal/logging"
	"github.com/carson-networks/transactions-report/internal/operator/actions"
	"github.com/carson-networks/transactions-report/internal/storage/transaction"
)

// TransactionFetcher downloads the seed dataset.
type TransactionFetcher interface {
	FetchTransactions(ctx context.Context) ([]*transaction.TransactionCreate, error)
}

// ActionProcessor runs write actions on the single writer queue.
type ActionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// SeedService replaces the stored records with the upstream dataset.
type SeedService struct {
	fetcher   TransactionFetcher
	processor ActionProcessor
}

func NewSeedService(fetcher TransactionFetcher, processor ActionProcessor) *SeedService {
	return &SeedService{
		fetcher:   fetcher,
		processor: processor,
	}
}

// Seed fetches the dataset and stores it, returning the number of records inserted.
func (s *SeedService) Seed(ctx context.Context) (int, error) {
	logData := logging.GetLogData(ctx)

	endTimer := logData.AddTiming("fetch_ms")
	creates, err := s.fetcher.FetchTransactions(ctx)
	endTimer()
	if err != nil {
		if isContextError(err) {
			return 0, fmt.Errorf("fetch seed data: %w: %w", ErrCancelled, err)
		}
		return 0, fmt.Errorf("fetch seed data: %w: %w", ErrUpstreamFetch, err)
	}
	logData.AddData("fetched", len(creates))

	action := &actions.ReplaceTransactions{Transactions: creates}
	endTimer = logData.AddTiming("replace_ms")
	err = s.processor.Process(ctx, action)
	endTimer()
	if err != nil {
		return 0, storeError("replace transactions", err)
	}

	logData.AddData("inserted", action.Inserted)
	return action.Inserted, nil
}
