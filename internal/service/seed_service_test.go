package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/transactions-report/internal/operator"
	"github.com/carson-networks/transactions-report/internal/operator/actions"
	"github.com/carson-networks/transactions-report/internal/storage/memory"
	"github.com/carson-networks/transactions-report/internal/storage/transaction"
)

type stubFetcher struct {
	creates []*transaction.TransactionCreate
	err     error
	calls   int
}

func (s *stubFetcher) FetchTransactions(ctx context.Context) ([]*transaction.TransactionCreate, error) {
	s.calls++
	return s.creates, s.err
}

func newSeedService(t *testing.T, fetcher TransactionFetcher) (*SeedService, *memory.Store) {
	t.Helper()
	store := memory.New()
	delegator := operator.NewOperatorDelegator(store)
	delegator.Start()
	t.Cleanup(delegator.Stop)
	return NewSeedService(fetcher, delegator), store
}

func TestSeed_ReplacesAndIsIdempotent(t *testing.T) {
	fetcher := &stubFetcher{creates: []*transaction.TransactionCreate{
		{Title: "a", Price: 50},
		{Title: "b", Price: 150},
		{Title: "c", Price: 999},
	}}
	svc, store := newSeedService(t, fetcher)

	for i := 0; i < 2; i++ {
		n, err := svc.Seed(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 3, n)

		count, err := store.Count(context.Background(), nil)
		require.NoError(t, err)
		assert.Equal(t, int64(3), count)
	}
	assert.Equal(t, 2, fetcher.calls)
}

func TestSeed_UpstreamFailureLeavesStore(t *testing.T) {
	svc, store := newSeedService(t, &stubFetcher{creates: []*transaction.TransactionCreate{{Title: "keep"}}})
	_, err := svc.Seed(context.Background())
	require.NoError(t, err)

	svc.fetcher = &stubFetcher{err: errors.New("unexpected status code: 503")}
	_, err = svc.Seed(context.Background())
	assert.ErrorIs(t, err, ErrUpstreamFetch)
	assert.NotErrorIs(t, err, ErrStore)

	count, err := store.Count(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestSeed_FetchCancelled(t *testing.T) {
	svc, _ := newSeedService(t, &stubFetcher{err: context.Canceled})

	_, err := svc.Seed(context.Background())
	assert.ErrorIs(t, err, ErrCancelled)
	assert.NotErrorIs(t, err, ErrUpstreamFetch)
}

type failingProcessor struct{}

func (failingProcessor) Process(context.Context, actions.IAction) error {
	return errors.New("insert transactions: disk full")
}

func TestSeed_StoreFailure(t *testing.T) {
	svc := NewSeedService(&stubFetcher{}, failingProcessor{})

	_, err := svc.Seed(context.Background())
	assert.ErrorIs(t, err, ErrStore)
	assert.ErrorContains(t, err, "disk full")
}
