package operator

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/transactions-report/internal/operator/actions"
	"github.com/carson-networks/transactions-report/internal/storage/memory"
	"github.com/carson-networks/transactions-report/internal/storage/transaction"
)

type failingAction struct {
	err error
}

func (f *failingAction) Perform(ctx context.Context, writer transaction.IWriter) error {
	if _, err := writer.ReplaceAll(ctx, nil); err != nil {
		return err
	}
	return f.err
}

type blockingAction struct {
	started chan struct{}
	release chan struct{}
}

func (b *blockingAction) Perform(ctx context.Context, writer transaction.IWriter) error {
	close(b.started)
	<-b.release
	return nil
}

// replaceUntilDeadline stages a replacement and then outlives the caller's deadline.
type replaceUntilDeadline struct {
	creates []*transaction.TransactionCreate
}

func (r *replaceUntilDeadline) Perform(ctx context.Context, writer transaction.IWriter) error {
	if _, err := writer.ReplaceAll(ctx, r.creates); err != nil {
		return err
	}
	<-ctx.Done()
	return nil
}

type noopAction struct{}

func (noopAction) Perform(context.Context, transaction.IWriter) error {
	return nil
}

// directStore applies a replace as a delete followed by a separate insert,
// with no isolation between the two steps.
type directStore struct {
	mu    sync.Mutex
	items []*transaction.TransactionCreate
}

func (s *directStore) Write(context.Context) (transaction.IWriter, error) {
	return &directWriter{store: s}, nil
}

func (s *directStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.items)
}

type directWriter struct {
	store *directStore
}

func (w *directWriter) ReplaceAll(ctx context.Context, creates []*transaction.TransactionCreate) (int, error) {
	w.store.mu.Lock()
	w.store.items = nil
	w.store.mu.Unlock()

	time.Sleep(10 * time.Millisecond)

	w.store.mu.Lock()
	defer w.store.mu.Unlock()
	w.store.items = append(w.store.items, creates...)
	return len(creates), nil
}

func (w *directWriter) Commit() error   { return nil }
func (w *directWriter) Rollback() error { return nil }

func newStarted(t *testing.T, store transaction.IWriterSource) *OperatorDelegator {
	d := NewOperatorDelegator(store)
	d.Start()
	t.Cleanup(d.Stop)
	return d
}

func TestOperatorDelegator_ReplaceTransactionsCommits(t *testing.T) {
	store := memory.New()
	d := newStarted(t, store)

	action := &actions.ReplaceTransactions{Transactions: []*transaction.TransactionCreate{
		{Title: "a", Price: 10},
		{Title: "b", Price: 20},
	}}
	require.NoError(t, d.Process(context.Background(), action))
	assert.Equal(t, 2, action.Inserted)

	count, err := store.Count(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

func TestOperatorDelegator_FailedActionRollsBack(t *testing.T) {
	store := memory.New()
	d := newStarted(t, store)

	require.NoError(t, d.Process(context.Background(), &actions.ReplaceTransactions{
		Transactions: []*transaction.TransactionCreate{{Title: "keep", Price: 1}},
	}))

	boom := errors.New("boom")
	err := d.Process(context.Background(), &failingAction{err: boom})
	assert.ErrorIs(t, err, boom)

	count, err := store.Count(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestOperatorDelegator_ContextCancelledWhileQueued(t *testing.T) {
	d := newStarted(t, memory.New())

	blocker := &blockingAction{started: make(chan struct{}), release: make(chan struct{})}
	go func() { _ = d.Process(context.Background(), blocker) }()
	<-blocker.started

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := d.Process(ctx, &actions.ReplaceTransactions{})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	close(blocker.release)
}

func TestOperatorDelegator_ProcessAfterStop(t *testing.T) {
	d := NewOperatorDelegator(memory.New())
	d.Start()
	d.Stop()
	d.Stop()

	err := d.Process(context.Background(), &actions.ReplaceTransactions{})
	assert.ErrorIs(t, err, ErrStopped)
}

func TestOperatorDelegator_ConcurrentReplacesDoNotInterleave(t *testing.T) {
	store := &directStore{}
	d := NewOperatorDelegator(store)
	d.Start()
	d.Start()
	t.Cleanup(d.Stop)

	creates := make([]*transaction.TransactionCreate, 60)
	for i := range creates {
		creates[i] = &transaction.TransactionCreate{Title: fmt.Sprintf("item %d", i), Price: float64(i)}
	}

	var wg sync.WaitGroup
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- d.Process(context.Background(), &actions.ReplaceTransactions{Transactions: creates})
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		require.NoError(t, err)
	}
	assert.Equal(t, len(creates), store.Len())
}

func TestOperatorDelegator_DeadlineDuringPerformRollsBack(t *testing.T) {
	store := memory.New()
	d := newStarted(t, store)

	require.NoError(t, d.Process(context.Background(), &actions.ReplaceTransactions{
		Transactions: []*transaction.TransactionCreate{{Title: "keep", Price: 1}},
	}))

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	err := d.Process(ctx, &replaceUntilDeadline{creates: []*transaction.TransactionCreate{
		{Title: "late", Price: 2},
		{Title: "later", Price: 3},
	}})
	assert.ErrorIs(t, err, context.DeadlineExceeded)

	// The single worker handles items in order, so this returns only after
	// the timed out action has finished.
	require.NoError(t, d.Process(context.Background(), noopAction{}))

	items, err := store.List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "keep", items[0].Title)
}
