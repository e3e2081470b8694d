package operator

import (
	"context"
	"errors"
	"sync"

	"github.com/carson-networks/transactions-report/internal/operator/actions"
	"github.com/carson-networks/transactions-report/internal/storage/transaction"
)

// ErrStopped is returned by Process once the delegator has been stopped.
var ErrStopped = errors.New("operator delegator stopped")

// OperatorDelegator manages the queue, starts/stops the Operator, and enqueues items.
// A single Operator drains the queue, so actions never overlap: a full
// replace on a non-transactional backend must finish before the next starts.
type OperatorDelegator struct {
	writers   transaction.IWriterSource
	queue     chan ActionItem
	wg        sync.WaitGroup
	startOnce sync.Once
	stopOnce  sync.Once
	stopMutex sync.RWMutex
	stopped   bool
}

func NewOperatorDelegator(writers transaction.IWriterSource) *OperatorDelegator {
	return &OperatorDelegator{
		writers: writers,
		queue:   make(chan ActionItem, 1000),
	}
}

func (d *OperatorDelegator) Start() {
	d.startOnce.Do(func() {
		d.wg.Add(1)
		op := NewOperator(d.writers, d.queue)
		go func() {
			defer d.wg.Done()
			op.Run()
		}()
	})
}

// Stop drains the queue and waits for in-flight actions to finish.
func (d *OperatorDelegator) Stop() {
	d.stopOnce.Do(func() {
		d.stopMutex.Lock()
		d.stopped = true
		close(d.queue)
		d.stopMutex.Unlock()
		d.wg.Wait()
	})
}

// Process enqueues action and waits for its result or for ctx to end.
func (d *OperatorDelegator) Process(ctx context.Context, action actions.IAction) error {
	respCh := make(chan ActionItemResponse, 1)
	item := ActionItem{
		ctx:      ctx,
		action:   action,
		response: respCh,
	}

	if err := d.enqueue(ctx, item); err != nil {
		return err
	}

	select {
	case resp := <-respCh:
		return resp.err
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (d *OperatorDelegator) enqueue(ctx context.Context, item ActionItem) error {
	d.stopMutex.RLock()
	defer d.stopMutex.RUnlock()
	if d.stopped {
		return ErrStopped
	}

	select {
	case d.queue <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
