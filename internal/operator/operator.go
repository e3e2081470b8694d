package operator

import (
	"context"

	"github.com/carson-networks/transactions-report/internal/operator/actions"
	"github.com/carson-networks/transactions-report/internal/storage/transaction"
)

// Operator is the worker that processes items from the queue.
type Operator struct {
	writers transaction.IWriterSource
	queue   chan ActionItem
}

func NewOperator(writers transaction.IWriterSource, queue chan ActionItem) *Operator {
	return &Operator{
		writers: writers,
		queue:   queue,
	}
}

// Run listens to the queue and processes items. Exits when the queue is closed.
func (o *Operator) Run() {
	for item := range o.queue {
		o.processItem(item)
	}
}

func (o *Operator) processItem(item ActionItem) {
	if err := item.ctx.Err(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	writer, err := o.writers.Write(item.ctx)
	if err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	err = item.action.Perform(item.ctx, writer)
	if err != nil {
		_ = writer.Rollback()
		item.response <- ActionItemResponse{err: err}
		return
	}

	// Process has already returned ctx.Err(), so the change must not land.
	if err := item.ctx.Err(); err != nil {
		_ = writer.Rollback()
		item.response <- ActionItemResponse{err: err}
		return
	}

	if err = writer.Commit(); err != nil {
		item.response <- ActionItemResponse{err: err}
		return
	}

	item.response <- ActionItemResponse{}
}

type ActionItem struct {
	ctx      context.Context
	action   actions.IAction
	response chan ActionItemResponse
}

type ActionItemResponse struct {
	err error
}
