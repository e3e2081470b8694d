package actions

import (
	"context"

	"github.com/carson-networks/transactions-report/internal/storage/transaction"
)

// IAction is a unit of write work run by an operator inside one writer.
type IAction interface {
	Perform(ctx context.Context, writer transaction.IWriter) error
}
