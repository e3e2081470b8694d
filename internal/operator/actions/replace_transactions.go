package actions

import (
	"context"

	"github.com/carson-networks/transactions-report/internal/storage/transaction"
)

// ReplaceTransactions swaps the whole record set for Transactions.
type ReplaceTransactions struct {
	Transactions []*transaction.TransactionCreate

	// Inserted is set once Perform succeeds.
	Inserted int
}

func (r *ReplaceTransactions) Perform(ctx context.Context, writer transaction.IWriter) error {
	inserted, err := writer.ReplaceAll(ctx, r.Transactions)
	if err != nil {
		return err
	}

	r.Inserted = inserted
	return nil
}
