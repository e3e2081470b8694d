package transaction

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// Transaction represents a stored transaction record.
type Transaction struct {
	ID          string
	Title       string
	Description string
	Price       float64
	DateOfSale  time.Time
	Sold        bool
	Category    string
}

// TransactionCreate is the input for inserting a record during a seed.
type TransactionCreate struct {
	Title       string
	Description string
	Price       float64
	DateOfSale  time.Time
	Sold        bool
	Category    string
}

// TransactionFilter specifies filters for listing and reporting on transactions.
// A nil Month matches every month. Search only applies to listing.
// Limit and Offset are ignored by the aggregate queries.
type TransactionFilter struct {
	Month  *time.Month
	Search string
	Limit  int
	Offset int
}

// Statistics is the reduced sale summary for a filtered set of records.
type Statistics struct {
	TotalSaleAmount decimal.Decimal
	SoldItems       int64
	UnsoldItems     int64
}

// CategoryCount is the number of records sharing one category.
type CategoryCount struct {
	Category string
	Count    int64
}

// ITransactionTable defines the read operations every record store supports.
// This abstraction allows swapping the backing store without changing callers.
//
//go:generate mockery --name ITransactionTable --inpackage --filename mock_ITransactionTable.go
type ITransactionTable interface {
	List(ctx context.Context, filter *TransactionFilter) ([]*Transaction, error)
	Count(ctx context.Context, filter *TransactionFilter) (int64, error)
	Statistics(ctx context.Context, filter *TransactionFilter) (*Statistics, error)
	// PriceRangeCounts returns one count per entry of PriceRanges, in the same order.
	PriceRangeCounts(ctx context.Context, filter *TransactionFilter) ([]int64, error)
	// CategoryCounts returns categories with at least one record, sorted by name.
	CategoryCounts(ctx context.Context, filter *TransactionFilter) ([]*CategoryCount, error)
}

// IWriter replaces the contents of a store. Changes become visible no later
// than Commit; stores without transactions apply them immediately.
type IWriter interface {
	ReplaceAll(ctx context.Context, creates []*TransactionCreate) (int, error)
	Commit() error
	Rollback() error
}

// IWriterSource opens writers against a store.
type IWriterSource interface {
	Write(ctx context.Context) (IWriter, error)
}
