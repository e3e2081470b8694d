package sqlconfig

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/transactions-report/internal/storage/transaction"
)

const (
	transactionsTable = "transactions"

	// insertBatchSize keeps each INSERT well under the 65535 bind parameter limit.
	insertBatchSize = 1000
)

var insertColumns = []string{"id", "title", "description", "price", "date_of_sale", "sold", "category"}

type transactionRow struct {
	ID          uuid.UUID       `db:"id"`
	Title       string          `db:"title"`
	Description string          `db:"description"`
	Price       decimal.Decimal `db:"price"`
	DateOfSale  time.Time       `db:"date_of_sale"`
	Sold        bool            `db:"sold"`
	Category    string          `db:"category"`
}

type statisticsRow struct {
	TotalSaleAmount decimal.Decimal `db:"total_sale_amount"`
	SoldItems       int64           `db:"sold_items"`
	UnsoldItems     int64           `db:"unsold_items"`
}

type priceRangeRow struct {
	Bucket int   `db:"bucket"`
	Count  int64 `db:"count"`
}

type categoryRow struct {
	Category string `db:"category"`
	Count    int64  `db:"count"`
}

var (
	_ transaction.ITransactionTable = (*TransactionsTable)(nil)
	_ transaction.IWriterSource     = (*TransactionsTable)(nil)
)

// TransactionsTable provides access to the transactions table.
type TransactionsTable struct {
	db bob.DB
}

// NewTransactionsTable creates a TransactionsTable for the given database.
func NewTransactionsTable(db *sql.DB) *TransactionsTable {
	return &TransactionsTable{db: bob.NewDB(db)}
}

// List returns the matching page of records ordered by id.
func (t *TransactionsTable) List(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("id", "title", "description", "price", "date_of_sale", "sold", "category"),
		sm.From(transactionsTable),
	}
	queryMods = append(queryMods, whereMods(filter)...)
	if filter != nil {
		if filter.Limit > 0 {
			queryMods = append(queryMods, sm.Limit(filter.Limit))
		}
		if filter.Offset > 0 {
			queryMods = append(queryMods, sm.Offset(filter.Offset))
		}
	}
	queryMods = append(queryMods, sm.OrderBy("id").Asc())

	rows, err := bob.All(ctx, t.db, psql.Select(queryMods...), scan.StructMapper[transactionRow]())
	if err != nil {
		return nil, err
	}

	result := make([]*transaction.Transaction, len(rows))
	for i := range rows {
		result[i] = rowToTransaction(&rows[i])
	}
	return result, nil
}

// Count returns the number of matching records, ignoring pagination.
func (t *TransactionsTable) Count(ctx context.Context, filter *transaction.TransactionFilter) (int64, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(psql.Raw("COUNT(*)")),
		sm.From(transactionsTable),
	}
	queryMods = append(queryMods, whereMods(filter)...)

	return bob.One(ctx, t.db, psql.Select(queryMods...), scan.SingleColumnMapper[int64])
}

func (t *TransactionsTable) Statistics(ctx context.Context, filter *transaction.TransactionFilter) (*transaction.Statistics, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			psql.Raw("COALESCE(SUM(price), 0) AS total_sale_amount"),
			psql.Raw("COUNT(*) FILTER (WHERE sold) AS sold_items"),
			psql.Raw("COUNT(*) FILTER (WHERE NOT sold) AS unsold_items"),
		),
		sm.From(transactionsTable),
	}
	queryMods = append(queryMods, whereMods(reportFilter(filter))...)

	row, err := bob.One(ctx, t.db, psql.Select(queryMods...), scan.StructMapper[statisticsRow]())
	if err != nil {
		return nil, err
	}
	return &transaction.Statistics{
		TotalSaleAmount: row.TotalSaleAmount,
		SoldItems:       row.SoldItems,
		UnsoldItems:     row.UnsoldItems,
	}, nil
}

func (t *TransactionsTable) PriceRangeCounts(ctx context.Context, filter *transaction.TransactionFilter) ([]int64, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns(
			psql.Raw(priceRangeCase()+" AS bucket"),
			psql.Raw("COUNT(*) AS count"),
		),
		sm.From(transactionsTable),
		sm.Where(psql.Raw("price >= 0")),
	}
	queryMods = append(queryMods, whereMods(reportFilter(filter))...)
	queryMods = append(queryMods, sm.GroupBy("bucket"))

	rows, err := bob.All(ctx, t.db, psql.Select(queryMods...), scan.StructMapper[priceRangeRow]())
	if err != nil {
		return nil, err
	}

	counts := make([]int64, len(transaction.PriceRanges))
	for _, row := range rows {
		if row.Bucket < 0 || row.Bucket >= len(counts) {
			return nil, fmt.Errorf("price range index %d out of bounds", row.Bucket)
		}
		counts[row.Bucket] = row.Count
	}
	return counts, nil
}

func (t *TransactionsTable) CategoryCounts(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.CategoryCount, error) {
	rows, err := bob.All(ctx, t.db, categoryCountsQuery(filter), scan.StructMapper[categoryRow]())
	if err != nil {
		return nil, err
	}

	result := make([]*transaction.CategoryCount, len(rows))
	for i, row := range rows {
		result[i] = &transaction.CategoryCount{Category: row.Category, Count: row.Count}
	}
	return result, nil
}

// Write opens a transaction; nothing is visible to readers until Commit.
func (t *TransactionsTable) Write(ctx context.Context) (transaction.IWriter, error) {
	tx, err := t.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return &tableWriter{tx: tx}, nil
}

type tableWriter struct {
	tx bob.Tx
}

func (w *tableWriter) ReplaceAll(ctx context.Context, creates []*transaction.TransactionCreate) (int, error) {
	if _, err := psql.Delete(dm.From(transactionsTable)).Exec(ctx, w.tx); err != nil {
		return 0, fmt.Errorf("delete transactions: %w", err)
	}

	inserted := 0
	for start := 0; start < len(creates); start += insertBatchSize {
		end := min(start+insertBatchSize, len(creates))
		if err := w.insertBatch(ctx, creates[start:end]); err != nil {
			return inserted, err
		}
		inserted += end - start
	}
	return inserted, nil
}

func (w *tableWriter) insertBatch(ctx context.Context, creates []*transaction.TransactionCreate) error {
	queryMods := []bob.Mod[*dialect.InsertQuery]{
		im.Into(transactionsTable, insertColumns...),
	}
	for _, create := range creates {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("generate id: %w", err)
		}
		queryMods = append(queryMods, im.Values(psql.Arg(
			id,
			create.Title,
			create.Description,
			decimal.NewFromFloat(create.Price).Round(2),
			create.DateOfSale.UTC(),
			create.Sold,
			create.Category,
		)))
	}

	if _, err := psql.Insert(queryMods...).Exec(ctx, w.tx); err != nil {
		return fmt.Errorf("insert transactions: %w", err)
	}
	return nil
}

func (w *tableWriter) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *tableWriter) Rollback() error {
	return w.tx.Rollback(context.Background())
}

// categoryCountsQuery orders by byte value so every backend returns the same order.
func categoryCountsQuery(filter *transaction.TransactionFilter) bob.BaseQuery[*dialect.SelectQuery] {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("category", psql.Raw("COUNT(*) AS count")),
		sm.From(transactionsTable),
	}
	queryMods = append(queryMods, whereMods(reportFilter(filter))...)
	queryMods = append(queryMods,
		sm.GroupBy("category"),
		sm.OrderBy(psql.Raw(`category COLLATE "C"`)).Asc(),
	)
	return psql.Select(queryMods...)
}

// whereMods translates a filter into WHERE clauses. Month compares the
// calendar month of date_of_sale in UTC, in any year.
func whereMods(filter *transaction.TransactionFilter) []bob.Mod[*dialect.SelectQuery] {
	if filter == nil {
		return nil
	}

	var mods []bob.Mod[*dialect.SelectQuery]
	if filter.Month != nil {
		mods = append(mods, sm.Where(psql.Raw(
			"EXTRACT(MONTH FROM date_of_sale AT TIME ZONE 'UTC') = ?", int(*filter.Month),
		)))
	}
	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		mods = append(mods, sm.Where(psql.Raw(
			"(title ILIKE ? OR description ILIKE ? OR CAST(trim_scale(price) AS TEXT) LIKE ?)",
			pattern, pattern, pattern,
		)))
	}
	return mods
}

// reportFilter drops the search term; reports are scoped by month only.
func reportFilter(filter *transaction.TransactionFilter) *transaction.TransactionFilter {
	if filter == nil {
		return nil
	}
	return &transaction.TransactionFilter{Month: filter.Month}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match itself literally inside a LIKE pattern.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

// priceRangeCase maps price to its index in transaction.PriceRanges.
func priceRangeCase() string {
	last := len(transaction.PriceRanges) - 1

	var b strings.Builder
	b.WriteString("CASE")
	for i, r := range transaction.PriceRanges[:last] {
		fmt.Fprintf(&b, " WHEN price <= %s THEN %d", strconv.FormatFloat(r.Max, 'f', -1, 64), i)
	}
	fmt.Fprintf(&b, " ELSE %d END", last)
	return b.String()
}

func rowToTransaction(row *transactionRow) *transaction.Transaction {
	return &transaction.Transaction{
		ID:          row.ID.String(),
		Title:       row.Title,
		Description: row.Description,
		Price:       row.Price.InexactFloat64(),
		DateOfSale:  row.DateOfSale,
		Sold:        row.Sold,
		Category:    row.Category,
	}
}
