package mongostore

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/carson-networks/transactions-report/internal/storage/transaction"
)

type transactionDocument struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	Title       string             `bson:"title"`
	Description string             `bson:"description"`
	Price       float64            `bson:"price"`
	DateOfSale  time.Time          `bson:"dateOfSale"`
	Sold        bool               `bson:"sold"`
	Category    string             `bson:"category"`
}

type statisticsDocument struct {
	TotalSaleAmount float64 `bson:"totalSaleAmount"`
	SoldItems       int64   `bson:"soldItems"`
	UnsoldItems     int64   `bson:"unsoldItems"`
}

type priceRangeDocument struct {
	Index int   `bson:"_id"`
	Count int64 `bson:"count"`
}

type categoryDocument struct {
	Category string `bson:"_id"`
	Count    int64  `bson:"count"`
}

var (
	_ transaction.ITransactionTable = (*TransactionsCollection)(nil)
	_ transaction.IWriterSource     = (*TransactionsCollection)(nil)
)

// TransactionsCollection provides access to the transactions collection.
type TransactionsCollection struct {
	coll *mongo.Collection
}

// NewTransactionsCollection creates a TransactionsCollection for the given collection.
func NewTransactionsCollection(coll *mongo.Collection) *TransactionsCollection {
	return &TransactionsCollection{coll: coll}
}

// List returns the matching page of records ordered by _id.
func (c *TransactionsCollection) List(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "_id", Value: 1}})
	if filter != nil {
		if filter.Limit > 0 {
			opts.SetLimit(int64(filter.Limit))
		}
		if filter.Offset > 0 {
			opts.SetSkip(int64(filter.Offset))
		}
	}

	cursor, err := c.coll.Find(ctx, buildFilter(filter), opts)
	if err != nil {
		return nil, err
	}
	var docs []transactionDocument
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, err
	}

	result := make([]*transaction.Transaction, len(docs))
	for i := range docs {
		result[i] = documentToTransaction(&docs[i])
	}
	return result, nil
}

// Count returns the number of matching records, ignoring pagination.
func (c *TransactionsCollection) Count(ctx context.Context, filter *transaction.TransactionFilter) (int64, error) {
	return c.coll.CountDocuments(ctx, buildFilter(filter))
}

func (c *TransactionsCollection) Statistics(ctx context.Context, filter *transaction.TransactionFilter) (*transaction.Statistics, error) {
	var docs []statisticsDocument
	if err := c.aggregate(ctx, statisticsPipeline(filter), &docs); err != nil {
		return nil, err
	}

	stats := &transaction.Statistics{TotalSaleAmount: decimal.Zero}
	if len(docs) > 0 {
		stats.TotalSaleAmount = decimal.NewFromFloat(docs[0].TotalSaleAmount)
		stats.SoldItems = docs[0].SoldItems
		stats.UnsoldItems = docs[0].UnsoldItems
	}
	return stats, nil
}

func (c *TransactionsCollection) PriceRangeCounts(ctx context.Context, filter *transaction.TransactionFilter) ([]int64, error) {
	var docs []priceRangeDocument
	if err := c.aggregate(ctx, priceRangePipeline(filter), &docs); err != nil {
		return nil, err
	}

	counts := make([]int64, len(transaction.PriceRanges))
	for _, doc := range docs {
		if doc.Index < 0 || doc.Index >= len(counts) {
			return nil, fmt.Errorf("price range index %d out of bounds", doc.Index)
		}
		counts[doc.Index] = doc.Count
	}
	return counts, nil
}

func (c *TransactionsCollection) CategoryCounts(ctx context.Context, filter *transaction.TransactionFilter) ([]*transaction.CategoryCount, error) {
	var docs []categoryDocument
	if err := c.aggregate(ctx, categoryPipeline(filter), &docs); err != nil {
		return nil, err
	}

	result := make([]*transaction.CategoryCount, len(docs))
	for i, doc := range docs {
		result[i] = &transaction.CategoryCount{Category: doc.Category, Count: doc.Count}
	}
	return result, nil
}

// Write returns a writer that applies changes directly to the collection.
// The replace is two separate operations, so readers may observe an empty
// or partially filled collection while it runs.
func (c *TransactionsCollection) Write(ctx context.Context) (transaction.IWriter, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return &collectionWriter{coll: c.coll}, nil
}

func (c *TransactionsCollection) aggregate(ctx context.Context, pipeline mongo.Pipeline, out interface{}) error {
	cursor, err := c.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return err
	}
	return cursor.All(ctx, out)
}

type collectionWriter struct {
	coll *mongo.Collection
}

func (w *collectionWriter) ReplaceAll(ctx context.Context, creates []*transaction.TransactionCreate) (int, error) {
	if _, err := w.coll.DeleteMany(ctx, bson.D{}); err != nil {
		return 0, fmt.Errorf("delete transactions: %w", err)
	}
	if len(creates) == 0 {
		return 0, nil
	}

	docs := make([]interface{}, len(creates))
	for i, create := range creates {
		docs[i] = transactionDocument{
			Title:       create.Title,
			Description: create.Description,
			Price:       create.Price,
			DateOfSale:  create.DateOfSale.UTC(),
			Sold:        create.Sold,
			Category:    create.Category,
		}
	}

	res, err := w.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, fmt.Errorf("insert transactions: %w", err)
	}
	return len(res.InsertedIDs), nil
}

func (w *collectionWriter) Commit() error {
	return nil
}

func (w *collectionWriter) Rollback() error {
	return nil
}

func documentToTransaction(doc *transactionDocument) *transaction.Transaction {
	return &transaction.Transaction{
		ID:          doc.ID.Hex(),
		Title:       doc.Title,
		Description: doc.Description,
		Price:       doc.Price,
		DateOfSale:  doc.DateOfSale,
		Sold:        doc.Sold,
		Category:    doc.Category,
	}
}
