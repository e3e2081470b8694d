package storage

import (
	"context"
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/transactions-report/internal/config"
	"github.com/carson-networks/transactions-report/internal/storage/memory"
	"github.com/carson-networks/transactions-report/internal/storage/mongostore"
	"github.com/carson-networks/transactions-report/internal/storage/sqlconfig"
	"github.com/carson-networks/transactions-report/internal/storage/transaction"
)

// Storage bundles the read side and write side of the selected backend.
type Storage struct {
	Backend      string
	Transactions transaction.ITransactionTable
	writers      transaction.IWriterSource
	close        func(ctx context.Context) error
}

// New wires a Storage from already constructed parts.
func New(backend string, table transaction.ITransactionTable, writers transaction.IWriterSource, closeFn func(ctx context.Context) error) *Storage {
	if closeFn == nil {
		closeFn = func(context.Context) error { return nil }
	}
	return &Storage{
		Backend:      backend,
		Transactions: table,
		writers:      writers,
		close:        closeFn,
	}
}

// NewMemoryStorage returns a Storage backed by the in-process store.
func NewMemoryStorage() *Storage {
	store := memory.New()
	return New(config.BackendMemory, store, store, nil)
}

func NewStorage(ctx context.Context, env *config.Config) (*Storage, error) {
	switch env.DataBackend {
	case config.BackendMemory:
		return NewMemoryStorage(), nil

	case config.BackendPostgres:
		preMigrationVersion, postMigrationVersion, err := sqlconfig.RunMigrations(env.PostgresDSN())
		if err != nil {
			return nil, fmt.Errorf("sqlconfig.RunMigrations: %w", err)
		}
		logrus.WithFields(logrus.Fields{
			"preMigrationVersion":  preMigrationVersion,
			"postMigrationVersion": postMigrationVersion,
		}).Info("Migration status")

		db, err := sql.Open("postgres", env.PostgresDSN())
		if err != nil {
			return nil, fmt.Errorf("sql.Open: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("db.PingContext: %w", err)
		}
		table := sqlconfig.NewTransactionsTable(db)
		return New(config.BackendPostgres, table, table, func(context.Context) error {
			return db.Close()
		}), nil

	case config.BackendMongo:
		client, err := mongostore.Connect(ctx, env.MongoURI)
		if err != nil {
			return nil, err
		}
		coll := mongostore.NewTransactionsCollection(client.Database(env.MongoDatabase).Collection(env.MongoCollection))
		return New(config.BackendMongo, coll, coll, client.Disconnect), nil

	default:
		return nil, fmt.Errorf("unknown data backend %q", env.DataBackend)
	}
}

// Write opens a writer on the backend.
func (s *Storage) Write(ctx context.Context) (transaction.IWriter, error) {
	return s.writers.Write(ctx)
}

func (s *Storage) Close(ctx context.Context) error {
	return s.close(ctx)
}
