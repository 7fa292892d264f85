package storage

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/lib/pq"
	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-server/internal/config"
	"github.com/carson-networks/finance-server/internal/storage/account"
	"github.com/carson-networks/finance-server/internal/storage/recurrence"
	"github.com/carson-networks/finance-server/internal/storage/settlement"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// Storage bundles the pooled table gateways. Mutating operations that span
// multiple rows go through Write, which hands out a Writer scoped to one
// database transaction.
type Storage struct {
	DB           *sql.DB
	bob          bob.DB
	Transactions transaction.ITransactionTable
	Accounts     account.IAccountTable
	Recurrences  recurrence.IRecurrenceTable
	Settlements  settlement.ISettlementTable
}

func NewStorage(env *config.Config) *Storage {
	connStr := "postgres://" + env.PostgresUsername + ":" +
		env.PostgresPassword + "@" + env.PostgresAddress + ":" +
		env.PostgresPort + "/" + env.PostgresDB + "?sslmode=disable"

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		log.Fatal(err)
	}

	bobDB := bob.NewDB(db)

	return &Storage{
		DB:           db,
		bob:          bobDB,
		Transactions: transaction.NewTable(bobDB),
		Accounts:     account.NewTable(bobDB),
		Recurrences:  recurrence.NewTable(bobDB),
		Settlements:  settlement.NewTable(bobDB),
	}
}

// Write begins a database transaction and returns a Writer whose gateways
// all execute inside it.
func (s *Storage) Write(ctx context.Context) (*Writer, error) {
	tx, err := s.bob.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return NewWriter(tx), nil
}
