package storage

import (
	"context"

	"github.com/stephenafamo/bob"

	"github.com/carson-networks/finance-server/internal/storage/account"
	"github.com/carson-networks/finance-server/internal/storage/recurrence"
	"github.com/carson-networks/finance-server/internal/storage/settlement"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// Writer exposes every table gateway over a single database transaction.
// Nothing is visible to other connections until Commit.
type Writer struct {
	tx          bob.Tx
	Transaction transaction.ITransactionTable
	Account     account.IAccountTable
	Recurrence  recurrence.IRecurrenceTable
	Settlement  settlement.ISettlementTable
}

func NewWriter(tx bob.Tx) *Writer {
	return &Writer{
		tx:          tx,
		Transaction: transaction.NewTable(tx),
		Account:     account.NewTable(tx),
		Recurrence:  recurrence.NewTable(tx),
		Settlement:  settlement.NewTable(tx),
	}
}

func (w *Writer) Commit() error {
	return w.tx.Commit(context.Background())
}

func (w *Writer) Rollback() error {
	return w.tx.Rollback(context.Background())
}
