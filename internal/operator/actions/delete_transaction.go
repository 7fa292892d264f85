package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/domain"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// DeleteTransaction soft-deletes a pending transaction and marks any
// generated-transaction links pointing at it. Finished transactions are
// immutable, including for deletion.
type DeleteTransaction struct {
	ID uuid.UUID

	Result *transaction.Transaction
}

func (a *DeleteTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	current, err := writer.Transaction.FindByID(ctx, a.ID, true)
	if err != nil {
		return err
	}
	if current == nil {
		return domain.TransactionNotFoundError{ID: a.ID}
	}
	if current.Status.Finished() {
		return domain.TransactionFinishedError{ID: a.ID}
	}

	deleted, err := writer.Transaction.SoftDelete(ctx, a.ID)
	if err != nil {
		return err
	}
	if deleted == nil {
		return domain.TransactionNotFoundError{ID: a.ID}
	}

	if err := writer.Recurrence.MarkGeneratedByTransaction(ctx, a.ID); err != nil {
		return err
	}

	a.Result = deleted
	return nil
}
