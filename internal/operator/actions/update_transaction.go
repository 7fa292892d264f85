package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/domain"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// UpdateTransaction applies a partial update. The row is locked before the
// precondition check so a concurrent finish cannot slip in between.
type UpdateTransaction struct {
	ID    uuid.UUID
	Patch *transaction.TransactionUpdate

	Result *transaction.Transaction
}

func (a *UpdateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
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

	updated, err := writer.Transaction.Update(ctx, a.ID, a.Patch)
	if err != nil {
		return err
	}
	if updated == nil {
		return domain.TransactionNotFoundError{ID: a.ID}
	}

	a.Result = updated
	return nil
}
