package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/domain"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// FinishTransaction performs the one-way Pending -> Completed/Canceled
// transition. The status update itself is conditional on the row still being
// pending, so two racing finishes cannot both apply.
type FinishTransaction struct {
	ID     uuid.UUID
	Status sqlconfig.TransactionStatus

	Result *transaction.Transaction
}

func (a *FinishTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
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

	updated, err := writer.Transaction.UpdateStatus(ctx, a.ID, a.Status)
	if err != nil {
		return err
	}
	if updated == nil {
		return domain.TransactionFinishedError{ID: a.ID}
	}

	a.Result = updated
	return nil
}
