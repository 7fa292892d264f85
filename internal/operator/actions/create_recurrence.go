package actions

import (
	"context"

	"github.com/carson-networks/finance-server/internal/domain"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/recurrence"
)

type CreateRecurrence struct {
	Create *recurrence.RecurrenceCreate

	Result *recurrence.RecurrenceTransaction
}

func (a *CreateRecurrence) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Account.FindByID(ctx, a.Create.AccountID, false)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.AccountNotFoundError{ID: a.Create.AccountID}
	}

	row, err := writer.Recurrence.Insert(ctx, a.Create)
	if err != nil {
		return err
	}
	a.Result = row
	return nil
}
