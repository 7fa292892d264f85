package actions

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/domain"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/account"
)

// DeleteAccount soft-deletes an account. A repeated delete is reported as
// already-deleted, not as absence.
type DeleteAccount struct {
	ID uuid.UUID

	Result *account.Account
}

func (a *DeleteAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	deleted, err := writer.Account.SoftDelete(ctx, a.ID)
	if err != nil {
		return err
	}
	if deleted != nil {
		a.Result = deleted
		return nil
	}

	found, deletedAt, err := writer.Account.FindDeletedAt(ctx, a.ID)
	if err != nil {
		return err
	}
	if found && deletedAt != nil {
		return domain.AccountAlreadyDeletedError{ID: a.ID}
	}
	return domain.AccountNotFoundError{ID: a.ID}
}
