package actions

import (
	"context"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/account"
)

type CreateAccount struct {
	Create *account.AccountCreate

	Result *account.Account
}

func (a *CreateAccount) Perform(ctx context.Context, writer *storage.Writer) error {
	row, err := writer.Account.Insert(ctx, a.Create)
	if err != nil {
		return err
	}
	a.Result = row
	return nil
}
