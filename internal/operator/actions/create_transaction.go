package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/domain"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// CreateTransaction persists a transaction and, when Installments > 1, the
// whole derived installment set. All rows land in one database transaction.
type CreateTransaction struct {
	MovementType sqlconfig.MovementType
	Description  string
	Value        decimal.Decimal
	DueDate      time.Time
	Category     sqlconfig.Category
	AccountID    uuid.UUID
	Status       sqlconfig.TransactionStatus
	Installments int16

	// Result holds every inserted row; the first is the base transaction.
	Result []*transaction.Transaction
}

func (a *CreateTransaction) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Account.FindByID(ctx, a.AccountID, true)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.AccountNotFoundError{ID: a.AccountID}
	}

	base := &transaction.TransactionCreate{
		MovementType: a.MovementType,
		Description:  a.Description,
		Value:        a.Value,
		DueDate:      a.DueDate,
		Category:     a.Category,
		AccountID:    a.AccountID,
		Status:       a.Status,
	}

	creates := []*transaction.TransactionCreate{base}
	if a.Installments > 1 {
		creates = domain.ExpandInstallments(base, int(a.Installments))
	}

	a.Result = make([]*transaction.Transaction, 0, len(creates))
	for _, create := range creates {
		row, err := writer.Transaction.Insert(ctx, create)
		if err != nil {
			return err
		}
		a.Result = append(a.Result, row)
	}

	return nil
}
