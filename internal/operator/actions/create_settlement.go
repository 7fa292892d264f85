package actions

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/domain"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/settlement"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// CreateSettlement closes out a period for an account by summing its
// completed transactions in that period. One settlement per (account,
// period); repeats are rejected.
type CreateSettlement struct {
	AccountID uuid.UUID
	Month     time.Month
	Year      int32

	Result *settlement.Settlement
}

func (a *CreateSettlement) Perform(ctx context.Context, writer *storage.Writer) error {
	account, err := writer.Account.FindByID(ctx, a.AccountID, true)
	if err != nil {
		return err
	}
	if account == nil {
		return domain.AccountNotFoundError{ID: a.AccountID}
	}

	monthRef := sqlconfig.MonthReferenceFromMonth(a.Month)

	existing, err := writer.Settlement.FindByPeriod(ctx, a.AccountID, monthRef, a.Year)
	if err != nil {
		return err
	}
	if existing != nil {
		return domain.SettlementExistsError{
			AccountID: a.AccountID,
			Month:     string(monthRef),
			Year:      a.Year,
		}
	}

	rows, err := writer.Transaction.ListByPeriod(ctx, monthRef, a.Year)
	if err != nil {
		return err
	}

	income := decimal.Zero
	expense := decimal.Zero
	for _, row := range rows {
		if row.AccountID != a.AccountID || row.Status != sqlconfig.TransactionStatusCompleted {
			continue
		}
		if row.MovementType == sqlconfig.MovementTypeIncome {
			income = income.Add(row.Value)
		} else {
			expense = expense.Add(row.Value)
		}
	}

	created, err := writer.Settlement.Insert(ctx, &settlement.SettlementCreate{
		AccountID:      a.AccountID,
		MonthReference: monthRef,
		YearReference:  a.Year,
		TotalIncome:    income,
		TotalExpense:   expense,
		Balance:        income.Sub(expense),
	})
	if err != nil {
		return err
	}

	a.Result = created
	return nil
}
