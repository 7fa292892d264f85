package actions

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/domain"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/account"
	"github.com/carson-networks/finance-server/internal/storage/settlement"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

func periodRow(accountID uuid.UUID, movement sqlconfig.MovementType, status sqlconfig.TransactionStatus, value string) *transaction.Transaction {
	return &transaction.Transaction{
		ID:           uuid.Must(uuid.NewV4()),
		AccountID:    accountID,
		MovementType: movement,
		Status:       status,
		Value:        decimal.RequireFromString(value),
	}
}

func TestCreateSettlement_SumsCompletedByMovementType(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())

	mockAccounts := account.NewMockIAccountTable(t)
	mockAccounts.EXPECT().FindByID(mock.Anything, accountID, true).Return(testAccount(accountID), nil)

	mockSettlements := settlement.NewMockISettlementTable(t)
	mockSettlements.EXPECT().FindByPeriod(mock.Anything, accountID, sqlconfig.MonthMarch, int32(2024)).
		Return(nil, nil)

	rows := []*transaction.Transaction{
		periodRow(accountID, sqlconfig.MovementTypeIncome, sqlconfig.TransactionStatusCompleted, "3000.00"),
		periodRow(accountID, sqlconfig.MovementTypeExpense, sqlconfig.TransactionStatusCompleted, "1200.00"),
		periodRow(accountID, sqlconfig.MovementTypeExpense, sqlconfig.TransactionStatusCompleted, "300.00"),
		// Pending rows and other accounts' rows are excluded from the totals.
		periodRow(accountID, sqlconfig.MovementTypeExpense, sqlconfig.TransactionStatusPending, "999.00"),
		periodRow(uuid.Must(uuid.NewV4()), sqlconfig.MovementTypeIncome, sqlconfig.TransactionStatusCompleted, "500.00"),
	}
	mockTransactions := transaction.NewMockITransactionTable(t)
	mockTransactions.EXPECT().ListByPeriod(mock.Anything, sqlconfig.MonthMarch, int32(2024)).
		Return(rows, nil)

	mockSettlements.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *settlement.SettlementCreate) bool {
		return c.TotalIncome.Equal(decimal.RequireFromString("3000.00")) &&
			c.TotalExpense.Equal(decimal.RequireFromString("1500.00")) &&
			c.Balance.Equal(decimal.RequireFromString("1500.00"))
	})).RunAndReturn(func(_ context.Context, create *settlement.SettlementCreate) (*settlement.Settlement, error) {
		return &settlement.Settlement{
			ID:             uuid.Must(uuid.NewV4()),
			AccountID:      create.AccountID,
			MonthReference: create.MonthReference,
			YearReference:  create.YearReference,
			TotalIncome:    create.TotalIncome,
			TotalExpense:   create.TotalExpense,
			Balance:        create.Balance,
			CreatedAt:      time.Now(),
		}, nil
	})

	action := &CreateSettlement{AccountID: accountID, Month: time.March, Year: 2024}
	err := action.Perform(context.Background(), &storage.Writer{
		Account:     mockAccounts,
		Transaction: mockTransactions,
		Settlement:  mockSettlements,
	})

	assert.NoError(t, err)
	assert.True(t, action.Result.Balance.Equal(decimal.RequireFromString("1500.00")))
}

func TestCreateSettlement_RejectsDuplicatePeriod(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())

	mockAccounts := account.NewMockIAccountTable(t)
	mockAccounts.EXPECT().FindByID(mock.Anything, accountID, true).Return(testAccount(accountID), nil)

	mockSettlements := settlement.NewMockISettlementTable(t)
	mockSettlements.EXPECT().FindByPeriod(mock.Anything, accountID, sqlconfig.MonthMarch, int32(2024)).
		Return(&settlement.Settlement{AccountID: accountID}, nil)

	action := &CreateSettlement{AccountID: accountID, Month: time.March, Year: 2024}
	err := action.Perform(context.Background(), &storage.Writer{
		Account:    mockAccounts,
		Settlement: mockSettlements,
	})

	var exists domain.SettlementExistsError
	assert.ErrorAs(t, err, &exists)
	mockSettlements.AssertNotCalled(t, "Insert")
}

func TestCreateSettlement_AccountNotFound(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())

	mockAccounts := account.NewMockIAccountTable(t)
	mockAccounts.EXPECT().FindByID(mock.Anything, accountID, true).Return(nil, nil)

	action := &CreateSettlement{AccountID: accountID, Month: time.March, Year: 2024}
	err := action.Perform(context.Background(), &storage.Writer{Account: mockAccounts})

	var notFound domain.AccountNotFoundError
	assert.ErrorAs(t, err, &notFound)
}
