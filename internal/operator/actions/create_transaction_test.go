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
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

func testAccount(id uuid.UUID) *account.Account {
	return &account.Account{
		ID:   id,
		Name: "Checking",
		Type: account.AccountTypeCash,
	}
}

func insertedFromCreate(create *transaction.TransactionCreate) *transaction.Transaction {
	return &transaction.Transaction{
		ID:                 uuid.Must(uuid.NewV4()),
		MovementType:       create.MovementType,
		Description:        create.Description,
		Value:              create.Value,
		DueDate:            create.DueDate,
		Category:           create.Category,
		AccountID:          create.AccountID,
		Status:             create.Status,
		InstallmentNumber:  create.InstallmentNumber,
		InstallmentGroupID: create.InstallmentGroupID,
		CreatedAt:          time.Now(),
	}
}

func TestCreateTransaction_AccountNotFound(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())

	mockAccounts := account.NewMockIAccountTable(t)
	mockAccounts.EXPECT().FindByID(mock.Anything, accountID, true).Return(nil, nil)

	action := &CreateTransaction{
		MovementType: sqlconfig.MovementTypeExpense,
		Description:  "Groceries",
		Value:        decimal.RequireFromString("10.00"),
		Category:     sqlconfig.CategoryFood,
		AccountID:    accountID,
		Status:       sqlconfig.TransactionStatusPending,
	}

	err := action.Perform(context.Background(), &storage.Writer{Account: mockAccounts})

	var notFound domain.AccountNotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, accountID, notFound.ID)
	assert.Nil(t, action.Result)
}

func TestCreateTransaction_SingleRow(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())

	mockAccounts := account.NewMockIAccountTable(t)
	mockAccounts.EXPECT().FindByID(mock.Anything, accountID, true).Return(testAccount(accountID), nil)

	mockTransactions := transaction.NewMockITransactionTable(t)
	mockTransactions.EXPECT().Insert(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, create *transaction.TransactionCreate) (*transaction.Transaction, error) {
			return insertedFromCreate(create), nil
		})

	action := &CreateTransaction{
		MovementType: sqlconfig.MovementTypeExpense,
		Description:  "Groceries",
		Value:        decimal.RequireFromString("42.50"),
		DueDate:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Category:     sqlconfig.CategoryFood,
		AccountID:    accountID,
		Status:       sqlconfig.TransactionStatusCompleted,
	}

	err := action.Perform(context.Background(), &storage.Writer{
		Account:     mockAccounts,
		Transaction: mockTransactions,
	})

	assert.NoError(t, err)
	assert.Len(t, action.Result, 1)
	assert.Equal(t, sqlconfig.TransactionStatusCompleted, action.Result[0].Status)
	assert.Equal(t, int16(0), action.Result[0].InstallmentNumber)
}

func TestCreateTransaction_InstallmentExpansion(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())

	mockAccounts := account.NewMockIAccountTable(t)
	mockAccounts.EXPECT().FindByID(mock.Anything, accountID, true).Return(testAccount(accountID), nil)

	mockTransactions := transaction.NewMockITransactionTable(t)
	mockTransactions.EXPECT().Insert(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, create *transaction.TransactionCreate) (*transaction.Transaction, error) {
			return insertedFromCreate(create), nil
		}).Times(3)

	action := &CreateTransaction{
		MovementType: sqlconfig.MovementTypeExpense,
		Description:  "New couch",
		Value:        decimal.RequireFromString("100.00"),
		DueDate:      time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
		Category:     sqlconfig.CategoryHome,
		AccountID:    accountID,
		Status:       sqlconfig.TransactionStatusPending,
		Installments: 3,
	}

	err := action.Perform(context.Background(), &storage.Writer{
		Account:     mockAccounts,
		Transaction: mockTransactions,
	})

	assert.NoError(t, err)
	assert.Len(t, action.Result, 3)

	sum := decimal.Zero
	for i, row := range action.Result {
		sum = sum.Add(row.Value)
		assert.Equal(t, int16(i+1), row.InstallmentNumber)
		assert.Equal(t, action.Result[0].InstallmentGroupID, row.InstallmentGroupID)
		assert.Equal(t, sqlconfig.TransactionStatusPending, row.Status)
	}
	assert.True(t, sum.Equal(decimal.RequireFromString("100.00")))
	assert.Equal(t, time.Date(2024, 2, 15, 0, 0, 0, 0, time.UTC), action.Result[1].DueDate)
	assert.Equal(t, time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), action.Result[2].DueDate)
}
