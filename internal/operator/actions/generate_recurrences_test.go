package actions

import (
	"context"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/recurrence"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

func activeRecurrence() *recurrence.RecurrenceTransaction {
	return &recurrence.RecurrenceTransaction{
		ID:           uuid.Must(uuid.NewV4()),
		AccountID:    uuid.Must(uuid.NewV4()),
		Description:  "Rent",
		Amount:       decimal.RequireFromString("1200.00"),
		Frequency:    sqlconfig.FrequencyMonthly,
		Reference:    1,
		Category:     sqlconfig.CategoryHome,
		MovementType: sqlconfig.MovementTypeExpense,
		IsActive:     true,
		StartDate:    time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestGenerateRecurrences_CreatesTransactionAndLink(t *testing.T) {
	rec := activeRecurrence()

	mockRecurrences := recurrence.NewMockIRecurrenceTable(t)
	mockRecurrences.EXPECT().ListActive(mock.Anything).
		Return([]*recurrence.RecurrenceTransaction{rec}, nil)
	mockRecurrences.EXPECT().FindGenerated(mock.Anything, rec.ID, sqlconfig.MonthMarch, int32(2024)).
		Return(nil, nil)

	mockTransactions := transaction.NewMockITransactionTable(t)
	mockTransactions.EXPECT().Insert(mock.Anything, mock.MatchedBy(func(c *transaction.TransactionCreate) bool {
		return c.Description == "Rent" &&
			c.Status == sqlconfig.TransactionStatusPending &&
			c.DueDate.Equal(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	})).RunAndReturn(func(_ context.Context, create *transaction.TransactionCreate) (*transaction.Transaction, error) {
		return insertedFromCreate(create), nil
	})

	mockRecurrences.EXPECT().InsertGenerated(mock.Anything, mock.MatchedBy(func(c *recurrence.GeneratedCreate) bool {
		return c.RecurrenceTransactionID == rec.ID &&
			c.MonthReference == sqlconfig.MonthMarch &&
			c.YearReference == int32(2024)
	})).Return(&recurrence.GeneratedTransaction{}, nil)

	action := &GenerateRecurrences{Month: time.March, Year: 2024}
	err := action.Perform(context.Background(), &storage.Writer{
		Transaction: mockTransactions,
		Recurrence:  mockRecurrences,
	})

	assert.NoError(t, err)
	assert.Len(t, action.Result, 1)
	assert.Equal(t, "Rent", action.Result[0].Description)
}

func TestGenerateRecurrences_SkipsAlreadyGenerated(t *testing.T) {
	rec := activeRecurrence()

	mockRecurrences := recurrence.NewMockIRecurrenceTable(t)
	mockRecurrences.EXPECT().ListActive(mock.Anything).
		Return([]*recurrence.RecurrenceTransaction{rec}, nil)
	mockRecurrences.EXPECT().FindGenerated(mock.Anything, rec.ID, sqlconfig.MonthMarch, int32(2024)).
		Return(&recurrence.GeneratedTransaction{RecurrenceTransactionID: rec.ID}, nil)

	mockTransactions := transaction.NewMockITransactionTable(t)

	action := &GenerateRecurrences{Month: time.March, Year: 2024}
	err := action.Perform(context.Background(), &storage.Writer{
		Transaction: mockTransactions,
		Recurrence:  mockRecurrences,
	})

	assert.NoError(t, err)
	assert.Empty(t, action.Result)
	mockTransactions.AssertNotCalled(t, "Insert")
}

func TestGenerateRecurrences_SkipsBeforeStartDate(t *testing.T) {
	rec := activeRecurrence()
	rec.StartDate = time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC)

	mockRecurrences := recurrence.NewMockIRecurrenceTable(t)
	mockRecurrences.EXPECT().ListActive(mock.Anything).
		Return([]*recurrence.RecurrenceTransaction{rec}, nil)

	action := &GenerateRecurrences{Month: time.March, Year: 2024}
	err := action.Perform(context.Background(), &storage.Writer{Recurrence: mockRecurrences})

	assert.NoError(t, err)
	assert.Empty(t, action.Result)
	mockRecurrences.AssertNotCalled(t, "FindGenerated")
}
