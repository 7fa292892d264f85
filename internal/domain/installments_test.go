package domain

import (
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// -- SplitValue tests --

func TestSplitValue_EvenSplit(t *testing.T) {
	shares := SplitValue(decimal.RequireFromString("90.00"), 3)

	assert.Len(t, shares, 3)
	for _, share := range shares {
		assert.True(t, share.Equal(decimal.RequireFromString("30.00")))
	}
}

func TestSplitValue_RemainderOnFirstShare(t *testing.T) {
	shares := SplitValue(decimal.RequireFromString("100.00"), 3)

	assert.Len(t, shares, 3)
	assert.True(t, shares[0].Equal(decimal.RequireFromString("33.34")), "got %s", shares[0])
	assert.True(t, shares[1].Equal(decimal.RequireFromString("33.33")))
	assert.True(t, shares[2].Equal(decimal.RequireFromString("33.33")))
}

func TestSplitValue_SharesAlwaysSumToTotal(t *testing.T) {
	totals := []string{"100.00", "0.01", "999.99", "1.00", "123.45"}
	counts := []int{1, 2, 3, 7, 12}

	for _, totalStr := range totals {
		total := decimal.RequireFromString(totalStr)
		for _, n := range counts {
			shares := SplitValue(total, n)

			sum := decimal.Zero
			for _, share := range shares {
				sum = sum.Add(share)
			}
			assert.True(t, sum.Equal(total), "total %s over %d: shares sum to %s", totalStr, n, sum)
		}
	}
}

func TestSplitValue_TinyTotal(t *testing.T) {
	// 0.01 over 3 cannot be split; the whole cent lands on the first share.
	shares := SplitValue(decimal.RequireFromString("0.01"), 3)

	assert.True(t, shares[0].Equal(decimal.RequireFromString("0.01")))
	assert.True(t, shares[1].IsZero())
	assert.True(t, shares[2].IsZero())
}

// -- AddMonthsClamped tests --

func TestAddMonthsClamped_PlainAdvance(t *testing.T) {
	start := time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)

	got := AddMonthsClamped(start, 2)
	assert.Equal(t, time.Date(2024, 5, 15, 0, 0, 0, 0, time.UTC), got)
}

func TestAddMonthsClamped_ClampsToLeapFebruary(t *testing.T) {
	start := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	got := AddMonthsClamped(start, 1)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), got)
}

func TestAddMonthsClamped_ClampsToShortFebruary(t *testing.T) {
	start := time.Date(2023, 1, 31, 0, 0, 0, 0, time.UTC)

	got := AddMonthsClamped(start, 1)
	assert.Equal(t, time.Date(2023, 2, 28, 0, 0, 0, 0, time.UTC), got)
}

func TestAddMonthsClamped_DoesNotStickToClampedDay(t *testing.T) {
	// Each installment offsets from the anchor, so March gets the 31st back.
	start := time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC)

	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), AddMonthsClamped(start, 1))
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), AddMonthsClamped(start, 2))
	assert.Equal(t, time.Date(2024, 4, 30, 0, 0, 0, 0, time.UTC), AddMonthsClamped(start, 3))
}

func TestAddMonthsClamped_CrossesYearBoundary(t *testing.T) {
	start := time.Date(2024, 11, 30, 0, 0, 0, 0, time.UTC)

	got := AddMonthsClamped(start, 3)
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), got)
}

// -- ExpandInstallments tests --

func installmentBase() *transaction.TransactionCreate {
	return &transaction.TransactionCreate{
		MovementType: sqlconfig.MovementTypeExpense,
		Description:  "New couch",
		Value:        decimal.RequireFromString("100.00"),
		DueDate:      time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Category:     sqlconfig.CategoryHome,
		AccountID:    uuid.Must(uuid.NewV4()),
		Status:       sqlconfig.TransactionStatusCompleted,
	}
}

func TestExpandInstallments_RowCountAndNumbering(t *testing.T) {
	rows := ExpandInstallments(installmentBase(), 3)

	assert.Len(t, rows, 3)
	for i, row := range rows {
		assert.Equal(t, int16(i+1), row.InstallmentNumber)
	}
}

func TestExpandInstallments_SharedGroupID(t *testing.T) {
	rows := ExpandInstallments(installmentBase(), 4)

	assert.NotNil(t, rows[0].InstallmentGroupID)
	for _, row := range rows[1:] {
		assert.Equal(t, rows[0].InstallmentGroupID, row.InstallmentGroupID)
	}
}

func TestExpandInstallments_ValuesSumToTotal(t *testing.T) {
	base := installmentBase()
	rows := ExpandInstallments(base, 3)

	sum := decimal.Zero
	for _, row := range rows {
		sum = sum.Add(row.Value)
	}
	assert.True(t, sum.Equal(base.Value))
	assert.True(t, rows[0].Value.Equal(decimal.RequireFromString("33.34")))
}

func TestExpandInstallments_DueDatesAdvanceMonthly(t *testing.T) {
	rows := ExpandInstallments(installmentBase(), 3)

	assert.Equal(t, time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC), rows[0].DueDate)
	assert.Equal(t, time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC), rows[1].DueDate)
	assert.Equal(t, time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC), rows[2].DueDate)
}

func TestExpandInstallments_AllRowsStartPending(t *testing.T) {
	// Even when the base requested Completed, installment rows start pending.
	rows := ExpandInstallments(installmentBase(), 2)

	for _, row := range rows {
		assert.Equal(t, sqlconfig.TransactionStatusPending, row.Status)
	}
}

func TestExpandInstallments_SharedFieldsCarryOver(t *testing.T) {
	base := installmentBase()
	rows := ExpandInstallments(base, 3)

	for _, row := range rows {
		assert.Equal(t, base.Description, row.Description)
		assert.Equal(t, base.Category, row.Category)
		assert.Equal(t, base.MovementType, row.MovementType)
		assert.Equal(t, base.AccountID, row.AccountID)
	}
}
