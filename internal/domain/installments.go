package domain

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// SplitValue divides total into n shares that sum to total exactly. Each
// share is total/n truncated to the cent; the remainder goes to the first
// share, so a 100.00 total over 3 installments yields 33.34, 33.33, 33.33.
func SplitValue(total decimal.Decimal, n int) []decimal.Decimal {
	count := decimal.NewFromInt(int64(n))
	share := total.Div(count).RoundDown(2)
	remainder := total.Sub(share.Mul(count))

	shares := make([]decimal.Decimal, n)
	shares[0] = share.Add(remainder)
	for i := 1; i < n; i++ {
		shares[i] = share
	}
	return shares
}

// AddMonthsClamped advances a date by whole calendar months, keeping the
// day-of-month and clamping to the last day when the target month is
// shorter: 2024-01-31 plus one month is 2024-02-29.
func AddMonthsClamped(t time.Time, months int) time.Time {
	firstOfTarget := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location()).
		AddDate(0, months, 0)
	lastDay := firstOfTarget.AddDate(0, 1, -1).Day()

	day := t.Day()
	if day > lastDay {
		day = lastDay
	}
	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		0, 0, 0, 0, t.Location())
}

// ExpandInstallments derives the full installment set for a creation command
// with installments > 1. The first row is the base transaction itself. All
// rows share description, category, movement type and account; installment i
// is due i months after the anchor, starts out pending, and carries its
// 1-based sequence number plus the shared group ID.
func ExpandInstallments(base *transaction.TransactionCreate, installments int) []*transaction.TransactionCreate {
	groupID := uuid.Must(uuid.NewV4())
	shares := SplitValue(base.Value, installments)

	rows := make([]*transaction.TransactionCreate, installments)
	for i := 0; i < installments; i++ {
		row := *base
		row.Value = shares[i]
		row.DueDate = AddMonthsClamped(base.DueDate, i)
		row.Status = sqlconfig.TransactionStatusPending
		row.InstallmentNumber = int16(i + 1)
		row.InstallmentGroupID = &groupID
		rows[i] = &row
	}
	return rows
}
