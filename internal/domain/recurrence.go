package domain

import (
	"time"

	"github.com/carson-networks/finance-server/internal/storage/recurrence"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// OccurrenceDate computes the due date a recurrence produces inside the
// given period. Monthly templates use the reference as day-of-month, clamped
// to the month's last day. Weekly templates use the reference as a weekday
// (0 = Sunday) and land on its first occurrence in the month.
func OccurrenceDate(rec *recurrence.RecurrenceTransaction, month time.Month, year int32) time.Time {
	firstOfMonth := time.Date(int(year), month, 1, 0, 0, 0, 0, time.UTC)

	switch rec.Frequency {
	case sqlconfig.FrequencyWeekly:
		weekday := time.Weekday(((rec.Reference % 7) + 7) % 7)
		offset := (int(weekday) - int(firstOfMonth.Weekday()) + 7) % 7
		return firstOfMonth.AddDate(0, 0, offset)
	default:
		lastDay := firstOfMonth.AddDate(0, 1, -1).Day()
		day := int(rec.Reference)
		if day < 1 {
			day = 1
		}
		if day > lastDay {
			day = lastDay
		}
		return time.Date(int(year), month, day, 0, 0, 0, 0, time.UTC)
	}
}

// Expandable reports whether a recurrence may generate a transaction for the
// given period. Inactive and soft-deleted templates never expand, and a
// template does not generate before its start date's period.
func Expandable(rec *recurrence.RecurrenceTransaction, month time.Month, year int32) bool {
	if !rec.IsActive || rec.DeletedAt != nil {
		return false
	}
	startYear, startMonth, _ := rec.StartDate.Date()
	if int(year) < startYear {
		return false
	}
	if int(year) == startYear && month < startMonth {
		return false
	}
	return true
}

// GeneratedCreate builds the pending transaction a recurrence produces for a
// period.
func GeneratedCreate(rec *recurrence.RecurrenceTransaction, month time.Month, year int32) *transaction.TransactionCreate {
	return &transaction.TransactionCreate{
		MovementType: rec.MovementType,
		Description:  rec.Description,
		Value:        rec.Amount,
		DueDate:      OccurrenceDate(rec, month, year),
		Category:     rec.Category,
		AccountID:    rec.AccountID,
		Status:       sqlconfig.TransactionStatusPending,
	}
}
