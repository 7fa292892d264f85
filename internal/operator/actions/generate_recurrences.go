package actions

import (
	"context"
	"time"

	"github.com/carson-networks/finance-server/internal/domain"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/recurrence"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// GenerateRecurrences expands every active recurrence for one period. A
// recurrence that already has a generated-transaction link for the period is
// skipped, so re-running generation is a no-op rather than a duplicate.
type GenerateRecurrences struct {
	Month time.Month
	Year  int32

	// Result holds the transactions created by this run only.
	Result []*transaction.Transaction
}

func (a *GenerateRecurrences) Perform(ctx context.Context, writer *storage.Writer) error {
	recurrences, err := writer.Recurrence.ListActive(ctx)
	if err != nil {
		return err
	}

	monthRef := sqlconfig.MonthReferenceFromMonth(a.Month)
	a.Result = nil

	for _, rec := range recurrences {
		if !domain.Expandable(rec, a.Month, a.Year) {
			continue
		}

		existing, err := writer.Recurrence.FindGenerated(ctx, rec.ID, monthRef, a.Year)
		if err != nil {
			return err
		}
		if existing != nil {
			continue
		}

		row, err := writer.Transaction.Insert(ctx, domain.GeneratedCreate(rec, a.Month, a.Year))
		if err != nil {
			return err
		}

		_, err = writer.Recurrence.InsertGenerated(ctx, &recurrence.GeneratedCreate{
			RecurrenceTransactionID: rec.ID,
			TransactionID:           row.ID,
			MonthReference:          monthRef,
			YearReference:           a.Year,
		})
		if err != nil {
			return err
		}

		a.Result = append(a.Result, row)
	}

	return nil
}
