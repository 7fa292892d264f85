package recurrence

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

var _ IRecurrenceTable = (*Table)(nil)

const (
	tableName          = "recurrence_transactions"
	generatedTableName = "generated_transactions"
)

// Table is the bob-backed implementation of IRecurrenceTable.
type Table struct {
	exec bob.Executor
}

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

func (t *Table) Insert(ctx context.Context, create *RecurrenceCreate) (*RecurrenceTransaction, error) {
	id := uuid.Must(uuid.NewV4())

	q := psql.Insert(
		im.Into(tableName,
			"recurrence_transaction_id", "account_id", "description", "amount",
			"frequency", "reference", "category", "movement_type",
			"is_active", "start_date",
		),
		im.Values(psql.Arg(
			id, create.AccountID, create.Description, create.Amount,
			create.Frequency, create.Reference, create.Category,
			create.MovementType, true, create.StartDate,
		)),
		im.Returning("*"),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[RecurrenceTransaction]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *Table) FindByID(ctx context.Context, id uuid.UUID) (*RecurrenceTransaction, error) {
	q := psql.Select(
		sm.Columns("*"),
		sm.From(tableName),
		sm.Where(psql.Quote("recurrence_transaction_id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
	)
	return one(bob.One(ctx, t.exec, q, scan.StructMapper[RecurrenceTransaction]()))
}

func (t *Table) List(ctx context.Context) ([]*RecurrenceTransaction, error) {
	q := psql.Select(
		sm.Columns("*"),
		sm.From(tableName),
		sm.Where(psql.Quote("deleted_at").IsNull()),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("recurrence_transaction_id").Asc(),
	)
	return collect(bob.All(ctx, t.exec, q, scan.StructMapper[RecurrenceTransaction]()))
}

// ListActive returns recurrences eligible for expansion. Soft-deleted rows
// are excluded by the same guard as every other read, so a deleted
// recurrence behaves exactly like an inactive one.
func (t *Table) ListActive(ctx context.Context) ([]*RecurrenceTransaction, error) {
	q := psql.Select(
		sm.Columns("*"),
		sm.From(tableName),
		sm.Where(psql.Quote("is_active").EQ(psql.Arg(true))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("recurrence_transaction_id").Asc(),
	)
	return collect(bob.All(ctx, t.exec, q, scan.StructMapper[RecurrenceTransaction]()))
}

func (t *Table) Deactivate(ctx context.Context, id uuid.UUID) (*RecurrenceTransaction, error) {
	q := psql.Update(
		um.Table(tableName),
		um.SetCol("is_active").ToArg(false),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("recurrence_transaction_id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("deleted_at").IsNull()),
		um.Returning("*"),
	)
	return one(bob.One(ctx, t.exec, q, scan.StructMapper[RecurrenceTransaction]()))
}

func (t *Table) SoftDelete(ctx context.Context, id uuid.UUID) (*RecurrenceTransaction, error) {
	q := psql.Update(
		um.Table(tableName),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.SetCol("deleted_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("recurrence_transaction_id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("deleted_at").IsNull()),
		um.Returning("*"),
	)
	return one(bob.One(ctx, t.exec, q, scan.StructMapper[RecurrenceTransaction]()))
}

func (t *Table) FindGenerated(ctx context.Context, recurrenceID uuid.UUID, month sqlconfig.MonthReference, year int32) (*GeneratedTransaction, error) {
	q := psql.Select(
		sm.Columns("*"),
		sm.From(generatedTableName),
		sm.Where(psql.Quote("recurrence_transaction_id").EQ(psql.Arg(recurrenceID))),
		sm.Where(psql.Quote("month_reference").EQ(psql.Arg(month))),
		sm.Where(psql.Quote("year_reference").EQ(psql.Arg(year))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[GeneratedTransaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *Table) InsertGenerated(ctx context.Context, create *GeneratedCreate) (*GeneratedTransaction, error) {
	q := psql.Insert(
		im.Into(generatedTableName,
			"recurrence_transaction_id", "transaction_id",
			"month_reference", "year_reference",
		),
		im.Values(psql.Arg(
			create.RecurrenceTransactionID, create.TransactionID,
			create.MonthReference, create.YearReference,
		)),
		im.Returning("*"),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[GeneratedTransaction]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

// MarkGeneratedByTransaction marks link records pointing at a deleted
// transaction. The link row itself survives; it is a weak reference.
func (t *Table) MarkGeneratedByTransaction(ctx context.Context, transactionID uuid.UUID) error {
	q := psql.Update(
		um.Table(generatedTableName),
		um.SetCol("deleted_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("transaction_id").EQ(psql.Arg(transactionID))),
		um.Where(psql.Quote("deleted_at").IsNull()),
	)
	_, err := bob.Exec(ctx, t.exec, q)
	return err
}

func one(row RecurrenceTransaction, err error) (*RecurrenceTransaction, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func collect(rows []RecurrenceTransaction, err error) ([]*RecurrenceTransaction, error) {
	if err != nil {
		return nil, err
	}
	result := make([]*RecurrenceTransaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
