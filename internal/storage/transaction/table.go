package transaction

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

var _ ITransactionTable = (*Table)(nil)

const tableName = "transactions"

// Table is the bob-backed implementation of ITransactionTable. It works
// against any bob.Executor, so the same gateway serves both pooled reads and
// transactional writes.
type Table struct {
	exec bob.Executor
}

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

func (t *Table) Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error) {
	id := uuid.Must(uuid.NewV4())
	monthRef := sqlconfig.MonthReferenceFromMonth(create.DueDate.Month())

	q := psql.Insert(
		im.Into(tableName,
			"transaction_id", "movement_type", "description", "value",
			"due_date", "category", "account_id", "status",
			"installment_number", "installment_group_id",
			"month_reference", "year_reference",
		),
		im.Values(psql.Arg(
			id, create.MovementType, create.Description, create.Value,
			create.DueDate, create.Category, create.AccountID, create.Status,
			create.InstallmentNumber, create.InstallmentGroupID,
			monthRef, int32(create.DueDate.Year()),
		)),
		im.Returning("*"),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *Table) FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*Transaction, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("*"),
		sm.From(tableName),
		sm.Where(psql.Quote("transaction_id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Transaction]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *Table) List(ctx context.Context) ([]*Transaction, error) {
	q := psql.Select(
		sm.Columns("*"),
		sm.From(tableName),
		sm.Where(psql.Quote("deleted_at").IsNull()),
		sm.OrderBy("created_at").Asc(),
		sm.OrderBy("transaction_id").Asc(),
	)
	return collect(bob.All(ctx, t.exec, q, scan.StructMapper[Transaction]()))
}

func (t *Table) ListByPeriod(ctx context.Context, month sqlconfig.MonthReference, year int32) ([]*Transaction, error) {
	q := psql.Select(
		sm.Columns("*"),
		sm.From(tableName),
		sm.Where(psql.Quote("month_reference").EQ(psql.Arg(month))),
		sm.Where(psql.Quote("year_reference").EQ(psql.Arg(year))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
		sm.OrderBy("due_date").Asc(),
		sm.OrderBy("transaction_id").Asc(),
	)
	return collect(bob.All(ctx, t.exec, q, scan.StructMapper[Transaction]()))
}

// Update applies the non-nil patch fields and stamps updated_at in a single
// statement. Returns (nil, nil) when the row is absent or soft-deleted.
func (t *Table) Update(ctx context.Context, id uuid.UUID, patch *TransactionUpdate) (*Transaction, error) {
	queryMods := []bob.Mod[*dialect.UpdateQuery]{
		um.Table(tableName),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("transaction_id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("deleted_at").IsNull()),
		um.Returning("*"),
	}
	if patch.MovementType != nil {
		queryMods = append(queryMods, um.SetCol("movement_type").ToArg(*patch.MovementType))
	}
	if patch.Description != nil {
		queryMods = append(queryMods, um.SetCol("description").ToArg(*patch.Description))
	}
	if patch.Value != nil {
		queryMods = append(queryMods, um.SetCol("value").ToArg(*patch.Value))
	}
	if patch.DueDate != nil {
		queryMods = append(queryMods,
			um.SetCol("due_date").ToArg(*patch.DueDate),
			um.SetCol("month_reference").ToArg(sqlconfig.MonthReferenceFromMonth(patch.DueDate.Month())),
			um.SetCol("year_reference").ToArg(int32(patch.DueDate.Year())),
		)
	}
	if patch.Category != nil {
		queryMods = append(queryMods, um.SetCol("category").ToArg(*patch.Category))
	}
	if patch.AccountID != nil {
		queryMods = append(queryMods, um.SetCol("account_id").ToArg(*patch.AccountID))
	}

	return one(bob.One(ctx, t.exec, psql.Update(queryMods...), scan.StructMapper[Transaction]()))
}

// UpdateStatus performs the terminal transition as a conditional update so
// two concurrent callers cannot both finish the same transaction. Returns
// (nil, nil) when no pending, non-deleted row matched.
func (t *Table) UpdateStatus(ctx context.Context, id uuid.UUID, status sqlconfig.TransactionStatus) (*Transaction, error) {
	q := psql.Update(
		um.Table(tableName),
		um.SetCol("status").ToArg(status),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("transaction_id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("status").EQ(psql.Arg(sqlconfig.TransactionStatusPending))),
		um.Where(psql.Quote("deleted_at").IsNull()),
		um.Returning("*"),
	)
	return one(bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]()))
}

// SoftDelete marks the row deleted. Repeat calls match zero rows and return
// (nil, nil); the caller decides what absence means.
func (t *Table) SoftDelete(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	q := psql.Update(
		um.Table(tableName),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.SetCol("deleted_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("transaction_id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("deleted_at").IsNull()),
		um.Returning("*"),
	)
	return one(bob.One(ctx, t.exec, q, scan.StructMapper[Transaction]()))
}

func one(row Transaction, err error) (*Transaction, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func collect(rows []Transaction, err error) ([]*Transaction, error) {
	if err != nil {
		return nil, err
	}
	result := make([]*Transaction, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}
