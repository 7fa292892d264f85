package settlement

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

var _ ISettlementTable = (*Table)(nil)

const tableName = "settlements"

// Table is the bob-backed implementation of ISettlementTable.
type Table struct {
	exec bob.Executor
}

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

func (t *Table) Insert(ctx context.Context, create *SettlementCreate) (*Settlement, error) {
	id := uuid.Must(uuid.NewV4())

	q := psql.Insert(
		im.Into(tableName,
			"settlement_id", "account_id", "month_reference", "year_reference",
			"total_income", "total_expense", "balance",
		),
		im.Values(psql.Arg(
			id, create.AccountID, create.MonthReference, create.YearReference,
			create.TotalIncome, create.TotalExpense, create.Balance,
		)),
		im.Returning("*"),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Settlement]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *Table) List(ctx context.Context) ([]*Settlement, error) {
	q := psql.Select(
		sm.Columns("*"),
		sm.From(tableName),
		sm.Where(psql.Quote("deleted_at").IsNull()),
		sm.OrderBy("year_reference").Asc(),
		sm.OrderBy("month_reference").Asc(),
		sm.OrderBy("settlement_id").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[Settlement]())
	if err != nil {
		return nil, err
	}
	result := make([]*Settlement, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (t *Table) FindByPeriod(ctx context.Context, accountID uuid.UUID, month sqlconfig.MonthReference, year int32) (*Settlement, error) {
	q := psql.Select(
		sm.Columns("*"),
		sm.From(tableName),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(accountID))),
		sm.Where(psql.Quote("month_reference").EQ(psql.Arg(month))),
		sm.Where(psql.Quote("year_reference").EQ(psql.Arg(year))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Settlement]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}
