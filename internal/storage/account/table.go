package account

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/bob/dialect/psql/um"
	"github.com/stephenafamo/scan"
)

var _ IAccountTable = (*Table)(nil)

const tableName = "accounts"

// Table is the bob-backed implementation of IAccountTable.
type Table struct {
	exec bob.Executor
}

func NewTable(exec bob.Executor) *Table {
	return &Table{exec: exec}
}

func (t *Table) Insert(ctx context.Context, create *AccountCreate) (*Account, error) {
	id := uuid.Must(uuid.NewV4())

	q := psql.Insert(
		im.Into(tableName,
			"account_id", "name", "account_type", "sub_type", "starting_balance",
		),
		im.Values(psql.Arg(
			id, create.Name, create.Type, create.SubType, create.StartingBalance,
		)),
		im.Returning("*"),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *Table) FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*Account, error) {
	queryMods := []bob.Mod[*dialect.SelectQuery]{
		sm.Columns("*"),
		sm.From(tableName),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(id))),
		sm.Where(psql.Quote("deleted_at").IsNull()),
	}
	if forUpdate {
		queryMods = append(queryMods, sm.ForUpdate())
	}

	row, err := bob.One(ctx, t.exec, psql.Select(queryMods...), scan.StructMapper[Account]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *Table) List(ctx context.Context) ([]*Account, error) {
	q := psql.Select(
		sm.Columns("*"),
		sm.From(tableName),
		sm.Where(psql.Quote("deleted_at").IsNull()),
		sm.OrderBy("name").Asc(),
		sm.OrderBy("account_id").Asc(),
	)
	rows, err := bob.All(ctx, t.exec, q, scan.StructMapper[Account]())
	if err != nil {
		return nil, err
	}
	result := make([]*Account, len(rows))
	for i := range rows {
		result[i] = &rows[i]
	}
	return result, nil
}

func (t *Table) SoftDelete(ctx context.Context, id uuid.UUID) (*Account, error) {
	q := psql.Update(
		um.Table(tableName),
		um.SetCol("updated_at").To(psql.Raw("now()")),
		um.SetCol("deleted_at").To(psql.Raw("now()")),
		um.Where(psql.Quote("account_id").EQ(psql.Arg(id))),
		um.Where(psql.Quote("deleted_at").IsNull()),
		um.Returning("*"),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[Account]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &row, nil
}

func (t *Table) FindDeletedAt(ctx context.Context, id uuid.UUID) (bool, *time.Time, error) {
	type deletion struct {
		DeletedAt *time.Time `db:"deleted_at"`
	}

	q := psql.Select(
		sm.Columns("deleted_at"),
		sm.From(tableName),
		sm.Where(psql.Quote("account_id").EQ(psql.Arg(id))),
	)
	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[deletion]())
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil, nil
	}
	if err != nil {
		return false, nil, err
	}
	return true, row.DeletedAt, nil
}
