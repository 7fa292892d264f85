package settlement

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Settlement closes out a period for an account. Immutable after creation.
type Settlement struct {
	ID             uuid.UUID                `db:"settlement_id"`
	AccountID      uuid.UUID                `db:"account_id"`
	MonthReference sqlconfig.MonthReference `db:"month_reference"`
	YearReference  int32                    `db:"year_reference"`
	TotalIncome    decimal.Decimal          `db:"total_income"`
	TotalExpense   decimal.Decimal          `db:"total_expense"`
	Balance        decimal.Decimal          `db:"balance"`
	CreatedAt      time.Time                `db:"created_at"`
	DeletedAt      *time.Time               `db:"deleted_at"`
}

// SettlementCreate is the input for persisting a computed settlement.
type SettlementCreate struct {
	AccountID      uuid.UUID
	MonthReference sqlconfig.MonthReference
	YearReference  int32
	TotalIncome    decimal.Decimal
	TotalExpense   decimal.Decimal
	Balance        decimal.Decimal
}

// ISettlementTable defines the interface for settlement storage operations.
// Reads never return soft-deleted rows; absence is (nil, nil).
//
//go:generate mockery --name ISettlementTable --output mock_ISettlementTable.go
type ISettlementTable interface {
	Insert(ctx context.Context, create *SettlementCreate) (*Settlement, error)
	List(ctx context.Context) ([]*Settlement, error)
	FindByPeriod(ctx context.Context, accountID uuid.UUID, month sqlconfig.MonthReference, year int32) (*Settlement, error)
}
