package transaction

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Transaction represents a transaction record.
type Transaction struct {
	ID                 uuid.UUID                   `db:"transaction_id"`
	MovementType       sqlconfig.MovementType      `db:"movement_type"`
	Description        string                      `db:"description"`
	Value              decimal.Decimal             `db:"value"`
	DueDate            time.Time                   `db:"due_date"`
	Category           sqlconfig.Category          `db:"category"`
	AccountID          uuid.UUID                   `db:"account_id"`
	Status             sqlconfig.TransactionStatus `db:"status"`
	InstallmentNumber  int16                       `db:"installment_number"`
	InstallmentGroupID *uuid.UUID                  `db:"installment_group_id"`
	MonthReference     sqlconfig.MonthReference    `db:"month_reference"`
	YearReference      int32                       `db:"year_reference"`
	CreatedAt          time.Time                   `db:"created_at"`
	UpdatedAt          *time.Time                  `db:"updated_at"`
	DeletedAt          *time.Time                  `db:"deleted_at"`
}

// TransactionCreate is the input for creating a new transaction. The table
// assigns the ID and derives month/year reference columns from DueDate.
type TransactionCreate struct {
	MovementType       sqlconfig.MovementType
	Description        string
	Value              decimal.Decimal
	DueDate            time.Time
	Category           sqlconfig.Category
	AccountID          uuid.UUID
	Status             sqlconfig.TransactionStatus
	InstallmentNumber  int16
	InstallmentGroupID *uuid.UUID
}

// TransactionUpdate is a partial update. Nil fields are left unchanged.
type TransactionUpdate struct {
	MovementType *sqlconfig.MovementType
	Description  *string
	Value        *decimal.Decimal
	DueDate      *time.Time
	Category     *sqlconfig.Category
	AccountID    *uuid.UUID
}

// ITransactionTable defines the interface for transaction storage operations.
// Reads never return soft-deleted rows. Absence is reported as (nil, nil),
// never as an error; callers translate absence into domain errors.
//
//go:generate mockery --name ITransactionTable --output mock_ITransactionTable.go
type ITransactionTable interface {
	Insert(ctx context.Context, create *TransactionCreate) (*Transaction, error)
	FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*Transaction, error)
	List(ctx context.Context) ([]*Transaction, error)
	ListByPeriod(ctx context.Context, month sqlconfig.MonthReference, year int32) ([]*Transaction, error)
	Update(ctx context.Context, id uuid.UUID, patch *TransactionUpdate) (*Transaction, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status sqlconfig.TransactionStatus) (*Transaction, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*Transaction, error)
}
