package recurrence

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// RecurrenceTransaction is a template for a repeating obligation. Each period
// it is active it may generate one transaction.
type RecurrenceTransaction struct {
	ID           uuid.UUID              `db:"recurrence_transaction_id"`
	AccountID    uuid.UUID              `db:"account_id"`
	Description  string                 `db:"description"`
	Amount       decimal.Decimal        `db:"amount"`
	Frequency    sqlconfig.Frequency    `db:"frequency"`
	Reference    int32                  `db:"reference"`
	Category     sqlconfig.Category     `db:"category"`
	MovementType sqlconfig.MovementType `db:"movement_type"`
	IsActive     bool                   `db:"is_active"`
	StartDate    time.Time              `db:"start_date"`
	CreatedAt    time.Time              `db:"created_at"`
	UpdatedAt    *time.Time             `db:"updated_at"`
	DeletedAt    *time.Time             `db:"deleted_at"`
}

// GeneratedTransaction links a recurrence to the transaction it produced for
// one period. Its lifetime is independent of the transaction it points to.
type GeneratedTransaction struct {
	ID                      int32                    `db:"id"`
	RecurrenceTransactionID uuid.UUID                `db:"recurrence_transaction_id"`
	TransactionID           uuid.UUID                `db:"transaction_id"`
	MonthReference          sqlconfig.MonthReference `db:"month_reference"`
	YearReference           int32                    `db:"year_reference"`
	CreatedAt               time.Time                `db:"created_at"`
	DeletedAt               *time.Time               `db:"deleted_at"`
}

// RecurrenceCreate is the input for creating a new recurrence template.
type RecurrenceCreate struct {
	AccountID    uuid.UUID
	Description  string
	Amount       decimal.Decimal
	Frequency    sqlconfig.Frequency
	Reference    int32
	Category     sqlconfig.Category
	MovementType sqlconfig.MovementType
	StartDate    time.Time
}

// GeneratedCreate is the input for recording a generation event.
type GeneratedCreate struct {
	RecurrenceTransactionID uuid.UUID
	TransactionID           uuid.UUID
	MonthReference          sqlconfig.MonthReference
	YearReference           int32
}

// IRecurrenceTable defines the interface for recurrence storage operations.
// Reads never return soft-deleted rows; absence is (nil, nil).
//
//go:generate mockery --name IRecurrenceTable --output mock_IRecurrenceTable.go
type IRecurrenceTable interface {
	Insert(ctx context.Context, create *RecurrenceCreate) (*RecurrenceTransaction, error)
	FindByID(ctx context.Context, id uuid.UUID) (*RecurrenceTransaction, error)
	List(ctx context.Context) ([]*RecurrenceTransaction, error)
	ListActive(ctx context.Context) ([]*RecurrenceTransaction, error)
	Deactivate(ctx context.Context, id uuid.UUID) (*RecurrenceTransaction, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*RecurrenceTransaction, error)
	FindGenerated(ctx context.Context, recurrenceID uuid.UUID, month sqlconfig.MonthReference, year int32) (*GeneratedTransaction, error)
	InsertGenerated(ctx context.Context, create *GeneratedCreate) (*GeneratedTransaction, error)
	MarkGeneratedByTransaction(ctx context.Context, transactionID uuid.UUID) error
}
