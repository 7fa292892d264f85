package account

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
)

// AccountType classifies an account. Stored as a smallint.
type AccountType int16

const (
	AccountTypeCash AccountType = iota
	AccountTypeCreditCards
	AccountTypeInvestments
	AccountTypeLoans
	AccountTypeAssets
)

// Account represents an account record.
type Account struct {
	ID              uuid.UUID       `db:"account_id"`
	Name            string          `db:"name"`
	Type            AccountType     `db:"account_type"`
	SubType         string          `db:"sub_type"`
	StartingBalance decimal.Decimal `db:"starting_balance"`
	CreatedAt       time.Time       `db:"created_at"`
	UpdatedAt       *time.Time      `db:"updated_at"`
	DeletedAt       *time.Time      `db:"deleted_at"`
}

// AccountCreate is the input for creating a new account.
type AccountCreate struct {
	Name            string
	Type            AccountType
	SubType         string
	StartingBalance decimal.Decimal
}

// IAccountTable defines the interface for account storage operations.
// Reads never return soft-deleted rows; absence is (nil, nil).
//
//go:generate mockery --name IAccountTable --output mock_IAccountTable.go
type IAccountTable interface {
	Insert(ctx context.Context, create *AccountCreate) (*Account, error)
	FindByID(ctx context.Context, id uuid.UUID, forUpdate bool) (*Account, error)
	List(ctx context.Context) ([]*Account, error)
	SoftDelete(ctx context.Context, id uuid.UUID) (*Account, error)
	// FindDeletedAt looks the row up regardless of deletion state so the
	// orchestrator can tell "never existed" apart from "already deleted".
	FindDeletedAt(ctx context.Context, id uuid.UUID) (found bool, deletedAt *time.Time, err error)
}
