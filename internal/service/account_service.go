package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/domain"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/account"
)

// Account represents an account in the service layer.
type Account struct {
	ID              uuid.UUID
	Name            string
	Type            account.AccountType
	SubType         string
	StartingBalance decimal.Decimal
	CreatedAt       time.Time
	DeletedAt       *time.Time
}

// CreateAccount is the command for creating an account.
type CreateAccount struct {
	Name            string
	Type            account.AccountType
	SubType         string
	StartingBalance decimal.Decimal
}

// AccountService handles account business logic.
type AccountService struct {
	accounts account.IAccountTable
	ops      actionProcessor
}

// NewAccountService creates a new AccountService.
func NewAccountService(store *storage.Storage, ops actionProcessor) *AccountService {
	return &AccountService{accounts: store.Accounts, ops: ops}
}

func (s *AccountService) CreateAccount(ctx context.Context, create CreateAccount) (*Account, error) {
	action := &actions.CreateAccount{
		Create: &account.AccountCreate{
			Name:            create.Name,
			Type:            create.Type,
			SubType:         create.SubType,
			StartingBalance: create.StartingBalance,
		},
	}
	if err := s.ops.Process(ctx, action); err != nil {
		return nil, err
	}
	return accountFromStorage(action.Result), nil
}

func (s *AccountService) GetAccountByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	row, err := s.accounts.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.AccountNotFoundError{ID: id}
	}
	return accountFromStorage(row), nil
}

func (s *AccountService) ListAccounts(ctx context.Context) ([]Account, error) {
	rows, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	converted := make([]Account, len(rows))
	for i, row := range rows {
		converted[i] = *accountFromStorage(row)
	}
	return converted, nil
}

// DeleteAccountByID soft-deletes an account; repeating the call reports
// already-deleted rather than absence.
func (s *AccountService) DeleteAccountByID(ctx context.Context, id uuid.UUID) (*Account, error) {
	action := &actions.DeleteAccount{ID: id}
	if err := s.ops.Process(ctx, action); err != nil {
		return nil, err
	}
	return accountFromStorage(action.Result), nil
}

func accountFromStorage(row *account.Account) *Account {
	return &Account{
		ID:              row.ID,
		Name:            row.Name,
		Type:            row.Type,
		SubType:         row.SubType,
		StartingBalance: row.StartingBalance,
		CreatedAt:       row.CreatedAt,
		DeletedAt:       row.DeletedAt,
	}
}
