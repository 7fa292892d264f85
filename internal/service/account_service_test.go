package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/domain"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/account"
)

func newTestAccountService(t *testing.T) (*AccountService, *account.MockIAccountTable, *mockActionProcessor) {
	t.Helper()
	mockTable := account.NewMockIAccountTable(t)
	mockOps := new(mockActionProcessor)
	store := &storage.Storage{Accounts: mockTable}
	return NewAccountService(store, mockOps), mockTable, mockOps
}

func makeStorageAccount() *account.Account {
	return &account.Account{
		ID:              uuid.Must(uuid.NewV4()),
		Name:            "Checking",
		Type:            account.AccountTypeCash,
		SubType:         "checking",
		StartingBalance: decimal.RequireFromString("250.00"),
		CreatedAt:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestCreateAccount_Success(t *testing.T) {
	svc, _, mockOps := newTestAccountService(t)

	inserted := makeStorageAccount()

	mockOps.On("Process", mock.Anything, mock.MatchedBy(func(a actions.IAction) bool {
		create, ok := a.(*actions.CreateAccount)
		return ok && create.Create.Name == "Checking" &&
			create.Create.StartingBalance.Equal(decimal.RequireFromString("250.00"))
	})).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.CreateAccount).Result = inserted
	}).Return(nil)

	got, err := svc.CreateAccount(context.Background(), CreateAccount{
		Name:            "Checking",
		Type:            account.AccountTypeCash,
		SubType:         "checking",
		StartingBalance: decimal.RequireFromString("250.00"),
	})

	assert.NoError(t, err)
	assert.Equal(t, inserted.ID, got.ID)
	mockOps.AssertExpectations(t)
}

func TestGetAccountByID_NotFound(t *testing.T) {
	svc, mockTable, _ := newTestAccountService(t)

	id := uuid.Must(uuid.NewV4())
	mockTable.EXPECT().FindByID(mock.Anything, id, false).Return(nil, nil)

	got, err := svc.GetAccountByID(context.Background(), id)

	assert.Nil(t, got)
	var notFound domain.AccountNotFoundError
	assert.ErrorAs(t, err, &notFound)
	assert.Equal(t, id, notFound.ID)
}

func TestListAccounts_MapsRows(t *testing.T) {
	svc, mockTable, _ := newTestAccountService(t)

	rows := []*account.Account{makeStorageAccount(), makeStorageAccount()}
	mockTable.EXPECT().List(mock.Anything).Return(rows, nil)

	got, err := svc.ListAccounts(context.Background())

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, rows[0].ID, got[0].ID)
	assert.Equal(t, rows[0].Name, got[0].Name)
}

func TestListAccounts_StorageError(t *testing.T) {
	svc, mockTable, _ := newTestAccountService(t)

	mockTable.EXPECT().List(mock.Anything).Return(nil, errors.New("database unavailable"))

	got, err := svc.ListAccounts(context.Background())

	assert.Error(t, err)
	assert.Nil(t, got)
}

func TestDeleteAccountByID_AlreadyDeleted(t *testing.T) {
	svc, _, mockOps := newTestAccountService(t)

	id := uuid.Must(uuid.NewV4())
	mockOps.On("Process", mock.Anything, mock.Anything).
		Return(domain.AccountAlreadyDeletedError{ID: id})

	got, err := svc.DeleteAccountByID(context.Background(), id)

	assert.Nil(t, got)
	var alreadyDeleted domain.AccountAlreadyDeletedError
	assert.ErrorAs(t, err, &alreadyDeleted)
}

func TestDeleteAccountByID_Success(t *testing.T) {
	svc, _, mockOps := newTestAccountService(t)

	deleted := makeStorageAccount()
	now := time.Now()
	deleted.DeletedAt = &now

	mockOps.On("Process", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*actions.DeleteAccount).Result = deleted
	}).Return(nil)

	got, err := svc.DeleteAccountByID(context.Background(), deleted.ID)

	assert.NoError(t, err)
	assert.NotNil(t, got.DeletedAt)
}
