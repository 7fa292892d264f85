package actions

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/domain"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

func pendingTransaction(id uuid.UUID) *transaction.Transaction {
	return &transaction.Transaction{
		ID:     id,
		Status: sqlconfig.TransactionStatusPending,
	}
}

func TestFinishTransaction_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	completed := &transaction.Transaction{ID: id, Status: sqlconfig.TransactionStatusCompleted}

	mockTransactions := transaction.NewMockITransactionTable(t)
	mockTransactions.EXPECT().FindByID(mock.Anything, id, true).Return(pendingTransaction(id), nil)
	mockTransactions.EXPECT().UpdateStatus(mock.Anything, id, sqlconfig.TransactionStatusCompleted).
		Return(completed, nil)

	action := &FinishTransaction{ID: id, Status: sqlconfig.TransactionStatusCompleted}
	err := action.Perform(context.Background(), &storage.Writer{Transaction: mockTransactions})

	assert.NoError(t, err)
	assert.Equal(t, sqlconfig.TransactionStatusCompleted, action.Result.Status)
}

func TestFinishTransaction_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockTransactions := transaction.NewMockITransactionTable(t)
	mockTransactions.EXPECT().FindByID(mock.Anything, id, true).Return(nil, nil)

	action := &FinishTransaction{ID: id, Status: sqlconfig.TransactionStatusCompleted}
	err := action.Perform(context.Background(), &storage.Writer{Transaction: mockTransactions})

	var notFound domain.TransactionNotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestFinishTransaction_AlreadyFinished(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	canceled := &transaction.Transaction{ID: id, Status: sqlconfig.TransactionStatusCanceled}

	mockTransactions := transaction.NewMockITransactionTable(t)
	mockTransactions.EXPECT().FindByID(mock.Anything, id, true).Return(canceled, nil)

	action := &FinishTransaction{ID: id, Status: sqlconfig.TransactionStatusCompleted}
	err := action.Perform(context.Background(), &storage.Writer{Transaction: mockTransactions})

	var finishedErr domain.TransactionFinishedError
	assert.ErrorAs(t, err, &finishedErr)
	assert.Equal(t, id, finishedErr.ID)
}

func TestFinishTransaction_LostRaceReportsFinished(t *testing.T) {
	// The conditional update returns no row when another writer finished the
	// transaction between the read and the write.
	id := uuid.Must(uuid.NewV4())

	mockTransactions := transaction.NewMockITransactionTable(t)
	mockTransactions.EXPECT().FindByID(mock.Anything, id, true).Return(pendingTransaction(id), nil)
	mockTransactions.EXPECT().UpdateStatus(mock.Anything, id, sqlconfig.TransactionStatusCanceled).
		Return(nil, nil)

	action := &FinishTransaction{ID: id, Status: sqlconfig.TransactionStatusCanceled}
	err := action.Perform(context.Background(), &storage.Writer{Transaction: mockTransactions})

	var finishedErr domain.TransactionFinishedError
	assert.ErrorAs(t, err, &finishedErr)
}
