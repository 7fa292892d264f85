package service

import (
	"context"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/domain"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// TransactionService handles the transaction lifecycle. Reads go straight to
// storage; every mutation runs as an operator action inside one database
// transaction.
type TransactionService struct {
	transactions transaction.ITransactionTable
	ops          actionProcessor
}

// NewTransactionService creates a new TransactionService.
func NewTransactionService(store *storage.Storage, ops actionProcessor) *TransactionService {
	return &TransactionService{transactions: store.Transactions, ops: ops}
}

// CreateTransaction persists the base transaction plus any derived
// installment rows and returns the base transaction.
func (s *TransactionService) CreateTransaction(ctx context.Context, create CreateTransaction) (*Transaction, error) {
	status := create.Status
	if status == "" {
		status = sqlconfig.TransactionStatusPending
	}

	action := &actions.CreateTransaction{
		MovementType: create.MovementType,
		Description:  create.Description,
		Value:        create.Value,
		DueDate:      create.DueDate,
		Category:     create.Category,
		AccountID:    create.AccountID,
		Status:       status,
		Installments: create.Installments,
	}

	if err := s.ops.Process(ctx, action); err != nil {
		return nil, err
	}
	return transactionFromStorage(action.Result[0]), nil
}

// GetTransactionByID retrieves a transaction, translating absence into the
// not-found domain error.
func (s *TransactionService) GetTransactionByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	row, err := s.transactions.FindByID(ctx, id, false)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.TransactionNotFoundError{ID: id}
	}
	return transactionFromStorage(row), nil
}

// ListTransactions returns all non-deleted transactions ordered by creation.
func (s *TransactionService) ListTransactions(ctx context.Context) ([]Transaction, error) {
	rows, err := s.transactions.List(ctx)
	if err != nil {
		return nil, err
	}
	return transactionsFromStorage(rows), nil
}

// ListTransactionsByPeriod returns the non-deleted transactions whose due
// date falls in the given month and year.
func (s *TransactionService) ListTransactionsByPeriod(ctx context.Context, month time.Month, year int32) ([]Transaction, error) {
	rows, err := s.transactions.ListByPeriod(ctx, sqlconfig.MonthReferenceFromMonth(month), year)
	if err != nil {
		return nil, err
	}
	return transactionsFromStorage(rows), nil
}

// UpdateTransactionByID applies the fields present in the patch and stamps
// updated_at. Finished transactions reject updates.
func (s *TransactionService) UpdateTransactionByID(ctx context.Context, id uuid.UUID, patch UpdateTransaction) (*Transaction, error) {
	action := &actions.UpdateTransaction{ID: id, Patch: patch.toStorage()}
	if err := s.ops.Process(ctx, action); err != nil {
		return nil, err
	}
	return transactionFromStorage(action.Result), nil
}

// DeleteTransactionByID soft-deletes a pending transaction and returns it.
func (s *TransactionService) DeleteTransactionByID(ctx context.Context, id uuid.UUID) (*Transaction, error) {
	action := &actions.DeleteTransaction{ID: id}
	if err := s.ops.Process(ctx, action); err != nil {
		return nil, err
	}
	return transactionFromStorage(action.Result), nil
}

// FinishTransaction transitions a pending transaction to Completed or
// Canceled. The transition is one-way.
func (s *TransactionService) FinishTransaction(ctx context.Context, id uuid.UUID, status sqlconfig.TransactionStatus) (*Transaction, error) {
	if !status.Finished() {
		return nil, fmt.Errorf("status %q is not a terminal status", status)
	}

	action := &actions.FinishTransaction{ID: id, Status: status}
	if err := s.ops.Process(ctx, action); err != nil {
		return nil, err
	}
	return transactionFromStorage(action.Result), nil
}
