package service

import (
	"context"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
)

// actionProcessor runs an action inside one database transaction and blocks
// until it has committed or rolled back.
type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

// Service holds all business logic services.
type Service struct {
	Transaction *TransactionService
	Account     *AccountService
	Recurrence  *RecurrenceService
	Settlement  *SettlementService
}

// NewService creates a new Service with the given storage and operator.
func NewService(store *storage.Storage, ops actionProcessor) *Service {
	return &Service{
		Transaction: NewTransactionService(store, ops),
		Account:     NewAccountService(store, ops),
		Recurrence:  NewRecurrenceService(store, ops),
		Settlement:  NewSettlementService(store, ops),
	}
}
