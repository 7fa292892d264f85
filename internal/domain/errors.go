package domain

import (
	"fmt"

	"github.com/gofrs/uuid/v5"
)

// TransactionNotFoundError signals the transaction is absent or soft-deleted.
type TransactionNotFoundError struct {
	ID uuid.UUID
}

func (e TransactionNotFoundError) Error() string {
	return fmt.Sprintf("transaction %s not found", e.ID)
}

// TransactionFinishedError signals an attempted mutation of a transaction
// whose status is terminal.
type TransactionFinishedError struct {
	ID uuid.UUID
}

func (e TransactionFinishedError) Error() string {
	return fmt.Sprintf("transaction %s has already been finished", e.ID)
}

// AccountNotFoundError signals the account is absent.
type AccountNotFoundError struct {
	ID uuid.UUID
}

func (e AccountNotFoundError) Error() string {
	return fmt.Sprintf("account %s not found", e.ID)
}

// AccountAlreadyDeletedError signals a repeated soft-delete of an account.
type AccountAlreadyDeletedError struct {
	ID uuid.UUID
}

func (e AccountAlreadyDeletedError) Error() string {
	return fmt.Sprintf("account %s has already been deleted", e.ID)
}

// RecurrenceNotFoundError signals the recurrence template is absent or
// soft-deleted.
type RecurrenceNotFoundError struct {
	ID uuid.UUID
}

func (e RecurrenceNotFoundError) Error() string {
	return fmt.Sprintf("recurrence transaction %s not found", e.ID)
}

// SettlementExistsError signals that the (account, period) pair has already
// been settled.
type SettlementExistsError struct {
	AccountID uuid.UUID
	Month     string
	Year      int32
}

func (e SettlementExistsError) Error() string {
	return fmt.Sprintf("settlement for account %s already exists for %s %d", e.AccountID, e.Month, e.Year)
}
