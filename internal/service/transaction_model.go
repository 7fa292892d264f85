package service

import (
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
	"github.com/carson-networks/finance-server/internal/storage/transaction"
)

// Transaction represents a transaction in the service layer.
type Transaction struct {
	ID                 uuid.UUID
	MovementType       sqlconfig.MovementType
	Description        string
	Value              decimal.Decimal
	DueDate            time.Time
	Category           sqlconfig.Category
	AccountID          uuid.UUID
	Status             sqlconfig.TransactionStatus
	InstallmentNumber  int16
	InstallmentGroupID *uuid.UUID
	CreatedAt          time.Time
	UpdatedAt          *time.Time
	DeletedAt          *time.Time
}

// CreateTransaction is the command for creating a transaction, optionally
// split into installments.
type CreateTransaction struct {
	MovementType sqlconfig.MovementType
	Description  string
	Value        decimal.Decimal
	DueDate      time.Time
	Category     sqlconfig.Category
	AccountID    uuid.UUID
	Status       sqlconfig.TransactionStatus
	Installments int16
}

// UpdateTransaction is a partial update command. Nil fields are left
// unchanged.
type UpdateTransaction struct {
	MovementType *sqlconfig.MovementType
	Description  *string
	Value        *decimal.Decimal
	DueDate      *time.Time
	Category     *sqlconfig.Category
	AccountID    *uuid.UUID
}

func transactionFromStorage(row *transaction.Transaction) *Transaction {
	return &Transaction{
		ID:                 row.ID,
		MovementType:       row.MovementType,
		Description:        row.Description,
		Value:              row.Value,
		DueDate:            row.DueDate,
		Category:           row.Category,
		AccountID:          row.AccountID,
		Status:             row.Status,
		InstallmentNumber:  row.InstallmentNumber,
		InstallmentGroupID: row.InstallmentGroupID,
		CreatedAt:          row.CreatedAt,
		UpdatedAt:          row.UpdatedAt,
		DeletedAt:          row.DeletedAt,
	}
}

func transactionsFromStorage(rows []*transaction.Transaction) []Transaction {
	converted := make([]Transaction, len(rows))
	for i, row := range rows {
		converted[i] = *transactionFromStorage(row)
	}
	return converted
}

func (u *UpdateTransaction) toStorage() *transaction.TransactionUpdate {
	return &transaction.TransactionUpdate{
		MovementType: u.MovementType,
		Description:  u.Description,
		Value:        u.Value,
		DueDate:      u.DueDate,
		Category:     u.Category,
		AccountID:    u.AccountID,
	}
}
