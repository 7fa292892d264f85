package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/domain"
	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/recurrence"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Recurrence represents a recurrence template in the service layer.
type Recurrence struct {
	ID           uuid.UUID
	AccountID    uuid.UUID
	Description  string
	Amount       decimal.Decimal
	Frequency    sqlconfig.Frequency
	Reference    int32
	Category     sqlconfig.Category
	MovementType sqlconfig.MovementType
	IsActive     bool
	StartDate    time.Time
	CreatedAt    time.Time
	UpdatedAt    *time.Time
}

// CreateRecurrence is the command for creating a recurrence template.
type CreateRecurrence struct {
	AccountID    uuid.UUID
	Description  string
	Amount       decimal.Decimal
	Frequency    sqlconfig.Frequency
	Reference    int32
	Category     sqlconfig.Category
	MovementType sqlconfig.MovementType
	StartDate    time.Time
}

// RecurrenceService handles recurrence templates and their periodic
// expansion into ledger entries.
type RecurrenceService struct {
	recurrences recurrence.IRecurrenceTable
	ops         actionProcessor
}

// NewRecurrenceService creates a new RecurrenceService.
func NewRecurrenceService(store *storage.Storage, ops actionProcessor) *RecurrenceService {
	return &RecurrenceService{recurrences: store.Recurrences, ops: ops}
}

func (s *RecurrenceService) CreateRecurrence(ctx context.Context, create CreateRecurrence) (*Recurrence, error) {
	action := &actions.CreateRecurrence{
		Create: &recurrence.RecurrenceCreate{
			AccountID:    create.AccountID,
			Description:  create.Description,
			Amount:       create.Amount,
			Frequency:    create.Frequency,
			Reference:    create.Reference,
			Category:     create.Category,
			MovementType: create.MovementType,
			StartDate:    create.StartDate,
		},
	}
	if err := s.ops.Process(ctx, action); err != nil {
		return nil, err
	}
	return recurrenceFromStorage(action.Result), nil
}

func (s *RecurrenceService) ListRecurrences(ctx context.Context) ([]Recurrence, error) {
	rows, err := s.recurrences.List(ctx)
	if err != nil {
		return nil, err
	}
	converted := make([]Recurrence, len(rows))
	for i, row := range rows {
		converted[i] = *recurrenceFromStorage(row)
	}
	return converted, nil
}

func (s *RecurrenceService) GetRecurrenceByID(ctx context.Context, id uuid.UUID) (*Recurrence, error) {
	row, err := s.recurrences.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.RecurrenceNotFoundError{ID: id}
	}
	return recurrenceFromStorage(row), nil
}

// DeleteRecurrence soft-deletes the template. Transactions it already
// generated are untouched.
func (s *RecurrenceService) DeleteRecurrence(ctx context.Context, id uuid.UUID) (*Recurrence, error) {
	row, err := s.recurrences.SoftDelete(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.RecurrenceNotFoundError{ID: id}
	}
	return recurrenceFromStorage(row), nil
}

// DeactivateRecurrence stops future expansion without deleting the template
// or any transactions it already generated.
func (s *RecurrenceService) DeactivateRecurrence(ctx context.Context, id uuid.UUID) (*Recurrence, error) {
	row, err := s.recurrences.Deactivate(ctx, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, domain.RecurrenceNotFoundError{ID: id}
	}
	return recurrenceFromStorage(row), nil
}

// GenerateForPeriod expands every active recurrence for the period. Running
// it twice for the same period produces no duplicates.
func (s *RecurrenceService) GenerateForPeriod(ctx context.Context, month time.Month, year int32) ([]Transaction, error) {
	action := &actions.GenerateRecurrences{Month: month, Year: year}
	if err := s.ops.Process(ctx, action); err != nil {
		return nil, err
	}
	return transactionsFromStorage(action.Result), nil
}

func recurrenceFromStorage(row *recurrence.RecurrenceTransaction) *Recurrence {
	return &Recurrence{
		ID:           row.ID,
		AccountID:    row.AccountID,
		Description:  row.Description,
		Amount:       row.Amount,
		Frequency:    row.Frequency,
		Reference:    row.Reference,
		Category:     row.Category,
		MovementType: row.MovementType,
		IsActive:     row.IsActive,
		StartDate:    row.StartDate,
		CreatedAt:    row.CreatedAt,
		UpdatedAt:    row.UpdatedAt,
	}
}
