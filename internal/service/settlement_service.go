package service

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/operator/actions"
	"github.com/carson-networks/finance-server/internal/storage"
	"github.com/carson-networks/finance-server/internal/storage/settlement"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// Settlement represents a settled period in the service layer.
type Settlement struct {
	ID             uuid.UUID
	AccountID      uuid.UUID
	MonthReference sqlconfig.MonthReference
	YearReference  int32
	TotalIncome    decimal.Decimal
	TotalExpense   decimal.Decimal
	Balance        decimal.Decimal
	CreatedAt      time.Time
}

// SettlementService handles period close-out.
type SettlementService struct {
	settlements settlement.ISettlementTable
	ops         actionProcessor
}

// NewSettlementService creates a new SettlementService.
func NewSettlementService(store *storage.Storage, ops actionProcessor) *SettlementService {
	return &SettlementService{settlements: store.Settlements, ops: ops}
}

// CreateSettlement computes and persists the close-out of one period for an
// account. Settled periods cannot be settled again.
func (s *SettlementService) CreateSettlement(ctx context.Context, accountID uuid.UUID, month time.Month, year int32) (*Settlement, error) {
	action := &actions.CreateSettlement{AccountID: accountID, Month: month, Year: year}
	if err := s.ops.Process(ctx, action); err != nil {
		return nil, err
	}
	return settlementFromStorage(action.Result), nil
}

func (s *SettlementService) ListSettlements(ctx context.Context) ([]Settlement, error) {
	rows, err := s.settlements.List(ctx)
	if err != nil {
		return nil, err
	}
	converted := make([]Settlement, len(rows))
	for i, row := range rows {
		converted[i] = *settlementFromStorage(row)
	}
	return converted, nil
}

func settlementFromStorage(row *settlement.Settlement) *Settlement {
	return &Settlement{
		ID:             row.ID,
		AccountID:      row.AccountID,
		MonthReference: row.MonthReference,
		YearReference:  row.YearReference,
		TotalIncome:    row.TotalIncome,
		TotalExpense:   row.TotalExpense,
		Balance:        row.Balance,
		CreatedAt:      row.CreatedAt,
	}
}
