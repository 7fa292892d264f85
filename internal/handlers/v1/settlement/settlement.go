package settlement

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/domain"
	"github.com/carson-networks/finance-server/internal/service"
)

// Settlement is the API response model for a settled period.
type Settlement struct {
	ID             string `json:"id" doc:"Settlement UUID"`
	AccountID      string `json:"accountID" doc:"Account UUID"`
	MonthReference string `json:"monthReference" doc:"Settled month"`
	YearReference  int32  `json:"yearReference" doc:"Settled year"`
	TotalIncome    string `json:"totalIncome" doc:"Sum of completed income for the period"`
	TotalExpense   string `json:"totalExpense" doc:"Sum of completed expense for the period"`
	Balance        string `json:"balance" doc:"Income minus expense"`
	CreatedAt      string `json:"createdAt" doc:"RFC3339 creation time"`
}

func settlementToAPI(stl *service.Settlement) Settlement {
	return Settlement{
		ID:             stl.ID.String(),
		AccountID:      stl.AccountID.String(),
		MonthReference: string(stl.MonthReference),
		YearReference:  stl.YearReference,
		TotalIncome:    stl.TotalIncome.String(),
		TotalExpense:   stl.TotalExpense.String(),
		Balance:        stl.Balance.String(),
		CreatedAt:      stl.CreatedAt.Format(time.RFC3339),
	}
}

func mapServiceError(err error) error {
	var exists domain.SettlementExistsError
	var accNotFound domain.AccountNotFoundError

	switch {
	case errors.As(err, &exists):
		return huma.NewError(http.StatusConflict, exists.Error())
	case errors.As(err, &accNotFound):
		return huma.NewError(http.StatusNotFound, accNotFound.Error())
	}
	return huma.NewError(http.StatusInternalServerError, "persistence failure")
}
