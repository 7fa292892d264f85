package recurrence

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/domain"
	"github.com/carson-networks/finance-server/internal/service"
)

const dateLayout = "2006-01-02"

// Recurrence is the API response model for a recurrence template.
type Recurrence struct {
	ID           string `json:"id" doc:"Recurrence UUID"`
	AccountID    string `json:"accountID" doc:"Account UUID"`
	Description  string `json:"description" doc:"Description applied to generated transactions"`
	Amount       string `json:"amount" doc:"Decimal amount per occurrence"`
	Frequency    string `json:"frequency" doc:"WEEKLY or MONTHLY"`
	Reference    int32  `json:"reference" doc:"Day-of-month (monthly) or weekday (weekly, 0 = Sunday)"`
	Category     string `json:"category" doc:"Category"`
	MovementType string `json:"movementType" doc:"INCOME or EXPENSE"`
	IsActive     bool   `json:"isActive" doc:"Whether the template still expands"`
	StartDate    string `json:"startDate" doc:"First period the template applies to (YYYY-MM-DD)"`
	CreatedAt    string `json:"createdAt" doc:"RFC3339 creation time"`
}

func recurrenceToAPI(rec *service.Recurrence) Recurrence {
	return Recurrence{
		ID:           rec.ID.String(),
		AccountID:    rec.AccountID.String(),
		Description:  rec.Description,
		Amount:       rec.Amount.String(),
		Frequency:    string(rec.Frequency),
		Reference:    rec.Reference,
		Category:     string(rec.Category),
		MovementType: string(rec.MovementType),
		IsActive:     rec.IsActive,
		StartDate:    rec.StartDate.Format(dateLayout),
		CreatedAt:    rec.CreatedAt.Format(time.RFC3339),
	}
}

func mapServiceError(err error) error {
	var recNotFound domain.RecurrenceNotFoundError
	var accNotFound domain.AccountNotFoundError

	switch {
	case errors.As(err, &recNotFound):
		return huma.NewError(http.StatusNotFound, recNotFound.Error())
	case errors.As(err, &accNotFound):
		return huma.NewError(http.StatusNotFound, accNotFound.Error())
	}
	return huma.NewError(http.StatusInternalServerError, "persistence failure")
}
