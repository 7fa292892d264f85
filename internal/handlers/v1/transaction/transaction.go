package transaction

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/domain"
	"github.com/carson-networks/finance-server/internal/service"
)

const dateLayout = "2006-01-02"

// Transaction is the API response model for a transaction.
// It is used only for responses, not for request bodies.
type Transaction struct {
	ID                 string `json:"id" doc:"Transaction UUID"`
	MovementType       string `json:"movementType" doc:"INCOME or EXPENSE"`
	Description        string `json:"description" doc:"Description of the transaction"`
	Value              string `json:"value" doc:"Decimal value"`
	DueDate            string `json:"dueDate" doc:"Due date (YYYY-MM-DD)"`
	Category           string `json:"category" doc:"Category"`
	AccountID          string `json:"accountID" doc:"Account UUID"`
	Status             string `json:"status" doc:"PENDING, COMPLETED or CANCELED"`
	InstallmentNumber  int16  `json:"installmentNumber,omitempty" doc:"1-based installment sequence number, 0 when not part of a plan"`
	InstallmentGroupID string `json:"installmentGroupID,omitempty" doc:"Shared UUID of the installment plan"`
	CreatedAt          string `json:"createdAt" doc:"RFC3339 creation time"`
	UpdatedAt          string `json:"updatedAt,omitempty" doc:"RFC3339 last update time"`
}

func transactionToAPI(tx *service.Transaction) Transaction {
	converted := Transaction{
		ID:                tx.ID.String(),
		MovementType:      string(tx.MovementType),
		Description:       tx.Description,
		Value:             tx.Value.String(),
		DueDate:           tx.DueDate.Format(dateLayout),
		Category:          string(tx.Category),
		AccountID:         tx.AccountID.String(),
		Status:            string(tx.Status),
		InstallmentNumber: tx.InstallmentNumber,
		CreatedAt:         tx.CreatedAt.Format(time.RFC3339),
	}
	if tx.InstallmentGroupID != nil {
		converted.InstallmentGroupID = tx.InstallmentGroupID.String()
	}
	if tx.UpdatedAt != nil {
		converted.UpdatedAt = tx.UpdatedAt.Format(time.RFC3339)
	}
	return converted
}

// mapServiceError translates domain errors to HTTP statuses. Anything
// unrecognized is a storage fault and surfaces as an opaque 500.
func mapServiceError(err error) error {
	var txNotFound domain.TransactionNotFoundError
	var txFinished domain.TransactionFinishedError
	var accNotFound domain.AccountNotFoundError

	switch {
	case errors.As(err, &txNotFound):
		return huma.NewError(http.StatusNotFound, txNotFound.Error())
	case errors.As(err, &txFinished):
		return huma.NewError(http.StatusConflict, txFinished.Error())
	case errors.As(err, &accNotFound):
		return huma.NewError(http.StatusNotFound, accNotFound.Error())
	}
	return huma.NewError(http.StatusInternalServerError, "persistence failure")
}
