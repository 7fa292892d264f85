package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// UpdateTransactionBody is the request body for a partial update. Absent
// fields are left unchanged.
type UpdateTransactionBody struct {
	MovementType *string `json:"movementType,omitempty" enum:"INCOME,EXPENSE" doc:"Movement type"`
	Description  *string `json:"description,omitempty" doc:"Description of the transaction"`
	Value        *string `json:"value,omitempty" doc:"Decimal value"`
	DueDate      *string `json:"dueDate,omitempty" doc:"Due date (YYYY-MM-DD)"`
	Category     *string `json:"category,omitempty" doc:"Category"`
	AccountID    *string `json:"accountID,omitempty" doc:"Account UUID"`
}

// UpdateTransactionInput is the Huma input for updating a transaction.
type UpdateTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body UpdateTransactionBody
}

// UpdateTransactionOutput is the Huma output for updating a transaction.
type UpdateTransactionOutput struct {
	Body Transaction
}

// transactionUpdater is the interface for updating transactions.
type transactionUpdater interface {
	UpdateTransactionByID(ctx context.Context, id uuid.UUID, patch service.UpdateTransaction) (*service.Transaction, error)
}

// UpdateTransactionHandler handles PATCH /v1/transaction/{id}.
type UpdateTransactionHandler struct {
	TransactionService transactionUpdater
}

// NewUpdateTransactionHandler creates a new UpdateTransactionHandler.
func NewUpdateTransactionHandler(svc transactionUpdater) *UpdateTransactionHandler {
	return &UpdateTransactionHandler{TransactionService: svc}
}

// Register registers the update transaction endpoint with the Huma API.
func (h *UpdateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "update-transaction",
		Method:      http.MethodPatch,
		Path:        "/v1/transaction/{id}",
		Summary:     "Update transaction",
		Description: "Applies a partial update to a pending transaction.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func parseUpdateTransactionInput(input *UpdateTransactionInput) (service.UpdateTransaction, error) {
	var patch service.UpdateTransaction

	if input.Body.MovementType != nil {
		movementType := sqlconfig.MovementType(*input.Body.MovementType)
		if !movementType.Valid() {
			return patch, huma.NewError(http.StatusBadRequest, "invalid movementType")
		}
		patch.MovementType = &movementType
	}

	patch.Description = input.Body.Description

	if input.Body.Value != nil {
		value, err := decimal.NewFromString(*input.Body.Value)
		if err != nil {
			return patch, huma.NewError(http.StatusBadRequest, "invalid value", err)
		}
		patch.Value = &value
	}

	if input.Body.DueDate != nil {
		dueDate, err := time.Parse(dateLayout, *input.Body.DueDate)
		if err != nil {
			return patch, huma.NewError(http.StatusBadRequest, "invalid dueDate", err)
		}
		patch.DueDate = &dueDate
	}

	if input.Body.Category != nil {
		category := sqlconfig.Category(*input.Body.Category)
		if !category.Valid() {
			return patch, huma.NewError(http.StatusBadRequest, "invalid category")
		}
		patch.Category = &category
	}

	if input.Body.AccountID != nil {
		accountID, err := uuid.FromString(*input.Body.AccountID)
		if err != nil {
			return patch, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
		}
		patch.AccountID = &accountID
	}

	return patch, nil
}

func (h *UpdateTransactionHandler) handle(ctx context.Context, input *UpdateTransactionInput) (*UpdateTransactionOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	patch, err := parseUpdateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	updated, err := h.TransactionService.UpdateTransactionByID(ctx, id, patch)
	if err != nil {
		return nil, mapServiceError(err)
	}

	return &UpdateTransactionOutput{Body: transactionToAPI(updated)}, nil
}
