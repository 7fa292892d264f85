package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// FinishTransactionBody carries the terminal status to transition into.
type FinishTransactionBody struct {
	Status string `json:"status" required:"true" enum:"COMPLETED,CANCELED" doc:"Terminal status"`
}

// FinishTransactionInput is the Huma input for finishing a transaction.
type FinishTransactionInput struct {
	ID   string `path:"id" doc:"Transaction UUID"`
	Body FinishTransactionBody
}

// FinishTransactionOutput returns the finished transaction.
type FinishTransactionOutput struct {
	Body Transaction
}

// transactionFinisher is the interface for finishing transactions.
type transactionFinisher interface {
	FinishTransaction(ctx context.Context, id uuid.UUID, status sqlconfig.TransactionStatus) (*service.Transaction, error)
}

// FinishTransactionHandler handles POST /v1/transaction/{id}/finish.
type FinishTransactionHandler struct {
	TransactionService transactionFinisher
}

// NewFinishTransactionHandler creates a new FinishTransactionHandler.
func NewFinishTransactionHandler(svc transactionFinisher) *FinishTransactionHandler {
	return &FinishTransactionHandler{TransactionService: svc}
}

// Register registers the finish transaction endpoint with the Huma API.
func (h *FinishTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "finish-transaction",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/{id}/finish",
		Summary:     "Finish transaction",
		Description: "Transitions a pending transaction to COMPLETED or CANCELED. One-way.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *FinishTransactionHandler) handle(ctx context.Context, input *FinishTransactionInput) (*FinishTransactionOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid transaction id", err)
	}

	status := sqlconfig.TransactionStatus(input.Body.Status)
	if !status.Finished() {
		return nil, huma.NewError(http.StatusBadRequest, "status must be COMPLETED or CANCELED")
	}

	finished, err := h.TransactionService.FinishTransaction(ctx, id, status)
	if err != nil {
		return nil, mapServiceError(err)
	}

	return &FinishTransactionOutput{Body: transactionToAPI(finished)}, nil
}
