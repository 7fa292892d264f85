package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// CreateTransactionBody is the request body for creating a transaction.
type CreateTransactionBody struct {
	MovementType string `json:"movementType" required:"true" enum:"INCOME,EXPENSE" doc:"Movement type"`
	Description  string `json:"description" required:"true" doc:"Description of the transaction"`
	Value        string `json:"value" required:"true" doc:"Decimal value; the total when installments > 1"`
	DueDate      string `json:"dueDate" required:"true" doc:"Due date (YYYY-MM-DD); anchor date for installments"`
	Category     string `json:"category" required:"true" doc:"Category"`
	AccountID    string `json:"accountID" required:"true" doc:"Account UUID"`
	Installments int16  `json:"installments,omitempty" minimum:"0" doc:"Number of installments; values above 1 split the transaction"`
}

// CreateTransactionInput is the Huma input for creating a transaction.
type CreateTransactionInput struct {
	Body CreateTransactionBody
}

// CreateTransactionOutput is the Huma output for creating a transaction.
type CreateTransactionOutput struct {
	Body Transaction
}

// transactionCreator is the interface for creating transactions.
type transactionCreator interface {
	CreateTransaction(ctx context.Context, create service.CreateTransaction) (*service.Transaction, error)
}

// CreateTransactionHandler handles POST /v1/transaction.
type CreateTransactionHandler struct {
	TransactionService transactionCreator
}

// NewCreateTransactionHandler creates a new CreateTransactionHandler.
func NewCreateTransactionHandler(svc transactionCreator) *CreateTransactionHandler {
	return &CreateTransactionHandler{TransactionService: svc}
}

// Register registers the create transaction endpoint with the Huma API.
func (h *CreateTransactionHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-transaction",
		Method:        http.MethodPost,
		Path:          "/v1/transaction",
		Summary:       "Create transaction",
		Description:   "Creates a new transaction, expanding installment plans into dated rows.",
		Tags:          []string{"Transactions"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateTransactionInput(input *CreateTransactionInput) (service.CreateTransaction, error) {
	var create service.CreateTransaction

	movementType := sqlconfig.MovementType(input.Body.MovementType)
	if !movementType.Valid() {
		return create, huma.NewError(http.StatusBadRequest, "invalid movementType")
	}

	category := sqlconfig.Category(input.Body.Category)
	if !category.Valid() {
		return create, huma.NewError(http.StatusBadRequest, "invalid category")
	}

	value, err := decimal.NewFromString(input.Body.Value)
	if err != nil {
		return create, huma.NewError(http.StatusBadRequest, "invalid value", err)
	}

	dueDate, err := time.Parse(dateLayout, input.Body.DueDate)
	if err != nil {
		return create, huma.NewError(http.StatusBadRequest, "invalid dueDate", err)
	}

	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return create, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	return service.CreateTransaction{
		MovementType: movementType,
		Description:  input.Body.Description,
		Value:        value,
		DueDate:      dueDate,
		Category:     category,
		AccountID:    accountID,
		Installments: input.Body.Installments,
	}, nil
}

func (h *CreateTransactionHandler) handle(ctx context.Context, input *CreateTransactionInput) (*CreateTransactionOutput, error) {
	create, err := parseCreateTransactionInput(input)
	if err != nil {
		return nil, err
	}

	created, err := h.TransactionService.CreateTransaction(ctx, create)
	if err != nil {
		if logData := logging.GetLogData(ctx); logData != nil {
			logData.Log().WithError(err).Error("Handler.CreateTransaction.Error")
		}
		return nil, mapServiceError(err)
	}

	return &CreateTransactionOutput{Body: transactionToAPI(created)}, nil
}
