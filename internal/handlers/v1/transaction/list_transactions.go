package transaction

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// ListTransactionsOutput is the Huma output for listing transactions.
type ListTransactionsOutput struct {
	Body ListTransactionsResponseBody
}

// ListTransactionsResponseBody is the response body for listing transactions.
type ListTransactionsResponseBody struct {
	Transactions []Transaction `json:"transactions" doc:"All non-deleted transactions"`
}

// ListTransactionsByPeriodInput filters the listing to one month and year.
type ListTransactionsByPeriodInput struct {
	Month int `query:"month" minimum:"1" maximum:"12" required:"true" doc:"Month number (1-12)"`
	Year  int `query:"year" minimum:"1970" required:"true" doc:"Year"`
}

// transactionLister is the interface for listing transactions.
type transactionLister interface {
	ListTransactions(ctx context.Context) ([]service.Transaction, error)
	ListTransactionsByPeriod(ctx context.Context, month time.Month, year int32) ([]service.Transaction, error)
}

// ListTransactionsHandler handles GET /v1/transaction and
// GET /v1/transaction/period.
type ListTransactionsHandler struct {
	TransactionService transactionLister
}

// NewListTransactionsHandler creates a new ListTransactionsHandler.
func NewListTransactionsHandler(svc transactionLister) *ListTransactionsHandler {
	return &ListTransactionsHandler{TransactionService: svc}
}

// Register registers the list endpoints with the Huma API.
func (h *ListTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/transaction",
		Summary:     "List transactions",
		Description: "Returns all non-deleted transactions.",
		Tags:        []string{"Transactions"},
	}, h.handleList)

	huma.Register(api, huma.Operation{
		OperationID: "list-transactions-by-period",
		Method:      http.MethodGet,
		Path:        "/v1/transaction/period",
		Summary:     "List transactions by period",
		Description: "Returns non-deleted transactions due in the given month and year.",
		Tags:        []string{"Transactions"},
	}, h.handleListByPeriod)
}

func (h *ListTransactionsHandler) handleList(ctx context.Context, _ *struct{}) (*ListTransactionsOutput, error) {
	transactions, err := h.TransactionService.ListTransactions(ctx)
	if err != nil {
		return nil, mapServiceError(err)
	}
	return listOutput(ctx, transactions), nil
}

func (h *ListTransactionsHandler) handleListByPeriod(ctx context.Context, input *ListTransactionsByPeriodInput) (*ListTransactionsOutput, error) {
	transactions, err := h.TransactionService.ListTransactionsByPeriod(ctx, time.Month(input.Month), int32(input.Year))
	if err != nil {
		return nil, mapServiceError(err)
	}
	return listOutput(ctx, transactions), nil
}

func listOutput(ctx context.Context, transactions []service.Transaction) *ListTransactionsOutput {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("transactionCount", len(transactions))
	}

	resp := ListTransactionsResponseBody{
		Transactions: make([]Transaction, len(transactions)),
	}
	for i := range transactions {
		resp.Transactions[i] = transactionToAPI(&transactions[i])
	}
	return &ListTransactionsOutput{Body: resp}
}
