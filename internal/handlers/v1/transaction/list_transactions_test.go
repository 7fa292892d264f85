package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/service"
)

// mockTransactionLister is a mock for transactionLister.
type mockTransactionLister struct {
	mock.Mock
}

func (m *mockTransactionLister) ListTransactions(ctx context.Context) ([]service.Transaction, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Transaction), args.Error(1)
}

func (m *mockTransactionLister) ListTransactionsByPeriod(ctx context.Context, month time.Month, year int32) ([]service.Transaction, error) {
	args := m.Called(ctx, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.Transaction), args.Error(1)
}

func newListTestAPI(t *testing.T, svc transactionLister) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewListTransactionsHandler(svc).Register(api)
	return api
}

func TestHTTP_ListTransactions_Success(t *testing.T) {
	rows := []service.Transaction{*serviceTransaction(), *serviceTransaction()}

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything).Return(rows, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transaction")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 2)
	assert.Equal(t, rows[0].ID.String(), body.Transactions[0].ID)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactions_Empty(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything).Return([]service.Transaction{}, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transaction")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Empty(t, body.Transactions)
}

func TestHTTP_ListTransactionsByPeriod_Success(t *testing.T) {
	rows := []service.Transaction{*serviceTransaction()}

	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactionsByPeriod", mock.Anything, time.June, int32(2024)).
		Return(rows, nil)

	resp := newListTestAPI(t, mockSvc).Get("/v1/transaction/period?month=6&year=2024")

	assert.Equal(t, http.StatusOK, resp.Code)
	var body ListTransactionsResponseBody
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Len(t, body.Transactions, 1)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_ListTransactionsByPeriod_MonthOutOfRange(t *testing.T) {
	mockSvc := new(mockTransactionLister)

	// Schema validation rejects month=13 before the handler runs.
	resp := newListTestAPI(t, mockSvc).Get("/v1/transaction/period?month=13&year=2024")

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "ListTransactionsByPeriod")
}

func TestHTTP_ListTransactions_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionLister)
	mockSvc.On("ListTransactions", mock.Anything).Return(nil, errors.New("database unavailable"))

	resp := newListTestAPI(t, mockSvc).Get("/v1/transaction")

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
}
