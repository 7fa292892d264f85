package transaction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/domain"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// mockTransactionFinisher is a mock for transactionFinisher.
type mockTransactionFinisher struct {
	mock.Mock
}

func (m *mockTransactionFinisher) FinishTransaction(ctx context.Context, id uuid.UUID, status sqlconfig.TransactionStatus) (*service.Transaction, error) {
	args := m.Called(ctx, id, status)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Transaction), args.Error(1)
}

func newFinishTestAPI(t *testing.T, svc transactionFinisher) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewFinishTransactionHandler(svc).Register(api)
	return api
}

func TestHTTP_FinishTransaction_Success(t *testing.T) {
	finished := serviceTransaction()
	finished.Status = sqlconfig.TransactionStatusCompleted

	mockSvc := new(mockTransactionFinisher)
	mockSvc.On("FinishTransaction", mock.Anything, finished.ID, sqlconfig.TransactionStatusCompleted).
		Return(finished, nil)

	resp := newFinishTestAPI(t, mockSvc).Post("/v1/transaction/"+finished.ID.String()+"/finish",
		FinishTransactionBody{Status: "COMPLETED"})

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "COMPLETED", body.Status)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_FinishTransaction_InvalidStatus(t *testing.T) {
	mockSvc := new(mockTransactionFinisher)

	// The enum tag rejects PENDING before the handler runs.
	resp := newFinishTestAPI(t, mockSvc).Post("/v1/transaction/"+uuid.Must(uuid.NewV4()).String()+"/finish",
		FinishTransactionBody{Status: "PENDING"})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "FinishTransaction")
}

func TestHTTP_FinishTransaction_InvalidID(t *testing.T) {
	mockSvc := new(mockTransactionFinisher)

	resp := newFinishTestAPI(t, mockSvc).Post("/v1/transaction/not-a-uuid/finish",
		FinishTransactionBody{Status: "COMPLETED"})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "FinishTransaction")
}

func TestHTTP_FinishTransaction_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionFinisher)
	mockSvc.On("FinishTransaction", mock.Anything, id, sqlconfig.TransactionStatusCanceled).
		Return(nil, domain.TransactionNotFoundError{ID: id})

	resp := newFinishTestAPI(t, mockSvc).Post("/v1/transaction/"+id.String()+"/finish",
		FinishTransactionBody{Status: "CANCELED"})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_FinishTransaction_AlreadyFinished(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionFinisher)
	mockSvc.On("FinishTransaction", mock.Anything, id, sqlconfig.TransactionStatusCompleted).
		Return(nil, domain.TransactionFinishedError{ID: id})

	resp := newFinishTestAPI(t, mockSvc).Post("/v1/transaction/"+id.String()+"/finish",
		FinishTransactionBody{Status: "COMPLETED"})

	assert.Equal(t, http.StatusConflict, resp.Code)
	mockSvc.AssertExpectations(t)
}
