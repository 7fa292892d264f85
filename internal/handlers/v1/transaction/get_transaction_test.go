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
)

// mockTransactionGetter is a mock for transactionGetter.
type mockTransactionGetter struct {
	mock.Mock
}

func (m *mockTransactionGetter) GetTransactionByID(ctx context.Context, id uuid.UUID) (*service.Transaction, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Transaction), args.Error(1)
}

func newGetTestAPI(t *testing.T, svc transactionGetter) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewGetTransactionHandler(svc).Register(api)
	return api
}

func TestHTTP_GetTransaction_Success(t *testing.T) {
	tx := serviceTransaction()

	mockSvc := new(mockTransactionGetter)
	mockSvc.On("GetTransactionByID", mock.Anything, tx.ID).Return(tx, nil)

	resp := newGetTestAPI(t, mockSvc).Get("/v1/transaction/" + tx.ID.String())

	assert.Equal(t, http.StatusOK, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, tx.ID.String(), body.ID)
	assert.Equal(t, tx.Description, body.Description)
	assert.Equal(t, "2024-06-01", body.DueDate)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetTransaction_NotFound(t *testing.T) {
	id := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionGetter)
	mockSvc.On("GetTransactionByID", mock.Anything, id).
		Return(nil, domain.TransactionNotFoundError{ID: id})

	resp := newGetTestAPI(t, mockSvc).Get("/v1/transaction/" + id.String())

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_GetTransaction_InvalidID(t *testing.T) {
	mockSvc := new(mockTransactionGetter)

	resp := newGetTestAPI(t, mockSvc).Get("/v1/transaction/not-a-uuid")

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "GetTransactionByID")
}
