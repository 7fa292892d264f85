package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/carson-networks/finance-server/internal/domain"
	"github.com/carson-networks/finance-server/internal/service"
	"github.com/carson-networks/finance-server/internal/storage/sqlconfig"
)

// mockTransactionService is a mock for transactionCreator.
type mockTransactionService struct {
	mock.Mock
}

func (m *mockTransactionService) CreateTransaction(ctx context.Context, create service.CreateTransaction) (*service.Transaction, error) {
	args := m.Called(ctx, create)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Transaction), args.Error(1)
}

// newCreateTestAPI registers the handler against a humatest API and returns it.
func newCreateTestAPI(t *testing.T, svc transactionCreator) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewCreateTransactionHandler(svc).Register(api)
	return api
}

func serviceTransaction() *service.Transaction {
	return &service.Transaction{
		ID:           uuid.Must(uuid.NewV4()),
		MovementType: sqlconfig.MovementTypeExpense,
		Description:  "Coffee",
		Value:        decimal.RequireFromString("12.50"),
		DueDate:      time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC),
		Category:     sqlconfig.CategoryFood,
		AccountID:    uuid.Must(uuid.NewV4()),
		Status:       sqlconfig.TransactionStatusPending,
		CreatedAt:    time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

// -- parseCreateTransactionInput unit tests --

func TestParseCreateTransactionInput_ValidInput(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())

	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			MovementType: "EXPENSE",
			Description:  "Groceries",
			Value:        "123.45",
			DueDate:      "2024-06-01",
			Category:     "FOOD",
			AccountID:    accountID.String(),
			Installments: 3,
		},
	}

	create, err := parseCreateTransactionInput(input)
	assert.NoError(t, err)
	assert.Equal(t, sqlconfig.MovementTypeExpense, create.MovementType)
	assert.Equal(t, "Groceries", create.Description)
	assert.True(t, create.Value.Equal(decimal.RequireFromString("123.45")))
	assert.Equal(t, time.Date(2024, 6, 1, 0, 0, 0, 0, time.UTC), create.DueDate)
	assert.Equal(t, sqlconfig.CategoryFood, create.Category)
	assert.Equal(t, accountID, create.AccountID)
	assert.Equal(t, int16(3), create.Installments)
}

func TestParseCreateTransactionInput_InvalidCategory(t *testing.T) {
	input := &CreateTransactionInput{
		Body: CreateTransactionBody{
			MovementType: "EXPENSE",
			Description:  "Test",
			Value:        "10.00",
			DueDate:      "2024-06-01",
			Category:     "NOT_A_CATEGORY",
			AccountID:    uuid.Must(uuid.NewV4()).String(),
		},
	}

	_, err := parseCreateTransactionInput(input)
	assert.Error(t, err)
}

// -- HTTP integration tests (full Huma stack via humatest) --

func TestHTTP_CreateTransaction_Success(t *testing.T) {
	created := serviceTransaction()

	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.MatchedBy(func(c service.CreateTransaction) bool {
		return c.Description == "Coffee" &&
			c.Value.Equal(decimal.RequireFromString("12.50")) &&
			c.AccountID == created.AccountID
	})).Return(created, nil)

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		MovementType: "EXPENSE",
		Description:  "Coffee",
		Value:        "12.50",
		DueDate:      "2024-06-01",
		Category:     "FOOD",
		AccountID:    created.AccountID.String(),
	})

	assert.Equal(t, http.StatusCreated, resp.Code)
	var body Transaction
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, created.ID.String(), body.ID)
	assert.Equal(t, "PENDING", body.Status)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_MissingRequiredFields(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Huma schema validation rejects the request before the handler runs.
	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		MovementType: "EXPENSE",
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidMovementType(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// The enum tag rejects this before the handler runs.
	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		MovementType: "SIDEWAYS",
		Description:  "Test",
		Value:        "10.00",
		DueDate:      "2024-06-01",
		Category:     "FOOD",
		AccountID:    uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusUnprocessableEntity, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_InvalidValue(t *testing.T) {
	mockSvc := new(mockTransactionService)

	// Value is a plain string with no Huma format tag, so
	// parseCreateTransactionInput handles validation and returns 400.
	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		MovementType: "EXPENSE",
		Description:  "Test",
		Value:        "not-a-decimal",
		DueDate:      "2024-06-01",
		Category:     "FOOD",
		AccountID:    uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusBadRequest, resp.Code)
	mockSvc.AssertNotCalled(t, "CreateTransaction")
}

func TestHTTP_CreateTransaction_AccountNotFound(t *testing.T) {
	accountID := uuid.Must(uuid.NewV4())

	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, domain.AccountNotFoundError{ID: accountID})

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		MovementType: "EXPENSE",
		Description:  "Test",
		Value:        "10.00",
		DueDate:      "2024-06-01",
		Category:     "FOOD",
		AccountID:    accountID.String(),
	})

	assert.Equal(t, http.StatusNotFound, resp.Code)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_CreateTransaction_ServiceError(t *testing.T) {
	mockSvc := new(mockTransactionService)
	mockSvc.On("CreateTransaction", mock.Anything, mock.Anything).
		Return(nil, errors.New("database unavailable"))

	resp := newCreateTestAPI(t, mockSvc).Post("/v1/transaction", CreateTransactionBody{
		MovementType: "EXPENSE",
		Description:  "Test",
		Value:        "10.00",
		DueDate:      "2024-06-01",
		Category:     "FOOD",
		AccountID:    uuid.Must(uuid.NewV4()).String(),
	})

	assert.Equal(t, http.StatusInternalServerError, resp.Code)
	mockSvc.AssertExpectations(t)
}
