package account

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/finance-server/internal/service"
	storageaccount "github.com/carson-networks/finance-server/internal/storage/account"
)

// CreateAccountBody is the request body for creating an account.
type CreateAccountBody struct {
	Name            string `json:"name" required:"true" doc:"Account name"`
	Type            int16  `json:"type" minimum:"0" maximum:"4" doc:"Account type"`
	SubType         string `json:"subType,omitempty" doc:"Account sub-type"`
	StartingBalance string `json:"startingBalance,omitempty" doc:"Decimal starting balance, defaults to 0"`
}

// CreateAccountInput is the Huma input for creating an account.
type CreateAccountInput struct {
	Body CreateAccountBody
}

// CreateAccountOutput is the Huma output for creating an account.
type CreateAccountOutput struct {
	Body Account
}

// accountCreator is the interface for creating accounts.
type accountCreator interface {
	CreateAccount(ctx context.Context, create service.CreateAccount) (*service.Account, error)
}

// CreateAccountHandler handles POST /v1/account.
type CreateAccountHandler struct {
	AccountService accountCreator
}

// NewCreateAccountHandler creates a new CreateAccountHandler.
func NewCreateAccountHandler(svc accountCreator) *CreateAccountHandler {
	return &CreateAccountHandler{AccountService: svc}
}

// Register registers the create account endpoint with the Huma API.
func (h *CreateAccountHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-account",
		Method:        http.MethodPost,
		Path:          "/v1/account",
		Summary:       "Create account",
		Description:   "Creates a new account.",
		Tags:          []string{"Accounts"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateAccountHandler) handle(ctx context.Context, input *CreateAccountInput) (*CreateAccountOutput, error) {
	startingBalance := decimal.Zero
	if input.Body.StartingBalance != "" {
		parsed, err := decimal.NewFromString(input.Body.StartingBalance)
		if err != nil {
			return nil, huma.NewError(http.StatusBadRequest, "invalid startingBalance", err)
		}
		startingBalance = parsed
	}

	created, err := h.AccountService.CreateAccount(ctx, service.CreateAccount{
		Name:            input.Body.Name,
		Type:            storageaccount.AccountType(input.Body.Type),
		SubType:         input.Body.SubType,
		StartingBalance: startingBalance,
	})
	if err != nil {
		return nil, mapServiceError(err)
	}

	return &CreateAccountOutput{Body: accountToAPI(created)}, nil
}
