package recurrence

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

// CreateRecurrenceBody is the request body for creating a recurrence.
type CreateRecurrenceBody struct {
	AccountID    string `json:"accountID" required:"true" doc:"Account UUID"`
	Description  string `json:"description" required:"true" doc:"Description applied to generated transactions"`
	Amount       string `json:"amount" required:"true" doc:"Decimal amount per occurrence"`
	Frequency    string `json:"frequency" required:"true" enum:"WEEKLY,MONTHLY" doc:"Expansion frequency"`
	Reference    int32  `json:"reference" required:"true" doc:"Day-of-month (monthly) or weekday (weekly, 0 = Sunday)"`
	Category     string `json:"category" required:"true" doc:"Category"`
	MovementType string `json:"movementType" required:"true" enum:"INCOME,EXPENSE" doc:"Movement type"`
	StartDate    string `json:"startDate" required:"true" doc:"First period the template applies to (YYYY-MM-DD)"`
}

// CreateRecurrenceInput is the Huma input for creating a recurrence.
type CreateRecurrenceInput struct {
	Body CreateRecurrenceBody
}

// CreateRecurrenceOutput is the Huma output for creating a recurrence.
type CreateRecurrenceOutput struct {
	Body Recurrence
}

// recurrenceCreator is the interface for creating recurrence templates.
type recurrenceCreator interface {
	CreateRecurrence(ctx context.Context, create service.CreateRecurrence) (*service.Recurrence, error)
}

// CreateRecurrenceHandler handles POST /v1/recurrence.
type CreateRecurrenceHandler struct {
	RecurrenceService recurrenceCreator
}

// NewCreateRecurrenceHandler creates a new CreateRecurrenceHandler.
func NewCreateRecurrenceHandler(svc recurrenceCreator) *CreateRecurrenceHandler {
	return &CreateRecurrenceHandler{RecurrenceService: svc}
}

// Register registers the create recurrence endpoint with the Huma API.
func (h *CreateRecurrenceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-recurrence",
		Method:        http.MethodPost,
		Path:          "/v1/recurrence",
		Summary:       "Create recurrence",
		Description:   "Creates a recurrence template that periodically generates transactions.",
		Tags:          []string{"Recurrences"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func parseCreateRecurrenceInput(input *CreateRecurrenceInput) (service.CreateRecurrence, error) {
	var create service.CreateRecurrence

	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return create, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	amount, err := decimal.NewFromString(input.Body.Amount)
	if err != nil {
		return create, huma.NewError(http.StatusBadRequest, "invalid amount", err)
	}

	frequency := sqlconfig.Frequency(input.Body.Frequency)
	if !frequency.Valid() {
		return create, huma.NewError(http.StatusBadRequest, "invalid frequency")
	}

	category := sqlconfig.Category(input.Body.Category)
	if !category.Valid() {
		return create, huma.NewError(http.StatusBadRequest, "invalid category")
	}

	movementType := sqlconfig.MovementType(input.Body.MovementType)
	if !movementType.Valid() {
		return create, huma.NewError(http.StatusBadRequest, "invalid movementType")
	}

	startDate, err := time.Parse(dateLayout, input.Body.StartDate)
	if err != nil {
		return create, huma.NewError(http.StatusBadRequest, "invalid startDate", err)
	}

	return service.CreateRecurrence{
		AccountID:    accountID,
		Description:  input.Body.Description,
		Amount:       amount,
		Frequency:    frequency,
		Reference:    input.Body.Reference,
		Category:     category,
		MovementType: movementType,
		StartDate:    startDate,
	}, nil
}

func (h *CreateRecurrenceHandler) handle(ctx context.Context, input *CreateRecurrenceInput) (*CreateRecurrenceOutput, error) {
	create, err := parseCreateRecurrenceInput(input)
	if err != nil {
		return nil, err
	}

	created, err := h.RecurrenceService.CreateRecurrence(ctx, create)
	if err != nil {
		return nil, mapServiceError(err)
	}

	return &CreateRecurrenceOutput{Body: recurrenceToAPI(created)}, nil
}
