package settlement

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// CreateSettlementBody is the request body for settling a period.
type CreateSettlementBody struct {
	AccountID string `json:"accountID" required:"true" doc:"Account UUID"`
	Month     int    `json:"month" required:"true" minimum:"1" maximum:"12" doc:"Month number (1-12)"`
	Year      int32  `json:"year" required:"true" minimum:"1970" doc:"Year"`
}

// CreateSettlementInput is the Huma input for settling a period.
type CreateSettlementInput struct {
	Body CreateSettlementBody
}

// CreateSettlementOutput is the Huma output for settling a period.
type CreateSettlementOutput struct {
	Body Settlement
}

// settlementCreator is the interface for settling a period.
type settlementCreator interface {
	CreateSettlement(ctx context.Context, accountID uuid.UUID, month time.Month, year int32) (*service.Settlement, error)
}

// CreateSettlementHandler handles POST /v1/settlement.
type CreateSettlementHandler struct {
	SettlementService settlementCreator
}

// NewCreateSettlementHandler creates a new CreateSettlementHandler.
func NewCreateSettlementHandler(svc settlementCreator) *CreateSettlementHandler {
	return &CreateSettlementHandler{SettlementService: svc}
}

// Register registers the create settlement endpoint with the Huma API.
func (h *CreateSettlementHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "create-settlement",
		Method:        http.MethodPost,
		Path:          "/v1/settlement",
		Summary:       "Settle period",
		Description:   "Closes out one month for an account. A period can only be settled once.",
		Tags:          []string{"Settlements"},
		DefaultStatus: http.StatusCreated,
	}, h.handle)
}

func (h *CreateSettlementHandler) handle(ctx context.Context, input *CreateSettlementInput) (*CreateSettlementOutput, error) {
	accountID, err := uuid.FromString(input.Body.AccountID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid accountID", err)
	}

	created, err := h.SettlementService.CreateSettlement(ctx, accountID, time.Month(input.Body.Month), input.Body.Year)
	if err != nil {
		if logData := logging.GetLogData(ctx); logData != nil {
			logData.Log().WithError(err).Error("Handler.CreateSettlement.Error")
		}
		return nil, mapServiceError(err)
	}

	return &CreateSettlementOutput{Body: settlementToAPI(created)}, nil
}
