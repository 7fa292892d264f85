package recurrence

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/logging"
	"github.com/carson-networks/finance-server/internal/service"
)

// GenerateInput selects the period to expand recurrences for.
type GenerateInput struct {
	Month int `query:"month" minimum:"1" maximum:"12" required:"true" doc:"Month number (1-12)"`
	Year  int `query:"year" minimum:"1970" required:"true" doc:"Year"`
}

// GenerateResponseBody reports the transactions created by this run.
type GenerateResponseBody struct {
	GeneratedCount int      `json:"generatedCount" doc:"Number of transactions created by this run"`
	TransactionIDs []string `json:"transactionIDs" doc:"IDs of the created transactions"`
}

// GenerateOutput is the Huma output for recurrence generation.
type GenerateOutput struct {
	Body GenerateResponseBody
}

// recurrenceGenerator is the interface for period expansion.
type recurrenceGenerator interface {
	GenerateForPeriod(ctx context.Context, month time.Month, year int32) ([]service.Transaction, error)
}

// GenerateHandler handles POST /v1/recurrence/generate.
type GenerateHandler struct {
	RecurrenceService recurrenceGenerator
}

// NewGenerateHandler creates a new GenerateHandler.
func NewGenerateHandler(svc recurrenceGenerator) *GenerateHandler {
	return &GenerateHandler{RecurrenceService: svc}
}

// Register registers the generation endpoint with the Huma API.
func (h *GenerateHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "generate-recurrences",
		Method:      http.MethodPost,
		Path:        "/v1/recurrence/generate",
		Summary:     "Generate recurring transactions",
		Description: "Expands every active recurrence for the period. Idempotent per period.",
		Tags:        []string{"Recurrences"},
	}, h.handle)
}

func (h *GenerateHandler) handle(ctx context.Context, input *GenerateInput) (*GenerateOutput, error) {
	generated, err := h.RecurrenceService.GenerateForPeriod(ctx, time.Month(input.Month), int32(input.Year))
	if err != nil {
		if logData := logging.GetLogData(ctx); logData != nil {
			logData.Log().WithError(err).Error("Handler.GenerateRecurrences.Error")
		}
		return nil, mapServiceError(err)
	}

	ids := make([]string, len(generated))
	for i := range generated {
		ids[i] = generated[i].ID.String()
	}

	return &GenerateOutput{Body: GenerateResponseBody{
		GeneratedCount: len(generated),
		TransactionIDs: ids,
	}}, nil
}
