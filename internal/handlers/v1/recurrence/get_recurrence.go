package recurrence

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/service"
)

// GetRecurrenceInput is the Huma input for fetching a recurrence by ID.
type GetRecurrenceInput struct {
	ID string `path:"id" doc:"Recurrence UUID"`
}

// GetRecurrenceOutput is the Huma output for fetching a recurrence.
type GetRecurrenceOutput struct {
	Body Recurrence
}

// recurrenceGetter is the interface for fetching one recurrence template.
type recurrenceGetter interface {
	GetRecurrenceByID(ctx context.Context, id uuid.UUID) (*service.Recurrence, error)
}

// GetRecurrenceHandler handles GET /v1/recurrence/{id}.
type GetRecurrenceHandler struct {
	RecurrenceService recurrenceGetter
}

// NewGetRecurrenceHandler creates a new GetRecurrenceHandler.
func NewGetRecurrenceHandler(svc recurrenceGetter) *GetRecurrenceHandler {
	return &GetRecurrenceHandler{RecurrenceService: svc}
}

// Register registers the get recurrence endpoint with the Huma API.
func (h *GetRecurrenceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "get-recurrence",
		Method:      http.MethodGet,
		Path:        "/v1/recurrence/{id}",
		Summary:     "Get recurrence",
		Description: "Returns a single recurrence template by ID.",
		Tags:        []string{"Recurrences"},
	}, h.handle)
}

func (h *GetRecurrenceHandler) handle(ctx context.Context, input *GetRecurrenceInput) (*GetRecurrenceOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid recurrence id", err)
	}

	rec, err := h.RecurrenceService.GetRecurrenceByID(ctx, id)
	if err != nil {
		return nil, mapServiceError(err)
	}

	return &GetRecurrenceOutput{Body: recurrenceToAPI(rec)}, nil
}
