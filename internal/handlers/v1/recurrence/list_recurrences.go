package recurrence

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/service"
)

// ListRecurrencesOutput is the Huma output for listing recurrences.
type ListRecurrencesOutput struct {
	Body ListRecurrencesResponseBody
}

// ListRecurrencesResponseBody is the response body for listing recurrences.
type ListRecurrencesResponseBody struct {
	Recurrences []Recurrence `json:"recurrences" doc:"All non-deleted recurrence templates"`
}

// DeactivateRecurrenceInput is the Huma input for deactivating a recurrence.
type DeactivateRecurrenceInput struct {
	ID string `path:"id" doc:"Recurrence UUID"`
}

// DeactivateRecurrenceOutput returns the deactivated recurrence.
type DeactivateRecurrenceOutput struct {
	Body Recurrence
}

// recurrenceLister is the interface for listing and deactivating templates.
type recurrenceLister interface {
	ListRecurrences(ctx context.Context) ([]service.Recurrence, error)
	DeactivateRecurrence(ctx context.Context, id uuid.UUID) (*service.Recurrence, error)
}

// ListRecurrencesHandler handles GET /v1/recurrence and
// POST /v1/recurrence/{id}/deactivate.
type ListRecurrencesHandler struct {
	RecurrenceService recurrenceLister
}

// NewListRecurrencesHandler creates a new ListRecurrencesHandler.
func NewListRecurrencesHandler(svc recurrenceLister) *ListRecurrencesHandler {
	return &ListRecurrencesHandler{RecurrenceService: svc}
}

// Register registers the recurrence listing endpoints with the Huma API.
func (h *ListRecurrencesHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-recurrences",
		Method:      http.MethodGet,
		Path:        "/v1/recurrence",
		Summary:     "List recurrences",
		Description: "Returns all non-deleted recurrence templates.",
		Tags:        []string{"Recurrences"},
	}, h.handleList)

	huma.Register(api, huma.Operation{
		OperationID: "deactivate-recurrence",
		Method:      http.MethodPost,
		Path:        "/v1/recurrence/{id}/deactivate",
		Summary:     "Deactivate recurrence",
		Description: "Stops future expansion without deleting generated transactions.",
		Tags:        []string{"Recurrences"},
	}, h.handleDeactivate)
}

func (h *ListRecurrencesHandler) handleList(ctx context.Context, _ *struct{}) (*ListRecurrencesOutput, error) {
	recurrences, err := h.RecurrenceService.ListRecurrences(ctx)
	if err != nil {
		return nil, mapServiceError(err)
	}

	resp := ListRecurrencesResponseBody{Recurrences: make([]Recurrence, len(recurrences))}
	for i := range recurrences {
		resp.Recurrences[i] = recurrenceToAPI(&recurrences[i])
	}
	return &ListRecurrencesOutput{Body: resp}, nil
}

func (h *ListRecurrencesHandler) handleDeactivate(ctx context.Context, input *DeactivateRecurrenceInput) (*DeactivateRecurrenceOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid recurrence id", err)
	}

	deactivated, err := h.RecurrenceService.DeactivateRecurrence(ctx, id)
	if err != nil {
		return nil, mapServiceError(err)
	}

	return &DeactivateRecurrenceOutput{Body: recurrenceToAPI(deactivated)}, nil
}
