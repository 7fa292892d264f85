package recurrence

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/finance-server/internal/service"
)

// DeleteRecurrenceInput is the Huma input for deleting a recurrence.
type DeleteRecurrenceInput struct {
	ID string `path:"id" doc:"Recurrence UUID"`
}

// DeleteRecurrenceOutput returns the soft-deleted recurrence.
type DeleteRecurrenceOutput struct {
	Body Recurrence
}

// recurrenceDeleter is the interface for soft-deleting templates.
type recurrenceDeleter interface {
	DeleteRecurrence(ctx context.Context, id uuid.UUID) (*service.Recurrence, error)
}

// DeleteRecurrenceHandler handles DELETE /v1/recurrence/{id}.
type DeleteRecurrenceHandler struct {
	RecurrenceService recurrenceDeleter
}

// NewDeleteRecurrenceHandler creates a new DeleteRecurrenceHandler.
func NewDeleteRecurrenceHandler(svc recurrenceDeleter) *DeleteRecurrenceHandler {
	return &DeleteRecurrenceHandler{RecurrenceService: svc}
}

// Register registers the delete recurrence endpoint with the Huma API.
func (h *DeleteRecurrenceHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "delete-recurrence",
		Method:      http.MethodDelete,
		Path:        "/v1/recurrence/{id}",
		Summary:     "Delete recurrence",
		Description: "Soft-deletes a recurrence template. Generated transactions are kept.",
		Tags:        []string{"Recurrences"},
	}, h.handle)
}

func (h *DeleteRecurrenceHandler) handle(ctx context.Context, input *DeleteRecurrenceInput) (*DeleteRecurrenceOutput, error) {
	id, err := uuid.FromString(input.ID)
	if err != nil {
		return nil, huma.NewError(http.StatusBadRequest, "invalid recurrence id", err)
	}

	deleted, err := h.RecurrenceService.DeleteRecurrence(ctx, id)
	if err != nil {
		return nil, mapServiceError(err)
	}

	return &DeleteRecurrenceOutput{Body: recurrenceToAPI(deleted)}, nil
}
