package settlement

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/service"
)

// ListSettlementsOutput is the Huma output for listing settlements.
type ListSettlementsOutput struct {
	Body ListSettlementsResponseBody
}

// ListSettlementsResponseBody is the response body for listing settlements.
type ListSettlementsResponseBody struct {
	Settlements []Settlement `json:"settlements" doc:"All non-deleted settlements"`
}

// settlementLister is the interface for listing settlements.
type settlementLister interface {
	ListSettlements(ctx context.Context) ([]service.Settlement, error)
}

// ListSettlementsHandler handles GET /v1/settlement.
type ListSettlementsHandler struct {
	SettlementService settlementLister
}

// NewListSettlementsHandler creates a new ListSettlementsHandler.
func NewListSettlementsHandler(svc settlementLister) *ListSettlementsHandler {
	return &ListSettlementsHandler{SettlementService: svc}
}

// Register registers the list settlements endpoint with the Huma API.
func (h *ListSettlementsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "list-settlements",
		Method:      http.MethodGet,
		Path:        "/v1/settlement",
		Summary:     "List settlements",
		Description: "Returns all non-deleted settlements.",
		Tags:        []string{"Settlements"},
	}, h.handle)
}

func (h *ListSettlementsHandler) handle(ctx context.Context, _ *struct{}) (*ListSettlementsOutput, error) {
	settlements, err := h.SettlementService.ListSettlements(ctx)
	if err != nil {
		return nil, mapServiceError(err)
	}

	resp := ListSettlementsResponseBody{Settlements: make([]Settlement, len(settlements))}
	for i := range settlements {
		resp.Settlements[i] = settlementToAPI(&settlements[i])
	}
	return &ListSettlementsOutput{Body: resp}, nil
}
