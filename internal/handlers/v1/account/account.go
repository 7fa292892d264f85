package account

import (
	"errors"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/finance-server/internal/domain"
	"github.com/carson-networks/finance-server/internal/service"
)

// Account is the API response model for an account.
type Account struct {
	ID              string `json:"id" doc:"Account UUID"`
	Name            string `json:"name" doc:"Account name"`
	Type            int16  `json:"type" doc:"Account type"`
	SubType         string `json:"subType,omitempty" doc:"Account sub-type"`
	StartingBalance string `json:"startingBalance" doc:"Decimal starting balance"`
	CreatedAt       string `json:"createdAt" doc:"RFC3339 creation time"`
	DeletedAt       string `json:"deletedAt,omitempty" doc:"RFC3339 deletion time"`
}

func accountToAPI(acc *service.Account) Account {
	converted := Account{
		ID:              acc.ID.String(),
		Name:            acc.Name,
		Type:            int16(acc.Type),
		SubType:         acc.SubType,
		StartingBalance: acc.StartingBalance.String(),
		CreatedAt:       acc.CreatedAt.Format(time.RFC3339),
	}
	if acc.DeletedAt != nil {
		converted.DeletedAt = acc.DeletedAt.Format(time.RFC3339)
	}
	return converted
}

func mapServiceError(err error) error {
	var notFound domain.AccountNotFoundError
	var alreadyDeleted domain.AccountAlreadyDeletedError

	switch {
	case errors.As(err, &notFound):
		return huma.NewError(http.StatusNotFound, notFound.Error())
	case errors.As(err, &alreadyDeleted):
		return huma.NewError(http.StatusGone, alreadyDeleted.Error())
	}
	return huma.NewError(http.StatusInternalServerError, "persistence failure")
}
