package actions

import (
	"context"

	"github.com/carson-networks/finance-server/internal/storage"
)

// IAction is a unit of work performed inside one database transaction.
// Actions stash their outcome on themselves; the enqueuing caller reads it
// after the operator reports success.
type IAction interface {
	Perform(ctx context.Context, writer *storage.Writer) error
}
