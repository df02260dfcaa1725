package repository

import (
	"context"

	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/utils/platformerrors"
)

// EntityNotFoundMessage is the message carried by NOT_FOUND errors raised on update and delete.
const EntityNotFoundMessage = "Entity not found"

// Entity is implemented by every storable domain type.
type Entity interface {
	EntityID() identifier.ID
}

// Repository is the CRUD contract every storage backend implements identically.
//
// Get reports absence through its boolean; the error is reserved for storage failures.
// List returns the size of the whole collection next to the requested page.
type Repository[E Entity] interface {
	Create(ctx context.Context, entity E) (E, error)
	Update(ctx context.Context, entity E) error
	Delete(ctx context.Context, id identifier.ID) error
	Get(ctx context.Context, id identifier.ID) (E, bool, error)
	List(ctx context.Context, opts ListOptions) (int64, []E, error)
}

// NewNotFoundError builds the NOT_FOUND error shared by every backend.
func NewNotFoundError(ctx context.Context, id identifier.ID) error {
	return platformerrors.NewErrorWithContext(
		ctx,
		platformerrors.LayerRepository,
		platformerrors.ErrorTypeNotFound,
		EntityNotFoundMessage,
		nil,
		"6f0d2c4e-8a1b-4e37-9c52-d1a7b3e9f041",
		map[string]any{"entity_id": id.String()},
	)
}
