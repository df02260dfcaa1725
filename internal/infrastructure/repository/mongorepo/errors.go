package mongorepo

import (
	"context"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/janhq/chat-server/internal/utils/platformerrors"
)

// storeError maps a driver error onto the platform taxonomy. Duplicate keys
// become CONFLICT; everything else is a DATABASE_ERROR carrying the driver's
// message unchanged.
func storeError(ctx context.Context, collection, operation string, err error) error {
	fields := map[string]any{"collection": collection, "operation": operation}
	if mongo.IsDuplicateKeyError(err) {
		return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeConflict,
			"Entity already exists", err, "a7c3e9f1-2d5b-4086-b4e2-9f1a6d3c8b57", fields)
	}
	return platformerrors.NewErrorWithContext(ctx, platformerrors.LayerRepository, platformerrors.ErrorTypeDatabaseError,
		err.Error(), err, "d5e1a8c4-7f2b-4c69-8a3e-1b6f9d2c7e40", fields)
}
