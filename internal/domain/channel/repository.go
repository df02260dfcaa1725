package channel

import (
	"context"

	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/domain/repository"
)

// Repository persists channels.
type Repository interface {
	repository.Repository[Channel]

	// FindByParticipantID lists every channel the contact takes part in.
	FindByParticipantID(ctx context.Context, contactID identifier.ID) ([]Channel, error)
	// FindByParticipantSet returns a channel of any kind whose participants are
	// exactly ids, in any order. When several match, the first in backend order wins.
	FindByParticipantSet(ctx context.Context, ids []identifier.ID) (Channel, bool, error)
	// FindPrivateChannel returns the private channel whose participants are
	// exactly ids, in any order. Group channels are never returned.
	FindPrivateChannel(ctx context.Context, ids []identifier.ID) (Channel, bool, error)
}
