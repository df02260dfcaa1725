package contact

import (
	"context"

	"github.com/janhq/chat-server/internal/domain/repository"
)

// Repository persists contacts.
type Repository interface {
	repository.Repository[Contact]

	// FindByEmail returns the contact owning email, matched exactly.
	FindByEmail(ctx context.Context, email string) (Contact, bool, error)
}
