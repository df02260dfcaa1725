package inmemory

import (
	"context"

	"github.com/janhq/chat-server/internal/domain/contact"
)

// ContactRepository implements contact.Repository.
type ContactRepository struct {
	*Repository[contact.Contact]
}

var _ contact.Repository = (*ContactRepository)(nil)

func NewContactRepository() *ContactRepository {
	return &ContactRepository{Repository: NewRepository[contact.Contact](nil)}
}

func (r *ContactRepository) FindByEmail(_ context.Context, email string) (contact.Contact, bool, error) {
	matches := r.Filter(func(c contact.Contact) bool { return c.Email == email })
	if len(matches) == 0 {
		return contact.Contact{}, false, nil
	}
	return matches[0], true, nil
}
