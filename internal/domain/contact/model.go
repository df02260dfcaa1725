package contact

import (
	"time"

	"github.com/janhq/chat-server/internal/domain/identifier"
	"github.com/janhq/chat-server/internal/domain/repository"
)

// Contact is an addressable person. Email is unique across all contacts.
type Contact struct {
	ID        identifier.ID `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt time.Time     `json:"updated_at"`
}

// EntityID implements repository.Entity.
func (c Contact) EntityID() identifier.ID {
	return c.ID
}

// New builds a contact with a fresh native id and matching timestamps.
func New(name, email string) Contact {
	now := repository.Now()
	return Contact{
		ID:        identifier.NewNative(),
		Name:      name,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// CreateContactCommand carries the input of Service.CreateContact.
type CreateContactCommand struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
}

// UpdateContactCommand carries the input of Service.UpdateContact. Nil fields are left untouched.
type UpdateContactCommand struct {
	ID    identifier.ID `json:"-"`
	Name  *string       `json:"name,omitempty" validate:"omitempty,min=1"`
	Email *string       `json:"email,omitempty" validate:"omitempty,email"`
}
