package documents

import (
	"time"

	"github.com/janhq/chat-server/internal/domain/contact"
	"github.com/janhq/chat-server/internal/domain/identifier"
)

const ContactsCollection = "contacts"

// Contact is the persisted form of a contact. The identity lives in the
// store-native _id field as an ObjectID.
type Contact struct {
	ID        identifier.ID `bson:"_id"`
	Name      string        `bson:"name"`
	Email     string        `bson:"email"`
	CreatedAt time.Time     `bson:"created_at"`
	UpdatedAt time.Time     `bson:"updated_at"`
}

func NewContact(c contact.Contact) Contact {
	return Contact{
		ID:        c.ID,
		Name:      c.Name,
		Email:     c.Email,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

// EtoD converts the document to the domain model.
func (d Contact) EtoD() contact.Contact {
	return contact.Contact{
		ID:        d.ID,
		Name:      d.Name,
		Email:     d.Email,
		CreatedAt: d.CreatedAt.UTC(),
		UpdatedAt: d.UpdatedAt.UTC(),
	}
}
