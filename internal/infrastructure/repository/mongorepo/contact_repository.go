package mongorepo

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/janhq/chat-server/internal/domain/contact"
	"github.com/janhq/chat-server/internal/infrastructure/database/documents"
)

// ContactRepository persists contacts in the contacts collection, keyed by ObjectID.
type ContactRepository struct {
	*Repository[contact.Contact, documents.Contact]
}

var _ contact.Repository = (*ContactRepository)(nil)

func NewContactRepository(db *mongo.Database) *ContactRepository {
	return &ContactRepository{
		Repository: NewRepository(db.Collection(documents.ContactsCollection), NativeKeys, documents.NewContact),
	}
}

func (r *ContactRepository) FindByEmail(ctx context.Context, email string) (contact.Contact, bool, error) {
	return r.FindOne(ctx, bson.D{{Key: "email", Value: email}})
}
