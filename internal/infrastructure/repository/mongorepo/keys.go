package mongorepo

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/janhq/chat-server/internal/domain/identifier"
)

// KeyPolicy says where a collection keeps entity identity.
type KeyPolicy int

const (
	// NativeKeys stores identity in _id as an ObjectID.
	NativeKeys KeyPolicy = iota
	// TextKeys stores identity in an explicit "id" string field and leaves _id to the store.
	TextKeys
)

// Filter builds the point query for id. It reports false when id cannot
// exist under this policy, such as a non-hex text id against NativeKeys.
func (k KeyPolicy) Filter(id identifier.ID) (bson.D, bool) {
	if id.IsZero() {
		return nil, false
	}
	switch k {
	case NativeKeys:
		native, ok := id.AsNative()
		if !ok {
			return nil, false
		}
		return bson.D{{Key: "_id", Value: primitive.ObjectID(native)}}, true
	default:
		return bson.D{{Key: "id", Value: id.String()}}, true
	}
}
