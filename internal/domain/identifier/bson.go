package identifier

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/bsontype"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MarshalBSONValue stores native ids as ObjectIDs and text ids as strings so a
// document keeps the variant it was written with.
func (id ID) MarshalBSONValue() (bsontype.Type, []byte, error) {
	switch id.kind {
	case KindNative:
		return bson.MarshalValue(primitive.ObjectID(id.native))
	case KindText:
		return bson.MarshalValue(id.text)
	default:
		return bson.TypeNull, nil, nil
	}
}

func (id *ID) UnmarshalBSONValue(t bsontype.Type, data []byte) error {
	raw := bson.RawValue{Type: t, Value: data}
	switch t {
	case bson.TypeObjectID:
		*id = Native(raw.ObjectID())
	case bson.TypeString:
		*id = Text(raw.StringValue())
	case bson.TypeNull, bson.TypeUndefined:
		*id = ID{}
	default:
		return fmt.Errorf("identifier: cannot decode BSON %s", t)
	}
	return nil
}
