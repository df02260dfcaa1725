package identifier

import (
	"cmp"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Kind tells which variant an ID holds.
type Kind uint8

const (
	KindUnset Kind = iota
	KindText
	KindNative
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindNative:
		return "native"
	default:
		return "unset"
	}
}

// ID references an entity across a repository boundary. It holds either an
// application-chosen text value or a 12-byte value minted by the document
// store (a MongoDB ObjectID). IDs are comparable with ==.
type ID struct {
	kind   Kind
	text   string
	native [12]byte
}

// Text wraps an application-level textual identifier.
func Text(value string) ID {
	return ID{kind: KindText, text: value}
}

// Native wraps a store-native 12-byte identifier.
func Native(value [12]byte) ID {
	return ID{kind: KindNative, native: value}
}

// NewText returns a fresh random (uuid v4) textual identifier.
func NewText() ID {
	return Text(uuid.NewString())
}

// NewNative returns a fresh store-native identifier.
func NewNative() ID {
	return Native(primitive.NewObjectID())
}

// Parse turns the canonical string form back into an ID. A 24 character hex
// string is read as a native identifier, anything else as text.
func Parse(raw string) ID {
	if raw == "" {
		return ID{}
	}
	if oid, err := primitive.ObjectIDFromHex(raw); err == nil {
		return Native(oid)
	}
	return Text(raw)
}

func (id ID) Kind() Kind {
	return id.kind
}

func (id ID) IsZero() bool {
	return id.kind == KindUnset
}

// String returns the canonical form: the text itself, or lowercase hex for native ids.
func (id ID) String() string {
	switch id.kind {
	case KindText:
		return id.text
	case KindNative:
		return hex.EncodeToString(id.native[:])
	default:
		return ""
	}
}

// AsNative converts the ID to its 12-byte form. Text ids that are not valid
// ObjectID hex strings report false instead of failing.
func (id ID) AsNative() ([12]byte, bool) {
	switch id.kind {
	case KindNative:
		return id.native, true
	case KindText:
		oid, err := primitive.ObjectIDFromHex(id.text)
		if err != nil {
			return [12]byte{}, false
		}
		return oid, true
	default:
		return [12]byte{}, false
	}
}

func (id ID) Equal(other ID) bool {
	return id == other
}

// Compare orders ids by their canonical value. The variant only breaks ties
// between a text id and a native id that render identically.
func Compare(a, b ID) int {
	if c := strings.Compare(a.String(), b.String()); c != 0 {
		return c
	}
	return cmp.Compare(a.kind, b.kind)
}

func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

func (id *ID) UnmarshalText(data []byte) error {
	*id = Parse(string(data))
	return nil
}
