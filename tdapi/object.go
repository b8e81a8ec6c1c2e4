package tdapi

import (
	"encoding/json"
	"fmt"

	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
)

//go:generate go run ./tdgen godocs

// Object is anything that travels on the wire with a "@type" discriminant.
type Object interface {
	ObjectType() string
}

// Function is an Object the engine executes and answers.
type Function interface {
	Object
	Validate() error
	isFunction()
}

// ErrUnknownType is returned (wrapped) when decoding a "@type" that has no
// registered constructor.
var ErrUnknownType = errors.New("unknown @type")

// ErrMissingType is returned when a JSON object carries no "@type" key.
var ErrMissingType = errors.New("missing @type")

// TypeOf peeks at the "@type" of an encoded object without decoding it.
func TypeOf(data []byte) string {
	return gjson.GetBytes(data, `\@type`).String()
}

// IsKnownType returns true if tag names a registered object or function.
func IsKnownType(tag string) bool {
	_, ok := constructors[tag]
	return ok
}

// ResultType returns the class or object name a function answers with.
func ResultType(functionTag string) (string, bool) {
	res, ok := functionResults[functionTag]
	return res, ok
}

// New returns an empty instance for a tag, or nil if the tag is unknown.
func New(tag string) Object {
	if ctor, ok := constructors[tag]; ok {
		return ctor()
	}
	return nil
}

// UnmarshalObject decodes any tagged object. A JSON null decodes to a nil
// Object and a nil error.
func UnmarshalObject(data []byte) (Object, error) {
	res := gjson.ParseBytes(data)
	switch res.Type {
	case gjson.Null:
		return nil, nil
	case gjson.JSON:
		if !res.IsObject() {
			return nil, errors.Errorf("expected a JSON object, got %s", truncate(data))
		}
	default:
		return nil, errors.Errorf("expected a JSON object, got %s", truncate(data))
	}

	tag := res.Get(`\@type`)
	if !tag.Exists() {
		return nil, errors.WithStack(ErrMissingType)
	}
	ctor, ok := constructors[tag.String()]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownType, "%q", tag.String())
	}

	o := ctor()
	if err := json.Unmarshal(data, o); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", tag.String())
	}
	return o, nil
}

// MarshalObject encodes an object. It exists mostly for symmetry: every
// generated type already emits its "@type" through MarshalJSON.
func MarshalObject(o Object) ([]byte, error) {
	if o == nil {
		return []byte("null"), nil
	}
	bs, err := json.Marshal(o)
	if err != nil {
		return nil, errors.Wrapf(err, "encoding %s", o.ObjectType())
	}
	return bs, nil
}

func classMismatch(o Object, class string) error {
	return errors.Errorf("%s is not a %s", o.ObjectType(), class)
}

func marshalTagged(tag string, v interface{}) ([]byte, error) {
	body, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, 0, len(body)+len(tag)+12)
	buf = append(buf, `{"@type":"`...)
	buf = append(buf, tag...)
	buf = append(buf, '"')
	if len(body) > 2 {
		buf = append(buf, ',')
		buf = append(buf, body[1:]...)
	} else {
		buf = append(buf, '}')
	}
	return buf, nil
}

func unmarshalSlice[T any](raws []json.RawMessage, decode func([]byte) (T, error)) ([]T, error) {
	if raws == nil {
		return nil, nil
	}

	res := make([]T, len(raws))
	for i, raw := range raws {
		v, err := decode(raw)
		if err != nil {
			return nil, errors.WithMessage(err, fmt.Sprintf("[%d]", i))
		}
		res[i] = v
	}
	return res, nil
}

func truncate(data []byte) string {
	const max = 64
	if len(data) > max {
		return string(data[:max]) + "..."
	}
	return string(data)
}
