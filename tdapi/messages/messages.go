// Package messages gives every function and update a typed handle:
//
//	me, err := messages.GetMe.Call(ctx, client, &tdapi.GetMe{})
//	messages.UpdateNewMessage.Register(router, func(uc *tdapi.UpdateContext, u *tdapi.UpdateNewMessage) { ... })
package messages

import (
	"context"
	"encoding/json"

	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/tdjson"
)

// RequestDef describes a function P and the result R it answers with.
type RequestDef[P tdapi.Function, R any] struct {
	Type string
	Sync bool

	decode func([]byte) (R, error)
}

// Call sends params through caller and decodes the answer.
func (rd *RequestDef[P, R]) Call(ctx context.Context, caller tdapi.Caller, params P) (R, error) {
	var zero R

	raw, err := caller.Call(ctx, params)
	if err != nil {
		return zero, err
	}
	return rd.Decode(raw)
}

// Execute runs params synchronously. Only functions marked as synchronous
// are accepted by the engine.
func (rd *RequestDef[P, R]) Execute(e tdjson.Executor, params P) (R, error) {
	var zero R

	if !rd.Sync {
		return zero, errors.Errorf("%s cannot be executed synchronously", rd.Type)
	}
	raw, err := tdapi.Execute(e, params)
	if err != nil {
		return zero, err
	}
	return rd.Decode(raw)
}

// Decode decodes an answer to this function.
func (rd *RequestDef[P, R]) Decode(raw json.RawMessage) (R, error) {
	res, err := rd.decode(raw)
	if err != nil {
		return res, errors.WithMessage(err, "decoding answer to "+rd.Type)
	}
	return res, nil
}

// UpdateDef describes an update U.
type UpdateDef[U tdapi.Update] struct {
	Type string

	decode func([]byte) (U, error)
}

// Register adds a typed handler for this update on router. Updates that fail
// to decode are logged and skipped.
func (ud *UpdateDef[U]) Register(router *tdapi.Router, h func(uc *tdapi.UpdateContext, update U)) {
	router.RegisterUpdate(ud.Type, func(uc *tdapi.UpdateContext) {
		update, err := ud.decode(uc.Raw)
		if err != nil {
			uc.Consumer.Warnf("Could not decode %s: %+v", ud.Type, err)
			return
		}
		h(uc, update)
	})
}

// Decode decodes a raw update of this type.
func (ud *UpdateDef[U]) Decode(raw json.RawMessage) (U, error) {
	return ud.decode(raw)
}

func concrete[T any](tag string) func([]byte) (*T, error) {
	return func(data []byte) (*T, error) {
		if got := tdapi.TypeOf(data); got != tag {
			return nil, errors.Errorf("expected %s, got %q", tag, got)
		}

		v := new(T)
		if err := json.Unmarshal(data, v); err != nil {
			return nil, errors.WithStack(err)
		}
		return v, nil
	}
}
