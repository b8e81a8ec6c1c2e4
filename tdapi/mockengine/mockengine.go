// Package mockengine is a fake TDLib engine speaking the JSON interface over
// an in-memory pipe, for tests.
package mockengine

import (
	"encoding/json"
	"net"
	"sync"

	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/tdjson"
	"github.com/tidwall/sjson"
)

// HandlerFunc answers one function. Returning a *tdapi.Error sends it as-is,
// any other error becomes a 500.
type HandlerFunc func(e *Engine, req tdjson.Envelope) (tdapi.Object, error)

type Engine struct {
	transport tdjson.Transport

	handlers     map[string]HandlerFunc
	handlersLock sync.Mutex

	received     []tdjson.Envelope
	receivedLock sync.Mutex

	queued []tdapi.Object

	writeLock sync.Mutex
	done      chan struct{}
}

var _ tdjson.Executor = (*Engine)(nil)

// New starts an engine and returns it along with the transport a client
// should use to reach it.
func New() (*Engine, tdjson.Transport) {
	engineSide, clientSide := net.Pipe()

	e := &Engine{
		transport: tdjson.NewRwcTransport(engineSide),
		handlers:  make(map[string]HandlerFunc),
		done:      make(chan struct{}),
	}
	go e.serve()

	return e, tdjson.NewRwcTransport(clientSide)
}

// Handle sets the handler for a function type, replacing any previous one.
func (e *Engine) Handle(tag string, h HandlerFunc) {
	e.handlersLock.Lock()
	defer e.handlersLock.Unlock()
	e.handlers[tag] = h
}

// HandleWith always answers a function type with the same object.
func (e *Engine) HandleWith(tag string, answer tdapi.Object) {
	e.Handle(tag, func(*Engine, tdjson.Envelope) (tdapi.Object, error) {
		return answer, nil
	})
}

// Push sends an update right away.
func (e *Engine) Push(update tdapi.Object) error {
	bs, err := tdapi.MarshalObject(update)
	if err != nil {
		return err
	}
	return e.write(bs)
}

// Enqueue sends an update after the answer to the function being handled,
// the way the real engine follows "ok" with the resulting state change.
// Must only be called from a HandlerFunc.
func (e *Engine) Enqueue(update tdapi.Object) {
	e.queued = append(e.queued, update)
}

// Received returns every function received so far.
func (e *Engine) Received() []tdjson.Envelope {
	e.receivedLock.Lock()
	defer e.receivedLock.Unlock()
	return append([]tdjson.Envelope{}, e.received...)
}

// ReceivedTypes returns the types of every function received so far.
func (e *Engine) ReceivedTypes() []string {
	var res []string
	for _, env := range e.Received() {
		res = append(res, env.Type)
	}
	return res
}

func (e *Engine) Close() {
	e.transport.Close()
}

// Done is closed once the engine stopped serving.
func (e *Engine) Done() <-chan struct{} {
	return e.done
}

func (e *Engine) serve() {
	defer close(e.done)

	for {
		msg, err := e.transport.Read()
		if err != nil {
			return
		}

		req, err := tdjson.ParseEnvelope(msg)
		if err != nil {
			continue
		}
		e.receivedLock.Lock()
		e.received = append(e.received, req)
		e.receivedLock.Unlock()

		answer := e.answer(req)
		if req.Extra != "" {
			answer, err = sjson.SetBytes(answer, `\@extra`, req.Extra)
			if err != nil {
				return
			}
		}
		if err := e.write(answer); err != nil {
			return
		}

		queued := e.queued
		e.queued = nil
		for _, update := range queued {
			if err := e.Push(update); err != nil {
				return
			}
		}
	}
}

// Execute answers synchronously with the same handlers.
func (e *Engine) Execute(request []byte) ([]byte, error) {
	req, err := tdjson.ParseEnvelope(request)
	if err != nil {
		return nil, err
	}
	return e.answer(req), nil
}

func (e *Engine) answer(req tdjson.Envelope) json.RawMessage {
	e.handlersLock.Lock()
	h, ok := e.handlers[req.Type]
	e.handlersLock.Unlock()

	var res tdapi.Object
	var err error
	if !ok {
		err = &tdapi.Error{Code: 400, Message: "Unknown class \"" + req.Type + "\""}
	} else {
		res, err = h(e, req)
	}

	if err != nil {
		var te *tdapi.Error
		if !errors.As(err, &te) {
			te = &tdapi.Error{Code: 500, Message: err.Error()}
		}
		res = te
	}
	if res == nil {
		res = &tdapi.Ok{}
	}

	bs, err := tdapi.MarshalObject(res)
	if err != nil {
		bs, _ = tdapi.MarshalObject(&tdapi.Error{Code: 500, Message: err.Error()})
	}
	return bs
}

func (e *Engine) write(msg []byte) error {
	e.writeLock.Lock()
	defer e.writeLock.Unlock()
	return e.transport.Write(msg)
}
