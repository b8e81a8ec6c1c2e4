package tdjson

import (
	"context"
	"encoding/json"
	"io"
	"sync"

	"github.com/google/uuid"
	"github.com/itchio/headway/state"
	"github.com/pkg/errors"
	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"
)

// Direction tells observers whether a frame was sent or received.
type Direction string

const (
	DirectionIn  Direction = "in"
	DirectionOut Direction = "out"
)

// A Handler reacts to updates, in the order the engine sent them.
type Handler interface {
	HandleUpdate(conn *Conn, update Envelope)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(conn *Conn, update Envelope)

func (f HandlerFunc) HandleUpdate(conn *Conn, update Envelope) {
	f(conn, update)
}

type Opts struct {
	// Receives every update. Optional.
	Handler Handler

	// Sees every frame in both directions, from the reading or writing
	// goroutine. Must not block. Optional.
	OnMessage func(dir Direction, env Envelope)

	// Optional
	Consumer *state.Consumer

	// Generates correlation tokens, defaults to random UUIDs.
	GenerateExtra func() string
}

// Conn matches answers to functions by their "@extra" token, and hands
// everything else to its Handler from a single dispatch goroutine.
type Conn struct {
	transport Transport
	ctx       context.Context
	cancel    context.CancelFunc

	handler       Handler
	onMessage     func(dir Direction, env Envelope)
	consumer      *state.Consumer
	generateExtra func() string

	pendingCalls      map[string]chan Envelope
	pendingCallsMutex sync.Mutex

	updates *updateQueue

	closed           bool
	disconnectNotify chan struct{}
	closeMutex       sync.Mutex

	writeMutex sync.Mutex

	loops sync.WaitGroup
	done  chan struct{}
}

func NewConn(parentCtx context.Context, transport Transport, opts Opts) *Conn {
	ctx, cancel := context.WithCancel(parentCtx)

	conn := &Conn{
		transport: transport,
		ctx:       ctx,
		cancel:    cancel,

		handler:       opts.Handler,
		onMessage:     opts.OnMessage,
		consumer:      opts.Consumer,
		generateExtra: opts.GenerateExtra,

		pendingCalls:     make(map[string]chan Envelope),
		updates:          newUpdateQueue(),
		disconnectNotify: make(chan struct{}),
		done:             make(chan struct{}),
	}
	if conn.consumer == nil {
		conn.consumer = &state.Consumer{}
	}
	if conn.generateExtra == nil {
		conn.generateExtra = uuid.NewString
	}

	conn.loops.Add(3)
	go func() {
		defer conn.loops.Done()
		<-ctx.Done()
		conn.Close()
	}()
	go conn.receiveLoop()
	go conn.dispatchLoop()
	go func() {
		conn.loops.Wait()
		close(conn.done)
	}()

	return conn
}

func (c *Conn) Context() context.Context {
	return c.ctx
}

// Call sends a function with a fresh "@extra" and waits for its answer.
// request is either a value to encode or an already-encoded json.RawMessage.
// An answer of type "error" is returned as *Error.
func (c *Conn) Call(ctx context.Context, request interface{}) (json.RawMessage, error) {
	body, err := encodeRequest(request)
	if err != nil {
		return nil, err
	}

	extra := c.generateExtra()
	body, err = sjson.SetBytes(body, extraPath, extra)
	if err != nil {
		return nil, errors.Wrap(err, "attaching @extra")
	}

	done := make(chan Envelope, 1)
	c.pendingCallsMutex.Lock()
	c.pendingCalls[extra] = done
	c.pendingCallsMutex.Unlock()

	defer func() {
		c.pendingCallsMutex.Lock()
		delete(c.pendingCalls, extra)
		c.pendingCallsMutex.Unlock()
	}()

	if err := c.send(body, extra); err != nil {
		return nil, err
	}

	select {
	case env := <-done:
		if env.Type == "error" {
			return nil, decodeError(env.Raw)
		}
		return env.Raw, nil
	case <-ctx.Done():
		return nil, errors.WithStack(ctx.Err())
	case <-c.ctx.Done():
		return nil, ErrClosed
	}
}

// Send writes a function without waiting for an answer. Whatever the engine
// answers arrives as an update.
func (c *Conn) Send(request interface{}) error {
	body, err := encodeRequest(request)
	if err != nil {
		return err
	}
	return c.send(body, gjson.GetBytes(body, extraPath).String())
}

func (c *Conn) send(body []byte, extra string) error {
	c.writeMutex.Lock()
	defer c.writeMutex.Unlock()

	if c.isClosed() {
		return ErrClosed
	}

	if c.onMessage != nil {
		c.onMessage(DirectionOut, Envelope{
			Type:  gjson.GetBytes(body, typePath).String(),
			Extra: extra,
			Raw:   body,
		})
	}

	if err := c.transport.Write(body); err != nil {
		return errors.Wrap(err, "writing to engine")
	}
	return nil
}

func (c *Conn) receiveLoop() {
	defer c.loops.Done()
	defer c.updates.close()
	defer c.Close()

	for {
		msg, err := c.transport.Read()
		if err != nil {
			if !errors.Is(err, io.EOF) && !c.isClosed() {
				c.consumer.Warnf("tdjson: read failed: %+v", err)
			}
			return
		}

		env, err := ParseEnvelope(msg)
		if err != nil {
			c.consumer.Warnf("tdjson: %v", err)
			continue
		}
		c.handleIncoming(env)
	}
}

func (c *Conn) handleIncoming(env Envelope) {
	if c.onMessage != nil {
		c.onMessage(DirectionIn, env)
	}

	if env.Extra == "" {
		c.updates.push(env)
		return
	}

	c.pendingCallsMutex.Lock()
	done, ok := c.pendingCalls[env.Extra]
	if ok {
		delete(c.pendingCalls, env.Extra)
	}
	c.pendingCallsMutex.Unlock()

	if ok {
		done <- env
	} else {
		c.consumer.Debugf("tdjson: dropping %s, nobody is waiting for it", env)
	}
}

func (c *Conn) dispatchLoop() {
	defer c.loops.Done()

	for {
		env, ok := c.updates.pop()
		if !ok {
			return
		}
		if c.handler == nil {
			continue
		}
		c.dispatch(env)
	}
}

func (c *Conn) dispatch(env Envelope) {
	defer func() {
		if r := recover(); r != nil {
			c.consumer.Errorf("tdjson: update handler panicked on %s: %+v", env.Type, r)
		}
	}()
	c.handler.HandleUpdate(c, env)
}

// DisconnectNotify is closed as soon as the connection starts closing.
func (c *Conn) DisconnectNotify() <-chan struct{} {
	return c.disconnectNotify
}

// Done is closed once every goroutine of the connection has exited, after
// the remaining updates were dispatched.
func (c *Conn) Done() <-chan struct{} {
	return c.done
}

// Close fails pending calls and closes the transport. It is safe to call
// more than once, and from an update handler.
func (c *Conn) Close() {
	c.closeMutex.Lock()
	defer c.closeMutex.Unlock()

	if !c.closed {
		c.closed = true
		c.cancel()
		if err := c.transport.Close(); err != nil {
			c.consumer.Debugf("tdjson: closing transport: %v", err)
		}
		close(c.disconnectNotify)
	}
}

func (c *Conn) isClosed() bool {
	c.closeMutex.Lock()
	defer c.closeMutex.Unlock()
	return c.closed
}

// Executor runs a function synchronously, without a client.
type Executor interface {
	Execute(request []byte) ([]byte, error)
}

// Execute encodes request, runs it on e and decodes "error" answers.
func Execute(e Executor, request interface{}) (json.RawMessage, error) {
	body, err := encodeRequest(request)
	if err != nil {
		return nil, err
	}

	res, err := e.Execute(body)
	if err != nil {
		return nil, err
	}

	env, err := ParseEnvelope(res)
	if err != nil {
		return nil, err
	}
	if env.Type == "error" {
		return nil, decodeError(env.Raw)
	}
	return env.Raw, nil
}

func encodeRequest(request interface{}) ([]byte, error) {
	var body []byte
	switch r := request.(type) {
	case json.RawMessage:
		body = r
	case []byte:
		body = r
	default:
		bs, err := json.Marshal(request)
		if err != nil {
			return nil, errors.Wrap(err, "encoding request")
		}
		body = bs
	}

	if !gjson.GetBytes(body, typePath).Exists() {
		return nil, errors.Errorf("request has no @type: %q", truncate(body))
	}
	return body, nil
}

type updateQueue struct {
	mu     sync.Mutex
	items  []Envelope
	closed bool
	signal chan struct{}
}

func newUpdateQueue() *updateQueue {
	return &updateQueue{signal: make(chan struct{}, 1)}
}

func (q *updateQueue) push(env Envelope) {
	q.mu.Lock()
	q.items = append(q.items, env)
	q.mu.Unlock()
	q.wake()
}

func (q *updateQueue) close() {
	q.mu.Lock()
	q.closed = true
	q.mu.Unlock()
	q.wake()
}

func (q *updateQueue) wake() {
	select {
	case q.signal <- struct{}{}:
	default:
	}
}

func (q *updateQueue) pop() (Envelope, bool) {
	for {
		q.mu.Lock()
		if len(q.items) > 0 {
			env := q.items[0]
			q.items[0] = Envelope{}
			q.items = q.items[1:]
			q.mu.Unlock()
			return env, true
		}
		if q.closed {
			q.mu.Unlock()
			return Envelope{}, false
		}
		q.mu.Unlock()
		<-q.signal
	}
}
