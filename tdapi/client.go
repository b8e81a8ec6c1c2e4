package tdapi

import (
	"context"
	"encoding/json"

	"github.com/itchio/headway/state"
	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/tdapi/tdjson"
)

type ClientOpts struct {
	// Mandatory
	Transport tdjson.Transport

	// Optional, needed for Execute
	Executor tdjson.Executor

	// Optional
	Router    *Router
	Consumer  *state.Consumer
	OnMessage func(dir tdjson.Direction, env tdjson.Envelope)
}

// Client pairs a connection to the engine with the router its updates go to.
type Client struct {
	Conn   *tdjson.Conn
	Router *Router

	executor tdjson.Executor
	consumer *state.Consumer
}

var _ Caller = (*Client)(nil)

func NewClient(ctx context.Context, opts ClientOpts) (*Client, error) {
	if opts.Transport == nil {
		return nil, errors.New("NewClient: missing Transport")
	}

	router := opts.Router
	if router == nil {
		router = NewRouter(opts.Consumer)
	}
	consumer := opts.Consumer
	if consumer == nil {
		consumer = router.globalConsumer
	}

	c := &Client{
		Router:   router,
		executor: opts.Executor,
		consumer: consumer,
	}
	router.Bind(c)

	c.Conn = tdjson.NewConn(ctx, opts.Transport, tdjson.Opts{
		Handler:   router,
		OnMessage: opts.OnMessage,
		Consumer:  consumer,
	})
	return c, nil
}

// Call validates fn, sends it and waits for the answer. Engine errors come
// back as *Error.
func (c *Client) Call(ctx context.Context, fn Function) (json.RawMessage, error) {
	if err := fn.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", fn.ObjectType())
	}

	res, err := c.Conn.Call(ctx, fn)
	if err != nil {
		return nil, convertError(err)
	}
	return res, nil
}

// Executor returns what Execute runs functions on, possibly nil.
func (c *Client) Executor() tdjson.Executor {
	return c.executor
}

// Execute runs a synchronous function without going through the connection.
func (c *Client) Execute(fn Function) (json.RawMessage, error) {
	return Execute(c.executor, fn)
}

// Execute runs a synchronous function on e.
func Execute(e tdjson.Executor, fn Function) (json.RawMessage, error) {
	if e == nil {
		return nil, errors.New("no executor configured")
	}
	if err := fn.Validate(); err != nil {
		return nil, errors.Wrapf(err, "invalid %s", fn.ObjectType())
	}

	res, err := tdjson.Execute(e, fn)
	if err != nil {
		return nil, convertError(err)
	}
	return res, nil
}

// Shutdown asks the engine to close, waits for the router to drain, then
// closes the connection. If ctx expires first the connection is closed
// anyway and ctx's error is returned.
func (c *Client) Shutdown(ctx context.Context) error {
	defer c.Close()

	if _, err := c.Call(ctx, &Close{}); err != nil {
		// a client that already closed answers every function with 500
		if !IsCode(err, CodeInternal) {
			return errors.WithMessage(err, "closing engine client")
		}
	}

	select {
	case <-c.Router.ShutdownChan:
		return nil
	case <-c.Conn.DisconnectNotify():
		return nil
	case <-ctx.Done():
		return errors.WithStack(ctx.Err())
	}
}

// Close drops the connection immediately.
func (c *Client) Close() {
	c.Conn.Close()
}

// Done is closed once the connection is fully torn down.
func (c *Client) Done() <-chan struct{} {
	return c.Conn.Done()
}

func convertError(err error) error {
	if te, ok := err.(*tdjson.Error); ok {
		return &Error{Code: te.Code, Message: te.Message}
	}
	return err
}
