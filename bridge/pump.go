// Package bridge relays an engine to clients that cannot load it
// themselves, over stdio or websockets.
package bridge

import (
	"context"
	"io"
	"net"
	"time"

	"github.com/gorilla/websocket"
	"github.com/itchio/headway/state"
	"github.com/pkg/errors"
	"github.com/tdkit/tdkit/tdapi"
	"github.com/tdkit/tdkit/tdapi/tdjson"
	"github.com/tidwall/gjson"
)

const defaultCloseTimeout = 10 * time.Second

var closeRequest = []byte(`{"@type":"close"}`)

type PumpOpts struct {
	// How long the engine gets to close once the client is gone.
	CloseTimeout time.Duration

	Consumer *state.Consumer
}

// Pump relays frames between client and engine. It returns once the
// engine reports authorizationStateClosed. When the client goes away or c
// is done first, the engine is asked to close, so the next client starts
// from a clean database.
func Pump(c context.Context, client, engine tdjson.Transport, opts PumpOpts) error {
	consumer := opts.Consumer
	if consumer == nil {
		consumer = &state.Consumer{}
	}
	closeTimeout := opts.CloseTimeout
	if closeTimeout <= 0 {
		closeTimeout = defaultCloseTimeout
	}

	// each goroutine owns its error until both are gone
	var clientErr, engineWriteErr, engineReadErr error
	clientGone := make(chan struct{})
	engineGone := make(chan struct{})

	go func() {
		defer close(clientGone)
		for {
			msg, err := client.Read()
			if err != nil {
				if !isClosed(err) {
					clientErr = errors.WithMessage(err, "reading from client")
				}
				return
			}
			if err := engine.Write(msg); err != nil {
				engineWriteErr = errors.WithMessage(err, "writing to engine")
				return
			}
		}
	}()

	go func() {
		defer close(engineGone)
		clientUp := true
		for {
			msg, err := engine.Read()
			if err != nil {
				if !isClosed(err) {
					engineReadErr = errors.WithMessage(err, "reading from engine")
				}
				return
			}
			if clientUp {
				if err := client.Write(msg); err != nil {
					consumer.Debugf("Client stopped listening: %v", err)
					clientUp = false
				}
			}
			if isEngineClosed(msg) {
				return
			}
		}
	}()

	closeEngine := func() {
		if err := engine.Write(closeRequest); err != nil {
			consumer.Debugf("Asking the engine to close: %v", err)
		}
		timer := time.NewTimer(closeTimeout)
		defer timer.Stop()
		select {
		case <-engineGone:
		case <-timer.C:
			consumer.Warnf("Engine did not close after %s", closeTimeout)
		}
	}

	select {
	case <-engineGone:
	case <-clientGone:
		closeEngine()
	case <-c.Done():
		client.Close()
		<-clientGone
		closeEngine()
	}

	client.Close()
	engine.Close()
	<-clientGone
	<-engineGone

	if engineReadErr != nil {
		return engineReadErr
	}
	if engineWriteErr != nil {
		return engineWriteErr
	}
	return clientErr
}

func isEngineClosed(msg []byte) bool {
	res := gjson.GetManyBytes(msg, `\@type`, `authorization_state.\@type`)
	return res[0].String() == tdapi.TypeUpdateAuthorizationState &&
		res[1].String() == tdapi.TypeAuthorizationStateClosed
}

func isClosed(err error) bool {
	if err == io.EOF || errors.Is(err, net.ErrClosed) || errors.Is(err, io.ErrClosedPipe) {
		return true
	}
	var ce *websocket.CloseError
	return errors.As(err, &ce)
}
